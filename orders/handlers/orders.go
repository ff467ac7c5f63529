package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/atelieraurum/studio-api/framework/connection"
	"github.com/atelieraurum/studio-api/framework/web"
	"github.com/atelieraurum/studio-api/logger"
	"github.com/atelieraurum/studio-api/orders/dal"
	"github.com/atelieraurum/studio-api/orders/domain"
	"github.com/atelieraurum/studio-api/orders/queue"
	"github.com/atelieraurum/studio-api/orders/service"
)

type Orders struct {
	loggerProvider logger.Provider
	service        service.Orders
}

// NewOrders creates new orders package handlers.
func NewOrders(loggerProvider logger.Provider, conn *connection.Connection) *Orders {
	return &Orders{
		loggerProvider,
		service.NewOrderService(loggerProvider, conn),
	}
}

// ListOrdersHandler serves the dashboard order queue. The filter tab comes
// from ?filter= and the free-text search from ?q=; both are optional.
func (h *Orders) ListOrdersHandler(ctx *gin.Context) error {
	filter := queue.ParseFilter(ctx.Query("filter"))
	query := ctx.Query("q")

	orders, err := h.service.ListQueue(ctx, filter, query)
	if err != nil {
		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, orders, http.StatusOK)
}

func (h *Orders) GetOrderHandler(ctx *gin.Context) error {
	orderID := ctx.Param("orderID")
	if orderID == "" {
		return web.NewRequestError(web.ErrBadRequest, http.StatusBadRequest)
	}

	order, err := h.service.GetOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, dal.ErrOrderNotFound) {
			return web.NewRequestError(err, http.StatusNotFound)
		}

		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, order, http.StatusOK)
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *Orders) UpdateStatusHandler(ctx *gin.Context) error {
	orderID := ctx.Param("orderID")
	if orderID == "" {
		return web.NewRequestError(web.ErrBadRequest, http.StatusBadRequest)
	}

	var body updateStatusRequest
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	target, ok := domain.ParseStatus(body.Status)
	if !ok {
		return web.NewRequestError(service.ErrMissingStatus, http.StatusBadRequest)
	}

	order, err := h.service.UpdateStatus(ctx, orderID, target)
	if err != nil {
		switch {
		case errors.Is(err, dal.ErrOrderNotFound):
			return web.NewRequestError(err, http.StatusNotFound)
		case errors.Is(err, service.ErrInvalidTransition):
			return web.NewRequestError(err, http.StatusConflict)
		default:
			return web.NewRequestError(err, http.StatusInternalServerError)
		}
	}

	return web.Respond(ctx, order, http.StatusOK)
}

func (h *Orders) DeleteOrderHandler(ctx *gin.Context) error {
	orderID := ctx.Param("orderID")
	if orderID == "" {
		return web.NewRequestError(web.ErrBadRequest, http.StatusBadRequest)
	}

	if err := h.service.DeleteOrder(ctx, orderID); err != nil {
		if errors.Is(err, dal.ErrOrderNotFound) {
			return web.NewRequestError(err, http.StatusNotFound)
		}

		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, nil, http.StatusNoContent)
}

// DailyDigestHandler is invoked by the scheduler, not by users.
func (h *Orders) DailyDigestHandler(ctx *gin.Context) error {
	if err := h.service.SendDailyDigest(ctx); err != nil {
		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, nil, http.StatusOK)
}
