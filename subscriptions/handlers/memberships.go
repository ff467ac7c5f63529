package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/atelieraurum/studio-api/framework/connection"
	"github.com/atelieraurum/studio-api/framework/web"
	"github.com/atelieraurum/studio-api/logger"
	"github.com/atelieraurum/studio-api/subscriptions/dal"
	"github.com/atelieraurum/studio-api/subscriptions/service"
)

type Memberships struct {
	loggerProvider logger.Provider
	service        service.Memberships
}

// NewMemberships creates new subscriptions package handlers.
func NewMemberships(loggerProvider logger.Provider, conn *connection.Connection) *Memberships {
	membershipService, err := service.NewMembershipService(loggerProvider, conn)
	if err != nil {
		panic(err)
	}

	return &Memberships{
		loggerProvider,
		membershipService,
	}
}

// GetMembershipHandler serves the self-service management view. The token in
// the path is the only credential; an unknown token is a 404, never a hint.
func (h *Memberships) GetMembershipHandler(ctx *gin.Context) error {
	token := ctx.Param("token")
	if token == "" {
		return web.NewRequestError(web.ErrBadRequest, http.StatusBadRequest)
	}

	subscription, err := h.service.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, dal.ErrSubscriptionNotFound) {
			return web.NewRequestError(err, http.StatusNotFound)
		}

		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, subscription, http.StatusOK)
}

// CancelMembershipHandler schedules the membership to end at the close of the
// current billing period.
func (h *Memberships) CancelMembershipHandler(ctx *gin.Context) error {
	token := ctx.Param("token")
	if token == "" {
		return web.NewRequestError(web.ErrBadRequest, http.StatusBadRequest)
	}

	subscription, err := h.service.CancelByToken(ctx, token)
	if err != nil {
		switch {
		case errors.Is(err, dal.ErrSubscriptionNotFound):
			return web.NewRequestError(err, http.StatusNotFound)
		case errors.Is(err, service.ErrAlreadyCanceled):
			return web.NewRequestError(err, http.StatusConflict)
		default:
			return web.NewRequestError(err, http.StatusInternalServerError)
		}
	}

	return web.Respond(ctx, subscription, http.StatusOK)
}
