package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	bookingsDAL "github.com/atelieraurum/studio-api/bookings/dal"
	bookingsDomain "github.com/atelieraurum/studio-api/bookings/domain"
	catalogService "github.com/atelieraurum/studio-api/catalog/service"
	"github.com/atelieraurum/studio-api/framework/connection"
	"github.com/atelieraurum/studio-api/framework/web"
	"github.com/atelieraurum/studio-api/logger"
	"github.com/atelieraurum/studio-api/payments/domain"
	"github.com/atelieraurum/studio-api/payments/iface"
	"github.com/atelieraurum/studio-api/payments/service"
)

type Payments struct {
	loggerProvider logger.Provider
	service        iface.Payments
}

// NewPayments creates new payments package handlers.
func NewPayments(loggerProvider logger.Provider, conn *connection.Connection) *Payments {
	paymentService, err := service.NewPaymentService(loggerProvider, conn)
	if err != nil {
		panic(err)
	}

	return &Payments{
		loggerProvider,
		paymentService,
	}
}

// CartCheckoutHandler opens a checkout session for a storefront cart.
func (h *Payments) CartCheckoutHandler(ctx *gin.Context) error {
	var req domain.CartCheckoutRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	session, err := h.service.CreateCartCheckout(ctx, &req)
	if err != nil {
		return translateCheckoutError(err)
	}

	return web.Respond(ctx, session, http.StatusOK)
}

// ClassCheckoutHandler opens a checkout session for a class booking.
func (h *Payments) ClassCheckoutHandler(ctx *gin.Context) error {
	return h.bookingCheckout(ctx, bookingsDomain.KindClass)
}

// LabCheckoutHandler opens a checkout session for a lab booking.
func (h *Payments) LabCheckoutHandler(ctx *gin.Context) error {
	return h.bookingCheckout(ctx, bookingsDomain.KindLab)
}

func (h *Payments) bookingCheckout(ctx *gin.Context, kind bookingsDomain.SessionKind) error {
	var req domain.BookingCheckoutRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	session, err := h.service.CreateBookingCheckout(ctx, kind, &req)
	if err != nil {
		return translateCheckoutError(err)
	}

	return web.Respond(ctx, session, http.StatusOK)
}

// MembershipCheckoutHandler opens a subscription session for a lab membership.
func (h *Payments) MembershipCheckoutHandler(ctx *gin.Context) error {
	var req domain.MembershipCheckoutRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	session, err := h.service.CreateMembershipCheckout(ctx, &req)
	if err != nil {
		return translateCheckoutError(err)
	}

	return web.Respond(ctx, session, http.StatusOK)
}

// FinalizeHandler is polled by the storefront success page with the session
// id Stripe appended to the redirect URL.
func (h *Payments) FinalizeHandler(ctx *gin.Context) error {
	sessionID := ctx.Query("session_id")
	if sessionID == "" {
		return web.NewRequestError(service.ErrMissingSessionID, http.StatusBadRequest)
	}

	result, err := h.service.Finalize(ctx, sessionID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPaymentIncomplete):
			return web.NewRequestError(err, http.StatusPaymentRequired)
		case errors.Is(err, service.ErrSessionNotFound):
			return web.NewRequestError(err, http.StatusNotFound)
		case isInventoryError(err):
			return web.NewRequestError(err, http.StatusConflict)
		default:
			return web.NewRequestError(err, http.StatusInternalServerError)
		}
	}

	return web.Respond(ctx, result, http.StatusOK)
}

// WebhookHandler receives signed events from Stripe.
func (h *Payments) WebhookHandler(ctx *gin.Context) error {
	body, err := io.ReadAll(ctx.Request.Body)
	if err != nil {
		return web.NewRequestError(web.ErrBadRequest, http.StatusBadRequest)
	}

	signature := ctx.Request.Header.Get("Stripe-Signature")
	if signature == "" {
		return web.NewRequestError(web.ErrBadRequest, http.StatusBadRequest)
	}

	if err := h.service.HandleEvent(ctx, body, signature); err != nil {
		if errors.Is(err, service.ErrInvalidWebhookSignature) {
			return web.NewRequestError(err, http.StatusBadRequest)
		}

		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, nil, http.StatusOK)
}

func isInventoryError(err error) bool {
	_, ok := catalogService.AsInventoryError(err)
	return ok
}

func translateCheckoutError(err error) error {
	switch {
	case isInventoryError(err):
		return web.NewRequestError(err, http.StatusBadRequest)
	case errors.Is(err, catalogService.ErrEmptyCart):
		return web.NewRequestError(err, http.StatusBadRequest)
	case errors.Is(err, bookingsDAL.ErrSessionNotFound):
		return web.NewRequestError(err, http.StatusNotFound)
	case errors.Is(err, bookingsDAL.ErrSessionFull):
		return web.NewRequestError(err, http.StatusConflict)
	case errors.Is(err, service.ErrActiveMembershipExists):
		return web.NewRequestError(err, http.StatusConflict)
	case errors.Is(err, domain.ErrMetadataTooLarge):
		return web.NewRequestError(err, http.StatusBadRequest)
	default:
		return web.NewRequestError(err, http.StatusInternalServerError)
	}
}
