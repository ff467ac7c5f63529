package service

import (
	"errors"
)

var (
	ErrMissingSessionID        = errors.New("session id is missing")
	ErrSessionNotFound         = errors.New("checkout session not found")
	ErrPaymentIncomplete       = errors.New("payment has not been completed")
	ErrActiveMembershipExists  = errors.New("customer already holds an active membership for this plan")
	ErrCreateSession           = errors.New("failed to create checkout session")
	ErrInvalidWebhookSignature = errors.New("webhook signature verification failed")
	ErrUnhandledSessionKind    = errors.New("checkout session kind has no finalizer")
)
