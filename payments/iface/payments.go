//go:generate mockery --output=./mocks --all
package iface

import (
	"context"

	bookingsDomain "github.com/atelieraurum/studio-api/bookings/domain"
	"github.com/atelieraurum/studio-api/payments/domain"
)

type Payments interface {
	CreateCartCheckout(ctx context.Context, req *domain.CartCheckoutRequest) (*domain.CheckoutSessionResponse, error)
	CreateBookingCheckout(ctx context.Context, kind bookingsDomain.SessionKind, req *domain.BookingCheckoutRequest) (*domain.CheckoutSessionResponse, error)
	CreateMembershipCheckout(ctx context.Context, req *domain.MembershipCheckoutRequest) (*domain.CheckoutSessionResponse, error)
	Finalize(ctx context.Context, sessionID string) (*domain.OrderResult, error)
	HandleEvent(ctx context.Context, body []byte, signature string) error
}
