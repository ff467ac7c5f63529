package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/stripe/stripe-go/v74"

	bookingsDAL "github.com/atelieraurum/studio-api/bookings/dal"
	bookingsDomain "github.com/atelieraurum/studio-api/bookings/domain"
	"github.com/atelieraurum/studio-api/common"
	customersDAL "github.com/atelieraurum/studio-api/customers/dal"
	customersDomain "github.com/atelieraurum/studio-api/customers/domain"
	"github.com/atelieraurum/studio-api/payments/consts"
	"github.com/atelieraurum/studio-api/payments/domain"
	subscriptionsDAL "github.com/atelieraurum/studio-api/subscriptions/dal"
)

const currency = "usd"

func successURL() string {
	return fmt.Sprintf(consts.SuccessPathFormat, "https://"+common.Domain)
}

func cancelURL() string {
	return fmt.Sprintf(consts.CancelPathFormat, "https://"+common.Domain)
}

func sessionExpiry() int64 {
	return time.Now().Add(consts.SessionExpiry).Unix()
}

// CreateCartCheckout verifies stock and opens a payment session for a
// storefront cart. A passing stock check does not reserve anything; the
// conditional decrement at finalize time is the real guard.
func (s *PaymentService) CreateCartCheckout(ctx context.Context, req *domain.CartCheckoutRequest) (*domain.CheckoutSessionResponse, error) {
	if err := s.stockService.VerifyInStock(ctx, req.CartItems); err != nil {
		return nil, err
	}

	metadata := &domain.SessionMetadata{
		Kind:           domain.KindCart,
		FirstName:      req.CustomerInfo.FirstName,
		LastName:       req.CustomerInfo.LastName,
		Email:          req.CustomerInfo.Email,
		Phone:          req.CustomerInfo.Phone,
		DeliveryMethod: string(req.DeliveryMethod),
		ShippingMethod: string(req.ShippingMethod),
		Comments:       req.Comments,
		Cart:           req.CartItems,
	}

	encoded, err := metadata.Encode()
	if err != nil {
		return nil, err
	}

	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(req.CartItems))

	for _, line := range req.CartItems {
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			Quantity: stripe.Int64(line.Quantity),
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:   stripe.String(currency),
				UnitAmount: stripe.Int64(line.UnitPrice),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(line.Name),
				},
			},
		})
	}

	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems:  lineItems,
		SuccessURL: stripe.String(successURL()),
		CancelURL:  stripe.String(cancelURL()),
		ExpiresAt:  stripe.Int64(sessionExpiry()),
	}
	params.Metadata = encoded

	if req.CustomerInfo.Email != "" {
		params.CustomerEmail = stripe.String(req.CustomerInfo.Email)
	}

	session, err := s.stripeClient.NewCheckoutSession(params)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrCreateSession, err)
	}

	return &domain.CheckoutSessionResponse{ID: session.ID, URL: session.URL}, nil
}

// CreateBookingCheckout opens a payment session for a class or lab booking.
// Capacity is checked up front so a full session fails fast; the conditional
// participant increment at finalize time is the real guard.
func (s *PaymentService) CreateBookingCheckout(ctx context.Context, kind bookingsDomain.SessionKind, req *domain.BookingCheckoutRequest) (*domain.CheckoutSessionResponse, error) {
	studioSession, err := s.bookingsDAL.GetSession(ctx, req.SessionID)
	if err != nil {
		return nil, err
	}

	if studioSession.Kind != kind {
		return nil, bookingsDAL.ErrSessionNotFound
	}

	if studioSession.SeatsLeft() < req.Seats {
		return nil, bookingsDAL.ErrSessionFull
	}

	checkoutKind := domain.KindClass
	if kind == bookingsDomain.KindLab {
		checkoutKind = domain.KindLab
	}

	metadata := &domain.SessionMetadata{
		Kind:          checkoutKind,
		FirstName:     req.CustomerInfo.FirstName,
		LastName:      req.CustomerInfo.LastName,
		Email:         req.CustomerInfo.Email,
		Phone:         req.CustomerInfo.Phone,
		StudioSession: studioSession.ID,
		Seats:         req.Seats,
	}

	encoded, err := metadata.Encode()
	if err != nil {
		return nil, err
	}

	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Quantity: stripe.Int64(req.Seats),
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(currency),
					UnitAmount: stripe.Int64(studioSession.Price),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(studioSession.Title),
					},
				},
			},
		},
		SuccessURL: stripe.String(successURL()),
		CancelURL:  stripe.String(cancelURL()),
		ExpiresAt:  stripe.Int64(sessionExpiry()),
	}
	params.Metadata = encoded

	if req.CustomerInfo.Email != "" {
		params.CustomerEmail = stripe.String(req.CustomerInfo.Email)
	}

	session, err := s.stripeClient.NewCheckoutSession(params)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrCreateSession, err)
	}

	return &domain.CheckoutSessionResponse{ID: session.ID, URL: session.URL}, nil
}

// CreateMembershipCheckout opens a subscription session for a lab membership
// plan. A customer already holding an active or trialing membership on the
// plan is rejected before any session is created.
func (s *PaymentService) CreateMembershipCheckout(ctx context.Context, req *domain.MembershipCheckoutRequest) (*domain.CheckoutSessionResponse, error) {
	if err := s.ensureNoActiveMembership(ctx, &req.CustomerInfo, req.PlanID); err != nil {
		return nil, err
	}

	metadata := &domain.SessionMetadata{
		Kind:      domain.KindMembership,
		FirstName: req.CustomerInfo.FirstName,
		LastName:  req.CustomerInfo.LastName,
		Email:     req.CustomerInfo.Email,
		Phone:     req.CustomerInfo.Phone,
		PlanID:    req.PlanID,
	}

	encoded, err := metadata.Encode()
	if err != nil {
		return nil, err
	}

	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(req.PlanID),
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(successURL()),
		CancelURL:  stripe.String(cancelURL()),
		ExpiresAt:  stripe.Int64(sessionExpiry()),
		SubscriptionData: &stripe.CheckoutSessionSubscriptionDataParams{
			Metadata: encoded,
		},
	}
	params.Metadata = encoded

	if req.CustomerInfo.Email != "" {
		params.CustomerEmail = stripe.String(req.CustomerInfo.Email)
	}

	session, err := s.stripeClient.NewCheckoutSession(params)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrCreateSession, err)
	}

	return &domain.CheckoutSessionResponse{ID: session.ID, URL: session.URL}, nil
}

// ensureNoActiveMembership rejects a plan signup when the contact resolves to
// a customer already holding an active or trialing membership on it. The
// lookup mirrors the finalizer's resolution order: email first, then phone.
func (s *PaymentService) ensureNoActiveMembership(ctx context.Context, info *domain.CustomerInfo, planID string) error {
	customer, err := s.lookupCustomer(ctx, info)
	if err != nil {
		return err
	}

	if customer == nil {
		// first-time customer, nothing to pre-check
		return nil
	}

	_, err = s.subscriptionsDAL.GetEntitledByCustomerAndPlan(ctx, customer.ID, planID)
	if err == nil {
		return ErrActiveMembershipExists
	}

	if !errors.Is(err, subscriptionsDAL.ErrNoEntitledSubscription) {
		return err
	}

	return nil
}

func (s *PaymentService) lookupCustomer(ctx context.Context, info *domain.CustomerInfo) (*customersDomain.Customer, error) {
	if info.Email != "" {
		customer, err := s.customersDAL.GetCustomerByEmail(ctx, info.Email)
		if err == nil {
			return customer, nil
		}

		if !errors.Is(err, customersDAL.ErrCustomerNotFound) {
			return nil, err
		}
	}

	if info.Phone != "" {
		customer, err := s.customersDAL.GetCustomerByPhone(ctx, info.Phone)
		if err == nil {
			return customer, nil
		}

		if !errors.Is(err, customersDAL.ErrCustomerNotFound) {
			return nil, err
		}
	}

	return nil, nil
}
