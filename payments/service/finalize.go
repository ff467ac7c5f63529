package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/stripe/stripe-go/v74"

	customersDomain "github.com/atelieraurum/studio-api/customers/domain"
	"github.com/atelieraurum/studio-api/mailer"
	ordersDAL "github.com/atelieraurum/studio-api/orders/dal"
	ordersDomain "github.com/atelieraurum/studio-api/orders/domain"
	"github.com/atelieraurum/studio-api/payments/domain"
)

// Finalize converts a completed checkout session into its persisted record.
// Both the storefront success-page poll and the webhook invoke it, possibly
// concurrently for the same session; the insert-only-if-absent write keyed by
// session id makes every caller converge on the same record.
func (s *PaymentService) Finalize(ctx context.Context, sessionID string) (*domain.OrderResult, error) {
	if sessionID == "" {
		return nil, ErrMissingSessionID
	}

	// Idempotent short-circuit: a record for this session means a previous
	// call already did the work.
	order, err := s.ordersDAL.GetOrderBySessionID(ctx, sessionID)
	if err == nil {
		return orderResult(order), nil
	}

	if !errors.Is(err, ordersDAL.ErrOrderNotFound) {
		return nil, err
	}

	session, metadata, err := s.paidSession(sessionID)
	if err != nil {
		return nil, err
	}

	switch metadata.Kind {
	case domain.KindCart:
		return s.finalizeOrder(ctx, session, metadata)
	case domain.KindClass, domain.KindLab:
		return s.finalizeBooking(ctx, session, metadata)
	case domain.KindMembership:
		// Memberships are fulfilled by the subscription webhook events; the
		// success-page poll only confirms payment went through.
		return &domain.OrderResult{
			Success:        true,
			SubscriptionID: subscriptionID(session),
			TotalAmount:    session.AmountTotal,
			Message:        "membership payment completed",
		}, nil
	default:
		return nil, ErrUnhandledSessionKind
	}
}

// paidSession fetches the session from Stripe and requires completed payment.
func (s *PaymentService) paidSession(sessionID string) (*stripe.CheckoutSession, *domain.SessionMetadata, error) {
	session, err := s.stripeClient.GetCheckoutSession(sessionID, nil)
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) && stripeErr.Code == stripe.ErrorCodeResourceMissing {
			return nil, nil, ErrSessionNotFound
		}

		return nil, nil, err
	}

	if session.PaymentStatus != stripe.CheckoutSessionPaymentStatusPaid {
		return nil, nil, ErrPaymentIncomplete
	}

	metadata, err := domain.DecodeSessionMetadata(session.Metadata)
	if err != nil {
		return nil, nil, err
	}

	return session, metadata, nil
}

// finalizeOrder materializes an order from a paid cart session.
func (s *PaymentService) finalizeOrder(ctx context.Context, session *stripe.CheckoutSession, metadata *domain.SessionMetadata) (*domain.OrderResult, error) {
	l := s.loggerProvider(ctx)

	// Re-verify against current inventory. The earlier check at session
	// creation time does not reserve stock; a session paid after someone
	// else bought the last piece must not create an order.
	if err := s.stockService.VerifyInStock(ctx, metadata.Cart); err != nil {
		return nil, err
	}

	applied, err := s.stockService.DecrementStock(ctx, metadata.Cart)
	if err != nil {
		// Decrements are per line with no cross-line rollback; a partial
		// application is logged and the order still goes through.
		l.Errorf("stock decrement applied %d of %d lines for session %s: %s", applied, len(metadata.Cart), session.ID, err)
	}

	customer, err := s.customersDAL.ResolveOrCreate(ctx, customersDomain.Contact{
		FirstName: metadata.FirstName,
		LastName:  metadata.LastName,
		Email:     metadata.Email,
		Phone:     metadata.Phone,
	})
	if err != nil {
		return nil, err
	}

	order := &ordersDomain.Order{
		StripeSessionID:   session.ID,
		CustomerID:        customer.ID,
		CustomerFirstName: metadata.FirstName,
		CustomerLastName:  metadata.LastName,
		CustomerEmail:     metadata.Email,
		LineItems:         metadata.Cart,
		TotalAmount:       session.AmountTotal,
		OrderStatus:       ordersDomain.StatusPending,
		DeliveryMethod:    ordersDomain.DeliveryMethod(metadata.DeliveryMethod),
		ShippingMethod:    ordersDomain.ShippingMethod(metadata.ShippingMethod),
		Comments:          metadata.Comments,
		OrderDate:         time.Now().UTC(),
	}

	created, persisted, err := s.ordersDAL.CreateIfAbsent(ctx, order)
	if err != nil {
		return nil, err
	}

	if created {
		if err := s.customersDAL.AttachOrder(ctx, customer.ID, persisted.ID); err != nil {
			l.Errorf("failed to attach order %s to customer %s: %s", persisted.ID, customer.ID, err)
		}

		s.sendOrderConfirmation(ctx, persisted)
	}

	return orderResult(persisted), nil
}

// sendOrderConfirmation attempts the confirmation email and records success.
// A mail failure is logged and swallowed, never failing the finalize call.
func (s *PaymentService) sendOrderConfirmation(ctx context.Context, order *ordersDomain.Order) {
	l := s.loggerProvider(ctx)

	if order.CustomerEmail == "" {
		return
	}

	sn := &mailer.SimpleNotification{
		Subject:    "Thank you for your order",
		TemplateID: mailer.Config.DynamicTemplates.OrderConfirmation,
		Categories: []string{mailer.CategoryOrders},
	}

	params := map[string]interface{}{
		"first_name":      order.CustomerFirstName,
		"order_id":        order.ID,
		"total_amount":    order.TotalAmount,
		"delivery_method": string(order.DeliveryMethod),
	}

	if err := s.notifications.SendNotification(sn, order.CustomerEmail, params); err != nil {
		l.Errorf("failed to send order confirmation for %s: %s", order.ID, err)
		return
	}

	if err := s.ordersDAL.SetEmailSent(ctx, order.ID); err != nil {
		l.Errorf("failed to mark order %s email as sent: %s", order.ID, err)
	}
}

func orderResult(order *ordersDomain.Order) *domain.OrderResult {
	return &domain.OrderResult{
		Success:        true,
		OrderID:        order.ID,
		DeliveryMethod: string(order.DeliveryMethod),
		TotalAmount:    order.TotalAmount,
		Message:        fmt.Sprintf("order %s", order.OrderStatus),
	}
}

func subscriptionID(session *stripe.CheckoutSession) string {
	if session.Subscription == nil {
		return ""
	}

	return session.Subscription.ID
}
