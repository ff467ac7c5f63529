package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/webhook"

	"github.com/atelieraurum/studio-api/payments/domain"
)

// HandleEvent verifies the webhook signature and dispatches the event to its
// finalizer. Unknown event types are logged and acknowledged so Stripe stops
// redelivering them.
func (s *PaymentService) HandleEvent(ctx context.Context, body []byte, signature string) error {
	l := s.loggerProvider(ctx)

	event, err := webhook.ConstructEvent(body, signature, s.stripeClient.WebhookSignKey())
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidWebhookSignature, err)
	}

	l.SetLabels(map[string]string{
		"eventType": event.Type,
	})

	kind, known := domain.ParseEventKind(event.Type)
	if !known {
		l.Warningf("unhandled stripe webhook event type: %s", event.Type)
		return nil
	}

	switch kind {
	case domain.EventCheckoutSessionCompleted:
		var session stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			return err
		}

		_, err := s.Finalize(ctx, session.ID)

		return err
	case domain.EventSubscriptionCreated:
		var sub stripe.Subscription
		if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
			return err
		}

		return s.handleSubscriptionCreated(ctx, &sub)
	case domain.EventSubscriptionUpdated:
		var sub stripe.Subscription
		if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
			return err
		}

		return s.handleSubscriptionUpdated(ctx, &sub)
	case domain.EventSubscriptionDeleted:
		var sub stripe.Subscription
		if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
			return err
		}

		return s.handleSubscriptionDeleted(ctx, &sub)
	case domain.EventInvoicePaid:
		var invoice stripe.Invoice
		if err := json.Unmarshal(event.Data.Raw, &invoice); err != nil {
			return err
		}

		return s.handleInvoicePaid(ctx, &invoice)
	case domain.EventInvoicePaymentFailed:
		var invoice stripe.Invoice
		if err := json.Unmarshal(event.Data.Raw, &invoice); err != nil {
			return err
		}

		return s.handleInvoicePaymentFailed(ctx, &invoice)
	default:
		l.Warningf("unhandled stripe webhook event type: %s", event.Type)
		return nil
	}
}
