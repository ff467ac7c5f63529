package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v74"

	customersDomain "github.com/atelieraurum/studio-api/customers/domain"
	"github.com/atelieraurum/studio-api/mailer"
	"github.com/atelieraurum/studio-api/payments/domain"
	subscriptionsDAL "github.com/atelieraurum/studio-api/subscriptions/dal"
	subscriptionsDomain "github.com/atelieraurum/studio-api/subscriptions/domain"
)

// handleSubscriptionCreated materializes a lab membership from a provider
// subscription event. The document is keyed by the Stripe subscription id, so
// webhook redelivery converges on one record; the management token is minted
// once by whichever call performs the insert.
func (s *PaymentService) handleSubscriptionCreated(ctx context.Context, sub *stripe.Subscription) error {
	l := s.loggerProvider(ctx)

	metadata, err := domain.DecodeSessionMetadata(sub.Metadata)
	if err != nil {
		// Subscriptions created outside our checkout flow carry no metadata;
		// skip them rather than fail the webhook.
		l.Warningf("subscription %s has no usable metadata: %s", sub.ID, err)
		return nil
	}

	customer, err := s.customersDAL.ResolveOrCreate(ctx, customersDomain.Contact{
		FirstName: metadata.FirstName,
		LastName:  metadata.LastName,
		Email:     metadata.Email,
		Phone:     metadata.Phone,
	})
	if err != nil {
		return err
	}

	subscription := &subscriptionsDomain.Subscription{
		StripeSubscriptionID: sub.ID,
		StripeCustomerID:     stripeCustomerID(sub),
		CustomerID:           customer.ID,
		PlanID:               metadata.PlanID,
		Status:               subscriptionsDomain.SubscriptionStatus(sub.Status),
		CurrentPeriodStart:   time.Unix(sub.CurrentPeriodStart, 0).UTC(),
		CurrentPeriodEnd:     time.Unix(sub.CurrentPeriodEnd, 0).UTC(),
		CancelAtPeriodEnd:    sub.CancelAtPeriodEnd,
		ManagementToken:      uuid.New().String(),
		Created:              time.Now().UTC(),
	}

	created, persisted, err := s.subscriptionsDAL.CreateIfAbsent(ctx, subscription)
	if err != nil {
		return err
	}

	if created {
		s.sendMembershipWelcome(ctx, persisted, metadata.FirstName, metadata.Email)
	}

	return nil
}

// handleSubscriptionUpdated applies the provider's view of the billing period
// and status onto the stored membership.
func (s *PaymentService) handleSubscriptionUpdated(ctx context.Context, sub *stripe.Subscription) error {
	err := s.subscriptionsDAL.UpdatePeriod(ctx, sub.ID, &subscriptionsDomain.Subscription{
		Status:             subscriptionsDomain.SubscriptionStatus(sub.Status),
		CurrentPeriodStart: time.Unix(sub.CurrentPeriodStart, 0).UTC(),
		CurrentPeriodEnd:   time.Unix(sub.CurrentPeriodEnd, 0).UTC(),
		CancelAtPeriodEnd:  sub.CancelAtPeriodEnd,
	})

	return s.acknowledgeUntracked(ctx, sub.ID, err)
}

func (s *PaymentService) handleSubscriptionDeleted(ctx context.Context, sub *stripe.Subscription) error {
	err := s.subscriptionsDAL.UpdateStatus(ctx, sub.ID, subscriptionsDomain.StatusCanceled)

	return s.acknowledgeUntracked(ctx, sub.ID, err)
}

// handleInvoicePaid refreshes the membership status after a successful
// renewal charge.
func (s *PaymentService) handleInvoicePaid(ctx context.Context, invoice *stripe.Invoice) error {
	if invoice.Subscription == nil {
		return nil
	}

	err := s.subscriptionsDAL.UpdateStatus(ctx, invoice.Subscription.ID, subscriptionsDomain.StatusActive)

	return s.acknowledgeUntracked(ctx, invoice.Subscription.ID, err)
}

func (s *PaymentService) handleInvoicePaymentFailed(ctx context.Context, invoice *stripe.Invoice) error {
	if invoice.Subscription == nil {
		return nil
	}

	err := s.subscriptionsDAL.UpdateStatus(ctx, invoice.Subscription.ID, subscriptionsDomain.StatusPastDue)

	return s.acknowledgeUntracked(ctx, invoice.Subscription.ID, err)
}

// acknowledgeUntracked swallows updates for subscriptions we never recorded,
// such as ones created directly in the provider dashboard. Failing the webhook
// would only make Stripe redeliver an event we can never apply.
func (s *PaymentService) acknowledgeUntracked(ctx context.Context, subscriptionID string, err error) error {
	if errors.Is(err, subscriptionsDAL.ErrSubscriptionNotFound) {
		s.loggerProvider(ctx).Warningf("ignoring event for untracked subscription %s", subscriptionID)
		return nil
	}

	return err
}

func (s *PaymentService) sendMembershipWelcome(ctx context.Context, subscription *subscriptionsDomain.Subscription, firstName, email string) {
	l := s.loggerProvider(ctx)

	if email == "" {
		return
	}

	sn := &mailer.SimpleNotification{
		Subject:    "Welcome to the lab",
		TemplateID: mailer.Config.DynamicTemplates.MembershipWelcome,
		Categories: []string{mailer.CategoryMemberships},
	}

	params := map[string]interface{}{
		"first_name":       firstName,
		"management_token": subscription.ManagementToken,
		"period_end":       subscription.CurrentPeriodEnd.Format("Jan 2, 2006"),
	}

	if err := s.notifications.SendNotification(sn, email, params); err != nil {
		l.Errorf("failed to send membership welcome for %s: %s", subscription.ID, err)
	}
}

func stripeCustomerID(sub *stripe.Subscription) string {
	if sub.Customer == nil {
		return ""
	}

	return sub.Customer.ID
}
