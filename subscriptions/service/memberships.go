//go:generate mockery --name Memberships --output ./mocks

package service

import (
	"context"
	"errors"

	"github.com/stripe/stripe-go/v74"

	customersDAL "github.com/atelieraurum/studio-api/customers/dal"
	"github.com/atelieraurum/studio-api/framework/connection"
	"github.com/atelieraurum/studio-api/logger"
	"github.com/atelieraurum/studio-api/mailer"
	paymentsService "github.com/atelieraurum/studio-api/payments/service"
	"github.com/atelieraurum/studio-api/subscriptions/dal"
	"github.com/atelieraurum/studio-api/subscriptions/domain"
)

var ErrAlreadyCanceled = errors.New("membership is already canceled")

// SubscriptionCanceler is the slice of the Stripe API the membership service
// touches.
//
//go:generate mockery --name SubscriptionCanceler --output ./mocks
type SubscriptionCanceler interface {
	CancelAtPeriodEnd(subscriptionID string) (*stripe.Subscription, error)
}

type stripeCanceler struct {
	client *paymentsService.Client
}

func (c *stripeCanceler) CancelAtPeriodEnd(subscriptionID string) (*stripe.Subscription, error) {
	return c.client.Subscriptions.Update(subscriptionID, &stripe.SubscriptionParams{
		CancelAtPeriodEnd: stripe.Bool(true),
	})
}

type Memberships interface {
	GetByToken(ctx context.Context, token string) (*domain.Subscription, error)
	CancelByToken(ctx context.Context, token string) (*domain.Subscription, error)
}

// MembershipService backs the self-service membership management view. All
// access is via the management token minted at signup, no login involved.
type MembershipService struct {
	loggerProvider   logger.Provider
	subscriptionsDAL dal.Subscriptions
	customersDAL     customersDAL.Customers
	canceler         SubscriptionCanceler
	notifications    mailer.NotificationSender
}

func NewMembershipService(loggerProvider logger.Provider, conn *connection.Connection) (*MembershipService, error) {
	stripeClient, err := paymentsService.NewStripeClient()
	if err != nil {
		return nil, err
	}

	return &MembershipService{
		loggerProvider,
		dal.NewSubscriptionsFirestoreWithClient(conn.Firestore),
		customersDAL.NewCustomersFirestoreWithClient(conn.Firestore),
		&stripeCanceler{stripeClient},
		mailer.ForEnvironment(),
	}, nil
}

// NewMembershipServiceWithDeps is used by tests.
func NewMembershipServiceWithDeps(
	loggerProvider logger.Provider,
	subscriptionsDAL dal.Subscriptions,
	customers customersDAL.Customers,
	canceler SubscriptionCanceler,
	notifications mailer.NotificationSender,
) *MembershipService {
	return &MembershipService{
		loggerProvider,
		subscriptionsDAL,
		customers,
		canceler,
		notifications,
	}
}

func (s *MembershipService) GetByToken(ctx context.Context, token string) (*domain.Subscription, error) {
	return s.subscriptionsDAL.GetByManagementToken(ctx, token)
}

// CancelByToken schedules the membership to end at the close of the current
// billing period. The provider is the source of truth; the local record is
// updated optimistically and reconciled by the subscription.updated webhook.
func (s *MembershipService) CancelByToken(ctx context.Context, token string) (*domain.Subscription, error) {
	l := s.loggerProvider(ctx)

	subscription, err := s.subscriptionsDAL.GetByManagementToken(ctx, token)
	if err != nil {
		return nil, err
	}

	if subscription.Status == domain.StatusCanceled || subscription.CancelAtPeriodEnd {
		return nil, ErrAlreadyCanceled
	}

	if _, err := s.canceler.CancelAtPeriodEnd(subscription.StripeSubscriptionID); err != nil {
		return nil, err
	}

	subscription.CancelAtPeriodEnd = true

	if err := s.subscriptionsDAL.UpdatePeriod(ctx, subscription.StripeSubscriptionID, subscription); err != nil {
		l.Errorf("failed to record cancellation for subscription %s: %s", subscription.StripeSubscriptionID, err)
	}

	s.sendCancellationConfirmation(ctx, subscription)

	return subscription, nil
}

func (s *MembershipService) sendCancellationConfirmation(ctx context.Context, subscription *domain.Subscription) {
	l := s.loggerProvider(ctx)

	customer, err := s.customersDAL.GetCustomer(ctx, subscription.CustomerID)
	if err != nil || customer.Email == "" {
		return
	}

	sn := &mailer.SimpleNotification{
		Subject:    "Your lab membership has been canceled",
		TemplateID: mailer.Config.DynamicTemplates.MembershipCanceled,
		Categories: []string{mailer.CategoryMemberships},
	}

	params := map[string]interface{}{
		"first_name": customer.FirstName,
		"period_end": subscription.CurrentPeriodEnd.Format("Jan 2, 2006"),
	}

	if err := s.notifications.SendNotification(sn, customer.Email, params); err != nil {
		l.Errorf("failed to send cancellation confirmation for subscription %s: %s", subscription.StripeSubscriptionID, err)
	}
}
