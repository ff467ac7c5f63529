//go:generate mockery --output=./mocks --all

package dal

import (
	"context"
	"errors"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/atelieraurum/studio-api/common"
	"github.com/atelieraurum/studio-api/framework/connection"
	"github.com/atelieraurum/studio-api/subscriptions/domain"
)

const (
	subscriptionsCollection = "subscriptions"

	fieldStatus             = "status"
	fieldCustomerID         = "customerId"
	fieldPlanID             = "planId"
	fieldManagementToken    = "managementToken"
	fieldCurrentPeriodStart = "currentPeriodStart"
	fieldCurrentPeriodEnd   = "currentPeriodEnd"
	fieldCancelAtPeriodEnd  = "cancelAtPeriodEnd"
)

var (
	ErrSubscriptionNotFound   = errors.New("subscription not found")
	ErrMissingSubscriptionID  = errors.New("subscription is missing a stripe subscription id")
	ErrMissingManagementToken = errors.New("management token is missing")
	ErrNoEntitledSubscription = errors.New("customer has no entitled subscription for the plan")
)

//go:generate mockery --name Subscriptions --output ./mocks
type Subscriptions interface {
	GetBySubscriptionID(ctx context.Context, subscriptionID string) (*domain.Subscription, error)
	GetByManagementToken(ctx context.Context, token string) (*domain.Subscription, error)
	GetEntitledByCustomerAndPlan(ctx context.Context, customerID, planID string) (*domain.Subscription, error)
	CreateIfAbsent(ctx context.Context, subscription *domain.Subscription) (bool, *domain.Subscription, error)
	UpdatePeriod(ctx context.Context, subscriptionID string, subscription *domain.Subscription) error
	UpdateStatus(ctx context.Context, subscriptionID string, subscriptionStatus domain.SubscriptionStatus) error
}

// SubscriptionsFirestore is used to interact with lab memberships stored on
// Firestore. Documents are keyed by the Stripe subscription id.
type SubscriptionsFirestore struct {
	firestoreClientFun connection.FirestoreFromContextFun
}

// NewSubscriptionsFirestore returns a new SubscriptionsFirestore instance with given project id.
func NewSubscriptionsFirestore(ctx context.Context, projectID string) (*SubscriptionsFirestore, error) {
	fs, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, err
	}

	return NewSubscriptionsFirestoreWithClient(
		func(ctx context.Context) *firestore.Client {
			return fs
		},
	), nil
}

// NewSubscriptionsFirestoreWithClient returns a new SubscriptionsFirestore using given client.
func NewSubscriptionsFirestoreWithClient(fun connection.FirestoreFromContextFun) *SubscriptionsFirestore {
	return &SubscriptionsFirestore{
		firestoreClientFun: fun,
	}
}

func (d *SubscriptionsFirestore) GetRef(ctx context.Context, subscriptionID string) *firestore.DocumentRef {
	return d.firestoreClientFun(ctx).Collection(subscriptionsCollection).Doc(subscriptionID)
}

func (d *SubscriptionsFirestore) GetBySubscriptionID(ctx context.Context, subscriptionID string) (*domain.Subscription, error) {
	if subscriptionID == "" {
		return nil, ErrMissingSubscriptionID
	}

	docSnap, err := d.GetRef(ctx, subscriptionID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrSubscriptionNotFound
		}

		return nil, err
	}

	return subscriptionFromSnap(docSnap)
}

// GetByManagementToken resolves the subscription behind a self-service
// management link.
func (d *SubscriptionsFirestore) GetByManagementToken(ctx context.Context, token string) (*domain.Subscription, error) {
	if token == "" {
		return nil, ErrMissingManagementToken
	}

	docSnaps, err := d.firestoreClientFun(ctx).
		Collection(subscriptionsCollection).
		Where(fieldManagementToken, "==", token).
		Limit(1).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, err
	}

	if len(docSnaps) == 0 {
		return nil, ErrSubscriptionNotFound
	}

	return subscriptionFromSnap(docSnaps[0])
}

// GetEntitledByCustomerAndPlan returns the customer's active or trialing
// subscription on the plan, if any. Backs the one-membership-per-plan
// pre-check before a new checkout session is created.
func (d *SubscriptionsFirestore) GetEntitledByCustomerAndPlan(ctx context.Context, customerID, planID string) (*domain.Subscription, error) {
	docSnaps, err := d.firestoreClientFun(ctx).
		Collection(subscriptionsCollection).
		Where(fieldCustomerID, "==", customerID).
		Where(fieldPlanID, "==", planID).
		Where(fieldStatus, common.In, []string{string(domain.StatusActive), string(domain.StatusTrialing)}).
		Limit(1).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, err
	}

	if len(docSnaps) == 0 {
		return nil, ErrNoEntitledSubscription
	}

	return subscriptionFromSnap(docSnaps[0])
}

// CreateIfAbsent inserts the subscription only if none exists for its Stripe
// subscription id. On a lost race the winning document is returned, same
// idempotency primitive as order creation.
func (d *SubscriptionsFirestore) CreateIfAbsent(ctx context.Context, subscription *domain.Subscription) (bool, *domain.Subscription, error) {
	if subscription.StripeSubscriptionID == "" {
		return false, nil, ErrMissingSubscriptionID
	}

	_, err := d.GetRef(ctx, subscription.StripeSubscriptionID).Create(ctx, subscription)
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			existing, err := d.GetBySubscriptionID(ctx, subscription.StripeSubscriptionID)
			if err != nil {
				return false, nil, err
			}

			return false, existing, nil
		}

		return false, nil, err
	}

	subscription.ID = subscription.StripeSubscriptionID

	return true, subscription, nil
}

// UpdatePeriod applies a provider-sourced update of the billing period and
// status fields. The management token and customer linkage never change.
func (d *SubscriptionsFirestore) UpdatePeriod(ctx context.Context, subscriptionID string, subscription *domain.Subscription) error {
	_, err := d.GetRef(ctx, subscriptionID).Update(ctx, []firestore.Update{
		{Path: fieldStatus, Value: subscription.Status},
		{Path: fieldCurrentPeriodStart, Value: subscription.CurrentPeriodStart},
		{Path: fieldCurrentPeriodEnd, Value: subscription.CurrentPeriodEnd},
		{Path: fieldCancelAtPeriodEnd, Value: subscription.CancelAtPeriodEnd},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return ErrSubscriptionNotFound
		}

		return err
	}

	return nil
}

// UpdateStatus sets only the subscription status.
func (d *SubscriptionsFirestore) UpdateStatus(ctx context.Context, subscriptionID string, subscriptionStatus domain.SubscriptionStatus) error {
	_, err := d.GetRef(ctx, subscriptionID).Update(ctx, []firestore.Update{
		{Path: fieldStatus, Value: subscriptionStatus},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return ErrSubscriptionNotFound
		}

		return err
	}

	return nil
}

func subscriptionFromSnap(docSnap *firestore.DocumentSnapshot) (*domain.Subscription, error) {
	var subscription domain.Subscription

	if err := docSnap.DataTo(&subscription); err != nil {
		return nil, err
	}

	subscription.ID = docSnap.Ref.ID

	return &subscription, nil
}
