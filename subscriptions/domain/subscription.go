package domain

import (
	"time"
)

// SubscriptionStatus mirrors the Stripe subscription lifecycle states the
// studio cares about.
type SubscriptionStatus string

const (
	StatusActive   SubscriptionStatus = "active"
	StatusTrialing SubscriptionStatus = "trialing"
	StatusPastDue  SubscriptionStatus = "past_due"
	StatusCanceled SubscriptionStatus = "canceled"
	StatusUnpaid   SubscriptionStatus = "unpaid"
)

// IsEntitled reports whether the status grants lab access. A customer may
// hold at most one entitled subscription per plan.
func (s SubscriptionStatus) IsEntitled() bool {
	return s == StatusActive || s == StatusTrialing
}

// Subscription is a lab membership. The Firestore document id is the Stripe
// subscription id, which enforces at most one record per provider
// subscription. The management token is an unguessable capability string
// granting access to the self-service management view without login.
type Subscription struct {
	ID                   string             `firestore:"-" json:"id"`
	StripeSubscriptionID string             `firestore:"stripeSubscriptionId" json:"stripeSubscriptionId"`
	StripeCustomerID     string             `firestore:"stripeCustomerId" json:"-"`
	CustomerID           string             `firestore:"customerId" json:"customerId"`
	PlanID               string             `firestore:"planId" json:"planId"`
	Status               SubscriptionStatus `firestore:"status" json:"status"`
	CurrentPeriodStart   time.Time          `firestore:"currentPeriodStart" json:"currentPeriodStart"`
	CurrentPeriodEnd     time.Time          `firestore:"currentPeriodEnd" json:"currentPeriodEnd"`
	CancelAtPeriodEnd    bool               `firestore:"cancelAtPeriodEnd" json:"cancelAtPeriodEnd"`
	ManagementToken      string             `firestore:"managementToken" json:"-"`
	Created              time.Time          `firestore:"created" json:"created"`
}
