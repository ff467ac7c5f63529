package domain

import (
	"time"

	catalogDomain "github.com/atelieraurum/studio-api/catalog/domain"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusConfirmed OrderStatus = "confirmed"
	StatusShipped   OrderStatus = "shipped"
	StatusFulfilled OrderStatus = "fulfilled"
	StatusDelivered OrderStatus = "delivered"
)

// ParseStatus maps a raw string onto a known order status.
func ParseStatus(s string) (OrderStatus, bool) {
	switch OrderStatus(s) {
	case StatusPending, StatusConfirmed, StatusShipped, StatusFulfilled, StatusDelivered:
		return OrderStatus(s), true
	default:
		return "", false
	}
}

// DeliveryMethod is how the customer receives the order.
type DeliveryMethod string

const (
	DeliveryPickup   DeliveryMethod = "pickup"
	DeliveryShipping DeliveryMethod = "delivery"
)

// ShippingMethod is the carrier service level chosen at checkout. Empty for
// pickup orders.
type ShippingMethod string

const (
	ShippingStandard ShippingMethod = "Standard"
	ShippingGround   ShippingMethod = "Ground"
	ShippingExpress  ShippingMethod = "Express"
	ShippingNextDay  ShippingMethod = "Next Day"
	ShippingPriority ShippingMethod = "Priority"
)

// Address is a shipping or billing address block.
type Address struct {
	Line1      string `json:"line1" firestore:"line1"`
	Line2      string `json:"line2" firestore:"line2"`
	City       string `json:"city" firestore:"city"`
	State      string `json:"state" firestore:"state"`
	PostalCode string `json:"postalCode" firestore:"postalCode"`
	Country    string `json:"country" firestore:"country"`
}

// Order is a fulfilled checkout. The Firestore document id is the Stripe
// checkout session id, which is what makes order creation idempotent: at most
// one order can ever exist per session.
type Order struct {
	ID                string                   `firestore:"-" json:"id"`
	StripeSessionID   string                   `firestore:"stripeSessionId" json:"stripeSessionId"`
	CustomerID        string                   `firestore:"customerId" json:"customerId"`
	CustomerFirstName string                   `firestore:"customerFirstName" json:"customerFirstName"`
	CustomerLastName  string                   `firestore:"customerLastName" json:"customerLastName"`
	CustomerEmail     string                   `firestore:"customerEmail" json:"customerEmail"`
	LineItems         []catalogDomain.CartLine `firestore:"lineItems" json:"lineItems"`
	TotalAmount       int64                    `firestore:"totalAmount" json:"totalAmount"`
	OrderStatus       OrderStatus              `firestore:"orderStatus" json:"orderStatus"`
	DeliveryMethod    DeliveryMethod           `firestore:"deliveryMethod" json:"deliveryMethod"`
	ShippingMethod    ShippingMethod           `firestore:"shippingMethod" json:"shippingMethod"`
	ShippingAddress   Address                  `firestore:"shippingAddress" json:"shippingAddress"`
	BillingAddress    Address                  `firestore:"billingAddress" json:"billingAddress"`
	Comments          string                   `firestore:"comments" json:"comments"`
	EmailSent         bool                     `firestore:"emailSent" json:"emailSent"`
	OrderDate         time.Time                `firestore:"orderDate" json:"orderDate"`
}

// CustomerFullName returns the customer's display name stored on the order.
func (o *Order) CustomerFullName() string {
	return o.CustomerFirstName + " " + o.CustomerLastName
}

// IsPickup reports whether the order is picked up at the studio.
func (o *Order) IsPickup() bool {
	return o.DeliveryMethod == DeliveryPickup
}
