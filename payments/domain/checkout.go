package domain

import (
	catalogDomain "github.com/atelieraurum/studio-api/catalog/domain"
	ordersDomain "github.com/atelieraurum/studio-api/orders/domain"
)

// CheckoutKind tags what a checkout session pays for. Stored in the session
// metadata and dispatched on at finalize time.
type CheckoutKind string

const (
	KindCart       CheckoutKind = "cart"
	KindClass      CheckoutKind = "class"
	KindLab        CheckoutKind = "lab"
	KindMembership CheckoutKind = "membership"
)

// ParseCheckoutKind maps a raw metadata value onto a known checkout kind.
func ParseCheckoutKind(s string) (CheckoutKind, bool) {
	switch CheckoutKind(s) {
	case KindCart, KindClass, KindLab, KindMembership:
		return CheckoutKind(s), true
	default:
		return "", false
	}
}

// CustomerInfo identifies the paying customer. At least one of email and
// phone is required.
type CustomerInfo struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required_without=Phone,omitempty,email"`
	Phone     string `json:"phone" binding:"required_without=Email"`
}

// CartCheckoutRequest is the body of a storefront cart checkout.
type CartCheckoutRequest struct {
	CartItems      []catalogDomain.CartLine    `json:"cartItems" binding:"required,min=1,dive"`
	CustomerInfo   CustomerInfo                `json:"customerInfo" binding:"required"`
	DeliveryMethod ordersDomain.DeliveryMethod `json:"deliveryMethod" binding:"required,oneof=pickup delivery"`
	ShippingMethod ordersDomain.ShippingMethod `json:"shippingMethod" binding:"omitempty,oneof=Standard Ground Express 'Next Day' Priority"`
	Comments       string                      `json:"comments"`
}

// BookingCheckoutRequest is the body of a class or lab booking checkout. The
// kind comes from the route, not the body.
type BookingCheckoutRequest struct {
	SessionID    string       `json:"sessionId" binding:"required"`
	Seats        int64        `json:"seats" binding:"required,gte=1"`
	CustomerInfo CustomerInfo `json:"customerInfo" binding:"required"`
}

// MembershipCheckoutRequest is the body of a lab membership signup.
type MembershipCheckoutRequest struct {
	PlanID       string       `json:"planId" binding:"required"`
	CustomerInfo CustomerInfo `json:"customerInfo" binding:"required"`
}

// CheckoutSessionResponse is returned to the storefront, which redirects the
// browser to the session URL.
type CheckoutSessionResponse struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// OrderResult is the summary returned by a finalize call.
type OrderResult struct {
	Success        bool   `json:"success"`
	OrderID        string `json:"orderId,omitempty"`
	BookingID      string `json:"bookingId,omitempty"`
	SubscriptionID string `json:"subscriptionId,omitempty"`
	DeliveryMethod string `json:"deliveryMethod,omitempty"`
	TotalAmount    int64  `json:"totalAmount"`
	Message        string `json:"message,omitempty"`
}
