package domain

import (
	"time"
)

// SessionKind distinguishes instructor-led classes from open lab time.
type SessionKind string

const (
	KindClass SessionKind = "class"
	KindLab   SessionKind = "lab"
)

// StudioSession is a bookable class or lab slot on the studio calendar.
type StudioSession struct {
	ID           string      `firestore:"-" json:"id"`
	Kind         SessionKind `firestore:"kind" json:"kind"`
	Title        string      `firestore:"title" json:"title"`
	StartTime    time.Time   `firestore:"startTime" json:"startTime"`
	Capacity     int64       `firestore:"capacity" json:"capacity"`
	Participants int64       `firestore:"participants" json:"participants"`
	Price        int64       `firestore:"price" json:"price"`
}

// SeatsLeft returns the remaining capacity of the session.
func (s *StudioSession) SeatsLeft() int64 {
	return s.Capacity - s.Participants
}

// Booking is a paid reservation of seats on a studio session. The Firestore
// document id is the Stripe checkout session id, same idempotency scheme as
// orders.
type Booking struct {
	ID                string      `firestore:"-" json:"id"`
	StripeSessionID   string      `firestore:"stripeSessionId" json:"stripeSessionId"`
	StudioSessionID   string      `firestore:"studioSessionId" json:"studioSessionId"`
	Kind              SessionKind `firestore:"kind" json:"kind"`
	CustomerID        string      `firestore:"customerId" json:"customerId"`
	CustomerFirstName string      `firestore:"customerFirstName" json:"customerFirstName"`
	CustomerLastName  string      `firestore:"customerLastName" json:"customerLastName"`
	CustomerEmail     string      `firestore:"customerEmail" json:"customerEmail"`
	Seats             int64       `firestore:"seats" json:"seats"`
	TotalAmount       int64       `firestore:"totalAmount" json:"totalAmount"`
	EmailSent         bool        `firestore:"emailSent" json:"emailSent"`
	BookingDate       time.Time   `firestore:"bookingDate" json:"bookingDate"`
}
