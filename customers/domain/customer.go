package domain

import (
	"time"
)

// Customer is a studio customer record. A customer must carry at least one of
// email or phone; the fulfillment flow matches by email first, then phone, so
// the same person is never duplicated across checkouts.
type Customer struct {
	ID        string    `firestore:"-"`
	FirstName string    `firestore:"firstName"`
	LastName  string    `firestore:"lastName"`
	Email     string    `firestore:"email"`
	Phone     string    `firestore:"phone"`
	Orders    []string  `firestore:"orders"`
	CreatedAt time.Time `firestore:"createdAt,serverTimestamp"`
	UpdatedAt time.Time `firestore:"updatedAt,serverTimestamp"`
}

// Contact is the identifying slice of a checkout payload used to resolve or
// create the customer document.
type Contact struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

func (c Contact) HasIdentifier() bool {
	return c.Email != "" || c.Phone != ""
}

func (c *Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}
