package domain

import (
	"time"
)

// Product is a single catalog item (jewelry piece, kit, or class supply).
// Amounts are stored in cents.
type Product struct {
	ID              string    `firestore:"-"`
	Name            string    `firestore:"name"`
	Description     string    `firestore:"description"`
	Price           int64     `firestore:"price"`
	QuantityInStock int64     `firestore:"quantityInStock"`
	Category        string    `firestore:"category"`
	ImageURL        string    `firestore:"imageUrl"`
	CreatedAt       time.Time `firestore:"createdAt,serverTimestamp"`
	UpdatedAt       time.Time `firestore:"updatedAt,serverTimestamp"`
}

// CartLine is a single line of a customer cart as submitted at checkout.
type CartLine struct {
	ProductID string `json:"productId" firestore:"productId" binding:"required"`
	Name      string `json:"name" firestore:"name"`
	UnitPrice int64  `json:"unitPrice" firestore:"unitPrice" binding:"required,gt=0"`
	Quantity  int64  `json:"quantity" firestore:"quantity" binding:"required,gt=0"`
	ImageURL  string `json:"imageUrl" firestore:"imageUrl"`
}
