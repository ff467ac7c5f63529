package service

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyCart = errors.New("cart has no line items")
)

// InsufficientLine describes a single cart line that could not be covered by
// the current stock.
type InsufficientLine struct {
	ProductID string `json:"productId"`
	Name      string `json:"name,omitempty"`
	Requested int64  `json:"requested"`
	Available int64  `json:"available"`
}

// InventoryError reports the cart lines that failed the stock check, so the
// storefront can prompt the customer to reduce quantities.
type InventoryError struct {
	Insufficient []InsufficientLine
}

func (e *InventoryError) Error() string {
	parts := make([]string, 0, len(e.Insufficient))
	for _, line := range e.Insufficient {
		parts = append(parts, fmt.Sprintf("%s (requested %d, available %d)", line.ProductID, line.Requested, line.Available))
	}

	return "insufficient stock: " + strings.Join(parts, ", ")
}

// AsInventoryError returns the wrapped InventoryError, if err is one.
func AsInventoryError(err error) (*InventoryError, bool) {
	var invErr *InventoryError
	if errors.As(err, &invErr) {
		return invErr, true
	}

	return nil, false
}
