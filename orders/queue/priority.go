package queue

import (
	"time"

	"github.com/atelieraurum/studio-api/orders/domain"
)

// urgentAge is how old an open standard/ground order must be before it
// escalates ahead of fresher ones.
const urgentAge = 48 * time.Hour

// Priority tiers, lower value sorts first.
const (
	tierPickupOpen    = 0
	tierExpeditedOpen = 1
	tierAgedOpen      = 2
	tierOpen          = 3
	tierShipped       = 4
	tierFulfilled     = 5
	tierDelivered     = 6
	tierOther         = 7
)

// PriorityRank computes the queue tier of an order for the general dashboard
// sort. The branch order is significant: an expedited open order never reaches
// the aging branch, however old it is.
func PriorityRank(order *domain.Order, now time.Time) int {
	if isOpen(order.OrderStatus) {
		if order.IsPickup() {
			return tierPickupOpen
		}

		if isExpedited(order.ShippingMethod) {
			return tierExpeditedOpen
		}

		if now.Sub(order.OrderDate) > urgentAge {
			return tierAgedOpen
		}

		return tierOpen
	}

	switch order.OrderStatus {
	case domain.StatusShipped:
		return tierShipped
	case domain.StatusFulfilled:
		return tierFulfilled
	case domain.StatusDelivered:
		return tierDelivered
	default:
		return tierOther
	}
}

// fulfilledRank is the independent tier table used only by the FULFILLED view.
func fulfilledRank(status domain.OrderStatus) int {
	switch status {
	case domain.StatusShipped:
		return 0
	case domain.StatusFulfilled:
		return 1
	case domain.StatusDelivered:
		return 2
	default:
		return 3
	}
}
