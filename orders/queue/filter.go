// Package queue implements the operations-dashboard order queue: search
// scoring, filter membership, priority tiering and the composed sort. All
// functions are pure and run over an in-memory order list.
package queue

import (
	"github.com/atelieraurum/studio-api/orders/domain"
)

// Filter is a dashboard filter tab.
type Filter string

const (
	FilterAll        Filter = "ALL"
	FilterPending    Filter = "PENDING"
	FilterDeliveries Filter = "DELIVERIES"
	FilterFulfilled  Filter = "FULFILLED"
	FilterPickup     Filter = "PICKUP"
	FilterPriority   Filter = "PRIORITY"
)

// ParseFilter maps a query-string value onto a known filter, defaulting to ALL.
func ParseFilter(s string) Filter {
	switch Filter(s) {
	case FilterPending, FilterDeliveries, FilterFulfilled, FilterPickup, FilterPriority:
		return Filter(s)
	default:
		return FilterAll
	}
}

func isOpen(status domain.OrderStatus) bool {
	return status == domain.StatusPending || status == domain.StatusConfirmed
}

func isExpedited(method domain.ShippingMethod) bool {
	switch method {
	case domain.ShippingExpress, domain.ShippingNextDay, domain.ShippingPriority:
		return true
	default:
		return false
	}
}

// Matches reports whether the order belongs to the given filter tab, gated by
// the search query. Orders without a customer first and last name are invalid
// and excluded from every tab, including ALL.
func Matches(order *domain.Order, filter Filter, query string) bool {
	if order.CustomerFirstName == "" || order.CustomerLastName == "" {
		return false
	}

	if query != "" && MatchScore(order, query) == 0 {
		return false
	}

	switch filter {
	case FilterPending:
		return isOpen(order.OrderStatus)
	case FilterDeliveries:
		return !order.IsPickup() && isOpen(order.OrderStatus)
	case FilterFulfilled:
		switch order.OrderStatus {
		case domain.StatusShipped, domain.StatusFulfilled, domain.StatusDelivered:
			return true
		default:
			return false
		}
	case FilterPickup:
		return order.IsPickup() && isOpen(order.OrderStatus)
	case FilterPriority:
		return isOpen(order.OrderStatus) && (order.IsPickup() || isExpedited(order.ShippingMethod))
	default:
		return true
	}
}
