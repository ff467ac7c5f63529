package queue

import (
	"sort"
	"time"

	"github.com/atelieraurum/studio-api/orders/domain"
)

// SortOrders filters the order list by the active tab and query, then sorts it
// for display. The general sort orders by match score (best first), then
// priority tier, then order date (oldest first). The FULFILLED tab uses its
// own status-tier comparator instead: shipped before fulfilled before
// delivered, shipped orders newest-first and everything else oldest-first.
func SortOrders(orders []*domain.Order, filter Filter, query string, now time.Time) []*domain.Order {
	filtered := make([]*domain.Order, 0, len(orders))

	for _, order := range orders {
		if Matches(order, filter, query) {
			filtered = append(filtered, order)
		}
	}

	if filter == FilterFulfilled {
		sort.SliceStable(filtered, func(i, j int) bool {
			return fulfilledLess(filtered[i], filtered[j])
		})

		return filtered
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return queueLess(filtered[i], filtered[j], query, now)
	})

	return filtered
}

func queueLess(a, b *domain.Order, query string, now time.Time) bool {
	scoreA, scoreB := MatchScore(a, query), MatchScore(b, query)
	if scoreA != scoreB {
		return scoreA > scoreB
	}

	rankA, rankB := PriorityRank(a, now), PriorityRank(b, now)
	if rankA != rankB {
		return rankA < rankB
	}

	return a.OrderDate.Before(b.OrderDate)
}

func fulfilledLess(a, b *domain.Order) bool {
	rankA, rankB := fulfilledRank(a.OrderStatus), fulfilledRank(b.OrderStatus)
	if rankA != rankB {
		return rankA < rankB
	}

	// shipped orders are the ones in flight, show the most recent first;
	// everything else reads oldest first.
	if a.OrderStatus == domain.StatusShipped {
		return a.OrderDate.After(b.OrderDate)
	}

	return a.OrderDate.Before(b.OrderDate)
}
