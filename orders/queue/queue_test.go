package queue

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/atelieraurum/studio-api/orders/domain"
)

var now = time.Date(2024, time.May, 20, 12, 0, 0, 0, time.UTC)

func makeOrder(id string, status domain.OrderStatus, delivery domain.DeliveryMethod, shipping domain.ShippingMethod, orderDate time.Time) *domain.Order {
	return &domain.Order{
		ID:                id,
		StripeSessionID:   id,
		CustomerFirstName: "Jane",
		CustomerLastName:  "Smith",
		CustomerEmail:     "jane.smith@example.com",
		OrderStatus:       status,
		DeliveryMethod:    delivery,
		ShippingMethod:    shipping,
		OrderDate:         orderDate,
	}
}

func TestPriorityRank_BranchOrder(t *testing.T) {
	tests := []struct {
		name  string
		order *domain.Order
		want  int
	}{
		{
			name:  "pickup pending tops the queue",
			order: makeOrder("a", domain.StatusPending, domain.DeliveryPickup, "", now),
			want:  tierPickupOpen,
		},
		{
			name:  "express pending before aged standard",
			order: makeOrder("b", domain.StatusPending, domain.DeliveryShipping, domain.ShippingExpress, now.Add(-100*time.Hour)),
			want:  tierExpeditedOpen,
		},
		{
			name:  "standard pending older than 48h escalates",
			order: makeOrder("c", domain.StatusPending, domain.DeliveryShipping, domain.ShippingStandard, now.Add(-72*time.Hour)),
			want:  tierAgedOpen,
		},
		{
			name:  "fresh standard pending",
			order: makeOrder("d", domain.StatusPending, domain.DeliveryShipping, domain.ShippingStandard, now),
			want:  tierOpen,
		},
		{
			name:  "shipped after every open order",
			order: makeOrder("e", domain.StatusShipped, domain.DeliveryShipping, domain.ShippingStandard, now.Add(-200*time.Hour)),
			want:  tierShipped,
		},
		{
			name:  "delivered near the bottom",
			order: makeOrder("f", domain.StatusDelivered, domain.DeliveryShipping, domain.ShippingGround, now),
			want:  tierDelivered,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PriorityRank(tt.order, now))
		})
	}
}

// A pickup/pending order today must sort before a 3-day-old standard/pending
// order, which must sort before a standard/pending order from today.
func TestSortOrders_PriorityMonotonicity(t *testing.T) {
	a := makeOrder("A", domain.StatusPending, domain.DeliveryPickup, "", now)
	b := makeOrder("B", domain.StatusPending, domain.DeliveryShipping, domain.ShippingStandard, now.Add(-3*24*time.Hour))
	c := makeOrder("C", domain.StatusPending, domain.DeliveryShipping, domain.ShippingStandard, now)

	sorted := SortOrders([]*domain.Order{c, b, a}, FilterAll, "", now)

	ids := []string{sorted[0].ID, sorted[1].ID, sorted[2].ID}
	assert.Equal(t, []string{"A", "B", "C"}, ids)
}

func TestMatchScore(t *testing.T) {
	prefix := makeOrder("p1", domain.StatusPending, domain.DeliveryPickup, "", now)
	prefix.CustomerFirstName = "Smith"
	prefix.CustomerLastName = "Jones"

	mid := makeOrder("p2", domain.StatusPending, domain.DeliveryPickup, "", now)
	mid.CustomerFirstName = "Alice"
	mid.CustomerLastName = "Brown"
	mid.CustomerEmail = "blacksmith@example.com"

	dateOnly := makeOrder("p3", domain.StatusPending, domain.DeliveryPickup, "", now)
	dateOnly.CustomerFirstName = "Bob"
	dateOnly.CustomerLastName = "Gray"
	dateOnly.CustomerEmail = "bob.gray@example.com"
	// "12:0" appears only in the RFC3339 rendering of the order date
	assert.Equal(t, 3, MatchScore(prefix, "smi"))
	assert.Equal(t, 2, MatchScore(mid, "smi"))
	assert.Equal(t, 1, MatchScore(dateOnly, "12:0"))
	assert.Equal(t, 0, MatchScore(dateOnly, "zzz"))
	assert.Equal(t, 0, MatchScore(dateOnly, ""))
}

func TestSortOrders_MatchScoreOrdering(t *testing.T) {
	prefix := makeOrder("s1", domain.StatusPending, domain.DeliveryShipping, domain.ShippingStandard, now)
	prefix.CustomerFirstName = "Smith"
	prefix.CustomerLastName = "Jones"

	mid := makeOrder("s2", domain.StatusPending, domain.DeliveryShipping, domain.ShippingStandard, now)
	mid.CustomerFirstName = "Alice"
	mid.CustomerLastName = "Brown"
	mid.CustomerEmail = "blacksmith@example.com"

	none := makeOrder("s3", domain.StatusPending, domain.DeliveryPickup, "", now)
	none.CustomerFirstName = "Bob"
	none.CustomerLastName = "Gray"
	none.CustomerEmail = "bob.gray@example.com"

	sorted := SortOrders([]*domain.Order{none, mid, prefix}, FilterAll, "smi", now)

	// the pickup order has the best priority tier but no match, so it is
	// filtered out entirely by the search gate
	assert.Len(t, sorted, 2)
	assert.Equal(t, "s1", sorted[0].ID)
	assert.Equal(t, "s2", sorted[1].ID)
}

func TestMatches_ExcludesNamelessOrders(t *testing.T) {
	order := makeOrder("x", domain.StatusPending, domain.DeliveryPickup, "", now)
	order.CustomerFirstName = ""

	for _, filter := range []Filter{FilterAll, FilterPending, FilterDeliveries, FilterFulfilled, FilterPickup, FilterPriority} {
		assert.False(t, Matches(order, filter, ""), "filter %s", filter)
	}
}

func TestMatches_FilterMembership(t *testing.T) {
	pickupPending := makeOrder("m1", domain.StatusPending, domain.DeliveryPickup, "", now)
	deliveryPending := makeOrder("m2", domain.StatusPending, domain.DeliveryShipping, domain.ShippingStandard, now)
	expressConfirmed := makeOrder("m3", domain.StatusConfirmed, domain.DeliveryShipping, domain.ShippingNextDay, now)
	shipped := makeOrder("m4", domain.StatusShipped, domain.DeliveryShipping, domain.ShippingGround, now)

	assert.True(t, Matches(pickupPending, FilterPickup, ""))
	assert.False(t, Matches(deliveryPending, FilterPickup, ""))

	assert.True(t, Matches(deliveryPending, FilterDeliveries, ""))
	assert.False(t, Matches(pickupPending, FilterDeliveries, ""))
	assert.False(t, Matches(shipped, FilterDeliveries, ""))

	assert.True(t, Matches(expressConfirmed, FilterPriority, ""))
	assert.True(t, Matches(pickupPending, FilterPriority, ""))
	assert.False(t, Matches(deliveryPending, FilterPriority, ""))

	assert.True(t, Matches(shipped, FilterFulfilled, ""))
	assert.False(t, Matches(deliveryPending, FilterFulfilled, ""))

	assert.True(t, Matches(shipped, FilterAll, ""))
}

func TestSortOrders_FulfilledView(t *testing.T) {
	shippedOld := makeOrder("f1", domain.StatusShipped, domain.DeliveryShipping, domain.ShippingGround, now.Add(-48*time.Hour))
	shippedNew := makeOrder("f2", domain.StatusShipped, domain.DeliveryShipping, domain.ShippingGround, now)
	fulfilledOld := makeOrder("f3", domain.StatusFulfilled, domain.DeliveryPickup, "", now.Add(-72*time.Hour))
	fulfilledNew := makeOrder("f4", domain.StatusFulfilled, domain.DeliveryPickup, "", now)
	delivered := makeOrder("f5", domain.StatusDelivered, domain.DeliveryShipping, domain.ShippingStandard, now.Add(-24*time.Hour))

	sorted := SortOrders([]*domain.Order{delivered, fulfilledNew, shippedOld, fulfilledOld, shippedNew}, FilterFulfilled, "", now)

	ids := make([]string, 0, len(sorted))
	for _, order := range sorted {
		ids = append(ids, order.ID)
	}

	// shipped newest-first, then fulfilled oldest-first, then delivered
	assert.Equal(t, []string{"f2", "f1", "f3", "f4", "f5"}, ids)
}

func TestParseFilter(t *testing.T) {
	assert.Equal(t, FilterPending, ParseFilter("PENDING"))
	assert.Equal(t, FilterAll, ParseFilter(""))
	assert.Equal(t, FilterAll, ParseFilter("bogus"))
}
