package queue

import (
	"strings"
	"time"

	"github.com/atelieraurum/studio-api/orders/domain"
)

const (
	scoreNone      = 0
	scoreDateField = 1
	scoreContains  = 2
	scorePrefix    = 3

	displayDateFormat = "Jan 2, 2006"
)

// MatchScore scores how well an order matches a free-text search query.
// Primary fields (order id, customer full name, email, display date) score 3
// on a prefix match and 2 on a mid-field match; a hit that only appears in the
// ISO date string scores 1. The best score across fields wins, scores are
// never summed.
func MatchScore(order *domain.Order, query string) int {
	if query == "" {
		return scoreNone
	}

	q := strings.ToLower(query)

	primaryFields := []string{
		order.ID,
		order.CustomerFullName(),
		order.CustomerEmail,
		order.OrderDate.Format(displayDateFormat),
	}

	best := scoreNone

	for _, field := range primaryFields {
		f := strings.ToLower(field)

		switch {
		case strings.HasPrefix(f, q):
			return scorePrefix
		case strings.Contains(f, q):
			if best < scoreContains {
				best = scoreContains
			}
		}
	}

	if best == scoreNone {
		iso := strings.ToLower(order.OrderDate.Format(time.RFC3339))
		if strings.Contains(iso, q) {
			best = scoreDateField
		}
	}

	return best
}
