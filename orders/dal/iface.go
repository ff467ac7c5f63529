//go:generate mockery --output=./mocks --all

package dal

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"

	"github.com/atelieraurum/studio-api/orders/domain"
)

//go:generate mockery --name Orders --output ./mocks
type Orders interface {
	GetRef(ctx context.Context, sessionID string) *firestore.DocumentRef
	GetOrderBySessionID(ctx context.Context, sessionID string) (*domain.Order, error)
	CreateIfAbsent(ctx context.Context, order *domain.Order) (created bool, existing *domain.Order, err error)
	ListOrders(ctx context.Context) ([]*domain.Order, error)
	ListOrdersBetween(ctx context.Context, from, to time.Time) ([]*domain.Order, error)
	UpdateStatus(ctx context.Context, sessionID string, status domain.OrderStatus) error
	SetEmailSent(ctx context.Context, sessionID string) error
	DeleteOrder(ctx context.Context, sessionID string) error
}
