//go:generate mockery --output=./mocks --all

package dal

import (
	"context"

	"cloud.google.com/go/firestore"

	"github.com/atelieraurum/studio-api/catalog/domain"
)

//go:generate mockery --name Products --output ./mocks
type Products interface {
	GetRef(ctx context.Context, productID string) *firestore.DocumentRef
	GetProduct(ctx context.Context, productID string) (*domain.Product, error)
	GetProductsByIDs(ctx context.Context, ids []string) ([]*domain.Product, error)
	ListProducts(ctx context.Context) ([]*domain.Product, error)
	SetQuantity(ctx context.Context, productID string, quantity int64) error
	DecrementQuantity(ctx context.Context, productID string, quantity int64) error
}
