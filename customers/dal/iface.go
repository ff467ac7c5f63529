//go:generate mockery --output=./mocks --all

package dal

import (
	"context"

	"cloud.google.com/go/firestore"

	"github.com/atelieraurum/studio-api/customers/domain"
)

//go:generate mockery --name Customers --output ./mocks
type Customers interface {
	GetRef(ctx context.Context, customerID string) *firestore.DocumentRef
	GetCustomer(ctx context.Context, customerID string) (*domain.Customer, error)
	GetCustomerByEmail(ctx context.Context, email string) (*domain.Customer, error)
	GetCustomerByPhone(ctx context.Context, phone string) (*domain.Customer, error)
	ResolveOrCreate(ctx context.Context, contact domain.Contact) (*domain.Customer, error)
	AttachOrder(ctx context.Context, customerID, orderID string) error
}
