package service

import (
	"context"

	"github.com/hashicorp/go-multierror"

	"github.com/atelieraurum/studio-api/catalog/dal"
	"github.com/atelieraurum/studio-api/catalog/domain"
	"github.com/atelieraurum/studio-api/framework/connection"
	"github.com/atelieraurum/studio-api/logger"
)

//go:generate mockery --name Stock --output ./mocks
type Stock interface {
	VerifyInStock(ctx context.Context, lines []domain.CartLine) error
	DecrementStock(ctx context.Context, lines []domain.CartLine) (int, error)
}

type StockService struct {
	loggerProvider logger.Provider
	productsDAL    dal.Products
}

func NewStockService(loggerProvider logger.Provider, conn *connection.Connection) *StockService {
	return &StockService{
		loggerProvider,
		dal.NewProductsFirestoreWithClient(conn.Firestore),
	}
}

// NewStockServiceWithDAL is used by callers that already hold a products DAL,
// and by tests.
func NewStockServiceWithDAL(loggerProvider logger.Provider, productsDAL dal.Products) *StockService {
	return &StockService{
		loggerProvider,
		productsDAL,
	}
}

// VerifyInStock checks each cart line against the current inventory in a
// single batch read. It has no side effects; a passing check does not reserve
// stock (the conditional decrement at fulfillment time is the real guard).
func (s *StockService) VerifyInStock(ctx context.Context, lines []domain.CartLine) error {
	if len(lines) == 0 {
		return ErrEmptyCart
	}

	ids := make([]string, 0, len(lines))
	for _, line := range lines {
		ids = append(ids, line.ProductID)
	}

	products, err := s.productsDAL.GetProductsByIDs(ctx, ids)
	if err != nil {
		return err
	}

	stockByID := make(map[string]*domain.Product, len(products))
	for _, product := range products {
		stockByID[product.ID] = product
	}

	var insufficient []InsufficientLine

	for _, line := range lines {
		product, ok := stockByID[line.ProductID]
		if !ok {
			insufficient = append(insufficient, InsufficientLine{
				ProductID: line.ProductID,
				Name:      line.Name,
				Requested: line.Quantity,
				Available: 0,
			})

			continue
		}

		if product.QuantityInStock < line.Quantity {
			insufficient = append(insufficient, InsufficientLine{
				ProductID: line.ProductID,
				Name:      product.Name,
				Requested: line.Quantity,
				Available: product.QuantityInStock,
			})
		}
	}

	if len(insufficient) > 0 {
		return &InventoryError{Insufficient: insufficient}
	}

	return nil
}

// DecrementStock applies a conditional decrement per cart line and returns how
// many lines were applied. Lines that fail the stock guard are reported in the
// returned error but already-applied decrements are not rolled back; the batch
// is deliberately best effort since no transaction spans the whole cart.
func (s *StockService) DecrementStock(ctx context.Context, lines []domain.CartLine) (int, error) {
	l := s.loggerProvider(ctx)

	var applied int

	var result *multierror.Error

	for _, line := range lines {
		if err := s.productsDAL.DecrementQuantity(ctx, line.ProductID, line.Quantity); err != nil {
			l.Errorf("decrement stock failed for product %s (quantity %d): %v", line.ProductID, line.Quantity, err)
			result = multierror.Append(result, err)

			continue
		}

		applied++
	}

	if applied != len(lines) {
		l.Warningf("partial stock decrement: %d of %d cart lines applied", applied, len(lines))
	}

	return applied, result.ErrorOrNil()
}
