package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/atelieraurum/studio-api/catalog/dal"
	"github.com/atelieraurum/studio-api/catalog/dal/mocks"
	"github.com/atelieraurum/studio-api/catalog/domain"
	"github.com/atelieraurum/studio-api/logger"
)

func TestStockService_VerifyInStock(t *testing.T) {
	ctx := context.Background()

	lines := []domain.CartLine{
		{ProductID: "ring-1", Quantity: 2, UnitPrice: 1000},
		{ProductID: "chain-2", Quantity: 1, UnitPrice: 2500},
	}

	type fields struct {
		productsDAL *mocks.Products
	}

	tests := []struct {
		name             string
		lines            []domain.CartLine
		on               func(f *fields)
		wantErr          bool
		wantInsufficient []InsufficientLine
	}{
		{
			name:    "empty cart",
			lines:   nil,
			wantErr: true,
		},
		{
			name:  "all lines covered",
			lines: lines,
			on: func(f *fields) {
				f.productsDAL.On("GetProductsByIDs", ctx, []string{"ring-1", "chain-2"}).Return([]*domain.Product{
					{ID: "ring-1", Name: "Silver Ring", QuantityInStock: 5},
					{ID: "chain-2", Name: "Curb Chain", QuantityInStock: 1},
				}, nil)
			},
		},
		{
			name:  "insufficient line reported with availability",
			lines: lines,
			on: func(f *fields) {
				f.productsDAL.On("GetProductsByIDs", ctx, []string{"ring-1", "chain-2"}).Return([]*domain.Product{
					{ID: "ring-1", Name: "Silver Ring", QuantityInStock: 1},
					{ID: "chain-2", Name: "Curb Chain", QuantityInStock: 1},
				}, nil)
			},
			wantErr: true,
			wantInsufficient: []InsufficientLine{
				{ProductID: "ring-1", Name: "Silver Ring", Requested: 2, Available: 1},
			},
		},
		{
			name:  "missing product treated as zero stock",
			lines: lines,
			on: func(f *fields) {
				f.productsDAL.On("GetProductsByIDs", ctx, []string{"ring-1", "chain-2"}).Return([]*domain.Product{
					{ID: "ring-1", Name: "Silver Ring", QuantityInStock: 5},
				}, nil)
			},
			wantErr: true,
			wantInsufficient: []InsufficientLine{
				{ProductID: "chain-2", Requested: 1, Available: 0},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := fields{productsDAL: mocks.NewProducts(t)}

			if tt.on != nil {
				tt.on(&f)
			}

			s := NewStockServiceWithDAL(logger.FromContext, f.productsDAL)

			err := s.VerifyInStock(ctx, tt.lines)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			assert.Error(t, err)

			if tt.wantInsufficient != nil {
				invErr, ok := AsInventoryError(err)
				assert.True(t, ok)
				assert.Equal(t, tt.wantInsufficient, invErr.Insufficient)
			}
		})
	}
}

func TestStockService_DecrementStock(t *testing.T) {
	ctx := context.Background()

	lines := []domain.CartLine{
		{ProductID: "ring-1", Quantity: 2},
		{ProductID: "chain-2", Quantity: 1},
		{ProductID: "clasp-3", Quantity: 4},
	}

	t.Run("all lines applied", func(t *testing.T) {
		productsDAL := mocks.NewProducts(t)
		productsDAL.On("DecrementQuantity", ctx, mock.AnythingOfType("string"), mock.AnythingOfType("int64")).Return(nil).Times(3)

		s := NewStockServiceWithDAL(logger.FromContext, productsDAL)

		applied, err := s.DecrementStock(ctx, lines)
		assert.NoError(t, err)
		assert.Equal(t, 3, applied)
	})

	t.Run("partial failure keeps applied lines and reports the rest", func(t *testing.T) {
		productsDAL := mocks.NewProducts(t)
		productsDAL.On("DecrementQuantity", ctx, "ring-1", int64(2)).Return(nil)
		productsDAL.On("DecrementQuantity", ctx, "chain-2", int64(1)).Return(dal.ErrInsufficientStock)
		productsDAL.On("DecrementQuantity", ctx, "clasp-3", int64(4)).Return(nil)

		s := NewStockServiceWithDAL(logger.FromContext, productsDAL)

		applied, err := s.DecrementStock(ctx, lines)
		assert.Error(t, err)
		assert.True(t, errors.Is(err, dal.ErrInsufficientStock))
		assert.Equal(t, 2, applied)
	})
}
