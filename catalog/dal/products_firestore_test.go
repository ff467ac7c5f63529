package dal

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/atelieraurum/studio-api/common"
)

func TestNewProductsFirestoreDAL(t *testing.T) {
	ctx := context.Background()
	_, err := NewProductsFirestore(ctx, common.TestProjectID)
	assert.NoError(t, err)

	d := NewProductsFirestoreWithClient(nil)
	assert.NotNil(t, d)
}

func TestProductsFirestore_InputValidation(t *testing.T) {
	ctx := context.Background()
	d := NewProductsFirestoreWithClient(nil)

	_, err := d.GetProduct(ctx, "")
	assert.ErrorIs(t, err, ErrInvalidProductID)

	err = d.SetQuantity(ctx, "prod-1", -1)
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	err = d.DecrementQuantity(ctx, "prod-1", 0)
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}
