package dal

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/atelieraurum/studio-api/catalog/domain"
	"github.com/atelieraurum/studio-api/framework/connection"
)

const (
	productsCollection = "products"

	fieldQuantityInStock = "quantityInStock"
)

// ProductsFirestore is used to interact with catalog products stored on Firestore.
type ProductsFirestore struct {
	firestoreClientFun connection.FirestoreFromContextFun
}

// NewProductsFirestore returns a new ProductsFirestore instance with given project id.
func NewProductsFirestore(ctx context.Context, projectID string) (*ProductsFirestore, error) {
	fs, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, err
	}

	return NewProductsFirestoreWithClient(
		func(ctx context.Context) *firestore.Client {
			return fs
		},
	), nil
}

// NewProductsFirestoreWithClient returns a new ProductsFirestore using given client.
func NewProductsFirestoreWithClient(fun connection.FirestoreFromContextFun) *ProductsFirestore {
	return &ProductsFirestore{
		firestoreClientFun: fun,
	}
}

func (d *ProductsFirestore) GetRef(ctx context.Context, productID string) *firestore.DocumentRef {
	return d.firestoreClientFun(ctx).Collection(productsCollection).Doc(productID)
}

// GetProduct returns a single product's data.
func (d *ProductsFirestore) GetProduct(ctx context.Context, productID string) (*domain.Product, error) {
	if productID == "" {
		return nil, ErrInvalidProductID
	}

	docSnap, err := d.GetRef(ctx, productID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrProductNotFound
		}

		return nil, err
	}

	var product domain.Product

	if err := docSnap.DataTo(&product); err != nil {
		return nil, err
	}

	product.ID = docSnap.Ref.ID

	return &product, nil
}

// GetProductsByIDs fetches the given product documents in a single batch read.
// Missing documents are skipped, the caller decides whether a gap is an error.
func (d *ProductsFirestore) GetProductsByIDs(ctx context.Context, ids []string) ([]*domain.Product, error) {
	fs := d.firestoreClientFun(ctx)
	collection := fs.Collection(productsCollection)

	docRefs := make([]*firestore.DocumentRef, 0, len(ids))
	for _, id := range ids {
		docRefs = append(docRefs, collection.Doc(id))
	}

	docSnaps, err := fs.GetAll(ctx, docRefs)
	if err != nil {
		return nil, err
	}

	var products []*domain.Product

	for _, docSnap := range docSnaps {
		if !docSnap.Exists() {
			continue
		}

		var product domain.Product

		if err := docSnap.DataTo(&product); err != nil {
			return nil, err
		}

		product.ID = docSnap.Ref.ID

		products = append(products, &product)
	}

	return products, nil
}

// ListProducts returns the full catalog ordered by name.
func (d *ProductsFirestore) ListProducts(ctx context.Context) ([]*domain.Product, error) {
	docSnaps, err := d.firestoreClientFun(ctx).
		Collection(productsCollection).
		OrderBy("name", firestore.Asc).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, err
	}

	products := make([]*domain.Product, 0, len(docSnaps))

	for _, docSnap := range docSnaps {
		var product domain.Product

		if err := docSnap.DataTo(&product); err != nil {
			return nil, err
		}

		product.ID = docSnap.Ref.ID

		products = append(products, &product)
	}

	return products, nil
}

// SetQuantity sets the absolute stock quantity of a product (admin edit flow).
func (d *ProductsFirestore) SetQuantity(ctx context.Context, productID string, quantity int64) error {
	if quantity < 0 {
		return ErrInvalidQuantity
	}

	_, err := d.GetRef(ctx, productID).Update(ctx, []firestore.Update{
		{Path: fieldQuantityInStock, Value: quantity},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return ErrProductNotFound
		}

		return err
	}

	return nil
}

// DecrementQuantity decrements a product's stock by the given quantity only if
// enough stock remains. The read and the conditional write run in a single
// transaction so concurrent checkouts can never push the stock below zero.
func (d *ProductsFirestore) DecrementQuantity(ctx context.Context, productID string, quantity int64) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}

	productRef := d.GetRef(ctx, productID)

	return d.firestoreClientFun(ctx).RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		docSnap, err := tx.Get(productRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return ErrProductNotFound
			}

			return err
		}

		var product domain.Product

		if err := docSnap.DataTo(&product); err != nil {
			return err
		}

		if product.QuantityInStock < quantity {
			return ErrInsufficientStock
		}

		return tx.Update(productRef, []firestore.Update{
			{Path: fieldQuantityInStock, Value: product.QuantityInStock - quantity},
		})
	})
}
