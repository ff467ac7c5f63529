package dal

import (
	"context"
	"errors"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/atelieraurum/studio-api/framework/connection"
	"github.com/atelieraurum/studio-api/orders/domain"
)

const (
	ordersCollection = "orders"

	fieldOrderStatus = "orderStatus"
	fieldEmailSent   = "emailSent"
	fieldOrderDate   = "orderDate"
)

var (
	ErrOrderNotFound    = errors.New("order not found")
	ErrMissingSessionID = errors.New("order is missing a stripe session id")
)

// OrdersFirestore is used to interact with orders stored on Firestore. Order
// documents are keyed by the Stripe checkout session id.
type OrdersFirestore struct {
	firestoreClientFun connection.FirestoreFromContextFun
}

// NewOrdersFirestore returns a new OrdersFirestore instance with given project id.
func NewOrdersFirestore(ctx context.Context, projectID string) (*OrdersFirestore, error) {
	fs, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, err
	}

	return NewOrdersFirestoreWithClient(
		func(ctx context.Context) *firestore.Client {
			return fs
		},
	), nil
}

// NewOrdersFirestoreWithClient returns a new OrdersFirestore using given client.
func NewOrdersFirestoreWithClient(fun connection.FirestoreFromContextFun) *OrdersFirestore {
	return &OrdersFirestore{
		firestoreClientFun: fun,
	}
}

func (d *OrdersFirestore) GetRef(ctx context.Context, sessionID string) *firestore.DocumentRef {
	return d.firestoreClientFun(ctx).Collection(ordersCollection).Doc(sessionID)
}

// GetOrderBySessionID returns the order created from the given checkout session.
func (d *OrdersFirestore) GetOrderBySessionID(ctx context.Context, sessionID string) (*domain.Order, error) {
	if sessionID == "" {
		return nil, ErrMissingSessionID
	}

	docSnap, err := d.GetRef(ctx, sessionID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrOrderNotFound
		}

		return nil, err
	}

	var order domain.Order

	if err := docSnap.DataTo(&order); err != nil {
		return nil, err
	}

	order.ID = docSnap.Ref.ID

	return &order, nil
}

// CreateIfAbsent inserts the order only if no order exists for its session id.
// On a lost race (AlreadyExists) the winning document is fetched and returned;
// the caller treats both outcomes as success. This is the idempotency
// primitive the finalize flow relies on, no lock is taken.
func (d *OrdersFirestore) CreateIfAbsent(ctx context.Context, order *domain.Order) (bool, *domain.Order, error) {
	if order.StripeSessionID == "" {
		return false, nil, ErrMissingSessionID
	}

	_, err := d.GetRef(ctx, order.StripeSessionID).Create(ctx, order)
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			existing, err := d.GetOrderBySessionID(ctx, order.StripeSessionID)
			if err != nil {
				return false, nil, err
			}

			return false, existing, nil
		}

		return false, nil, err
	}

	order.ID = order.StripeSessionID

	return true, order, nil
}

// ListOrders returns all orders, oldest first.
func (d *OrdersFirestore) ListOrders(ctx context.Context) ([]*domain.Order, error) {
	docSnaps, err := d.firestoreClientFun(ctx).
		Collection(ordersCollection).
		OrderBy(fieldOrderDate, firestore.Asc).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, err
	}

	return ordersFromSnaps(docSnaps)
}

// ListOrdersBetween returns orders whose order date falls in [from, to).
func (d *OrdersFirestore) ListOrdersBetween(ctx context.Context, from, to time.Time) ([]*domain.Order, error) {
	docSnaps, err := d.firestoreClientFun(ctx).
		Collection(ordersCollection).
		Where(fieldOrderDate, ">=", from).
		Where(fieldOrderDate, "<", to).
		OrderBy(fieldOrderDate, firestore.Asc).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, err
	}

	return ordersFromSnaps(docSnaps)
}

func ordersFromSnaps(docSnaps []*firestore.DocumentSnapshot) ([]*domain.Order, error) {
	orders := make([]*domain.Order, 0, len(docSnaps))

	for _, docSnap := range docSnaps {
		var order domain.Order

		if err := docSnap.DataTo(&order); err != nil {
			return nil, err
		}

		order.ID = docSnap.Ref.ID

		orders = append(orders, &order)
	}

	return orders, nil
}

// UpdateStatus sets the order's lifecycle status.
func (d *OrdersFirestore) UpdateStatus(ctx context.Context, sessionID string, orderStatus domain.OrderStatus) error {
	_, err := d.GetRef(ctx, sessionID).Update(ctx, []firestore.Update{
		{Path: fieldOrderStatus, Value: orderStatus},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return ErrOrderNotFound
		}

		return err
	}

	return nil
}

// SetEmailSent marks the confirmation email as sent.
func (d *OrdersFirestore) SetEmailSent(ctx context.Context, sessionID string) error {
	_, err := d.GetRef(ctx, sessionID).Update(ctx, []firestore.Update{
		{Path: fieldEmailSent, Value: true},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return ErrOrderNotFound
		}

		return err
	}

	return nil
}

// DeleteOrder hard deletes an order. Admin dashboard only.
func (d *OrdersFirestore) DeleteOrder(ctx context.Context, sessionID string) error {
	_, err := d.GetRef(ctx, sessionID).Delete(ctx)
	return err
}
