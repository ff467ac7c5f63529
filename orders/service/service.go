package service

import (
	"context"
	"time"

	catalogDAL "github.com/atelieraurum/studio-api/catalog/dal"
	"github.com/atelieraurum/studio-api/framework/connection"
	"github.com/atelieraurum/studio-api/logger"
	"github.com/atelieraurum/studio-api/mailer"
	"github.com/atelieraurum/studio-api/orders/dal"
	"github.com/atelieraurum/studio-api/orders/domain"
	"github.com/atelieraurum/studio-api/orders/queue"
)

//go:generate mockery --name Orders --output ./mocks
type Orders interface {
	ListQueue(ctx context.Context, filter queue.Filter, query string) ([]*domain.Order, error)
	GetOrder(ctx context.Context, sessionID string) (*domain.Order, error)
	UpdateStatus(ctx context.Context, sessionID string, target domain.OrderStatus) (*domain.Order, error)
	DeleteOrder(ctx context.Context, sessionID string) error
	SendDailyDigest(ctx context.Context) error
}

type OrderService struct {
	loggerProvider logger.Provider
	ordersDAL      dal.Orders
	productsDAL    catalogDAL.Products
	notifications  mailer.NotificationSender
}

func NewOrderService(loggerProvider logger.Provider, conn *connection.Connection) *OrderService {
	return &OrderService{
		loggerProvider,
		dal.NewOrdersFirestoreWithClient(conn.Firestore),
		catalogDAL.NewProductsFirestoreWithClient(conn.Firestore),
		mailer.ForEnvironment(),
	}
}

// NewOrderServiceWithDeps is used by tests.
func NewOrderServiceWithDeps(
	loggerProvider logger.Provider,
	ordersDAL dal.Orders,
	productsDAL catalogDAL.Products,
	notifications mailer.NotificationSender,
) *OrderService {
	return &OrderService{
		loggerProvider,
		ordersDAL,
		productsDAL,
		notifications,
	}
}

// ListQueue returns the dashboard order queue for the given filter tab and
// search query, filtered and sorted.
func (s *OrderService) ListQueue(ctx context.Context, filter queue.Filter, query string) ([]*domain.Order, error) {
	orders, err := s.ordersDAL.ListOrders(ctx)
	if err != nil {
		return nil, err
	}

	return queue.SortOrders(orders, filter, query, time.Now().UTC()), nil
}

func (s *OrderService) GetOrder(ctx context.Context, sessionID string) (*domain.Order, error) {
	return s.ordersDAL.GetOrderBySessionID(ctx, sessionID)
}

// UpdateStatus moves an order along its lifecycle and persists the new
// status. A shipped notification goes out best effort, a mail failure never
// fails the transition.
func (s *OrderService) UpdateStatus(ctx context.Context, sessionID string, target domain.OrderStatus) (*domain.Order, error) {
	l := s.loggerProvider(ctx)

	order, err := s.ordersDAL.GetOrderBySessionID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if err := transition(order, target); err != nil {
		return nil, err
	}

	if err := s.ordersDAL.UpdateStatus(ctx, sessionID, order.OrderStatus); err != nil {
		return nil, err
	}

	if order.OrderStatus == domain.StatusShipped {
		if err := s.sendShippedNotification(order); err != nil {
			l.Errorf("failed to send shipped notification for order %s: %s", sessionID, err)
		}
	}

	return order, nil
}

func (s *OrderService) DeleteOrder(ctx context.Context, sessionID string) error {
	return s.ordersDAL.DeleteOrder(ctx, sessionID)
}

func (s *OrderService) sendShippedNotification(order *domain.Order) error {
	sn := &mailer.SimpleNotification{
		Subject:    "Your order is on its way",
		TemplateID: mailer.Config.DynamicTemplates.OrderShipped,
		Categories: []string{mailer.CategoryOrders},
	}

	params := map[string]interface{}{
		"first_name":      order.CustomerFirstName,
		"order_id":        order.ID,
		"shipping_method": string(order.ShippingMethod),
	}

	return s.notifications.SendNotification(sn, order.CustomerEmail, params)
}
