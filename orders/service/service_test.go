package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	catalogMocks "github.com/atelieraurum/studio-api/catalog/dal/mocks"
	catalogDomain "github.com/atelieraurum/studio-api/catalog/domain"
	"github.com/atelieraurum/studio-api/common"
	"github.com/atelieraurum/studio-api/logger"
	mailerMocks "github.com/atelieraurum/studio-api/mailer/mocks"
	"github.com/atelieraurum/studio-api/orders/dal"
	"github.com/atelieraurum/studio-api/orders/dal/mocks"
	"github.com/atelieraurum/studio-api/orders/domain"
	"github.com/atelieraurum/studio-api/orders/queue"
)

func TestTransition(t *testing.T) {
	tests := []struct {
		name    string
		order   *domain.Order
		target  domain.OrderStatus
		wantErr error
	}{
		{
			name:   "pending to confirmed",
			order:  &domain.Order{OrderStatus: domain.StatusPending, DeliveryMethod: domain.DeliveryShipping},
			target: domain.StatusConfirmed,
		},
		{
			name:   "confirmed delivery order ships",
			order:  &domain.Order{OrderStatus: domain.StatusConfirmed, DeliveryMethod: domain.DeliveryShipping},
			target: domain.StatusShipped,
		},
		{
			name:   "confirmed pickup order skips shipped",
			order:  &domain.Order{OrderStatus: domain.StatusConfirmed, DeliveryMethod: domain.DeliveryPickup},
			target: domain.StatusFulfilled,
		},
		{
			name:    "pickup order cannot ship",
			order:   &domain.Order{OrderStatus: domain.StatusConfirmed, DeliveryMethod: domain.DeliveryPickup},
			target:  domain.StatusShipped,
			wantErr: ErrInvalidTransition,
		},
		{
			name:    "pending cannot jump to delivered",
			order:   &domain.Order{OrderStatus: domain.StatusPending, DeliveryMethod: domain.DeliveryShipping},
			target:  domain.StatusDelivered,
			wantErr: ErrInvalidTransition,
		},
		{
			name:    "no backwards transitions",
			order:   &domain.Order{OrderStatus: domain.StatusShipped, DeliveryMethod: domain.DeliveryShipping},
			target:  domain.StatusConfirmed,
			wantErr: ErrInvalidTransition,
		},
		{
			name:   "shipped to fulfilled",
			order:  &domain.Order{OrderStatus: domain.StatusShipped, DeliveryMethod: domain.DeliveryShipping},
			target: domain.StatusFulfilled,
		},
		{
			name:   "fulfilled delivery order delivered",
			order:  &domain.Order{OrderStatus: domain.StatusFulfilled, DeliveryMethod: domain.DeliveryShipping},
			target: domain.StatusDelivered,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := transition(tt.order, tt.target)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.target, tt.order.OrderStatus)
		})
	}
}

func TestOrderService_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	type fields struct {
		ordersDAL     *mocks.Orders
		notifications *mailerMocks.NotificationSender
	}

	tests := []struct {
		name       string
		sessionID  string
		target     domain.OrderStatus
		on         func(f *fields)
		wantErr    error
		wantStatus domain.OrderStatus
	}{
		{
			name:      "order not found",
			sessionID: "cs_missing",
			target:    domain.StatusConfirmed,
			on: func(f *fields) {
				f.ordersDAL.On("GetOrderBySessionID", ctx, "cs_missing").
					Return(nil, dal.ErrOrderNotFound)
			},
			wantErr: dal.ErrOrderNotFound,
		},
		{
			name:      "invalid transition is rejected before any write",
			sessionID: "cs_1",
			target:    domain.StatusDelivered,
			on: func(f *fields) {
				f.ordersDAL.On("GetOrderBySessionID", ctx, "cs_1").
					Return(&domain.Order{ID: "cs_1", OrderStatus: domain.StatusPending, DeliveryMethod: domain.DeliveryShipping}, nil)
			},
			wantErr: ErrInvalidTransition,
		},
		{
			name:      "valid transition persisted",
			sessionID: "cs_2",
			target:    domain.StatusConfirmed,
			on: func(f *fields) {
				f.ordersDAL.On("GetOrderBySessionID", ctx, "cs_2").
					Return(&domain.Order{ID: "cs_2", OrderStatus: domain.StatusPending, DeliveryMethod: domain.DeliveryShipping}, nil)
				f.ordersDAL.On("UpdateStatus", ctx, "cs_2", domain.StatusConfirmed).
					Return(nil)
			},
			wantStatus: domain.StatusConfirmed,
		},
		{
			name:      "shipping an order sends a notification",
			sessionID: "cs_3",
			target:    domain.StatusShipped,
			on: func(f *fields) {
				f.ordersDAL.On("GetOrderBySessionID", ctx, "cs_3").
					Return(&domain.Order{
						ID:             "cs_3",
						OrderStatus:    domain.StatusConfirmed,
						DeliveryMethod: domain.DeliveryShipping,
						CustomerEmail:  "jane@example.com",
					}, nil)
				f.ordersDAL.On("UpdateStatus", ctx, "cs_3", domain.StatusShipped).
					Return(nil)
				f.notifications.On("SendNotification", mock.Anything, "jane@example.com", mock.Anything).
					Return(nil)
			},
			wantStatus: domain.StatusShipped,
		},
		{
			name:      "mail failure does not fail the transition",
			sessionID: "cs_4",
			target:    domain.StatusShipped,
			on: func(f *fields) {
				f.ordersDAL.On("GetOrderBySessionID", ctx, "cs_4").
					Return(&domain.Order{
						ID:             "cs_4",
						OrderStatus:    domain.StatusConfirmed,
						DeliveryMethod: domain.DeliveryShipping,
						CustomerEmail:  "jane@example.com",
					}, nil)
				f.ordersDAL.On("UpdateStatus", ctx, "cs_4", domain.StatusShipped).
					Return(nil)
				f.notifications.On("SendNotification", mock.Anything, "jane@example.com", mock.Anything).
					Return(errors.New("sendgrid is down"))
			},
			wantStatus: domain.StatusShipped,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &fields{
				ordersDAL:     mocks.NewOrders(t),
				notifications: mailerMocks.NewNotificationSender(t),
			}

			if tt.on != nil {
				tt.on(f)
			}

			s := NewOrderServiceWithDeps(logger.FromContext, f.ordersDAL, catalogMocks.NewProducts(t), f.notifications)

			order, err := s.UpdateStatus(ctx, tt.sessionID, tt.target)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantStatus, order.OrderStatus)
		})
	}
}

func TestOrderService_ListQueue(t *testing.T) {
	ctx := context.Background()

	now := time.Now().UTC()

	ordersDAL := mocks.NewOrders(t)
	ordersDAL.On("ListOrders", ctx).Return([]*domain.Order{
		{
			ID:                "cs_b",
			CustomerFirstName: "Mia",
			CustomerLastName:  "Lee",
			OrderStatus:       domain.StatusPending,
			DeliveryMethod:    domain.DeliveryShipping,
			ShippingMethod:    domain.ShippingStandard,
			OrderDate:         now,
		},
		{
			ID:                "cs_a",
			CustomerFirstName: "Ana",
			CustomerLastName:  "Roy",
			OrderStatus:       domain.StatusPending,
			DeliveryMethod:    domain.DeliveryPickup,
			OrderDate:         now,
		},
	}, nil)

	s := NewOrderServiceWithDeps(logger.FromContext, ordersDAL, catalogMocks.NewProducts(t), mailerMocks.NewNotificationSender(t))

	got, err := s.ListQueue(ctx, queue.FilterAll, "")

	assert.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, "cs_a", got[0].ID)
}

func TestOrderService_SendDailyDigest(t *testing.T) {
	ctx := context.Background()

	type fields struct {
		ordersDAL     *mocks.Orders
		productsDAL   *catalogMocks.Products
		notifications *mailerMocks.NotificationSender
	}

	tests := []struct {
		name    string
		on      func(f *fields)
		wantErr bool
	}{
		{
			name: "digest sent with low stock products",
			on: func(f *fields) {
				// the window starts one day before the send
				dayAgo := mock.MatchedBy(func(from time.Time) bool {
					since := time.Since(from)
					return since > common.DayDuration-time.Minute && since < common.DayDuration+time.Minute
				})
				f.ordersDAL.On("ListOrdersBetween", mock.Anything, dayAgo, mock.Anything).
					Return([]*domain.Order{
						{ID: "cs_1", TotalAmount: 5000, OrderStatus: domain.StatusPending},
						{ID: "cs_2", TotalAmount: 2500, OrderStatus: domain.StatusDelivered},
					}, nil)
				f.productsDAL.On("ListProducts", mock.Anything).
					Return([]*catalogDomain.Product{
						{ID: "ring-1", Name: "Silver Ring", QuantityInStock: 1},
						{ID: "chain-2", Name: "Curb Chain", QuantityInStock: 10},
					}, nil)
				f.notifications.On("SendNotification", mock.Anything, mock.Anything, mock.MatchedBy(func(params map[string]interface{}) bool {
					return params["orders_count"] == 2 &&
						params["open_orders"] == 1 &&
						params["revenue_cents"] == int64(7500)
				})).Return(nil)
			},
		},
		{
			name: "orders read failure aborts the digest",
			on: func(f *fields) {
				f.ordersDAL.On("ListOrdersBetween", mock.Anything, mock.Anything, mock.Anything).
					Return(nil, errors.New("firestore unavailable"))
				f.productsDAL.On("ListProducts", mock.Anything).
					Return([]*catalogDomain.Product{}, nil).Maybe()
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &fields{
				ordersDAL:     mocks.NewOrders(t),
				productsDAL:   catalogMocks.NewProducts(t),
				notifications: mailerMocks.NewNotificationSender(t),
			}

			if tt.on != nil {
				tt.on(f)
			}

			s := NewOrderServiceWithDeps(logger.FromContext, f.ordersDAL, f.productsDAL, f.notifications)

			err := s.SendDailyDigest(ctx)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
		})
	}
}
