package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stripe/stripe-go/v74"

	bookingsMocks "github.com/atelieraurum/studio-api/bookings/dal/mocks"
	catalogDomain "github.com/atelieraurum/studio-api/catalog/domain"
	catalogService "github.com/atelieraurum/studio-api/catalog/service"
	catalogMocks "github.com/atelieraurum/studio-api/catalog/service/mocks"
	customersMocks "github.com/atelieraurum/studio-api/customers/dal/mocks"
	customersDomain "github.com/atelieraurum/studio-api/customers/domain"
	"github.com/atelieraurum/studio-api/logger"
	mailerMocks "github.com/atelieraurum/studio-api/mailer/mocks"
	ordersDAL "github.com/atelieraurum/studio-api/orders/dal"
	ordersMocks "github.com/atelieraurum/studio-api/orders/dal/mocks"
	ordersDomain "github.com/atelieraurum/studio-api/orders/domain"
	"github.com/atelieraurum/studio-api/payments/consts"
	"github.com/atelieraurum/studio-api/payments/service/mocks"
	subscriptionsMocks "github.com/atelieraurum/studio-api/subscriptions/dal/mocks"
)

type fields struct {
	stripeClient  *mocks.SessionProvider
	stockService  *catalogMocks.Stock
	ordersDAL     *ordersMocks.Orders
	customersDAL  *customersMocks.Customers
	bookingsDAL   *bookingsMocks.Bookings
	subsDAL       *subscriptionsMocks.Subscriptions
	notifications *mailerMocks.NotificationSender
}

func newService(t *testing.T) (*PaymentService, *fields) {
	f := &fields{
		stripeClient:  mocks.NewSessionProvider(t),
		stockService:  catalogMocks.NewStock(t),
		ordersDAL:     ordersMocks.NewOrders(t),
		customersDAL:  customersMocks.NewCustomers(t),
		bookingsDAL:   bookingsMocks.NewBookings(t),
		subsDAL:       subscriptionsMocks.NewSubscriptions(t),
		notifications: mailerMocks.NewNotificationSender(t),
	}

	s := NewPaymentServiceWithDeps(
		logger.FromContext,
		f.stripeClient,
		f.stockService,
		f.ordersDAL,
		f.customersDAL,
		f.bookingsDAL,
		f.subsDAL,
		f.notifications,
	)

	return s, f
}

func paidCartSession(id string) *stripe.CheckoutSession {
	return &stripe.CheckoutSession{
		ID:            id,
		PaymentStatus: stripe.CheckoutSessionPaymentStatusPaid,
		AmountTotal:   2000,
		Metadata: map[string]string{
			consts.MetadataKeyKind:           "cart",
			consts.MetadataKeyFirstName:      "Jane",
			consts.MetadataKeyLastName:       "Smith",
			consts.MetadataKeyEmail:          "jane@example.com",
			consts.MetadataKeyDeliveryMethod: "delivery",
			consts.MetadataKeyShippingMethod: "Standard",
			consts.MetadataKeyCart:           `[{"p":"X","q":2,"u":1000}]`,
		},
	}
}

func TestPaymentService_Finalize_ShortCircuit(t *testing.T) {
	ctx := context.Background()
	s, f := newService(t)

	f.ordersDAL.On("GetOrderBySessionID", ctx, "cs_1").
		Return(&ordersDomain.Order{ID: "cs_1", TotalAmount: 2000, DeliveryMethod: ordersDomain.DeliveryShipping}, nil)

	result, err := s.Finalize(ctx, "cs_1")

	assert.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "cs_1", result.OrderID)
	// no Stripe call, no stock mutation on the repeat path
	f.stripeClient.AssertNotCalled(t, "GetCheckoutSession")
}

func TestPaymentService_Finalize_MissingSessionID(t *testing.T) {
	s, _ := newService(t)

	_, err := s.Finalize(context.Background(), "")

	assert.ErrorIs(t, err, ErrMissingSessionID)
}

func TestPaymentService_Finalize_PaymentIncomplete(t *testing.T) {
	ctx := context.Background()
	s, f := newService(t)

	f.ordersDAL.On("GetOrderBySessionID", ctx, "cs_unpaid").
		Return(nil, ordersDAL.ErrOrderNotFound)
	f.stripeClient.On("GetCheckoutSession", "cs_unpaid", (*stripe.CheckoutSessionParams)(nil)).
		Return(&stripe.CheckoutSession{
			ID:            "cs_unpaid",
			PaymentStatus: stripe.CheckoutSessionPaymentStatusUnpaid,
		}, nil)

	_, err := s.Finalize(ctx, "cs_unpaid")

	assert.ErrorIs(t, err, ErrPaymentIncomplete)
}

func TestPaymentService_Finalize_CreatesOrder(t *testing.T) {
	ctx := context.Background()
	s, f := newService(t)

	cart := []catalogDomain.CartLine{{ProductID: "X", Quantity: 2, UnitPrice: 1000}}

	f.ordersDAL.On("GetOrderBySessionID", ctx, "cs_new").
		Return(nil, ordersDAL.ErrOrderNotFound)
	f.stripeClient.On("GetCheckoutSession", "cs_new", (*stripe.CheckoutSessionParams)(nil)).
		Return(paidCartSession("cs_new"), nil)
	f.stockService.On("VerifyInStock", ctx, cart).Return(nil)
	f.stockService.On("DecrementStock", ctx, cart).Return(1, nil)
	f.customersDAL.On("ResolveOrCreate", ctx, customersDomain.Contact{
		FirstName: "Jane",
		LastName:  "Smith",
		Email:     "jane@example.com",
	}).Return(&customersDomain.Customer{ID: "cust-1", Email: "jane@example.com"}, nil)
	f.ordersDAL.On("CreateIfAbsent", ctx, mock.MatchedBy(func(order *ordersDomain.Order) bool {
		return order.StripeSessionID == "cs_new" &&
			order.CustomerID == "cust-1" &&
			order.TotalAmount == 2000 &&
			order.OrderStatus == ordersDomain.StatusPending
	})).Return(true, &ordersDomain.Order{
		ID:             "cs_new",
		CustomerID:     "cust-1",
		CustomerEmail:  "jane@example.com",
		TotalAmount:    2000,
		OrderStatus:    ordersDomain.StatusPending,
		DeliveryMethod: ordersDomain.DeliveryShipping,
	}, nil)
	f.customersDAL.On("AttachOrder", ctx, "cust-1", "cs_new").Return(nil)
	f.notifications.On("SendNotification", mock.Anything, "jane@example.com", mock.Anything).Return(nil)
	f.ordersDAL.On("SetEmailSent", ctx, "cs_new").Return(nil)

	result, err := s.Finalize(ctx, "cs_new")

	assert.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "cs_new", result.OrderID)
	assert.Equal(t, int64(2000), result.TotalAmount)
}

func TestPaymentService_Finalize_LostRaceSkipsSideEffects(t *testing.T) {
	ctx := context.Background()
	s, f := newService(t)

	cart := []catalogDomain.CartLine{{ProductID: "X", Quantity: 2, UnitPrice: 1000}}

	f.ordersDAL.On("GetOrderBySessionID", ctx, "cs_race").
		Return(nil, ordersDAL.ErrOrderNotFound)
	f.stripeClient.On("GetCheckoutSession", "cs_race", (*stripe.CheckoutSessionParams)(nil)).
		Return(paidCartSession("cs_race"), nil)
	f.stockService.On("VerifyInStock", ctx, cart).Return(nil)
	f.stockService.On("DecrementStock", ctx, cart).Return(1, nil)
	f.customersDAL.On("ResolveOrCreate", ctx, mock.Anything).
		Return(&customersDomain.Customer{ID: "cust-1"}, nil)
	f.ordersDAL.On("CreateIfAbsent", ctx, mock.Anything).
		Return(false, &ordersDomain.Order{ID: "cs_race", TotalAmount: 2000}, nil)

	result, err := s.Finalize(ctx, "cs_race")

	assert.NoError(t, err)
	assert.Equal(t, "cs_race", result.OrderID)
	// the winning caller owns the attach and email side effects
	f.customersDAL.AssertNotCalled(t, "AttachOrder", mock.Anything, mock.Anything, mock.Anything)
	f.notifications.AssertNotCalled(t, "SendNotification", mock.Anything, mock.Anything, mock.Anything)
}

func TestPaymentService_Finalize_InsufficientStockAtFinalize(t *testing.T) {
	ctx := context.Background()
	s, f := newService(t)

	cart := []catalogDomain.CartLine{{ProductID: "X", Quantity: 2, UnitPrice: 1000}}

	f.ordersDAL.On("GetOrderBySessionID", ctx, "cs_oos").
		Return(nil, ordersDAL.ErrOrderNotFound)
	f.stripeClient.On("GetCheckoutSession", "cs_oos", (*stripe.CheckoutSessionParams)(nil)).
		Return(paidCartSession("cs_oos"), nil)
	f.stockService.On("VerifyInStock", ctx, cart).
		Return(&catalogService.InventoryError{Insufficient: []catalogService.InsufficientLine{
			{ProductID: "X", Requested: 2, Available: 1},
		}})

	_, err := s.Finalize(ctx, "cs_oos")

	assert.Error(t, err)
	// no order may exist for an unfulfillable session
	f.ordersDAL.AssertNotCalled(t, "CreateIfAbsent", mock.Anything, mock.Anything)
}
