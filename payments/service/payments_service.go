package service

import (
	"github.com/stripe/stripe-go/v74"

	bookingsDAL "github.com/atelieraurum/studio-api/bookings/dal"
	catalogService "github.com/atelieraurum/studio-api/catalog/service"
	customersDAL "github.com/atelieraurum/studio-api/customers/dal"
	"github.com/atelieraurum/studio-api/framework/connection"
	"github.com/atelieraurum/studio-api/logger"
	"github.com/atelieraurum/studio-api/mailer"
	ordersDAL "github.com/atelieraurum/studio-api/orders/dal"
	subscriptionsDAL "github.com/atelieraurum/studio-api/subscriptions/dal"
)

// SessionProvider is the slice of the Stripe API the payment service touches.
//
//go:generate mockery --name SessionProvider --output ./mocks
type SessionProvider interface {
	NewCheckoutSession(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
	GetCheckoutSession(id string, params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
	WebhookSignKey() string
}

// NewCheckoutSession creates a checkout session on Stripe.
func (c *Client) NewCheckoutSession(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	return c.CheckoutSessions.New(params)
}

// GetCheckoutSession fetches a checkout session from Stripe.
func (c *Client) GetCheckoutSession(id string, params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	return c.CheckoutSessions.Get(id, params)
}

func (c *Client) WebhookSignKey() string {
	return c.webhookSignKey
}

// PaymentService orchestrates checkout session creation and fulfillment. All
// state lives in Firestore and on Stripe; the service itself is stateless and
// shared across requests.
type PaymentService struct {
	loggerProvider   logger.Provider
	stripeClient     SessionProvider
	stockService     catalogService.Stock
	ordersDAL        ordersDAL.Orders
	customersDAL     customersDAL.Customers
	bookingsDAL      bookingsDAL.Bookings
	subscriptionsDAL subscriptionsDAL.Subscriptions
	notifications    mailer.NotificationSender
}

func NewPaymentService(loggerProvider logger.Provider, conn *connection.Connection) (*PaymentService, error) {
	stripeClient, err := NewStripeClient()
	if err != nil {
		return nil, err
	}

	return &PaymentService{
		loggerProvider,
		stripeClient,
		catalogService.NewStockService(loggerProvider, conn),
		ordersDAL.NewOrdersFirestoreWithClient(conn.Firestore),
		customersDAL.NewCustomersFirestoreWithClient(conn.Firestore),
		bookingsDAL.NewBookingsFirestoreWithClient(conn.Firestore),
		subscriptionsDAL.NewSubscriptionsFirestoreWithClient(conn.Firestore),
		mailer.ForEnvironment(),
	}, nil
}

// NewPaymentServiceWithDeps is used by tests.
func NewPaymentServiceWithDeps(
	loggerProvider logger.Provider,
	stripeClient SessionProvider,
	stockService catalogService.Stock,
	orders ordersDAL.Orders,
	customers customersDAL.Customers,
	bookings bookingsDAL.Bookings,
	subscriptions subscriptionsDAL.Subscriptions,
	notifications mailer.NotificationSender,
) *PaymentService {
	return &PaymentService{
		loggerProvider,
		stripeClient,
		stockService,
		orders,
		customers,
		bookings,
		subscriptions,
		notifications,
	}
}
