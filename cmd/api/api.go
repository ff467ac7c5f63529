package api

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	catalogHandlers "github.com/atelieraurum/studio-api/catalog/handlers"
	"github.com/atelieraurum/studio-api/framework/connection"
	"github.com/atelieraurum/studio-api/framework/mid"
	"github.com/atelieraurum/studio-api/framework/web"
	"github.com/atelieraurum/studio-api/logger"
	ordersHandlers "github.com/atelieraurum/studio-api/orders/handlers"
	paymentsHandlers "github.com/atelieraurum/studio-api/payments/handlers"
	membershipsHandlers "github.com/atelieraurum/studio-api/subscriptions/handlers"
)

// API constructs an api with the needed functionality.
type API struct {
	shutdown chan os.Signal
	log      *logger.Logging
	conn     *connection.Connection
}

func NewAPI(shutdown chan os.Signal, logging *logger.Logging, conn *connection.Connection) *API {
	return &API{
		shutdown,
		logging,
		conn,
	}
}

// Build builds the api endpoints with the needed middlewares, and returns http.Handler interface.
func (a *API) Build() http.Handler {
	loggerProvider := logger.FromContext

	// Construct the web.App which holds all routes as well as common Middleware.
	app := web.NewApp(a.shutdown, a.conn, mid.Logger(), mid.Errors(), mid.Panics())

	app.Get("/health", func(ctx *gin.Context) error {
		return web.Respond(ctx, nil, http.StatusOK)
	})

	catalog := catalogHandlers.NewCatalog(loggerProvider, a.conn)
	orders := ordersHandlers.NewOrders(loggerProvider, a.conn)
	payments := paymentsHandlers.NewPayments(loggerProvider, a.conn)
	memberships := membershipsHandlers.NewMemberships(loggerProvider, a.conn)

	apiGroup := web.NewGroup(app, "/api/v1")
	{
		checkoutGroup := apiGroup.NewSubgroup("/checkout")
		{
			checkoutGroup.Post("/cart", payments.CartCheckoutHandler)
			checkoutGroup.Post("/class", payments.ClassCheckoutHandler)
			checkoutGroup.Post("/lab", payments.LabCheckoutHandler)
			checkoutGroup.Post("/membership", payments.MembershipCheckoutHandler)
			checkoutGroup.Get("/finalize", payments.FinalizeHandler)
		}

		productsGroup := apiGroup.NewSubgroup("/products")
		{
			productsGroup.Get("", catalog.ListProductsHandler)
			productsGroup.Get("/:productID", catalog.GetProductHandler)
			productsGroup.Patch("/:productID/stock", catalog.SetStockHandler)
		}

		ordersGroup := apiGroup.NewSubgroup("/orders")
		{
			ordersGroup.Get("", orders.ListOrdersHandler)
			ordersGroup.Get("/:orderID", orders.GetOrderHandler)
			ordersGroup.Patch("/:orderID/status", orders.UpdateStatusHandler)
			ordersGroup.Delete("/:orderID", orders.DeleteOrderHandler)
		}

		membershipsGroup := apiGroup.NewSubgroup("/memberships")
		{
			membershipsGroup.Get("/manage/:token", memberships.GetMembershipHandler)
			membershipsGroup.Post("/manage/:token/cancel", memberships.CancelMembershipHandler)
		}
	}

	webhooksGroup := web.NewGroup(app, "/webhooks")
	{
		webhooksGroup.Post("/stripe", payments.WebhookHandler)
	}

	tasksGroup := web.NewGroup(app, "/tasks")
	{
		tasksGroup.Get("/orders/digest", orders.DailyDigestHandler)
	}

	return app
}
