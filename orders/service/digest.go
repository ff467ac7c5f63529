package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	catalogDomain "github.com/atelieraurum/studio-api/catalog/domain"
	"github.com/atelieraurum/studio-api/common"
	"github.com/atelieraurum/studio-api/mailer"
	"github.com/atelieraurum/studio-api/orders/domain"
)

const (
	digestWindow      = common.DayDuration
	lowStockThreshold = 3
)

type digestData struct {
	orders   []*domain.Order
	lowStock []*catalogDomain.Product
}

// SendDailyDigest emails the studio a summary of the last day: orders taken,
// revenue, open order count and products running low on stock. The two reads
// run concurrently.
func (s *OrderService) SendDailyDigest(ctx context.Context) error {
	l := s.loggerProvider(ctx)

	now := time.Now().UTC()

	var data digestData

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		orders, err := s.ordersDAL.ListOrdersBetween(gctx, now.Add(-digestWindow), now)
		if err != nil {
			return fmt.Errorf("failed to list orders for digest: %w", err)
		}

		data.orders = orders

		return nil
	})

	g.Go(func() error {
		products, err := s.productsDAL.ListProducts(gctx)
		if err != nil {
			return fmt.Errorf("failed to list products for digest: %w", err)
		}

		for _, product := range products {
			if product.QuantityInStock < lowStockThreshold {
				data.lowStock = append(data.lowStock, product)
			}
		}

		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	var revenue int64

	openOrders := 0

	for _, order := range data.orders {
		revenue += order.TotalAmount

		if order.OrderStatus == domain.StatusPending || order.OrderStatus == domain.StatusConfirmed {
			openOrders++
		}
	}

	lowStock := make([]map[string]interface{}, 0, len(data.lowStock))
	for _, product := range data.lowStock {
		lowStock = append(lowStock, map[string]interface{}{
			"name":     product.Name,
			"quantity": product.QuantityInStock,
		})
	}

	sn := &mailer.SimpleNotification{
		Subject:    fmt.Sprintf("Studio digest for %s", now.Format("Jan 2, 2006")),
		TemplateID: mailer.Config.DynamicTemplates.OrderDigest,
		Categories: []string{mailer.CategoryDigest},
	}

	params := map[string]interface{}{
		"orders_count":  len(data.orders),
		"open_orders":   openOrders,
		"revenue_cents": revenue,
		"low_stock":     lowStock,
	}

	if err := s.notifications.SendNotification(sn, mailer.Config.StudioEmail, params); err != nil {
		return fmt.Errorf("failed to send daily digest: %w", err)
	}

	l.Infof("daily digest sent: %d orders, %d low stock products", len(data.orders), len(data.lowStock))

	return nil
}
