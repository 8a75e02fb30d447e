package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/chayanon-dev/lineadmin/internal/billing"
	"github.com/chayanon-dev/lineadmin/internal/cart"
	"github.com/chayanon-dev/lineadmin/internal/catalog"
	"github.com/chayanon-dev/lineadmin/internal/checkout"
	"github.com/chayanon-dev/lineadmin/internal/customers"
	"github.com/chayanon-dev/lineadmin/internal/orders"
	"github.com/chayanon-dev/lineadmin/internal/pricing"
	"github.com/chayanon-dev/lineadmin/internal/seed"
	"github.com/chayanon-dev/lineadmin/internal/session"
	"github.com/chayanon-dev/lineadmin/pkg/config"
	"github.com/chayanon-dev/lineadmin/pkg/logger"
	"github.com/chayanon-dev/lineadmin/pkg/metrics"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "demo"})
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		logg.Warn(ctx, ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(ctx, "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "demo",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	if err := run(ctx, cfg, logg); err != nil {
		logg.Error(ctx, "demo failed", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logg *logger.Logger) error {
	data, err := seed.Load()
	if err != nil {
		return err
	}

	registry := prometheus.NewRegistry()
	cartMetrics := metrics.NewCartMetrics(registry)

	catalogSvc, err := catalog.NewService(data.Products, logg)
	if err != nil {
		return err
	}
	cartSvc, err := cart.NewService(logg, cartMetrics)
	if err != nil {
		return err
	}
	orderSvc, err := orders.NewService(data.Orders, logg)
	if err != nil {
		return err
	}
	billingSvc, err := billing.NewService(data.Bills, logg)
	if err != nil {
		return err
	}
	customerSvc, err := customers.NewService(data.Customers, logg)
	if err != nil {
		return err
	}
	checkoutSvc, err := checkout.NewService(cartSvc, orderSvc, billingSvc, customerSvc, logg, cartMetrics)
	if err != nil {
		return err
	}

	sess, err := session.New(cfg.Session.Tier())
	if err != nil {
		return err
	}
	ctx = logg.WithSessionID(ctx, sess.ID)
	logg.Info(logg.WithTier(ctx, sess.Tier.String()), "session started")

	// Browse the catalog as the configured tier.
	heading("Catalog (%s, %s)", sess.Tier.Label(), sess.Tier.DiscountNote())
	for _, product := range catalogSvc.List(catalog.Filters{}) {
		price, err := pricing.UnitPrice(product, sess.Tier)
		if err != nil {
			return err
		}
		fmt.Printf("  %-9s %-10s %-14s ฿%-5d min %-4d [%s]\n",
			product.ID, product.Name, product.Category, price, product.MinOrder, product.Status)
	}

	heading("Electronics only")
	for _, product := range catalogSvc.List(catalog.Filters{Category: "Electronics"}) {
		fmt.Printf("  %s %s\n", product.ID, product.Name)
	}

	// The same cart gets cheaper as the tier climbs.
	productA, err := catalogSvc.Get("PROD-001")
	if err != nil {
		return err
	}
	productB, err := catalogSvc.Get("PROD-002")
	if err != nil {
		return err
	}
	if err := cartSvc.Add(ctx, sess.Cart, productA, sess.Tier); err != nil {
		return err
	}
	if err := cartSvc.Add(ctx, sess.Cart, productB, sess.Tier); err != nil {
		return err
	}
	cartSvc.SetQuantity(ctx, sess.Cart, productA.ID, 100)
	cartSvc.SetQuantity(ctx, sess.Cart, productB.ID, 200)

	heading("Cart total per tier")
	for range 4 {
		total, err := cartSvc.Total(sess.Cart, sess.Tier)
		if err != nil {
			return err
		}
		fmt.Printf("  %-9s ฿%d\n", sess.Tier.Label(), total)
		sess.CycleTier()
	}

	if err := sess.SwitchTier(cfg.Session.Tier()); err != nil {
		return err
	}
	summary, err := cartSvc.Summarize(sess.Cart, sess.Tier)
	if err != nil {
		return err
	}
	heading("Cart (%d lines, %d items)", summary.LineCount, summary.ItemCount)
	for _, line := range summary.Lines {
		fmt.Printf("  %-10s ×%-4d @ ฿%-4d = ฿%d\n", line.Product.Name, line.Quantity, line.UnitPrice, line.Subtotal)
	}
	fmt.Printf("  total ฿%d\n", summary.Total)

	// Submit the order for a registered buyer.
	result, err := checkoutSvc.Submit(ctx, sess, checkout.SubmitInput{LineID: "LINE-123456", Notes: "demo order"})
	if err != nil {
		return err
	}
	heading("Order submitted")
	fmt.Printf("  order   %s  %s  ฿%d  %s\n",
		result.Order.ID, strings.Join(result.Order.Products, ", "), result.Order.TotalAmount, result.Order.Status)
	fmt.Printf("  invoice %s  net ฿%d  vat ฿%d  total ฿%d  due %s\n",
		result.Bill.ID, result.Bill.Amount, result.Bill.Tax, result.Bill.Total, result.Bill.DueDate)
	fmt.Printf("  buyer   %s  %d orders, ฿%d lifetime\n",
		result.Customer.Name, result.Customer.TotalOrders, result.Customer.TotalSpent)

	heading("Dashboard stats")
	productStats := catalogSvc.Stats()
	fmt.Printf("  products  %d total, %d available, %d low stock, %d out of stock\n",
		productStats.Total, productStats.Available, productStats.LowStock, productStats.OutOfStock)
	orderStats := orderSvc.Stats()
	fmt.Printf("  orders    %d total, %d pending, %d processing, %d completed\n",
		orderStats.Total, orderStats.Pending, orderStats.Processing, orderStats.Completed)
	billStats := billingSvc.Stats()
	fmt.Printf("  billing   ฿%d revenue, %d pending, %d paid, %d overdue\n",
		billStats.TotalRevenue, billStats.Pending, billStats.Paid, billStats.Overdue)
	customerStats := customerSvc.Stats()
	fmt.Printf("  customers %d total, %d active, %d inactive, ฿%d lifetime revenue\n",
		customerStats.Total, customerStats.Active, customerStats.Inactive, customerStats.TotalRevenue)

	return nil
}

func heading(format string, args ...any) {
	fmt.Printf("\n%s\n", fmt.Sprintf(format, args...))
}
