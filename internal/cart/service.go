package cart

import (
	"context"
	"fmt"

	"github.com/chayanon-dev/lineadmin/internal/pricing"
	"github.com/chayanon-dev/lineadmin/pkg/enums"
	"github.com/chayanon-dev/lineadmin/pkg/logger"
	"github.com/chayanon-dev/lineadmin/pkg/metrics"
	"github.com/chayanon-dev/lineadmin/pkg/models"
)

// SummaryLine is a cart line priced for a tier.
type SummaryLine struct {
	Product        models.Product
	Quantity       int
	UnitPrice      int
	SavingsPerUnit int
	Subtotal       int
}

// Summary is the cart snapshot rendered in the cart dialog. Totals are
// recomputed from scratch on every read.
type Summary struct {
	Tier      enums.CustomerTier
	Lines     []SummaryLine
	Total     int
	ItemCount int
	LineCount int
}

// Service instruments cart mutations and derives priced summaries.
type Service struct {
	log     *logger.Logger
	metrics *metrics.CartMetrics
}

// NewService builds a cart service. Metrics may be nil.
func NewService(log *logger.Logger, cartMetrics *metrics.CartMetrics) (*Service, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &Service{log: log, metrics: cartMetrics}, nil
}

// Add puts the product in the cart at one minimum-order step.
func (s *Service) Add(ctx context.Context, c *Cart, product models.Product, tier enums.CustomerTier) error {
	ctx = s.log.WithProductID(ctx, product.ID)
	if err := c.Add(product); err != nil {
		s.metrics.IncRejection("out_of_stock")
		s.log.Warn(ctx, "add to cart refused")
		return err
	}
	s.metrics.IncAdd(tier.String())
	s.log.Debug(ctx, "product added to cart")
	return nil
}

// SetQuantity applies the requested quantity; below-minimum requests are
// logged and dropped without error.
func (s *Service) SetQuantity(ctx context.Context, c *Cart, productID string, quantity int) {
	if c.SetQuantity(productID, quantity) {
		return
	}
	s.metrics.IncRejection("below_minimum")
	s.log.Debug(s.log.WithProductID(ctx, productID), "quantity change ignored")
}

// Increment steps the line up by one minimum-order increment.
func (s *Service) Increment(ctx context.Context, c *Cart, productID string) {
	if !c.Increment(productID) {
		s.log.Debug(s.log.WithProductID(ctx, productID), "increment ignored")
	}
}

// Decrement steps the line down, refusing to go below the minimum.
func (s *Service) Decrement(ctx context.Context, c *Cart, productID string) {
	if !c.Decrement(productID) {
		s.metrics.IncRejection("below_minimum")
		s.log.Debug(s.log.WithProductID(ctx, productID), "decrement ignored")
	}
}

// Remove drops the line for the product.
func (s *Service) Remove(ctx context.Context, c *Cart, productID string) {
	if c.Remove(productID) {
		s.log.Debug(s.log.WithProductID(ctx, productID), "product removed from cart")
	}
}

// Total is the sum of tier-resolved unit price times quantity per line.
func (s *Service) Total(c *Cart, tier enums.CustomerTier) (int, error) {
	total := 0
	for _, line := range c.Lines() {
		unitPrice, err := pricing.UnitPrice(line.Product, tier)
		if err != nil {
			return 0, err
		}
		total += line.Subtotal(unitPrice)
	}
	return total, nil
}

// Summarize prices every line for the tier and derives the cart totals.
func (s *Service) Summarize(c *Cart, tier enums.CustomerTier) (*Summary, error) {
	summary := &Summary{
		Tier:      tier,
		Lines:     make([]SummaryLine, 0, c.LineCount()),
		ItemCount: c.ItemCount(),
		LineCount: c.LineCount(),
	}
	for _, line := range c.Lines() {
		unitPrice, err := pricing.UnitPrice(line.Product, tier)
		if err != nil {
			return nil, err
		}
		savings, err := pricing.SavingsPerUnit(line.Product, tier)
		if err != nil {
			return nil, err
		}
		subtotal := line.Subtotal(unitPrice)
		summary.Lines = append(summary.Lines, SummaryLine{
			Product:        line.Product,
			Quantity:       line.Quantity,
			UnitPrice:      unitPrice,
			SavingsPerUnit: savings,
			Subtotal:       subtotal,
		})
		summary.Total += subtotal
	}
	return summary, nil
}
