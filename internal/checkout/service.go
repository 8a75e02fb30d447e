// Package checkout turns a session's cart into an order with its invoice.
package checkout

import (
	"context"
	"fmt"

	"github.com/chayanon-dev/lineadmin/internal/billing"
	"github.com/chayanon-dev/lineadmin/internal/cart"
	"github.com/chayanon-dev/lineadmin/internal/customers"
	"github.com/chayanon-dev/lineadmin/internal/orders"
	"github.com/chayanon-dev/lineadmin/internal/session"
	"github.com/chayanon-dev/lineadmin/internal/validators"
	pkgerrors "github.com/chayanon-dev/lineadmin/pkg/errors"
	"github.com/chayanon-dev/lineadmin/pkg/logger"
	"github.com/chayanon-dev/lineadmin/pkg/metrics"
	"github.com/chayanon-dev/lineadmin/pkg/models"
)

// SubmitInput names the buyer the order is placed for.
type SubmitInput struct {
	LineID string `json:"line_id" validate:"required,max=40"`
	Notes  string `json:"notes" validate:"max=500"`
}

// Result is everything checkout produced.
type Result struct {
	Order    models.Order
	Bill     models.Bill
	Customer models.Customer
}

// Service coordinates the submit-order flow across the domain services.
type Service struct {
	carts     *cart.Service
	orders    *orders.Service
	billing   *billing.Service
	customers *customers.Service
	log       *logger.Logger
	metrics   *metrics.CartMetrics
}

// NewService builds the checkout service. Metrics may be nil.
func NewService(
	carts *cart.Service,
	orderSvc *orders.Service,
	billingSvc *billing.Service,
	customerSvc *customers.Service,
	log *logger.Logger,
	cartMetrics *metrics.CartMetrics,
) (*Service, error) {
	if carts == nil || orderSvc == nil || billingSvc == nil || customerSvc == nil {
		return nil, fmt.Errorf("all domain services required")
	}
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &Service{
		carts:     carts,
		orders:    orderSvc,
		billing:   billingSvc,
		customers: customerSvc,
		log:       log,
		metrics:   cartMetrics,
	}, nil
}

// Submit prices the session's cart at the acting tier, records the order
// and its invoice, bumps the buyer's lifetime totals and empties the cart.
// The cart is only cleared once everything else succeeded.
func (s *Service) Submit(ctx context.Context, sess *session.Session, input SubmitInput) (*Result, error) {
	if err := validators.Struct(input); err != nil {
		return nil, err
	}
	if sess.Cart.IsEmpty() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
	}
	ctx = s.log.WithSessionID(ctx, sess.ID)
	ctx = s.log.WithTier(ctx, sess.Tier.String())

	customer, err := s.customers.FindByLineID(input.LineID)
	if err != nil {
		return nil, err
	}
	total, err := s.carts.Total(sess.Cart, sess.Tier)
	if err != nil {
		return nil, err
	}

	order, err := s.orders.Create(ctx, orders.CreateInput{
		CustomerName: customer.Name,
		LineID:       customer.LineID,
		LineAccount:  customer.LineAccount,
		Products:     sess.Cart.ProductNames(),
		Quantity:     sess.Cart.ItemCount(),
		TotalAmount:  total,
		Notes:        input.Notes,
	})
	if err != nil {
		return nil, err
	}
	bill, err := s.billing.CreateForOrder(ctx, order)
	if err != nil {
		return nil, err
	}
	customer, err = s.customers.RecordOrder(ctx, customer.LineID, total)
	if err != nil {
		return nil, err
	}

	sess.Cart.Clear()
	s.metrics.ObserveOrderValue(total)
	s.log.Info(s.log.WithOrderID(ctx, order.ID), "order submitted")
	return &Result{Order: order, Bill: bill, Customer: customer}, nil
}
