// Package orders serves the order history screen and records orders
// submitted at checkout.
package orders

import (
	"context"
	"fmt"
	"time"

	"github.com/chayanon-dev/lineadmin/internal/repo"
	"github.com/chayanon-dev/lineadmin/internal/validators"
	"github.com/chayanon-dev/lineadmin/pkg/enums"
	pkgerrors "github.com/chayanon-dev/lineadmin/pkg/errors"
	"github.com/chayanon-dev/lineadmin/pkg/logger"
	"github.com/chayanon-dev/lineadmin/pkg/models"
	"github.com/chayanon-dev/lineadmin/pkg/search"
)

const dateLayout = "2006-01-02"

// Filters narrows the order listing. Query matches order ID, customer name
// and LINE ID; Status and LineAccount are exact choices with the "all"
// sentinel.
type Filters struct {
	Query       string
	Status      string
	LineAccount string
}

// Stats is the order screen header summary.
type Stats struct {
	Total      int
	Pending    int
	Processing int
	Completed  int
}

// CreateInput carries a new order record.
type CreateInput struct {
	CustomerName string   `json:"customer_name" validate:"required,max=120"`
	LineID       string   `json:"line_id" validate:"required,max=40"`
	LineAccount  string   `json:"line_account" validate:"required,max=120"`
	Products     []string `json:"products" validate:"required,min=1"`
	Quantity     int      `json:"quantity" validate:"required,gt=0"`
	TotalAmount  int      `json:"total_amount" validate:"gte=0"`
	Notes        string   `json:"notes" validate:"max=500"`
}

// Service owns the order store.
type Service struct {
	store  *repo.Store[models.Order]
	log    *logger.Logger
	now    func() time.Time
	nextID int
}

// NewService builds the order service over a seeded order store.
func NewService(store *repo.Store[models.Order], log *logger.Logger) (*Service, error) {
	if store == nil {
		return nil, fmt.Errorf("order store required")
	}
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	svc := &Service{store: store, log: log, now: time.Now, nextID: 1}
	for _, order := range store.All() {
		var n int
		if _, err := fmt.Sscanf(order.ID, "ORD-%d", &n); err == nil && n >= svc.nextID {
			svc.nextID = n + 1
		}
	}
	return svc, nil
}

// List returns the orders passing the filters, newest batch first being
// whatever order they were recorded in.
func (s *Service) List(filters Filters) []models.Order {
	orders := make([]models.Order, 0, s.store.Len())
	for _, order := range s.store.All() {
		if !search.MatchesTerm(filters.Query, order.ID, order.CustomerName, order.LineID) {
			continue
		}
		if !search.MatchesChoice(filters.Status, order.Status.String()) {
			continue
		}
		if !search.MatchesChoice(filters.LineAccount, order.LineAccount) {
			continue
		}
		orders = append(orders, order)
	}
	return orders
}

// Get returns the order for the ID.
func (s *Service) Get(id string) (models.Order, error) {
	return s.store.Get(id)
}

// LineAccounts returns the distinct LINE accounts in listing order,
// feeding the account dropdown.
func (s *Service) LineAccounts() []string {
	seen := map[string]bool{}
	accounts := []string{}
	for _, order := range s.store.All() {
		if seen[order.LineAccount] {
			continue
		}
		seen[order.LineAccount] = true
		accounts = append(accounts, order.LineAccount)
	}
	return accounts
}

// Stats summarizes the orders by status. Cancelled orders count toward the
// total only.
func (s *Service) Stats() Stats {
	stats := Stats{}
	for _, order := range s.store.All() {
		stats.Total++
		switch order.Status {
		case enums.OrderStatusPending:
			stats.Pending++
		case enums.OrderStatusProcessing:
			stats.Processing++
		case enums.OrderStatusCompleted:
			stats.Completed++
		}
	}
	return stats
}

// Create validates and records a new pending order under a generated ID.
func (s *Service) Create(ctx context.Context, input CreateInput) (models.Order, error) {
	if err := validators.Struct(input); err != nil {
		return models.Order{}, err
	}
	order := models.Order{
		ID:           fmt.Sprintf("ORD-%03d", s.nextID),
		CustomerName: validators.SanitizeString(input.CustomerName, 120),
		LineID:       validators.SanitizeString(input.LineID, 40),
		LineAccount:  validators.SanitizeString(input.LineAccount, 120),
		Products:     input.Products,
		Quantity:     input.Quantity,
		TotalAmount:  input.TotalAmount,
		Status:       enums.OrderStatusPending,
		OrderDate:    s.now().Format(dateLayout),
		Notes:        validators.SanitizeString(input.Notes, 500),
	}
	s.nextID++
	s.store.Put(order)
	s.log.Info(s.log.WithOrderID(ctx, order.ID), "order recorded")
	return order, nil
}

// UpdateStatus moves an order to a new status. Completed and cancelled
// orders are terminal.
func (s *Service) UpdateStatus(ctx context.Context, id string, status enums.OrderStatus) (models.Order, error) {
	if !status.IsValid() {
		return models.Order{}, pkgerrors.New(pkgerrors.CodeValidation, "unknown order status").WithDetails(map[string]string{
			"status": status.String(),
		})
	}
	order, err := s.store.Get(id)
	if err != nil {
		return models.Order{}, err
	}
	if order.Status == enums.OrderStatusCompleted || order.Status == enums.OrderStatusCancelled {
		return models.Order{}, pkgerrors.New(pkgerrors.CodeStateConflict, "order status is final").WithDetails(map[string]string{
			"order_id": id,
			"status":   order.Status.String(),
		})
	}
	order.Status = status
	s.store.Put(order)
	s.log.Info(s.log.WithOrderID(ctx, id), "order status updated")
	return order, nil
}
