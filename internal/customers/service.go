// Package customers serves the customer directory and keeps per-customer
// order totals current.
package customers

import (
	"context"
	"fmt"

	"github.com/chayanon-dev/lineadmin/internal/repo"
	"github.com/chayanon-dev/lineadmin/internal/validators"
	"github.com/chayanon-dev/lineadmin/pkg/enums"
	pkgerrors "github.com/chayanon-dev/lineadmin/pkg/errors"
	"github.com/chayanon-dev/lineadmin/pkg/logger"
	"github.com/chayanon-dev/lineadmin/pkg/models"
	"github.com/chayanon-dev/lineadmin/pkg/search"
)

// Filters narrows the customer directory. Query matches name, LINE ID,
// phone and email.
type Filters struct {
	Query string
}

// Stats is the directory header summary. TotalRevenue is lifetime spend
// across every customer.
type Stats struct {
	Total        int
	Active       int
	Inactive     int
	TotalRevenue int
}

// RegisterInput carries a new customer record.
type RegisterInput struct {
	Name        string `json:"name" validate:"required,max=120"`
	LineID      string `json:"line_id" validate:"required,max=40"`
	LineAccount string `json:"line_account" validate:"required,max=120"`
	Phone       string `json:"phone" validate:"max=20"`
	Email       string `json:"email" validate:"omitempty,email"`
	Tier        string `json:"tier" validate:"required"`
}

// Service owns the customer store.
type Service struct {
	store  *repo.Store[models.Customer]
	log    *logger.Logger
	nextID int
}

// NewService builds the customer service over a seeded customer store.
func NewService(store *repo.Store[models.Customer], log *logger.Logger) (*Service, error) {
	if store == nil {
		return nil, fmt.Errorf("customer store required")
	}
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	svc := &Service{store: store, log: log, nextID: 1}
	for _, customer := range store.All() {
		var n int
		if _, err := fmt.Sscanf(customer.ID, "CUST-%d", &n); err == nil && n >= svc.nextID {
			svc.nextID = n + 1
		}
	}
	return svc, nil
}

// List returns the customers passing the filters, in registration order.
func (s *Service) List(filters Filters) []models.Customer {
	customers := make([]models.Customer, 0, s.store.Len())
	for _, customer := range s.store.All() {
		if !search.MatchesTerm(filters.Query, customer.Name, customer.LineID, customer.Phone, customer.Email) {
			continue
		}
		customers = append(customers, customer)
	}
	return customers
}

// Get returns the customer for the ID.
func (s *Service) Get(id string) (models.Customer, error) {
	return s.store.Get(id)
}

// FindByLineID returns the customer registered under the LINE ID.
func (s *Service) FindByLineID(lineID string) (models.Customer, error) {
	for _, customer := range s.store.All() {
		if customer.LineID == lineID {
			return customer, nil
		}
	}
	return models.Customer{}, pkgerrors.New(pkgerrors.CodeNotFound, "customer not found").WithDetails(map[string]string{
		"line_id": lineID,
	})
}

// Stats summarizes the directory.
func (s *Service) Stats() Stats {
	stats := Stats{}
	for _, customer := range s.store.All() {
		stats.Total++
		stats.TotalRevenue += customer.TotalSpent
		switch customer.Status {
		case enums.CustomerStatusActive:
			stats.Active++
		case enums.CustomerStatusInactive:
			stats.Inactive++
		}
	}
	return stats
}

// Register validates and stores a new active customer.
func (s *Service) Register(ctx context.Context, input RegisterInput, registeredDate string) (models.Customer, error) {
	if err := validators.Struct(input); err != nil {
		return models.Customer{}, err
	}
	tier, err := enums.ParseCustomerTier(input.Tier)
	if err != nil {
		return models.Customer{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid customer tier")
	}
	customer := models.Customer{
		ID:             fmt.Sprintf("CUST-%03d", s.nextID),
		Name:           validators.SanitizeString(input.Name, 120),
		LineID:         validators.SanitizeString(input.LineID, 40),
		LineAccount:    validators.SanitizeString(input.LineAccount, 120),
		Phone:          validators.SanitizeString(input.Phone, 20),
		Email:          validators.SanitizeString(input.Email, 120),
		Tier:           tier,
		RegisteredDate: registeredDate,
		Status:         enums.CustomerStatusActive,
	}
	s.nextID++
	s.store.Put(customer)
	s.log.Info(s.log.WithField(ctx, "customer_id", customer.ID), "customer registered")
	return customer, nil
}

// RecordOrder bumps the customer's lifetime counters after an order is
// placed and reactivates a dormant account.
func (s *Service) RecordOrder(ctx context.Context, lineID string, amount int) (models.Customer, error) {
	customer, err := s.FindByLineID(lineID)
	if err != nil {
		return models.Customer{}, err
	}
	customer.TotalOrders++
	customer.TotalSpent += amount
	customer.Status = enums.CustomerStatusActive
	s.store.Put(customer)
	s.log.Info(s.log.WithField(ctx, "customer_id", customer.ID), "customer totals updated")
	return customer, nil
}

// SetTier moves the customer to a new pricing tier.
func (s *Service) SetTier(ctx context.Context, id string, tier enums.CustomerTier) (models.Customer, error) {
	if !tier.IsValid() {
		return models.Customer{}, pkgerrors.New(pkgerrors.CodeValidation, "unknown customer tier").WithDetails(map[string]string{
			"tier": tier.String(),
		})
	}
	customer, err := s.store.Get(id)
	if err != nil {
		return models.Customer{}, err
	}
	customer.Tier = tier
	s.store.Put(customer)
	s.log.Info(s.log.WithField(ctx, "customer_id", id), "customer tier changed")
	return customer, nil
}
