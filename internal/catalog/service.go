// Package catalog serves the product listing, the category filter and the
// product management screen.
package catalog

import (
	"context"
	"fmt"

	"github.com/chayanon-dev/lineadmin/internal/pricing"
	"github.com/chayanon-dev/lineadmin/internal/repo"
	"github.com/chayanon-dev/lineadmin/internal/validators"
	"github.com/chayanon-dev/lineadmin/pkg/enums"
	pkgerrors "github.com/chayanon-dev/lineadmin/pkg/errors"
	"github.com/chayanon-dev/lineadmin/pkg/logger"
	"github.com/chayanon-dev/lineadmin/pkg/models"
	"github.com/chayanon-dev/lineadmin/pkg/search"
)

// Products with fewer units than this on hand show the low-stock badge.
const lowStockThreshold = 100

const maxNameLen = 120
const maxDescriptionLen = 500

// Filters narrows the product listing. Query matches name, SKU and
// description; Category is an exact choice with the "all" sentinel.
type Filters struct {
	Query    string
	Category string
}

// Stats is the product management header summary.
type Stats struct {
	Total      int
	Available  int
	LowStock   int
	OutOfStock int
}

// ProductInput carries the create/update form for a product. Exactly one
// of FlatPrice or TierPrices must be set; a tiered schedule has to cover
// every customer tier.
type ProductInput struct {
	Name        string         `json:"name" validate:"required,max=120"`
	SKU         string         `json:"sku" validate:"required,max=40"`
	Category    string         `json:"category" validate:"required,max=60"`
	Description string         `json:"description" validate:"max=500"`
	ImageURL    string         `json:"image_url" validate:"omitempty,url"`
	FlatPrice   int            `json:"flat_price" validate:"omitempty,gt=0"`
	TierPrices  map[string]int `json:"tier_prices"`
	Stock       int            `json:"stock" validate:"gte=0"`
	MinOrder    int            `json:"min_order" validate:"required,gt=0"`
}

// Service owns the product store.
type Service struct {
	store  *repo.Store[models.Product]
	log    *logger.Logger
	nextID int
}

// NewService builds the catalog service over a seeded product store.
func NewService(store *repo.Store[models.Product], log *logger.Logger) (*Service, error) {
	if store == nil {
		return nil, fmt.Errorf("product store required")
	}
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	svc := &Service{store: store, log: log, nextID: 1}
	for _, product := range store.All() {
		var n int
		if _, err := fmt.Sscanf(product.ID, "PROD-%d", &n); err == nil && n >= svc.nextID {
			svc.nextID = n + 1
		}
	}
	return svc, nil
}

// List returns the products passing the filters, in catalog order.
func (s *Service) List(filters Filters) []models.Product {
	products := make([]models.Product, 0, s.store.Len())
	for _, product := range s.store.All() {
		if !search.MatchesTerm(filters.Query, product.Name, product.SKU, product.Description) {
			continue
		}
		if !search.MatchesChoice(filters.Category, product.Category) {
			continue
		}
		products = append(products, product)
	}
	return products
}

// Get returns the product for the ID.
func (s *Service) Get(id string) (models.Product, error) {
	return s.store.Get(id)
}

// Categories returns the distinct product categories in catalog order,
// feeding the category dropdown.
func (s *Service) Categories() []string {
	seen := map[string]bool{}
	categories := []string{}
	for _, product := range s.store.All() {
		if seen[product.Category] {
			continue
		}
		seen[product.Category] = true
		categories = append(categories, product.Category)
	}
	return categories
}

// Stats summarizes the catalog by availability.
func (s *Service) Stats() Stats {
	stats := Stats{}
	for _, product := range s.store.All() {
		stats.Total++
		switch product.Status {
		case enums.ProductStatusAvailable:
			stats.Available++
		case enums.ProductStatusLowStock:
			stats.LowStock++
		case enums.ProductStatusOutOfStock:
			stats.OutOfStock++
		}
	}
	return stats
}

// Create validates the form and stores a new product under a generated ID.
func (s *Service) Create(ctx context.Context, input ProductInput) (models.Product, error) {
	product, err := s.buildProduct(input)
	if err != nil {
		return models.Product{}, err
	}
	product.ID = fmt.Sprintf("PROD-%03d", s.nextID)
	s.nextID++
	s.store.Put(product)
	s.log.Info(s.log.WithProductID(ctx, product.ID), "product created")
	return product, nil
}

// Update validates the form and replaces the product in place.
func (s *Service) Update(ctx context.Context, id string, input ProductInput) (models.Product, error) {
	if _, err := s.store.Get(id); err != nil {
		return models.Product{}, err
	}
	product, err := s.buildProduct(input)
	if err != nil {
		return models.Product{}, err
	}
	product.ID = id
	s.store.Put(product)
	s.log.Info(s.log.WithProductID(ctx, id), "product updated")
	return product, nil
}

// Delete removes the product from the catalog.
func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.store.Get(id); err != nil {
		return err
	}
	s.store.Delete(id)
	s.log.Info(s.log.WithProductID(ctx, id), "product deleted")
	return nil
}

func (s *Service) buildProduct(input ProductInput) (models.Product, error) {
	if err := validators.Struct(input); err != nil {
		return models.Product{}, err
	}
	schedule, err := buildPricing(input)
	if err != nil {
		return models.Product{}, err
	}
	product := models.Product{
		Name:        validators.SanitizeString(input.Name, maxNameLen),
		SKU:         validators.SanitizeString(input.SKU, 40),
		Category:    validators.SanitizeString(input.Category, 60),
		Description: validators.SanitizeString(input.Description, maxDescriptionLen),
		ImageURL:    input.ImageURL,
		Pricing:     schedule,
		Stock:       input.Stock,
		MinOrder:    input.MinOrder,
		Status:      statusForStock(input.Stock),
	}
	if err := pricing.ValidateSchedule(product); err != nil {
		return models.Product{}, err
	}
	return product, nil
}

func buildPricing(input ProductInput) (models.Pricing, error) {
	hasFlat := input.FlatPrice > 0
	hasTiers := len(input.TierPrices) > 0
	if hasFlat == hasTiers {
		return models.Pricing{}, pkgerrors.New(pkgerrors.CodeValidation, "exactly one of flat price or tier prices must be set")
	}
	if hasFlat {
		return models.FlatPrice(input.FlatPrice), nil
	}
	tiers := make(map[enums.CustomerTier]int, len(input.TierPrices))
	for raw, amount := range input.TierPrices {
		tier, err := enums.ParseCustomerTier(raw)
		if err != nil {
			return models.Pricing{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid tier in price schedule")
		}
		if amount <= 0 {
			return models.Pricing{}, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("tier %s price must be positive", tier))
		}
		tiers[tier] = amount
	}
	return models.TierPrices(tiers), nil
}

func statusForStock(stock int) enums.ProductStatus {
	switch {
	case stock <= 0:
		return enums.ProductStatusOutOfStock
	case stock < lowStockThreshold:
		return enums.ProductStatusLowStock
	default:
		return enums.ProductStatusAvailable
	}
}
