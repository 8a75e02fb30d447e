// Package seed builds the demonstration dataset the dashboard starts with.
package seed

import (
	"go.uber.org/multierr"

	"github.com/chayanon-dev/lineadmin/internal/pricing"
	"github.com/chayanon-dev/lineadmin/internal/repo"
	"github.com/chayanon-dev/lineadmin/pkg/enums"
	"github.com/chayanon-dev/lineadmin/pkg/models"
)

// Data bundles the seeded stores the services run over.
type Data struct {
	Products  *repo.Store[models.Product]
	Orders    *repo.Store[models.Order]
	Customers *repo.Store[models.Customer]
	Bills     *repo.Store[models.Bill]
}

// Load seeds every store and checks that each tiered product carries a
// complete price schedule. Schedule defects are combined so a broken
// dataset reports every problem at once.
func Load() (*Data, error) {
	products := Products()
	var err error
	for _, product := range products {
		err = multierr.Append(err, pricing.ValidateSchedule(product))
	}
	if err != nil {
		return nil, err
	}
	return &Data{
		Products:  repo.NewStoreOf(products...),
		Orders:    repo.NewStoreOf(Orders()...),
		Customers: repo.NewStoreOf(Customers()...),
		Bills:     repo.NewStoreOf(Bills()...),
	}, nil
}

func tiers(bronze, silver, gold, platinum int) models.Pricing {
	return models.TierPrices(map[enums.CustomerTier]int{
		enums.CustomerTierBronze:   bronze,
		enums.CustomerTierSilver:   silver,
		enums.CustomerTierGold:     gold,
		enums.CustomerTierPlatinum: platinum,
	})
}

// Products returns the demo catalog.
func Products() []models.Product {
	return []models.Product{
		{
			ID:          "PROD-001",
			Name:        "Product A",
			SKU:         "SKU-A001",
			Category:    "Electronics",
			Description: "High-quality electronic product suitable for bulk orders",
			ImageURL:    "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=400",
			Pricing:     tiers(300, 280, 260, 240),
			Stock:       500,
			MinOrder:    50,
			Status:      enums.ProductStatusAvailable,
		},
		{
			ID:          "PROD-002",
			Name:        "Product B",
			SKU:         "SKU-B002",
			Category:    "Home & Garden",
			Description: "Popular home and garden item with excellent reviews",
			ImageURL:    "https://images.unsplash.com/photo-1484101403633-562f891dc89a?w=400",
			Pricing:     tiers(150, 140, 130, 120),
			Stock:       200,
			MinOrder:    100,
			Status:      enums.ProductStatusAvailable,
		},
		{
			ID:          "PROD-003",
			Name:        "Product C",
			SKU:         "SKU-C003",
			Category:    "Fashion",
			Description: "Trendy fashion product perfect for resellers",
			ImageURL:    "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=400",
			Pricing:     tiers(400, 375, 350, 325),
			Stock:       50,
			MinOrder:    25,
			Status:      enums.ProductStatusLowStock,
		},
		{
			ID:          "PROD-004",
			Name:        "Product D",
			SKU:         "SKU-D004",
			Category:    "Beauty",
			Description: "Premium beauty product - currently restocking",
			ImageURL:    "https://images.unsplash.com/photo-1526947425960-945c6e72858f?w=400",
			Pricing:     tiers(250, 235, 220, 205),
			Stock:       0,
			MinOrder:    50,
			Status:      enums.ProductStatusOutOfStock,
		},
		{
			ID:          "PROD-005",
			Name:        "Product E",
			SKU:         "SKU-E005",
			Category:    "Electronics",
			Description: "Best-selling electronic gadget with warranty",
			ImageURL:    "https://images.unsplash.com/photo-1572635196237-14b3f281503f?w=400",
			Pricing:     tiers(500, 470, 440, 410),
			Stock:       1000,
			MinOrder:    30,
			Status:      enums.ProductStatusAvailable,
		},
	}
}

// Orders returns the demo order history.
func Orders() []models.Order {
	return []models.Order{
		{
			ID:           "ORD-001",
			CustomerName: "สมชาย ใจดี",
			LineID:       "LINE-123456",
			LineAccount:  "ตองสามเมล็ดพันธุ์",
			Products:     []string{"Product A", "Product B"},
			Quantity:     150,
			TotalAmount:  45000,
			Status:       enums.OrderStatusPending,
			OrderDate:    "2026-01-20",
		},
		{
			ID:           "ORD-002",
			CustomerName: "สมหญิง รักสวย",
			LineID:       "LINE-789012",
			LineAccount:  "สามเอเมล็ดพันธุ์",
			Products:     []string{"Product C"},
			Quantity:     200,
			TotalAmount:  80000,
			Status:       enums.OrderStatusProcessing,
			OrderDate:    "2026-01-19",
		},
		{
			ID:           "ORD-003",
			CustomerName: "วิชัย ประเสริฐ",
			LineID:       "LINE-345678",
			LineAccount:  "สี่ทิศเมล็ดพันธุ์",
			Products:     []string{"Product A", "Product D"},
			Quantity:     100,
			TotalAmount:  35000,
			Status:       enums.OrderStatusCompleted,
			OrderDate:    "2026-01-18",
		},
		{
			ID:           "ORD-004",
			CustomerName: "นภา สุขใจ",
			LineID:       "LINE-901234",
			LineAccount:  "ตองสามเมล็ดพันธุ์",
			Products:     []string{"Product B", "Product C", "Product D"},
			Quantity:     300,
			TotalAmount:  120000,
			Status:       enums.OrderStatusProcessing,
			OrderDate:    "2026-01-17",
		},
		{
			ID:           "ORD-005",
			CustomerName: "ธนา มั่งมี",
			LineID:       "LINE-567890",
			LineAccount:  "สามเอเมล็ดพันธุ์",
			Products:     []string{"Product A"},
			Quantity:     50,
			TotalAmount:  15000,
			Status:       enums.OrderStatusCancelled,
			OrderDate:    "2026-01-16",
		},
	}
}

// Customers returns the demo customer directory.
func Customers() []models.Customer {
	return []models.Customer{
		{
			ID:             "CUST-001",
			Name:           "สมชาย ใจดี",
			LineID:         "LINE-123456",
			LineAccount:    "Store Account 1",
			Phone:          "081-234-5678",
			Email:          "somchai@example.com",
			Tier:           enums.CustomerTierGold,
			TotalOrders:    5,
			TotalSpent:     125000,
			RegisteredDate: "2025-11-15",
			Status:         enums.CustomerStatusActive,
		},
		{
			ID:             "CUST-002",
			Name:           "สมหญิง รักสวย",
			LineID:         "LINE-789012",
			LineAccount:    "Store Account 2",
			Phone:          "082-345-6789",
			Email:          "somying@example.com",
			Tier:           enums.CustomerTierPlatinum,
			TotalOrders:    8,
			TotalSpent:     240000,
			RegisteredDate: "2025-10-20",
			Status:         enums.CustomerStatusActive,
		},
		{
			ID:             "CUST-003",
			Name:           "วิชัย ประเสริฐ",
			LineID:         "LINE-345678",
			LineAccount:    "Store Account 3",
			Phone:          "083-456-7890",
			Email:          "wichai@example.com",
			Tier:           enums.CustomerTierSilver,
			TotalOrders:    3,
			TotalSpent:     85000,
			RegisteredDate: "2025-12-01",
			Status:         enums.CustomerStatusActive,
		},
		{
			ID:             "CUST-004",
			Name:           "นภา สุขใจ",
			LineID:         "LINE-901234",
			LineAccount:    "Store Account 1",
			Phone:          "084-567-8901",
			Email:          "napa@example.com",
			Tier:           enums.CustomerTierPlatinum,
			TotalOrders:    12,
			TotalSpent:     360000,
			RegisteredDate: "2025-09-10",
			Status:         enums.CustomerStatusActive,
		},
		{
			ID:             "CUST-005",
			Name:           "ธนา มั่งมี",
			LineID:         "LINE-567890",
			LineAccount:    "Store Account 2",
			Phone:          "085-678-9012",
			Email:          "thana@example.com",
			Tier:           enums.CustomerTierBronze,
			TotalOrders:    1,
			TotalSpent:     15000,
			RegisteredDate: "2026-01-05",
			Status:         enums.CustomerStatusInactive,
		},
	}
}

// Bills returns the demo invoices.
func Bills() []models.Bill {
	return []models.Bill{
		{
			ID:           "INV-001",
			OrderID:      "ORD-001",
			CustomerName: "สมชาย ใจดี",
			LineAccount:  "Store Account 1",
			Amount:       45000,
			Tax:          3150,
			Total:        48150,
			Status:       enums.BillStatusPending,
			DueDate:      "2026-01-25",
		},
		{
			ID:            "INV-002",
			OrderID:       "ORD-002",
			CustomerName:  "สมหญิง รักสวย",
			LineAccount:   "Store Account 2",
			Amount:        80000,
			Tax:           5600,
			Total:         85600,
			Status:        enums.BillStatusPaid,
			DueDate:       "2026-01-24",
			PaidDate:      "2026-01-20",
			PaymentMethod: "Bank Transfer",
		},
		{
			ID:            "INV-003",
			OrderID:       "ORD-003",
			CustomerName:  "วิชัย ประเสริฐ",
			LineAccount:   "Store Account 3",
			Amount:        35000,
			Tax:           2450,
			Total:         37450,
			Status:        enums.BillStatusPaid,
			DueDate:       "2026-01-23",
			PaidDate:      "2026-01-19",
			PaymentMethod: "Credit Card",
		},
		{
			ID:           "INV-004",
			OrderID:      "ORD-004",
			CustomerName: "นภา สุขใจ",
			LineAccount:  "Store Account 1",
			Amount:       120000,
			Tax:          8400,
			Total:        128400,
			Status:       enums.BillStatusPending,
			DueDate:      "2026-01-22",
		},
		{
			ID:           "INV-005",
			OrderID:      "ORD-005",
			CustomerName: "ธนา มั่งมี",
			LineAccount:  "Store Account 2",
			Amount:       15000,
			Tax:          1050,
			Total:        16050,
			Status:       enums.BillStatusCancelled,
			DueDate:      "2026-01-21",
		},
		{
			ID:           "INV-006",
			OrderID:      "ORD-006",
			CustomerName: "สุชาติ เจริญ",
			LineAccount:  "Store Account 1",
			Amount:       60000,
			Tax:          4200,
			Total:        64200,
			Status:       enums.BillStatusOverdue,
			DueDate:      "2026-01-15",
		},
	}
}
