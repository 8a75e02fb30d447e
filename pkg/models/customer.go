package models

import "github.com/chayanon-dev/lineadmin/pkg/enums"

// Customer is a registered LINE@ buyer account.
type Customer struct {
	ID             string
	Name           string
	LineID         string
	LineAccount    string
	Phone          string
	Email          string
	Tier           enums.CustomerTier
	TotalOrders    int
	TotalSpent     int
	RegisteredDate string
	Status         enums.CustomerStatus
}

// Key returns the storage key for the customer.
func (c Customer) Key() string { return c.ID }
