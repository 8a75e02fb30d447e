package models

import "github.com/chayanon-dev/lineadmin/pkg/enums"

// Order captures a bulk purchase submitted through the LINE@ storefront.
type Order struct {
	ID           string
	CustomerName string
	LineID       string
	LineAccount  string
	Products     []string
	Quantity     int
	TotalAmount  int
	Status       enums.OrderStatus
	OrderDate    string
	Notes        string
}

// Key returns the storage key for the order.
func (o Order) Key() string { return o.ID }
