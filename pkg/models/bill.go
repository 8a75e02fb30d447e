package models

import "github.com/chayanon-dev/lineadmin/pkg/enums"

// Bill is the invoice raised for an order. Amounts are whole baht.
type Bill struct {
	ID            string
	OrderID       string
	CustomerName  string
	LineAccount   string
	Amount        int
	Tax           int
	Total         int
	Status        enums.BillStatus
	DueDate       string
	PaidDate      string
	PaymentMethod string
}

// Key returns the storage key for the bill.
func (b Bill) Key() string { return b.ID }
