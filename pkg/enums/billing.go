package enums

import "fmt"

// BillStatus represents the payment state of an invoice.
type BillStatus string

const (
	BillStatusPaid      BillStatus = "paid"
	BillStatusPending   BillStatus = "pending"
	BillStatusOverdue   BillStatus = "overdue"
	BillStatusCancelled BillStatus = "cancelled"
)

var validBillStatuses = []BillStatus{
	BillStatusPaid,
	BillStatusPending,
	BillStatusOverdue,
	BillStatusCancelled,
}

// String implements fmt.Stringer.
func (s BillStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known BillStatus.
func (s BillStatus) IsValid() bool {
	for _, candidate := range validBillStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseBillStatus converts raw input into a BillStatus.
func ParseBillStatus(value string) (BillStatus, error) {
	for _, candidate := range validBillStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid bill status %q", value)
}

// CustomerStatus marks whether a customer account is considered active.
type CustomerStatus string

const (
	CustomerStatusActive   CustomerStatus = "active"
	CustomerStatusInactive CustomerStatus = "inactive"
)

// String implements fmt.Stringer.
func (s CustomerStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known CustomerStatus.
func (s CustomerStatus) IsValid() bool {
	return s == CustomerStatusActive || s == CustomerStatusInactive
}
