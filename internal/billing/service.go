// Package billing raises invoices for orders and serves the billing screen.
// Line amounts are whole baht; VAT is computed with decimal arithmetic and
// rounded half up to the nearest baht.
package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/chayanon-dev/lineadmin/internal/repo"
	"github.com/chayanon-dev/lineadmin/internal/validators"
	"github.com/chayanon-dev/lineadmin/pkg/enums"
	pkgerrors "github.com/chayanon-dev/lineadmin/pkg/errors"
	"github.com/chayanon-dev/lineadmin/pkg/logger"
	"github.com/chayanon-dev/lineadmin/pkg/models"
	"github.com/chayanon-dev/lineadmin/pkg/search"
)

const dateLayout = "2006-01-02"

// Invoices fall due this many days after the order date.
const paymentTermDays = 5

var vatRate = decimal.NewFromFloat(0.07)

// Filters narrows the billing listing. Query matches invoice ID, order ID
// and customer name; Status is an exact choice with the "all" sentinel.
type Filters struct {
	Query  string
	Status string
}

// Stats is the billing screen header summary. TotalRevenue counts paid
// invoices only.
type Stats struct {
	TotalRevenue int
	Pending      int
	Paid         int
	Overdue      int
}

// PaymentInput records how a pending invoice was settled.
type PaymentInput struct {
	Method string `json:"method" validate:"required,max=60"`
}

// Service owns the bill store.
type Service struct {
	store  *repo.Store[models.Bill]
	log    *logger.Logger
	now    func() time.Time
	nextID int
}

// NewService builds the billing service over a seeded bill store.
func NewService(store *repo.Store[models.Bill], log *logger.Logger) (*Service, error) {
	if store == nil {
		return nil, fmt.Errorf("bill store required")
	}
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	svc := &Service{store: store, log: log, now: time.Now, nextID: 1}
	for _, bill := range store.All() {
		var n int
		if _, err := fmt.Sscanf(bill.ID, "INV-%d", &n); err == nil && n >= svc.nextID {
			svc.nextID = n + 1
		}
	}
	return svc, nil
}

// VAT returns the value-added tax due on a whole-baht amount.
func VAT(amount int) int {
	return int(decimal.NewFromInt(int64(amount)).Mul(vatRate).Round(0).IntPart())
}

// List returns the bills passing the filters.
func (s *Service) List(filters Filters) []models.Bill {
	bills := make([]models.Bill, 0, s.store.Len())
	for _, bill := range s.store.All() {
		if !search.MatchesTerm(filters.Query, bill.ID, bill.OrderID, bill.CustomerName) {
			continue
		}
		if !search.MatchesChoice(filters.Status, bill.Status.String()) {
			continue
		}
		bills = append(bills, bill)
	}
	return bills
}

// Get returns the bill for the ID.
func (s *Service) Get(id string) (models.Bill, error) {
	return s.store.Get(id)
}

// Stats summarizes the invoices by status.
func (s *Service) Stats() Stats {
	stats := Stats{}
	for _, bill := range s.store.All() {
		switch bill.Status {
		case enums.BillStatusPaid:
			stats.Paid++
			stats.TotalRevenue += bill.Total
		case enums.BillStatusPending:
			stats.Pending++
		case enums.BillStatusOverdue:
			stats.Overdue++
		}
	}
	return stats
}

// CreateForOrder raises a pending invoice for the order: net amount from
// the order total, VAT on top, due after the payment term.
func (s *Service) CreateForOrder(ctx context.Context, order models.Order) (models.Bill, error) {
	orderDate, err := time.Parse(dateLayout, order.OrderDate)
	if err != nil {
		return models.Bill{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "order date is malformed").WithDetails(map[string]string{
			"order_id": order.ID,
		})
	}
	tax := VAT(order.TotalAmount)
	bill := models.Bill{
		ID:           fmt.Sprintf("INV-%03d", s.nextID),
		OrderID:      order.ID,
		CustomerName: order.CustomerName,
		LineAccount:  order.LineAccount,
		Amount:       order.TotalAmount,
		Tax:          tax,
		Total:        order.TotalAmount + tax,
		Status:       enums.BillStatusPending,
		DueDate:      orderDate.AddDate(0, 0, paymentTermDays).Format(dateLayout),
	}
	s.nextID++
	s.store.Put(bill)
	s.log.Info(s.log.WithOrderID(ctx, order.ID), "invoice raised")
	return bill, nil
}

// MarkPaid settles a pending or overdue invoice. Paid and cancelled
// invoices are final.
func (s *Service) MarkPaid(ctx context.Context, id string, input PaymentInput) (models.Bill, error) {
	if err := validators.Struct(input); err != nil {
		return models.Bill{}, err
	}
	bill, err := s.store.Get(id)
	if err != nil {
		return models.Bill{}, err
	}
	if bill.Status == enums.BillStatusPaid || bill.Status == enums.BillStatusCancelled {
		return models.Bill{}, pkgerrors.New(pkgerrors.CodeStateConflict, "invoice status is final").WithDetails(map[string]string{
			"bill_id": id,
			"status":  bill.Status.String(),
		})
	}
	bill.Status = enums.BillStatusPaid
	bill.PaidDate = s.now().Format(dateLayout)
	bill.PaymentMethod = validators.SanitizeString(input.Method, 60)
	s.store.Put(bill)
	s.log.Info(s.log.WithField(ctx, "bill_id", id), "invoice paid")
	return bill, nil
}

// Cancel voids an unpaid invoice, typically when its order is cancelled.
func (s *Service) Cancel(ctx context.Context, id string) (models.Bill, error) {
	bill, err := s.store.Get(id)
	if err != nil {
		return models.Bill{}, err
	}
	if bill.Status == enums.BillStatusPaid || bill.Status == enums.BillStatusCancelled {
		return models.Bill{}, pkgerrors.New(pkgerrors.CodeStateConflict, "invoice status is final").WithDetails(map[string]string{
			"bill_id": id,
			"status":  bill.Status.String(),
		})
	}
	bill.Status = enums.BillStatusCancelled
	s.store.Put(bill)
	s.log.Info(s.log.WithField(ctx, "bill_id", id), "invoice cancelled")
	return bill, nil
}
