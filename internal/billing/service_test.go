package billing

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/chayanon-dev/lineadmin/internal/repo"
	"github.com/chayanon-dev/lineadmin/pkg/enums"
	pkgerrors "github.com/chayanon-dev/lineadmin/pkg/errors"
	"github.com/chayanon-dev/lineadmin/pkg/logger"
	"github.com/chayanon-dev/lineadmin/pkg/models"
)

func testBills() []models.Bill {
	return []models.Bill{
		{
			ID: "INV-001", OrderID: "ORD-001", CustomerName: "สมชาย ใจดี", LineAccount: "Store Account 1",
			Amount: 45000, Tax: 3150, Total: 48150, Status: enums.BillStatusPending, DueDate: "2026-01-25",
		},
		{
			ID: "INV-002", OrderID: "ORD-002", CustomerName: "สมหญิง รักสวย", LineAccount: "Store Account 2",
			Amount: 80000, Tax: 5600, Total: 85600, Status: enums.BillStatusPaid, DueDate: "2026-01-24",
			PaidDate: "2026-01-20", PaymentMethod: "Bank Transfer",
		},
		{
			ID: "INV-003", OrderID: "ORD-003", CustomerName: "วิชัย ประเสริฐ", LineAccount: "Store Account 3",
			Amount: 35000, Tax: 2450, Total: 37450, Status: enums.BillStatusPaid, DueDate: "2026-01-23",
			PaidDate: "2026-01-19", PaymentMethod: "Credit Card",
		},
		{
			ID: "INV-004", OrderID: "ORD-005", CustomerName: "ธนา มั่งมี", LineAccount: "Store Account 2",
			Amount: 15000, Tax: 1050, Total: 16050, Status: enums.BillStatusCancelled, DueDate: "2026-01-21",
		},
		{
			ID: "INV-005", OrderID: "ORD-006", CustomerName: "สุชาติ เจริญ", LineAccount: "Store Account 1",
			Amount: 60000, Tax: 4200, Total: 64200, Status: enums.BillStatusOverdue, DueDate: "2026-01-15",
		},
	}
}

func testService(t *testing.T) *Service {
	t.Helper()
	log := logger.New(logger.Options{
		ServiceName: "billing-test",
		Level:       zerolog.Disabled,
		Output:      io.Discard,
	})
	svc, err := NewService(repo.NewStoreOf(testBills()...), log)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	svc.now = func() time.Time {
		return time.Date(2026, time.January, 22, 9, 0, 0, 0, time.UTC)
	}
	return svc
}

func TestVAT(t *testing.T) {
	cases := []struct {
		amount int
		want   int
	}{
		{45000, 3150},
		{80000, 5600},
		{15000, 1050},
		{0, 0},
		{99, 7},  // 6.93 rounds up
		{10, 1},  // 0.70 rounds up
		{7, 0},   // 0.49 rounds down
	}
	for _, tc := range cases {
		if got := VAT(tc.amount); got != tc.want {
			t.Fatalf("VAT(%d) = %d, want %d", tc.amount, got, tc.want)
		}
	}
}

func TestListFilters(t *testing.T) {
	svc := testService(t)

	if got := svc.List(Filters{}); len(got) != 5 {
		t.Fatalf("expected 5 bills, got %d", len(got))
	}

	byInvoice := svc.List(Filters{Query: "inv-003"})
	if len(byInvoice) != 1 || byInvoice[0].ID != "INV-003" {
		t.Fatalf("invoice query failed: %v", byInvoice)
	}

	byOrder := svc.List(Filters{Query: "ORD-002"})
	if len(byOrder) != 1 || byOrder[0].ID != "INV-002" {
		t.Fatalf("order query failed: %v", byOrder)
	}

	byStatus := svc.List(Filters{Status: "paid"})
	if len(byStatus) != 2 {
		t.Fatalf("status filter failed: %v", byStatus)
	}
}

func TestStatsCountPaidRevenueOnly(t *testing.T) {
	svc := testService(t)
	stats := svc.Stats()
	if stats.TotalRevenue != 85600+37450 {
		t.Fatalf("revenue must cover paid bills only, got %d", stats.TotalRevenue)
	}
	if stats.Pending != 1 || stats.Paid != 2 || stats.Overdue != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestCreateForOrder(t *testing.T) {
	svc := testService(t)
	order := models.Order{
		ID:           "ORD-007",
		CustomerName: "นภา สุขใจ",
		LineAccount:  "Store Account 1",
		TotalAmount:  120000,
		OrderDate:    "2026-01-17",
	}
	bill, err := svc.CreateForOrder(context.Background(), order)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if bill.ID != "INV-006" {
		t.Fatalf("expected INV-006, got %s", bill.ID)
	}
	if bill.Tax != 8400 || bill.Total != 128400 {
		t.Fatalf("unexpected amounts: tax=%d total=%d", bill.Tax, bill.Total)
	}
	if bill.Status != enums.BillStatusPending {
		t.Fatalf("new invoices start pending, got %s", bill.Status)
	}
	if bill.DueDate != "2026-01-22" {
		t.Fatalf("unexpected due date %s", bill.DueDate)
	}
}

func TestCreateForOrderBadDate(t *testing.T) {
	svc := testService(t)
	_, err := svc.CreateForOrder(context.Background(), models.Order{ID: "ORD-X", OrderDate: "soon"})
	if !pkgerrors.HasCode(err, pkgerrors.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestMarkPaid(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()

	bill, err := svc.MarkPaid(ctx, "INV-001", PaymentInput{Method: "Bank Transfer"})
	if err != nil {
		t.Fatalf("mark paid: %v", err)
	}
	if bill.Status != enums.BillStatusPaid {
		t.Fatalf("unexpected status %s", bill.Status)
	}
	if bill.PaidDate != "2026-01-22" {
		t.Fatalf("unexpected paid date %s", bill.PaidDate)
	}
	if bill.PaymentMethod != "Bank Transfer" {
		t.Fatalf("unexpected method %s", bill.PaymentMethod)
	}

	if got := svc.Stats(); got.TotalRevenue != 85600+37450+48150 {
		t.Fatalf("revenue should include the settled bill, got %d", got.TotalRevenue)
	}

	// Overdue invoices can still be settled.
	if _, err := svc.MarkPaid(ctx, "INV-005", PaymentInput{Method: "Cash"}); err != nil {
		t.Fatalf("settle overdue: %v", err)
	}

	if _, err := svc.MarkPaid(ctx, "INV-002", PaymentInput{Method: "Cash"}); !pkgerrors.HasCode(err, pkgerrors.CodeStateConflict) {
		t.Fatalf("paid invoices are final, got %v", err)
	}
	if _, err := svc.MarkPaid(ctx, "INV-004", PaymentInput{Method: "Cash"}); !pkgerrors.HasCode(err, pkgerrors.CodeStateConflict) {
		t.Fatalf("cancelled invoices are final, got %v", err)
	}
}

func TestMarkPaidRequiresMethod(t *testing.T) {
	svc := testService(t)
	if _, err := svc.MarkPaid(context.Background(), "INV-001", PaymentInput{}); !pkgerrors.HasCode(err, pkgerrors.CodeValidation) {
		t.Fatalf("expected validation error for empty method, got %v", err)
	}
}

func TestCancel(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()

	bill, err := svc.Cancel(ctx, "INV-001")
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if bill.Status != enums.BillStatusCancelled {
		t.Fatalf("unexpected status %s", bill.Status)
	}

	if _, err := svc.Cancel(ctx, "INV-002"); !pkgerrors.HasCode(err, pkgerrors.CodeStateConflict) {
		t.Fatalf("paid invoices cannot be cancelled, got %v", err)
	}
}
