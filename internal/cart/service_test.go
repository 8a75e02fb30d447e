package cart

import (
	"context"
	"io"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	pkgerrors "github.com/chayanon-dev/lineadmin/pkg/errors"
	"github.com/chayanon-dev/lineadmin/pkg/enums"
	"github.com/chayanon-dev/lineadmin/pkg/logger"
	"github.com/chayanon-dev/lineadmin/pkg/metrics"
	"github.com/chayanon-dev/lineadmin/pkg/models"
)

func testService(t *testing.T) *Service {
	t.Helper()
	log := logger.New(logger.Options{
		ServiceName: "cart-test",
		Level:       zerolog.Disabled,
		Output:      io.Discard,
	})
	svc, err := NewService(log, metrics.NewCartMetrics(prometheus.NewRegistry()))
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func TestNewServiceRequiresLogger(t *testing.T) {
	if _, err := NewService(nil, nil); err == nil {
		t.Fatal("expected error for nil logger")
	}
}

func TestServiceAddRecordsRejection(t *testing.T) {
	svc := testService(t)
	c := New()
	err := svc.Add(context.Background(), c, outOfStockProduct(), enums.CustomerTierGold)
	if !pkgerrors.HasCode(err, pkgerrors.CodeUnavailable) {
		t.Fatalf("expected unavailable error, got %v", err)
	}
}

func TestTotalAcrossTiers(t *testing.T) {
	svc := testService(t)
	c := New()
	ctx := context.Background()
	if err := svc.Add(ctx, c, productA(), enums.CustomerTierBronze); err != nil {
		t.Fatalf("add A: %v", err)
	}
	if err := svc.Add(ctx, c, productB(), enums.CustomerTierBronze); err != nil {
		t.Fatalf("add B: %v", err)
	}
	svc.SetQuantity(ctx, c, "PROD-001", 100)
	svc.SetQuantity(ctx, c, "PROD-002", 200)

	total, err := svc.Total(c, enums.CustomerTierBronze)
	if err != nil {
		t.Fatalf("total: %v", err)
	}
	if total != 60000 {
		t.Fatalf("expected bronze total 60000, got %d", total)
	}

	// Product A drops to 240 at platinum; Product B is flat.
	total, err = svc.Total(c, enums.CustomerTierPlatinum)
	if err != nil {
		t.Fatalf("platinum total: %v", err)
	}
	if total != 54000 {
		t.Fatalf("expected platinum total 54000, got %d", total)
	}
}

func TestSummarizeDerivesLinesAndSavings(t *testing.T) {
	svc := testService(t)
	c := New()
	ctx := context.Background()
	if err := svc.Add(ctx, c, productA(), enums.CustomerTierGold); err != nil {
		t.Fatalf("add: %v", err)
	}

	summary, err := svc.Summarize(c, enums.CustomerTierGold)
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if summary.LineCount != 1 || summary.ItemCount != 50 {
		t.Fatalf("unexpected counts: lines=%d items=%d", summary.LineCount, summary.ItemCount)
	}
	line := summary.Lines[0]
	if line.UnitPrice != 260 {
		t.Fatalf("expected gold unit price 260, got %d", line.UnitPrice)
	}
	if line.SavingsPerUnit != 40 {
		t.Fatalf("expected savings 40 per unit, got %d", line.SavingsPerUnit)
	}
	if line.Subtotal != 13000 || summary.Total != 13000 {
		t.Fatalf("unexpected subtotal %d total %d", line.Subtotal, summary.Total)
	}
}

func TestSummarizeMissingTierPrice(t *testing.T) {
	svc := testService(t)
	c := New()
	broken := productA()
	broken.Pricing = models.TierPrices(map[enums.CustomerTier]int{
		enums.CustomerTierBronze: 300,
	})
	if err := c.Add(broken); err != nil {
		t.Fatalf("add: %v", err)
	}
	_, err := svc.Summarize(c, enums.CustomerTierGold)
	if !pkgerrors.HasCode(err, pkgerrors.CodeConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
}
