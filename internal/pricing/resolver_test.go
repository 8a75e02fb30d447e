package pricing

import (
	"testing"

	"github.com/chayanon-dev/lineadmin/pkg/enums"
	pkgerrors "github.com/chayanon-dev/lineadmin/pkg/errors"
	"github.com/chayanon-dev/lineadmin/pkg/models"
)

func flatProduct(amount int) models.Product {
	return models.Product{ID: "PROD-100", Name: "Flat", Pricing: models.FlatPrice(amount)}
}

func tieredProduct() models.Product {
	return models.Product{
		ID:   "PROD-001",
		Name: "Product A",
		Pricing: models.TierPrices(map[enums.CustomerTier]int{
			enums.CustomerTierBronze:   300,
			enums.CustomerTierSilver:   280,
			enums.CustomerTierGold:     260,
			enums.CustomerTierPlatinum: 240,
		}),
	}
}

func TestUnitPriceFlatIgnoresTier(t *testing.T) {
	product := flatProduct(150)
	for _, tier := range enums.AllCustomerTiers() {
		price, err := UnitPrice(product, tier)
		if err != nil {
			t.Fatalf("tier %s: %v", tier, err)
		}
		if price != 150 {
			t.Fatalf("tier %s: expected 150, got %d", tier, price)
		}
	}
}

func TestUnitPriceTieredLookup(t *testing.T) {
	product := tieredProduct()
	want := map[enums.CustomerTier]int{
		enums.CustomerTierBronze:   300,
		enums.CustomerTierSilver:   280,
		enums.CustomerTierGold:     260,
		enums.CustomerTierPlatinum: 240,
	}
	for tier, expected := range want {
		price, err := UnitPrice(product, tier)
		if err != nil {
			t.Fatalf("tier %s: %v", tier, err)
		}
		if price != expected {
			t.Fatalf("tier %s: expected %d, got %d", tier, expected, price)
		}
	}
}

func TestUnitPriceMissingTierIsConfigurationError(t *testing.T) {
	product := models.Product{
		ID: "PROD-002",
		Pricing: models.TierPrices(map[enums.CustomerTier]int{
			enums.CustomerTierBronze: 300,
			enums.CustomerTierSilver: 280,
			enums.CustomerTierGold:   260,
		}),
	}
	_, err := UnitPrice(product, enums.CustomerTierPlatinum)
	if err == nil {
		t.Fatal("expected error for missing platinum entry")
	}
	if !pkgerrors.HasCode(err, pkgerrors.CodeConfiguration) {
		t.Fatalf("expected configuration code, got %v", err)
	}
}

func TestUnitPriceRejectsUnknownTier(t *testing.T) {
	_, err := UnitPrice(flatProduct(100), enums.CustomerTier("diamond"))
	if err == nil {
		t.Fatal("expected error for unknown tier")
	}
	if !pkgerrors.HasCode(err, pkgerrors.CodeValidation) {
		t.Fatalf("expected validation code, got %v", err)
	}
}

func TestSavingsPerUnit(t *testing.T) {
	product := tieredProduct()

	if got, err := SavingsPerUnit(product, enums.CustomerTierBronze); err != nil || got != 0 {
		t.Fatalf("bronze savings: expected 0, got %d err=%v", got, err)
	}
	if got, err := SavingsPerUnit(product, enums.CustomerTierPlatinum); err != nil || got != 60 {
		t.Fatalf("platinum savings: expected 60, got %d err=%v", got, err)
	}
	if got, err := SavingsPerUnit(flatProduct(500), enums.CustomerTierGold); err != nil || got != 0 {
		t.Fatalf("flat savings: expected 0, got %d err=%v", got, err)
	}
}

func TestValidateSchedule(t *testing.T) {
	if err := ValidateSchedule(tieredProduct()); err != nil {
		t.Fatalf("complete schedule should pass: %v", err)
	}
	if err := ValidateSchedule(flatProduct(100)); err != nil {
		t.Fatalf("flat pricing should pass: %v", err)
	}

	incomplete := models.Product{
		ID: "PROD-003",
		Pricing: models.TierPrices(map[enums.CustomerTier]int{
			enums.CustomerTierBronze: 300,
		}),
	}
	err := ValidateSchedule(incomplete)
	if err == nil {
		t.Fatal("expected incomplete schedule to fail")
	}
	if !pkgerrors.HasCode(err, pkgerrors.CodeConfiguration) {
		t.Fatalf("expected configuration code, got %v", err)
	}
}
