package pricing

import (
	"fmt"

	"github.com/chayanon-dev/lineadmin/pkg/enums"
	pkgerrors "github.com/chayanon-dev/lineadmin/pkg/errors"
	"github.com/chayanon-dev/lineadmin/pkg/models"
)

// UnitPrice resolves the per-unit price of a product for a customer tier.
// Flat pricing ignores the tier. A tiered schedule must carry an explicit
// entry for the tier; a missing entry is a data defect, never defaulted.
func UnitPrice(product models.Product, tier enums.CustomerTier) (int, error) {
	if !tier.IsValid() {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("unknown customer tier %q", tier))
	}
	if !product.Pricing.IsTiered() {
		return product.Pricing.Flat(), nil
	}
	amount, ok := product.Pricing.TierPrice(tier)
	if !ok {
		return 0, pkgerrors.New(pkgerrors.CodeConfiguration, "tier schedule missing price entry").WithDetails(map[string]string{
			"product_id": product.ID,
			"tier":       tier.String(),
		})
	}
	return amount, nil
}

// SavingsPerUnit reports how much cheaper a unit is for the tier compared
// to the bronze price. Flat pricing and bronze itself save nothing.
func SavingsPerUnit(product models.Product, tier enums.CustomerTier) (int, error) {
	if !product.Pricing.IsTiered() || tier == enums.CustomerTierBronze {
		return 0, nil
	}
	base, err := UnitPrice(product, enums.CustomerTierBronze)
	if err != nil {
		return 0, err
	}
	current, err := UnitPrice(product, tier)
	if err != nil {
		return 0, err
	}
	return base - current, nil
}

// ValidateSchedule checks that a tiered product carries every tier.
// Flat pricing always passes.
func ValidateSchedule(product models.Product) error {
	missing := product.Pricing.MissingTiers()
	if len(missing) == 0 {
		return nil
	}
	tiers := make([]string, 0, len(missing))
	for _, tier := range missing {
		tiers = append(tiers, tier.String())
	}
	return pkgerrors.New(pkgerrors.CodeConfiguration, fmt.Sprintf("product %s tier schedule incomplete", product.ID)).WithDetails(map[string]any{
		"product_id":    product.ID,
		"missing_tiers": tiers,
	})
}
