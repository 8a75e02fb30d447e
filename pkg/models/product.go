package models

import "github.com/chayanon-dev/lineadmin/pkg/enums"

// Product represents a catalog listing available for bulk ordering.
// Prices are whole baht per unit.
type Product struct {
	ID          string
	Name        string
	SKU         string
	Category    string
	Description string
	ImageURL    string
	Pricing     Pricing
	Stock       int
	MinOrder    int
	Status      enums.ProductStatus
}

// Key returns the storage key for the product.
func (p Product) Key() string { return p.ID }

// Pricing is a tagged variant: either a single flat unit price or a
// complete per-tier schedule. The zero value is an empty flat price of 0;
// construct through FlatPrice or TierPrices.
type Pricing struct {
	tiered bool
	flat   int
	tiers  map[enums.CustomerTier]int
}

// FlatPrice builds a pricing that charges the same amount for every tier.
func FlatPrice(amount int) Pricing {
	return Pricing{flat: amount}
}

// TierPrices builds a tiered pricing from the given schedule. The schedule
// is copied; completeness is not enforced here; resolution fails on a
// missing tier instead of silently defaulting.
func TierPrices(schedule map[enums.CustomerTier]int) Pricing {
	tiers := make(map[enums.CustomerTier]int, len(schedule))
	for tier, amount := range schedule {
		tiers[tier] = amount
	}
	return Pricing{tiered: true, tiers: tiers}
}

// IsTiered reports whether the pricing carries a per-tier schedule.
func (p Pricing) IsTiered() bool {
	return p.tiered
}

// Flat returns the flat price. Only meaningful when IsTiered is false.
func (p Pricing) Flat() int {
	return p.flat
}

// TierPrice looks up the price for the given tier in the schedule.
func (p Pricing) TierPrice(tier enums.CustomerTier) (int, bool) {
	amount, ok := p.tiers[tier]
	return amount, ok
}

// MissingTiers returns the tiers absent from a tiered schedule, in
// membership order. Flat pricing has no missing tiers.
func (p Pricing) MissingTiers() []enums.CustomerTier {
	if !p.tiered {
		return nil
	}
	var missing []enums.CustomerTier
	for _, tier := range enums.AllCustomerTiers() {
		if _, ok := p.tiers[tier]; !ok {
			missing = append(missing, tier)
		}
	}
	return missing
}
