package enums

import "fmt"

// CustomerTier represents the four membership tiers used for pricing.
type CustomerTier string

const (
	CustomerTierBronze   CustomerTier = "bronze"
	CustomerTierSilver   CustomerTier = "silver"
	CustomerTierGold     CustomerTier = "gold"
	CustomerTierPlatinum CustomerTier = "platinum"
)

// Tier order matters: cycling and discount descriptions follow it.
var validCustomerTiers = []CustomerTier{
	CustomerTierBronze,
	CustomerTierSilver,
	CustomerTierGold,
	CustomerTierPlatinum,
}

// AllCustomerTiers returns the tiers in ascending membership order.
func AllCustomerTiers() []CustomerTier {
	tiers := make([]CustomerTier, len(validCustomerTiers))
	copy(tiers, validCustomerTiers)
	return tiers
}

// String implements fmt.Stringer.
func (c CustomerTier) String() string {
	return string(c)
}

// IsValid reports whether the value is a known CustomerTier.
func (c CustomerTier) IsValid() bool {
	for _, candidate := range validCustomerTiers {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseCustomerTier converts raw input into a CustomerTier.
func ParseCustomerTier(value string) (CustomerTier, error) {
	for _, candidate := range validCustomerTiers {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid customer tier %q", value)
}

// Next returns the tier that follows in membership order, wrapping
// platinum back to bronze. Unknown tiers resolve to bronze.
func (c CustomerTier) Next() CustomerTier {
	for i, candidate := range validCustomerTiers {
		if candidate == c {
			return validCustomerTiers[(i+1)%len(validCustomerTiers)]
		}
	}
	return CustomerTierBronze
}

// Label returns the display name shown in the tier selector.
func (c CustomerTier) Label() string {
	switch c {
	case CustomerTierSilver:
		return "Silver"
	case CustomerTierGold:
		return "Gold"
	case CustomerTierPlatinum:
		return "Platinum"
	default:
		return "Bronze"
	}
}

// DiscountNote returns the discount description shown next to the tier.
func (c CustomerTier) DiscountNote() string {
	switch c {
	case CustomerTierSilver:
		return "5-7% Off"
	case CustomerTierGold:
		return "10-13% Off"
	case CustomerTierPlatinum:
		return "15-20% Off"
	default:
		return "Standard Price"
	}
}
