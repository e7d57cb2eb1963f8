package pricing

import (
	"strings"

	"order_pricing/internal/domain"
)

// DefaultTierRates returns a fresh copy of the table used when none is
// injected.
func DefaultTierRates() map[string]float64 {
	return map[string]float64{
		"gold":   0.20,
		"silver": 0.10,
		"bronze": 0.05,
	}
}

// TierDiscountCalculator looks tiers up case-insensitively; unknown tiers get
// no discount.
type TierDiscountCalculator struct {
	rates map[string]float64
}

// NewTierDiscountCalculator copies rates with lower-cased keys. A nil or empty
// table selects DefaultTierRates.
func NewTierDiscountCalculator(rates map[string]float64) *TierDiscountCalculator {
	if len(rates) == 0 {
		rates = DefaultTierRates()
	}
	own := make(map[string]float64, len(rates))
	for tier, rate := range rates {
		own[strings.ToLower(tier)] = rate
	}
	return &TierDiscountCalculator{rates: own}
}

func (c *TierDiscountCalculator) DiscountRate(tier string) float64 {
	return c.rates[strings.ToLower(tier)]
}

func (c *TierDiscountCalculator) DiscountedPrice(basePrice float64, tier string) (float64, error) {
	if basePrice < 0 {
		return 0, domain.InvalidArgument("base price", basePrice)
	}
	return basePrice * (1 - c.DiscountRate(tier)), nil
}
