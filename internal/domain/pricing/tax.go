package pricing

import (
	"fmt"

	"order_pricing/internal/domain"
)

const DefaultTaxRate = 0.10

// TaxCalculator applies a flat rate, e.g. 0.10 for 10%.
type TaxCalculator struct {
	rate float64
}

func NewTaxCalculator(rate float64) (*TaxCalculator, error) {
	if rate < 0 {
		return nil, domain.InvalidArgument("tax rate", rate)
	}
	if !IsFinite(rate) {
		return nil, fmt.Errorf("%w: tax rate must be finite (got %v)", domain.ErrInvalidArgument, rate)
	}
	return &TaxCalculator{rate: rate}, nil
}

func (c *TaxCalculator) Rate() float64 {
	return c.rate
}

func (c *TaxCalculator) CalculateTax(price float64) (float64, error) {
	if price < 0 {
		return 0, domain.InvalidArgument("price", price)
	}
	return price * c.rate, nil
}

func (c *TaxCalculator) ApplyTax(price float64) (float64, error) {
	if price < 0 {
		return 0, domain.InvalidArgument("price", price)
	}
	return price * (1 + c.rate), nil
}
