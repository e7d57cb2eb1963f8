package pricing

import "order_pricing/internal/domain"

type threshold struct {
	minQuantity int
	rate        float64
}

// highest first
var quantityThresholds = []threshold{
	{minQuantity: 10, rate: 0.20},
	{minQuantity: 5, rate: 0.10},
}

type QuantityDiscountCalculator struct{}

func NewQuantityDiscountCalculator() *QuantityDiscountCalculator {
	return &QuantityDiscountCalculator{}
}

func (c *QuantityDiscountCalculator) Rate(quantity int) float64 {
	for _, t := range quantityThresholds {
		if quantity >= t.minQuantity {
			return t.rate
		}
	}
	return 0
}

func (c *QuantityDiscountCalculator) ApplyDiscount(price float64, quantity int) (float64, error) {
	if price < 0 {
		return 0, domain.InvalidArgument("price", price)
	}
	if quantity < 0 {
		return 0, domain.InvalidArgument("quantity", quantity)
	}
	return price * (1 - c.Rate(quantity)), nil
}
