package order

import (
	"math"

	"order_pricing/internal/domain"
)

// Price is a non-negative, finite monetary amount.
type Price struct {
	value float64
}

func (p Price) Value() float64 {
	return p.value
}

func NewPrice(value float64) (Price, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Price{}, domain.NewValidationError("price", "price must be a finite number")
	}
	if value < 0 {
		return Price{}, domain.NewValidationError("price", "price must not be negative")
	}
	return Price{value: value}, nil
}
