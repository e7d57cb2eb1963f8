package order

import (
	"context"
	"fmt"

	"order_pricing/internal/domain"
	entity "order_pricing/internal/domain/order"
	"order_pricing/internal/domain/pricing"
	"order_pricing/pkg/logger"
)

// CalculateFinalPrice runs subtotal, quantity discount keyed on the number of
// items, then tax, then rounding. Discount always comes before tax.
func (s *Service) CalculateFinalPrice(ctx context.Context, items []entity.Item) (float64, error) {
	if len(items) == 0 {
		return 0, domain.ErrEmptyOrder
	}

	subtotal := entity.Subtotal(items)
	if err := requireFinite("subtotal", subtotal); err != nil {
		return 0, err
	}
	discounted, err := s.quantity.ApplyDiscount(subtotal, len(items))
	if err != nil {
		return 0, err
	}
	if err := requireFinite("discounted price", discounted); err != nil {
		return 0, err
	}
	taxed, err := s.tax.ApplyTax(discounted)
	if err != nil {
		return 0, err
	}
	if err := requireFinite("taxed price", taxed); err != nil {
		return 0, err
	}
	final := pricing.RoundCurrency(taxed)

	s.log.WithContext(ctx).Debug("final price calculated",
		logger.Int("items", len(items)),
		logger.Float64("subtotal", subtotal),
		logger.Float64("final_price", final),
	)
	return final, nil
}

// requireFinite stops prices that overflowed float64 before they are rounded
// or reported.
func requireFinite(what string, v float64) error {
	if !pricing.IsFinite(v) {
		return fmt.Errorf("%w: %s out of range (got %v)", domain.ErrInvalidArgument, what, v)
	}
	return nil
}
