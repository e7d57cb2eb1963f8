package order

import (
	"context"

	"order_pricing/internal/domain"
	"order_pricing/internal/domain/client"
	entity "order_pricing/internal/domain/order"
	"order_pricing/pkg/logger"
)

// DiscountCalculator prices by client tier.
type DiscountCalculator interface {
	DiscountRate(tier string) float64
	DiscountedPrice(basePrice float64, tier string) (float64, error)
}

// QuantityDiscounter prices by how many items an order has.
type QuantityDiscounter interface {
	ApplyDiscount(price float64, quantity int) (float64, error)
}

type TaxApplier interface {
	ApplyTax(price float64) (float64, error)
}

type Service struct {
	tiers    DiscountCalculator
	quantity QuantityDiscounter
	tax      TaxApplier
	log      logger.Logger
}

func NewService(tiers DiscountCalculator, quantity QuantityDiscounter, tax TaxApplier, log logger.Logger) *Service {
	if log == nil {
		log = logger.NewNop()
	}
	return &Service{tiers: tiers, quantity: quantity, tax: tax, log: log}
}

// ProcessOrder applies the client's tier discount to the item subtotal. It
// has no side effects; orders are not persisted.
func (s *Service) ProcessOrder(ctx context.Context, c client.Client, items []entity.Item) (*entity.Order, error) {
	if len(items) == 0 {
		return nil, domain.ErrEmptyOrder
	}

	subtotal := entity.Subtotal(items)
	if err := requireFinite("subtotal", subtotal); err != nil {
		return nil, err
	}
	rate := s.tiers.DiscountRate(c.Tier())
	total, err := s.tiers.DiscountedPrice(subtotal, c.Tier())
	if err != nil {
		return nil, err
	}

	s.log.WithContext(ctx).Debug("order processed",
		logger.String("tier", c.Tier()),
		logger.Float64("subtotal", subtotal),
		logger.Float64("discount_rate", rate),
		logger.Float64("total", total),
	)
	return entity.NewOrder(c, items, total, rate), nil
}
