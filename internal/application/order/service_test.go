package order

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"order_pricing/internal/domain"
	"order_pricing/internal/domain/client"
	entity "order_pricing/internal/domain/order"
	"order_pricing/internal/domain/pricing"
)

type MockTaxApplier struct {
	mock.Mock
}

func (m *MockTaxApplier) ApplyTax(price float64) (float64, error) {
	args := m.Called(price)
	return args.Get(0).(float64), args.Error(1)
}

func newService(t *testing.T) *Service {
	t.Helper()
	tax, err := pricing.NewTaxCalculator(pricing.DefaultTaxRate)
	require.NoError(t, err)
	return NewService(pricing.NewTierDiscountCalculator(nil), pricing.NewQuantityDiscountCalculator(), tax, nil)
}

func items(t *testing.T, prices ...float64) []entity.Item {
	t.Helper()
	out := make([]entity.Item, 0, len(prices))
	for i, p := range prices {
		it, err := entity.NewItem(string(rune('A'+i)), p)
		require.NoError(t, err)
		out = append(out, it)
	}
	return out
}

func spread(t *testing.T, total float64, n int) []entity.Item {
	t.Helper()
	prices := make([]float64, n)
	for i := range prices {
		prices[i] = total / float64(n)
	}
	return items(t, prices...)
}

func mustClient(t *testing.T, tier string) client.Client {
	t.Helper()
	c, err := client.NewClient("João Silva", "joao@example.com", tier)
	require.NoError(t, err)
	return c
}

func TestService_ProcessOrder(t *testing.T) {
	svc := newService(t)

	tests := []struct {
		tier     string
		prices   []float64
		wantRate float64
		want     float64
	}{
		{tier: "gold", prices: []float64{100, 50}, wantRate: 0.20, want: 120},
		{tier: "silver", prices: []float64{100}, wantRate: 0.10, want: 90},
		{tier: "Bronze", prices: []float64{60, 40}, wantRate: 0.05, want: 95},
		{tier: "wood", prices: []float64{100}, wantRate: 0, want: 100},
	}

	for _, tt := range tests {
		t.Run(tt.tier, func(t *testing.T) {
			c := mustClient(t, tt.tier)
			in := items(t, tt.prices...)

			o, err := svc.ProcessOrder(context.Background(), c, in)

			require.NoError(t, err)
			assert.Equal(t, c, o.Client())
			assert.Equal(t, in, o.Items())
			assert.Equal(t, tt.wantRate, o.DiscountRate())
			assert.InDelta(t, tt.want, o.Total(), 1e-9)
			assert.Equal(t, len(tt.prices), o.ItemsCount())
		})
	}
}

func TestService_ProcessOrder_Empty(t *testing.T) {
	svc := newService(t)

	o, err := svc.ProcessOrder(context.Background(), mustClient(t, "gold"), nil)

	assert.ErrorIs(t, err, domain.ErrEmptyOrder)
	assert.Nil(t, o)
}

func TestService_CalculateFinalPrice(t *testing.T) {
	svc := newService(t)

	tests := []struct {
		name  string
		items []entity.Item
		want  float64
	}{
		{name: "three items no quantity discount", items: items(t, 50, 30, 20), want: 110.0},
		{name: "five items", items: spread(t, 100, 5), want: 99.0},
		{name: "ten items", items: spread(t, 100, 10), want: 88.0},
		{name: "single item", items: items(t, 19.99), want: 21.99},
		{name: "free items", items: items(t, 0, 0), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.CalculateFinalPrice(context.Background(), tt.items)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestService_CalculateFinalPrice_Empty(t *testing.T) {
	svc := newService(t)

	_, err := svc.CalculateFinalPrice(context.Background(), []entity.Item{})

	assert.ErrorIs(t, err, domain.ErrEmptyOrder)
}

func TestService_CalculateFinalPrice_DiscountBeforeTax(t *testing.T) {
	tax := new(MockTaxApplier)
	svc := NewService(pricing.NewTierDiscountCalculator(nil), pricing.NewQuantityDiscountCalculator(), tax, nil)

	// 10 items of 10.0: quantity discount must reach the tax step as 80.0
	tax.On("ApplyTax", mock.MatchedBy(func(p float64) bool { return p > 79.999 && p < 80.001 })).Return(80.004, nil).Once()

	got, err := svc.CalculateFinalPrice(context.Background(), spread(t, 100, 10))

	require.NoError(t, err)
	assert.Equal(t, 80.0, got)
	tax.AssertExpectations(t)
}

func TestService_CalculateFinalPrice_Overflow(t *testing.T) {
	svc := newService(t)

	tests := []struct {
		name  string
		items []entity.Item
	}{
		{name: "subtotal overflows", items: items(t, 1e308, 1e308)},
		{name: "tax overflows", items: items(t, 1.7e308)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var err error
			require.NotPanics(t, func() {
				_, err = svc.CalculateFinalPrice(context.Background(), tt.items)
			})
			assert.ErrorIs(t, err, domain.ErrInvalidArgument)
		})
	}
}

func TestService_ProcessOrder_Overflow(t *testing.T) {
	svc := newService(t)

	o, err := svc.ProcessOrder(context.Background(), mustClient(t, "gold"), items(t, 1e308, 1e308))

	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	assert.Nil(t, o)
}
