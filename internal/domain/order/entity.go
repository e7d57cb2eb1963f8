package order

import (
	"strings"

	"order_pricing/internal/domain"
	"order_pricing/internal/domain/client"
)

type Item struct {
	name  string
	price Price
}

func NewItem(name string, price float64) (Item, error) {
	if strings.TrimSpace(name) == "" {
		return Item{}, domain.NewValidationError("name", "item name must not be blank")
	}
	p, err := NewPrice(price)
	if err != nil {
		return Item{}, err
	}
	return Item{name: name, price: p}, nil
}

func (i Item) Name() string   { return i.name }
func (i Item) Price() float64 { return i.price.Value() }

// Subtotal sums item prices before any discount or tax.
func Subtotal(items []Item) float64 {
	var sum float64
	for _, it := range items {
		sum += it.Price()
	}
	return sum
}

// Order is the priced result of assembling a client's items. It does not own
// the client; it keeps its own copy of the item slice.
type Order struct {
	client       client.Client
	items        []Item
	total        float64
	discountRate float64
}

// NewOrder does not reject an empty item list; the assembling use case does.
func NewOrder(c client.Client, items []Item, total, discountRate float64) *Order {
	own := make([]Item, len(items))
	copy(own, items)
	return &Order{
		client:       c,
		items:        own,
		total:        total,
		discountRate: discountRate,
	}
}

func (o *Order) Client() client.Client { return o.client }
func (o *Order) Total() float64        { return o.total }
func (o *Order) DiscountRate() float64 { return o.discountRate }
func (o *Order) ItemsCount() int       { return len(o.items) }

func (o *Order) Items() []Item {
	out := make([]Item, len(o.items))
	copy(out, o.items)
	return out
}

func (o *Order) Subtotal() float64 {
	return Subtotal(o.items)
}

func (o *Order) DiscountAmount() float64 {
	return o.Subtotal() * o.discountRate
}
