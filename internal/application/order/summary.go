package order

import (
	"fmt"
	"math"
	"strings"

	entity "order_pricing/internal/domain/order"
)

const currency = "R$"

// Summary renders a fixed multi-line text for an order.
func Summary(o *entity.Order) string {
	c := o.Client()

	var b strings.Builder
	fmt.Fprintf(&b, "Order for %s (tier %s)\n", c.Name(), c.Tier())
	b.WriteString("Items:\n")
	for _, it := range o.Items() {
		fmt.Fprintf(&b, "  - %s: %s %.2f\n", it.Name(), currency, it.Price())
	}
	fmt.Fprintf(&b, "Subtotal: %s %.2f\n", currency, o.Subtotal())
	fmt.Fprintf(&b, "Discount: %d%%\n", int(math.Round(o.DiscountRate()*100)))
	fmt.Fprintf(&b, "Discount amount: %s %.2f\n", currency, o.DiscountAmount())
	fmt.Fprintf(&b, "Total: %s %.2f", currency, o.Total())
	return b.String()
}
