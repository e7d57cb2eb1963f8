package pricing

import (
	"math"

	"github.com/shopspring/decimal"
)

// RoundCurrency rounds half away from zero to two decimals. It works on the
// shortest decimal form of v, so 1.005 becomes 1.01 even though the binary
// value is slightly below it. NaN and infinities are returned unchanged.
func RoundCurrency(v float64) float64 {
	if !IsFinite(v) {
		return v
	}
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
