package nutrition

import (
	"math"

	"github.com/shopspring/decimal"
)

// Round rounds half away from zero to the given number of decimals.
// NaN and infinities collapse to 0.
func Round(v float64, places int32) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}

func ratio(num, den float64) float64 {
	if den <= 0 {
		return 0
	}
	return num / den
}

// PortionRatio is planned portions over the recipe's base portions, each at least 1.
func PortionRatio(planned, base int) float64 {
	return float64(max(planned, 1)) / float64(max(base, 1))
}
