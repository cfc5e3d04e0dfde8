package nutrition

import (
	"Meal-Planner/entities"
	"strings"
)

type UnitKind int

const (
	// UnitOther is any token outside the vocabulary; it is treated like grams.
	UnitOther UnitKind = iota
	UnitPiece
	UnitGram
	UnitKilo
	UnitMilliliter
	UnitLiter
)

var unitTokens = map[string]UnitKind{
	"шт":    UnitPiece,
	"pcs":   UnitPiece,
	"piece": UnitPiece,
	"stk":   UnitPiece,
	"g":     UnitGram,
	"г":     UnitGram,
	"kg":    UnitKilo,
	"кг":    UnitKilo,
	"ml":    UnitMilliliter,
	"мл":    UnitMilliliter,
	"l":     UnitLiter,
	"л":     UnitLiter,
}

// Units lists the accepted unit tokens.
func Units() []string {
	out := make([]string, 0, len(unitTokens))
	for token := range unitTokens {
		out = append(out, token)
	}
	return out
}

func KindOf(unit string) UnitKind {
	return unitTokens[strings.ToLower(strings.TrimSpace(unit))]
}

func IsKnownUnit(unit string) bool {
	_, ok := unitTokens[strings.ToLower(strings.TrimSpace(unit))]
	return ok
}

// Scaled reports whether the unit is a thousand-fold one (kg, l).
func (k UnitKind) Scaled() bool {
	return k == UnitKilo || k == UnitLiter
}

func (k UnitKind) String() string {
	switch k {
	case UnitPiece:
		return "piece"
	case UnitGram:
		return "gram"
	case UnitKilo:
		return "kilo"
	case UnitMilliliter:
		return "milliliter"
	case UnitLiter:
		return "liter"
	default:
		return "other"
	}
}

// Normalize converts quantity of product into grams (or ml). For pieces
// without a known weight the mass is undefined and the flag is true.
func Normalize(product *entities.Product, quantity float64) (float64, bool) {
	switch KindOf(product.Unit) {
	case UnitKilo, UnitLiter:
		return quantity * 1000, false
	case UnitPiece:
		if w := pieceWeight(product); w > 0 {
			return quantity * w, false
		}
		return 0, true
	default:
		return quantity, false
	}
}

// PackAmount is the pack size, falling back to 1 when unset.
func PackAmount(product *entities.Product) float64 {
	if product.Amount > 0 {
		return product.Amount
	}
	return 1.0
}

func PricePerUnit(product *entities.Product) float64 {
	return product.Price / PackAmount(product)
}

func pieceWeight(product *entities.Product) float64 {
	if product.WeightPerPiece == nil {
		return 0
	}
	return *product.WeightPerPiece
}
