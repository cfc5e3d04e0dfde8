package shopping

import (
	"Meal-Planner/domain"
	"Meal-Planner/entities"
	"Meal-Planner/pkg/calendar"
	"Meal-Planner/pkg/nutrition"
	"sort"

	"github.com/google/uuid"
)

type tally struct {
	product  *entities.Product
	quantity float64
}

// Aggregate scales every planned recipe by its portions and sums ingredient
// quantities per product. When the range is bounded, entries outside it and
// undated entries are ignored. Dangling recipe or product references are skipped.
func Aggregate(entries []*entities.WeeklyPlanEntry, recipes nutrition.RecipeLookup, products nutrition.ProductLookup, within calendar.Range) []domain.ShoppingLine {
	totals := make(map[uuid.UUID]*tally)
	var order []uuid.UUID

	for _, entry := range entries {
		if within.Bounded() {
			date, ok := entry.PlannedOn()
			if !ok || !within.Contains(date) {
				continue
			}
		}

		recipe, ok := recipes.Recipe(entry.RecipeID)
		if !ok {
			continue
		}
		scale := nutrition.PortionRatio(entry.Portions, recipe.Portions)

		for _, ing := range recipe.Ingredients {
			t, seen := totals[ing.ProductID]
			if !seen {
				product, ok := products.Product(ing.ProductID)
				if !ok {
					continue
				}
				t = &tally{product: product}
				totals[ing.ProductID] = t
				order = append(order, ing.ProductID)
			}
			t.quantity += ing.Quantity * scale
		}
	}

	lines := make([]domain.ShoppingLine, 0, len(order))
	for _, id := range order {
		t := totals[id]
		pack := nutrition.PackAmount(t.product)
		lines = append(lines, domain.ShoppingLine{
			ProductID:     id.String(),
			Name:          t.product.Name,
			TotalQuantity: nutrition.Round(t.quantity, 3),
			Unit:          t.product.Unit,
			EstimatedCost: nutrition.Round(t.quantity*nutrition.PricePerUnit(t.product), 2),
			PacksNeeded:   nutrition.Round(t.quantity/pack, 1),
		})
	}

	sort.SliceStable(lines, func(i, j int) bool {
		return lines[i].Name < lines[j].Name
	})
	return lines
}

func TotalCost(lines []domain.ShoppingLine) float64 {
	var sum float64
	for _, l := range lines {
		sum += l.EstimatedCost
	}
	return nutrition.Round(sum, 2)
}
