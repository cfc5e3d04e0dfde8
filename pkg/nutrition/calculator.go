package nutrition

import (
	"Meal-Planner/domain"
	"Meal-Planner/entities"
)

type nutrients struct {
	calories, proteins, fats, carbs float64
}

// Calculate derives cost, nutrition and weight of a recipe. Ingredients whose
// product cannot be found are skipped.
func Calculate(recipe *entities.Recipe, products ProductLookup) domain.RecipeNutrition {
	var (
		cost, weight float64
		sum          nutrients
	)

	for i := range recipe.Ingredients {
		ing := &recipe.Ingredients[i]
		product, ok := products.Product(ing.ProductID)
		if !ok {
			continue
		}
		cost += ing.Quantity * PricePerUnit(product)
		n := contribution(product, ing.Quantity)
		sum.calories += n.calories
		sum.proteins += n.proteins
		sum.fats += n.fats
		sum.carbs += n.carbs
		grams, _ := Normalize(product, ing.Quantity)
		weight += grams
	}

	res := domain.RecipeNutrition{
		TotalCost:     Round(cost, 2),
		TotalCalories: Round(sum.calories, 0),
		TotalProteins: Round(sum.proteins, 1),
		TotalFats:     Round(sum.fats, 1),
		TotalCarbs:    Round(sum.carbs, 1),
		TotalWeight:   Round(weight, 1),
	}

	if weight > 0 {
		res.CaloriesPer100g = Round(res.TotalCalories/weight*100, 0)
		res.ProteinsPer100g = Round(res.TotalProteins/weight*100, 1)
		res.FatsPer100g = Round(res.TotalFats/weight*100, 1)
		res.CarbsPer100g = Round(res.TotalCarbs/weight*100, 1)
	}

	portions := float64(recipe.Portions)
	res.CaloriesPerPortion = Round(ratio(res.TotalCalories, portions), 0)
	res.WeightPerPortion = Round(ratio(weight, portions), 0)

	return res
}

// Breakdown returns the per-ingredient view of a recipe. Orphaned
// ingredients are kept and flagged as missing.
func Breakdown(recipe *entities.Recipe, products ProductLookup) []domain.Ingredient {
	out := make([]domain.Ingredient, 0, len(recipe.Ingredients))
	for _, ing := range recipe.Ingredients {
		item := domain.Ingredient{
			ID:        ing.ID.String(),
			ProductID: ing.ProductID.String(),
			Quantity:  ing.Quantity,
		}
		product, ok := products.Product(ing.ProductID)
		if !ok {
			item.Missing = true
			out = append(out, item)
			continue
		}
		grams, _ := Normalize(product, ing.Quantity)
		item.Name = product.Name
		item.Unit = product.Unit
		item.Cost = Round(ing.Quantity*PricePerUnit(product), 2)
		item.Calories = Round(contribution(product, ing.Quantity).calories, 0)
		item.Weight = Round(grams, 1)
		out = append(out, item)
	}
	return out
}

func contribution(product *entities.Product, quantity float64) nutrients {
	kind := KindOf(product.Unit)
	qty := quantity
	if kind.Scaled() {
		qty *= 1000
	}

	var factor float64
	switch {
	case kind == UnitPiece && pieceWeight(product) > 0:
		factor = qty * pieceWeight(product) / 100.0
	case kind == UnitPiece:
		factor = qty
	default:
		factor = qty / 100.0
	}

	return nutrients{
		calories: value(product.Calories) * factor,
		proteins: value(product.Proteins) * factor,
		fats:     value(product.Fats) * factor,
		carbs:    value(product.Carbs) * factor,
	}
}

func value(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
