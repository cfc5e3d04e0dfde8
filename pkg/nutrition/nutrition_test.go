package nutrition

import (
	"Meal-Planner/entities"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 { return &v }

func product(unit string, amount, price float64) *entities.Product {
	return &entities.Product{ID: uuid.New(), Name: unit + " product", Unit: unit, Amount: amount, Price: price}
}

func recipeOf(portions int, items ...entities.RecipeIngredient) *entities.Recipe {
	return &entities.Recipe{ID: uuid.New(), Title: "test", Portions: portions, Ingredients: items}
}

func use(p *entities.Product, qty float64) entities.RecipeIngredient {
	return entities.RecipeIngredient{ID: uuid.New(), ProductID: p.ID, Quantity: qty}
}

func TestNormalize(t *testing.T) {
	egg := product("шт", 10, 100)
	egg.WeightPerPiece = ptr(60)

	tests := []struct {
		name      string
		product   *entities.Product
		qty       float64
		grams     float64
		unweighed bool
	}{
		{"kilo", product("kg", 1, 0), 0.5, 500, false},
		{"liter cyrillic", product("л", 1, 0), 2, 2000, false},
		{"gram", product("г", 1, 0), 150, 150, false},
		{"ml", product("ml", 1, 0), 30, 30, false},
		{"piece with weight", egg, 3, 180, false},
		{"piece without weight", product("pcs", 1, 0), 3, 0, true},
		{"unknown unit", product("cup", 1, 0), 7, 7, false},
		{"mixed case", product(" KG ", 1, 0), 1, 1000, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grams, unweighed := Normalize(tt.product, tt.qty)
			assert.InDelta(t, tt.grams, grams, 1e-9)
			assert.Equal(t, tt.unweighed, unweighed)
		})
	}
}

func TestPackAmountFallsBackToOne(t *testing.T) {
	p := product("kg", 0, 12)
	assert.Equal(t, 1.0, PackAmount(p))
	assert.Equal(t, 12.0, PricePerUnit(p))

	p.Amount = -3
	assert.Equal(t, 1.0, PackAmount(p))
}

func TestCalculateEmptyRecipe(t *testing.T) {
	res := Calculate(recipeOf(4), Catalog{})

	assert.Zero(t, res.TotalCost)
	assert.Zero(t, res.TotalCalories)
	assert.Zero(t, res.TotalWeight)
	assert.Zero(t, res.CaloriesPer100g)
	assert.Zero(t, res.ProteinsPer100g)
	assert.Zero(t, res.CaloriesPerPortion)
	assert.Zero(t, res.WeightPerPortion)
}

func TestCalculateEgg(t *testing.T) {
	egg := product("шт", 10, 120)
	egg.WeightPerPiece = ptr(60)
	egg.Calories = ptr(155)
	egg.Proteins = ptr(12.7)

	res := Calculate(recipeOf(1, use(egg, 2)), NewCatalog([]*entities.Product{egg}))

	assert.Equal(t, 186.0, res.TotalCalories)
	assert.Equal(t, 186.0, res.CaloriesPerPortion)
	assert.Equal(t, 120.0, res.TotalWeight)
	assert.Equal(t, 15.2, res.TotalProteins)
	assert.Equal(t, 24.0, res.TotalCost)
	assert.Equal(t, 155.0, res.CaloriesPer100g)
}

func TestCalculatePieceWithoutWeight(t *testing.T) {
	bar := product("stk", 1, 50)
	bar.Calories = ptr(210)

	res := Calculate(recipeOf(2, use(bar, 3)), NewCatalog([]*entities.Product{bar}))

	assert.Equal(t, 630.0, res.TotalCalories)
	assert.Zero(t, res.TotalWeight)
	assert.Zero(t, res.CaloriesPer100g)
	assert.Equal(t, 315.0, res.CaloriesPerPortion)
}

func TestCalculateUnitInvariance(t *testing.T) {
	kg := product("kg", 1, 80)
	kg.Calories = ptr(364)
	kg.Carbs = ptr(76.3)
	g := product("g", 1000, 80)
	g.Calories = ptr(364)
	g.Carbs = ptr(76.3)

	byKilo := Calculate(recipeOf(3, use(kg, 0.5)), NewCatalog([]*entities.Product{kg}))
	byGram := Calculate(recipeOf(3, use(g, 500)), NewCatalog([]*entities.Product{g}))

	assert.Equal(t, byKilo.TotalCalories, byGram.TotalCalories)
	assert.Equal(t, byKilo.TotalCarbs, byGram.TotalCarbs)
	assert.Equal(t, byKilo.TotalWeight, byGram.TotalWeight)
	assert.Equal(t, 1820.0, byKilo.TotalCalories)
}

func TestCalculateCostMonotonic(t *testing.T) {
	milk := product("l", 0.9, 89.9)
	flour := product("kg", 2, 110)
	catalog := NewCatalog([]*entities.Product{milk, flour})

	prev := -1.0
	for _, qty := range []float64{0, 0.1, 0.25, 0.5, 1, 1.5, 4} {
		res := Calculate(recipeOf(4, use(milk, qty), use(flour, 0.3)), catalog)
		require.GreaterOrEqual(t, res.TotalCost, prev)
		prev = res.TotalCost
	}
}

func TestCalculateSkipsOrphanedIngredient(t *testing.T) {
	rice := product("g", 900, 90)
	rice.Calories = ptr(330)
	ghost := product("g", 1, 1000)

	r := recipeOf(2, use(rice, 200), use(ghost, 100))
	res := Calculate(r, NewCatalog([]*entities.Product{rice}))

	assert.Equal(t, 20.0, res.TotalCost)
	assert.Equal(t, 660.0, res.TotalCalories)
	assert.Equal(t, 200.0, res.TotalWeight)
	assert.Equal(t, 330.0, res.CaloriesPer100g)
}

func TestCalculateZeroPortions(t *testing.T) {
	rice := product("g", 1, 0)
	rice.Calories = ptr(330)

	res := Calculate(recipeOf(0, use(rice, 100)), NewCatalog([]*entities.Product{rice}))

	assert.Equal(t, 330.0, res.TotalCalories)
	assert.Zero(t, res.CaloriesPerPortion)
	assert.Zero(t, res.WeightPerPortion)
}

func TestBreakdownFlagsMissingProducts(t *testing.T) {
	oil := product("мл", 1000, 200)
	oil.Calories = ptr(899)
	ghost := uuid.New()

	r := recipeOf(1, use(oil, 20), entities.RecipeIngredient{ID: uuid.New(), ProductID: ghost, Quantity: 1})
	items := Breakdown(r, NewCatalog([]*entities.Product{oil}))

	require.Len(t, items, 2)
	assert.Equal(t, "мл product", items[0].Name)
	assert.Equal(t, 4.0, items[0].Cost)
	assert.Equal(t, 180.0, items[0].Calories)
	assert.False(t, items[0].Missing)
	assert.True(t, items[1].Missing)
	assert.Equal(t, ghost.String(), items[1].ProductID)
}

func TestRound(t *testing.T) {
	assert.Equal(t, 3.0, Round(2.5, 0))
	assert.Equal(t, -3.0, Round(-2.5, 0))
	assert.Equal(t, 1.01, Round(1.005, 2))
	assert.Zero(t, Round(0/zero(), 2))
}

func zero() float64 { return 0 }

func TestMacroWarnings(t *testing.T) {
	assert.Empty(t, MacroWarnings(0, 0, 0))
	// 400/630/1100 kcal: 18.8% protein, 29.6% fat, 51.6% carbs
	assert.Empty(t, MacroWarnings(100, 70, 275))
	assert.Equal(t, []string{WarnLowProtein, WarnHighFat, WarnLowCarbs}, MacroWarnings(20, 100, 100))
	assert.Equal(t, []string{WarnLowFat, WarnHighCarbs}, MacroWarnings(100, 10, 400))
}

func TestPortionRatio(t *testing.T) {
	assert.Equal(t, 2.0, PortionRatio(4, 2))
	assert.Equal(t, 0.5, PortionRatio(1, 2))
	assert.Equal(t, 1.0, PortionRatio(0, -1))
}
