package utils

import (
	"Meal-Planner/domain"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatorCustomTags(t *testing.T) {
	v := NewValidator()

	ok := domain.ProductRequest{Name: "Гречка", Unit: "кг", Price: 120, Amount: 1}
	assert.NoError(t, v.Struct(ok))

	bad := ok
	bad.Unit = "bucket"
	assert.Error(t, v.Struct(bad))

	recipe := domain.RecipeRequest{Title: "Борщ", Category: domain.CategorySoup}
	assert.NoError(t, v.Struct(recipe))
	recipe.Category = "dessert"
	assert.Error(t, v.Struct(recipe))

	entry := domain.PlanEntryRequest{MealType: domain.MealDinner, RecipeID: "8d0c7f4e-5a0f-4d55-9c63-1f1b9a3f2e10", Date: "2024-05-13"}
	assert.NoError(t, v.Struct(entry))
	entry.MealType = "brunch"
	assert.Error(t, v.Struct(entry))
	entry.MealType = domain.MealLunch
	entry.Date = "13.05.2024"
	assert.Error(t, v.Struct(entry))
}
