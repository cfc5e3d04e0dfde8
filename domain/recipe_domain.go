package domain

import (
	"errors"
	"time"
)

const (
	CategorySoup      = "soup"
	CategoryMain      = "main"
	CategorySalad     = "salad"
	CategoryBreakfast = "breakfast"
	CategorySnack     = "snack"
	CategoryOther     = "other"
)

var (
	MessageSuccessGetRecipes      = "success get recipes"
	MessageSuccessGetRecipeDetail = "success get recipe detail"
	MessageSuccessSaveRecipe      = "recipe saved successfully"
	MessageSuccessDeleteRecipe    = "recipe deleted successfully"

	MessageFailedGetRecipes      = "failed to get recipes"
	MessageFailedGetRecipeDetail = "failed to get recipe detail"
	MessageFailedSaveRecipe      = "failed to save recipe"
	MessageFailedDeleteRecipe    = "failed to delete recipe"

	ErrRecipeNotFound     = errors.New("recipe not found")
	ErrUnknownIngredient  = errors.New("ingredient references an unknown product")
	ErrInvalidRecipeQuery = errors.New("invalid recipe category")

	Categories = []string{CategorySoup, CategoryMain, CategorySalad, CategoryBreakfast, CategorySnack, CategoryOther}
)

type (
	IngredientRequest struct {
		ProductID string  `json:"product_id" validate:"required,uuid"`
		Quantity  float64 `json:"quantity" validate:"gt=0"`
	}

	RecipeRequest struct {
		Title       string              `json:"title" validate:"required,max=255"`
		Description string              `json:"description"`
		Portions    int                 `json:"portions" validate:"omitempty,min=1"`
		Category    string              `json:"category" validate:"omitempty,category"`
		Rating      int                 `json:"rating" validate:"omitempty,min=0,max=5"`
		Ingredients []IngredientRequest `json:"ingredients" validate:"dive"`
	}

	// RecipeNutrition holds the derived cost and nutrition of a recipe.
	// Calories are whole numbers, macros have one decimal, cost two.
	RecipeNutrition struct {
		TotalCost          float64 `json:"total_cost"`
		TotalCalories      float64 `json:"total_calories"`
		TotalProteins      float64 `json:"total_proteins"`
		TotalFats          float64 `json:"total_fats"`
		TotalCarbs         float64 `json:"total_carbs"`
		TotalWeight        float64 `json:"total_weight"`
		CaloriesPer100g    float64 `json:"calories_per_100g"`
		ProteinsPer100g    float64 `json:"proteins_per_100g"`
		FatsPer100g        float64 `json:"fats_per_100g"`
		CarbsPer100g       float64 `json:"carbs_per_100g"`
		CaloriesPerPortion float64 `json:"calories_per_portion"`
		WeightPerPortion   float64 `json:"weight_per_portion"`
	}

	Ingredient struct {
		ID        string  `json:"id"`
		ProductID string  `json:"product_id"`
		Name      string  `json:"name"`
		Quantity  float64 `json:"quantity"`
		Unit      string  `json:"unit"`
		Cost      float64 `json:"cost"`
		Calories  float64 `json:"calories"`
		Weight    float64 `json:"weight"`
		Missing   bool    `json:"missing,omitempty"`
	}

	Recipe struct {
		ID          string    `json:"id"`
		Title       string    `json:"title"`
		Description string    `json:"description"`
		Portions    int       `json:"portions"`
		Category    string    `json:"category"`
		Rating      int       `json:"rating"`
		CreatedAt   time.Time `json:"created_at"`
		RecipeNutrition
	}

	RecipeDetail struct {
		Recipe
		Ingredients []Ingredient `json:"ingredients"`
	}

	RecipeBackup struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Portions    int    `json:"portions"`
		Category    string `json:"category"`
		Rating      int    `json:"rating"`
	}
)
