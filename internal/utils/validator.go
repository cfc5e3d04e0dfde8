package utils

import (
	"Meal-Planner/domain"
	"Meal-Planner/pkg/nutrition"
	"slices"

	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

func InitValidator() {
	Validate = NewValidator()
}

// NewValidator registers the unit, category and meal tags on top of the defaults.
func NewValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("unit", func(fl validator.FieldLevel) bool {
		return nutrition.IsKnownUnit(fl.Field().String())
	})
	_ = v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		return slices.Contains(domain.Categories, fl.Field().String())
	})
	_ = v.RegisterValidation("meal", func(fl validator.FieldLevel) bool {
		return slices.Contains(domain.MealTypes, fl.Field().String())
	})
	return v
}
