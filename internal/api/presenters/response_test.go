package presenters

import (
	"Meal-Planner/domain"
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{domain.NewNotFound("recipe", uuid.New()), fiber.StatusNotFound},
		{domain.ErrPlanEntryNotFound, fiber.StatusNotFound},
		{domain.ErrBackupNotFound, fiber.StatusNotFound},
		{&domain.SlotOccupiedError{MealType: domain.MealLunch}, fiber.StatusConflict},
		{&domain.NoCandidatesError{MealType: domain.MealDinner}, fiber.StatusUnprocessableEntity},
		{fmt.Errorf("%w: %q", domain.ErrInvalidDate, "x"), fiber.StatusBadRequest},
		{domain.ErrParseUUID, fiber.StatusBadRequest},
		{domain.ErrInvalidPassword, fiber.StatusUnauthorized},
		{domain.ErrAdminNotConfigured, fiber.StatusServiceUnavailable},
		{errors.New("connection reset"), fiber.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, StatusFor(tc.err), tc.err.Error())
	}
}
