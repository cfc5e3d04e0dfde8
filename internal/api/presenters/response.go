package presenters

import (
	"Meal-Planner/domain"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type Response struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func SuccessResponse(c *fiber.Ctx, data any, statusCode int, message string) error {
	return c.Status(statusCode).JSON(Response{
		Status:  true,
		Message: message,
		Data:    data,
	})
}

func ErrorResponse(c *fiber.Ctx, statusCode int, message string, err error) error {
	res := Response{
		Status:  false,
		Message: message,
	}
	if err != nil {
		res.Error = err.Error()
	}
	return c.Status(statusCode).JSON(res)
}

// StatusFor maps a service error to its HTTP status. Errors outside the
// domain vocabulary are reported as 500.
func StatusFor(err error) int {
	var validationErrs validator.ValidationErrors
	switch {
	case errors.As(err, &validationErrs),
		errors.Is(err, domain.ErrParseUUID),
		errors.Is(err, domain.ErrInvalidDate),
		errors.Is(err, domain.ErrInvalidDateRange),
		errors.Is(err, domain.ErrMissingPlanDate),
		errors.Is(err, domain.ErrBatchWithoutDates),
		errors.Is(err, domain.ErrUnknownIngredient),
		errors.Is(err, domain.ErrInvalidRecipeQuery):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, domain.ErrRecipeNotFound),
		errors.Is(err, domain.ErrFamilyMemberNotFound),
		errors.Is(err, domain.ErrPlanEntryNotFound),
		errors.Is(err, domain.ErrBackupNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrSlotOccupied),
		errors.Is(err, domain.ErrProductNameDuplicate):
		return fiber.StatusConflict
	case errors.Is(err, domain.ErrNoCandidates):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrInvalidPassword),
		errors.Is(err, domain.ErrTokenInvalid),
		errors.Is(err, domain.ErrTokenExpired),
		errors.Is(err, domain.ErrTokenNotFound):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrUserNotAllowed):
		return fiber.StatusForbidden
	case errors.Is(err, domain.ErrAdminNotConfigured):
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}
