package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	MealBreakfast      = "breakfast"
	MealLunch          = "lunch"
	MealAfternoonSnack = "afternoon_snack"
	MealDinner         = "dinner"
	MealSnack          = "snack"
	MealLateSnack      = "late_snack"
)

var (
	MessageSuccessGetPlan      = "plan retrieved successfully"
	MessageSuccessAddPlanEntry = "plan entry added successfully"
	MessageSuccessUpdatePlan   = "plan entry updated successfully"
	MessageSuccessDeletePlan   = "plan entry deleted successfully"
	MessageSuccessClearPlan    = "plan cleared successfully"
	MessageSuccessBatchPlan    = "plan updated successfully"
	MessageSuccessAutofill     = "autofill completed"
	MessageSuccessGetStats     = "statistics retrieved successfully"

	MessageFailedGetPlan      = "failed to retrieve plan"
	MessageFailedAddPlanEntry = "failed to add plan entry"
	MessageFailedUpdatePlan   = "failed to update plan entry"
	MessageFailedDeletePlan   = "failed to delete plan entry"
	MessageFailedClearPlan    = "failed to clear plan"
	MessageFailedBatchPlan    = "failed to update plan"
	MessageFailedAutofill     = "failed to autofill plan"
	MessageFailedGetStats     = "failed to retrieve statistics"

	ErrPlanEntryNotFound = errors.New("plan entry not found")
	ErrNoCandidates      = errors.New("no recipes available for this meal")
	ErrSlotOccupied      = errors.New("meal slot is already planned")
	ErrBatchWithoutDates = errors.New("batch has no dated entries")
	ErrMissingPlanDate   = errors.New("date or day_of_week is required")

	MealTypes = []string{MealBreakfast, MealLunch, MealAfternoonSnack, MealDinner, MealSnack, MealLateSnack}
)

// NoCandidatesError is returned when no recipe matches the categories of a meal.
type NoCandidatesError struct {
	MealType   string
	Categories []string
}

func (e *NoCandidatesError) Error() string {
	return fmt.Sprintf("no recipes for %s in categories %s", e.MealType, strings.Join(e.Categories, ", "))
}

func (e *NoCandidatesError) Is(target error) bool {
	return target == ErrNoCandidates
}

// SlotOccupiedError is returned when the (date, meal, member) slot already has an entry.
// Member is empty for the shared slot.
type SlotOccupiedError struct {
	Date     time.Time
	MealType string
	Member   string
}

func (e *SlotOccupiedError) Error() string {
	who := e.Member
	if who == "" {
		who = "shared"
	}
	return fmt.Sprintf("%s on %s is already planned for %s", e.MealType, e.Date.Format(DateLayout), who)
}

func (e *SlotOccupiedError) Is(target error) bool {
	return target == ErrSlotOccupied
}

type (
	PlanEntryRequest struct {
		DayOfWeek      string  `json:"day_of_week"`
		Date           string  `json:"date" validate:"omitempty,datetime=2006-01-02"`
		MealType       string  `json:"meal_type" validate:"required,meal"`
		RecipeID       string  `json:"recipe_id" validate:"required,uuid"`
		Portions       int     `json:"portions" validate:"omitempty,min=1"`
		FamilyMemberID *string `json:"family_member_id" validate:"omitempty,uuid"`
	}

	PlanEntryUpdateRequest struct {
		DayOfWeek      *string `json:"day_of_week"`
		Date           *string `json:"date" validate:"omitempty,datetime=2006-01-02"`
		MealType       *string `json:"meal_type" validate:"omitempty,meal"`
		RecipeID       *string `json:"recipe_id" validate:"omitempty,uuid"`
		Portions       *int    `json:"portions" validate:"omitempty,min=1"`
		FamilyMemberID *string `json:"family_member_id" validate:"omitempty,uuid"`
		// Shared moves the entry to the shared slot.
		Shared bool `json:"shared"`
	}

	PlanBatchRequest struct {
		Entries []PlanEntryRequest `json:"entries" validate:"required,dive"`
	}

	PlanRangeRequest struct {
		StartDate string `query:"start_date" validate:"omitempty,datetime=2006-01-02"`
		EndDate   string `query:"end_date" validate:"omitempty,datetime=2006-01-02"`
	}

	PlanEntry struct {
		ID             string  `json:"id"`
		DayOfWeek      string  `json:"day_of_week"`
		Date           string  `json:"date,omitempty"`
		MealType       string  `json:"meal_type"`
		RecipeID       string  `json:"recipe_id"`
		RecipeTitle    string  `json:"recipe_title,omitempty"`
		Portions       int     `json:"portions"`
		FamilyMemberID *string `json:"family_member_id"`
	}

	AutofillOneRequest struct {
		FamilyMemberID *string `json:"family_member_id" validate:"omitempty,uuid"`
	}

	AutofillOneResponse struct {
		Entry   PlanEntry `json:"entry"`
		Recipe  string    `json:"recipe"`
		Warning string    `json:"warning,omitempty"`
	}

	AutofillWeekResponse struct {
		Created   int    `json:"created"`
		WeekStart string `json:"week_start"`
		WeekEnd   string `json:"week_end"`
	}

	// PlanBackupEntry is keyed by day name; the date is informational and
	// gets re-resolved into the importing week.
	PlanBackupEntry struct {
		Day            string  `json:"day"`
		Meal           string  `json:"meal"`
		RecipeID       string  `json:"recipe_id"`
		Portions       int     `json:"portions"`
		FamilyMemberID *string `json:"family_member_id"`
		Date           *string `json:"date"`
	}

	// DailyTotals are the scaled sums for one date and one member (or shared).
	DailyTotals struct {
		Date           string   `json:"date"`
		FamilyMemberID *string  `json:"family_member_id"`
		Cost           float64  `json:"cost"`
		Calories       float64  `json:"calories"`
		Proteins       float64  `json:"proteins"`
		Fats           float64  `json:"fats"`
		Carbs          float64  `json:"carbs"`
		OverCalories   bool     `json:"over_calories"`
		OverProteins   bool     `json:"over_proteins"`
		OverFats       bool     `json:"over_fats"`
		OverCarbs      bool     `json:"over_carbs"`
		Warnings       []string `json:"warnings"`
	}
)
