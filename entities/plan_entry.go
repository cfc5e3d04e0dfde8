package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// WeeklyPlanEntry is one scheduled serving. Recipe and family member are
// plain references, so a deleted recipe leaves a dangling id behind.
type WeeklyPlanEntry struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	DayOfWeek      string          `gorm:"size:32" json:"day_of_week"`
	Date           *datatypes.Date `gorm:"index" json:"date"`
	MealType       string          `gorm:"size:32;index;not null" json:"meal_type"`
	RecipeID       uuid.UUID       `gorm:"type:uuid;index;not null" json:"recipe_id"`
	Portions       int             `gorm:"not null;default:1" json:"portions"`
	FamilyMemberID *uuid.UUID      `gorm:"type:uuid;index" json:"family_member_id"`

	Timestamp
}

// PlannedOn returns the calendar date of the entry, if it has one.
func (e *WeeklyPlanEntry) PlannedOn() (time.Time, bool) {
	if e.Date == nil {
		return time.Time{}, false
	}
	y, m, d := time.Time(*e.Date).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), true
}

func (e *WeeklyPlanEntry) SetDate(t time.Time) {
	y, m, d := t.Date()
	date := datatypes.Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
	e.Date = &date
}
