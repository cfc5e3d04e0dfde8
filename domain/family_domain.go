package domain

import "errors"

var (
	MessageSuccessGetFamily    = "family members retrieved successfully"
	MessageSuccessSaveMember   = "family member saved successfully"
	MessageSuccessDeleteMember = "family member deleted successfully"

	MessageFailedGetFamily    = "failed to retrieve family members"
	MessageFailedSaveMember   = "failed to save family member"
	MessageFailedDeleteMember = "failed to delete family member"

	ErrFamilyMemberNotFound = errors.New("family member not found")
)

type (
	FamilyMemberRequest struct {
		Name        string  `json:"name" validate:"required,max=255"`
		TgUsername  string  `json:"tg_username"`
		Email       string  `json:"email" validate:"omitempty,email"`
		Color       string  `json:"color" validate:"omitempty,hexcolor"`
		MaxCalories float64 `json:"max_calories" validate:"gte=0"`
		MaxProteins float64 `json:"max_proteins" validate:"gte=0"`
		MaxFats     float64 `json:"max_fats" validate:"gte=0"`
		MaxCarbs    float64 `json:"max_carbs" validate:"gte=0"`
	}

	FamilyMember struct {
		ID          string  `json:"id"`
		Name        string  `json:"name"`
		TgUsername  string  `json:"tg_username,omitempty"`
		Email       string  `json:"email,omitempty"`
		Color       string  `json:"color"`
		MaxCalories float64 `json:"max_calories"`
		MaxProteins float64 `json:"max_proteins"`
		MaxFats     float64 `json:"max_fats"`
		MaxCarbs    float64 `json:"max_carbs"`
	}
)
