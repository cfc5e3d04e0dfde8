package entities

import (
	"github.com/google/uuid"
)

type FamilyMember struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	TgUsername  string    `json:"tg_username,omitempty"`
	Email       string    `json:"email,omitempty"`
	Color       string    `gorm:"size:16;default:'#3b82f6'" json:"color"`
	MaxCalories float64   `gorm:"default:2000" json:"max_calories"`
	MaxProteins float64   `gorm:"default:135" json:"max_proteins"`
	MaxFats     float64   `gorm:"default:100" json:"max_fats"`
	MaxCarbs    float64   `gorm:"default:300" json:"max_carbs"`

	Timestamp
}
