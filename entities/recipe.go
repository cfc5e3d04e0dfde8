// File: entities/recipe.go
package entities

import (
	"github.com/google/uuid"
)

type Recipe struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Title       string    `gorm:"index;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Portions    int       `gorm:"not null;default:1" json:"portions"`
	Category    string    `gorm:"size:32;index;not null;default:'other'" json:"category"`
	Rating      int       `gorm:"default:0" json:"rating"`

	Ingredients []RecipeIngredient `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"ingredients"`
	Timestamp
}

// RecipeIngredient is owned by its recipe and only references the product by id.
type RecipeIngredient struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	RecipeID  uuid.UUID `gorm:"type:uuid;index;not null" json:"recipe_id"`
	ProductID uuid.UUID `gorm:"type:uuid;index;not null" json:"product_id"`
	Quantity  float64   `gorm:"not null" json:"quantity"`
}
