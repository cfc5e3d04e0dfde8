package entities

import (
	"github.com/google/uuid"
)

// Product is a purchasable item. Nutrients are per 100 g/ml, or per piece
// for piece units without WeightPerPiece.
type Product struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name           string    `gorm:"uniqueIndex;not null" json:"name"`
	Price          float64   `gorm:"not null;default:0" json:"price"`
	Unit           string    `gorm:"size:16;not null;default:'шт'" json:"unit"`
	Amount         float64   `gorm:"not null;default:1" json:"amount"`
	Calories       *float64  `json:"calories"`
	Proteins       *float64  `json:"proteins"`
	Fats           *float64  `json:"fats"`
	Carbs          *float64  `json:"carbs"`
	WeightPerPiece *float64  `json:"weight_per_piece"`

	Timestamp
}
