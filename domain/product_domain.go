package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateProduct = "product created successfully"
	MessageSuccessUpdateProduct = "product updated successfully"
	MessageSuccessDeleteProduct = "product deleted successfully"
	MessageSuccessGetProducts   = "products retrieved successfully"
	MessageSuccessGetProduct    = "product retrieved successfully"
	MessageSuccessExport        = "export completed"
	MessageSuccessImport        = "import completed"

	MessageFailedCreateProduct = "failed to create product"
	MessageFailedUpdateProduct = "failed to update product"
	MessageFailedDeleteProduct = "failed to delete product"
	MessageFailedGetProducts   = "failed to retrieve products"
	MessageFailedGetProduct    = "failed to retrieve product"
	MessageFailedExport        = "failed to export"
	MessageFailedImport        = "failed to import"

	ErrProductNotFound      = errors.New("product not found")
	ErrProductNameDuplicate = errors.New("product with this name already exists")
)

type (
	ProductRequest struct {
		Name           string   `json:"name" validate:"required,max=255"`
		Price          float64  `json:"price" validate:"gte=0"`
		Unit           string   `json:"unit" validate:"required,unit"`
		Amount         float64  `json:"amount" validate:"gte=0"`
		Calories       *float64 `json:"calories" validate:"omitempty,gte=0"`
		Proteins       *float64 `json:"proteins" validate:"omitempty,gte=0"`
		Fats           *float64 `json:"fats" validate:"omitempty,gte=0"`
		Carbs          *float64 `json:"carbs" validate:"omitempty,gte=0"`
		WeightPerPiece *float64 `json:"weight_per_piece" validate:"omitempty,gt=0"`
	}

	ProductResponse struct {
		ID             string    `json:"id"`
		Name           string    `json:"name"`
		Price          float64   `json:"price"`
		Unit           string    `json:"unit"`
		Amount         float64   `json:"amount"`
		PricePerUnit   float64   `json:"price_per_unit"`
		Calories       *float64  `json:"calories"`
		Proteins       *float64  `json:"proteins"`
		Fats           *float64  `json:"fats"`
		Carbs          *float64  `json:"carbs"`
		WeightPerPiece *float64  `json:"weight_per_piece"`
		CreatedAt      time.Time `json:"created_at"`
	}

	// ProductBackup is the portable shape used for export/import, keyed by name.
	ProductBackup struct {
		Name           string   `json:"name"`
		Price          float64  `json:"price"`
		Unit           string   `json:"unit"`
		Amount         float64  `json:"amount"`
		Calories       *float64 `json:"calories"`
		Proteins       *float64 `json:"proteins"`
		Fats           *float64 `json:"fats"`
		Carbs          *float64 `json:"carbs"`
		WeightPerPiece *float64 `json:"weight_per_piece"`
	}
)
