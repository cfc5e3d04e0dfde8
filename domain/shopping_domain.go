package domain

import "errors"

var (
	MessageSuccessGetShoppingList  = "shopping list retrieved successfully"
	MessageSuccessSendShoppingList = "shopping list sent successfully"

	MessageFailedGetShoppingList  = "failed to retrieve shopping list"
	MessageFailedSendShoppingList = "failed to send shopping list"

	ErrInvalidDateRange = errors.New("start_date is after end_date")
)

type (
	// ShoppingLine is one consolidated product of the shopping list.
	ShoppingLine struct {
		ProductID     string  `json:"product_id"`
		Name          string  `json:"name"`
		TotalQuantity float64 `json:"total_quantity"`
		Unit          string  `json:"unit"`
		EstimatedCost float64 `json:"estimated_cost"`
		PacksNeeded   float64 `json:"packs_needed"`
	}

	ShoppingListResponse struct {
		StartDate string         `json:"start_date,omitempty"`
		EndDate   string         `json:"end_date,omitempty"`
		Items     []ShoppingLine `json:"items"`
		TotalCost float64        `json:"total_cost"`
	}

	SendShoppingListRequest struct {
		Email     string `json:"email" validate:"required,email"`
		StartDate string `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
		EndDate   string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	}
)
