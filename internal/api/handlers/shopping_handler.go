package handlers

import (
	"Meal-Planner/domain"
	"Meal-Planner/internal/api/presenters"
	"Meal-Planner/pkg/shopping"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ShoppingHandler interface {
		GetShoppingList(c *fiber.Ctx) error
		SendShoppingList(c *fiber.Ctx) error
	}

	shoppingHandler struct {
		shoppingService shopping.ShoppingService
		validator       *validator.Validate
	}
)

func NewShoppingHandler(shoppingService shopping.ShoppingService, validator *validator.Validate) ShoppingHandler {
	return &shoppingHandler{
		shoppingService: shoppingService,
		validator:       validator,
	}
}

func (h *shoppingHandler) GetShoppingList(c *fiber.Ctx) error {
	req := domain.PlanRangeRequest{}
	if err := c.QueryParser(&req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetShoppingList, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetShoppingList, err)
	}

	res, err := h.shoppingService.GetShoppingList(c.Context(), req)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedGetShoppingList, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetShoppingList)
}

func (h *shoppingHandler) SendShoppingList(c *fiber.Ctx) error {
	req := new(domain.SendShoppingListRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSendShoppingList, err)
	}

	res, err := h.shoppingService.SendShoppingList(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedSendShoppingList, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSendShoppingList)
}
