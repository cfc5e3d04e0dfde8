package handlers

import (
	"Meal-Planner/domain"
	"Meal-Planner/internal/api/presenters"
	"Meal-Planner/pkg/recipe"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	RecipeHandler interface {
		CreateRecipe(c *fiber.Ctx) error
		UpdateRecipe(c *fiber.Ctx) error
		DeleteRecipe(c *fiber.Ctx) error
		GetRecipeDetail(c *fiber.Ctx) error
		GetRecipes(c *fiber.Ctx) error
		ExportRecipes(c *fiber.Ctx) error
		ImportRecipes(c *fiber.Ctx) error
	}

	recipeHandler struct {
		recipeService recipe.RecipeService
		validator     *validator.Validate
	}
)

func NewRecipeHandler(recipeService recipe.RecipeService, validator *validator.Validate) RecipeHandler {
	return &recipeHandler{
		recipeService: recipeService,
		validator:     validator,
	}
}

func (h *recipeHandler) CreateRecipe(c *fiber.Ctx) error {
	req := new(domain.RecipeRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveRecipe, err)
	}

	res, err := h.recipeService.CreateRecipe(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedSaveRecipe, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessSaveRecipe)
}

func (h *recipeHandler) UpdateRecipe(c *fiber.Ctx) error {
	req := new(domain.RecipeRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveRecipe, err)
	}

	res, err := h.recipeService.UpdateRecipe(c.Context(), c.Params("id"), *req)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedSaveRecipe, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSaveRecipe)
}

func (h *recipeHandler) DeleteRecipe(c *fiber.Ctx) error {
	if err := h.recipeService.DeleteRecipe(c.Context(), c.Params("id")); err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedDeleteRecipe, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteRecipe)
}

func (h *recipeHandler) GetRecipeDetail(c *fiber.Ctx) error {
	recipeID := c.Params("id")
	if recipeID == "" {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRecipeDetail, domain.ErrRecipeNotFound)
	}

	res, err := h.recipeService.GetRecipeDetail(c.Context(), recipeID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedGetRecipeDetail, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipeDetail)
}

func (h *recipeHandler) GetRecipes(c *fiber.Ctx) error {
	res, err := h.recipeService.GetRecipes(c.Context(), c.Query("category"))
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedGetRecipes, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipes)
}

func (h *recipeHandler) ExportRecipes(c *fiber.Ctx) error {
	res, err := h.recipeService.ExportRecipes(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedExport, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessExport)
}

func (h *recipeHandler) ImportRecipes(c *fiber.Ctx) error {
	res, err := h.recipeService.ImportRecipes(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedImport, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessImport)
}
