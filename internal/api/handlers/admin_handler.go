package handlers

import (
	"Meal-Planner/domain"
	"Meal-Planner/internal/api/presenters"
	"Meal-Planner/pkg/admin"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	AdminHandler interface {
		Login(c *fiber.Ctx) error
	}

	adminHandler struct {
		adminService admin.AdminService
		validator    *validator.Validate
	}
)

func NewAdminHandler(adminService admin.AdminService, validator *validator.Validate) AdminHandler {
	return &adminHandler{
		adminService: adminService,
		validator:    validator,
	}
}

func (h *adminHandler) Login(c *fiber.Ctx) error {
	req := new(domain.AdminLoginRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedLogin, err)
	}

	res, err := h.adminService.Login(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedLogin, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessLogin)
}
