package handlers

import (
	"Meal-Planner/domain"
	"Meal-Planner/internal/api/presenters"
	"Meal-Planner/pkg/family"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	FamilyHandler interface {
		CreateMember(c *fiber.Ctx) error
		UpdateMember(c *fiber.Ctx) error
		DeleteMember(c *fiber.Ctx) error
		GetMembers(c *fiber.Ctx) error
	}

	familyHandler struct {
		familyService family.FamilyService
		validator     *validator.Validate
	}
)

func NewFamilyHandler(familyService family.FamilyService, validator *validator.Validate) FamilyHandler {
	return &familyHandler{
		familyService: familyService,
		validator:     validator,
	}
}

func (h *familyHandler) CreateMember(c *fiber.Ctx) error {
	req := new(domain.FamilyMemberRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveMember, err)
	}

	res, err := h.familyService.CreateMember(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedSaveMember, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessSaveMember)
}

func (h *familyHandler) UpdateMember(c *fiber.Ctx) error {
	req := new(domain.FamilyMemberRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveMember, err)
	}

	res, err := h.familyService.UpdateMember(c.Context(), c.Params("id"), *req)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedSaveMember, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSaveMember)
}

func (h *familyHandler) DeleteMember(c *fiber.Ctx) error {
	if err := h.familyService.DeleteMember(c.Context(), c.Params("id")); err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedDeleteMember, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteMember)
}

func (h *familyHandler) GetMembers(c *fiber.Ctx) error {
	res, err := h.familyService.GetMembers(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedGetFamily, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetFamily)
}
