package handlers

import (
	"Meal-Planner/domain"
	"Meal-Planner/internal/api/presenters"
	"Meal-Planner/pkg/plan"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	PlanHandler interface {
		GetPlan(c *fiber.Ctx) error
		AddEntry(c *fiber.Ctx) error
		UpdateEntry(c *fiber.Ctx) error
		DeleteEntry(c *fiber.Ctx) error
		ClearPlan(c *fiber.Ctx) error
		BatchUpdate(c *fiber.Ctx) error
		AutofillOne(c *fiber.Ctx) error
		AutofillWeek(c *fiber.Ctx) error
		ExportPlan(c *fiber.Ctx) error
		ImportPlan(c *fiber.Ctx) error
		GetStats(c *fiber.Ctx) error
	}

	planHandler struct {
		planService plan.PlanService
		validator   *validator.Validate
	}
)

func NewPlanHandler(planService plan.PlanService, validator *validator.Validate) PlanHandler {
	return &planHandler{
		planService: planService,
		validator:   validator,
	}
}

func (h *planHandler) parseRange(c *fiber.Ctx) (domain.PlanRangeRequest, error) {
	req := domain.PlanRangeRequest{}
	if err := c.QueryParser(&req); err != nil {
		return req, err
	}
	return req, h.validator.Struct(req)
}

func (h *planHandler) GetPlan(c *fiber.Ctx) error {
	req, err := h.parseRange(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetPlan, err)
	}

	res, err := h.planService.GetPlan(c.Context(), req)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedGetPlan, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetPlan)
}

func (h *planHandler) AddEntry(c *fiber.Ctx) error {
	req := new(domain.PlanEntryRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddPlanEntry, err)
	}

	res, err := h.planService.AddEntry(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedAddPlanEntry, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddPlanEntry)
}

func (h *planHandler) UpdateEntry(c *fiber.Ctx) error {
	req := new(domain.PlanEntryUpdateRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdatePlan, err)
	}

	res, err := h.planService.UpdateEntry(c.Context(), c.Params("id"), *req)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedUpdatePlan, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdatePlan)
}

func (h *planHandler) DeleteEntry(c *fiber.Ctx) error {
	if err := h.planService.DeleteEntry(c.Context(), c.Params("id")); err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedDeletePlan, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeletePlan)
}

func (h *planHandler) ClearPlan(c *fiber.Ctx) error {
	req, err := h.parseRange(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedClearPlan, err)
	}

	removed, err := h.planService.ClearPlan(c.Context(), req)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedClearPlan, err)
	}
	return presenters.SuccessResponse(c, fiber.Map{"removed": removed}, fiber.StatusOK, domain.MessageSuccessClearPlan)
}

func (h *planHandler) BatchUpdate(c *fiber.Ctx) error {
	req := new(domain.PlanBatchRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBatchPlan, err)
	}

	res, err := h.planService.BatchUpdate(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedBatchPlan, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessBatchPlan)
}

func (h *planHandler) AutofillOne(c *fiber.Ctx) error {
	req := new(domain.AutofillOneRequest)
	if len(c.Body()) > 0 {
		if err := c.BodyParser(req); err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
		}
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAutofill, err)
	}

	res, err := h.planService.AutofillOne(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedAutofill, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAutofill)
}

func (h *planHandler) AutofillWeek(c *fiber.Ctx) error {
	res, err := h.planService.AutofillWeek(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedAutofill, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessAutofill)
}

func (h *planHandler) ExportPlan(c *fiber.Ctx) error {
	res, err := h.planService.ExportPlan(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedExport, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessExport)
}

func (h *planHandler) ImportPlan(c *fiber.Ctx) error {
	res, err := h.planService.ImportPlan(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedImport, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessImport)
}

func (h *planHandler) GetStats(c *fiber.Ctx) error {
	req, err := h.parseRange(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetStats, err)
	}

	res, err := h.planService.GetStats(c.Context(), req)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedGetStats, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetStats)
}
