package handlers

import (
	"Meal-Planner/domain"
	"Meal-Planner/internal/api/presenters"
	"Meal-Planner/pkg/product"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ProductHandler interface {
		CreateProduct(c *fiber.Ctx) error
		UpdateProduct(c *fiber.Ctx) error
		DeleteProduct(c *fiber.Ctx) error
		GetProduct(c *fiber.Ctx) error
		GetProducts(c *fiber.Ctx) error
		ExportProducts(c *fiber.Ctx) error
		ImportProducts(c *fiber.Ctx) error
	}

	productHandler struct {
		productService product.ProductService
		validator      *validator.Validate
	}
)

func NewProductHandler(productService product.ProductService, validator *validator.Validate) ProductHandler {
	return &productHandler{
		productService: productService,
		validator:      validator,
	}
}

func (h *productHandler) CreateProduct(c *fiber.Ctx) error {
	req := new(domain.ProductRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateProduct, err)
	}

	res, err := h.productService.CreateProduct(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedCreateProduct, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateProduct)
}

func (h *productHandler) UpdateProduct(c *fiber.Ctx) error {
	req := new(domain.ProductRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateProduct, err)
	}

	res, err := h.productService.UpdateProduct(c.Context(), c.Params("id"), *req)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedUpdateProduct, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateProduct)
}

func (h *productHandler) DeleteProduct(c *fiber.Ctx) error {
	if err := h.productService.DeleteProduct(c.Context(), c.Params("id")); err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedDeleteProduct, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteProduct)
}

func (h *productHandler) GetProduct(c *fiber.Ctx) error {
	res, err := h.productService.GetProduct(c.Context(), c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedGetProduct, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetProduct)
}

func (h *productHandler) GetProducts(c *fiber.Ctx) error {
	res, err := h.productService.GetProducts(c.Context(), c.Query("search"))
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedGetProducts, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetProducts)
}

func (h *productHandler) ExportProducts(c *fiber.Ctx) error {
	res, err := h.productService.ExportProducts(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedExport, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessExport)
}

func (h *productHandler) ImportProducts(c *fiber.Ctx) error {
	res, err := h.productService.ImportProducts(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedImport, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessImport)
}
