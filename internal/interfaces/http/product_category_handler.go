package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/negocio-api/internal/application/dto"
	"github.com/jhoicas/negocio-api/internal/application/usecase"
	"github.com/jhoicas/negocio-api/pkg/validate"
)

// ProductCategoryHandler categorías del catálogo (protegido).
type ProductCategoryHandler struct {
	uc *usecase.ProductCategoryUseCase
}

// NewProductCategoryHandler construye el handler.
func NewProductCategoryHandler(uc *usecase.ProductCategoryUseCase) *ProductCategoryHandler {
	return &ProductCategoryHandler{uc: uc}
}

// Create godoc
// @Summary      Crear categoría de productos
// @Tags         product-categories
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductCategoryRequest  true  "Datos de la categoría"
// @Success      201   {object}  dto.ProductCategoryResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/product-categories [post]
func (h *ProductCategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := validate.Struct(in); err != nil {
		return validationFailed(c, validate.FieldErrors(err))
	}
	out, err := h.uc.Create(GetBusinessID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar categorías de productos
// @Tags         product-categories
// @Produce      json
// @Success      200  {array}  dto.ProductCategoryResponse
// @Router       /api/product-categories [get]
func (h *ProductCategoryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(GetBusinessID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Renombrar categoría de productos
// @Tags         product-categories
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la categoría"
// @Param        body  body  dto.UpdateProductCategoryRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.ProductCategoryResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/product-categories/{id} [put]
func (h *ProductCategoryHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := validate.Struct(in); err != nil {
		return validationFailed(c, validate.FieldErrors(err))
	}
	out, err := h.uc.Update(GetBusinessID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar categoría de productos
// @Description  Los productos de la categoría pasan a la categoría por defecto. La categoría por defecto no se elimina.
// @Tags         product-categories
// @Param        id  path  string  true  "ID de la categoría"
// @Success      204  "Sin contenido"
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/product-categories/{id} [delete]
func (h *ProductCategoryHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetBusinessID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
