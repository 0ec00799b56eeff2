package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/negocio-api/internal/application/dto"
	"github.com/jhoicas/negocio-api/internal/application/usecase"
	"github.com/jhoicas/negocio-api/pkg/validate"
)

// BusinessHandler perfil del negocio (protegido).
type BusinessHandler struct {
	uc *usecase.BusinessUseCase
}

// NewBusinessHandler construye el handler.
func NewBusinessHandler(uc *usecase.BusinessUseCase) *BusinessHandler {
	return &BusinessHandler{uc: uc}
}

// Get godoc
// @Summary      Obtener el perfil del negocio
// @Tags         business
// @Produce      json
// @Success      200  {object}  dto.BusinessResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/business [get]
func (h *BusinessHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(GetBusinessID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar el perfil del negocio
// @Tags         business
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateBusinessRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.BusinessResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/business [put]
func (h *BusinessHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateBusinessRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := validate.Struct(in); err != nil {
		return validationFailed(c, validate.FieldErrors(err))
	}
	out, err := h.uc.Update(GetBusinessID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
