package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/negocio-api/internal/application/dto"
	"github.com/jhoicas/negocio-api/internal/application/usecase"
	"github.com/jhoicas/negocio-api/pkg/validate"
)

// WebsiteHandler sitios del negocio (protegido).
type WebsiteHandler struct {
	uc *usecase.WebsiteUseCase
}

// NewWebsiteHandler construye el handler.
func NewWebsiteHandler(uc *usecase.WebsiteUseCase) *WebsiteHandler {
	return &WebsiteHandler{uc: uc}
}

// Create godoc
// @Summary      Crear sitio
// @Tags         websites
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateWebsiteRequest  true  "Datos del sitio"
// @Success      201   {object}  dto.WebsiteResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/websites [post]
func (h *WebsiteHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateWebsiteRequest
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
// @Summary      Listar sitios
// @Tags         websites
// @Produce      json
// @Success      200  {array}  dto.WebsiteResponse
// @Router       /api/websites [get]
func (h *WebsiteHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(GetBusinessID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
