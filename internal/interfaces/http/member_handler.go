package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/negocio-api/internal/application/dto"
	"github.com/jhoicas/negocio-api/internal/application/usecase"
	"github.com/jhoicas/negocio-api/pkg/validate"
)

// MemberHandler miembros del negocio (clientes, proveedores, empleados) y el
// flujo público de invitaciones.
type MemberHandler struct {
	uc *usecase.MemberUseCase
}

// NewMemberHandler construye el handler.
func NewMemberHandler(uc *usecase.MemberUseCase) *MemberHandler {
	return &MemberHandler{uc: uc}
}

// Create godoc
// @Summary      Crear miembro
// @Tags         members
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMemberRequest  true  "Datos del miembro"
// @Success      201   {object}  dto.MemberResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/members [post]
func (h *MemberHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMemberRequest
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

// CreateVendor godoc
// @Summary      Crear proveedor
// @Description  El tipo siempre es vendor, sin importar lo que mande el cliente.
// @Tags         members
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateVendorRequest  true  "Datos del proveedor"
// @Success      201   {object}  dto.MemberResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/vendors [post]
func (h *MemberHandler) CreateVendor(c *fiber.Ctx) error {
	var in dto.CreateVendorRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := validate.Struct(in); err != nil {
		return validationFailed(c, validate.FieldErrors(err))
	}
	out, err := h.uc.CreateVendor(GetBusinessID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener miembro por ID
// @Tags         members
// @Produce      json
// @Param        id   path  string  true  "ID del miembro"
// @Success      200  {object}  dto.MemberResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/members/{id} [get]
func (h *MemberHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(GetBusinessID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar miembros
// @Tags         members
// @Produce      json
// @Param        type    query  string  false  "Filtrar por tipo (customer, vendor, employee)"
// @Param        limit   query  int     false  "Límite"   default(20)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200     {object}  dto.MemberListResponse
// @Router       /api/members [get]
func (h *MemberHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(GetBusinessID(c), c.Query("type"), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar miembro
// @Tags         members
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del miembro"
// @Param        body  body  dto.UpdateMemberRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.MemberResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/members/{id} [put]
func (h *MemberHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateMemberRequest
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
// @Summary      Eliminar miembro
// @Tags         members
// @Param        id  path  string  true  "ID del miembro"
// @Success      204  "Sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/members/{id} [delete]
func (h *MemberHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetBusinessID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AdjustBalance godoc
// @Summary      Ajustar el balance de un miembro
// @Description  El ajuste queda anotado en el historial (append-only).
// @Tags         members
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del miembro"
// @Param        body  body  dto.AdjustBalanceRequest  true  "Ajuste (amount en centavos)"
// @Success      200   {object}  dto.MemberResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/members/{id}/balance [post]
func (h *MemberHandler) AdjustBalance(c *fiber.Ctx) error {
	var in dto.AdjustBalanceRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := validate.Struct(in); err != nil {
		return validationFailed(c, validate.FieldErrors(err))
	}
	out, err := h.uc.AdjustBalance(GetBusinessID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ResolveInvite godoc
// @Summary      Resolver un link de invitación (público)
// @Tags         invitations
// @Produce      json
// @Param        token  path  string  true  "Token de invitación"
// @Success      200    {object}  dto.MemberResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /register/invite/{token} [get]
func (h *MemberHandler) ResolveInvite(c *fiber.Ctx) error {
	out, err := h.uc.ResolveInvite(c.Params("token"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// AcceptInvite godoc
// @Summary      Aceptar una invitación (público)
// @Description  Activa al miembro pendiente y consume el token.
// @Tags         invitations
// @Produce      json
// @Param        token  path  string  true  "Token de invitación"
// @Success      200    {object}  dto.MemberResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /register/invite/{token}/accept [post]
func (h *MemberHandler) AcceptInvite(c *fiber.Ctx) error {
	out, err := h.uc.AcceptInvite(c.Params("token"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
