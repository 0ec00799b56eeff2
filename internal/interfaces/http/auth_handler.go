package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/negocio-api/internal/application/auth"
	"github.com/jhoicas/negocio-api/internal/application/dto"
	"github.com/jhoicas/negocio-api/internal/domain/entity"
	"github.com/jhoicas/negocio-api/pkg/config"
	"github.com/jhoicas/negocio-api/pkg/validate"
)

// AuthHandler registro, login, logout y perfil de sesión del negocio.
type AuthHandler struct {
	uc         *auth.AuthUseCase
	sessionCfg config.SessionConfig
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.AuthUseCase, sessionCfg config.SessionConfig) *AuthHandler {
	return &AuthHandler{uc: uc, sessionCfg: sessionCfg}
}

// Register godoc
// @Summary      Registrar un negocio
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "Datos del negocio"
// @Success      201   {object}  dto.BusinessResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := validate.Struct(in); err != nil {
		return validationFailed(c, validate.FieldErrors(err))
	}
	out, session, err := h.uc.Register(c.Context(), in, c.IP())
	if err != nil {
		return respondError(c, err)
	}
	h.setSessionCookie(c, session)
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credenciales"
// @Success      200   {object}  dto.BusinessResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := validate.Struct(in); err != nil {
		return validationFailed(c, validate.FieldErrors(err))
	}
	out, session, err := h.uc.Login(c.Context(), in, c.IP())
	if err != nil {
		return respondError(c, err)
	}
	h.setSessionCookie(c, session)
	return c.JSON(out)
}

// Logout godoc
// @Summary      Cerrar sesión
// @Tags         auth
// @Produce      json
// @Success      204  "Sin contenido"
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if sessionID := GetSessionID(c); sessionID != "" {
		if err := h.uc.Logout(sessionID); err != nil {
			return respondError(c, err)
		}
	}
	c.Cookie(&fiber.Cookie{
		Name:     h.sessionCfg.CookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   h.sessionCfg.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.SendStatus(fiber.StatusNoContent)
}

// Me godoc
// @Summary      Perfil del negocio autenticado
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.BusinessResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	out, err := h.uc.CurrentBusiness(GetBusinessID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// setSessionCookie emite la cookie HttpOnly con el ID opaco de la sesión.
func (h *AuthHandler) setSessionCookie(c *fiber.Ctx, session *entity.Session) {
	c.Cookie(&fiber.Cookie{
		Name:     h.sessionCfg.CookieName,
		Value:    session.ID,
		Expires:  session.ExpiresAt,
		HTTPOnly: true,
		Secure:   h.sessionCfg.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
