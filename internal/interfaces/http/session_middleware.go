package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/negocio-api/internal/application/dto"
	"github.com/jhoicas/negocio-api/internal/domain/repository"
)

// Locals keys para BusinessID y SessionID en Fiber.
const (
	LocalBusinessID = "business_id"
	LocalSessionID  = "session_id"
)

// SessionMiddleware valida la cookie de sesión contra el almacén server-side y
// deja BusinessID y SessionID en c.Locals. Sin cookie, sesión inexistente o
// vencida responde 401.
func SessionMiddleware(sessionRepo repository.SessionRepository, cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sessionID := c.Cookies(cookieName)
		if sessionID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "sesión requerida"})
		}
		// Los IDs de sesión son UUID; una cookie con otra forma es un fallo de
		// autenticación y no llega al almacén (la columna es UUID y el encode
		// fallaría como error de servidor).
		if uuid.Validate(sessionID) != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "SESSION_EXPIRED", Message: "sesión inválida o expirada"})
		}
		session, err := sessionRepo.GetByID(sessionID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		if session == nil || session.Expired(time.Now()) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "SESSION_EXPIRED", Message: "sesión inválida o expirada"})
		}
		c.Locals(LocalBusinessID, session.BusinessID)
		c.Locals(LocalSessionID, session.ID)
		return c.Next()
	}
}

// GetBusinessID devuelve el BusinessID del contexto (después del middleware de sesión).
func GetBusinessID(c *fiber.Ctx) string {
	v := c.Locals(LocalBusinessID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetSessionID devuelve el SessionID del contexto (después del middleware de sesión).
func GetSessionID(c *fiber.Ctx) string {
	v := c.Locals(LocalSessionID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
