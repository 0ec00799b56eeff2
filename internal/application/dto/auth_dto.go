package dto

import (
	"encoding/json"
	"time"

	"github.com/jhoicas/negocio-api/internal/domain/entity"
)

// RegisterRequest entrada para registrar un negocio.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=200"`
	Username string `json:"username" validate:"required,min=3,max=60"`
	Password string `json:"password" validate:"required,min=8,max=128"`
	Email    string `json:"email" validate:"required,email"`
}

// LoginRequest entrada para iniciar sesión.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// BusinessResponse salida de un negocio. Nunca incluye el hash de contraseña.
type BusinessResponse struct {
	ID              string             `json:"id"`
	Name            string             `json:"name"`
	Username        string             `json:"username"`
	Email           string             `json:"email"`
	LogoURL         string             `json:"logo_url,omitempty"`
	ChatbotSettings json.RawMessage    `json:"chatbot_settings,omitempty"`
	LoginHistory    []entity.LoginEntry `json:"login_history,omitempty"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

// ToBusinessResponse mapea la entidad quitando credenciales.
func ToBusinessResponse(b *entity.Business) *BusinessResponse {
	if b == nil {
		return nil
	}
	return &BusinessResponse{
		ID:              b.ID,
		Name:            b.Name,
		Username:        b.Username,
		Email:           b.Email,
		LogoURL:         b.LogoURL,
		ChatbotSettings: b.ChatbotSettings,
		LoginHistory:    b.LoginHistory,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

// UpdateBusinessRequest entrada para actualizar el perfil del negocio.
// Username y password no se cambian por esta vía.
type UpdateBusinessRequest struct {
	Name            *string         `json:"name" validate:"omitempty,min=2,max=200"`
	Email           *string         `json:"email" validate:"omitempty,email"`
	LogoURL         *string         `json:"logo_url"`
	ChatbotSettings json.RawMessage `json:"chatbot_settings"`
}
