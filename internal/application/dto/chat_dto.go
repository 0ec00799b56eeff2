package dto

import (
	"time"

	"github.com/jhoicas/negocio-api/internal/domain/entity"
)

// ChatRequest mensaje entrante del widget público.
type ChatRequest struct {
	CustomerKey string `json:"customer_key" validate:"required,min=1,max=120"`
	Message     string `json:"message" validate:"required,min=1,max=1000"`
}

// ChatResponse respuesta del bot.
type ChatResponse struct {
	ConversationID string `json:"conversation_id"`
	Reply          string `json:"reply"`
	Rule           string `json:"rule"` // regla que hizo match (greeting, products, ...)
}

// CreateConversationRequest abre una conversación manualmente.
type CreateConversationRequest struct {
	CustomerKey string `json:"customer_key" validate:"required,min=1,max=120"`
}

// AppendMessageRequest agrega un turno a una conversación existente.
type AppendMessageRequest struct {
	Role            string   `json:"role" validate:"required,oneof=user assistant"`
	Content         string   `json:"content" validate:"required,min=1,max=2000"`
	Recommendations []string `json:"recommendations"`
}

// ConversationResponse salida de una conversación.
type ConversationResponse struct {
	ID          string           `json:"id"`
	BusinessID  string           `json:"business_id"`
	CustomerKey string           `json:"customer_key"`
	Messages    []entity.Message `json:"messages"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// ConversationListResponse lista paginada de conversaciones.
type ConversationListResponse struct {
	Items []ConversationResponse `json:"items"`
	Page  PageResponse           `json:"page"`
}
