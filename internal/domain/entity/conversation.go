package entity

import "time"

// Roles de mensaje en una conversación del widget.
const (
	MessageRoleUser      = "user"
	MessageRoleAssistant = "assistant"
)

// Conversation historial append-only de mensajes del widget de chat, ligado a
// un negocio y a una identidad de visitante (CustomerKey).
type Conversation struct {
	ID          string
	BusinessID  string
	CustomerKey string
	Messages    []Message
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Message un turno del chat; Recommendations lleva IDs de productos sugeridos.
type Message struct {
	Role            string    `json:"role"` // user, assistant
	Content         string    `json:"content"`
	Timestamp       time.Time `json:"timestamp"`
	Recommendations []string  `json:"recommendations,omitempty"`
}

// Append agrega un turno al final de la conversación.
func (c *Conversation) Append(role, content string, at time.Time, recommendations ...string) {
	c.Messages = append(c.Messages, Message{
		Role:            role,
		Content:         content,
		Timestamp:       at,
		Recommendations: recommendations,
	})
}
