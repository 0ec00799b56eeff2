package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/negocio-api/internal/application/chat"
	"github.com/jhoicas/negocio-api/internal/application/dto"
	"github.com/jhoicas/negocio-api/pkg/validate"
)

// ChatbotHandler endpoints públicos del widget y gestión protegida de
// conversaciones.
type ChatbotHandler struct {
	uc *chat.ChatUseCase
}

// NewChatbotHandler construye el handler.
func NewChatbotHandler(uc *chat.ChatUseCase) *ChatbotHandler {
	return &ChatbotHandler{uc: uc}
}

// Chat godoc
// @Summary      Enviar un mensaje al bot (público)
// @Tags         chatbot
// @Accept       json
// @Produce      json
// @Param        businessId  path  string           true  "ID del negocio"
// @Param        body        body  dto.ChatRequest  true  "Mensaje del visitante"
// @Success      200         {object}  dto.ChatResponse
// @Failure      404         {object}  dto.ErrorResponse
// @Router       /api/chatbot/{businessId}/chat [post]
func (h *ChatbotHandler) Chat(c *fiber.Ctx) error {
	var in dto.ChatRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := validate.Struct(in); err != nil {
		return validationFailed(c, validate.FieldErrors(err))
	}
	out, err := h.uc.Chat(c.Params("businessId"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Widget godoc
// @Summary      Snippet JavaScript del widget (público)
// @Tags         chatbot
// @Produce      text/javascript
// @Param        businessId  path  string  true  "ID del negocio"
// @Success      200  {string}  string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/chatbot/widget/{businessId} [get]
func (h *ChatbotHandler) Widget(c *fiber.Ctx) error {
	script, err := h.uc.WidgetScript(c.Params("businessId"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "text/javascript; charset=utf-8")
	return c.SendString(script)
}

// CreateConversation godoc
// @Summary      Abrir una conversación
// @Tags         conversations
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateConversationRequest  true  "Clave del visitante"
// @Success      201   {object}  dto.ConversationResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/conversations [post]
func (h *ChatbotHandler) CreateConversation(c *fiber.Ctx) error {
	var in dto.CreateConversationRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := validate.Struct(in); err != nil {
		return validationFailed(c, validate.FieldErrors(err))
	}
	out, err := h.uc.CreateConversation(GetBusinessID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListConversations godoc
// @Summary      Listar conversaciones
// @Tags         conversations
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.ConversationListResponse
// @Router       /api/conversations [get]
func (h *ChatbotHandler) ListConversations(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.ListConversations(GetBusinessID(c), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetConversation godoc
// @Summary      Obtener conversación por ID
// @Tags         conversations
// @Produce      json
// @Param        id   path  string  true  "ID de la conversación"
// @Success      200  {object}  dto.ConversationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/conversations/{id} [get]
func (h *ChatbotHandler) GetConversation(c *fiber.Ctx) error {
	out, err := h.uc.GetConversation(GetBusinessID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// AppendMessage godoc
// @Summary      Agregar un turno a una conversación
// @Tags         conversations
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la conversación"
// @Param        body  body  dto.AppendMessageRequest  true  "Turno a agregar"
// @Success      200   {object}  dto.ConversationResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/conversations/{id}/messages [post]
func (h *ChatbotHandler) AppendMessage(c *fiber.Ctx) error {
	var in dto.AppendMessageRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := validate.Struct(in); err != nil {
		return validationFailed(c, validate.FieldErrors(err))
	}
	out, err := h.uc.AppendMessage(GetBusinessID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
