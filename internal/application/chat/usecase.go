package chat

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/negocio-api/internal/application/dto"
	"github.com/jhoicas/negocio-api/internal/domain"
	"github.com/jhoicas/negocio-api/internal/domain/chatbot"
	"github.com/jhoicas/negocio-api/internal/domain/entity"
	"github.com/jhoicas/negocio-api/internal/domain/repository"
)

// ChatUseCase conversaciones del widget. El endpoint de chat es público (lo
// consume el snippet embebido en el sitio del negocio); la gestión de
// conversaciones requiere sesión.
type ChatUseCase struct {
	conversationRepo repository.ConversationRepository
	businessRepo     repository.BusinessRepository
	publicBaseURL    string
}

// NewChatUseCase construye el caso de uso. publicBaseURL es la URL base que el
// snippet del widget usa para llamar a la API.
func NewChatUseCase(conversationRepo repository.ConversationRepository, businessRepo repository.BusinessRepository, publicBaseURL string) *ChatUseCase {
	return &ChatUseCase{
		conversationRepo: conversationRepo,
		businessRepo:     businessRepo,
		publicBaseURL:    publicBaseURL,
	}
}

// Chat procesa un mensaje entrante del widget: busca (o abre) la conversación
// del visitante, agrega su mensaje y la respuesta del bot, y persiste ambos.
func (uc *ChatUseCase) Chat(businessID string, in dto.ChatRequest) (*dto.ChatResponse, error) {
	business, err := uc.businessRepo.GetByID(businessID)
	if err != nil {
		return nil, err
	}
	if business == nil {
		return nil, domain.ErrNotFound
	}

	var settings chatbot.Settings
	if len(business.ChatbotSettings) > 0 {
		// Configuración inválida no tumba el chat; se responde con defaults.
		_ = json.Unmarshal(business.ChatbotSettings, &settings)
	}

	conversation, err := uc.conversationRepo.GetByBusinessAndCustomerKey(businessID, in.CustomerKey)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	created := false
	if conversation == nil {
		conversation = &entity.Conversation{
			ID:          uuid.New().String(),
			BusinessID:  businessID,
			CustomerKey: in.CustomerKey,
			CreatedAt:   now,
		}
		created = true
	}

	reply, rule := chatbot.Reply(in.Message, business.Name, settings)
	conversation.Append(entity.MessageRoleUser, in.Message, now)
	conversation.Append(entity.MessageRoleAssistant, reply, now)
	conversation.UpdatedAt = now

	if created {
		err = uc.conversationRepo.Create(conversation)
	} else {
		err = uc.conversationRepo.Update(conversation)
	}
	if err != nil {
		return nil, err
	}

	return &dto.ChatResponse{
		ConversationID: conversation.ID,
		Reply:          reply,
		Rule:           rule,
	}, nil
}

// WidgetScript genera el snippet JavaScript que el negocio pega en su sitio
// para montar el widget contra el endpoint público de chat.
func (uc *ChatUseCase) WidgetScript(businessID string) (string, error) {
	business, err := uc.businessRepo.GetByID(businessID)
	if err != nil {
		return "", err
	}
	if business == nil {
		return "", domain.ErrNotFound
	}
	return fmt.Sprintf(widgetTemplate, uc.publicBaseURL, businessID, business.Name), nil
}

// widgetTemplate snippet autocontenido: burbuja flotante + panel de chat que
// llama al endpoint público con una clave de visitante persistida en el navegador.
const widgetTemplate = `(function () {
  var API = %q;
  var BUSINESS_ID = %q;
  var BUSINESS_NAME = %q;
  var KEY_NAME = "chat_key_" + BUSINESS_ID;
  var key = localStorage.getItem(KEY_NAME);
  if (!key) {
    key = "v-" + Math.random().toString(36).slice(2) + Date.now().toString(36);
    localStorage.setItem(KEY_NAME, key);
  }
  function send(message) {
    return fetch(API + "/api/chatbot/" + BUSINESS_ID + "/chat", {
      method: "POST",
      headers: { "Content-Type": "application/json" },
      body: JSON.stringify({ customer_key: key, message: message })
    }).then(function (r) { return r.json(); });
  }
  var bubble = document.createElement("div");
  bubble.textContent = "💬";
  bubble.style.cssText = "position:fixed;bottom:20px;right:20px;width:52px;height:52px;border-radius:50%%;background:#2563eb;color:#fff;display:flex;align-items:center;justify-content:center;cursor:pointer;font-size:24px;z-index:99999;box-shadow:0 2px 8px rgba(0,0,0,.25)";
  var panel = document.createElement("div");
  panel.style.cssText = "position:fixed;bottom:84px;right:20px;width:320px;height:420px;background:#fff;border-radius:12px;display:none;flex-direction:column;z-index:99999;box-shadow:0 4px 16px rgba(0,0,0,.25);overflow:hidden;font-family:sans-serif";
  panel.innerHTML = '<div style="background:#2563eb;color:#fff;padding:12px;font-weight:600">' + BUSINESS_NAME + '</div><div data-log style="flex:1;overflow-y:auto;padding:12px;font-size:14px"></div><form data-form style="display:flex;border-top:1px solid #e5e7eb"><input data-input style="flex:1;border:0;padding:10px;outline:none" placeholder="Type a message..."/><button style="border:0;background:#2563eb;color:#fff;padding:0 16px;cursor:pointer">Send</button></form>';
  var log = panel.querySelector("[data-log]");
  function push(role, text) {
    var row = document.createElement("div");
    row.style.cssText = "margin-bottom:8px;text-align:" + (role === "user" ? "right" : "left");
    row.textContent = text;
    log.appendChild(row);
    log.scrollTop = log.scrollHeight;
  }
  bubble.onclick = function () {
    panel.style.display = panel.style.display === "none" ? "flex" : "none";
  };
  panel.querySelector("[data-form]").onsubmit = function (ev) {
    ev.preventDefault();
    var input = panel.querySelector("[data-input]");
    var message = input.value.trim();
    if (!message) return;
    input.value = "";
    push("user", message);
    send(message).then(function (res) { push("assistant", res.reply); });
  };
  document.body.appendChild(bubble);
  document.body.appendChild(panel);
})();
`

// CreateConversation abre una conversación vacía para un visitante.
func (uc *ChatUseCase) CreateConversation(businessID string, in dto.CreateConversationRequest) (*dto.ConversationResponse, error) {
	existing, err := uc.conversationRepo.GetByBusinessAndCustomerKey(businessID, in.CustomerKey)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	conversation := &entity.Conversation{
		ID:          uuid.New().String(),
		BusinessID:  businessID,
		CustomerKey: in.CustomerKey,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.conversationRepo.Create(conversation); err != nil {
		return nil, err
	}
	return toConversationResponse(conversation), nil
}

// ListConversations lista conversaciones del negocio con paginación.
func (uc *ChatUseCase) ListConversations(businessID string, limit, offset int) (*dto.ConversationListResponse, error) {
	list, err := uc.conversationRepo.ListByBusiness(businessID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ConversationResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toConversationResponse(c))
	}
	return &dto.ConversationListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// GetConversation devuelve una conversación del negocio.
func (uc *ChatUseCase) GetConversation(businessID, id string) (*dto.ConversationResponse, error) {
	conversation, err := uc.owned(businessID, id)
	if err != nil {
		return nil, err
	}
	return toConversationResponse(conversation), nil
}

// AppendMessage agrega un turno manual a una conversación existente.
func (uc *ChatUseCase) AppendMessage(businessID, id string, in dto.AppendMessageRequest) (*dto.ConversationResponse, error) {
	conversation, err := uc.owned(businessID, id)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	conversation.Append(in.Role, in.Content, now, in.Recommendations...)
	conversation.UpdatedAt = now
	if err := uc.conversationRepo.Update(conversation); err != nil {
		return nil, err
	}
	return toConversationResponse(conversation), nil
}

func (uc *ChatUseCase) owned(businessID, id string) (*entity.Conversation, error) {
	conversation, err := uc.conversationRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if conversation == nil {
		return nil, domain.ErrNotFound
	}
	if conversation.BusinessID != businessID {
		return nil, domain.ErrForbidden
	}
	return conversation, nil
}

func toConversationResponse(c *entity.Conversation) *dto.ConversationResponse {
	if c == nil {
		return nil
	}
	return &dto.ConversationResponse{
		ID:          c.ID,
		BusinessID:  c.BusinessID,
		CustomerKey: c.CustomerKey,
		Messages:    c.Messages,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
