package chat_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/negocio-api/internal/application/chat"
	"github.com/jhoicas/negocio-api/internal/application/dto"
	"github.com/jhoicas/negocio-api/internal/domain"
	"github.com/jhoicas/negocio-api/internal/domain/chatbot"
	"github.com/jhoicas/negocio-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

const (
	bizID   = "00000000-0000-0000-0000-000000000001"
	baseURL = "https://api.negocio.test"
)

type fakeConversationRepo struct {
	conversations map[string]*entity.Conversation
}

func (r *fakeConversationRepo) Create(c *entity.Conversation) error {
	r.conversations[c.ID] = c
	return nil
}
func (r *fakeConversationRepo) GetByID(id string) (*entity.Conversation, error) {
	return r.conversations[id], nil
}
func (r *fakeConversationRepo) GetByBusinessAndCustomerKey(businessID, customerKey string) (*entity.Conversation, error) {
	for _, c := range r.conversations {
		if c.BusinessID == businessID && c.CustomerKey == customerKey {
			return c, nil
		}
	}
	return nil, nil
}
func (r *fakeConversationRepo) ListByBusiness(businessID string, limit, offset int) ([]*entity.Conversation, error) {
	var out []*entity.Conversation
	for _, c := range r.conversations {
		if c.BusinessID == businessID {
			out = append(out, c)
		}
	}
	return out, nil
}
func (r *fakeConversationRepo) Update(c *entity.Conversation) error {
	r.conversations[c.ID] = c
	return nil
}

type fakeBusinessRepo struct {
	businesses map[string]*entity.Business
}

func (r *fakeBusinessRepo) Create(b *entity.Business) error { r.businesses[b.ID] = b; return nil }
func (r *fakeBusinessRepo) GetByID(id string) (*entity.Business, error) {
	return r.businesses[id], nil
}
func (r *fakeBusinessRepo) GetByUsername(username string) (*entity.Business, error) {
	for _, b := range r.businesses {
		if b.Username == username {
			return b, nil
		}
	}
	return nil, nil
}
func (r *fakeBusinessRepo) Update(b *entity.Business) error { r.businesses[b.ID] = b; return nil }

type chatFixture struct {
	uc               *chat.ChatUseCase
	conversationRepo *fakeConversationRepo
	businessRepo     *fakeBusinessRepo
}

func newChatFixture(settings json.RawMessage) *chatFixture {
	conversationRepo := &fakeConversationRepo{conversations: map[string]*entity.Conversation{}}
	businessRepo := &fakeBusinessRepo{businesses: map[string]*entity.Business{}}
	businessRepo.businesses[bizID] = &entity.Business{
		ID:              bizID,
		Name:            "Tienda La Esquina",
		Username:        "laesquina",
		ChatbotSettings: settings,
	}
	return &chatFixture{
		uc:               chat.NewChatUseCase(conversationRepo, businessRepo, baseURL),
		conversationRepo: conversationRepo,
		businessRepo:     businessRepo,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Chat
// ──────────────────────────────────────────────────────────────────────────────

// El primer mensaje de un visitante abre la conversación y persiste los dos
// turnos (usuario + bot).
func TestChat_PrimerMensaje_AbreConversacion(t *testing.T) {
	f := newChatFixture(nil)

	resp, err := f.uc.Chat(bizID, dto.ChatRequest{CustomerKey: "v-abc", Message: "hola"})
	require.NoError(t, err)
	assert.Equal(t, chatbot.RuleGreeting, resp.Rule)
	assert.Contains(t, resp.Reply, "Tienda La Esquina",
		"el saludo por defecto interpola el nombre del negocio")

	stored, err := f.conversationRepo.GetByBusinessAndCustomerKey(bizID, "v-abc")
	require.NoError(t, err)
	require.NotNil(t, stored)
	require.Len(t, stored.Messages, 2)
	assert.Equal(t, entity.MessageRoleUser, stored.Messages[0].Role)
	assert.Equal(t, "hola", stored.Messages[0].Content)
	assert.Equal(t, entity.MessageRoleAssistant, stored.Messages[1].Role)
	assert.Equal(t, resp.Reply, stored.Messages[1].Content)
}

// Mensajes siguientes del mismo visitante reutilizan la conversación.
func TestChat_MismaClave_ReutilizaConversacion(t *testing.T) {
	f := newChatFixture(nil)

	first, err := f.uc.Chat(bizID, dto.ChatRequest{CustomerKey: "v-abc", Message: "hola"})
	require.NoError(t, err)
	second, err := f.uc.Chat(bizID, dto.ChatRequest{CustomerKey: "v-abc", Message: "precio del producto"})
	require.NoError(t, err)

	assert.Equal(t, first.ConversationID, second.ConversationID)
	assert.Equal(t, chatbot.RuleProducts, second.Rule)
	assert.Len(t, f.conversationRepo.conversations, 1, "no debe abrirse una segunda conversación")

	stored := f.conversationRepo.conversations[first.ConversationID]
	assert.Len(t, stored.Messages, 4, "dos turnos por cada mensaje")
}

// El matching ignora tildes: "envío" activa la regla de shipping.
func TestChat_MatchingSinTildes(t *testing.T) {
	f := newChatFixture(nil)

	resp, err := f.uc.Chat(bizID, dto.ChatRequest{CustomerKey: "v-abc", Message: "¿Cuánto cuesta el ENVÍO?"})
	require.NoError(t, err)
	assert.Equal(t, chatbot.RuleShipping, resp.Rule)
}

// La configuración del negocio reemplaza saludo y fallback.
func TestChat_SettingsPersonalizados(t *testing.T) {
	f := newChatFixture(json.RawMessage(`{"greeting":"¡Bienvenido a la tienda!","fallback":"No entendí, ¿puedes reformular?"}`))

	saludo, err := f.uc.Chat(bizID, dto.ChatRequest{CustomerKey: "v-abc", Message: "hola"})
	require.NoError(t, err)
	assert.Equal(t, "¡Bienvenido a la tienda!", saludo.Reply)

	fallback, err := f.uc.Chat(bizID, dto.ChatRequest{CustomerKey: "v-abc", Message: "xyzzy"})
	require.NoError(t, err)
	assert.Equal(t, chatbot.RuleFallback, fallback.Rule)
	assert.Equal(t, "No entendí, ¿puedes reformular?", fallback.Reply)
}

// Configuración corrupta no tumba el chat: rigen los defaults.
func TestChat_SettingsInvalidos_UsaDefaults(t *testing.T) {
	f := newChatFixture(json.RawMessage(`{esto no es json`))

	resp, err := f.uc.Chat(bizID, dto.ChatRequest{CustomerKey: "v-abc", Message: "hola"})
	require.NoError(t, err)
	assert.Equal(t, chatbot.RuleGreeting, resp.Rule)
	assert.Contains(t, resp.Reply, "Tienda La Esquina")
}

func TestChat_NegocioInexistente_Retorna404(t *testing.T) {
	f := newChatFixture(nil)

	_, err := f.uc.Chat("no-existe", dto.ChatRequest{CustomerKey: "v-abc", Message: "hola"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests WidgetScript
// ──────────────────────────────────────────────────────────────────────────────

// El snippet queda apuntado a la API pública y al negocio correcto.
func TestWidgetScript_InterpolaAPIYNegocio(t *testing.T) {
	f := newChatFixture(nil)

	script, err := f.uc.WidgetScript(bizID)
	require.NoError(t, err)
	assert.Contains(t, script, `"`+baseURL+`"`)
	assert.Contains(t, script, `"`+bizID+`"`)
	assert.Contains(t, script, "Tienda La Esquina")
	assert.Contains(t, script, "/api/chatbot/", "el snippet llama al endpoint público de chat")
}

func TestWidgetScript_NegocioInexistente_Retorna404(t *testing.T) {
	f := newChatFixture(nil)

	_, err := f.uc.WidgetScript("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de gestión de conversaciones
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateConversation_ClaveDuplicada_RetornaError(t *testing.T) {
	f := newChatFixture(nil)

	_, err := f.uc.CreateConversation(bizID, dto.CreateConversationRequest{CustomerKey: "v-abc"})
	require.NoError(t, err)

	_, err = f.uc.CreateConversation(bizID, dto.CreateConversationRequest{CustomerKey: "v-abc"})
	assert.ErrorIs(t, err, domain.ErrDuplicate,
		"la clave de visitante es única por negocio")
}

func TestAppendMessage_AgregaTurno(t *testing.T) {
	f := newChatFixture(nil)
	created, err := f.uc.CreateConversation(bizID, dto.CreateConversationRequest{CustomerKey: "v-abc"})
	require.NoError(t, err)

	updated, err := f.uc.AppendMessage(bizID, created.ID, dto.AppendMessageRequest{
		Role:            entity.MessageRoleAssistant,
		Content:         "Te recomiendo estos productos",
		Recommendations: []string{"p1", "p2"},
	})
	require.NoError(t, err)
	require.Len(t, updated.Messages, 1)
	assert.Equal(t, []string{"p1", "p2"}, updated.Messages[0].Recommendations)
	assert.False(t, updated.Messages[0].Timestamp.IsZero())
}
