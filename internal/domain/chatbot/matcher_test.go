package chatbot_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/negocio-api/internal/domain/chatbot"
)

func TestReply_SaludoInterpolaNombre(t *testing.T) {
	reply, rule := chatbot.Reply("hello there", "Demo Store", chatbot.Settings{})
	assert.Equal(t, chatbot.RuleGreeting, rule)
	assert.Contains(t, reply, "Demo Store")
}

func TestReply_PrimeraReglaGana(t *testing.T) {
	// "hola" (saludo) y "precio" (productos) en el mismo mensaje: el saludo
	// está declarado antes, así que gana.
	_, rule := chatbot.Reply("hola, qué precio tiene?", "X", chatbot.Settings{})
	assert.Equal(t, chatbot.RuleGreeting, rule)
}

func TestReply_InsensibleATildesYMayusculas(t *testing.T) {
	_, rule := chatbot.Reply("CUÁNDO LLEGA MI ENVÍO", "X", chatbot.Settings{})
	assert.Equal(t, chatbot.RuleShipping, rule)

	_, rule = chatbot.Reply("quiero una devolución", "X", chatbot.Settings{})
	assert.Equal(t, chatbot.RuleReturns, rule)
}

func TestReply_EstadoDePedido(t *testing.T) {
	_, rule := chatbot.Reply("what is the status of my order?", "X", chatbot.Settings{})
	assert.Equal(t, chatbot.RuleOrders, rule)
}

func TestReply_FallbackSinMatch(t *testing.T) {
	reply, rule := chatbot.Reply("xyzzy", "X", chatbot.Settings{})
	assert.Equal(t, chatbot.RuleFallback, rule)
	assert.NotEmpty(t, reply)
}

func TestReply_SettingsReemplazanTextos(t *testing.T) {
	s := chatbot.Settings{Greeting: "¡Bienvenido!", Fallback: "No entendí."}

	reply, _ := chatbot.Reply("hola", "X", s)
	assert.Equal(t, "¡Bienvenido!", reply)

	reply, _ = chatbot.Reply("xyzzy", "X", s)
	assert.Equal(t, "No entendí.", reply)
}

func TestFold(t *testing.T) {
	assert.Equal(t, "envio", chatbot.Fold("Envío"))
	assert.Equal(t, "devolucion", chatbot.Fold("DEVOLUCIÓN"))
	assert.Equal(t, "nino", chatbot.Fold("Niño"))
}
