// Package chatbot implementa el selector de respuestas del widget: matching
// por palabras clave sobre una lista ordenada de reglas, sin estado.
package chatbot

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Rule una regla del bot: si el mensaje contiene alguna de las Keywords
// (ignorando mayúsculas y tildes), responde Reply. Gana la primera regla que
// haga match en el orden de declaración.
type Rule struct {
	ID       string
	Keywords []string
	Reply    string
}

// Settings textos configurables por negocio; los campos vacíos usan el default.
type Settings struct {
	Greeting string `json:"greeting,omitempty"`
	Fallback string `json:"fallback,omitempty"`
}

// IDs de las reglas por defecto, en orden de prioridad.
const (
	RuleGreeting = "greeting"
	RuleProducts = "products"
	RuleOrders   = "orders"
	RuleShipping = "shipping"
	RuleReturns  = "returns"
	RuleFallback = "fallback"
)

// defaultRules reglas canónicas del bot. Las keywords incluyen variantes en
// inglés y español; la normalización hace que "envío" y "envio" sean iguales.
var defaultRules = []Rule{
	{
		ID:       RuleGreeting,
		Keywords: []string{"hello", "hi", "hey", "hola", "buenas", "buenos dias", "buenas tardes"},
		Reply:    "Hi! Welcome to %s. How can I help you today?",
	},
	{
		ID:       RuleProducts,
		Keywords: []string{"product", "price", "catalog", "producto", "precio", "catalogo", "disponible", "stock"},
		Reply:    "You can browse our catalog for details and prices. Is there a specific product you are looking for?",
	},
	{
		ID:       RuleOrders,
		Keywords: []string{"order", "tracking", "status", "pedido", "orden", "seguimiento", "estado"},
		Reply:    "To check your order status, please share your order number and we will look it up.",
	},
	{
		ID:       RuleShipping,
		Keywords: []string{"shipping", "delivery", "envio", "entrega", "demora", "cuanto tarda"},
		Reply:    "Standard shipping takes 3-5 business days. You will receive a tracking link once your order ships.",
	},
	{
		ID:       RuleReturns,
		Keywords: []string{"return", "refund", "exchange", "devolucion", "reembolso", "cambio", "garantia"},
		Reply:    "Returns are accepted within 30 days of delivery. Reply with your order number to start one.",
	},
}

// fallbackReply respuesta cuando ninguna regla hace match.
const fallbackReply = "I'm not sure I understood that. You can ask about products, orders, shipping or returns."

// foldTransform minúsculas + descomposición NFD + remoción de marcas diacríticas.
var foldTransform = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold normaliza texto para el matching: minúsculas y sin tildes.
func Fold(s string) string {
	out, _, err := transform.String(foldTransform, strings.ToLower(s))
	if err != nil {
		return strings.ToLower(s)
	}
	return out
}

// Reply selecciona la respuesta para un mensaje. businessName se interpola en
// el saludo; settings permite reemplazar saludo y fallback por negocio.
// Devuelve la respuesta y el ID de la regla ganadora.
func Reply(message, businessName string, settings Settings) (string, string) {
	folded := Fold(message)
	for _, rule := range defaultRules {
		for _, kw := range rule.Keywords {
			if strings.Contains(folded, Fold(kw)) {
				return render(rule, businessName, settings), rule.ID
			}
		}
	}
	if settings.Fallback != "" {
		return settings.Fallback, RuleFallback
	}
	return fallbackReply, RuleFallback
}

func render(rule Rule, businessName string, settings Settings) string {
	if rule.ID == RuleGreeting {
		if settings.Greeting != "" {
			return settings.Greeting
		}
		return strings.Replace(rule.Reply, "%s", businessName, 1)
	}
	return rule.Reply
}
