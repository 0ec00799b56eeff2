package entity

import (
	"encoding/json"
	"time"
)

// Business representa el tenant raíz del sistema: el negocio que se registra,
// inicia sesión y es dueño de todos los demás registros (por BusinessID).
// Nunca se elimina físicamente.
type Business struct {
	ID              string
	Name            string
	Username        string // único en todo el sistema
	PasswordHash    string // bcrypt, nunca plano después de persistir
	Email           string
	LogoURL         string
	ChatbotSettings json.RawMessage // configuración libre del widget (saludo, fallback, color...)
	LoginHistory    []LoginEntry    // append-only, acotado a las últimas entradas
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// LoginEntry una entrada del historial de inicios de sesión del negocio.
type LoginEntry struct {
	At time.Time `json:"at"`
	IP string    `json:"ip"`
}

// maxLoginHistory limita el historial persistido.
const maxLoginHistory = 50

// AppendLogin agrega una entrada al historial recortando las más antiguas.
func (b *Business) AppendLogin(at time.Time, ip string) {
	b.LoginHistory = append(b.LoginHistory, LoginEntry{At: at, IP: ip})
	if len(b.LoginHistory) > maxLoginHistory {
		b.LoginHistory = b.LoginHistory[len(b.LoginHistory)-maxLoginHistory:]
	}
}
