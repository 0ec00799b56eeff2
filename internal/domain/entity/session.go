package entity

import "time"

// Session representa una sesión server-side de un negocio autenticado.
// El ID opaco viaja en una cookie HttpOnly; el registro vive en la base de
// datos con vencimiento (24h por defecto).
type Session struct {
	ID         string
	BusinessID string
	ExpiresAt  time.Time
	CreatedAt  time.Time
}

// Expired indica si la sesión ya venció en el instante dado.
func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
