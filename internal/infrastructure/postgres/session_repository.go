package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/negocio-api/internal/domain/entity"
	"github.com/jhoicas/negocio-api/internal/domain/repository"
)

var _ repository.SessionRepository = (*SessionRepo)(nil)

// SessionRepo almacén server-side de sesiones sobre PostgreSQL.
type SessionRepo struct {
	q Querier
}

// NewSessionRepository construye el adaptador de persistencia para sesiones.
func NewSessionRepository(q Querier) *SessionRepo {
	return &SessionRepo{q: q}
}

// Create persiste una sesión nueva.
func (r *SessionRepo) Create(session *entity.Session) error {
	query := `
		INSERT INTO sessions (id, business_id, expires_at, created_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query,
		session.ID, session.BusinessID, session.ExpiresAt, session.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

// GetByID obtiene una sesión por su ID opaco.
func (r *SessionRepo) GetByID(id string) (*entity.Session, error) {
	query := `SELECT id, business_id, expires_at, created_at FROM sessions WHERE id = $1`
	var s entity.Session
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.BusinessID, &s.ExpiresAt, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	return &s, nil
}

// Delete elimina una sesión (logout).
func (r *SessionRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM sessions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// DeleteExpired purga sesiones vencidas. Se invoca de forma oportunista en el login.
func (r *SessionRepo) DeleteExpired(now time.Time) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM sessions WHERE expires_at <= $1`, now)
	if err != nil {
		return fmt.Errorf("delete expired sessions: %w", err)
	}
	return nil
}
