package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/negocio-api/internal/domain"
	"github.com/jhoicas/negocio-api/internal/domain/entity"
	"github.com/jhoicas/negocio-api/internal/domain/repository"
)

var _ repository.BusinessRepository = (*BusinessRepo)(nil)

// BusinessRepo implementación del puerto BusinessRepository sobre PostgreSQL (usable con pool o tx).
type BusinessRepo struct {
	q Querier
}

// NewBusinessRepository construye el adaptador de persistencia para negocios. Pasar pool o tx (Querier).
func NewBusinessRepository(q Querier) *BusinessRepo {
	return &BusinessRepo{q: q}
}

// Create persiste un nuevo negocio. El username es único a nivel sistema.
func (r *BusinessRepo) Create(business *entity.Business) error {
	query := `
		INSERT INTO businesses (id, name, username, password_hash, email, logo_url, chatbot_settings, login_history, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, COALESCE($7, '{}'::jsonb), $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		business.ID, business.Name, business.Username, business.PasswordHash, business.Email,
		business.LogoURL, business.ChatbotSettings, loginHistoryJSON(business.LoginHistory),
		business.CreatedAt, business.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert business: %w", err)
	}
	return nil
}

// GetByID obtiene un negocio por ID.
func (r *BusinessRepo) GetByID(id string) (*entity.Business, error) {
	return r.getBy(`WHERE id = $1`, id)
}

// GetByUsername obtiene un negocio por username (login).
func (r *BusinessRepo) GetByUsername(username string) (*entity.Business, error) {
	return r.getBy(`WHERE username = $1`, username)
}

func (r *BusinessRepo) getBy(where string, arg any) (*entity.Business, error) {
	query := `
		SELECT id, name, username, password_hash, email, logo_url, chatbot_settings, login_history, created_at, updated_at
		FROM businesses ` + where
	var b entity.Business
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&b.ID, &b.Name, &b.Username, &b.PasswordHash, &b.Email, &b.LogoURL,
		&b.ChatbotSettings, &b.LoginHistory, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get business: %w", err)
	}
	return &b, nil
}

// Update actualiza un negocio existente. Username y PasswordHash no cambian por esta vía.
func (r *BusinessRepo) Update(business *entity.Business) error {
	query := `
		UPDATE businesses SET name = $2, email = $3, logo_url = $4, chatbot_settings = COALESCE($5, '{}'::jsonb), login_history = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		business.ID, business.Name, business.Email, business.LogoURL,
		business.ChatbotSettings, loginHistoryJSON(business.LoginHistory), business.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update business: %w", err)
	}
	return nil
}

// loginHistoryJSON evita escribir NULL en la columna JSONB cuando el historial está vacío.
func loginHistoryJSON(history []entity.LoginEntry) []entity.LoginEntry {
	if history == nil {
		return []entity.LoginEntry{}
	}
	return history
}
