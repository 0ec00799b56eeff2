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

var _ repository.WebsiteRepository = (*WebsiteRepo)(nil)

// WebsiteRepo implementación del puerto WebsiteRepository sobre PostgreSQL.
type WebsiteRepo struct {
	q Querier
}

// NewWebsiteRepository construye el adaptador de persistencia para sitios.
func NewWebsiteRepository(q Querier) *WebsiteRepo {
	return &WebsiteRepo{q: q}
}

// Create persiste un nuevo sitio.
func (r *WebsiteRepo) Create(website *entity.Website) error {
	query := `
		INSERT INTO websites (id, business_id, name, domain, theme, is_published, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		website.ID, website.BusinessID, website.Name, website.Domain, website.Theme,
		website.IsPublished, website.CreatedAt, website.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert website: %w", err)
	}
	return nil
}

// GetByID obtiene un sitio por ID.
func (r *WebsiteRepo) GetByID(id string) (*entity.Website, error) {
	query := `
		SELECT id, business_id, name, domain, theme, is_published, created_at, updated_at
		FROM websites WHERE id = $1`
	var w entity.Website
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&w.ID, &w.BusinessID, &w.Name, &w.Domain, &w.Theme, &w.IsPublished, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get website: %w", err)
	}
	return &w, nil
}

// ListByBusiness lista los sitios del negocio.
func (r *WebsiteRepo) ListByBusiness(businessID string) ([]*entity.Website, error) {
	query := `
		SELECT id, business_id, name, domain, theme, is_published, created_at, updated_at
		FROM websites WHERE business_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, businessID)
	if err != nil {
		return nil, fmt.Errorf("list websites: %w", err)
	}
	defer rows.Close()
	var list []*entity.Website
	for rows.Next() {
		var w entity.Website
		if err := rows.Scan(&w.ID, &w.BusinessID, &w.Name, &w.Domain, &w.Theme, &w.IsPublished, &w.CreatedAt, &w.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan website: %w", err)
		}
		list = append(list, &w)
	}
	return list, rows.Err()
}
