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

var _ repository.AccountCategoryRepository = (*AccountCategoryRepo)(nil)

// AccountCategoryRepo implementación del puerto AccountCategoryRepository sobre PostgreSQL.
type AccountCategoryRepo struct {
	q Querier
}

// NewAccountCategoryRepository construye el adaptador de persistencia para categorías contables.
func NewAccountCategoryRepository(q Querier) *AccountCategoryRepo {
	return &AccountCategoryRepo{q: q}
}

// Create persiste una nueva categoría contable.
func (r *AccountCategoryRepo) Create(category *entity.AccountCategory) error {
	query := `
		INSERT INTO account_categories (id, business_id, name, type, description, is_system, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		category.ID, category.BusinessID, category.Name, category.Type,
		category.Description, category.IsSystem, category.CreatedAt, category.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert account category: %w", err)
	}
	return nil
}

// GetByID obtiene una categoría contable por ID.
func (r *AccountCategoryRepo) GetByID(id string) (*entity.AccountCategory, error) {
	return r.getBy(`WHERE id = $1`, id)
}

// GetByName obtiene una categoría por nombre exacto dentro del negocio.
func (r *AccountCategoryRepo) GetByName(businessID, name string) (*entity.AccountCategory, error) {
	return r.getBy(`WHERE business_id = $1 AND name = $2`, businessID, name)
}

func (r *AccountCategoryRepo) getBy(where string, args ...any) (*entity.AccountCategory, error) {
	query := `
		SELECT id, business_id, name, type, description, is_system, created_at, updated_at
		FROM account_categories ` + where
	var c entity.AccountCategory
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&c.ID, &c.BusinessID, &c.Name, &c.Type, &c.Description, &c.IsSystem, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get account category: %w", err)
	}
	return &c, nil
}

// ListByBusiness lista las categorías contables del negocio.
func (r *AccountCategoryRepo) ListByBusiness(businessID string) ([]*entity.AccountCategory, error) {
	query := `
		SELECT id, business_id, name, type, description, is_system, created_at, updated_at
		FROM account_categories WHERE business_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, businessID)
	if err != nil {
		return nil, fmt.Errorf("list account categories: %w", err)
	}
	defer rows.Close()
	var list []*entity.AccountCategory
	for rows.Next() {
		var c entity.AccountCategory
		if err := rows.Scan(&c.ID, &c.BusinessID, &c.Name, &c.Type, &c.Description, &c.IsSystem, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan account category: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update actualiza una categoría contable. Type e IsSystem no cambian por esta vía.
func (r *AccountCategoryRepo) Update(category *entity.AccountCategory) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE account_categories SET name = $2, description = $3, updated_at = $4 WHERE id = $1`,
		category.ID, category.Name, category.Description, category.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update account category: %w", err)
	}
	return nil
}

// Delete elimina una categoría contable por ID.
func (r *AccountCategoryRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM account_categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete account category: %w", err)
	}
	return nil
}
