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

var _ repository.ProductCategoryRepository = (*ProductCategoryRepo)(nil)

// ProductCategoryRepo implementación del puerto ProductCategoryRepository sobre PostgreSQL.
type ProductCategoryRepo struct {
	q Querier
}

// NewProductCategoryRepository construye el adaptador de persistencia para categorías de productos.
func NewProductCategoryRepository(q Querier) *ProductCategoryRepo {
	return &ProductCategoryRepo{q: q}
}

// Create persiste una nueva categoría de productos.
func (r *ProductCategoryRepo) Create(category *entity.ProductCategory) error {
	query := `
		INSERT INTO product_categories (id, business_id, name, is_default, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		category.ID, category.BusinessID, category.Name, category.IsDefault,
		category.CreatedAt, category.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product category: %w", err)
	}
	return nil
}

// GetByID obtiene una categoría por ID.
func (r *ProductCategoryRepo) GetByID(id string) (*entity.ProductCategory, error) {
	return r.getBy(`WHERE id = $1`, id)
}

// GetDefault obtiene la categoría por defecto del negocio (sembrada en el registro).
func (r *ProductCategoryRepo) GetDefault(businessID string) (*entity.ProductCategory, error) {
	return r.getBy(`WHERE business_id = $1 AND is_default`, businessID)
}

func (r *ProductCategoryRepo) getBy(where string, arg any) (*entity.ProductCategory, error) {
	query := `SELECT id, business_id, name, is_default, created_at, updated_at FROM product_categories ` + where
	var c entity.ProductCategory
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&c.ID, &c.BusinessID, &c.Name, &c.IsDefault, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product category: %w", err)
	}
	return &c, nil
}

// ListByBusiness lista las categorías del negocio.
func (r *ProductCategoryRepo) ListByBusiness(businessID string) ([]*entity.ProductCategory, error) {
	query := `
		SELECT id, business_id, name, is_default, created_at, updated_at
		FROM product_categories WHERE business_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, businessID)
	if err != nil {
		return nil, fmt.Errorf("list product categories: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProductCategory
	for rows.Next() {
		var c entity.ProductCategory
		if err := rows.Scan(&c.ID, &c.BusinessID, &c.Name, &c.IsDefault, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product category: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update actualiza una categoría existente. IsDefault no cambia por esta vía.
func (r *ProductCategoryRepo) Update(category *entity.ProductCategory) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE product_categories SET name = $2, updated_at = $3 WHERE id = $1`,
		category.ID, category.Name, category.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product category: %w", err)
	}
	return nil
}

// Delete elimina una categoría por ID.
func (r *ProductCategoryRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM product_categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product category: %w", err)
	}
	return nil
}
