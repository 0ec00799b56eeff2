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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, business_id, name, description, price, sku, category_id, image_url, additional_images,
		inventory, in_stock, has_variants, variants, tags, is_featured, is_on_sale, sale_price, created_at, updated_at`

// Create persiste un nuevo producto. Los precios van en centavos (BIGINT).
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.BusinessID, product.Name, product.Description, product.Price,
		product.SKU, product.CategoryID, product.ImageURL, product.AdditionalImages,
		product.Inventory, product.InStock, product.HasVariants, variantsJSON(product.Variants),
		product.Tags, product.IsFeatured, product.IsOnSale, product.SalePrice,
		product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.getBy(`WHERE id = $1`, id)
}

// GetByBusinessAndSKU obtiene un producto por negocio y SKU.
func (r *ProductRepo) GetByBusinessAndSKU(businessID, sku string) (*entity.Product, error) {
	return r.getBy(`WHERE business_id = $1 AND sku = $2`, businessID, sku)
}

func (r *ProductRepo) getBy(where string, args ...any) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ` + where
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&p.ID, &p.BusinessID, &p.Name, &p.Description, &p.Price, &p.SKU, &p.CategoryID,
		&p.ImageURL, &p.AdditionalImages, &p.Inventory, &p.InStock, &p.HasVariants,
		&p.Variants, &p.Tags, &p.IsFeatured, &p.IsOnSale, &p.SalePrice, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// Update actualiza un producto existente.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET name = $2, description = $3, price = $4, sku = $5, category_id = $6,
			image_url = $7, additional_images = $8, inventory = $9, in_stock = $10, has_variants = $11,
			variants = $12, tags = $13, is_featured = $14, is_on_sale = $15, sale_price = $16, updated_at = $17
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Description, product.Price, product.SKU, product.CategoryID,
		product.ImageURL, product.AdditionalImages, product.Inventory, product.InStock, product.HasVariants,
		variantsJSON(product.Variants), product.Tags, product.IsFeatured, product.IsOnSale, product.SalePrice,
		product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// ListByBusiness lista productos por negocio con paginación.
func (r *ProductRepo) ListByBusiness(businessID string, limit, offset int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + `
		FROM products WHERE business_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, businessID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.BusinessID, &p.Name, &p.Description, &p.Price, &p.SKU, &p.CategoryID,
			&p.ImageURL, &p.AdditionalImages, &p.Inventory, &p.InStock, &p.HasVariants,
			&p.Variants, &p.Tags, &p.IsFeatured, &p.IsOnSale, &p.SalePrice, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// ReassignCategory mueve todos los productos de una categoría a otra del mismo negocio.
func (r *ProductRepo) ReassignCategory(businessID, fromCategoryID, toCategoryID string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET category_id = $3, updated_at = now() WHERE business_id = $1 AND category_id = $2`,
		businessID, fromCategoryID, toCategoryID,
	)
	if err != nil {
		return fmt.Errorf("reassign products: %w", err)
	}
	return nil
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

// variantsJSON evita escribir NULL en la columna JSONB cuando no hay variantes.
func variantsJSON(variants []entity.Variant) []entity.Variant {
	if variants == nil {
		return []entity.Variant{}
	}
	return variants
}
