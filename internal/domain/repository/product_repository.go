package repository

import "github.com/jhoicas/negocio-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByBusinessAndSKU(businessID, sku string) (*entity.Product, error)
	Update(product *entity.Product) error
	ListByBusiness(businessID string, limit, offset int) ([]*entity.Product, error)
	// ReassignCategory mueve todos los productos de una categoría a otra (mismo negocio).
	ReassignCategory(businessID, fromCategoryID, toCategoryID string) error
	Delete(id string) error
}

// ProductCategoryRepository define el puerto de persistencia para ProductCategory.
type ProductCategoryRepository interface {
	Create(category *entity.ProductCategory) error
	GetByID(id string) (*entity.ProductCategory, error)
	GetDefault(businessID string) (*entity.ProductCategory, error)
	ListByBusiness(businessID string) ([]*entity.ProductCategory, error)
	Update(category *entity.ProductCategory) error
	Delete(id string) error
}
