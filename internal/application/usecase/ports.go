package usecase

import (
	"context"

	"github.com/jhoicas/negocio-api/internal/domain/repository"
)

// CatalogTxRunner ejecuta la eliminación de una categoría de productos y la
// reasignación de sus productos a la categoría por defecto en una transacción.
type CatalogTxRunner interface {
	RunCatalog(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		categoryRepo repository.ProductCategoryRepository,
	) error) error
}
