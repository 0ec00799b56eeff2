package auth

import (
	"context"

	"github.com/jhoicas/negocio-api/internal/domain/repository"
)

// SeedTxRunner ejecuta el registro de un negocio y la siembra de su plan
// contable y catálogo en una sola transacción: negocio, categorías de sistema,
// cuenta "Online Sales" y categoría de productos por defecto, o nada.
type SeedTxRunner interface {
	RunSeed(ctx context.Context, fn func(
		businessRepo repository.BusinessRepository,
		categoryRepo repository.AccountCategoryRepository,
		accountRepo repository.AccountRepository,
		productCategoryRepo repository.ProductCategoryRepository,
	) error) error
}
