package orders

import (
	"context"

	"github.com/jhoicas/negocio-api/internal/domain/repository"
)

// TxRunner ejecuta la creación de un pedido dentro de una transacción
// PostgreSQL: el pedido, la resolución de la cuenta "Online Sales", el posteo
// income y el ajuste de saldo se confirman juntos o se revierten juntos.
type TxRunner interface {
	RunOrder(ctx context.Context, fn func(
		orderRepo repository.OrderRepository,
		categoryRepo repository.AccountCategoryRepository,
		accountRepo repository.AccountRepository,
		transactionRepo repository.TransactionRepository,
	) error) error
}
