package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/negocio-api/internal/application/auth"
	"github.com/jhoicas/negocio-api/internal/application/ledger"
	"github.com/jhoicas/negocio-api/internal/application/orders"
	"github.com/jhoicas/negocio-api/internal/application/usecase"
	"github.com/jhoicas/negocio-api/internal/domain/repository"
)

var _ auth.SeedTxRunner = (*TxRunner)(nil)
var _ usecase.CatalogTxRunner = (*TxRunner)(nil)
var _ ledger.TxRunner = (*TxRunner)(nil)
var _ orders.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL. Cada método
// ata los repos que su flujo necesita a la misma tx: o confirman todos los
// cambios o ninguno.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunSeed registro de negocio + siembra del plan contable y catálogo.
func (r *TxRunner) RunSeed(ctx context.Context, fn func(
	businessRepo repository.BusinessRepository,
	categoryRepo repository.AccountCategoryRepository,
	accountRepo repository.AccountRepository,
	productCategoryRepo repository.ProductCategoryRepository,
) error) error {
	return r.run(ctx, func(q Querier) error {
		return fn(
			NewBusinessRepository(q),
			NewAccountCategoryRepository(q),
			NewAccountRepository(q),
			NewProductCategoryRepository(q),
		)
	})
}

// RunCatalog reasignación de productos + eliminación de su categoría.
func (r *TxRunner) RunCatalog(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	categoryRepo repository.ProductCategoryRepository,
) error) error {
	return r.run(ctx, func(q Querier) error {
		return fn(NewProductRepository(q), NewProductCategoryRepository(q))
	})
}

// RunLedger posteo de transacción + ajuste de saldo de su cuenta.
func (r *TxRunner) RunLedger(ctx context.Context, fn func(
	accountRepo repository.AccountRepository,
	transactionRepo repository.TransactionRepository,
) error) error {
	return r.run(ctx, func(q Querier) error {
		return fn(NewAccountRepository(q), NewTransactionRepository(q))
	})
}

// RunTransfer dos patas de saldo + registro de la transferencia.
func (r *TxRunner) RunTransfer(ctx context.Context, fn func(
	accountRepo repository.AccountRepository,
	transferRepo repository.TransferRepository,
) error) error {
	return r.run(ctx, func(q Querier) error {
		return fn(NewAccountRepository(q), NewTransferRepository(q))
	})
}

// RunOrder pedido + resolución de cuenta de ventas + posteo income + saldo.
func (r *TxRunner) RunOrder(ctx context.Context, fn func(
	orderRepo repository.OrderRepository,
	categoryRepo repository.AccountCategoryRepository,
	accountRepo repository.AccountRepository,
	transactionRepo repository.TransactionRepository,
) error) error {
	return r.run(ctx, func(q Querier) error {
		return fn(
			NewOrderRepository(q),
			NewAccountCategoryRepository(q),
			NewAccountRepository(q),
			NewTransactionRepository(q),
		)
	})
}

func (r *TxRunner) run(ctx context.Context, fn func(q Querier) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
