package ledger

import (
	"context"

	"github.com/jhoicas/negocio-api/internal/domain/entity"
	"github.com/jhoicas/negocio-api/internal/domain/repository"
)

// TxRunner ejecuta mutaciones del libro dentro de una transacción PostgreSQL:
// la fila del posteo y el ajuste de saldo de su cuenta se confirman juntos o
// se revierten juntos.
type TxRunner interface {
	RunLedger(ctx context.Context, fn func(
		accountRepo repository.AccountRepository,
		transactionRepo repository.TransactionRepository,
	) error) error

	RunTransfer(ctx context.Context, fn func(
		accountRepo repository.AccountRepository,
		transferRepo repository.TransferRepository,
	) error) error
}

// StatementGenerator produce el PDF del extracto de una cuenta.
type StatementGenerator interface {
	GenerateStatement(business *entity.Business, account *entity.Account, category *entity.AccountCategory, transactions []*entity.Transaction) ([]byte, error)
}
