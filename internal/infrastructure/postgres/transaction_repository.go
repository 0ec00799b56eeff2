package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/negocio-api/internal/domain/entity"
	"github.com/jhoicas/negocio-api/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo implementación del puerto TransactionRepository sobre PostgreSQL (usable con pool o tx).
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository construye el adaptador de persistencia para transacciones. Pasar pool o tx (Querier).
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

const transactionColumns = `id, business_id, account_id, category, order_id, amount, type, date, description, created_at, updated_at`

// Create persiste una transacción. Amount en centavos, siempre positivo.
func (r *TransactionRepo) Create(transaction *entity.Transaction) error {
	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		transaction.ID, transaction.BusinessID, transaction.AccountID, transaction.Category,
		transaction.OrderID, transaction.Amount, transaction.Type, transaction.Date,
		transaction.Description, transaction.CreatedAt, transaction.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// GetByID obtiene una transacción por ID.
func (r *TransactionRepo) GetByID(id string) (*entity.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1`
	var t entity.Transaction
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&t.ID, &t.BusinessID, &t.AccountID, &t.Category, &t.OrderID, &t.Amount,
		&t.Type, &t.Date, &t.Description, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	return &t, nil
}

// ListByBusiness lista transacciones por negocio con paginación, más recientes primero.
func (r *TransactionRepo) ListByBusiness(businessID string, limit, offset int) ([]*entity.Transaction, error) {
	query := `SELECT ` + transactionColumns + `
		FROM transactions WHERE business_id = $1 ORDER BY date DESC, created_at DESC LIMIT $2 OFFSET $3`
	return r.list(query, businessID, limit, offset)
}

// ListByAccount lista todas las transacciones de una cuenta en orden cronológico (extracto).
func (r *TransactionRepo) ListByAccount(accountID string) ([]*entity.Transaction, error) {
	query := `SELECT ` + transactionColumns + `
		FROM transactions WHERE account_id = $1 ORDER BY date, created_at`
	return r.list(query, accountID)
}

func (r *TransactionRepo) list(query string, args ...any) ([]*entity.Transaction, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()
	var list []*entity.Transaction
	for rows.Next() {
		var t entity.Transaction
		if err := rows.Scan(&t.ID, &t.BusinessID, &t.AccountID, &t.Category, &t.OrderID, &t.Amount,
			&t.Type, &t.Date, &t.Description, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// CountByAccount cuenta las transacciones de una cuenta (guardia de eliminación).
func (r *TransactionRepo) CountByAccount(accountID string) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM transactions WHERE account_id = $1`, accountID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count transactions: %w", err)
	}
	return n, nil
}

// Update actualiza una transacción. AccountID y Type no cambian por esta vía.
func (r *TransactionRepo) Update(transaction *entity.Transaction) error {
	query := `
		UPDATE transactions SET category = $2, amount = $3, date = $4, description = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		transaction.ID, transaction.Category, transaction.Amount, transaction.Date,
		transaction.Description, transaction.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update transaction: %w", err)
	}
	return nil
}

// Delete elimina una transacción por ID.
func (r *TransactionRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	return nil
}
