package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/negocio-api/internal/domain/entity"
	"github.com/jhoicas/negocio-api/internal/domain/repository"
)

var _ repository.TransferRepository = (*TransferRepo)(nil)

// TransferRepo implementación del puerto TransferRepository sobre PostgreSQL (usable con pool o tx).
type TransferRepo struct {
	q Querier
}

// NewTransferRepository construye el adaptador de persistencia para transferencias. Pasar pool o tx (Querier).
func NewTransferRepository(q Querier) *TransferRepo {
	return &TransferRepo{q: q}
}

// Create persiste una transferencia.
func (r *TransferRepo) Create(transfer *entity.Transfer) error {
	query := `
		INSERT INTO transfers (id, business_id, from_account_id, to_account_id, amount, date, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		transfer.ID, transfer.BusinessID, transfer.FromAccountID, transfer.ToAccountID,
		transfer.Amount, transfer.Date, transfer.Description, transfer.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert transfer: %w", err)
	}
	return nil
}

// ListByBusiness lista transferencias por negocio con paginación, más recientes primero.
func (r *TransferRepo) ListByBusiness(businessID string, limit, offset int) ([]*entity.Transfer, error) {
	query := `
		SELECT id, business_id, from_account_id, to_account_id, amount, date, description, created_at
		FROM transfers WHERE business_id = $1 ORDER BY date DESC, created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, businessID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list transfers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Transfer
	for rows.Next() {
		var t entity.Transfer
		if err := rows.Scan(&t.ID, &t.BusinessID, &t.FromAccountID, &t.ToAccountID,
			&t.Amount, &t.Date, &t.Description, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan transfer: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}
