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

var _ repository.AccountRepository = (*AccountRepo)(nil)

// AccountRepo implementación del puerto AccountRepository sobre PostgreSQL (usable con pool o tx).
type AccountRepo struct {
	q Querier
}

// NewAccountRepository construye el adaptador de persistencia para cuentas. Pasar pool o tx (Querier).
func NewAccountRepository(q Querier) *AccountRepo {
	return &AccountRepo{q: q}
}

// Create persiste una nueva cuenta. Los saldos van en centavos (BIGINT).
func (r *AccountRepo) Create(account *entity.Account) error {
	query := `
		INSERT INTO accounts (id, business_id, category_id, name, description, initial_balance, current_balance, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		account.ID, account.BusinessID, account.CategoryID, account.Name, account.Description,
		account.InitialBalance, account.CurrentBalance, account.IsActive, account.CreatedAt, account.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert account: %w", err)
	}
	return nil
}

// GetByID obtiene una cuenta por ID.
func (r *AccountRepo) GetByID(id string) (*entity.Account, error) {
	return r.getBy(`WHERE id = $1`, id)
}

// GetByCategoryAndName obtiene una cuenta por categoría y nombre exacto.
func (r *AccountRepo) GetByCategoryAndName(categoryID, name string) (*entity.Account, error) {
	return r.getBy(`WHERE category_id = $1 AND name = $2`, categoryID, name)
}

func (r *AccountRepo) getBy(where string, args ...any) (*entity.Account, error) {
	query := `
		SELECT id, business_id, category_id, name, description, initial_balance, current_balance, is_active, created_at, updated_at
		FROM accounts ` + where
	var a entity.Account
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&a.ID, &a.BusinessID, &a.CategoryID, &a.Name, &a.Description,
		&a.InitialBalance, &a.CurrentBalance, &a.IsActive, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get account: %w", err)
	}
	return &a, nil
}

// ListByBusiness lista las cuentas del negocio.
func (r *AccountRepo) ListByBusiness(businessID string) ([]*entity.Account, error) {
	query := `
		SELECT id, business_id, category_id, name, description, initial_balance, current_balance, is_active, created_at, updated_at
		FROM accounts WHERE business_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, businessID)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Account
	for rows.Next() {
		var a entity.Account
		if err := rows.Scan(&a.ID, &a.BusinessID, &a.CategoryID, &a.Name, &a.Description,
			&a.InitialBalance, &a.CurrentBalance, &a.IsActive, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// CountByCategory cuenta las cuentas asociadas a una categoría (guardia de eliminación).
func (r *AccountRepo) CountByCategory(categoryID string) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM accounts WHERE category_id = $1`, categoryID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count accounts: %w", err)
	}
	return n, nil
}

// Update actualiza una cuenta existente. Los saldos no cambian por esta vía.
func (r *AccountRepo) Update(account *entity.Account) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE accounts SET name = $2, description = $3, is_active = $4, updated_at = $5 WHERE id = $1`,
		account.ID, account.Name, account.Description, account.IsActive, account.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update account: %w", err)
	}
	return nil
}

// AdjustBalance aplica un delta con signo al saldo corriente. El UPDATE es
// relativo (current_balance + delta), así que posteos concurrentes sobre la
// misma cuenta no se pierden.
func (r *AccountRepo) AdjustBalance(accountID string, delta int64) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE accounts SET current_balance = current_balance + $2, updated_at = now() WHERE id = $1`,
		accountID, delta,
	)
	if err != nil {
		return fmt.Errorf("adjust balance: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una cuenta por ID.
func (r *AccountRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM accounts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete account: %w", err)
	}
	return nil
}
