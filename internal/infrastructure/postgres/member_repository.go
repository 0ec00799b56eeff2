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

var _ repository.MemberRepository = (*MemberRepo)(nil)

// MemberRepo implementación del puerto MemberRepository sobre PostgreSQL.
type MemberRepo struct {
	q Querier
}

// NewMemberRepository construye el adaptador de persistencia para miembros.
func NewMemberRepository(q Querier) *MemberRepo {
	return &MemberRepo{q: q}
}

const memberColumns = `id, business_id, name, email, type, status, balance, balance_history, invitation_token, created_at, updated_at`

// Create persiste un nuevo miembro. El email es único dentro del negocio.
func (r *MemberRepo) Create(member *entity.Member) error {
	query := `
		INSERT INTO members (` + memberColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		member.ID, member.BusinessID, member.Name, member.Email, member.Type, member.Status,
		member.Balance, balanceHistoryJSON(member.BalanceHistory), member.InvitationToken,
		member.CreatedAt, member.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert member: %w", err)
	}
	return nil
}

// GetByID obtiene un miembro por ID.
func (r *MemberRepo) GetByID(id string) (*entity.Member, error) {
	return r.getBy(`WHERE id = $1`, id)
}

// GetByEmailAndBusiness obtiene un miembro por email dentro del negocio.
func (r *MemberRepo) GetByEmailAndBusiness(email, businessID string) (*entity.Member, error) {
	return r.getBy(`WHERE email = $1 AND business_id = $2`, email, businessID)
}

func (r *MemberRepo) getBy(where string, args ...any) (*entity.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members ` + where
	var m entity.Member
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&m.ID, &m.BusinessID, &m.Name, &m.Email, &m.Type, &m.Status,
		&m.Balance, &m.BalanceHistory, &m.InvitationToken, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get member: %w", err)
	}
	return &m, nil
}

// ListByBusiness lista miembros por negocio con paginación; memberType vacío lista todos.
func (r *MemberRepo) ListByBusiness(businessID, memberType string, limit, offset int) ([]*entity.Member, error) {
	query := `SELECT ` + memberColumns + `
		FROM members WHERE business_id = $1 AND ($2 = '' OR type = $2)
		ORDER BY created_at DESC LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, businessID, memberType, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	defer rows.Close()
	var list []*entity.Member
	for rows.Next() {
		var m entity.Member
		if err := rows.Scan(&m.ID, &m.BusinessID, &m.Name, &m.Email, &m.Type, &m.Status,
			&m.Balance, &m.BalanceHistory, &m.InvitationToken, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan member: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// Update actualiza un miembro existente.
func (r *MemberRepo) Update(member *entity.Member) error {
	query := `
		UPDATE members SET name = $2, email = $3, type = $4, status = $5, balance = $6,
			balance_history = $7, invitation_token = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		member.ID, member.Name, member.Email, member.Type, member.Status, member.Balance,
		balanceHistoryJSON(member.BalanceHistory), member.InvitationToken, member.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update member: %w", err)
	}
	return nil
}

// Delete elimina un miembro por ID.
func (r *MemberRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM members WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete member: %w", err)
	}
	return nil
}

// balanceHistoryJSON evita escribir NULL en la columna JSONB cuando no hay ajustes.
func balanceHistoryJSON(history []entity.BalanceEntry) []entity.BalanceEntry {
	if history == nil {
		return []entity.BalanceEntry{}
	}
	return history
}
