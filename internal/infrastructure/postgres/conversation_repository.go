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

var _ repository.ConversationRepository = (*ConversationRepo)(nil)

// ConversationRepo implementación del puerto ConversationRepository sobre PostgreSQL.
type ConversationRepo struct {
	q Querier
}

// NewConversationRepository construye el adaptador de persistencia para conversaciones del widget.
func NewConversationRepository(q Querier) *ConversationRepo {
	return &ConversationRepo{q: q}
}

// Create persiste una conversación nueva. (negocio, clave de visitante) es único.
func (r *ConversationRepo) Create(conversation *entity.Conversation) error {
	query := `
		INSERT INTO conversations (id, business_id, customer_key, messages, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		conversation.ID, conversation.BusinessID, conversation.CustomerKey,
		messagesJSON(conversation.Messages), conversation.CreatedAt, conversation.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert conversation: %w", err)
	}
	return nil
}

// GetByID obtiene una conversación por ID.
func (r *ConversationRepo) GetByID(id string) (*entity.Conversation, error) {
	return r.getBy(`WHERE id = $1`, id)
}

// GetByBusinessAndCustomerKey obtiene la conversación de un visitante en el negocio.
func (r *ConversationRepo) GetByBusinessAndCustomerKey(businessID, customerKey string) (*entity.Conversation, error) {
	return r.getBy(`WHERE business_id = $1 AND customer_key = $2`, businessID, customerKey)
}

func (r *ConversationRepo) getBy(where string, args ...any) (*entity.Conversation, error) {
	query := `SELECT id, business_id, customer_key, messages, created_at, updated_at FROM conversations ` + where
	var c entity.Conversation
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&c.ID, &c.BusinessID, &c.CustomerKey, &c.Messages, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get conversation: %w", err)
	}
	return &c, nil
}

// ListByBusiness lista conversaciones por negocio con paginación, más recientes primero.
func (r *ConversationRepo) ListByBusiness(businessID string, limit, offset int) ([]*entity.Conversation, error) {
	query := `
		SELECT id, business_id, customer_key, messages, created_at, updated_at
		FROM conversations WHERE business_id = $1 ORDER BY updated_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, businessID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list conversations: %w", err)
	}
	defer rows.Close()
	var list []*entity.Conversation
	for rows.Next() {
		var c entity.Conversation
		if err := rows.Scan(&c.ID, &c.BusinessID, &c.CustomerKey, &c.Messages, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan conversation: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update reemplaza el historial de mensajes de la conversación.
func (r *ConversationRepo) Update(conversation *entity.Conversation) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE conversations SET messages = $2, updated_at = $3 WHERE id = $1`,
		conversation.ID, messagesJSON(conversation.Messages), conversation.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update conversation: %w", err)
	}
	return nil
}

// messagesJSON evita escribir NULL en la columna JSONB cuando la conversación está vacía.
func messagesJSON(messages []entity.Message) []entity.Message {
	if messages == nil {
		return []entity.Message{}
	}
	return messages
}
