package repository

import "github.com/jhoicas/negocio-api/internal/domain/entity"

// ConversationRepository define el puerto de persistencia para Conversation.
type ConversationRepository interface {
	Create(conversation *entity.Conversation) error
	GetByID(id string) (*entity.Conversation, error)
	GetByBusinessAndCustomerKey(businessID, customerKey string) (*entity.Conversation, error)
	ListByBusiness(businessID string, limit, offset int) ([]*entity.Conversation, error)
	Update(conversation *entity.Conversation) error
}
