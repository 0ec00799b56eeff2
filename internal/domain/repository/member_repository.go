package repository

import "github.com/jhoicas/negocio-api/internal/domain/entity"

// MemberRepository define el puerto de persistencia para Member (DIP).
type MemberRepository interface {
	Create(member *entity.Member) error
	GetByID(id string) (*entity.Member, error)
	GetByEmailAndBusiness(email, businessID string) (*entity.Member, error)
	ListByBusiness(businessID, memberType string, limit, offset int) ([]*entity.Member, error)
	Update(member *entity.Member) error
	Delete(id string) error
}
