package repository

import "github.com/jhoicas/negocio-api/internal/domain/entity"

// OrderRepository define el puerto de persistencia para Order (DIP).
type OrderRepository interface {
	Create(order *entity.Order) error
	GetByID(id string) (*entity.Order, error)
	ListByBusiness(businessID string, limit, offset int) ([]*entity.Order, error)
	UpdateStatus(id, status string) error
}
