package repository

import "github.com/jhoicas/negocio-api/internal/domain/entity"

// WebsiteRepository define el puerto de persistencia para Website (DIP).
type WebsiteRepository interface {
	Create(website *entity.Website) error
	GetByID(id string) (*entity.Website, error)
	ListByBusiness(businessID string) ([]*entity.Website, error)
}
