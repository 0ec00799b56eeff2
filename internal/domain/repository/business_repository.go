package repository

import "github.com/jhoicas/negocio-api/internal/domain/entity"

// BusinessRepository define el puerto de persistencia para Business (DIP).
type BusinessRepository interface {
	Create(business *entity.Business) error
	GetByID(id string) (*entity.Business, error)
	GetByUsername(username string) (*entity.Business, error)
	Update(business *entity.Business) error
}
