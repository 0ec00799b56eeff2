package entity

import "time"

// Website un sitio/storefront asociado al negocio.
type Website struct {
	ID          string
	BusinessID  string
	Name        string
	Domain      string
	Theme       string
	IsPublished bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
