package dto

import "time"

// CreateWebsiteRequest entrada para crear un sitio del negocio.
type CreateWebsiteRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Domain      string `json:"domain" validate:"max=253"`
	Theme       string `json:"theme" validate:"max=100"`
	IsPublished bool   `json:"is_published"`
}

// WebsiteResponse salida de un sitio.
type WebsiteResponse struct {
	ID          string    `json:"id"`
	BusinessID  string    `json:"business_id"`
	Name        string    `json:"name"`
	Domain      string    `json:"domain,omitempty"`
	Theme       string    `json:"theme,omitempty"`
	IsPublished bool      `json:"is_published"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
