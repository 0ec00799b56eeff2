package dto

import (
	"time"

	"github.com/jhoicas/negocio-api/internal/domain/entity"
)

// CreateMemberRequest entrada para crear un miembro (cliente/proveedor/empleado).
// Con Invite=true el miembro queda pendiente y se genera un link de invitación.
type CreateMemberRequest struct {
	Name   string `json:"name" validate:"required,min=1,max=200"`
	Email  string `json:"email" validate:"required,email"`
	Type   string `json:"type" validate:"required,oneof=customer vendor employee"`
	Invite bool   `json:"invite"`
}

// CreateVendorRequest entrada del endpoint de proveedores. No lleva Type: el
// servidor lo fija a vendor siempre, aunque el cliente intente forzarlo.
type CreateVendorRequest struct {
	Name   string `json:"name" validate:"required,min=1,max=200"`
	Email  string `json:"email" validate:"required,email"`
	Invite bool   `json:"invite"`
}

// UpdateMemberRequest entrada para actualizar un miembro.
type UpdateMemberRequest struct {
	Name   *string `json:"name" validate:"omitempty,min=1,max=200"`
	Email  *string `json:"email" validate:"omitempty,email"`
	Status *string `json:"status" validate:"omitempty,oneof=pending active inactive"`
}

// AdjustBalanceRequest ajuste ad-hoc del balance del miembro (append-only).
type AdjustBalanceRequest struct {
	Op     string `json:"op" validate:"required,oneof=add deduct"`
	Amount int64  `json:"amount" validate:"required,gt=0"` // centavos
	Note   string `json:"note" validate:"max=300"`
}

// MemberResponse salida de un miembro. InvitationToken solo aparece mientras
// el miembro sigue pendiente.
type MemberResponse struct {
	ID              string               `json:"id"`
	BusinessID      string               `json:"business_id"`
	Name            string               `json:"name"`
	Email           string               `json:"email"`
	Type            string               `json:"type"`
	Status          string               `json:"status"`
	Balance         int64                `json:"balance"`
	BalanceHistory  []entity.BalanceEntry `json:"balance_history,omitempty"`
	InvitationToken string               `json:"invitation_token,omitempty"`
	InvitationLink  string               `json:"invitation_link,omitempty"`
	CreatedAt       time.Time            `json:"created_at"`
	UpdatedAt       time.Time            `json:"updated_at"`
}

// MemberListResponse lista paginada de miembros.
type MemberListResponse struct {
	Items []MemberResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
