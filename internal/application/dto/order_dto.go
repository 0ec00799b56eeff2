package dto

import (
	"time"

	"github.com/jhoicas/negocio-api/internal/domain/entity"
)

// OrderItemRequest una línea del pedido entrante. El precio unitario se
// resuelve en el servidor desde el catálogo; el cliente no lo fija.
type OrderItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

// CreateOrderRequest entrada pública de intake de pedidos. BusinessID viene en
// el cuerpo porque el endpoint lo usa el storefront, sin sesión.
type CreateOrderRequest struct {
	BusinessID    string             `json:"business_id" validate:"required"`
	CustomerName  string             `json:"customer_name" validate:"required,min=1,max=200"`
	CustomerEmail string             `json:"customer_email" validate:"required,email"`
	Items         []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
	Notes         string             `json:"notes" validate:"max=1000"`
}

// UpdateOrderStatusRequest cambio de estado del pedido.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending processing shipped delivered cancelled"`
}

// OrderResponse salida de un pedido.
type OrderResponse struct {
	ID            string             `json:"id"`
	BusinessID    string             `json:"business_id"`
	CustomerName  string             `json:"customer_name"`
	CustomerEmail string             `json:"customer_email"`
	Items         []entity.OrderItem `json:"items"`
	Total         int64              `json:"total"` // centavos
	Status        string             `json:"status"`
	Notes         string             `json:"notes,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

// OrderListResponse lista paginada de pedidos.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
