package entity

import "time"

// Estados válidos de un pedido.
const (
	OrderPending    = "pending"
	OrderProcessing = "processing"
	OrderShipped    = "shipped"
	OrderDelivered  = "delivered"
	OrderCancelled  = "cancelled"
)

// Order registro de compra de un cliente. Crear un pedido postea exactamente
// una Transaction de tipo income (amount = Total, OrderID = ID) contra la
// cuenta "Online Sales" en la misma transacción de base de datos: o se
// confirman ambos o ninguno.
type Order struct {
	ID            string
	BusinessID    string
	CustomerName  string
	CustomerEmail string
	Items         []OrderItem
	Total         int64  // centavos
	Status        string // pending, processing, shipped, delivered, cancelled
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// OrderItem una línea del pedido.
type OrderItem struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unit_price"` // centavos
}

// ValidOrderStatus valida el estado.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderPending, OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}
