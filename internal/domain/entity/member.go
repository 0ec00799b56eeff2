package entity

import "time"

// Tipos de Member.
const (
	MemberCustomer = "customer"
	MemberVendor   = "vendor"
	MemberEmployee = "employee"
)

// Estados de Member.
const (
	MemberPending  = "pending"
	MemberActive   = "active"
	MemberInactive = "inactive"
)

// Member un perfil no-credencial del negocio: cliente, proveedor o empleado.
// Los miembros no inician sesión; un miembro pendiente se activa resolviendo
// su token de invitación. El balance y su historial registran ajustes ad-hoc
// (append-only), no un libro contable.
type Member struct {
	ID              string
	BusinessID      string
	Name            string
	Email           string
	Type            string // customer, vendor, employee
	Status          string // pending, active, inactive
	Balance         int64  // centavos
	BalanceHistory  []BalanceEntry
	InvitationToken string // vacío una vez activado
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Operaciones de ajuste de balance.
const (
	BalanceAdd    = "add"
	BalanceDeduct = "deduct"
)

// BalanceEntry una entrada del historial de ajustes de balance.
type BalanceEntry struct {
	Op     string    `json:"op"` // add, deduct
	Amount int64     `json:"amount"`
	Note   string    `json:"note,omitempty"`
	At     time.Time `json:"at"`
}

// ValidMemberType valida el tipo de miembro.
func ValidMemberType(t string) bool {
	switch t {
	case MemberCustomer, MemberVendor, MemberEmployee:
		return true
	}
	return false
}

// ApplyBalance aplica un ajuste y lo anota en el historial.
// Devuelve false si la operación no es add/deduct.
func (m *Member) ApplyBalance(op string, amount int64, note string, at time.Time) bool {
	switch op {
	case BalanceAdd:
		m.Balance += amount
	case BalanceDeduct:
		m.Balance -= amount
	default:
		return false
	}
	m.BalanceHistory = append(m.BalanceHistory, BalanceEntry{Op: op, Amount: amount, Note: note, At: at})
	return true
}
