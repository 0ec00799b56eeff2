package entity

import "time"

// Tipos contables válidos para AccountCategory.
const (
	AccountTypeAsset     = "asset"
	AccountTypeLiability = "liability"
	AccountTypeEquity    = "equity"
	AccountTypeIncome    = "income"
	AccountTypeExpense   = "expense"
)

// Nombres sembrados al registrar un negocio. El intake de pedidos publica su
// ingreso contra la cuenta "Online Sales" de la categoría "Sales Revenue".
const (
	SalesRevenueCategoryName = "Sales Revenue"
	OnlineSalesAccountName   = "Online Sales"
)

// AccountCategory clasifica cuentas del libro por tipo contable.
// Las categorías de sistema se siembran en el registro y son inmutables y no
// eliminables; las de usuario solo se eliminan sin cuentas asociadas.
type AccountCategory struct {
	ID          string
	BusinessID  string
	Name        string
	Type        string // asset, liability, equity, income, expense
	Description string
	IsSystem    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ValidAccountType valida el tipo contable.
func ValidAccountType(t string) bool {
	switch t {
	case AccountTypeAsset, AccountTypeLiability, AccountTypeEquity, AccountTypeIncome, AccountTypeExpense:
		return true
	}
	return false
}

// Account un balde del libro contable con saldo corriente en centavos.
// CurrentBalance arranca en InitialBalance y se ajusta de forma atómica con
// cada posteo o transferencia (delta aplicado en la misma transacción SQL que
// el registro). Solo se elimina sin transacciones asociadas.
type Account struct {
	ID             string
	BusinessID     string
	CategoryID     string
	Name           string
	Description    string
	InitialBalance int64 // centavos
	CurrentBalance int64 // centavos
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Tipos de Transaction.
const (
	TransactionIncome   = "income"
	TransactionExpense  = "expense"
	TransactionTransfer = "transfer"
)

// Transaction un posteo contra una cuenta. Amount siempre positivo; el signo
// del efecto sobre el saldo lo determina Type.
type Transaction struct {
	ID          string
	BusinessID  string
	AccountID   string
	Category    string // etiqueta libre
	OrderID     string // vacío si no proviene de un pedido
	Amount      int64  // centavos, > 0
	Type        string // income, expense, transfer
	Date        time.Time
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// BalanceDelta efecto del posteo sobre el saldo de su cuenta (centavos con signo).
func (t Transaction) BalanceDelta() int64 {
	switch t.Type {
	case TransactionExpense:
		return -t.Amount
	case TransactionIncome:
		return t.Amount
	}
	// Los posteos tipo transfer se escriben desde el flujo de Transfer,
	// que mueve los saldos de ambas cuentas por su cuenta.
	return 0
}

// Transfer movimiento de fondos entre dos cuentas del mismo negocio.
// Las dos patas del saldo y el registro se confirman en una sola transacción.
type Transfer struct {
	ID            string
	BusinessID    string
	FromAccountID string
	ToAccountID   string
	Amount        int64 // centavos, > 0
	Date          time.Time
	Description   string
	CreatedAt     time.Time
}
