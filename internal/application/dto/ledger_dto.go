package dto

import "time"

// CreateAccountCategoryRequest entrada para crear una categoría contable de usuario.
type CreateAccountCategoryRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Type        string `json:"type" validate:"required,oneof=asset liability equity income expense"`
	Description string `json:"description" validate:"max=500"`
}

// UpdateAccountCategoryRequest entrada para actualizar una categoría contable.
// Las categorías de sistema rechazan cualquier cambio.
type UpdateAccountCategoryRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
}

// AccountCategoryResponse salida de una categoría contable.
type AccountCategoryResponse struct {
	ID          string    `json:"id"`
	BusinessID  string    `json:"business_id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Description string    `json:"description,omitempty"`
	IsSystem    bool      `json:"is_system"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateAccountRequest entrada para crear una cuenta del libro.
type CreateAccountRequest struct {
	CategoryID     string `json:"category_id" validate:"required"`
	Name           string `json:"name" validate:"required,min=1,max=100"`
	Description    string `json:"description" validate:"max=500"`
	InitialBalance int64  `json:"initial_balance" validate:"min=0"` // centavos
}

// UpdateAccountRequest entrada para actualizar una cuenta.
// Los saldos no se editan por esta vía; los mueven los posteos y transferencias.
type UpdateAccountRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	IsActive    *bool   `json:"is_active"`
}

// AccountResponse salida de una cuenta.
type AccountResponse struct {
	ID             string    `json:"id"`
	BusinessID     string    `json:"business_id"`
	CategoryID     string    `json:"category_id"`
	Name           string    `json:"name"`
	Description    string    `json:"description,omitempty"`
	InitialBalance int64     `json:"initial_balance"`
	CurrentBalance int64     `json:"current_balance"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// CreateTransactionRequest entrada para postear una transacción manual.
// Amount en centavos, siempre positivo; el tipo define el signo del efecto.
type CreateTransactionRequest struct {
	AccountID   string    `json:"account_id" validate:"required"`
	Category    string    `json:"category" validate:"max=100"`
	Amount      int64     `json:"amount" validate:"required,gt=0"`
	Type        string    `json:"type" validate:"required,oneof=income expense"`
	Date        time.Time `json:"date"`
	Description string    `json:"description" validate:"max=500"`
}

// UpdateTransactionRequest entrada para corregir una transacción.
type UpdateTransactionRequest struct {
	Category    *string    `json:"category" validate:"omitempty,max=100"`
	Amount      *int64     `json:"amount" validate:"omitempty,gt=0"`
	Date        *time.Time `json:"date"`
	Description *string    `json:"description" validate:"omitempty,max=500"`
}

// TransactionResponse salida de una transacción.
type TransactionResponse struct {
	ID          string    `json:"id"`
	BusinessID  string    `json:"business_id"`
	AccountID   string    `json:"account_id"`
	Category    string    `json:"category,omitempty"`
	OrderID     string    `json:"order_id,omitempty"`
	Amount      int64     `json:"amount"`
	Type        string    `json:"type"`
	Date        time.Time `json:"date"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TransactionListResponse lista paginada de transacciones.
type TransactionListResponse struct {
	Items []TransactionResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}

// CreateTransferRequest entrada para mover fondos entre dos cuentas.
type CreateTransferRequest struct {
	FromAccountID string    `json:"from_account_id" validate:"required"`
	ToAccountID   string    `json:"to_account_id" validate:"required"`
	Amount        int64     `json:"amount" validate:"required,gt=0"`
	Date          time.Time `json:"date"`
	Description   string    `json:"description" validate:"max=500"`
}

// TransferResponse salida de una transferencia.
type TransferResponse struct {
	ID            string    `json:"id"`
	BusinessID    string    `json:"business_id"`
	FromAccountID string    `json:"from_account_id"`
	ToAccountID   string    `json:"to_account_id"`
	Amount        int64     `json:"amount"`
	Date          time.Time `json:"date"`
	Description   string    `json:"description,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}
