package repository

import "github.com/jhoicas/negocio-api/internal/domain/entity"

// AccountCategoryRepository define el puerto de persistencia para AccountCategory.
type AccountCategoryRepository interface {
	Create(category *entity.AccountCategory) error
	GetByID(id string) (*entity.AccountCategory, error)
	// GetByName busca una categoría por nombre exacto dentro del negocio
	// (el posteo de pedidos resuelve "Sales Revenue" con esto).
	GetByName(businessID, name string) (*entity.AccountCategory, error)
	ListByBusiness(businessID string) ([]*entity.AccountCategory, error)
	Update(category *entity.AccountCategory) error
	Delete(id string) error
}

// AccountRepository define el puerto de persistencia para Account.
type AccountRepository interface {
	Create(account *entity.Account) error
	GetByID(id string) (*entity.Account, error)
	GetByCategoryAndName(categoryID, name string) (*entity.Account, error)
	ListByBusiness(businessID string) ([]*entity.Account, error)
	CountByCategory(categoryID string) (int, error)
	Update(account *entity.Account) error
	// AdjustBalance aplica un delta con signo al saldo corriente de forma
	// atómica (UPDATE ... SET current_balance = current_balance + delta).
	AdjustBalance(accountID string, delta int64) error
	Delete(id string) error
}

// TransactionRepository define el puerto de persistencia para Transaction.
type TransactionRepository interface {
	Create(transaction *entity.Transaction) error
	GetByID(id string) (*entity.Transaction, error)
	ListByBusiness(businessID string, limit, offset int) ([]*entity.Transaction, error)
	ListByAccount(accountID string) ([]*entity.Transaction, error)
	CountByAccount(accountID string) (int, error)
	Update(transaction *entity.Transaction) error
	Delete(id string) error
}

// TransferRepository define el puerto de persistencia para Transfer.
type TransferRepository interface {
	Create(transfer *entity.Transfer) error
	ListByBusiness(businessID string, limit, offset int) ([]*entity.Transfer, error)
}
