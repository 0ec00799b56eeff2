package ledger

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/negocio-api/internal/application/dto"
	"github.com/jhoicas/negocio-api/internal/domain"
	"github.com/jhoicas/negocio-api/internal/domain/entity"
	"github.com/jhoicas/negocio-api/internal/domain/repository"
)

// AccountUseCase cuentas del libro. El saldo corriente nace en el inicial y lo
// mueven solo los posteos y transferencias; no se edita directo.
type AccountUseCase struct {
	repo            repository.AccountRepository
	categoryRepo    repository.AccountCategoryRepository
	transactionRepo repository.TransactionRepository
	businessRepo    repository.BusinessRepository
	statements      StatementGenerator
}

// NewAccountUseCase construye el caso de uso.
func NewAccountUseCase(
	repo repository.AccountRepository,
	categoryRepo repository.AccountCategoryRepository,
	transactionRepo repository.TransactionRepository,
	businessRepo repository.BusinessRepository,
	statements StatementGenerator,
) *AccountUseCase {
	return &AccountUseCase{
		repo:            repo,
		categoryRepo:    categoryRepo,
		transactionRepo: transactionRepo,
		businessRepo:    businessRepo,
		statements:      statements,
	}
}

// Create crea una cuenta bajo una categoría del negocio.
// CurrentBalance arranca igual a InitialBalance.
func (uc *AccountUseCase) Create(businessID string, in dto.CreateAccountRequest) (*dto.AccountResponse, error) {
	category, err := uc.categoryRepo.GetByID(in.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	if category.BusinessID != businessID {
		return nil, domain.ErrForbidden
	}

	now := time.Now()
	account := &entity.Account{
		ID:             uuid.New().String(),
		BusinessID:     businessID,
		CategoryID:     in.CategoryID,
		Name:           in.Name,
		Description:    in.Description,
		InitialBalance: in.InitialBalance,
		CurrentBalance: in.InitialBalance,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(account); err != nil {
		return nil, err
	}
	return toAccountResponse(account), nil
}

// GetByID obtiene una cuenta del negocio.
func (uc *AccountUseCase) GetByID(businessID, id string) (*dto.AccountResponse, error) {
	account, err := uc.owned(businessID, id)
	if err != nil {
		return nil, err
	}
	return toAccountResponse(account), nil
}

// List lista las cuentas del negocio.
func (uc *AccountUseCase) List(businessID string) ([]dto.AccountResponse, error) {
	list, err := uc.repo.ListByBusiness(businessID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AccountResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *toAccountResponse(a))
	}
	return items, nil
}

// Update modifica nombre/descripción/estado. Saldos no.
func (uc *AccountUseCase) Update(businessID, id string, in dto.UpdateAccountRequest) (*dto.AccountResponse, error) {
	account, err := uc.owned(businessID, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		account.Name = *in.Name
	}
	if in.Description != nil {
		account.Description = *in.Description
	}
	if in.IsActive != nil {
		account.IsActive = *in.IsActive
	}
	account.UpdatedAt = time.Now()
	if err := uc.repo.Update(account); err != nil {
		return nil, err
	}
	return toAccountResponse(account), nil
}

// Delete elimina una cuenta sin transacciones. Con posteos devuelve
// ErrHasDependents (HTTP 400) sin tocar nada.
func (uc *AccountUseCase) Delete(businessID, id string) error {
	if _, err := uc.owned(businessID, id); err != nil {
		return err
	}
	count, err := uc.transactionRepo.CountByAccount(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrHasDependents
	}
	return uc.repo.Delete(id)
}

// Statement genera el PDF del extracto de la cuenta (movimientos + saldo).
func (uc *AccountUseCase) Statement(businessID, id string) ([]byte, error) {
	account, err := uc.owned(businessID, id)
	if err != nil {
		return nil, err
	}
	business, err := uc.businessRepo.GetByID(businessID)
	if err != nil {
		return nil, err
	}
	category, err := uc.categoryRepo.GetByID(account.CategoryID)
	if err != nil {
		return nil, err
	}
	transactions, err := uc.transactionRepo.ListByAccount(id)
	if err != nil {
		return nil, err
	}
	return uc.statements.GenerateStatement(business, account, category, transactions)
}

func (uc *AccountUseCase) owned(businessID, id string) (*entity.Account, error) {
	account, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrNotFound
	}
	if account.BusinessID != businessID {
		return nil, domain.ErrForbidden
	}
	return account, nil
}

func toAccountResponse(a *entity.Account) *dto.AccountResponse {
	if a == nil {
		return nil
	}
	return &dto.AccountResponse{
		ID:             a.ID,
		BusinessID:     a.BusinessID,
		CategoryID:     a.CategoryID,
		Name:           a.Name,
		Description:    a.Description,
		InitialBalance: a.InitialBalance,
		CurrentBalance: a.CurrentBalance,
		IsActive:       a.IsActive,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}
