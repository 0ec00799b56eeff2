package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/negocio-api/internal/application/dto"
	"github.com/jhoicas/negocio-api/internal/domain"
	"github.com/jhoicas/negocio-api/internal/domain/entity"
	"github.com/jhoicas/negocio-api/internal/domain/repository"
)

// TransactionUseCase posteos del libro. Cada mutación escribe la fila y ajusta
// el saldo de su cuenta en la misma transacción de base de datos; el ajuste es
// un delta SQL, así que dos posteos concurrentes sobre la misma cuenta no se
// pisan.
type TransactionUseCase struct {
	repo        repository.TransactionRepository
	accountRepo repository.AccountRepository
	txRunner    TxRunner
}

// NewTransactionUseCase construye el caso de uso.
func NewTransactionUseCase(repo repository.TransactionRepository, accountRepo repository.AccountRepository, txRunner TxRunner) *TransactionUseCase {
	return &TransactionUseCase{repo: repo, accountRepo: accountRepo, txRunner: txRunner}
}

// Create postea una transacción manual (income/expense) contra una cuenta del
// negocio y aplica el efecto al saldo.
func (uc *TransactionUseCase) Create(ctx context.Context, businessID string, in dto.CreateTransactionRequest) (*dto.TransactionResponse, error) {
	if in.Type != entity.TransactionIncome && in.Type != entity.TransactionExpense {
		return nil, domain.ErrInvalidInput
	}
	account, err := uc.accountRepo.GetByID(in.AccountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrNotFound
	}
	if account.BusinessID != businessID {
		return nil, domain.ErrForbidden
	}

	now := time.Now()
	date := in.Date
	if date.IsZero() {
		date = now
	}
	transaction := &entity.Transaction{
		ID:          uuid.New().String(),
		BusinessID:  businessID,
		AccountID:   in.AccountID,
		Category:    in.Category,
		Amount:      in.Amount,
		Type:        in.Type,
		Date:        date,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err = uc.txRunner.RunLedger(ctx, func(
		accountRepo repository.AccountRepository,
		transactionRepo repository.TransactionRepository,
	) error {
		if err := transactionRepo.Create(transaction); err != nil {
			return err
		}
		return accountRepo.AdjustBalance(transaction.AccountID, transaction.BalanceDelta())
	})
	if err != nil {
		return nil, err
	}
	return toTransactionResponse(transaction), nil
}

// List lista transacciones del negocio con paginación.
func (uc *TransactionUseCase) List(businessID string, limit, offset int) (*dto.TransactionListResponse, error) {
	list, err := uc.repo.ListByBusiness(businessID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TransactionResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *toTransactionResponse(t))
	}
	return &dto.TransactionListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update corrige una transacción. El saldo de la cuenta se ajusta por la
// diferencia entre el efecto nuevo y el viejo, en la misma transacción SQL.
func (uc *TransactionUseCase) Update(ctx context.Context, businessID, id string, in dto.UpdateTransactionRequest) (*dto.TransactionResponse, error) {
	transaction, err := uc.owned(businessID, id)
	if err != nil {
		return nil, err
	}

	oldDelta := transaction.BalanceDelta()
	if in.Category != nil {
		transaction.Category = *in.Category
	}
	if in.Amount != nil {
		transaction.Amount = *in.Amount
	}
	if in.Date != nil {
		transaction.Date = *in.Date
	}
	if in.Description != nil {
		transaction.Description = *in.Description
	}
	transaction.UpdatedAt = time.Now()

	err = uc.txRunner.RunLedger(ctx, func(
		accountRepo repository.AccountRepository,
		transactionRepo repository.TransactionRepository,
	) error {
		if err := transactionRepo.Update(transaction); err != nil {
			return err
		}
		return accountRepo.AdjustBalance(transaction.AccountID, transaction.BalanceDelta()-oldDelta)
	})
	if err != nil {
		return nil, err
	}
	return toTransactionResponse(transaction), nil
}

// Delete elimina una transacción revirtiendo su efecto sobre el saldo.
func (uc *TransactionUseCase) Delete(ctx context.Context, businessID, id string) error {
	transaction, err := uc.owned(businessID, id)
	if err != nil {
		return err
	}
	return uc.txRunner.RunLedger(ctx, func(
		accountRepo repository.AccountRepository,
		transactionRepo repository.TransactionRepository,
	) error {
		if err := transactionRepo.Delete(id); err != nil {
			return err
		}
		return accountRepo.AdjustBalance(transaction.AccountID, -transaction.BalanceDelta())
	})
}

func (uc *TransactionUseCase) owned(businessID, id string) (*entity.Transaction, error) {
	transaction, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if transaction == nil {
		return nil, domain.ErrNotFound
	}
	if transaction.BusinessID != businessID {
		return nil, domain.ErrForbidden
	}
	return transaction, nil
}

func toTransactionResponse(t *entity.Transaction) *dto.TransactionResponse {
	if t == nil {
		return nil
	}
	return &dto.TransactionResponse{
		ID:          t.ID,
		BusinessID:  t.BusinessID,
		AccountID:   t.AccountID,
		Category:    t.Category,
		OrderID:     t.OrderID,
		Amount:      t.Amount,
		Type:        t.Type,
		Date:        t.Date,
		Description: t.Description,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}
