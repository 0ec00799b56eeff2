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

// TransferUseCase movimientos de fondos entre cuentas del mismo negocio.
type TransferUseCase struct {
	repo        repository.TransferRepository
	accountRepo repository.AccountRepository
	txRunner    TxRunner
}

// NewTransferUseCase construye el caso de uso.
func NewTransferUseCase(repo repository.TransferRepository, accountRepo repository.AccountRepository, txRunner TxRunner) *TransferUseCase {
	return &TransferUseCase{repo: repo, accountRepo: accountRepo, txRunner: txRunner}
}

// Create mueve fondos entre dos cuentas distintas del negocio. Las dos patas
// del saldo y el registro de la transferencia se confirman en una sola
// transacción de base de datos.
func (uc *TransferUseCase) Create(ctx context.Context, businessID string, in dto.CreateTransferRequest) (*dto.TransferResponse, error) {
	if in.FromAccountID == in.ToAccountID {
		return nil, domain.ErrInvalidInput
	}
	from, err := uc.ownedAccount(businessID, in.FromAccountID)
	if err != nil {
		return nil, err
	}
	to, err := uc.ownedAccount(businessID, in.ToAccountID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	date := in.Date
	if date.IsZero() {
		date = now
	}
	transfer := &entity.Transfer{
		ID:            uuid.New().String(),
		BusinessID:    businessID,
		FromAccountID: from.ID,
		ToAccountID:   to.ID,
		Amount:        in.Amount,
		Date:          date,
		Description:   in.Description,
		CreatedAt:     now,
	}

	err = uc.txRunner.RunTransfer(ctx, func(
		accountRepo repository.AccountRepository,
		transferRepo repository.TransferRepository,
	) error {
		if err := accountRepo.AdjustBalance(transfer.FromAccountID, -transfer.Amount); err != nil {
			return err
		}
		if err := accountRepo.AdjustBalance(transfer.ToAccountID, transfer.Amount); err != nil {
			return err
		}
		return transferRepo.Create(transfer)
	})
	if err != nil {
		return nil, err
	}
	return toTransferResponse(transfer), nil
}

// List lista transferencias del negocio con paginación.
func (uc *TransferUseCase) List(businessID string, limit, offset int) ([]dto.TransferResponse, error) {
	list, err := uc.repo.ListByBusiness(businessID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TransferResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *toTransferResponse(t))
	}
	return items, nil
}

func (uc *TransferUseCase) ownedAccount(businessID, accountID string) (*entity.Account, error) {
	account, err := uc.accountRepo.GetByID(accountID)
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

func toTransferResponse(t *entity.Transfer) *dto.TransferResponse {
	if t == nil {
		return nil
	}
	return &dto.TransferResponse{
		ID:            t.ID,
		BusinessID:    t.BusinessID,
		FromAccountID: t.FromAccountID,
		ToAccountID:   t.ToAccountID,
		Amount:        t.Amount,
		Date:          t.Date,
		Description:   t.Description,
		CreatedAt:     t.CreatedAt,
	}
}
