package ledger

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/negocio-api/internal/application/dto"
	"github.com/jhoicas/negocio-api/internal/domain"
	"github.com/jhoicas/negocio-api/internal/domain/entity"
	"github.com/jhoicas/negocio-api/internal/domain/repository"
)

// AccountCategoryUseCase categorías contables. Las sembradas (isSystem) son
// inmutables y no eliminables; las de usuario solo se eliminan sin cuentas
// que las referencien.
type AccountCategoryUseCase struct {
	repo        repository.AccountCategoryRepository
	accountRepo repository.AccountRepository
}

// NewAccountCategoryUseCase construye el caso de uso.
func NewAccountCategoryUseCase(repo repository.AccountCategoryRepository, accountRepo repository.AccountRepository) *AccountCategoryUseCase {
	return &AccountCategoryUseCase{repo: repo, accountRepo: accountRepo}
}

// Create crea una categoría de usuario (IsSystem siempre false por esta vía).
func (uc *AccountCategoryUseCase) Create(businessID string, in dto.CreateAccountCategoryRequest) (*dto.AccountCategoryResponse, error) {
	if !entity.ValidAccountType(in.Type) {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByName(businessID, in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	category := &entity.AccountCategory{
		ID:          uuid.New().String(),
		BusinessID:  businessID,
		Name:        in.Name,
		Type:        in.Type,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(category); err != nil {
		return nil, err
	}
	return toAccountCategoryResponse(category), nil
}

// List lista las categorías contables del negocio.
func (uc *AccountCategoryUseCase) List(businessID string) ([]dto.AccountCategoryResponse, error) {
	list, err := uc.repo.ListByBusiness(businessID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AccountCategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toAccountCategoryResponse(c))
	}
	return items, nil
}

// Update modifica nombre/descripción. Las categorías de sistema no se tocan.
func (uc *AccountCategoryUseCase) Update(businessID, id string, in dto.UpdateAccountCategoryRequest) (*dto.AccountCategoryResponse, error) {
	category, err := uc.owned(businessID, id)
	if err != nil {
		return nil, err
	}
	if category.IsSystem {
		return nil, domain.ErrSystemProtected
	}
	if in.Name != nil {
		category.Name = *in.Name
	}
	if in.Description != nil {
		category.Description = *in.Description
	}
	category.UpdatedAt = time.Now()
	if err := uc.repo.Update(category); err != nil {
		return nil, err
	}
	return toAccountCategoryResponse(category), nil
}

// Delete elimina una categoría de usuario sin cuentas. Con cuentas asociadas
// devuelve ErrHasDependents (HTTP 400) sin tocar nada.
func (uc *AccountCategoryUseCase) Delete(businessID, id string) error {
	category, err := uc.owned(businessID, id)
	if err != nil {
		return err
	}
	if category.IsSystem {
		return domain.ErrSystemProtected
	}
	count, err := uc.accountRepo.CountByCategory(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrHasDependents
	}
	return uc.repo.Delete(id)
}

func (uc *AccountCategoryUseCase) owned(businessID, id string) (*entity.AccountCategory, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	if category.BusinessID != businessID {
		return nil, domain.ErrForbidden
	}
	return category, nil
}

func toAccountCategoryResponse(c *entity.AccountCategory) *dto.AccountCategoryResponse {
	if c == nil {
		return nil
	}
	return &dto.AccountCategoryResponse{
		ID:          c.ID,
		BusinessID:  c.BusinessID,
		Name:        c.Name,
		Type:        c.Type,
		Description: c.Description,
		IsSystem:    c.IsSystem,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
