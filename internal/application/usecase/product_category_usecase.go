package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/negocio-api/internal/application/dto"
	"github.com/jhoicas/negocio-api/internal/domain"
	"github.com/jhoicas/negocio-api/internal/domain/entity"
	"github.com/jhoicas/negocio-api/internal/domain/repository"
)

// ProductCategoryUseCase categorías del catálogo. La categoría por defecto
// ("Other", sembrada en el registro) no se puede eliminar; eliminar otra
// reasigna sus productos a la por defecto en una sola transacción.
type ProductCategoryUseCase struct {
	repo     repository.ProductCategoryRepository
	txRunner CatalogTxRunner
}

// NewProductCategoryUseCase construye el caso de uso.
func NewProductCategoryUseCase(repo repository.ProductCategoryRepository, txRunner CatalogTxRunner) *ProductCategoryUseCase {
	return &ProductCategoryUseCase{repo: repo, txRunner: txRunner}
}

// Create crea una categoría de usuario (nunca por defecto).
func (uc *ProductCategoryUseCase) Create(businessID string, in dto.CreateProductCategoryRequest) (*dto.ProductCategoryResponse, error) {
	now := time.Now()
	category := &entity.ProductCategory{
		ID:         uuid.New().String(),
		BusinessID: businessID,
		Name:       in.Name,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(category); err != nil {
		return nil, err
	}
	return toProductCategoryResponse(category), nil
}

// List lista las categorías del negocio.
func (uc *ProductCategoryUseCase) List(businessID string) ([]dto.ProductCategoryResponse, error) {
	list, err := uc.repo.ListByBusiness(businessID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductCategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toProductCategoryResponse(c))
	}
	return items, nil
}

// Update renombra una categoría del negocio.
func (uc *ProductCategoryUseCase) Update(businessID, id string, in dto.UpdateProductCategoryRequest) (*dto.ProductCategoryResponse, error) {
	category, err := uc.owned(businessID, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		category.Name = *in.Name
	}
	category.UpdatedAt = time.Now()
	if err := uc.repo.Update(category); err != nil {
		return nil, err
	}
	return toProductCategoryResponse(category), nil
}

// Delete elimina una categoría no-default: sus productos pasan a la categoría
// por defecto y la fila se borra, ambas cosas en la misma transacción.
func (uc *ProductCategoryUseCase) Delete(ctx context.Context, businessID, id string) error {
	category, err := uc.owned(businessID, id)
	if err != nil {
		return err
	}
	if category.IsDefault {
		return domain.ErrDefaultProtected
	}
	def, err := uc.repo.GetDefault(businessID)
	if err != nil {
		return err
	}
	if def == nil {
		return domain.ErrNotFound
	}
	return uc.txRunner.RunCatalog(ctx, func(
		productRepo repository.ProductRepository,
		categoryRepo repository.ProductCategoryRepository,
	) error {
		if err := productRepo.ReassignCategory(businessID, id, def.ID); err != nil {
			return err
		}
		return categoryRepo.Delete(id)
	})
}

func (uc *ProductCategoryUseCase) owned(businessID, id string) (*entity.ProductCategory, error) {
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

func toProductCategoryResponse(c *entity.ProductCategory) *dto.ProductCategoryResponse {
	if c == nil {
		return nil
	}
	return &dto.ProductCategoryResponse{
		ID:         c.ID,
		BusinessID: c.BusinessID,
		Name:       c.Name,
		IsDefault:  c.IsDefault,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}
