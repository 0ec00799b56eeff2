package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/negocio-api/internal/application/dto"
	"github.com/jhoicas/negocio-api/internal/domain"
	"github.com/jhoicas/negocio-api/internal/domain/catalog"
	"github.com/jhoicas/negocio-api/internal/domain/entity"
	"github.com/jhoicas/negocio-api/internal/domain/repository"
	"github.com/jhoicas/negocio-api/pkg/money"
)

// ProductUseCase CRUD del catálogo. InStock es autoritativo del servidor:
// toda escritura que traiga inventario lo recalcula como inventario > 0.
type ProductUseCase struct {
	repo         repository.ProductRepository
	categoryRepo repository.ProductCategoryRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, categoryRepo repository.ProductCategoryRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, categoryRepo: categoryRepo}
}

// Create crea un producto. Si PriceDecimal viene, se convierte exacto a
// centavos y tiene prioridad; sin categoría se asigna la por defecto.
func (uc *ProductUseCase) Create(businessID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	price := in.Price
	if in.PriceDecimal != "" {
		cents, err := money.ToCents(in.PriceDecimal)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		price = cents
	}
	if in.SKU != "" {
		existing, err := uc.repo.GetByBusinessAndSKU(businessID, in.SKU)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
	}

	categoryID := in.CategoryID
	if categoryID == "" {
		def, err := uc.categoryRepo.GetDefault(businessID)
		if err != nil {
			return nil, err
		}
		if def != nil {
			categoryID = def.ID
		}
	} else {
		cat, err := uc.categoryRepo.GetByID(categoryID)
		if err != nil {
			return nil, err
		}
		if cat == nil || cat.BusinessID != businessID {
			return nil, domain.ErrNotFound
		}
	}

	now := time.Now()
	product := &entity.Product{
		ID:               uuid.New().String(),
		BusinessID:       businessID,
		Name:             in.Name,
		Description:      in.Description,
		Price:            price,
		SKU:              in.SKU,
		CategoryID:       categoryID,
		ImageURL:         in.ImageURL,
		AdditionalImages: in.AdditionalImages,
		Inventory:        in.Inventory,
		HasVariants:      in.HasVariants,
		Variants:         toVariants(in.Variants),
		Tags:             in.Tags,
		IsFeatured:       in.IsFeatured,
		IsOnSale:         in.IsOnSale,
		SalePrice:        in.SalePrice,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	product.SyncStock()

	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto del negocio; de otro negocio devuelve ErrForbidden.
func (uc *ProductUseCase) GetByID(businessID, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if product.BusinessID != businessID {
		return nil, domain.ErrForbidden
	}
	return toProductResponse(product), nil
}

// Update aplica un parche al producto. El inventario, si viene, fuerza el
// recálculo de InStock ignorando cualquier valor del cliente.
func (uc *ProductUseCase) Update(businessID, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if product.BusinessID != businessID {
		return nil, domain.ErrForbidden
	}

	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.PriceDecimal != nil {
		cents, err := money.ToCents(*in.PriceDecimal)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		product.Price = cents
	} else if in.Price != nil {
		product.Price = *in.Price
	}
	if in.SKU != nil {
		product.SKU = *in.SKU
	}
	if in.CategoryID != nil {
		cat, err := uc.categoryRepo.GetByID(*in.CategoryID)
		if err != nil {
			return nil, err
		}
		if cat == nil || cat.BusinessID != businessID {
			return nil, domain.ErrNotFound
		}
		product.CategoryID = *in.CategoryID
	}
	if in.ImageURL != nil {
		product.ImageURL = *in.ImageURL
	}
	if in.AdditionalImages != nil {
		product.AdditionalImages = in.AdditionalImages
	}
	if in.Inventory != nil {
		product.Inventory = *in.Inventory
		product.SyncStock()
	}
	if in.HasVariants != nil {
		product.HasVariants = *in.HasVariants
	}
	if in.Variants != nil {
		product.Variants = toVariants(in.Variants)
	}
	if in.Tags != nil {
		product.Tags = in.Tags
	}
	if in.IsFeatured != nil {
		product.IsFeatured = *in.IsFeatured
	}
	if in.IsOnSale != nil {
		product.IsOnSale = *in.IsOnSale
	}
	if in.SalePrice != nil {
		product.SalePrice = *in.SalePrice
	}
	product.UpdatedAt = time.Now()

	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista productos del negocio con paginación.
func (uc *ProductUseCase) List(businessID string, limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.repo.ListByBusiness(businessID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un producto del negocio.
func (uc *ProductUseCase) Delete(businessID, id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	if product.BusinessID != businessID {
		return domain.ErrForbidden
	}
	return uc.repo.Delete(id)
}

// ExpandVariants expande grupos de opciones al producto cartesiano con orden
// determinista (función pura, independiente del estado de la UI).
func (uc *ProductUseCase) ExpandVariants(in dto.VariantCombinationsRequest) *dto.VariantCombinationsResponse {
	groups := make([]catalog.OptionGroup, 0, len(in.Groups))
	for _, g := range in.Groups {
		groups = append(groups, catalog.OptionGroup{Name: g.Name, Values: g.Values})
	}
	combos := catalog.Combinations(groups)
	out := make([]map[string]string, 0, len(combos))
	for _, c := range combos {
		out = append(out, map[string]string(c))
	}
	return &dto.VariantCombinationsResponse{Combinations: out}
}

func toVariants(in []dto.VariantDTO) []entity.Variant {
	if len(in) == 0 {
		return nil
	}
	out := make([]entity.Variant, 0, len(in))
	for _, v := range in {
		out = append(out, entity.Variant{
			Options:   v.Options,
			SKU:       v.SKU,
			Price:     v.Price,
			Inventory: v.Inventory,
		})
	}
	return out
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:               p.ID,
		BusinessID:       p.BusinessID,
		Name:             p.Name,
		Description:      p.Description,
		Price:            p.Price,
		SKU:              p.SKU,
		CategoryID:       p.CategoryID,
		ImageURL:         p.ImageURL,
		AdditionalImages: p.AdditionalImages,
		Inventory:        p.Inventory,
		InStock:          p.InStock,
		HasVariants:      p.HasVariants,
		Variants:         p.Variants,
		Tags:             p.Tags,
		IsFeatured:       p.IsFeatured,
		IsOnSale:         p.IsOnSale,
		SalePrice:        p.SalePrice,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}
