package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/negocio-api/internal/application/dto"
	"github.com/jhoicas/negocio-api/internal/domain/entity"
	"github.com/jhoicas/negocio-api/internal/domain/repository"
)

// WebsiteUseCase sitios/storefronts del negocio.
type WebsiteUseCase struct {
	repo repository.WebsiteRepository
}

// NewWebsiteUseCase construye el caso de uso.
func NewWebsiteUseCase(repo repository.WebsiteRepository) *WebsiteUseCase {
	return &WebsiteUseCase{repo: repo}
}

// Create crea un sitio.
func (uc *WebsiteUseCase) Create(businessID string, in dto.CreateWebsiteRequest) (*dto.WebsiteResponse, error) {
	now := time.Now()
	website := &entity.Website{
		ID:          uuid.New().String(),
		BusinessID:  businessID,
		Name:        in.Name,
		Domain:      in.Domain,
		Theme:       in.Theme,
		IsPublished: in.IsPublished,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(website); err != nil {
		return nil, err
	}
	return toWebsiteResponse(website), nil
}

// List lista los sitios del negocio.
func (uc *WebsiteUseCase) List(businessID string) ([]dto.WebsiteResponse, error) {
	list, err := uc.repo.ListByBusiness(businessID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.WebsiteResponse, 0, len(list))
	for _, w := range list {
		items = append(items, *toWebsiteResponse(w))
	}
	return items, nil
}

func toWebsiteResponse(w *entity.Website) *dto.WebsiteResponse {
	if w == nil {
		return nil
	}
	return &dto.WebsiteResponse{
		ID:          w.ID,
		BusinessID:  w.BusinessID,
		Name:        w.Name,
		Domain:      w.Domain,
		Theme:       w.Theme,
		IsPublished: w.IsPublished,
		CreatedAt:   w.CreatedAt,
		UpdatedAt:   w.UpdatedAt,
	}
}
