package usecase

import (
	"time"

	"github.com/jhoicas/negocio-api/internal/application/dto"
	"github.com/jhoicas/negocio-api/internal/domain"
	"github.com/jhoicas/negocio-api/internal/domain/repository"
)

// BusinessUseCase perfil del negocio autenticado. El hash de contraseña nunca
// sale en las respuestas (el mapeo a DTO lo omite siempre).
type BusinessUseCase struct {
	repo repository.BusinessRepository
}

// NewBusinessUseCase construye el caso de uso.
func NewBusinessUseCase(repo repository.BusinessRepository) *BusinessUseCase {
	return &BusinessUseCase{repo: repo}
}

// Get devuelve el perfil del negocio.
func (uc *BusinessUseCase) Get(businessID string) (*dto.BusinessResponse, error) {
	business, err := uc.repo.GetByID(businessID)
	if err != nil {
		return nil, err
	}
	if business == nil {
		return nil, domain.ErrNotFound
	}
	return dto.ToBusinessResponse(business), nil
}

// Update aplica un parche al perfil. Username y contraseña no se tocan por acá.
func (uc *BusinessUseCase) Update(businessID string, in dto.UpdateBusinessRequest) (*dto.BusinessResponse, error) {
	business, err := uc.repo.GetByID(businessID)
	if err != nil {
		return nil, err
	}
	if business == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		business.Name = *in.Name
	}
	if in.Email != nil {
		business.Email = *in.Email
	}
	if in.LogoURL != nil {
		business.LogoURL = *in.LogoURL
	}
	if len(in.ChatbotSettings) > 0 {
		business.ChatbotSettings = in.ChatbotSettings
	}
	business.UpdatedAt = time.Now()
	if err := uc.repo.Update(business); err != nil {
		return nil, err
	}
	return dto.ToBusinessResponse(business), nil
}
