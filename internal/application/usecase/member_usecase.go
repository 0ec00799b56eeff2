package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/negocio-api/internal/application/dto"
	"github.com/jhoicas/negocio-api/internal/domain"
	"github.com/jhoicas/negocio-api/internal/domain/entity"
	"github.com/jhoicas/negocio-api/internal/domain/repository"
	"github.com/jhoicas/negocio-api/pkg/invite"
)

// InviteConfig configuración de los tokens de invitación.
type InviteConfig struct {
	Secret   string
	Issuer   string
	ExpHours int
}

// MemberUseCase miembros del negocio (clientes, proveedores, empleados).
// Los miembros no tienen credenciales: un miembro invitado queda pendiente y
// su link (/register/invite/:token) resuelve el registro para activarlo.
type MemberUseCase struct {
	repo      repository.MemberRepository
	inviteCfg InviteConfig
}

// NewMemberUseCase construye el caso de uso.
func NewMemberUseCase(repo repository.MemberRepository, inviteCfg InviteConfig) *MemberUseCase {
	return &MemberUseCase{repo: repo, inviteCfg: inviteCfg}
}

// Create crea un miembro. Con Invite=true queda pendiente con token firmado.
func (uc *MemberUseCase) Create(businessID string, in dto.CreateMemberRequest) (*dto.MemberResponse, error) {
	return uc.create(businessID, in.Name, in.Email, in.Type, in.Invite)
}

// CreateVendor crea un proveedor. El tipo lo fija el servidor: aunque el
// cliente mande otro, siempre es vendor.
func (uc *MemberUseCase) CreateVendor(businessID string, in dto.CreateVendorRequest) (*dto.MemberResponse, error) {
	return uc.create(businessID, in.Name, in.Email, entity.MemberVendor, in.Invite)
}

func (uc *MemberUseCase) create(businessID, name, email, memberType string, invited bool) (*dto.MemberResponse, error) {
	if !entity.ValidMemberType(memberType) {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByEmailAndBusiness(email, businessID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	now := time.Now()
	member := &entity.Member{
		ID:         uuid.New().String(),
		BusinessID: businessID,
		Name:       name,
		Email:      email,
		Type:       memberType,
		Status:     entity.MemberActive,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if invited {
		token, err := invite.Generate(uc.inviteCfg.Secret, member.ID, businessID, uc.inviteCfg.Issuer, uc.inviteCfg.ExpHours)
		if err != nil {
			return nil, err
		}
		member.Status = entity.MemberPending
		member.InvitationToken = token
	}
	if err := uc.repo.Create(member); err != nil {
		return nil, err
	}
	return toMemberResponse(member), nil
}

// GetByID obtiene un miembro del negocio.
func (uc *MemberUseCase) GetByID(businessID, id string) (*dto.MemberResponse, error) {
	member, err := uc.owned(businessID, id)
	if err != nil {
		return nil, err
	}
	return toMemberResponse(member), nil
}

// List lista miembros, opcionalmente filtrados por tipo.
func (uc *MemberUseCase) List(businessID, memberType string, limit, offset int) (*dto.MemberListResponse, error) {
	if memberType != "" && !entity.ValidMemberType(memberType) {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.repo.ListByBusiness(businessID, memberType, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MemberResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toMemberResponse(m))
	}
	return &dto.MemberListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update aplica un parche al miembro. El tipo no cambia después de creado.
func (uc *MemberUseCase) Update(businessID, id string, in dto.UpdateMemberRequest) (*dto.MemberResponse, error) {
	member, err := uc.owned(businessID, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		member.Name = *in.Name
	}
	if in.Email != nil {
		member.Email = *in.Email
	}
	if in.Status != nil {
		member.Status = *in.Status
	}
	member.UpdatedAt = time.Now()
	if err := uc.repo.Update(member); err != nil {
		return nil, err
	}
	return toMemberResponse(member), nil
}

// Delete elimina un miembro del negocio.
func (uc *MemberUseCase) Delete(businessID, id string) error {
	if _, err := uc.owned(businessID, id); err != nil {
		return err
	}
	return uc.repo.Delete(id)
}

// AdjustBalance aplica un ajuste add/deduct y lo anota en el historial
// append-only del miembro.
func (uc *MemberUseCase) AdjustBalance(businessID, id string, in dto.AdjustBalanceRequest) (*dto.MemberResponse, error) {
	member, err := uc.owned(businessID, id)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	if !member.ApplyBalance(in.Op, in.Amount, in.Note, now) {
		return nil, domain.ErrInvalidInput
	}
	member.UpdatedAt = now
	if err := uc.repo.Update(member); err != nil {
		return nil, err
	}
	return toMemberResponse(member), nil
}

// ResolveInvite valida el token y devuelve el miembro pendiente que referencia.
func (uc *MemberUseCase) ResolveInvite(token string) (*dto.MemberResponse, error) {
	memberID, businessID, err := invite.Parse(uc.inviteCfg.Secret, token)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	member, err := uc.repo.GetByID(memberID)
	if err != nil {
		return nil, err
	}
	if member == nil || member.BusinessID != businessID {
		return nil, domain.ErrNotFound
	}
	if member.Status != entity.MemberPending {
		return nil, domain.ErrInviteNotPending
	}
	return toMemberResponse(member), nil
}

// AcceptInvite activa al miembro pendiente y consume el token.
func (uc *MemberUseCase) AcceptInvite(token string) (*dto.MemberResponse, error) {
	memberID, businessID, err := invite.Parse(uc.inviteCfg.Secret, token)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	member, err := uc.repo.GetByID(memberID)
	if err != nil {
		return nil, err
	}
	if member == nil || member.BusinessID != businessID {
		return nil, domain.ErrNotFound
	}
	if member.Status != entity.MemberPending {
		return nil, domain.ErrInviteNotPending
	}
	member.Status = entity.MemberActive
	member.InvitationToken = ""
	member.UpdatedAt = time.Now()
	if err := uc.repo.Update(member); err != nil {
		return nil, err
	}
	return toMemberResponse(member), nil
}

func (uc *MemberUseCase) owned(businessID, id string) (*entity.Member, error) {
	member, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, domain.ErrNotFound
	}
	if member.BusinessID != businessID {
		return nil, domain.ErrForbidden
	}
	return member, nil
}

func toMemberResponse(m *entity.Member) *dto.MemberResponse {
	if m == nil {
		return nil
	}
	out := &dto.MemberResponse{
		ID:              m.ID,
		BusinessID:      m.BusinessID,
		Name:            m.Name,
		Email:           m.Email,
		Type:            m.Type,
		Status:          m.Status,
		Balance:         m.Balance,
		BalanceHistory:  m.BalanceHistory,
		InvitationToken: m.InvitationToken,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
	if m.InvitationToken != "" {
		out.InvitationLink = "/register/invite/" + m.InvitationToken
	}
	return out
}
