package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/negocio-api/internal/application/dto"
	"github.com/jhoicas/negocio-api/internal/application/usecase"
	"github.com/jhoicas/negocio-api/internal/domain"
	"github.com/jhoicas/negocio-api/internal/domain/entity"
	"github.com/jhoicas/negocio-api/pkg/invite"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

const testInviteSecret = "test-secret-key-for-unit-tests"

type fakeMemberRepo struct {
	members map[string]*entity.Member
}

func (r *fakeMemberRepo) Create(m *entity.Member) error { r.members[m.ID] = m; return nil }
func (r *fakeMemberRepo) GetByID(id string) (*entity.Member, error) {
	return r.members[id], nil
}
func (r *fakeMemberRepo) GetByEmailAndBusiness(email, businessID string) (*entity.Member, error) {
	for _, m := range r.members {
		if m.Email == email && m.BusinessID == businessID {
			return m, nil
		}
	}
	return nil, nil
}
func (r *fakeMemberRepo) ListByBusiness(businessID, memberType string, limit, offset int) ([]*entity.Member, error) {
	var out []*entity.Member
	for _, m := range r.members {
		if m.BusinessID == businessID && (memberType == "" || m.Type == memberType) {
			out = append(out, m)
		}
	}
	return out, nil
}
func (r *fakeMemberRepo) Update(m *entity.Member) error { r.members[m.ID] = m; return nil }
func (r *fakeMemberRepo) Delete(id string) error        { delete(r.members, id); return nil }

func newMemberFixture() (*usecase.MemberUseCase, *fakeMemberRepo) {
	repo := &fakeMemberRepo{members: map[string]*entity.Member{}}
	uc := usecase.NewMemberUseCase(repo, usecase.InviteConfig{
		Secret:   testInviteSecret,
		Issuer:   "negocio-api-test",
		ExpHours: 72,
	})
	return uc, repo
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Create
// ──────────────────────────────────────────────────────────────────────────────

func TestMemberCreate_SinInvitacion_QuedaActivo(t *testing.T) {
	uc, _ := newMemberFixture()

	member, err := uc.Create(bizID, dto.CreateMemberRequest{
		Name:  "Carlos Ruiz",
		Email: "carlos@example.com",
		Type:  entity.MemberCustomer,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.MemberActive, member.Status)
	assert.Empty(t, member.InvitationToken)
	assert.Empty(t, member.InvitationLink)
}

// Con invite=true el miembro queda pendiente con un token firmado cuyo link
// resuelve su propio registro.
func TestMemberCreate_ConInvitacion_QuedaPendienteConToken(t *testing.T) {
	uc, _ := newMemberFixture()

	member, err := uc.Create(bizID, dto.CreateMemberRequest{
		Name:   "Carlos Ruiz",
		Email:  "carlos@example.com",
		Type:   entity.MemberEmployee,
		Invite: true,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.MemberPending, member.Status)
	require.NotEmpty(t, member.InvitationToken)
	assert.Equal(t, "/register/invite/"+member.InvitationToken, member.InvitationLink)

	memberID, businessID, err := invite.Parse(testInviteSecret, member.InvitationToken)
	require.NoError(t, err, "el token debe validar con el secret configurado")
	assert.Equal(t, member.ID, memberID)
	assert.Equal(t, bizID, businessID)
}

func TestMemberCreate_EmailDuplicado_RetornaError(t *testing.T) {
	uc, _ := newMemberFixture()
	_, err := uc.Create(bizID, dto.CreateMemberRequest{
		Name: "Carlos", Email: "carlos@example.com", Type: entity.MemberCustomer,
	})
	require.NoError(t, err)

	_, err = uc.Create(bizID, dto.CreateMemberRequest{
		Name: "Otro Carlos", Email: "carlos@example.com", Type: entity.MemberVendor,
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists,
		"el email es único dentro del negocio")
}

// El endpoint de proveedores fija el tipo en el servidor.
func TestMemberCreateVendor_TipoSiempreVendor(t *testing.T) {
	uc, _ := newMemberFixture()

	member, err := uc.CreateVendor(bizID, dto.CreateVendorRequest{
		Name:  "Distribuidora Sur",
		Email: "ventas@distrisur.co",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.MemberVendor, member.Type)
}

func TestMemberCreate_TipoInvalido_RetornaError(t *testing.T) {
	uc, _ := newMemberFixture()

	_, err := uc.Create(bizID, dto.CreateMemberRequest{
		Name: "Carlos", Email: "carlos@example.com", Type: "socio",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests del ciclo de invitación
// ──────────────────────────────────────────────────────────────────────────────

func TestInvite_ResolverYAceptar_ActivaAlMiembro(t *testing.T) {
	uc, repo := newMemberFixture()
	member, err := uc.Create(bizID, dto.CreateMemberRequest{
		Name: "Carlos", Email: "carlos@example.com", Type: entity.MemberEmployee, Invite: true,
	})
	require.NoError(t, err)

	resolved, err := uc.ResolveInvite(member.InvitationToken)
	require.NoError(t, err)
	assert.Equal(t, member.ID, resolved.ID)
	assert.Equal(t, entity.MemberPending, resolved.Status)

	accepted, err := uc.AcceptInvite(member.InvitationToken)
	require.NoError(t, err)
	assert.Equal(t, entity.MemberActive, accepted.Status)
	assert.Empty(t, accepted.InvitationToken, "aceptar consume el token")
	assert.Equal(t, entity.MemberActive, repo.members[member.ID].Status)
}

// Un token ya consumido no se puede volver a usar.
func TestInvite_TokenConsumido_NoSeReusa(t *testing.T) {
	uc, _ := newMemberFixture()
	member, err := uc.Create(bizID, dto.CreateMemberRequest{
		Name: "Carlos", Email: "carlos@example.com", Type: entity.MemberEmployee, Invite: true,
	})
	require.NoError(t, err)

	_, err = uc.AcceptInvite(member.InvitationToken)
	require.NoError(t, err)

	_, err = uc.AcceptInvite(member.InvitationToken)
	assert.ErrorIs(t, err, domain.ErrInviteNotPending)
}

func TestInvite_TokenAdulterado_EsUnauthorized(t *testing.T) {
	uc, _ := newMemberFixture()

	_, err := uc.ResolveInvite("token.invalido.aqui")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestInvite_FirmaConOtroSecret_EsUnauthorized(t *testing.T) {
	uc, _ := newMemberFixture()
	token, err := invite.Generate("otro-secret-distinto", "m1", bizID, "negocio-api-test", 72)
	require.NoError(t, err)

	_, err = uc.ResolveInvite(token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AdjustBalance
// ──────────────────────────────────────────────────────────────────────────────

func TestMemberAdjustBalance_AddYDeduct(t *testing.T) {
	uc, _ := newMemberFixture()
	member, err := uc.Create(bizID, dto.CreateMemberRequest{
		Name: "Carlos", Email: "carlos@example.com", Type: entity.MemberCustomer,
	})
	require.NoError(t, err)

	updated, err := uc.AdjustBalance(bizID, member.ID, dto.AdjustBalanceRequest{
		Op: "add", Amount: 5_000, Note: "abono",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5_000), updated.Balance)

	updated, err = uc.AdjustBalance(bizID, member.ID, dto.AdjustBalanceRequest{
		Op: "deduct", Amount: 2_000,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3_000), updated.Balance)
	assert.Len(t, updated.BalanceHistory, 2, "cada ajuste queda en el historial")
}

func TestMemberAdjustBalance_OpInvalida_RetornaError(t *testing.T) {
	uc, _ := newMemberFixture()
	member, err := uc.Create(bizID, dto.CreateMemberRequest{
		Name: "Carlos", Email: "carlos@example.com", Type: entity.MemberCustomer,
	})
	require.NoError(t, err)

	_, err = uc.AdjustBalance(bizID, member.ID, dto.AdjustBalanceRequest{
		Op: "set", Amount: 100,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
