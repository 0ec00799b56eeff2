package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/negocio-api/internal/application/auth"
	"github.com/jhoicas/negocio-api/internal/application/dto"
	"github.com/jhoicas/negocio-api/internal/domain"
	"github.com/jhoicas/negocio-api/internal/domain/entity"
	"github.com/jhoicas/negocio-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeBusinessRepo struct {
	byID       map[string]*entity.Business
	byUsername map[string]*entity.Business
}

func newFakeBusinessRepo() *fakeBusinessRepo {
	return &fakeBusinessRepo{byID: map[string]*entity.Business{}, byUsername: map[string]*entity.Business{}}
}

func (r *fakeBusinessRepo) Create(b *entity.Business) error {
	r.byID[b.ID] = b
	r.byUsername[b.Username] = b
	return nil
}
func (r *fakeBusinessRepo) GetByID(id string) (*entity.Business, error) { return r.byID[id], nil }
func (r *fakeBusinessRepo) GetByUsername(username string) (*entity.Business, error) {
	return r.byUsername[username], nil
}
func (r *fakeBusinessRepo) Update(b *entity.Business) error {
	r.byID[b.ID] = b
	r.byUsername[b.Username] = b
	return nil
}

type fakeAccountCategoryRepo struct {
	categories map[string]*entity.AccountCategory
}

func (r *fakeAccountCategoryRepo) Create(c *entity.AccountCategory) error {
	r.categories[c.ID] = c
	return nil
}
func (r *fakeAccountCategoryRepo) GetByID(id string) (*entity.AccountCategory, error) {
	return r.categories[id], nil
}
func (r *fakeAccountCategoryRepo) GetByName(businessID, name string) (*entity.AccountCategory, error) {
	for _, c := range r.categories {
		if c.BusinessID == businessID && c.Name == name {
			return c, nil
		}
	}
	return nil, nil
}
func (r *fakeAccountCategoryRepo) ListByBusiness(businessID string) ([]*entity.AccountCategory, error) {
	var out []*entity.AccountCategory
	for _, c := range r.categories {
		if c.BusinessID == businessID {
			out = append(out, c)
		}
	}
	return out, nil
}
func (r *fakeAccountCategoryRepo) Update(c *entity.AccountCategory) error {
	r.categories[c.ID] = c
	return nil
}
func (r *fakeAccountCategoryRepo) Delete(id string) error {
	delete(r.categories, id)
	return nil
}

type fakeAccountRepo struct {
	accounts map[string]*entity.Account
}

func (r *fakeAccountRepo) Create(a *entity.Account) error { r.accounts[a.ID] = a; return nil }
func (r *fakeAccountRepo) GetByID(id string) (*entity.Account, error) {
	return r.accounts[id], nil
}
func (r *fakeAccountRepo) GetByCategoryAndName(categoryID, name string) (*entity.Account, error) {
	for _, a := range r.accounts {
		if a.CategoryID == categoryID && a.Name == name {
			return a, nil
		}
	}
	return nil, nil
}
func (r *fakeAccountRepo) ListByBusiness(businessID string) ([]*entity.Account, error) {
	var out []*entity.Account
	for _, a := range r.accounts {
		if a.BusinessID == businessID {
			out = append(out, a)
		}
	}
	return out, nil
}
func (r *fakeAccountRepo) CountByCategory(categoryID string) (int, error) {
	n := 0
	for _, a := range r.accounts {
		if a.CategoryID == categoryID {
			n++
		}
	}
	return n, nil
}
func (r *fakeAccountRepo) Update(a *entity.Account) error { r.accounts[a.ID] = a; return nil }
func (r *fakeAccountRepo) AdjustBalance(accountID string, delta int64) error {
	a, ok := r.accounts[accountID]
	if !ok {
		return domain.ErrNotFound
	}
	a.CurrentBalance += delta
	return nil
}
func (r *fakeAccountRepo) Delete(id string) error { delete(r.accounts, id); return nil }

type fakeProductCategoryRepo struct {
	categories map[string]*entity.ProductCategory
}

func (r *fakeProductCategoryRepo) Create(c *entity.ProductCategory) error {
	r.categories[c.ID] = c
	return nil
}
func (r *fakeProductCategoryRepo) GetByID(id string) (*entity.ProductCategory, error) {
	return r.categories[id], nil
}
func (r *fakeProductCategoryRepo) GetDefault(businessID string) (*entity.ProductCategory, error) {
	for _, c := range r.categories {
		if c.BusinessID == businessID && c.IsDefault {
			return c, nil
		}
	}
	return nil, nil
}
func (r *fakeProductCategoryRepo) ListByBusiness(businessID string) ([]*entity.ProductCategory, error) {
	var out []*entity.ProductCategory
	for _, c := range r.categories {
		if c.BusinessID == businessID {
			out = append(out, c)
		}
	}
	return out, nil
}
func (r *fakeProductCategoryRepo) Update(c *entity.ProductCategory) error {
	r.categories[c.ID] = c
	return nil
}
func (r *fakeProductCategoryRepo) Delete(id string) error { delete(r.categories, id); return nil }

// fakeSeedTxRunner ejecuta la función de siembra contra los fakes, sin
// transacción real.
type fakeSeedTxRunner struct {
	businessRepo        *fakeBusinessRepo
	categoryRepo        *fakeAccountCategoryRepo
	accountRepo         *fakeAccountRepo
	productCategoryRepo *fakeProductCategoryRepo
}

func (r *fakeSeedTxRunner) RunSeed(ctx context.Context, fn func(
	businessRepo repository.BusinessRepository,
	categoryRepo repository.AccountCategoryRepository,
	accountRepo repository.AccountRepository,
	productCategoryRepo repository.ProductCategoryRepository,
) error) error {
	return fn(r.businessRepo, r.categoryRepo, r.accountRepo, r.productCategoryRepo)
}

type authFixture struct {
	uc           *auth.AuthUseCase
	businessRepo *fakeBusinessRepo
	sessionRepo  *fakeSessionRepo
	categoryRepo *fakeAccountCategoryRepo
	accountRepo  *fakeAccountRepo
	productRepo  *fakeProductCategoryRepo
}

type fakeSessionRepo struct {
	sessions map[string]*entity.Session
}

func (r *fakeSessionRepo) Create(s *entity.Session) error { r.sessions[s.ID] = s; return nil }
func (r *fakeSessionRepo) GetByID(id string) (*entity.Session, error) {
	return r.sessions[id], nil
}
func (r *fakeSessionRepo) Delete(id string) error { delete(r.sessions, id); return nil }
func (r *fakeSessionRepo) DeleteExpired(now time.Time) error {
	for id, s := range r.sessions {
		if s.Expired(now) {
			delete(r.sessions, id)
		}
	}
	return nil
}

func newAuthFixture() *authFixture {
	businessRepo := newFakeBusinessRepo()
	categoryRepo := &fakeAccountCategoryRepo{categories: map[string]*entity.AccountCategory{}}
	accountRepo := &fakeAccountRepo{accounts: map[string]*entity.Account{}}
	productRepo := &fakeProductCategoryRepo{categories: map[string]*entity.ProductCategory{}}
	sessionRepo := &fakeSessionRepo{sessions: map[string]*entity.Session{}}
	runner := &fakeSeedTxRunner{
		businessRepo:        businessRepo,
		categoryRepo:        categoryRepo,
		accountRepo:         accountRepo,
		productCategoryRepo: productRepo,
	}
	return &authFixture{
		uc:           auth.NewAuthUseCase(businessRepo, sessionRepo, runner, auth.SessionConfig{TTLHours: 24}),
		businessRepo: businessRepo,
		sessionRepo:  sessionRepo,
		categoryRepo: categoryRepo,
		accountRepo:  accountRepo,
		productRepo:  productRepo,
	}
}

func registerRequest() dto.RegisterRequest {
	return dto.RegisterRequest{
		Name:     "Tienda La Esquina",
		Username: "laesquina",
		Password: "clave-muy-segura",
		Email:    "dueno@laesquina.co",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Register
// ──────────────────────────────────────────────────────────────────────────────

// El registro siembra el plan contable completo: cinco categorías de sistema
// (una por tipo), la cuenta "Online Sales" bajo "Sales Revenue" y la categoría
// de productos por defecto.
func TestRegister_SiembraPlanContableYCategoriaPorDefecto(t *testing.T) {
	f := newAuthFixture()

	business, session, err := f.uc.Register(context.Background(), registerRequest(), "203.0.113.7")
	require.NoError(t, err)
	require.NotNil(t, business)
	require.NotNil(t, session)

	categories, err := f.categoryRepo.ListByBusiness(business.ID)
	require.NoError(t, err)
	assert.Len(t, categories, 5, "deben sembrarse cinco categorías de sistema")

	types := map[string]bool{}
	for _, c := range categories {
		assert.True(t, c.IsSystem, "todas las categorías sembradas son de sistema")
		types[c.Type] = true
	}
	for _, typ := range []string{
		entity.AccountTypeAsset, entity.AccountTypeLiability, entity.AccountTypeEquity,
		entity.AccountTypeIncome, entity.AccountTypeExpense,
	} {
		assert.True(t, types[typ], "debe existir una categoría de tipo %s", typ)
	}

	sales, err := f.categoryRepo.GetByName(business.ID, entity.SalesRevenueCategoryName)
	require.NoError(t, err)
	require.NotNil(t, sales, "debe existir la categoría Sales Revenue")

	online, err := f.accountRepo.GetByCategoryAndName(sales.ID, entity.OnlineSalesAccountName)
	require.NoError(t, err)
	require.NotNil(t, online, "debe existir la cuenta Online Sales bajo Sales Revenue")
	assert.True(t, online.IsActive)
	assert.Zero(t, online.CurrentBalance, "la cuenta nace en cero")

	defaultCategory, err := f.productRepo.GetDefault(business.ID)
	require.NoError(t, err)
	require.NotNil(t, defaultCategory, "debe existir la categoría de productos por defecto")
	assert.Equal(t, entity.DefaultProductCategoryName, defaultCategory.Name)
}

// El registro abre sesión inmediatamente y deja el primer login en el historial.
func TestRegister_AbreSesionYRegistraLogin(t *testing.T) {
	f := newAuthFixture()

	business, session, err := f.uc.Register(context.Background(), registerRequest(), "203.0.113.7")
	require.NoError(t, err)

	stored, err := f.sessionRepo.GetByID(session.ID)
	require.NoError(t, err)
	require.NotNil(t, stored, "la sesión debe quedar en el almacén")
	assert.Equal(t, business.ID, stored.BusinessID)
	assert.False(t, stored.Expired(time.Now()), "la sesión recién abierta no puede estar vencida")

	saved := f.businessRepo.byUsername["laesquina"]
	require.NotNil(t, saved)
	require.Len(t, saved.LoginHistory, 1, "el registro cuenta como primer login")
	assert.Equal(t, "203.0.113.7", saved.LoginHistory[0].IP)
	assert.NotEqual(t, "clave-muy-segura", saved.PasswordHash,
		"la contraseña nunca se guarda en texto plano")
}

// Username repetido → ErrUsernameTaken sin tocar nada.
func TestRegister_UsernameDuplicado_RetornaError(t *testing.T) {
	f := newAuthFixture()
	_, _, err := f.uc.Register(context.Background(), registerRequest(), "203.0.113.7")
	require.NoError(t, err)

	_, _, err = f.uc.Register(context.Background(), registerRequest(), "203.0.113.8")
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Login / Logout
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CredencialesCorrectas_AbreSesion(t *testing.T) {
	f := newAuthFixture()
	_, _, err := f.uc.Register(context.Background(), registerRequest(), "203.0.113.7")
	require.NoError(t, err)

	business, session, err := f.uc.Login(context.Background(), dto.LoginRequest{
		Username: "laesquina",
		Password: "clave-muy-segura",
	}, "198.51.100.2")
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, "laesquina", business.Username)

	saved := f.businessRepo.byUsername["laesquina"]
	assert.Len(t, saved.LoginHistory, 2, "el login debe anotarse en el historial")
}

func TestLogin_PasswordIncorrecta_Retorna401(t *testing.T) {
	f := newAuthFixture()
	_, _, err := f.uc.Register(context.Background(), registerRequest(), "203.0.113.7")
	require.NoError(t, err)

	_, _, err = f.uc.Login(context.Background(), dto.LoginRequest{
		Username: "laesquina",
		Password: "otra-clave",
	}, "198.51.100.2")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente_Retorna401(t *testing.T) {
	f := newAuthFixture()

	_, _, err := f.uc.Login(context.Background(), dto.LoginRequest{
		Username: "nadie",
		Password: "da-igual",
	}, "198.51.100.2")
	assert.ErrorIs(t, err, domain.ErrUnauthorized,
		"un usuario inexistente responde igual que una contraseña errada")
}

func TestLogout_EliminaLaSesion(t *testing.T) {
	f := newAuthFixture()
	_, session, err := f.uc.Register(context.Background(), registerRequest(), "203.0.113.7")
	require.NoError(t, err)

	require.NoError(t, f.uc.Logout(session.ID))

	stored, err := f.sessionRepo.GetByID(session.ID)
	require.NoError(t, err)
	assert.Nil(t, stored, "tras el logout la sesión desaparece del almacén")
}
