package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/negocio-api/internal/application/dto"
	"github.com/jhoicas/negocio-api/internal/domain"
	"github.com/jhoicas/negocio-api/internal/domain/entity"
	"github.com/jhoicas/negocio-api/internal/domain/repository"
)

// SessionConfig vida de las sesiones emitidas.
type SessionConfig struct {
	TTLHours int
}

// AuthUseCase registro, login y logout de negocios. Una sola vía de
// autenticación: comparación de hash bcrypt, nunca texto plano, con sesión
// opaca server-side en cookie.
type AuthUseCase struct {
	businessRepo repository.BusinessRepository
	sessionRepo  repository.SessionRepository
	txRunner     SeedTxRunner
	sessionCfg   SessionConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(businessRepo repository.BusinessRepository, sessionRepo repository.SessionRepository, txRunner SeedTxRunner, sessionCfg SessionConfig) *AuthUseCase {
	return &AuthUseCase{businessRepo: businessRepo, sessionRepo: sessionRepo, txRunner: txRunner, sessionCfg: sessionCfg}
}

// Register crea el negocio, siembra su plan contable de sistema (una categoría
// por tipo contable, con "Sales Revenue" -> "Online Sales" para los ingresos
// de pedidos) y la categoría de productos por defecto, todo en una
// transacción, y abre sesión. Devuelve ErrUsernameTaken si el username existe.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest, ip string) (*dto.BusinessResponse, *entity.Session, error) {
	existing, err := uc.businessRepo.GetByUsername(in.Username)
	if err != nil {
		return nil, nil, err
	}
	if existing != nil {
		return nil, nil, domain.ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, err
	}

	now := time.Now()
	business := &entity.Business{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Username:     in.Username,
		PasswordHash: string(hash),
		Email:        in.Email,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	business.AppendLogin(now, ip)

	err = uc.txRunner.RunSeed(ctx, func(
		businessRepo repository.BusinessRepository,
		categoryRepo repository.AccountCategoryRepository,
		accountRepo repository.AccountRepository,
		productCategoryRepo repository.ProductCategoryRepository,
	) error {
		if err := businessRepo.Create(business); err != nil {
			return err
		}
		salesCategoryID, err := seedChart(categoryRepo, business.ID, now)
		if err != nil {
			return err
		}
		if err := accountRepo.Create(&entity.Account{
			ID:         uuid.New().String(),
			BusinessID: business.ID,
			CategoryID: salesCategoryID,
			Name:       entity.OnlineSalesAccountName,
			IsActive:   true,
			CreatedAt:  now,
			UpdatedAt:  now,
		}); err != nil {
			return err
		}
		return productCategoryRepo.Create(&entity.ProductCategory{
			ID:         uuid.New().String(),
			BusinessID: business.ID,
			Name:       entity.DefaultProductCategoryName,
			IsDefault:  true,
			CreatedAt:  now,
			UpdatedAt:  now,
		})
	})
	if err != nil {
		return nil, nil, err
	}

	session, err := uc.openSession(business.ID)
	if err != nil {
		return nil, nil, err
	}
	return dto.ToBusinessResponse(business), session, nil
}

// seedChart crea las categorías contables de sistema y devuelve el ID de la de
// ingresos de ventas.
func seedChart(categoryRepo repository.AccountCategoryRepository, businessID string, now time.Time) (string, error) {
	seeds := []struct {
		name string
		typ  string
	}{
		{"Assets", entity.AccountTypeAsset},
		{"Liabilities", entity.AccountTypeLiability},
		{"Equity", entity.AccountTypeEquity},
		{entity.SalesRevenueCategoryName, entity.AccountTypeIncome},
		{"Operating Expenses", entity.AccountTypeExpense},
	}
	var salesID string
	for _, s := range seeds {
		cat := &entity.AccountCategory{
			ID:         uuid.New().String(),
			BusinessID: businessID,
			Name:       s.name,
			Type:       s.typ,
			IsSystem:   true,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if err := categoryRepo.Create(cat); err != nil {
			return "", err
		}
		if s.name == entity.SalesRevenueCategoryName {
			salesID = cat.ID
		}
	}
	return salesID, nil
}

// Login verifica username/password contra el hash, anota el login en el
// historial y abre una sesión nueva. Aprovecha para purgar sesiones vencidas.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest, ip string) (*dto.BusinessResponse, *entity.Session, error) {
	business, err := uc.businessRepo.GetByUsername(in.Username)
	if err != nil {
		return nil, nil, err
	}
	if business == nil {
		return nil, nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(business.PasswordHash), []byte(in.Password)); err != nil {
		return nil, nil, domain.ErrUnauthorized
	}

	now := time.Now()
	business.AppendLogin(now, ip)
	business.UpdatedAt = now
	if err := uc.businessRepo.Update(business); err != nil {
		return nil, nil, err
	}

	_ = uc.sessionRepo.DeleteExpired(now)

	session, err := uc.openSession(business.ID)
	if err != nil {
		return nil, nil, err
	}
	return dto.ToBusinessResponse(business), session, nil
}

// Logout elimina la sesión del almacén.
func (uc *AuthUseCase) Logout(sessionID string) error {
	return uc.sessionRepo.Delete(sessionID)
}

// CurrentBusiness resuelve el negocio de la sesión activa (GET /api/auth/me).
func (uc *AuthUseCase) CurrentBusiness(businessID string) (*dto.BusinessResponse, error) {
	business, err := uc.businessRepo.GetByID(businessID)
	if err != nil {
		return nil, err
	}
	if business == nil {
		return nil, domain.ErrNotFound
	}
	return dto.ToBusinessResponse(business), nil
}

func (uc *AuthUseCase) openSession(businessID string) (*entity.Session, error) {
	ttl := time.Duration(uc.sessionCfg.TTLHours) * time.Hour
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	now := time.Now()
	session := &entity.Session{
		ID:         uuid.New().String(),
		BusinessID: businessID,
		ExpiresAt:  now.Add(ttl),
		CreatedAt:  now,
	}
	if err := uc.sessionRepo.Create(session); err != nil {
		return nil, err
	}
	return session, nil
}
