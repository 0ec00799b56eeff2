package orders

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/negocio-api/internal/application/dto"
	"github.com/jhoicas/negocio-api/internal/domain"
	"github.com/jhoicas/negocio-api/internal/domain/entity"
	"github.com/jhoicas/negocio-api/internal/domain/repository"
	"github.com/jhoicas/negocio-api/pkg/logger"
)

// OrderUseCase intake y gestión de pedidos. La creación es pública (la usa el
// storefront sin sesión) y postea el ingreso contable del pedido de forma
// atómica; las lecturas y el cambio de estado requieren sesión del negocio.
type OrderUseCase struct {
	repo         repository.OrderRepository
	productRepo  repository.ProductRepository
	businessRepo repository.BusinessRepository
	txRunner     TxRunner
	log          *logger.Logger
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(
	repo repository.OrderRepository,
	productRepo repository.ProductRepository,
	businessRepo repository.BusinessRepository,
	txRunner TxRunner,
	log *logger.Logger,
) *OrderUseCase {
	return &OrderUseCase{
		repo:         repo,
		productRepo:  productRepo,
		businessRepo: businessRepo,
		txRunner:     txRunner,
		log:          log,
	}
}

// Create registra un pedido entrante. Los precios unitarios se resuelven desde
// el catálogo (precio de oferta si aplica), nunca del cliente. En la misma
// transacción de base de datos se postea una Transaction income por el total
// contra la cuenta "Online Sales"; si la categoría "Sales Revenue" no existe,
// el pedido completo se rechaza sin persistir nada.
func (uc *OrderUseCase) Create(ctx context.Context, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	business, err := uc.businessRepo.GetByID(in.BusinessID)
	if err != nil {
		return nil, err
	}
	if business == nil {
		return nil, domain.ErrNotFound
	}

	items, total, err := uc.resolveItems(in.BusinessID, in.Items)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	order := &entity.Order{
		ID:            uuid.New().String(),
		BusinessID:    in.BusinessID,
		CustomerName:  in.CustomerName,
		CustomerEmail: in.CustomerEmail,
		Items:         items,
		Total:         total,
		Status:        entity.OrderPending,
		Notes:         in.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	err = uc.txRunner.RunOrder(ctx, func(
		orderRepo repository.OrderRepository,
		categoryRepo repository.AccountCategoryRepository,
		accountRepo repository.AccountRepository,
		transactionRepo repository.TransactionRepository,
	) error {
		if err := orderRepo.Create(order); err != nil {
			return err
		}

		category, err := categoryRepo.GetByName(order.BusinessID, entity.SalesRevenueCategoryName)
		if err != nil {
			return err
		}
		if category == nil {
			return domain.ErrLedgerNotConfigured
		}

		account, err := accountRepo.GetByCategoryAndName(category.ID, entity.OnlineSalesAccountName)
		if err != nil {
			return err
		}
		if account == nil {
			account = &entity.Account{
				ID:         uuid.New().String(),
				BusinessID: order.BusinessID,
				CategoryID: category.ID,
				Name:       entity.OnlineSalesAccountName,
				IsActive:   true,
				CreatedAt:  now,
				UpdatedAt:  now,
			}
			if err := accountRepo.Create(account); err != nil {
				return err
			}
		}

		transaction := &entity.Transaction{
			ID:          uuid.New().String(),
			BusinessID:  order.BusinessID,
			AccountID:   account.ID,
			Category:    "Sales",
			OrderID:     order.ID,
			Amount:      order.Total,
			Type:        entity.TransactionIncome,
			Date:        now,
			Description: "Order from " + order.CustomerName,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := transactionRepo.Create(transaction); err != nil {
			return err
		}
		return accountRepo.AdjustBalance(account.ID, transaction.BalanceDelta())
	})
	if err != nil {
		uc.log.Error().Err(err).Str("business_id", order.BusinessID).Msg("no se pudo registrar el pedido")
		return nil, err
	}

	uc.log.Info().Str("order_id", order.ID).Int64("total", order.Total).Msg("pedido registrado")
	return toOrderResponse(order), nil
}

// resolveItems valida las líneas contra el catálogo y calcula el total en
// centavos con el precio vigente de cada producto.
func (uc *OrderUseCase) resolveItems(businessID string, in []dto.OrderItemRequest) ([]entity.OrderItem, int64, error) {
	items := make([]entity.OrderItem, 0, len(in))
	var total int64
	for _, line := range in {
		product, err := uc.productRepo.GetByID(line.ProductID)
		if err != nil {
			return nil, 0, err
		}
		if product == nil || product.BusinessID != businessID {
			return nil, 0, domain.ErrNotFound
		}
		price := product.Price
		if product.IsOnSale && product.SalePrice > 0 {
			price = product.SalePrice
		}
		items = append(items, entity.OrderItem{
			ProductID: product.ID,
			Name:      product.Name,
			Quantity:  line.Quantity,
			UnitPrice: price,
		})
		total += int64(line.Quantity) * price
	}
	return items, total, nil
}

// GetByID devuelve un pedido del negocio.
func (uc *OrderUseCase) GetByID(businessID, id string) (*dto.OrderResponse, error) {
	order, err := uc.owned(businessID, id)
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// List lista pedidos del negocio con paginación.
func (uc *OrderUseCase) List(businessID string, limit, offset int) (*dto.OrderListResponse, error) {
	list, err := uc.repo.ListByBusiness(businessID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *toOrderResponse(o))
	}
	return &dto.OrderListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// UpdateStatus cambia el estado de un pedido.
func (uc *OrderUseCase) UpdateStatus(businessID, id, status string) (*dto.OrderResponse, error) {
	if !entity.ValidOrderStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	order, err := uc.owned(businessID, id)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.UpdateStatus(id, status); err != nil {
		return nil, err
	}
	order.Status = status
	order.UpdatedAt = time.Now()
	return toOrderResponse(order), nil
}

func (uc *OrderUseCase) owned(businessID, id string) (*entity.Order, error) {
	order, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if order.BusinessID != businessID {
		return nil, domain.ErrForbidden
	}
	return order, nil
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	return &dto.OrderResponse{
		ID:            o.ID,
		BusinessID:    o.BusinessID,
		CustomerName:  o.CustomerName,
		CustomerEmail: o.CustomerEmail,
		Items:         o.Items,
		Total:         o.Total,
		Status:        o.Status,
		Notes:         o.Notes,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}
