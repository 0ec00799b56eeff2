package orders_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/negocio-api/internal/application/dto"
	"github.com/jhoicas/negocio-api/internal/application/orders"
	"github.com/jhoicas/negocio-api/internal/domain"
	"github.com/jhoicas/negocio-api/internal/domain/entity"
	"github.com/jhoicas/negocio-api/internal/domain/repository"
	"github.com/jhoicas/negocio-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

const (
	bizID           = "00000000-0000-0000-0000-000000000001"
	salesCategoryID = "00000000-0000-0000-0000-0000000000c1"
)

type fakeOrderRepo struct {
	orders map[string]*entity.Order
}

func (r *fakeOrderRepo) Create(o *entity.Order) error { r.orders[o.ID] = o; return nil }
func (r *fakeOrderRepo) GetByID(id string) (*entity.Order, error) {
	return r.orders[id], nil
}
func (r *fakeOrderRepo) ListByBusiness(businessID string, limit, offset int) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range r.orders {
		if o.BusinessID == businessID {
			out = append(out, o)
		}
	}
	return out, nil
}
func (r *fakeOrderRepo) UpdateStatus(id, status string) error {
	o, ok := r.orders[id]
	if !ok {
		return domain.ErrNotFound
	}
	o.Status = status
	o.UpdatedAt = time.Now()
	return nil
}

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func (r *fakeProductRepo) Create(p *entity.Product) error { r.products[p.ID] = p; return nil }
func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.products[id], nil
}
func (r *fakeProductRepo) GetByBusinessAndSKU(businessID, sku string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.BusinessID == businessID && p.SKU == sku {
			return p, nil
		}
	}
	return nil, nil
}
func (r *fakeProductRepo) Update(p *entity.Product) error { r.products[p.ID] = p; return nil }
func (r *fakeProductRepo) ListByBusiness(businessID string, limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		if p.BusinessID == businessID {
			out = append(out, p)
		}
	}
	return out, nil
}
func (r *fakeProductRepo) ReassignCategory(businessID, fromCategoryID, toCategoryID string) error {
	for _, p := range r.products {
		if p.BusinessID == businessID && p.CategoryID == fromCategoryID {
			p.CategoryID = toCategoryID
		}
	}
	return nil
}
func (r *fakeProductRepo) Delete(id string) error { delete(r.products, id); return nil }

type fakeBusinessRepo struct {
	businesses map[string]*entity.Business
}

func (r *fakeBusinessRepo) Create(b *entity.Business) error { r.businesses[b.ID] = b; return nil }
func (r *fakeBusinessRepo) GetByID(id string) (*entity.Business, error) {
	return r.businesses[id], nil
}
func (r *fakeBusinessRepo) GetByUsername(username string) (*entity.Business, error) {
	for _, b := range r.businesses {
		if b.Username == username {
			return b, nil
		}
	}
	return nil, nil
}
func (r *fakeBusinessRepo) Update(b *entity.Business) error { r.businesses[b.ID] = b; return nil }

type fakeCategoryRepo struct {
	categories map[string]*entity.AccountCategory
}

func (r *fakeCategoryRepo) Create(c *entity.AccountCategory) error {
	r.categories[c.ID] = c
	return nil
}
func (r *fakeCategoryRepo) GetByID(id string) (*entity.AccountCategory, error) {
	return r.categories[id], nil
}
func (r *fakeCategoryRepo) GetByName(businessID, name string) (*entity.AccountCategory, error) {
	for _, c := range r.categories {
		if c.BusinessID == businessID && c.Name == name {
			return c, nil
		}
	}
	return nil, nil
}
func (r *fakeCategoryRepo) ListByBusiness(businessID string) ([]*entity.AccountCategory, error) {
	return nil, nil
}
func (r *fakeCategoryRepo) Update(c *entity.AccountCategory) error { return nil }
func (r *fakeCategoryRepo) Delete(id string) error                 { return nil }

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
	return nil, nil
}
func (r *fakeAccountRepo) CountByCategory(categoryID string) (int, error) { return 0, nil }
func (r *fakeAccountRepo) Update(a *entity.Account) error                 { return nil }
func (r *fakeAccountRepo) AdjustBalance(accountID string, delta int64) error {
	a, ok := r.accounts[accountID]
	if !ok {
		return domain.ErrNotFound
	}
	a.CurrentBalance += delta
	return nil
}
func (r *fakeAccountRepo) Delete(id string) error { delete(r.accounts, id); return nil }

type fakeTransactionRepo struct {
	transactions map[string]*entity.Transaction
}

func (r *fakeTransactionRepo) Create(t *entity.Transaction) error {
	r.transactions[t.ID] = t
	return nil
}
func (r *fakeTransactionRepo) GetByID(id string) (*entity.Transaction, error) {
	return r.transactions[id], nil
}
func (r *fakeTransactionRepo) ListByBusiness(businessID string, limit, offset int) ([]*entity.Transaction, error) {
	return nil, nil
}
func (r *fakeTransactionRepo) ListByAccount(accountID string) ([]*entity.Transaction, error) {
	return nil, nil
}
func (r *fakeTransactionRepo) CountByAccount(accountID string) (int, error) { return 0, nil }
func (r *fakeTransactionRepo) Update(t *entity.Transaction) error           { return nil }
func (r *fakeTransactionRepo) Delete(id string) error {
	delete(r.transactions, id)
	return nil
}

// fakeOrderTxRunner delega en los fakes y simula el rollback: si fn falla,
// restaura los mapas al estado previo.
type fakeOrderTxRunner struct {
	orderRepo       *fakeOrderRepo
	categoryRepo    *fakeCategoryRepo
	accountRepo     *fakeAccountRepo
	transactionRepo *fakeTransactionRepo
}

func cloneMap[V any](in map[string]V) map[string]V {
	out := make(map[string]V, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func (r *fakeOrderTxRunner) RunOrder(ctx context.Context, fn func(
	orderRepo repository.OrderRepository,
	categoryRepo repository.AccountCategoryRepository,
	accountRepo repository.AccountRepository,
	transactionRepo repository.TransactionRepository,
) error) error {
	orders := cloneMap(r.orderRepo.orders)
	accounts := cloneMap(r.accountRepo.accounts)
	transactions := cloneMap(r.transactionRepo.transactions)

	if err := fn(r.orderRepo, r.categoryRepo, r.accountRepo, r.transactionRepo); err != nil {
		r.orderRepo.orders = orders
		r.accountRepo.accounts = accounts
		r.transactionRepo.transactions = transactions
		return err
	}
	return nil
}

type orderFixture struct {
	uc              *orders.OrderUseCase
	orderRepo       *fakeOrderRepo
	productRepo     *fakeProductRepo
	businessRepo    *fakeBusinessRepo
	categoryRepo    *fakeCategoryRepo
	accountRepo     *fakeAccountRepo
	transactionRepo *fakeTransactionRepo
}

// newOrderFixture prepara un negocio registrado con su categoría "Sales
// Revenue" y la cuenta "Online Sales" en cero.
func newOrderFixture(t *testing.T) *orderFixture {
	t.Helper()
	orderRepo := &fakeOrderRepo{orders: map[string]*entity.Order{}}
	productRepo := &fakeProductRepo{products: map[string]*entity.Product{}}
	businessRepo := &fakeBusinessRepo{businesses: map[string]*entity.Business{}}
	categoryRepo := &fakeCategoryRepo{categories: map[string]*entity.AccountCategory{}}
	accountRepo := &fakeAccountRepo{accounts: map[string]*entity.Account{}}
	transactionRepo := &fakeTransactionRepo{transactions: map[string]*entity.Transaction{}}
	runner := &fakeOrderTxRunner{
		orderRepo:       orderRepo,
		categoryRepo:    categoryRepo,
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
	}

	businessRepo.businesses[bizID] = &entity.Business{ID: bizID, Name: "Tienda La Esquina", Username: "laesquina"}
	categoryRepo.categories[salesCategoryID] = &entity.AccountCategory{
		ID:         salesCategoryID,
		BusinessID: bizID,
		Name:       entity.SalesRevenueCategoryName,
		Type:       entity.AccountTypeIncome,
		IsSystem:   true,
	}
	accountRepo.accounts["online"] = &entity.Account{
		ID:         "online",
		BusinessID: bizID,
		CategoryID: salesCategoryID,
		Name:       entity.OnlineSalesAccountName,
		IsActive:   true,
	}

	log := logger.New(logger.Config{Env: "production", Level: "error"})
	return &orderFixture{
		uc:              orders.NewOrderUseCase(orderRepo, productRepo, businessRepo, runner, log),
		orderRepo:       orderRepo,
		productRepo:     productRepo,
		businessRepo:    businessRepo,
		categoryRepo:    categoryRepo,
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
	}
}

func (f *orderFixture) seedProduct(t *testing.T, id string, price int64, onSale bool, salePrice int64) {
	t.Helper()
	require.NoError(t, f.productRepo.Create(&entity.Product{
		ID:         id,
		BusinessID: bizID,
		Name:       "Producto " + id,
		Price:      price,
		IsOnSale:   onSale,
		SalePrice:  salePrice,
	}))
}

func orderRequest(items ...dto.OrderItemRequest) dto.CreateOrderRequest {
	return dto.CreateOrderRequest{
		BusinessID:    bizID,
		CustomerName:  "Ana Pérez",
		CustomerEmail: "ana@example.com",
		Items:         items,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Create — posteo contable atómico
// ──────────────────────────────────────────────────────────────────────────────

// El pedido queda pendiente y deja exactamente un posteo income por el total
// contra la cuenta Online Sales, con el saldo ajustado.
func TestOrderCreate_PosteaIngresoPorElTotal(t *testing.T) {
	f := newOrderFixture(t)
	f.seedProduct(t, "p1", 2_500, false, 0)
	f.seedProduct(t, "p2", 1_000, false, 0)

	order, err := f.uc.Create(context.Background(), orderRequest(
		dto.OrderItemRequest{ProductID: "p1", Quantity: 2},
		dto.OrderItemRequest{ProductID: "p2", Quantity: 3},
	))
	require.NoError(t, err)
	assert.Equal(t, entity.OrderPending, order.Status)
	assert.Equal(t, int64(8_000), order.Total, "2×2500 + 3×1000")

	require.Len(t, f.transactionRepo.transactions, 1, "debe haber exactamente un posteo")
	var tx *entity.Transaction
	for _, v := range f.transactionRepo.transactions {
		tx = v
	}
	assert.Equal(t, entity.TransactionIncome, tx.Type)
	assert.Equal(t, order.Total, tx.Amount)
	assert.Equal(t, order.ID, tx.OrderID, "el posteo queda enlazado al pedido")
	assert.Equal(t, "online", tx.AccountID)
	assert.Equal(t, "Order from Ana Pérez", tx.Description)

	assert.Equal(t, int64(8_000), f.accountRepo.accounts["online"].CurrentBalance,
		"el saldo de Online Sales debe subir por el total del pedido")
}

// Los precios se resuelven en el servidor: con oferta activa rige SalePrice.
func TestOrderCreate_UsaPrecioDeOferta(t *testing.T) {
	f := newOrderFixture(t)
	f.seedProduct(t, "p1", 5_000, true, 3_500)

	order, err := f.uc.Create(context.Background(), orderRequest(
		dto.OrderItemRequest{ProductID: "p1", Quantity: 2},
	))
	require.NoError(t, err)
	assert.Equal(t, int64(7_000), order.Total, "debe regir el precio de oferta")
	require.Len(t, order.Items, 1)
	assert.Equal(t, int64(3_500), order.Items[0].UnitPrice)
}

// Oferta marcada pero sin precio de oferta → rige el precio normal.
func TestOrderCreate_OfertaSinPrecio_UsaPrecioNormal(t *testing.T) {
	f := newOrderFixture(t)
	f.seedProduct(t, "p1", 5_000, true, 0)

	order, err := f.uc.Create(context.Background(), orderRequest(
		dto.OrderItemRequest{ProductID: "p1", Quantity: 1},
	))
	require.NoError(t, err)
	assert.Equal(t, int64(5_000), order.Total)
}

// Sin la categoría "Sales Revenue" el pedido completo se rechaza y no queda
// nada persistido.
func TestOrderCreate_SinSalesRevenue_RechazaTodo(t *testing.T) {
	f := newOrderFixture(t)
	f.seedProduct(t, "p1", 1_000, false, 0)
	delete(f.categoryRepo.categories, salesCategoryID)

	_, err := f.uc.Create(context.Background(), orderRequest(
		dto.OrderItemRequest{ProductID: "p1", Quantity: 1},
	))
	assert.ErrorIs(t, err, domain.ErrLedgerNotConfigured)

	assert.Empty(t, f.orderRepo.orders, "el pedido no debe persistirse")
	assert.Empty(t, f.transactionRepo.transactions, "no debe quedar ningún posteo")
	assert.Zero(t, f.accountRepo.accounts["online"].CurrentBalance, "el saldo no debe moverse")
}

// Si la cuenta Online Sales no existe todavía, el posteo la crea en la misma
// transacción.
func TestOrderCreate_CreaOnlineSalesSiFalta(t *testing.T) {
	f := newOrderFixture(t)
	f.seedProduct(t, "p1", 1_000, false, 0)
	delete(f.accountRepo.accounts, "online")

	_, err := f.uc.Create(context.Background(), orderRequest(
		dto.OrderItemRequest{ProductID: "p1", Quantity: 1},
	))
	require.NoError(t, err)

	created, err := f.accountRepo.GetByCategoryAndName(salesCategoryID, entity.OnlineSalesAccountName)
	require.NoError(t, err)
	require.NotNil(t, created, "la cuenta Online Sales debe crearse sobre la marcha")
	assert.Equal(t, int64(1_000), created.CurrentBalance)
}

func TestOrderCreate_NegocioInexistente_Retorna404(t *testing.T) {
	f := newOrderFixture(t)

	in := orderRequest(dto.OrderItemRequest{ProductID: "p1", Quantity: 1})
	in.BusinessID = "no-existe"
	_, err := f.uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestOrderCreate_ProductoDeOtroNegocio_Retorna404(t *testing.T) {
	f := newOrderFixture(t)
	require.NoError(t, f.productRepo.Create(&entity.Product{
		ID:         "ajeno",
		BusinessID: "otro-negocio",
		Price:      1_000,
	}))

	_, err := f.uc.Create(context.Background(), orderRequest(
		dto.OrderItemRequest{ProductID: "ajeno", Quantity: 1},
	))
	assert.ErrorIs(t, err, domain.ErrNotFound,
		"un producto de otro negocio se trata como inexistente")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests UpdateStatus
// ──────────────────────────────────────────────────────────────────────────────

func TestOrderUpdateStatus_EstadoValido(t *testing.T) {
	f := newOrderFixture(t)
	f.seedProduct(t, "p1", 1_000, false, 0)
	order, err := f.uc.Create(context.Background(), orderRequest(
		dto.OrderItemRequest{ProductID: "p1", Quantity: 1},
	))
	require.NoError(t, err)

	updated, err := f.uc.UpdateStatus(bizID, order.ID, entity.OrderShipped)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderShipped, updated.Status)
	assert.Equal(t, entity.OrderShipped, f.orderRepo.orders[order.ID].Status)
}

func TestOrderUpdateStatus_EstadoInvalido(t *testing.T) {
	f := newOrderFixture(t)

	_, err := f.uc.UpdateStatus(bizID, "cualquiera", "devuelto")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestOrderGetByID_DeOtroNegocio_EsForbidden(t *testing.T) {
	f := newOrderFixture(t)
	f.orderRepo.orders["o1"] = &entity.Order{ID: "o1", BusinessID: "otro-negocio"}

	_, err := f.uc.GetByID(bizID, "o1")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
