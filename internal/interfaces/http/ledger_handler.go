package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/negocio-api/internal/application/dto"
	"github.com/jhoicas/negocio-api/internal/application/ledger"
	"github.com/jhoicas/negocio-api/pkg/validate"
)

// LedgerHandler libro contable: categorías, cuentas, transacciones y
// transferencias (protegido).
type LedgerHandler struct {
	categoryUC    *ledger.AccountCategoryUseCase
	accountUC     *ledger.AccountUseCase
	transactionUC *ledger.TransactionUseCase
	transferUC    *ledger.TransferUseCase
}

// NewLedgerHandler construye el handler.
func NewLedgerHandler(
	categoryUC *ledger.AccountCategoryUseCase,
	accountUC *ledger.AccountUseCase,
	transactionUC *ledger.TransactionUseCase,
	transferUC *ledger.TransferUseCase,
) *LedgerHandler {
	return &LedgerHandler{
		categoryUC:    categoryUC,
		accountUC:     accountUC,
		transactionUC: transactionUC,
		transferUC:    transferUC,
	}
}

// CreateCategory godoc
// @Summary      Crear categoría contable
// @Tags         ledger
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAccountCategoryRequest  true  "Datos de la categoría"
// @Success      201   {object}  dto.AccountCategoryResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/account-categories [post]
func (h *LedgerHandler) CreateCategory(c *fiber.Ctx) error {
	var in dto.CreateAccountCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := validate.Struct(in); err != nil {
		return validationFailed(c, validate.FieldErrors(err))
	}
	out, err := h.categoryUC.Create(GetBusinessID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListCategories godoc
// @Summary      Listar categorías contables
// @Tags         ledger
// @Produce      json
// @Success      200  {array}  dto.AccountCategoryResponse
// @Router       /api/account-categories [get]
func (h *LedgerHandler) ListCategories(c *fiber.Ctx) error {
	out, err := h.categoryUC.List(GetBusinessID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateCategory godoc
// @Summary      Actualizar categoría contable
// @Description  Las categorías de sistema no se modifican.
// @Tags         ledger
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la categoría"
// @Param        body  body  dto.UpdateAccountCategoryRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.AccountCategoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/account-categories/{id} [put]
func (h *LedgerHandler) UpdateCategory(c *fiber.Ctx) error {
	var in dto.UpdateAccountCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := validate.Struct(in); err != nil {
		return validationFailed(c, validate.FieldErrors(err))
	}
	out, err := h.categoryUC.Update(GetBusinessID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// DeleteCategory godoc
// @Summary      Eliminar categoría contable
// @Description  Rechaza categorías de sistema y categorías con cuentas asociadas.
// @Tags         ledger
// @Param        id  path  string  true  "ID de la categoría"
// @Success      204  "Sin contenido"
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/account-categories/{id} [delete]
func (h *LedgerHandler) DeleteCategory(c *fiber.Ctx) error {
	if err := h.categoryUC.Delete(GetBusinessID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CreateAccount godoc
// @Summary      Crear cuenta del libro
// @Tags         ledger
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAccountRequest  true  "Datos de la cuenta"
// @Success      201   {object}  dto.AccountResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/accounts [post]
func (h *LedgerHandler) CreateAccount(c *fiber.Ctx) error {
	var in dto.CreateAccountRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := validate.Struct(in); err != nil {
		return validationFailed(c, validate.FieldErrors(err))
	}
	out, err := h.accountUC.Create(GetBusinessID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetAccount godoc
// @Summary      Obtener cuenta por ID
// @Tags         ledger
// @Produce      json
// @Param        id   path  string  true  "ID de la cuenta"
// @Success      200  {object}  dto.AccountResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/accounts/{id} [get]
func (h *LedgerHandler) GetAccount(c *fiber.Ctx) error {
	out, err := h.accountUC.GetByID(GetBusinessID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListAccounts godoc
// @Summary      Listar cuentas del libro
// @Tags         ledger
// @Produce      json
// @Success      200  {array}  dto.AccountResponse
// @Router       /api/accounts [get]
func (h *LedgerHandler) ListAccounts(c *fiber.Ctx) error {
	out, err := h.accountUC.List(GetBusinessID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateAccount godoc
// @Summary      Actualizar cuenta
// @Description  Los saldos no se editan por esta vía.
// @Tags         ledger
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la cuenta"
// @Param        body  body  dto.UpdateAccountRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.AccountResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/accounts/{id} [put]
func (h *LedgerHandler) UpdateAccount(c *fiber.Ctx) error {
	var in dto.UpdateAccountRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := validate.Struct(in); err != nil {
		return validationFailed(c, validate.FieldErrors(err))
	}
	out, err := h.accountUC.Update(GetBusinessID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// DeleteAccount godoc
// @Summary      Eliminar cuenta
// @Description  Rechaza cuentas con transacciones asociadas.
// @Tags         ledger
// @Param        id  path  string  true  "ID de la cuenta"
// @Success      204  "Sin contenido"
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/accounts/{id} [delete]
func (h *LedgerHandler) DeleteAccount(c *fiber.Ctx) error {
	if err := h.accountUC.Delete(GetBusinessID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AccountStatement godoc
// @Summary      Descargar el extracto de la cuenta en PDF
// @Tags         ledger
// @Produce      application/pdf
// @Param        id  path  string  true  "ID de la cuenta"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/accounts/{id}/statement [get]
func (h *LedgerHandler) AccountStatement(c *fiber.Ctx) error {
	pdf, err := h.accountUC.Statement(GetBusinessID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="statement.pdf"`)
	return c.Send(pdf)
}

// CreateTransaction godoc
// @Summary      Postear una transacción
// @Description  Aplica el efecto al saldo de la cuenta en la misma transacción de base de datos.
// @Tags         ledger
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTransactionRequest  true  "Transacción (amount en centavos)"
// @Success      201   {object}  dto.TransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/transactions [post]
func (h *LedgerHandler) CreateTransaction(c *fiber.Ctx) error {
	var in dto.CreateTransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := validate.Struct(in); err != nil {
		return validationFailed(c, validate.FieldErrors(err))
	}
	out, err := h.transactionUC.Create(c.Context(), GetBusinessID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListTransactions godoc
// @Summary      Listar transacciones
// @Tags         ledger
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.TransactionListResponse
// @Router       /api/transactions [get]
func (h *LedgerHandler) ListTransactions(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.transactionUC.List(GetBusinessID(c), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateTransaction godoc
// @Summary      Corregir una transacción
// @Description  El saldo de la cuenta se ajusta por la diferencia entre el efecto nuevo y el viejo.
// @Tags         ledger
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la transacción"
// @Param        body  body  dto.UpdateTransactionRequest  true  "Campos a corregir"
// @Success      200   {object}  dto.TransactionResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/transactions/{id} [put]
func (h *LedgerHandler) UpdateTransaction(c *fiber.Ctx) error {
	var in dto.UpdateTransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := validate.Struct(in); err != nil {
		return validationFailed(c, validate.FieldErrors(err))
	}
	out, err := h.transactionUC.Update(c.Context(), GetBusinessID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// DeleteTransaction godoc
// @Summary      Eliminar una transacción
// @Description  Revierte el efecto sobre el saldo de su cuenta.
// @Tags         ledger
// @Param        id  path  string  true  "ID de la transacción"
// @Success      204  "Sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/transactions/{id} [delete]
func (h *LedgerHandler) DeleteTransaction(c *fiber.Ctx) error {
	if err := h.transactionUC.Delete(c.Context(), GetBusinessID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CreateTransfer godoc
// @Summary      Transferir fondos entre cuentas
// @Description  Ambas patas del saldo y el registro se confirman en una sola transacción.
// @Tags         ledger
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTransferRequest  true  "Transferencia (amount en centavos)"
// @Success      201   {object}  dto.TransferResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/transfers [post]
func (h *LedgerHandler) CreateTransfer(c *fiber.Ctx) error {
	var in dto.CreateTransferRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := validate.Struct(in); err != nil {
		return validationFailed(c, validate.FieldErrors(err))
	}
	out, err := h.transferUC.Create(c.Context(), GetBusinessID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListTransfers godoc
// @Summary      Listar transferencias
// @Tags         ledger
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {array}  dto.TransferResponse
// @Router       /api/transfers [get]
func (h *LedgerHandler) ListTransfers(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.transferUC.List(GetBusinessID(c), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
