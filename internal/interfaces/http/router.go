package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/negocio-api/internal/application/auth"
	"github.com/jhoicas/negocio-api/internal/application/chat"
	"github.com/jhoicas/negocio-api/internal/application/ledger"
	"github.com/jhoicas/negocio-api/internal/application/orders"
	"github.com/jhoicas/negocio-api/internal/application/usecase"
	"github.com/jhoicas/negocio-api/internal/domain/repository"
	"github.com/jhoicas/negocio-api/pkg/config"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC            *auth.AuthUseCase
	BusinessUC        *usecase.BusinessUseCase
	ProductUC         *usecase.ProductUseCase
	ProductCategoryUC *usecase.ProductCategoryUseCase
	MemberUC          *usecase.MemberUseCase
	WebsiteUC         *usecase.WebsiteUseCase
	OrderUC           *orders.OrderUseCase
	AccountCategoryUC *ledger.AccountCategoryUseCase
	AccountUC         *ledger.AccountUseCase
	TransactionUC     *ledger.TransactionUseCase
	TransferUC        *ledger.TransferUseCase
	ChatUC            *chat.ChatUseCase
	SessionRepo       repository.SessionRepository
	SessionCfg        config.SessionConfig
}

// Router registra las rutas de la API. Lo público (registro, login,
// invitaciones, intake de pedidos y widget de chat) va antes del middleware de
// sesión; el resto lo exige.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC, deps.SessionCfg)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Invitaciones (público): el invitado aún no tiene sesión
	memberHandler := NewMemberHandler(deps.MemberUC)
	invite := app.Group("/register/invite")
	invite.Get("/:token", memberHandler.ResolveInvite)
	invite.Post("/:token/accept", memberHandler.AcceptInvite)

	// Intake de pedidos (público): lo usa el storefront
	orderHandler := NewOrderHandler(deps.OrderUC)
	api.Post("/orders", orderHandler.Create)

	// Widget de chat (público)
	chatbotHandler := NewChatbotHandler(deps.ChatUC)
	chatbot := api.Group("/chatbot")
	chatbot.Post("/:businessId/chat", chatbotHandler.Chat)
	chatbot.Get("/widget/:businessId", chatbotHandler.Widget)

	// Rutas protegidas (requieren cookie de sesión válida)
	protected := api.Group("/", SessionMiddleware(deps.SessionRepo, deps.SessionCfg.CookieName))

	authProtected := protected.Group("/auth")
	authProtected.Post("/logout", authHandler.Logout)
	authProtected.Get("/me", authHandler.Me)

	businessHandler := NewBusinessHandler(deps.BusinessUC)
	business := protected.Group("/business")
	business.Get("/", businessHandler.Get)
	business.Put("/", businessHandler.Update)

	productHandler := NewProductHandler(deps.ProductUC)
	products := protected.Group("/products")
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Post("/variant-combinations", productHandler.ExpandVariants)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	productCategoryHandler := NewProductCategoryHandler(deps.ProductCategoryUC)
	productCategories := protected.Group("/product-categories")
	productCategories.Post("/", productCategoryHandler.Create)
	productCategories.Get("/", productCategoryHandler.List)
	productCategories.Put("/:id", productCategoryHandler.Update)
	productCategories.Delete("/:id", productCategoryHandler.Delete)

	ordersGroup := protected.Group("/orders")
	ordersGroup.Get("/", orderHandler.List)
	ordersGroup.Get("/:id", orderHandler.GetByID)
	ordersGroup.Put("/:id/status", orderHandler.UpdateStatus)

	ledgerHandler := NewLedgerHandler(deps.AccountCategoryUC, deps.AccountUC, deps.TransactionUC, deps.TransferUC)
	accountCategories := protected.Group("/account-categories")
	accountCategories.Post("/", ledgerHandler.CreateCategory)
	accountCategories.Get("/", ledgerHandler.ListCategories)
	accountCategories.Put("/:id", ledgerHandler.UpdateCategory)
	accountCategories.Delete("/:id", ledgerHandler.DeleteCategory)

	accounts := protected.Group("/accounts")
	accounts.Post("/", ledgerHandler.CreateAccount)
	accounts.Get("/", ledgerHandler.ListAccounts)
	accounts.Get("/:id", ledgerHandler.GetAccount)
	accounts.Put("/:id", ledgerHandler.UpdateAccount)
	accounts.Delete("/:id", ledgerHandler.DeleteAccount)
	accounts.Get("/:id/statement", ledgerHandler.AccountStatement)

	transactions := protected.Group("/transactions")
	transactions.Post("/", ledgerHandler.CreateTransaction)
	transactions.Get("/", ledgerHandler.ListTransactions)
	transactions.Put("/:id", ledgerHandler.UpdateTransaction)
	transactions.Delete("/:id", ledgerHandler.DeleteTransaction)

	transfers := protected.Group("/transfers")
	transfers.Post("/", ledgerHandler.CreateTransfer)
	transfers.Get("/", ledgerHandler.ListTransfers)

	members := protected.Group("/members")
	members.Post("/", memberHandler.Create)
	members.Get("/", memberHandler.List)
	members.Get("/:id", memberHandler.GetByID)
	members.Put("/:id", memberHandler.Update)
	members.Delete("/:id", memberHandler.Delete)
	members.Post("/:id/balance", memberHandler.AdjustBalance)

	protected.Post("/vendors", memberHandler.CreateVendor)

	websiteHandler := NewWebsiteHandler(deps.WebsiteUC)
	websites := protected.Group("/websites")
	websites.Post("/", websiteHandler.Create)
	websites.Get("/", websiteHandler.List)

	conversations := protected.Group("/conversations")
	conversations.Post("/", chatbotHandler.CreateConversation)
	conversations.Get("/", chatbotHandler.ListConversations)
	conversations.Get("/:id", chatbotHandler.GetConversation)
	conversations.Post("/:id/messages", chatbotHandler.AppendMessage)
}
