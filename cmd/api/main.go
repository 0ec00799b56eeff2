package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/negocio-api/internal/application/auth"
	"github.com/jhoicas/negocio-api/internal/application/chat"
	"github.com/jhoicas/negocio-api/internal/application/ledger"
	"github.com/jhoicas/negocio-api/internal/application/orders"
	"github.com/jhoicas/negocio-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/negocio-api/internal/infrastructure/pdf"
	"github.com/jhoicas/negocio-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/negocio-api/internal/interfaces/http"
	"github.com/jhoicas/negocio-api/pkg/config"
	"github.com/jhoicas/negocio-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	businessRepo := postgres.NewBusinessRepository(pool)
	sessionRepo := postgres.NewSessionRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	productCategoryRepo := postgres.NewProductCategoryRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	accountCategoryRepo := postgres.NewAccountCategoryRepository(pool)
	accountRepo := postgres.NewAccountRepository(pool)
	transactionRepo := postgres.NewTransactionRepository(pool)
	transferRepo := postgres.NewTransferRepository(pool)
	memberRepo := postgres.NewMemberRepository(pool)
	websiteRepo := postgres.NewWebsiteRepository(pool)
	conversationRepo := postgres.NewConversationRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(businessRepo, sessionRepo, txRunner, auth.SessionConfig{
		TTLHours: cfg.Session.TTLHours,
	})
	businessUC := usecase.NewBusinessUseCase(businessRepo)
	productUC := usecase.NewProductUseCase(productRepo, productCategoryRepo)
	productCategoryUC := usecase.NewProductCategoryUseCase(productCategoryRepo, txRunner)
	memberUC := usecase.NewMemberUseCase(memberRepo, usecase.InviteConfig{
		Secret:   cfg.Invite.Secret,
		Issuer:   cfg.Invite.Issuer,
		ExpHours: cfg.Invite.ExpHours,
	})
	websiteUC := usecase.NewWebsiteUseCase(websiteRepo)
	orderUC := orders.NewOrderUseCase(orderRepo, productRepo, businessRepo, txRunner, log)

	// PDF: extracto de cuenta
	statementGenerator := infrapdf.NewMarotoStatementGenerator()
	accountCategoryUC := ledger.NewAccountCategoryUseCase(accountCategoryRepo, accountRepo)
	accountUC := ledger.NewAccountUseCase(accountRepo, accountCategoryRepo, transactionRepo, businessRepo, statementGenerator)
	transactionUC := ledger.NewTransactionUseCase(transactionRepo, accountRepo, txRunner)
	transferUC := ledger.NewTransferUseCase(transferRepo, accountRepo, txRunner)

	chatUC := chat.NewChatUseCase(conversationRepo, businessRepo, cfg.App.PublicBaseURL)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Negocio API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:            authUC,
		BusinessUC:        businessUC,
		ProductUC:         productUC,
		ProductCategoryUC: productCategoryUC,
		MemberUC:          memberUC,
		WebsiteUC:         websiteUC,
		OrderUC:           orderUC,
		AccountCategoryUC: accountCategoryUC,
		AccountUC:         accountUC,
		TransactionUC:     transactionUC,
		TransferUC:        transferUC,
		ChatUC:            chatUC,
		SessionRepo:       sessionRepo,
		SessionCfg:        cfg.Session,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
