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

	appanalytics "github.com/Misa55555/stockpro-api/internal/application/analytics"
	"github.com/Misa55555/stockpro-api/internal/application/auth"
	"github.com/Misa55555/stockpro-api/internal/application/catalog"
	"github.com/Misa55555/stockpro-api/internal/application/finance"
	appregister "github.com/Misa55555/stockpro-api/internal/application/register"
	"github.com/Misa55555/stockpro-api/internal/application/sales"
	"github.com/Misa55555/stockpro-api/internal/infrastructure/excel"
	"github.com/Misa55555/stockpro-api/internal/infrastructure/postgres"
	httpRouter "github.com/Misa55555/stockpro-api/internal/interfaces/http"
	"github.com/Misa55555/stockpro-api/pkg/config"
	"github.com/Misa55555/stockpro-api/pkg/logger"
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

	userRepo := postgres.NewUserRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	batchRepo := postgres.NewBatchRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	brandRepo := postgres.NewBrandRepository(pool)
	paymentRepo := postgres.NewPaymentMethodRepository(pool)
	sessionRepo := postgres.NewRegisterSessionRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	expenseCategoryRepo := postgres.NewExpenseCategoryRepository(pool)
	expenseRepo := postgres.NewExpenseRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	catalogUC := catalog.NewUseCase(productRepo, batchRepo, categoryRepo, brandRepo, paymentRepo)
	recordSaleUC := sales.NewRecordSaleUseCase(txRunner, paymentRepo)
	customerUC := sales.NewCustomerUseCase(userRepo, customerRepo)
	registerUC := appregister.NewUseCase(txRunner, sessionRepo, movementRepo)
	financeUC := finance.NewUseCase(expenseCategoryRepo, expenseRepo)
	dashboardUC := appanalytics.NewDashboardUseCase(analyticsRepo, batchRepo, cfg.Alerts.ExpiryDays)
	exporter := excel.NewStockExporter()

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
		Title:    "StockPro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		CatalogUC:   catalogUC,
		RecordSale:  recordSaleUC,
		CustomerUC:  customerUC,
		RegisterUC:  registerUC,
		FinanceUC:   financeUC,
		DashboardUC: dashboardUC,
		Exporter:    exporter,
		JWTSecret:   cfg.JWT.Secret,
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
