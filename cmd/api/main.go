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

	_ "github.com/coffee-urbantech/pos-api/docs"
	"github.com/coffee-urbantech/pos-api/internal/application/analytics"
	"github.com/coffee-urbantech/pos-api/internal/application/auth"
	"github.com/coffee-urbantech/pos-api/internal/application/inventory"
	"github.com/coffee-urbantech/pos-api/internal/application/purchases"
	"github.com/coffee-urbantech/pos-api/internal/application/reports"
	"github.com/coffee-urbantech/pos-api/internal/application/sales"
	"github.com/coffee-urbantech/pos-api/internal/domain/repository"
	"github.com/coffee-urbantech/pos-api/internal/infrastructure/memory"
	infrapdf "github.com/coffee-urbantech/pos-api/internal/infrastructure/pdf"
	"github.com/coffee-urbantech/pos-api/internal/infrastructure/postgres"
	infraredis "github.com/coffee-urbantech/pos-api/internal/infrastructure/redis"
	httpRouter "github.com/coffee-urbantech/pos-api/internal/interfaces/http"
	"github.com/coffee-urbantech/pos-api/pkg/config"
	"github.com/coffee-urbantech/pos-api/pkg/logger"
)

// storageDeps adaptadores de persistencia ya resueltos según STORAGE_DRIVER.
type storageDeps struct {
	productRepo   repository.ProductRepository
	saleRepo      repository.SaleRepository
	purchaseRepo  repository.PurchaseRepository
	userRepo      repository.UserRepository
	analyticsRepo repository.AnalyticsRepository
	saleTx        sales.TxRunner
	purchaseTx    purchases.TxRunner
	close         func()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("storage", cfg.Storage.Driver).
		Str("cart_store", cfg.Storage.CartStore).
		Msg("iniciando aplicación")

	ctx := context.Background()

	var deps storageDeps
	switch cfg.Storage.Driver {
	case "memory":
		store := memory.NewStore()
		deps = storageDeps{
			productRepo:   memory.NewProductRepository(store),
			saleRepo:      memory.NewSaleRepository(store),
			purchaseRepo:  memory.NewPurchaseRepository(store),
			userRepo:      memory.NewUserRepository(store),
			analyticsRepo: memory.NewAnalyticsRepository(store),
			saleTx:        memory.NewSaleTxRunner(store),
			purchaseTx:    memory.NewPurchaseTxRunner(store),
			close:         func() {},
		}
	default:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		deps = storageDeps{
			productRepo:   postgres.NewProductRepository(pool),
			saleRepo:      postgres.NewSaleRepository(pool),
			purchaseRepo:  postgres.NewPurchaseRepository(pool),
			userRepo:      postgres.NewUserRepository(pool),
			analyticsRepo: postgres.NewAnalyticsRepository(pool),
			saleTx:        postgres.NewSaleTxRunner(pool),
			purchaseTx:    postgres.NewPurchaseTxRunner(pool),
			close:         pool.Close,
		}
	}
	defer deps.close()

	var cartStore sales.CartStore
	if cfg.Storage.CartStore == "redis" {
		client, err := infraredis.NewClient(ctx, cfg.Redis)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer func() { _ = client.Close() }()
		cartStore = infraredis.NewCartStore(client)
	} else {
		cartStore = memory.NewCartStore()
	}

	productUC := inventory.NewProductUseCase(deps.productRepo)
	saleUC := sales.NewSaleUseCase(cartStore, deps.saleTx, deps.productRepo, deps.saleRepo)
	purchaseUC := purchases.NewPurchaseUseCase(deps.purchaseTx, deps.productRepo, deps.purchaseRepo)
	dashboardUC := analytics.NewDashboardUseCase(deps.analyticsRepo)
	pdfGenerator := infrapdf.NewMarotoReportGenerator(cfg.App.Name)
	reportUC := reports.NewReportUseCase(deps.saleRepo, deps.purchaseRepo, deps.productRepo, pdfGenerator)
	authUC := auth.NewAuthUseCase(deps.userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

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
		Title:    "Coffee UrbanTech POS API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:   productUC,
		SaleUC:      saleUC,
		PurchaseUC:  purchaseUC,
		DashboardUC: dashboardUC,
		ReportUC:    reportUC,
		AuthUC:      authUC,
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
