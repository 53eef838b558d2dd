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

	"github.com/jhoicas/Dotacion-api/internal/application/auth"
	appcoll "github.com/jhoicas/Dotacion-api/internal/application/collection"
	appdist "github.com/jhoicas/Dotacion-api/internal/application/distribution"
	appent "github.com/jhoicas/Dotacion-api/internal/application/entitlement"
	appstock "github.com/jhoicas/Dotacion-api/internal/application/stock"
	"github.com/jhoicas/Dotacion-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/Dotacion-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Dotacion-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Dotacion-api/internal/interfaces/http"
	"github.com/jhoicas/Dotacion-api/pkg/config"
	"github.com/jhoicas/Dotacion-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
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

	// Repositorios ligados al pool (lecturas y CRUD fuera de transacción)
	userRepo := postgres.NewUserRepository(pool)
	itemRepo := postgres.NewItemRepository(pool)
	ledgerRepo := postgres.NewLedgerRepository(pool)
	stockViewRepo := postgres.NewStockViewRepository(pool)
	distRepo := postgres.NewDistributionRepository(pool)
	collRepo := postgres.NewCollectionRepository(pool)
	entitlementRepo := postgres.NewEntitlementRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	classRepo := postgres.NewClassRepository(pool)
	studentRepo := postgres.NewStudentRepository(pool)
	termRepo := postgres.NewTermRepository(pool)

	// Las entregas mutan stock y libro en una sola transacción
	txRunner := postgres.NewTxRunner(pool)

	itemUC := usecase.NewItemUseCase(itemRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	schoolUC := usecase.NewSchoolUseCase(classRepo, studentRepo, termRepo)
	stockUC := appstock.NewSummaryUseCase(itemRepo, ledgerRepo, stockViewRepo)
	distUC := appdist.NewUseCase(txRunner, distRepo, classRepo, termRepo, userRepo)
	collectionUC := appcoll.NewUseCase(distRepo, collRepo, log)
	entitlementUC := appent.NewUseCase(entitlementRepo)

	// PDF: acta de entrega que firma el docente receptor
	actaGenerator := infrapdf.NewActaGenerator(cfg.App.SchoolName)
	actaUC := appdist.NewActaUseCase(distRepo, itemRepo, classRepo, termRepo, userRepo, actaGenerator)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
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
		Title:    "Dotación Escolar API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		ItemUC:        itemUC,
		CategoryUC:    categoryUC,
		SupplierUC:    supplierUC,
		SchoolUC:      schoolUC,
		StockUC:       stockUC,
		DistUC:        distUC,
		ActaUC:        actaUC,
		CollectionUC:  collectionUC,
		EntitlementUC: entitlementUC,
		JWTSecret:     cfg.JWT.Secret,
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
