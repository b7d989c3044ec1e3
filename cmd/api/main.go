package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/stdlib"

	_ "github.com/jhoicas/fulfillment-api/docs"
	"github.com/jhoicas/fulfillment-api/internal/application/fulfillment"
	"github.com/jhoicas/fulfillment-api/internal/infrastructure/cache"
	"github.com/jhoicas/fulfillment-api/internal/infrastructure/despatch"
	"github.com/jhoicas/fulfillment-api/internal/infrastructure/erp"
	"github.com/jhoicas/fulfillment-api/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/fulfillment-api/internal/infrastructure/pdf"
	"github.com/jhoicas/fulfillment-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/fulfillment-api/internal/interfaces/http"
	"github.com/jhoicas/fulfillment-api/pkg/config"
	"github.com/jhoicas/fulfillment-api/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

// @title                       Fulfillment API
// @version                     1.0
// @description                 Picking y despacho de pedidos de venta del ERP Mikro con emisión de irsaliye.
// @BasePath                    /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
// @description                 Token JWT: "Bearer <token>"
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	if err := cfg.Validate(); err != nil {
		panic(err.Error())
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

	// ── 1. almacén local ──
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if cfg.DB.AutoMigrate {
		m, err := postgres.NewMigrator(pool, log.Component("migrate"))
		if err != nil {
			log.Fatal().Err(err).Msg("inicializar migraciones")
		}
		if err := m.Up(); err != nil {
			log.Fatal().Err(err).Msg("aplicar migraciones")
		}
		_ = m.Close()
	}

	// ── 2. ERP ──
	erpPool, err := postgres.NewPoolFromDSN(ctx, cfg.ERP.DatabaseURL, postgres.PoolOptions{MaxConns: 10, MinConns: 1})
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a la base del ERP")
	}
	defer erpPool.Close()
	erpDB := stdlib.OpenDBFromPool(erpPool)
	defer erpDB.Close()

	mtr := metrics.New("fulfillment")
	erpExec := erp.NewExecutor(erpDB, erp.ExecutorConfig{
		QueryTimeout:    cfg.ERP.QueryTimeout,
		BreakerFailures: cfg.ERP.BreakerFailures,
		BreakerTimeout:  cfg.ERP.BreakerTimeout,
	}, mtr, log.Component("erp"))

	// ── 3. caché de pedidos ──
	rdb, err := cache.NewClient(ctx, cfg.Redis)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a Redis")
	}
	defer rdb.Close()
	orders := cache.NewPendingOrderCache(rdb, cfg.Cache.OrdersKey, log.Component("cache"))
	catalog := cache.NewProductCatalog(rdb, cfg.Cache.ProductsKey, log.Component("cache"))

	// ── 4. casos de uso ──
	shelfRepo := postgres.NewShelfLocationRepository(pool)
	workflowUC := fulfillment.NewWorkflowUseCase(fulfillment.WorkflowDeps{
		Tx:            postgres.NewTxRunner(pool),
		Workflows:     postgres.NewWorkflowRepository(pool),
		Shelves:       shelfRepo,
		Orders:        orders,
		Catalog:       catalog,
		Reservations:  fulfillment.NewReservationTracker(erp.NewReservationSource(erpExec), orders, mtr, log.Zerolog()),
		Emitter:       erp.NewDispatchEmitter(erpExec, log.Component("dispatch")),
		Metrics:       mtr,
		Logger:        log.Zerolog(),
		DefaultSeries: cfg.Dispatch.DefaultSeries,
	})
	imageIssueUC := fulfillment.NewImageIssueUseCase(postgres.NewImageIssueRepository(pool), orders, catalog, log.Zerolog())
	shelfUC := fulfillment.NewShelfUseCase(shelfRepo)
	documentUC := fulfillment.NewDocumentUseCase(
		postgres.NewDispatchRecordRepository(pool),
		infrapdf.NewDeliveryNoteGenerator(),
		despatch.NewBuilder(),
		fulfillment.Issuer{Name: cfg.Company.Name, TaxID: cfg.Company.TaxID},
	)

	// ── 5. HTTP ──
	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs (generado con `swag init -g cmd/api/main.go`)
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    cfg.App.Name,
		}))
	} else {
		log.Warn().Str("file", swaggerFile).Msg("swagger.json no encontrado, /docs deshabilitado")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", adaptor.HTTPHandler(mtr.Handler()))

	httpRouter.Router(app, httpRouter.RouterDeps{
		WorkflowUC:   workflowUC,
		ImageIssueUC: imageIssueUC,
		ShelfUC:      shelfUC,
		DocumentUC:   documentUC,
		JWTSecret:    cfg.JWT.Secret,
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
