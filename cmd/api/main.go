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
	"github.com/robfig/cron/v3"

	"github.com/salesphere/salesphere-api/internal/application/alert"
	"github.com/salesphere/salesphere-api/internal/application/ledger"
	"github.com/salesphere/salesphere-api/internal/application/usecase"
	"github.com/salesphere/salesphere-api/internal/infrastructure/mail"
	"github.com/salesphere/salesphere-api/internal/infrastructure/postgres"
	"github.com/salesphere/salesphere-api/internal/infrastructure/report"
	"github.com/salesphere/salesphere-api/internal/infrastructure/ws"
	httpRouter "github.com/salesphere/salesphere-api/internal/interfaces/http"
	"github.com/salesphere/salesphere-api/pkg/config"
	"github.com/salesphere/salesphere-api/pkg/logger"
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

	productRepo := postgres.NewProductRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	movementRepo := postgres.NewInventoryMovementRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	stockLedger := ledger.NewStockLedger(txRunner, productRepo, warehouseRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	warehouseUC := usecase.NewWarehouseUseCase(warehouseRepo)
	saleUC := usecase.NewSaleUseCase(txRunner, stockLedger, productRepo, saleRepo)

	// Canal de alertas: sesiones WebSocket + correo con reportes adjuntos.
	registry := ws.NewRegistry()
	renderer := report.NewRenderer()
	mailer := mail.NewGomailSender(cfg.SMTP)
	fanout := alert.NewFanout(registry, renderer, mailer, cfg.SMTP.To, log)
	monitor := alert.NewMonitor(productRepo, fanout, cfg.Alert.ExpiryWindowDays, log)

	// Scheduler: chequeo de stock cada hora y de vencimientos cada día.
	scheduler := cron.New()
	if _, err := scheduler.AddFunc(cfg.Alert.StockCron, func() {
		if err := monitor.CheckStock(context.Background()); err != nil {
			log.Error().Err(err).Msg("chequeo programado de stock")
		}
	}); err != nil {
		log.Fatal().Err(err).Str("cron", cfg.Alert.StockCron).Msg("programar chequeo de stock")
	}
	if _, err := scheduler.AddFunc(cfg.Alert.ExpiryCron, func() {
		if err := monitor.CheckExpiry(context.Background()); err != nil {
			log.Error().Err(err).Msg("chequeo programado de vencimientos")
		}
	}); err != nil {
		log.Fatal().Err(err).Str("cron", cfg.Alert.ExpiryCron).Msg("programar chequeo de vencimientos")
	}
	scheduler.Start()

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
		Title:    "SaleSphere API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:    productUC,
		WarehouseUC:  warehouseUC,
		SaleUC:       saleUC,
		StockLedger:  stockLedger,
		Monitor:      monitor,
		MovementRepo: movementRepo,
		ProductRepo:  productRepo,
		Renderer:     renderer,
		Registry:     registry,
		Log:          log,
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

	cronCtx := scheduler.Stop()
	<-cronCtx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
