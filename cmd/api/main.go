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

	"github.com/tu-usuario/stocktrack/internal/application/analytics"
	"github.com/tu-usuario/stocktrack/internal/application/store"
	"github.com/tu-usuario/stocktrack/internal/application/usecase"
	"github.com/tu-usuario/stocktrack/internal/domain/repository"
	"github.com/tu-usuario/stocktrack/internal/infrastructure/localstore"
	infrapdf "github.com/tu-usuario/stocktrack/internal/infrastructure/pdf"
	"github.com/tu-usuario/stocktrack/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/stocktrack/internal/interfaces/http"
	"github.com/tu-usuario/stocktrack/pkg/config"
	"github.com/tu-usuario/stocktrack/pkg/logger"
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
		Str("storage", cfg.Storage.Backend).
		Msg("iniciando aplicación")

	ctx := context.Background()

	var snapshots repository.SnapshotStore
	switch cfg.Storage.Backend {
	case config.BackendPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		repo := postgres.NewSnapshotRepository(pool)
		if err := repo.EnsureSchema(ctx); err != nil {
			log.Fatal().Err(err).Msg("esquema de snapshots")
		}
		snapshots = repo
	default:
		fileStore, err := localstore.New(cfg.Storage.Dir)
		if err != nil {
			log.Fatal().Err(err).Msg("abrir almacenamiento local")
		}
		snapshots = fileStore
	}

	inv, err := store.New(ctx, snapshots)
	if err != nil {
		log.Fatal().Err(err).Msg("cargar estado del inventario")
	}
	inv.Subscribe(func() {
		log.Debug().Msg("estado del inventario persistido")
	})
	log.Info().
		Int("items", len(inv.Items())).
		Int("movements", len(inv.Movements())).
		Msg("inventario cargado")

	itemUC := usecase.NewItemUseCase(inv)
	stockUC := usecase.NewStockUseCase(inv)
	reportUC := usecase.NewReportUseCase(inv, infrapdf.NewMarotoReportGenerator())
	dashboardUC := analytics.NewDashboardUseCase(inv, stockUC)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "StockTrack API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ItemUC:      itemUC,
		StockUC:     stockUC,
		ReportUC:    reportUC,
		DashboardUC: dashboardUC,
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
