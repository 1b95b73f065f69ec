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
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	appanalytics "github.com/jhoicas/sectorflow-api/internal/application/analytics"
	"github.com/jhoicas/sectorflow-api/internal/application/auth"
	appinventory "github.com/jhoicas/sectorflow-api/internal/application/inventory"
	"github.com/jhoicas/sectorflow-api/internal/application/sector"
	infrapdf "github.com/jhoicas/sectorflow-api/internal/infrastructure/pdf"
	"github.com/jhoicas/sectorflow-api/internal/infrastructure/sample"
	"github.com/jhoicas/sectorflow-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/sectorflow-api/internal/interfaces/http"
	"github.com/jhoicas/sectorflow-api/pkg/config"
	"github.com/jhoicas/sectorflow-api/pkg/logger"
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
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		// Solo fuera de producción (config.Load lo rechaza allí): los perfiles no sobreviven al reinicio.
		cfg.JWT.Secret = uuid.NewString()
		log.Warn().Msg("JWT_SECRET vacío, se usa un secreto efímero")
	}

	ctx := context.Background()
	backend, err := storage.Open(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacenamiento")
	}
	defer backend.Close()

	sessions := auth.NewSessionManager(backend.Profiles, log, auth.Config{
		SimulatedLatency: time.Duration(cfg.Auth.SimulatedLatencyMS) * time.Millisecond,
	})
	sectors := sector.NewManager(backend.Profiles, log)

	catalog := sample.NewCatalog()
	overviewUC := appanalytics.NewOverviewUseCase(catalog, catalog, nil)
	inventoryUC := appinventory.NewUseCase(backend.Products, infrapdf.NewInventoryReportGenerator())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "SectorFlow API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		Sessions:  sessions,
		Sectors:   sectors,
		Overview:  overviewUC,
		Inventory: inventoryUC,
		Profile: httpRouter.ProfileConfig{
			Secret:       cfg.JWT.Secret,
			Issuer:       cfg.JWT.Issuer,
			TTL:          time.Duration(cfg.JWT.ProfileTTLDays) * 24 * time.Hour,
			SecureCookie: cfg.App.Env == "production",
		},
		Health:  backend,
		AppName: cfg.App.Name,
		Logger:  log,
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
