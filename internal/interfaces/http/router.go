package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/sectorflow-api/internal/application/analytics"
	"github.com/jhoicas/sectorflow-api/internal/application/auth"
	appinventory "github.com/jhoicas/sectorflow-api/internal/application/inventory"
	"github.com/jhoicas/sectorflow-api/internal/application/routing"
	"github.com/jhoicas/sectorflow-api/internal/application/sector"
	"github.com/jhoicas/sectorflow-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Sessions  *auth.SessionManager
	Sectors   *sector.Manager
	Overview  *appanalytics.OverviewUseCase
	Inventory *appinventory.UseCase
	Profile   ProfileConfig
	Health    Pinger // nil = sin verificación de almacenamiento
	AppName   string
	Logger    *logger.Logger
}

// Router registra las rutas de la API y las páginas virtuales.
func Router(app *fiber.App, deps RouterDeps) {
	guard := NewGuard(routing.NewLoader(deps.Sessions, deps.Sectors))
	profile := ProfileMiddleware(deps.Profile, deps.Logger)

	authHandler := NewAuthHandler(deps.Sessions, deps.Sectors, deps.Logger)
	navHandler := NewNavigationHandler(deps.Logger)
	sectorHandler := NewSectorHandler(deps.Sectors, deps.Logger)
	dashboardHandler := NewDashboardHandler(deps.Overview, deps.Inventory, deps.Logger)
	healthHandler := NewHealthHandler(deps.AppName, deps.Health, deps.Logger)

	app.Get("/health", healthHandler.Check)

	// Páginas virtuales: /app/login, /app/dashboard/inventory, ...
	app.Get(AppPrefix, profile, guard.LoadState(), navHandler.Page)
	app.Get(AppPrefix+"/*", profile, guard.LoadState(), navHandler.Page)

	api := app.Group("/api", profile, guard.LoadState())

	api.Get("/state", navHandler.State)
	api.Get("/route", navHandler.Route)
	api.Get("/theme", navHandler.Theme)
	api.Get("/sectors", sectorHandler.List)

	// Auth: se protege como las páginas /register y /login (solo anónimos).
	authGroup := api.Group("/auth")
	authGroup.Post("/register", guard.Require(routing.PathRegister), authHandler.Register)
	authGroup.Post("/login", guard.Require(routing.PathLogin), authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)

	// Selección de sector: como /select-sector (requiere sesión).
	api.Put("/sector", guard.Require(routing.PathSelectSector), sectorHandler.Set)

	// Dashboard: como /dashboard/* (sesión y sector).
	dash := api.Group("/dashboard", guard.Require(routing.PathDashboard))
	dash.Get("/menu", navHandler.Menu)
	dash.Get("/overview", dashboardHandler.Overview)
	dash.Get("/sales", dashboardHandler.Sales)
	dash.Get("/inventory", dashboardHandler.Inventory)
	dash.Get("/inventory/report.pdf", dashboardHandler.InventoryReport)
}
