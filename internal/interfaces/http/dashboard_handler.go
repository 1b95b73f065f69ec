package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/sectorflow-api/internal/application/analytics"
	"github.com/jhoicas/sectorflow-api/internal/application/dto"
	appinventory "github.com/jhoicas/sectorflow-api/internal/application/inventory"
	"github.com/jhoicas/sectorflow-api/pkg/logger"
)

// DashboardHandler maneja los endpoints del dashboard (detrás del guard /dashboard).
type DashboardHandler struct {
	overview  *appanalytics.OverviewUseCase
	inventory *appinventory.UseCase
	log       *logger.Logger
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(overview *appanalytics.OverviewUseCase, inventory *appinventory.UseCase, log *logger.Logger) *DashboardHandler {
	return &DashboardHandler{overview: overview, inventory: inventory, log: log.Component("dashboard_handler")}
}

// Overview devuelve el resumen del sector seleccionado.
// GET /api/dashboard/overview
//
// Sectores sin dashboard propio responden available=false con listas vacías.
func (h *DashboardHandler) Overview(c *fiber.Ctx) error {
	out, err := h.overview.GetOverview(c.Context(), sectorOf(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Sales serie de ventas. GET /api/dashboard/sales?range=week|month|year
func (h *DashboardHandler) Sales(c *fiber.Ctx) error {
	out, err := h.overview.SalesSeries(c.Context(), sectorOf(c), c.Query("range"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Inventory tabla de inventario.
// GET /api/dashboard/inventory?search=&category=&sort=&direction=
func (h *DashboardHandler) Inventory(c *fiber.Ctx) error {
	var q dto.InventoryQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: err.Error()})
	}
	out, err := h.inventory.List(c.Context(), sectorOf(c), q)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// InventoryReport descarga la tabla filtrada en PDF.
// GET /api/dashboard/inventory/report.pdf
func (h *DashboardHandler) InventoryReport(c *fiber.Ctx) error {
	var q dto.InventoryQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: err.Error()})
	}
	pdf, filename, err := h.inventory.Report(c.Context(), sectorOf(c), q)
	if err != nil {
		return writeError(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(pdf)
}
