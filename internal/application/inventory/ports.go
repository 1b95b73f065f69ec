package inventory

import (
	"context"
	"time"

	"github.com/jhoicas/sectorflow-api/internal/application/dto"
)

// ReportData contenido del reporte PDF de inventario.
type ReportData struct {
	Title       string
	SectorLabel string
	GeneratedAt time.Time
	Query       dto.InventoryQuery
	Stats       dto.InventoryStatsDTO
	Items       []dto.InventoryItemDTO
}

// ReportGenerator genera el PDF del inventario (implementado en infrastructure/pdf).
type ReportGenerator interface {
	GenerateInventoryPDF(ctx context.Context, data *ReportData) ([]byte, error)
}
