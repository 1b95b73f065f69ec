package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatDTO tarjeta de KPI ya formateada para mostrar.
type StatDTO struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Icon  string `json:"icon"`
}

// TopSellerDTO fila de productos más vendidos.
type TopSellerDTO struct {
	ID       int             `json:"id"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Sold     int             `json:"sold"`
	Revenue  decimal.Decimal `json:"revenue"`
}

// ActivityDTO entrada del feed de actividad.
type ActivityDTO struct {
	Time        string `json:"time"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ProjectDTO obra activa (construcción).
type ProjectDTO struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Client    string `json:"client"`
	Location  string `json:"location"`
	Progress  int    `json:"progress"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// MaterialDTO estado de un material en obra.
type MaterialDTO struct {
	Name        string `json:"name"`
	Stock       int    `json:"stock"`
	Unit        string `json:"unit"`
	AssignedTo  string `json:"assignedTo"`
	Status      string `json:"status"`
	StatusLabel string `json:"statusLabel"`
}

// ShareDTO porción de un gráfico circular o de barras.
type ShareDTO struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// SalesSeriesDTO serie de ventas de un rango.
type SalesSeriesDTO struct {
	Range  string            `json:"range"`
	Labels []string          `json:"labels"`
	Values []decimal.Decimal `json:"values"`
}

// OverviewDTO respuesta de GET /api/dashboard/overview.
// Available=false indica que el sector aún no tiene dashboard propio; el resto queda vacío.
type OverviewDTO struct {
	Sector          string          `json:"sector"`
	Title           string          `json:"title"`
	Available       bool            `json:"available"`
	DateLabel       string          `json:"dateLabel"`
	Accent          string          `json:"accent"`
	Stats           []StatDTO       `json:"stats"`
	TopSellers      []TopSellerDTO  `json:"topSellers,omitempty"`
	Sales           *SalesSeriesDTO `json:"sales,omitempty"`
	CategoryShare   []ShareDTO      `json:"categoryShare,omitempty"`
	InventoryStatus []ShareDTO      `json:"inventoryStatus,omitempty"`
	Projects        []ProjectDTO    `json:"projects,omitempty"`
	Materials       []MaterialDTO   `json:"materials,omitempty"`
	Activities      []ActivityDTO   `json:"activities"`
	GeneratedAt     time.Time       `json:"generatedAt"`
}
