package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryQuery filtros de la tabla de inventario (query string).
type InventoryQuery struct {
	Search    string `query:"search" json:"search"`
	Category  string `query:"category" json:"category"`   // "all" o vacío = sin filtro
	Sort      string `query:"sort" json:"sort"`           // name, category, quantity, price, barcode, supplier
	Direction string `query:"direction" json:"direction"` // asc | desc
}

// InventoryItemDTO fila de la tabla de inventario.
type InventoryItemDTO struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Barcode     string          `json:"barcode"`
	Supplier    string          `json:"supplier"`
	LowStock    bool            `json:"lowStock"`
	LastUpdated time.Time       `json:"lastUpdated"`
}

// InventoryStatsDTO barra de estadísticas (sobre todo el inventario, no solo lo filtrado).
type InventoryStatsDTO struct {
	TotalProducts  int             `json:"totalProducts"`
	TotalUnits     int             `json:"totalUnits"`
	InventoryValue decimal.Decimal `json:"inventoryValue"`
	ValueLabel     string          `json:"valueLabel"`
	LowStockItems  int             `json:"lowStockItems"`
}

// InventoryListDTO respuesta de GET /api/dashboard/inventory.
type InventoryListDTO struct {
	Sector     string             `json:"sector"`
	Title      string             `json:"title"`
	Available  bool               `json:"available"`
	Query      InventoryQuery     `json:"query"`
	Categories []string           `json:"categories"`
	Stats      InventoryStatsDTO  `json:"stats"`
	Items      []InventoryItemDTO `json:"items"`
}
