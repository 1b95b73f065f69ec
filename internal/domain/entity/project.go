package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Project obra activa de una constructora.
type Project struct {
	ID        int
	Name      string
	Client    string
	Location  string
	Progress  int // porcentaje 0-100
	StartDate time.Time
	EndDate   time.Time
}

// Estados de material en obra.
const (
	MaterialInStock    = "good"
	MaterialLowStock   = "low"
	MaterialOutOfStock = "out"
)

// Material existencias de un material asignado a una obra.
type Material struct {
	Name       string
	Stock      int
	Unit       string
	AssignedTo string
	Status     string // good, low, out
}

// Activity entrada del feed "Recent Activities".
type Activity struct {
	Time        string // etiqueta libre: "10:45 AM", "Yesterday"
	Title       string
	Description string
}

// KPIs cifras de cabecera del dashboard de un sector.
// Solo se rellenan los campos que aplican al sector.
type KPIs struct {
	TotalProducts     int
	TodaySales        decimal.Decimal
	Customers         int
	LowStockItems     int
	TotalBudget       decimal.Decimal
	Workers           int
	LowStockMaterials int
}

// SeriesPoint punto de una serie temporal de ventas.
type SeriesPoint struct {
	Label string
	Value decimal.Decimal
}

// Share porción con nombre (categorías, estados de inventario).
type Share struct {
	Label string
	Value int
}
