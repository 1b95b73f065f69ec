package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// LowStockThreshold cantidad a partir de la cual (inclusive) un producto se marca "Low Stock".
const LowStockThreshold = 10

// Product artículo del inventario de un sector.
type Product struct {
	ID          int
	Sector      Sector
	Name        string
	Category    string
	Quantity    int
	Price       decimal.Decimal // precio de venta
	Cost        decimal.Decimal
	Barcode     string
	Supplier    string
	LastUpdated time.Time
}

// LowStock informa si el producto está en o por debajo del umbral.
func (p *Product) LowStock() bool {
	return p.Quantity <= LowStockThreshold
}

// StockValue precio de venta × cantidad.
func (p *Product) StockValue() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(p.Quantity)))
}

// TopSeller fila del ranking de productos más vendidos.
type TopSeller struct {
	ID       int
	Name     string
	Category string
	Sold     int
	Revenue  decimal.Decimal
}
