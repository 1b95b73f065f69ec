// Package sample implementa los repositorios de catálogo con los datos de
// demostración de SectorFlow (no hay backend real de inventario).
// Todas las consultas devuelven copias; los llamadores pueden mutar el resultado.
package sample

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/sectorflow-api/internal/domain/entity"
	"github.com/jhoicas/sectorflow-api/internal/domain/repository"
)

var (
	_ repository.ProductRepository   = (*Catalog)(nil)
	_ repository.ProjectRepository   = (*Catalog)(nil)
	_ repository.AnalyticsRepository = (*Catalog)(nil)
)

// Rangos de la serie de ventas.
const (
	RangeWeek  = "week"
	RangeMonth = "month"
	RangeYear  = "year"
)

// monthSeed semilla fija de la serie mensual: mismo resultado en cada arranque.
const monthSeed = 20230515

// Catalog repositorio read-only en memoria.
type Catalog struct{}

// NewCatalog construye el catálogo de demostración.
func NewCatalog() *Catalog { return &Catalog{} }

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic("sample: fecha inválida " + s)
	}
	return t
}

func rwf(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

func retailProducts() []*entity.Product {
	return []*entity.Product{
		{ID: 1, Sector: entity.SectorRetail, Name: "Smartphone X", Category: "Electronics", Quantity: 25, Price: rwf(100000), Cost: rwf(80000), Barcode: "BC-12345", Supplier: "TechWorld Ltd", LastUpdated: day("2023-05-15")},
		{ID: 2, Sector: entity.SectorRetail, Name: "Designer T-Shirt", Category: "Clothing", Quantity: 50, Price: rwf(25000), Cost: rwf(15000), Barcode: "BC-23456", Supplier: "Fashion Hub", LastUpdated: day("2023-05-20")},
		{ID: 3, Sector: entity.SectorRetail, Name: "Bluetooth Headphones", Category: "Electronics", Quantity: 15, Price: rwf(50000), Cost: rwf(35000), Barcode: "BC-34567", Supplier: "TechWorld Ltd", LastUpdated: day("2023-05-18")},
		{ID: 4, Sector: entity.SectorRetail, Name: "Kitchen Blender", Category: "Home & Kitchen", Quantity: 10, Price: rwf(30000), Cost: rwf(20000), Barcode: "BC-45678", Supplier: "HomeGoods Inc", LastUpdated: day("2023-05-10")},
		{ID: 5, Sector: entity.SectorRetail, Name: "Organic Coffee", Category: "Food & Beverages", Quantity: 30, Price: rwf(15000), Cost: rwf(8000), Barcode: "BC-56789", Supplier: "Organic Farms", LastUpdated: day("2023-05-22")},
		{ID: 6, Sector: entity.SectorRetail, Name: "Face Moisturizer", Category: "Beauty & Health", Quantity: 8, Price: rwf(20000), Cost: rwf(12000), Barcode: "BC-67890", Supplier: "Beauty Essentials", LastUpdated: day("2023-05-05")},
		{ID: 7, Sector: entity.SectorRetail, Name: "Wireless Mouse", Category: "Electronics", Quantity: 5, Price: rwf(18000), Cost: rwf(10000), Barcode: "BC-78901", Supplier: "TechWorld Ltd", LastUpdated: day("2023-05-12")},
	}
}

// ListBySector devuelve el inventario del sector (solo retail tiene datos).
func (c *Catalog) ListBySector(ctx context.Context, sector entity.Sector) ([]*entity.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if sector != entity.SectorRetail {
		return []*entity.Product{}, nil
	}
	return retailProducts(), nil
}

// ListProjects devuelve las obras activas (solo construcción).
func (c *Catalog) ListProjects(ctx context.Context, sector entity.Sector) ([]*entity.Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if sector != entity.SectorConstruction {
		return []*entity.Project{}, nil
	}
	return []*entity.Project{
		{ID: 1, Name: "Office Building Renovation", Client: "ABC Corporation", Location: "Kigali Central", Progress: 75, StartDate: day("2023-03-15"), EndDate: day("2023-07-30")},
		{ID: 2, Name: "Residential Complex", Client: "Kigali Housing Authority", Location: "Nyarutarama", Progress: 45, StartDate: day("2023-02-10"), EndDate: day("2023-10-20")},
		{ID: 3, Name: "Shopping Mall Extension", Client: "Retail Developers Ltd", Location: "Kimihurura", Progress: 30, StartDate: day("2023-04-05"), EndDate: day("2023-12-15")},
		{ID: 4, Name: "Hotel Renovation", Client: "Hospitality Group", Location: "Kacyiru", Progress: 10, StartDate: day("2023-05-01"), EndDate: day("2023-08-30")},
	}, nil
}

// ListMaterials devuelve el estado de materiales por obra (solo construcción).
func (c *Catalog) ListMaterials(ctx context.Context, sector entity.Sector) ([]*entity.Material, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if sector != entity.SectorConstruction {
		return []*entity.Material{}, nil
	}
	return []*entity.Material{
		{Name: "Cement", Stock: 120, Unit: "Bags", AssignedTo: "Office Building Renovation", Status: entity.MaterialInStock},
		{Name: "Steel Rods (12mm)", Stock: 85, Unit: "Pieces", AssignedTo: "Residential Complex", Status: entity.MaterialInStock},
		{Name: "Bricks", Stock: 350, Unit: "Pieces", AssignedTo: "Shopping Mall Extension", Status: entity.MaterialLowStock},
		{Name: "Paint (White)", Stock: 8, Unit: "Gallons", AssignedTo: "Hotel Renovation", Status: entity.MaterialLowStock},
		{Name: "Timber", Stock: 0, Unit: "Pieces", AssignedTo: "Office Building Renovation", Status: entity.MaterialOutOfStock},
	}, nil
}
