package sample

import (
	"context"
	"math/rand"
	"strconv"

	"github.com/jhoicas/sectorflow-api/internal/domain/entity"
)

// GetKPIs cifras de cabecera; solo retail y construcción tienen dashboard propio.
func (c *Catalog) GetKPIs(ctx context.Context, sector entity.Sector) (entity.KPIs, bool, error) {
	if err := ctx.Err(); err != nil {
		return entity.KPIs{}, false, err
	}
	switch sector {
	case entity.SectorRetail:
		return entity.KPIs{
			TotalProducts: 1245,
			TodaySales:    rwf(456000),
			Customers:     89,
			LowStockItems: 12,
		}, true, nil
	case entity.SectorConstruction:
		return entity.KPIs{
			TotalBudget:       rwf(12_500_000),
			Workers:           32,
			LowStockMaterials: 8,
		}, true, nil
	}
	return entity.KPIs{}, false, nil
}

// GetTopSellers ranking de productos por unidades vendidas (retail).
func (c *Catalog) GetTopSellers(ctx context.Context, sector entity.Sector, limit int) ([]*entity.TopSeller, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if sector != entity.SectorRetail {
		return []*entity.TopSeller{}, nil
	}
	all := []*entity.TopSeller{
		{ID: 1, Name: "Smartphone X", Category: "Electronics", Sold: 45, Revenue: rwf(4_500_000)},
		{ID: 2, Name: "Designer T-Shirt", Category: "Clothing", Sold: 38, Revenue: rwf(950_000)},
		{ID: 3, Name: "Bluetooth Headphones", Category: "Electronics", Sold: 32, Revenue: rwf(1_600_000)},
		{ID: 4, Name: "Kitchen Blender", Category: "Home & Kitchen", Sold: 28, Revenue: rwf(840_000)},
		{ID: 5, Name: "Organic Coffee", Category: "Food & Beverages", Sold: 25, Revenue: rwf(375_000)},
	}
	if limit > 0 && limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

// GetActivities feed de actividad reciente del sector.
func (c *Catalog) GetActivities(ctx context.Context, sector entity.Sector) ([]*entity.Activity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	switch sector {
	case entity.SectorRetail:
		return []*entity.Activity{
			{Time: "10:45 AM", Title: "New Sale", Description: "Customer purchased 5 items for RWF 125,000"},
			{Time: "09:30 AM", Title: "Inventory Update", Description: "15 new products added to inventory"},
			{Time: "Yesterday", Title: "Low Stock Alert", Description: "Smartphone X is running low on stock (5 remaining)"},
			{Time: "Yesterday", Title: "New Customer", Description: "John Doe registered as a new customer"},
		}, nil
	case entity.SectorConstruction:
		return []*entity.Activity{
			{Time: "10:45 AM", Title: "Material Delivery", Description: "50 bags of cement delivered to Office Building Renovation site"},
			{Time: "09:30 AM", Title: "Worker Assignment", Description: "5 new workers assigned to Residential Complex project"},
			{Time: "Yesterday", Title: "Low Stock Alert", Description: "Bricks are running low (350 remaining)"},
			{Time: "Yesterday", Title: "Project Update", Description: "Shopping Mall Extension progress updated to 30%"},
		}, nil
	}
	return []*entity.Activity{}, nil
}

// GetSalesSeries serie de ventas por rango; rangos desconocidos caen en "week".
// La serie mensual es pseudoaleatoria en [10000, 50000) con semilla fija.
func (c *Catalog) GetSalesSeries(ctx context.Context, sector entity.Sector, rangeName string) ([]entity.SeriesPoint, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if sector != entity.SectorRetail {
		return []entity.SeriesPoint{}, nil
	}
	switch rangeName {
	case RangeMonth:
		r := rand.New(rand.NewSource(monthSeed))
		points := make([]entity.SeriesPoint, 30)
		for i := range points {
			points[i] = entity.SeriesPoint{Label: strconv.Itoa(i + 1), Value: rwf(int64(r.Intn(40000) + 10000))}
		}
		return points, nil
	case RangeYear:
		return series(
			[]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
			[]int64{150000, 180000, 210000, 190000, 220000, 250000, 270000, 260000, 290000, 300000, 340000, 380000},
		), nil
	default:
		return series(
			[]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"},
			[]int64{12000, 19000, 15000, 25000, 22000, 30000, 35000},
		), nil
	}
}

func series(labels []string, values []int64) []entity.SeriesPoint {
	out := make([]entity.SeriesPoint, len(labels))
	for i := range labels {
		out[i] = entity.SeriesPoint{Label: labels[i], Value: rwf(values[i])}
	}
	return out
}

// GetCategoryShare reparto porcentual de ventas por categoría (retail).
func (c *Catalog) GetCategoryShare(ctx context.Context, sector entity.Sector) ([]entity.Share, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if sector != entity.SectorRetail {
		return []entity.Share{}, nil
	}
	return []entity.Share{
		{Label: "Electronics", Value: 35},
		{Label: "Clothing", Value: 25},
		{Label: "Food & Beverages", Value: 20},
		{Label: "Home & Kitchen", Value: 15},
		{Label: "Beauty & Health", Value: 5},
	}, nil
}

// GetInventoryStatus número de productos por estado de inventario (retail).
func (c *Catalog) GetInventoryStatus(ctx context.Context, sector entity.Sector) ([]entity.Share, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if sector != entity.SectorRetail {
		return []entity.Share{}, nil
	}
	return []entity.Share{
		{Label: "In Stock", Value: 120},
		{Label: "Low Stock", Value: 15},
		{Label: "Out of Stock", Value: 8},
		{Label: "On Order", Value: 25},
	}, nil
}
