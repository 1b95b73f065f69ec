package repository

import (
	"context"

	"github.com/jhoicas/sectorflow-api/internal/domain/entity"
)

// ProductRepository inventario por sector. Devuelve slice vacío si el sector no tiene inventario.
type ProductRepository interface {
	ListBySector(ctx context.Context, sector entity.Sector) ([]*entity.Product, error)
}

// ProjectRepository obras y materiales (solo construcción tiene datos).
type ProjectRepository interface {
	ListProjects(ctx context.Context, sector entity.Sector) ([]*entity.Project, error)
	ListMaterials(ctx context.Context, sector entity.Sector) ([]*entity.Material, error)
}

// AnalyticsRepository cifras agregadas para los dashboards (consultas read-only).
type AnalyticsRepository interface {
	// GetKPIs devuelve ok=false si el sector no tiene dashboard propio.
	GetKPIs(ctx context.Context, sector entity.Sector) (kpis entity.KPIs, ok bool, err error)
	GetTopSellers(ctx context.Context, sector entity.Sector, limit int) ([]*entity.TopSeller, error)
	GetActivities(ctx context.Context, sector entity.Sector) ([]*entity.Activity, error)
	GetSalesSeries(ctx context.Context, sector entity.Sector, rangeName string) ([]entity.SeriesPoint, error)
	GetCategoryShare(ctx context.Context, sector entity.Sector) ([]entity.Share, error)
	GetInventoryStatus(ctx context.Context, sector entity.Sector) ([]entity.Share, error)
}
