// Package analytics arma el resumen del dashboard de cada sector.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/sectorflow-api/internal/application/dto"
	"github.com/jhoicas/sectorflow-api/internal/application/theme"
	"github.com/jhoicas/sectorflow-api/internal/domain/entity"
	"github.com/jhoicas/sectorflow-api/internal/domain/repository"
	"github.com/jhoicas/sectorflow-api/pkg/money"
)

const (
	overviewTopSellers = 5
	dateLabelLayout    = "Monday, January 2, 2006"
	projectDateLayout  = "2006-01-02"
)

// Rangos válidos de la serie de ventas.
const (
	RangeWeek  = "week"
	RangeMonth = "month"
	RangeYear  = "year"
)

// NormalizeRange devuelve el rango pedido o "week" si no se reconoce.
func NormalizeRange(r string) string {
	switch r {
	case RangeWeek, RangeMonth, RangeYear:
		return r
	}
	return RangeWeek
}

// OverviewUseCase orquesta las consultas del resumen del dashboard.
type OverviewUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	projectRepo   repository.ProjectRepository
	now           func() time.Time
}

// NewOverviewUseCase construye el caso de uso. now nil usa time.Now.
func NewOverviewUseCase(analyticsRepo repository.AnalyticsRepository, projectRepo repository.ProjectRepository, now func() time.Time) *OverviewUseCase {
	if now == nil {
		now = time.Now
	}
	return &OverviewUseCase{analyticsRepo: analyticsRepo, projectRepo: projectRepo, now: now}
}

// GetOverview resumen del sector. Los sectores sin dashboard propio devuelven Available=false.
func (uc *OverviewUseCase) GetOverview(ctx context.Context, sector entity.Sector) (*dto.OverviewDTO, error) {
	if !sector.Valid() {
		return nil, fmt.Errorf("overview: sector %q no válido", sector)
	}
	out := &dto.OverviewDTO{
		Sector:      sector.String(),
		Title:       sector.ShortName() + " Dashboard",
		DateLabel:   uc.now().Format(dateLabelLayout),
		Accent:      theme.Resolve(sector).Colors.Accent,
		Stats:       []dto.StatDTO{},
		Activities:  []dto.ActivityDTO{},
		GeneratedAt: uc.now().UTC(),
	}

	kpis, ok, err := uc.analyticsRepo.GetKPIs(ctx, sector)
	if err != nil {
		return nil, fmt.Errorf("overview: kpis: %w", err)
	}
	if !ok {
		return out, nil
	}
	out.Available = true

	switch sector {
	case entity.SectorRetail:
		err = uc.fillRetail(ctx, out, kpis)
	case entity.SectorConstruction:
		err = uc.fillConstruction(ctx, out, kpis)
	case entity.SectorRestaurant, entity.SectorPharmacy, entity.SectorHotel, entity.SectorAgribusiness:
		out.Available = false
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (uc *OverviewUseCase) fillRetail(ctx context.Context, out *dto.OverviewDTO, kpis entity.KPIs) error {
	type sellersResult struct {
		items []*entity.TopSeller
		err   error
	}
	type activitiesResult struct {
		items []*entity.Activity
		err   error
	}
	type sharesResult struct {
		items []entity.Share
		err   error
	}

	sellersCh := make(chan sellersResult, 1)
	activitiesCh := make(chan activitiesResult, 1)
	categoryCh := make(chan sharesResult, 1)
	statusCh := make(chan sharesResult, 1)

	go func() {
		items, err := uc.analyticsRepo.GetTopSellers(ctx, entity.SectorRetail, overviewTopSellers)
		sellersCh <- sellersResult{items, err}
	}()
	go func() {
		items, err := uc.analyticsRepo.GetActivities(ctx, entity.SectorRetail)
		activitiesCh <- activitiesResult{items, err}
	}()
	go func() {
		items, err := uc.analyticsRepo.GetCategoryShare(ctx, entity.SectorRetail)
		categoryCh <- sharesResult{items, err}
	}()
	go func() {
		items, err := uc.analyticsRepo.GetInventoryStatus(ctx, entity.SectorRetail)
		statusCh <- sharesResult{items, err}
	}()

	sellers := <-sellersCh
	activities := <-activitiesCh
	category := <-categoryCh
	status := <-statusCh

	if sellers.err != nil {
		return fmt.Errorf("overview: top ventas: %w", sellers.err)
	}
	if activities.err != nil {
		return fmt.Errorf("overview: actividades: %w", activities.err)
	}
	if category.err != nil {
		return fmt.Errorf("overview: categorías: %w", category.err)
	}
	if status.err != nil {
		return fmt.Errorf("overview: estado de inventario: %w", status.err)
	}

	sales, err := uc.SalesSeries(ctx, entity.SectorRetail, RangeWeek)
	if err != nil {
		return err
	}

	out.Stats = []dto.StatDTO{
		{Label: "Total Products", Value: money.FormatInt(int64(kpis.TotalProducts)), Icon: "shopping-bag"},
		{Label: "Today's Sales", Value: money.FormatRWF(kpis.TodaySales), Icon: "dollar-sign"},
		{Label: "Customers", Value: money.FormatInt(int64(kpis.Customers)), Icon: "users"},
		{Label: "Low Stock Items", Value: money.FormatInt(int64(kpis.LowStockItems)), Icon: "alert-triangle"},
	}
	out.TopSellers = make([]dto.TopSellerDTO, 0, len(sellers.items))
	for _, s := range sellers.items {
		out.TopSellers = append(out.TopSellers, dto.TopSellerDTO{
			ID: s.ID, Name: s.Name, Category: s.Category, Sold: s.Sold, Revenue: s.Revenue,
		})
	}
	out.Sales = sales
	out.CategoryShare = toShares(category.items)
	out.InventoryStatus = toShares(status.items)
	out.Activities = toActivities(activities.items)
	return nil
}

func (uc *OverviewUseCase) fillConstruction(ctx context.Context, out *dto.OverviewDTO, kpis entity.KPIs) error {
	projects, err := uc.projectRepo.ListProjects(ctx, entity.SectorConstruction)
	if err != nil {
		return fmt.Errorf("overview: obras: %w", err)
	}
	materials, err := uc.projectRepo.ListMaterials(ctx, entity.SectorConstruction)
	if err != nil {
		return fmt.Errorf("overview: materiales: %w", err)
	}
	activities, err := uc.analyticsRepo.GetActivities(ctx, entity.SectorConstruction)
	if err != nil {
		return fmt.Errorf("overview: actividades: %w", err)
	}

	// Las obras activas se cuentan del listado, no de los KPIs.
	out.Stats = []dto.StatDTO{
		{Label: "Active Projects", Value: money.FormatInt(int64(len(projects))), Icon: "tool"},
		{Label: "Total Budget", Value: money.FormatRWF(kpis.TotalBudget), Icon: "dollar-sign"},
		{Label: "Workers", Value: money.FormatInt(int64(kpis.Workers)), Icon: "users"},
		{Label: "Low Stock Materials", Value: money.FormatInt(int64(kpis.LowStockMaterials)), Icon: "alert-triangle"},
	}
	out.Projects = make([]dto.ProjectDTO, 0, len(projects))
	for _, p := range projects {
		out.Projects = append(out.Projects, dto.ProjectDTO{
			ID:        p.ID,
			Name:      p.Name,
			Client:    p.Client,
			Location:  p.Location,
			Progress:  p.Progress,
			StartDate: p.StartDate.Format(projectDateLayout),
			EndDate:   p.EndDate.Format(projectDateLayout),
		})
	}
	out.Materials = make([]dto.MaterialDTO, 0, len(materials))
	for _, m := range materials {
		out.Materials = append(out.Materials, dto.MaterialDTO{
			Name:        m.Name,
			Stock:       m.Stock,
			Unit:        m.Unit,
			AssignedTo:  m.AssignedTo,
			Status:      m.Status,
			StatusLabel: materialStatusLabel(m.Status),
		})
	}
	out.Activities = toActivities(activities)
	return nil
}

// SalesSeries serie de ventas del sector para el rango (desconocido = week).
func (uc *OverviewUseCase) SalesSeries(ctx context.Context, sector entity.Sector, rangeName string) (*dto.SalesSeriesDTO, error) {
	r := NormalizeRange(rangeName)
	points, err := uc.analyticsRepo.GetSalesSeries(ctx, sector, r)
	if err != nil {
		return nil, fmt.Errorf("overview: serie de ventas: %w", err)
	}
	out := &dto.SalesSeriesDTO{
		Range:  r,
		Labels: make([]string, 0, len(points)),
		Values: make([]decimal.Decimal, 0, len(points)),
	}
	for _, p := range points {
		out.Labels = append(out.Labels, p.Label)
		out.Values = append(out.Values, p.Value)
	}
	return out, nil
}

func materialStatusLabel(status string) string {
	switch status {
	case entity.MaterialInStock:
		return "In Stock"
	case entity.MaterialLowStock:
		return "Low Stock"
	case entity.MaterialOutOfStock:
		return "Out of Stock"
	}
	return status
}

func toShares(items []entity.Share) []dto.ShareDTO {
	out := make([]dto.ShareDTO, 0, len(items))
	for _, s := range items {
		out = append(out, dto.ShareDTO{Label: s.Label, Value: s.Value})
	}
	return out
}

func toActivities(items []*entity.Activity) []dto.ActivityDTO {
	out := make([]dto.ActivityDTO, 0, len(items))
	for _, a := range items {
		out = append(out, dto.ActivityDTO{Time: a.Time, Title: a.Title, Description: a.Description})
	}
	return out
}
