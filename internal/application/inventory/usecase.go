// Package inventory sirve la tabla de inventario del dashboard: búsqueda,
// filtro por categoría, orden y estadísticas, más su exportación a PDF.
package inventory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/sectorflow-api/internal/application/dto"
	"github.com/jhoicas/sectorflow-api/internal/domain"
	"github.com/jhoicas/sectorflow-api/internal/domain/entity"
	"github.com/jhoicas/sectorflow-api/internal/domain/repository"
	"github.com/jhoicas/sectorflow-api/pkg/money"
)

// CategoryAll valor del filtro que no filtra.
const CategoryAll = "all"

// Campos y sentidos de orden admitidos.
const (
	SortName     = "name"
	SortCategory = "category"
	SortQuantity = "quantity"
	SortPrice    = "price"
	SortBarcode  = "barcode"
	SortSupplier = "supplier"

	DirectionAsc  = "asc"
	DirectionDesc = "desc"
)

// UseCase casos de uso de inventario.
type UseCase struct {
	productRepo repository.ProductRepository
	generator   ReportGenerator
	now         func() time.Time
}

// NewUseCase construye el caso de uso. generator puede ser nil si no se exporta PDF.
func NewUseCase(productRepo repository.ProductRepository, generator ReportGenerator) *UseCase {
	return &UseCase{productRepo: productRepo, generator: generator, now: time.Now}
}

// NormalizeQuery aplica valores por defecto y valida orden y sentido.
func NormalizeQuery(q dto.InventoryQuery) (dto.InventoryQuery, error) {
	q.Search = strings.TrimSpace(q.Search)
	q.Category = strings.TrimSpace(q.Category)
	if q.Category == "" {
		q.Category = CategoryAll
	}
	q.Sort = strings.ToLower(strings.TrimSpace(q.Sort))
	if q.Sort == "" {
		q.Sort = SortName
	}
	q.Direction = strings.ToLower(strings.TrimSpace(q.Direction))
	if q.Direction == "" {
		q.Direction = DirectionAsc
	}

	verr := domain.NewValidationError()
	if _, ok := comparators[q.Sort]; !ok {
		verr.Add("sort", "Unsupported sort field")
	}
	if q.Direction != DirectionAsc && q.Direction != DirectionDesc {
		verr.Add("direction", "Direction must be asc or desc")
	}
	if verr.HasErrors() {
		return q, verr
	}
	return q, nil
}

// List devuelve la tabla filtrada y ordenada. Las estadísticas y categorías
// se calculan sobre todo el inventario, no sobre el resultado filtrado.
func (uc *UseCase) List(ctx context.Context, sector entity.Sector, q dto.InventoryQuery) (*dto.InventoryListDTO, error) {
	if !sector.Valid() {
		return nil, fmt.Errorf("inventario: %w", domain.ErrInvalidSector)
	}
	q, err := NormalizeQuery(q)
	if err != nil {
		return nil, err
	}

	out := &dto.InventoryListDTO{
		Sector:     sector.String(),
		Title:      "Inventory Management",
		Query:      q,
		Categories: []string{},
		Items:      []dto.InventoryItemDTO{},
	}
	if sector != entity.SectorRetail {
		out.Title = sector.ShortName() + " Inventory Management"
		return out, nil
	}

	products, err := uc.productRepo.ListBySector(ctx, sector)
	if err != nil {
		return nil, fmt.Errorf("inventario: listar productos: %w", err)
	}
	out.Available = true
	out.Categories = Categories(products)
	out.Stats = ComputeStats(products)

	filtered := Filter(products, q.Search, q.Category)
	Sort(filtered, q.Sort, q.Direction)
	for _, p := range filtered {
		out.Items = append(out.Items, toItemDTO(p))
	}
	return out, nil
}

// Report genera el PDF de la misma vista que List.
func (uc *UseCase) Report(ctx context.Context, sector entity.Sector, q dto.InventoryQuery) ([]byte, string, error) {
	if uc.generator == nil {
		return nil, "", fmt.Errorf("inventario: generador de PDF no configurado")
	}
	list, err := uc.List(ctx, sector, q)
	if err != nil {
		return nil, "", err
	}
	if !list.Available {
		return nil, "", fmt.Errorf("%w: el sector %s no tiene inventario", domain.ErrNotFound, sector)
	}

	now := uc.now()
	pdf, err := uc.generator.GenerateInventoryPDF(ctx, &ReportData{
		Title:       list.Title,
		SectorLabel: sector.DisplayName(),
		GeneratedAt: now,
		Query:       list.Query,
		Stats:       list.Stats,
		Items:       list.Items,
	})
	if err != nil {
		return nil, "", fmt.Errorf("inventario: generar pdf: %w", err)
	}
	filename := fmt.Sprintf("inventory-%s-%s.pdf", sector, now.Format("20060102"))
	return pdf, filename, nil
}

// Filter búsqueda sin distinguir mayúsculas en nombre, categoría, proveedor y código,
// más filtro exacto por categoría ("all" no filtra).
func Filter(products []*entity.Product, search, category string) []*entity.Product {
	term := strings.ToLower(strings.TrimSpace(search))
	out := make([]*entity.Product, 0, len(products))
	for _, p := range products {
		if category != "" && category != CategoryAll && p.Category != category {
			continue
		}
		if term != "" && !matches(p, term) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matches(p *entity.Product, term string) bool {
	for _, f := range []string{p.Name, p.Category, p.Supplier, p.Barcode} {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

var comparators = map[string]func(a, b *entity.Product) int{
	SortName:     func(a, b *entity.Product) int { return strings.Compare(a.Name, b.Name) },
	SortCategory: func(a, b *entity.Product) int { return strings.Compare(a.Category, b.Category) },
	SortQuantity: func(a, b *entity.Product) int { return a.Quantity - b.Quantity },
	SortPrice:    func(a, b *entity.Product) int { return a.Price.Cmp(b.Price) },
	SortBarcode:  func(a, b *entity.Product) int { return strings.Compare(a.Barcode, b.Barcode) },
	SortSupplier: func(a, b *entity.Product) int { return strings.Compare(a.Supplier, b.Supplier) },
}

// Sort ordena en sitio de forma estable; campos desconocidos ordenan por nombre.
func Sort(products []*entity.Product, field, direction string) {
	cmp, ok := comparators[field]
	if !ok {
		cmp = comparators[SortName]
	}
	desc := direction == DirectionDesc
	sort.SliceStable(products, func(i, j int) bool {
		c := cmp(products[i], products[j])
		if desc {
			return c > 0
		}
		return c < 0
	})
}

// ComputeStats totales del inventario completo.
func ComputeStats(products []*entity.Product) dto.InventoryStatsDTO {
	stats := dto.InventoryStatsDTO{TotalProducts: len(products), InventoryValue: decimal.Zero}
	for _, p := range products {
		stats.TotalUnits += p.Quantity
		stats.InventoryValue = stats.InventoryValue.Add(p.StockValue())
		if p.LowStock() {
			stats.LowStockItems++
		}
	}
	stats.ValueLabel = money.FormatRWF(stats.InventoryValue)
	return stats
}

// Categories "all" seguido de las categorías únicas en orden de aparición.
func Categories(products []*entity.Product) []string {
	seen := make(map[string]struct{}, len(products))
	out := []string{CategoryAll}
	for _, p := range products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out
}

func toItemDTO(p *entity.Product) dto.InventoryItemDTO {
	return dto.InventoryItemDTO{
		ID:          p.ID,
		Name:        p.Name,
		Category:    p.Category,
		Quantity:    p.Quantity,
		Price:       p.Price,
		Barcode:     p.Barcode,
		Supplier:    p.Supplier,
		LowStock:    p.LowStock(),
		LastUpdated: p.LastUpdated,
	}
}
