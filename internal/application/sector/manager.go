// Package sector gestiona el sector de negocio elegido por el perfil.
package sector

import (
	"context"
	"fmt"

	"github.com/jhoicas/sectorflow-api/internal/application/theme"
	"github.com/jhoicas/sectorflow-api/internal/domain"
	"github.com/jhoicas/sectorflow-api/internal/domain/entity"
	"github.com/jhoicas/sectorflow-api/internal/domain/repository"
	"github.com/jhoicas/sectorflow-api/pkg/logger"
)

// State sector del perfil. El valor cero está "cargando".
type State struct {
	Sector   entity.Sector
	Restored bool
}

// IsLoading es true hasta que termina la lectura inicial.
func (s State) IsLoading() bool { return !s.Restored }

// Manager lee y escribe la clave "selectedSector".
type Manager struct {
	store repository.ProfileStore
	log   *logger.Logger
}

// NewManager construye el gestor de sector.
func NewManager(store repository.ProfileStore, log *logger.Logger) *Manager {
	return &Manager{store: store, log: log.Component("sector")}
}

// Restore lee el sector guardado. Ausente, ilegible o desconocido equivale a sin sector.
func (m *Manager) Restore(ctx context.Context, profileID string) State {
	raw, found, err := m.store.Get(ctx, profileID, repository.KeySelectedSector)
	if err != nil {
		m.log.Warn().Err(err).Str("profile_id", profileID).Msg("restaurar sector: lectura fallida")
		return State{Restored: true}
	}
	if !found {
		return State{Restored: true}
	}
	s, ok := entity.ParseSector(raw)
	if !ok {
		m.log.Warn().Str("profile_id", profileID).Str("value", raw).Msg("restaurar sector: valor desconocido, se ignora")
		return State{Restored: true}
	}
	return State{Sector: s, Restored: true}
}

// Set valida y persiste el sector. No comprueba autenticación: eso lo decide el router.
func (m *Manager) Set(ctx context.Context, profileID, raw string) (entity.Sector, error) {
	s, ok := entity.ParseSector(raw)
	if !ok {
		return entity.SectorNone, fmt.Errorf("%w: %q", domain.ErrInvalidSector, raw)
	}
	if err := m.store.Set(ctx, profileID, repository.KeySelectedSector, s.String()); err != nil {
		return entity.SectorNone, fmt.Errorf("guardar sector: %w", err)
	}
	m.log.Info().Str("profile_id", profileID).Str("sector", s.String()).Msg("sector seleccionado")
	return s, nil
}

// Option tarjeta de selección de sector.
type Option struct {
	Sector      entity.Sector
	Name        string
	Description string
	Color       string
	Features    []string
}

var descriptions = map[entity.Sector]string{
	entity.SectorRetail:       "For general stores, supermarkets, and specialty shops",
	entity.SectorRestaurant:   "For eateries, cafés, and food service businesses",
	entity.SectorPharmacy:     "For pharmacies and medical supply stores",
	entity.SectorHotel:        "For hotels, guest houses, and rental properties",
	entity.SectorAgribusiness: "For farms, agricultural suppliers, and processors",
	entity.SectorConstruction: "For construction companies and contractors",
}

var features = map[entity.Sector][]string{
	entity.SectorRetail:       {"Barcode scanning", "POS interface", "Customer loyalty"},
	entity.SectorRestaurant:   {"Menu builder", "Table reservations", "Kitchen order tickets"},
	entity.SectorPharmacy:     {"Expiry tracking", "Prescription linking", "Medicine categories"},
	entity.SectorHotel:        {"Room booking", "Guest check-in/out", "Housekeeping"},
	entity.SectorAgribusiness: {"Crop records", "Harvest stock", "Seasonal sales tracking"},
	entity.SectorConstruction: {"Material stock by site", "Equipment usage", "Project-specific inventory"},
}

// Options devuelve las seis tarjetas en el orden canónico de sectores.
func Options() []Option {
	out := make([]Option, 0, len(entity.AllSectors))
	for _, s := range entity.AllSectors {
		f := make([]string, len(features[s]))
		copy(f, features[s])
		out = append(out, Option{
			Sector:      s,
			Name:        s.DisplayName(),
			Description: descriptions[s],
			Color:       theme.Resolve(s).Colors.Accent,
			Features:    f,
		})
	}
	return out
}
