package routing

import (
	"context"

	"github.com/jhoicas/sectorflow-api/internal/application/auth"
	"github.com/jhoicas/sectorflow-api/internal/application/sector"
	"github.com/jhoicas/sectorflow-api/internal/domain/entity"
)

// State estado de navegación del perfil: sesión y sector.
type State struct {
	Session auth.SessionState
	Sector  sector.State
}

// Ready solo cuando ambas restauraciones terminaron.
func (s State) Ready() bool {
	return s.Session.Restored && s.Sector.Restored
}

// IsAuthenticated atajo sobre la sesión.
func (s State) IsAuthenticated() bool { return s.Session.IsAuthenticated() }

// SelectedSector sector actual (SectorNone si no hay).
func (s State) SelectedSector() entity.Sector { return s.Sector.Sector }

// ResolveState resuelve contra el estado; sin estado listo no hay decisión.
func ResolveState(s State, requested string) Decision {
	if !s.Ready() {
		return Decision{Path: NormalizePath(requested), Action: ActionLoading}
	}
	return Resolve(s.IsAuthenticated(), s.SelectedSector(), requested)
}

// FollowState como Follow pero respetando la compuerta de estado listo.
func FollowState(s State, requested string) (Decision, []string, error) {
	if !s.Ready() {
		return ResolveState(s, requested), nil, nil
	}
	return Follow(s.IsAuthenticated(), s.SelectedSector(), requested)
}

// Loader restaura el estado de navegación de un perfil.
type Loader struct {
	sessions *auth.SessionManager
	sectors  *sector.Manager
}

// NewLoader construye el loader.
func NewLoader(sessions *auth.SessionManager, sectors *sector.Manager) *Loader {
	return &Loader{sessions: sessions, sectors: sectors}
}

// Load restaura sesión y sector en paralelo y espera a ambos.
func (l *Loader) Load(ctx context.Context, profileID string) State {
	sessionCh := make(chan auth.SessionState, 1)
	sectorCh := make(chan sector.State, 1)

	go func() {
		sessionCh <- l.sessions.Restore(ctx, profileID)
	}()
	go func() {
		sectorCh <- l.sectors.Restore(ctx, profileID)
	}()

	return State{Session: <-sessionCh, Sector: <-sectorCh}
}
