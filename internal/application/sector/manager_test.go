package sector_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/sectorflow-api/internal/application/sector"
	"github.com/jhoicas/sectorflow-api/internal/domain"
	"github.com/jhoicas/sectorflow-api/internal/domain/entity"
	"github.com/jhoicas/sectorflow-api/internal/domain/repository"
	"github.com/jhoicas/sectorflow-api/internal/infrastructure/memory"
	"github.com/jhoicas/sectorflow-api/pkg/logger"
)

func TestManager_SetYRestore(t *testing.T) {
	store := memory.NewProfileStore()
	m := sector.NewManager(store, logger.Nop())
	ctx := context.Background()

	assert.Equal(t, sector.State{Restored: true}, m.Restore(ctx, "p"))

	s, err := m.Set(ctx, "p", " construction ")
	require.NoError(t, err)
	assert.Equal(t, entity.SectorConstruction, s)

	st := m.Restore(ctx, "p")
	assert.Equal(t, entity.SectorConstruction, st.Sector)
	assert.False(t, st.IsLoading())
}

func TestManager_SectorDesconocido(t *testing.T) {
	store := memory.NewProfileStore()
	m := sector.NewManager(store, logger.Nop())
	ctx := context.Background()

	_, err := m.Set(ctx, "p", "bakery")
	assert.ErrorIs(t, err, domain.ErrInvalidSector)
	_, found, _ := store.Get(ctx, "p", repository.KeySelectedSector)
	assert.False(t, found)

	// valor guardado por una versión anterior: se ignora
	require.NoError(t, store.Set(ctx, "p", repository.KeySelectedSector, "bakery"))
	assert.Equal(t, entity.SectorNone, m.Restore(ctx, "p").Sector)
}

func TestState_ValorCeroCargando(t *testing.T) {
	assert.True(t, sector.State{}.IsLoading())
}

func TestOptions(t *testing.T) {
	opts := sector.Options()
	require.Len(t, opts, 6)
	assert.Equal(t, entity.SectorRetail, opts[0].Sector)
	assert.Equal(t, "#2ecc71", opts[0].Color)
	assert.Equal(t, []string{"Material stock by site", "Equipment usage", "Project-specific inventory"}, opts[5].Features)
	for _, o := range opts {
		assert.NotEmpty(t, o.Description)
		assert.Len(t, o.Features, 3)
	}
}
