package storage_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/sectorflow-api/internal/domain/entity"
	"github.com/jhoicas/sectorflow-api/internal/domain/repository"
	"github.com/jhoicas/sectorflow-api/internal/infrastructure/storage"
	"github.com/jhoicas/sectorflow-api/pkg/config"
)

func roundTrip(t *testing.T, s repository.ProfileStore) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, s.Set(ctx, "p", repository.KeySelectedSector, "hotel"))
	v, found, err := s.Get(ctx, "p", repository.KeySelectedSector)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "hotel", v)
}

func TestOpen_Memory(t *testing.T) {
	cfg := &config.Config{Storage: config.StorageConfig{Driver: config.StorageMemory}}
	b, err := storage.Open(context.Background(), cfg)
	require.NoError(t, err)
	defer b.Close()
	roundTrip(t, b.Profiles)
	assert.NoError(t, b.Ping(context.Background()))

	products, err := b.Products.ListBySector(context.Background(), entity.SectorRetail)
	require.NoError(t, err)
	assert.Len(t, products, 7)
}

func TestOpen_SQLite(t *testing.T) {
	cfg := &config.Config{Storage: config.StorageConfig{
		Driver:     config.StorageSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "nested", "profiles.db"),
	}}
	b, err := storage.Open(context.Background(), cfg)
	require.NoError(t, err)
	roundTrip(t, b.Profiles)
	assert.NoError(t, b.Ping(context.Background()))

	b.Close()
	b.Close() // idempotente
	assert.Error(t, b.Ping(context.Background()), "tras Close la base ya no responde")
}

func TestOpen_DriverDesconocido(t *testing.T) {
	cfg := &config.Config{Storage: config.StorageConfig{Driver: "redis"}}
	_, err := storage.Open(context.Background(), cfg)
	assert.Error(t, err)
}

// Requiere un PostgreSQL accesible en TEST_DATABASE_URL; si no, se omite.
func TestOpen_PostgresInventarioNumeric(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL no definido")
	}
	cfg := &config.Config{
		Storage: config.StorageConfig{Driver: config.StoragePostgres},
		DB:      config.DBConfig{DatabaseURL: dsn},
	}
	ctx := context.Background()
	b, err := storage.Open(ctx, cfg)
	require.NoError(t, err)
	defer b.Close()
	require.NoError(t, b.Ping(ctx))

	products, err := b.Products.ListBySector(ctx, entity.SectorRetail)
	require.NoError(t, err)
	require.Len(t, products, 7)
	assert.Equal(t, "Smartphone X", products[0].Name)
	assert.True(t, decimal.NewFromInt(100000).Equal(products[0].Price))
	assert.True(t, decimal.NewFromInt(80000).Equal(products[0].Cost))

	// segunda apertura: la siembra no duplica filas
	b2, err := storage.Open(ctx, cfg)
	require.NoError(t, err)
	defer b2.Close()
	again, err := b2.Products.ListBySector(ctx, entity.SectorRetail)
	require.NoError(t, err)
	assert.Len(t, again, 7)

	hotel, err := b.Products.ListBySector(ctx, entity.SectorHotel)
	require.NoError(t, err)
	assert.Empty(t, hotel)
}
