package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/sectorflow-api/internal/infrastructure/sqlite"
)

func setEnv(t *testing.T, dbPath string) {
	t.Helper()
	t.Setenv("STORAGE_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", dbPath)
	t.Setenv("JWT_SECRET", "test-secret-key-for-unit-tests")
	t.Setenv("APP_ENV", "test")
	t.Setenv("LOG_LEVEL", "error")
}

func TestRun_SiembraPerfil(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "demo.db")
	setEnv(t, dbPath)
	require.NoError(t, run("hotel"))

	s, err := sqlite.Open(dbPath)
	require.NoError(t, err)
	defer s.Close()
	assert.NoError(t, s.Ping(context.Background()))
}

func TestRun_SectorInvalidoDevuelveErrorYCierra(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "demo.db")
	setEnv(t, dbPath)

	err := run("bakery")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "seleccionar sector")

	// el camino de error cerró la base: se puede volver a sembrar en el mismo archivo
	require.NoError(t, run("retail"))
}

func TestRun_MemoryRechazado(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("JWT_SECRET", "test-secret-key-for-unit-tests")
	assert.Error(t, run("retail"))
}
