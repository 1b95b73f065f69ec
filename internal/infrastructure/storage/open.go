// Package storage elige los backends de persistencia según STORAGE_DRIVER.
package storage

import (
	"context"
	"fmt"

	"github.com/jhoicas/sectorflow-api/internal/domain/entity"
	"github.com/jhoicas/sectorflow-api/internal/domain/repository"
	"github.com/jhoicas/sectorflow-api/internal/infrastructure/memory"
	"github.com/jhoicas/sectorflow-api/internal/infrastructure/postgres"
	"github.com/jhoicas/sectorflow-api/internal/infrastructure/sample"
	"github.com/jhoicas/sectorflow-api/internal/infrastructure/sqlite"
	"github.com/jhoicas/sectorflow-api/pkg/config"
)

// Backend almacenamiento por perfil e inventario del driver elegido.
// Con memory y sqlite el inventario es el catálogo de demostración; con postgres
// se lee de la tabla products, sembrada con ese mismo catálogo.
type Backend struct {
	Profiles repository.ProfileStore
	Products repository.ProductRepository

	ping    func(ctx context.Context) error
	closeFn func()
}

// Ping verifica que el almacenamiento responde (health check).
func (b *Backend) Ping(ctx context.Context) error {
	if b.ping == nil {
		return ctx.Err()
	}
	return b.ping(ctx)
}

// Close libera conexiones. Es seguro llamarlo más de una vez.
func (b *Backend) Close() {
	if b.closeFn != nil {
		b.closeFn()
		b.closeFn = nil
	}
}

// Open abre el backend configurado.
func Open(ctx context.Context, cfg *config.Config) (*Backend, error) {
	catalog := sample.NewCatalog()

	switch cfg.Storage.Driver {
	case config.StorageMemory:
		return &Backend{Profiles: memory.NewProfileStore(), Products: catalog}, nil

	case config.StorageSQLite:
		s, err := sqlite.Open(cfg.Storage.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("storage: sqlite: %w", err)
		}
		return &Backend{
			Profiles: s,
			Products: catalog,
			ping:     s.Ping,
			closeFn:  func() { _ = s.Close() },
		}, nil

	case config.StoragePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("storage: postgres: %w", err)
		}
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("storage: postgres: %w", err)
		}
		products := postgres.NewProductRepository(pool)
		if err := seedProducts(ctx, catalog, products); err != nil {
			pool.Close()
			return nil, fmt.Errorf("storage: postgres: %w", err)
		}
		return &Backend{
			Profiles: postgres.NewProfileStoreRepository(pool),
			Products: products,
			ping:     pool.Ping,
			closeFn:  pool.Close,
		}, nil
	}
	return nil, fmt.Errorf("storage: driver desconocido %q", cfg.Storage.Driver)
}

func seedProducts(ctx context.Context, src repository.ProductRepository, dst *postgres.ProductRepo) error {
	var all []*entity.Product
	for _, s := range entity.AllSectors {
		items, err := src.ListBySector(ctx, s)
		if err != nil {
			return fmt.Errorf("leer catálogo %s: %w", s, err)
		}
		all = append(all, items...)
	}
	return dst.Seed(ctx, all)
}
