package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/sectorflow-api/internal/domain/repository"
)

var _ repository.ProfileStore = (*ProfileStoreRepo)(nil)

// ProfileStoreRepo implementación del puerto ProfileStore sobre PostgreSQL.
type ProfileStoreRepo struct {
	pool *pgxpool.Pool
}

// NewProfileStoreRepository construye el adaptador de persistencia por perfil.
func NewProfileStoreRepository(pool *pgxpool.Pool) *ProfileStoreRepo {
	return &ProfileStoreRepo{pool: pool}
}

// Get lee una clave del perfil; found=false si no existe.
func (r *ProfileStoreRepo) Get(ctx context.Context, profileID, key string) (string, bool, error) {
	var value string
	err := r.pool.QueryRow(ctx,
		`SELECT value FROM profile_storage WHERE profile_id = $1 AND key = $2`,
		profileID, key,
	).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("get %s: %w", key, err)
	}
	return value, true, nil
}

// Set inserta o reemplaza el valor.
func (r *ProfileStoreRepo) Set(ctx context.Context, profileID, key, value string) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO profile_storage (profile_id, key, value, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (profile_id, key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`,
		profileID, key, value,
	)
	if err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// Delete inicia una transacción, borra todas las claves y hace Commit o Rollback.
func (r *ProfileStoreRepo) Delete(ctx context.Context, profileID string, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx,
		`DELETE FROM profile_storage WHERE profile_id = $1 AND key = ANY($2)`,
		profileID, keys,
	); err != nil {
		return fmt.Errorf("delete keys: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
