// Package sqlite implementa ProfileStore sobre un archivo SQLite embebido (modernc.org/sqlite, sin cgo).
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/jhoicas/sectorflow-api/internal/domain/repository"
)

var _ repository.ProfileStore = (*ProfileStore)(nil)

const schema = `
CREATE TABLE IF NOT EXISTS profile_storage (
	profile_id TEXT NOT NULL,
	key        TEXT NOT NULL,
	value      TEXT NOT NULL,
	updated_at TIMESTAMP NOT NULL,
	PRIMARY KEY (profile_id, key)
)`

// ProfileStore adaptador de persistencia key-value por perfil.
type ProfileStore struct {
	db *sql.DB
}

// Open abre (o crea) la base en path y asegura el esquema.
// Los directorios padre se crean si no existen.
func Open(path string) (*ProfileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de la base: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("abrir sqlite: %w", err)
	}
	// WAL: lectores concurrentes mientras un escritor confirma.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("activar WAL: %w", err)
	}
	if _, err := db.Exec("PRAGMA busy_timeout=5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("busy_timeout: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("crear esquema: %w", err)
	}
	return &ProfileStore{db: db}, nil
}

// Close cierra la base.
func (s *ProfileStore) Close() error {
	return s.db.Close()
}

// Ping verifica la conexión (health check).
func (s *ProfileStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Get lee una clave del perfil.
func (s *ProfileStore) Get(ctx context.Context, profileID, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM profile_storage WHERE profile_id = ? AND key = ?`,
		profileID, key,
	).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("get %s: %w", key, err)
	}
	return value, true, nil
}

// Set inserta o reemplaza el valor.
func (s *ProfileStore) Set(ctx context.Context, profileID, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO profile_storage (profile_id, key, value, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (profile_id, key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		profileID, key, value, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// Delete elimina las claves dentro de una transacción.
func (s *ProfileStore) Delete(ctx context.Context, profileID string, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, k := range keys {
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM profile_storage WHERE profile_id = ? AND key = ?`, profileID, k,
		); err != nil {
			return fmt.Errorf("delete %s: %w", k, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
