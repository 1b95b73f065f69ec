// Package memory implementa ProfileStore en memoria (desarrollo y tests).
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/sectorflow-api/internal/domain/repository"
)

var _ repository.ProfileStore = (*ProfileStore)(nil)

// ProfileStore mapa profileID -> clave -> valor protegido por mutex.
type ProfileStore struct {
	mu   sync.RWMutex
	data map[string]map[string]string
}

// NewProfileStore construye un store vacío.
func NewProfileStore() *ProfileStore {
	return &ProfileStore{data: make(map[string]map[string]string)}
}

// Get devuelve el valor de la clave del perfil.
func (s *ProfileStore) Get(ctx context.Context, profileID, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[profileID][key]
	return v, ok, nil
}

// Set guarda o reemplaza el valor.
func (s *ProfileStore) Set(ctx context.Context, profileID, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	kv, ok := s.data[profileID]
	if !ok {
		kv = make(map[string]string)
		s.data[profileID] = kv
	}
	kv[key] = value
	return nil
}

// Delete elimina las claves bajo un único lock.
func (s *ProfileStore) Delete(ctx context.Context, profileID string, keys ...string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	kv, ok := s.data[profileID]
	if !ok {
		return nil
	}
	for _, k := range keys {
		delete(kv, k)
	}
	if len(kv) == 0 {
		delete(s.data, profileID)
	}
	return nil
}
