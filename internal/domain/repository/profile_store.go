package repository

import "context"

// Claves del almacenamiento durable por perfil (equivalente al localStorage del navegador).
const (
	KeyUser           = "user"           // entity.Session serializada en JSON
	KeySelectedSector = "selectedSector" // entity.Sector en texto plano
	KeyRegisteredUser = "registeredUser" // entity.RegisteredProfile en JSON
)

// ProfileStore define el puerto de persistencia key-value particionado por perfil (DIP).
// Los valores son opacos para el dominio; solo importa existencia y round-trip.
type ProfileStore interface {
	// Get devuelve found=false (sin error) si la clave no existe.
	Get(ctx context.Context, profileID, key string) (value string, found bool, err error)
	Set(ctx context.Context, profileID, key, value string) error
	// Delete elimina todas las claves en una sola transacción; claves ausentes no son error.
	Delete(ctx context.Context, profileID string, keys ...string) error
}
