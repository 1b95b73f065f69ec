package domain

import (
	"errors"
	"sort"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidSector      = errors.New("sector desconocido")
	ErrStorageUnavailable = errors.New("almacenamiento no disponible")
)

// ValidationError agrupa todos los campos inválidos de una petición (no fail-fast).
// Es recuperable y nunca implica mutación de estado.
type ValidationError struct {
	Fields map[string]string // campo -> mensaje
}

// NewValidationError construye un ValidationError vacío listo para Add.
func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string]string)}
}

// Add registra el mensaje del campo; el primero gana si se repite.
func (e *ValidationError) Add(field, message string) {
	if _, ok := e.Fields[field]; ok {
		return
	}
	e.Fields[field] = message
}

// HasErrors informa si se registró al menos un campo.
func (e *ValidationError) HasErrors() bool {
	return e != nil && len(e.Fields) > 0
}

// Keys devuelve los nombres de campo ordenados.
func (e *ValidationError) Keys() []string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (e *ValidationError) Error() string {
	return "validación: " + strings.Join(e.Keys(), ", ")
}

// Unwrap permite errors.Is(err, ErrInvalidInput).
func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// AuthError credenciales rechazadas; se expone siempre con un mensaje genérico.
type AuthError struct {
	Reason string // detalle interno, solo para logs
}

func (e *AuthError) Error() string { return ErrInvalidCredentials.Error() }

// Unwrap permite errors.Is(err, ErrInvalidCredentials).
func (e *AuthError) Unwrap() error { return ErrInvalidCredentials }
