package dto

import "time"

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest formulario de alta de negocio (todos los campos obligatorios).
type RegisterRequest struct {
	BusinessName    string `json:"businessName"`
	OwnerName       string `json:"ownerName"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	Phone           string `json:"phone"`
	Address         string `json:"address"`
}

// SessionResponse usuario autenticado.
type SessionResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	BusinessID string `json:"businessId"`
}

// LoginResponse salida de login: sesión y siguiente ruta sugerida.
type LoginResponse struct {
	User SessionResponse `json:"user"`
	Next string          `json:"next"` // /dashboard si ya hay sector, /select-sector si no
}

// RegisteredProfileResponse salida del registro (sin hash de password).
type RegisteredProfileResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	BusinessName string    `json:"businessName"`
	BusinessID   string    `json:"businessId"`
	CreatedAt    time.Time `json:"createdAt"`
	Next         string    `json:"next"` // siempre /login
}
