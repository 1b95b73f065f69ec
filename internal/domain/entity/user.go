package entity

import "time"

// Rol único que emite el backend simulado.
const RoleOwner = "owner"

// Session usuario autenticado del perfil. Se serializa tal cual bajo la clave "user".
type Session struct {
	UserID     string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	BusinessID string `json:"businessId"`
}

// RegisteredProfile alta de negocio guardada bajo "registeredUser".
// No autentica: el usuario debe hacer login después del registro.
type RegisteredProfile struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"` // nombre del propietario
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	BusinessName string    `json:"businessName"`
	BusinessID   string    `json:"businessId"`
	Phone        string    `json:"phone"`
	Address      string    `json:"address"`
	PasswordHash string    `json:"passwordHash"` // bcrypt, nunca el texto plano
	CreatedAt    time.Time `json:"createdAt"`
}
