// Package auth contiene el gestor de sesión del perfil: login, registro y logout
// contra el backend simulado, y la restauración de la sesión al arrancar.
package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/sectorflow-api/internal/application/dto"
	"github.com/jhoicas/sectorflow-api/internal/domain"
	"github.com/jhoicas/sectorflow-api/internal/domain/entity"
	"github.com/jhoicas/sectorflow-api/internal/domain/repository"
	"github.com/jhoicas/sectorflow-api/pkg/logger"
)

// Identidad que devuelve el backend simulado cuando no hay registro previo con ese email.
const (
	MockUserID     = "1"
	MockUserName   = "Test User"
	MockBusinessID = "123"
)

// MinPasswordLength longitud mínima del password en el registro, en caracteres.
const MinPasswordLength = 6

var emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)

// Config parámetros del gestor de sesión.
type Config struct {
	// SimulatedLatency demora artificial de login/registro (0 = ninguna).
	SimulatedLatency time.Duration
}

// SessionState estado de sesión del perfil. El valor cero está "cargando".
type SessionState struct {
	Session  *entity.Session
	Restored bool
}

// IsAuthenticated informa si hay sesión.
func (s SessionState) IsAuthenticated() bool { return s.Session != nil }

// IsLoading es true hasta que termina la lectura inicial del almacenamiento.
func (s SessionState) IsLoading() bool { return !s.Restored }

// SessionManager gestiona la sesión persistida bajo la clave "user".
type SessionManager struct {
	store repository.ProfileStore
	log   *logger.Logger
	cfg   Config
}

// NewSessionManager construye el gestor de sesión.
func NewSessionManager(store repository.ProfileStore, log *logger.Logger, cfg Config) *SessionManager {
	return &SessionManager{store: store, log: log.Component("session"), cfg: cfg}
}

// Restore lee la sesión del perfil. Ausencia, error de lectura o JSON inválido
// se tratan igual: sesión vacía.
func (m *SessionManager) Restore(ctx context.Context, profileID string) SessionState {
	raw, found, err := m.store.Get(ctx, profileID, repository.KeyUser)
	if err != nil {
		m.log.Warn().Err(err).Str("profile_id", profileID).Msg("restaurar sesión: lectura fallida, se trata como vacía")
		return SessionState{Restored: true}
	}
	if !found {
		return SessionState{Restored: true}
	}
	var s *entity.Session
	if err := json.Unmarshal([]byte(raw), &s); err != nil || s == nil {
		m.log.Warn().Str("profile_id", profileID).Msg("restaurar sesión: valor ilegible, se trata como vacía")
		return SessionState{Restored: true}
	}
	return SessionState{Session: s, Restored: true}
}

// Login autentica contra el backend simulado: cualquier par email/password no vacío es válido.
// La sesión queda persistida antes de retornar.
func (m *SessionManager) Login(ctx context.Context, profileID string, in dto.LoginRequest) (*entity.Session, error) {
	email := strings.TrimSpace(in.Email)
	if email == "" || in.Password == "" {
		return nil, &domain.AuthError{Reason: "email o password vacío"}
	}
	if err := m.simulateLatency(ctx); err != nil {
		return nil, err
	}

	session := &entity.Session{
		UserID:     MockUserID,
		Name:       MockUserName,
		Email:      email,
		Role:       entity.RoleOwner,
		BusinessID: MockBusinessID,
	}
	if reg := m.registeredProfile(ctx, profileID); reg != nil && strings.EqualFold(reg.Email, email) {
		session.UserID = reg.ID
		session.Name = reg.Name
		session.BusinessID = reg.BusinessID
	}

	raw, err := json.Marshal(session)
	if err != nil {
		return nil, fmt.Errorf("login: serializar sesión: %w", err)
	}
	if err := m.store.Set(ctx, profileID, repository.KeyUser, string(raw)); err != nil {
		return nil, fmt.Errorf("login: persistir sesión: %w", err)
	}
	m.log.Info().Str("profile_id", profileID).Str("user_id", session.UserID).Msg("sesión iniciada")
	return session, nil
}

// Register valida el formulario completo (todos los errores a la vez), guarda el
// perfil registrado bajo "registeredUser" y NO autentica: se requiere login posterior.
func (m *SessionManager) Register(ctx context.Context, profileID string, in dto.RegisterRequest) (*entity.RegisteredProfile, error) {
	if verr := ValidateRegistration(in); verr.HasErrors() {
		return nil, verr
	}
	if err := m.simulateLatency(ctx); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("register: hash password: %w", err)
	}
	profile := &entity.RegisteredProfile{
		ID:           uuid.New().String(),
		Name:         strings.TrimSpace(in.OwnerName),
		Email:        strings.TrimSpace(in.Email),
		Role:         entity.RoleOwner,
		BusinessName: strings.TrimSpace(in.BusinessName),
		BusinessID:   uuid.New().String(),
		Phone:        strings.TrimSpace(in.Phone),
		Address:      strings.TrimSpace(in.Address),
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	raw, err := json.Marshal(profile)
	if err != nil {
		return nil, fmt.Errorf("register: serializar perfil: %w", err)
	}
	if err := m.store.Set(ctx, profileID, repository.KeyRegisteredUser, string(raw)); err != nil {
		return nil, fmt.Errorf("register: persistir perfil: %w", err)
	}

	// Un sector elegido en una sesión anterior sigue guardado; se informa pero no se borra.
	if _, found, err := m.store.Get(ctx, profileID, repository.KeySelectedSector); err == nil && found {
		m.log.Warn().Str("profile_id", profileID).Msg("registro con selectedSector previo en el perfil")
	}
	m.log.Info().Str("profile_id", profileID).Str("business_id", profile.BusinessID).Msg("negocio registrado")
	return profile, nil
}

// Logout borra sesión y sector juntos. Es idempotente.
func (m *SessionManager) Logout(ctx context.Context, profileID string) error {
	if err := m.store.Delete(ctx, profileID, repository.KeyUser, repository.KeySelectedSector); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	m.log.Info().Str("profile_id", profileID).Msg("sesión cerrada")
	return nil
}

// ValidateRegistration devuelve un ValidationError con cada campo inválido (vacío si todo es válido).
func ValidateRegistration(in dto.RegisterRequest) *domain.ValidationError {
	v := domain.NewValidationError()

	if strings.TrimSpace(in.BusinessName) == "" {
		v.Add("businessName", "Business name is required")
	}
	if strings.TrimSpace(in.OwnerName) == "" {
		v.Add("ownerName", "Owner name is required")
	}
	switch email := strings.TrimSpace(in.Email); {
	case email == "":
		v.Add("email", "Email is required")
	case !emailPattern.MatchString(email):
		v.Add("email", "Email is invalid")
	}
	switch {
	case in.Password == "":
		v.Add("password", "Password is required")
	case utf8.RuneCountInString(in.Password) < MinPasswordLength:
		v.Add("password", fmt.Sprintf("Password must be at least %d characters", MinPasswordLength))
	}
	if in.Password != in.ConfirmPassword {
		v.Add("confirmPassword", "Passwords do not match")
	}
	if strings.TrimSpace(in.Phone) == "" {
		v.Add("phone", "Phone number is required")
	}
	if strings.TrimSpace(in.Address) == "" {
		v.Add("address", "Address is required")
	}
	return v
}

func (m *SessionManager) registeredProfile(ctx context.Context, profileID string) *entity.RegisteredProfile {
	raw, found, err := m.store.Get(ctx, profileID, repository.KeyRegisteredUser)
	if err != nil || !found {
		return nil
	}
	var p entity.RegisteredProfile
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return nil
	}
	return &p
}

func (m *SessionManager) simulateLatency(ctx context.Context) error {
	if m.cfg.SimulatedLatency <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(m.cfg.SimulatedLatency)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
