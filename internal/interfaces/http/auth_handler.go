package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/sectorflow-api/internal/application/auth"
	"github.com/jhoicas/sectorflow-api/internal/application/dto"
	"github.com/jhoicas/sectorflow-api/internal/application/routing"
	"github.com/jhoicas/sectorflow-api/internal/application/sector"
	"github.com/jhoicas/sectorflow-api/internal/domain/entity"
	"github.com/jhoicas/sectorflow-api/pkg/logger"
)

// AuthHandler maneja registro, login y logout del perfil.
type AuthHandler struct {
	sessions *auth.SessionManager
	sectors  *sector.Manager
	log      *logger.Logger
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(sessions *auth.SessionManager, sectors *sector.Manager, log *logger.Logger) *AuthHandler {
	return &AuthHandler{sessions: sessions, sectors: sectors, log: log.Component("auth_handler")}
}

// Register godoc
// @Summary      Registrar negocio
// @Description  Valida todos los campos a la vez; no inicia sesión.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "datos del negocio"
// @Success      201   {object}  dto.RegisteredProfileResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	p, err := h.sessions.Register(c.Context(), GetProfileID(c), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.RegisteredProfileResponse{
		ID:           p.ID,
		Name:         p.Name,
		Email:        p.Email,
		Role:         p.Role,
		BusinessName: p.BusinessName,
		BusinessID:   p.BusinessID,
		CreatedAt:    p.CreatedAt,
		Next:         routing.PathLogin,
	})
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	profileID := GetProfileID(c)
	s, err := h.sessions.Login(c.Context(), profileID, in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	// Siguiente pantalla: la que renderiza /login ya autenticado.
	next, _, err := routing.Follow(true, h.sectors.Restore(c.Context(), profileID).Sector, routing.PathLogin)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.LoginResponse{User: toSessionResponse(s), Next: next.Path})
}

// Logout godoc
// @Summary      Cerrar sesión
// @Description  Borra sesión y sector. Idempotente.
// @Tags         auth
// @Success      204
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.sessions.Logout(c.Context(), GetProfileID(c)); err != nil {
		return writeError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func toSessionResponse(s *entity.Session) dto.SessionResponse {
	return dto.SessionResponse{
		ID:         s.UserID,
		Name:       s.Name,
		Email:      s.Email,
		Role:       s.Role,
		BusinessID: s.BusinessID,
	}
}
