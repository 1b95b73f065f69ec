package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/sectorflow-api/internal/application/dto"
	"github.com/jhoicas/sectorflow-api/pkg/jwt"
	"github.com/jhoicas/sectorflow-api/pkg/logger"
)

// Transporte del token de perfil.
const (
	ProfileCookie  = "sf_profile"
	ProfileHeader  = "X-Profile-Token"
	LocalProfileID = "profile_id"
)

// ProfileConfig firma de los tokens de perfil.
type ProfileConfig struct {
	Secret       string
	Issuer       string
	TTL          time.Duration
	SecureCookie bool
}

// ProfileMiddleware identifica el perfil (navegador/dispositivo) de la petición.
// El token se busca en X-Profile-Token y luego en la cookie sf_profile; si falta o
// es inválido se crea un perfil nuevo y se devuelve su token en ambos.
func ProfileMiddleware(cfg ProfileConfig, log *logger.Logger) fiber.Handler {
	log = log.Component("profile")
	return func(c *fiber.Ctx) error {
		token := c.Get(ProfileHeader)
		if token == "" {
			token = c.Cookies(ProfileCookie)
		}
		if token != "" {
			if profileID, err := jwt.ParseProfile(cfg.Secret, token); err == nil {
				c.Locals(LocalProfileID, profileID)
				return c.Next()
			}
			log.Debug().Str("path", c.Path()).Msg("token de perfil inválido, se emite uno nuevo")
		}

		profileID := uuid.NewString()
		token, err := jwt.GenerateProfile(cfg.Secret, profileID, cfg.Issuer, cfg.TTL)
		if err != nil {
			log.Error().Err(err).Msg("emitir token de perfil")
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Code: "PROFILE_ERROR", Message: "no se pudo crear el perfil",
			})
		}
		c.Cookie(&fiber.Cookie{
			Name:     ProfileCookie,
			Value:    token,
			Path:     "/",
			Expires:  time.Now().Add(cfg.TTL),
			HTTPOnly: true,
			Secure:   cfg.SecureCookie,
			SameSite: fiber.CookieSameSiteLaxMode,
		})
		c.Set(ProfileHeader, token)
		c.Locals(LocalProfileID, profileID)
		return c.Next()
	}
}

// GetProfileID devuelve el perfil del contexto (después de ProfileMiddleware).
func GetProfileID(c *fiber.Ctx) string {
	v := c.Locals(LocalProfileID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
