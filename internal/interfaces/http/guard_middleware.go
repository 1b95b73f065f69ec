package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/sectorflow-api/internal/application/dto"
	"github.com/jhoicas/sectorflow-api/internal/application/routing"
)

// LocalNavState clave de Locals con el routing.State de la petición.
const LocalNavState = "nav_state"

// Guard aplica la tabla de navegación a los endpoints de la API: cada grupo se
// protege como la página equivalente (/login, /select-sector, /dashboard).
type Guard struct {
	loader *routing.Loader
}

// NewGuard construye el guard.
func NewGuard(loader *routing.Loader) *Guard {
	return &Guard{loader: loader}
}

// LoadState restaura el estado del perfil y lo deja en Locals. Debe ir tras ProfileMiddleware.
func (g *Guard) LoadState() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(LocalNavState, g.loader.Load(c.Context(), GetProfileID(c)))
		return c.Next()
	}
}

// Require deja pasar solo si la ruta virtual se renderiza con el estado actual.
//
// Comportamiento:
//   - 401 UNAUTHENTICATED       → la página redirigiría a /login o /register.
//   - 409 SECTOR_REQUIRED       → redirigiría a /select-sector.
//   - 409 ALREADY_AUTHENTICATED → redirigiría a /dashboard.
//   - 503 STATE_LOADING         → el estado aún no está restaurado.
func (g *Guard) Require(virtualPath string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		st, ok := navState(c)
		if !ok {
			st = g.loader.Load(c.Context(), GetProfileID(c))
			c.Locals(LocalNavState, st)
		}
		d := routing.ResolveState(st, virtualPath)
		switch d.Action {
		case routing.ActionRender:
			return c.Next()
		case routing.ActionLoading:
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code: "STATE_LOADING", Message: "estado del perfil aún cargando",
			})
		case routing.ActionRedirect:
		}
		return rejectRedirect(c, d.Target)
	}
}

func rejectRedirect(c *fiber.Ctx, target string) error {
	switch target {
	case routing.PathLogin, routing.PathRegister:
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Code: "UNAUTHENTICATED", Message: "se requiere iniciar sesión", Redirect: target,
		})
	case routing.PathSelectSector:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code: "SECTOR_REQUIRED", Message: "seleccione un sector primero", Redirect: target,
		})
	}
	return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
		Code: "ALREADY_AUTHENTICATED", Message: "la sesión ya está iniciada", Redirect: target,
	})
}

func navState(c *fiber.Ctx) (routing.State, bool) {
	st, ok := c.Locals(LocalNavState).(routing.State)
	return st, ok
}

// GetNavState devuelve el estado cargado por LoadState o Require.
func GetNavState(c *fiber.Ctx) routing.State {
	st, _ := navState(c)
	return st
}
