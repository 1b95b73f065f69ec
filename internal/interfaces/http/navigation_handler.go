package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/sectorflow-api/internal/application/dto"
	"github.com/jhoicas/sectorflow-api/internal/application/routing"
	"github.com/jhoicas/sectorflow-api/internal/application/theme"
	"github.com/jhoicas/sectorflow-api/internal/domain/entity"
	"github.com/jhoicas/sectorflow-api/pkg/logger"
)

// AppPrefix prefijo bajo el que se exponen las páginas virtuales (/app/dashboard, ...).
const AppPrefix = "/app"

// NavigationHandler expone el estado del perfil y las decisiones del router.
type NavigationHandler struct {
	log *logger.Logger
}

// NewNavigationHandler construye el handler.
func NewNavigationHandler(log *logger.Logger) *NavigationHandler {
	return &NavigationHandler{log: log.Component("navigation_handler")}
}

// State godoc
// @Summary      Estado del perfil
// @Description  Sesión, sector, tema y bandera de carga.
// @Tags         navigation
// @Produce      json
// @Success      200  {object}  dto.StateResponse
// @Router       /api/state [get]
func (h *NavigationHandler) State(c *fiber.Ctx) error {
	st := GetNavState(c)
	out := dto.StateResponse{
		IsAuthenticated: st.IsAuthenticated(),
		IsLoading:       !st.Ready(),
		Theme:           toPaletteDTO(theme.Resolve(st.SelectedSector())),
	}
	if st.Session.Session != nil {
		u := toSessionResponse(st.Session.Session)
		out.User = &u
	}
	if s := st.SelectedSector(); s.Valid() {
		v := s.String()
		out.Sector = &v
	}
	return c.JSON(out)
}

// Route godoc
// @Summary      Resolver una ruta
// @Description  Decisión inmediata y cadena de redirecciones hasta el render.
// @Tags         navigation
// @Produce      json
// @Param        path  query  string  true  "ruta pedida, ej: /dashboard/inventory"
// @Success      200   {object}  dto.RouteResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/route [get]
func (h *NavigationHandler) Route(c *fiber.Ctx) error {
	requested := c.Query("path", routing.PathRoot)
	st := GetNavState(c)

	first := routing.ResolveState(st, requested)
	final, hops, err := routing.FollowState(st, requested)
	if err != nil {
		return writeError(c, h.log, err)
	}
	if hops == nil {
		hops = []string{}
	}
	return c.JSON(dto.RouteResponse{
		Requested: requested,
		Decision:  toDecisionDTO(first),
		Final:     toDecisionDTO(final),
		Hops:      hops,
	})
}

// Page resuelve /app/* como lo haría el navegador: 302 a la página destino en
// redirecciones y JSON con la página en renders.
// @Summary      Página virtual
// @Tags         navigation
// @Produce      json
// @Param        path  path  string  false  "ruta bajo /app"
// @Success      200   {object}  dto.RouteDecisionDTO
// @Success      302
// @Router       /app/{path} [get]
func (h *NavigationHandler) Page(c *fiber.Ctx) error {
	requested := "/" + strings.TrimPrefix(c.Params("*"), "/")
	d := routing.ResolveState(GetNavState(c), requested)
	switch d.Action {
	case routing.ActionRedirect:
		return c.Redirect(AppPrefix+d.Target, fiber.StatusFound)
	case routing.ActionLoading:
		return c.Status(fiber.StatusServiceUnavailable).JSON(toDecisionDTO(d))
	case routing.ActionRender:
	}
	return c.JSON(toDecisionDTO(d))
}

// Theme godoc
// @Summary      Paleta del sector actual
// @Tags         navigation
// @Produce      json
// @Success      200  {object}  dto.PaletteDTO
// @Router       /api/theme [get]
func (h *NavigationHandler) Theme(c *fiber.Ctx) error {
	return c.JSON(toPaletteDTO(theme.Resolve(GetNavState(c).SelectedSector())))
}

// Menu godoc
// @Summary      Sidebar del dashboard
// @Tags         dashboard
// @Produce      json
// @Param        current  query  string  false  "ruta actual para marcar el activo"
// @Success      200  {object}  dto.MenuResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/dashboard/menu [get]
func (h *NavigationHandler) Menu(c *fiber.Ctx) error {
	s := GetNavState(c).SelectedSector()
	items := routing.Menu(s, c.Query("current", routing.PathDashboard))
	out := dto.MenuResponse{
		Sector:      s.String(),
		SectorLabel: s.DisplayName(),
		Accent:      theme.Resolve(s).Colors.Accent,
		Items:       make([]dto.MenuItemDTO, 0, len(items)),
	}
	for _, it := range items {
		out.Items = append(out.Items, dto.MenuItemDTO{Path: it.Path, Label: it.Label, Icon: it.Icon, Active: it.Active})
	}
	return c.JSON(out)
}

func toPaletteDTO(p theme.Palette) dto.PaletteDTO {
	return dto.PaletteDTO{Name: p.Name, Colors: p.Colors.Map()}
}

func toDecisionDTO(d routing.Decision) dto.RouteDecisionDTO {
	return dto.RouteDecisionDTO{
		Path:    d.Path,
		Action:  string(d.Action),
		Page:    string(d.Page),
		Target:  d.Target,
		Subpath: d.Subpath,
		View:    string(d.View),
	}
}

// sectorOf atajo para handlers detrás del guard del dashboard.
func sectorOf(c *fiber.Ctx) entity.Sector {
	return GetNavState(c).SelectedSector()
}
