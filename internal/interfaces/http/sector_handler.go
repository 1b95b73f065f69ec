package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/sectorflow-api/internal/application/dto"
	"github.com/jhoicas/sectorflow-api/internal/application/routing"
	"github.com/jhoicas/sectorflow-api/internal/application/sector"
	"github.com/jhoicas/sectorflow-api/internal/application/theme"
	"github.com/jhoicas/sectorflow-api/pkg/logger"
)

// SectorHandler pantalla de selección de sector.
type SectorHandler struct {
	sectors *sector.Manager
	log     *logger.Logger
}

// NewSectorHandler construye el handler.
func NewSectorHandler(sectors *sector.Manager, log *logger.Logger) *SectorHandler {
	return &SectorHandler{sectors: sectors, log: log.Component("sector_handler")}
}

// List godoc
// @Summary      Sectores disponibles
// @Tags         sector
// @Produce      json
// @Success      200  {array}  dto.SectorOptionDTO
// @Router       /api/sectors [get]
func (h *SectorHandler) List(c *fiber.Ctx) error {
	opts := sector.Options()
	out := make([]dto.SectorOptionDTO, 0, len(opts))
	for _, o := range opts {
		out = append(out, dto.SectorOptionDTO{
			ID:          o.Sector.String(),
			Name:        o.Name,
			Description: o.Description,
			Color:       o.Color,
			Features:    o.Features,
		})
	}
	return c.JSON(out)
}

// Set godoc
// @Summary      Seleccionar sector
// @Tags         sector
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SetSectorRequest  true  "sector"
// @Success      200   {object}  dto.SectorResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/sector [put]
func (h *SectorHandler) Set(c *fiber.Ctx) error {
	var in dto.SetSectorRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	s, err := h.sectors.Set(c.Context(), GetProfileID(c), in.Sector)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.SectorResponse{
		Sector: s.String(),
		Theme:  toPaletteDTO(theme.Resolve(s)),
		Next:   routing.PathDashboard,
	})
}
