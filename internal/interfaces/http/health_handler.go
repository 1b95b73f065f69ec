package http

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/sectorflow-api/internal/domain"
	"github.com/jhoicas/sectorflow-api/pkg/logger"
)

const healthTimeout = 2 * time.Second

// Pinger almacenamiento que puede verificarse en el health check.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler liveness con verificación del almacenamiento.
type HealthHandler struct {
	service string
	store   Pinger
	log     *logger.Logger
}

// NewHealthHandler construye el handler. store nil solo informa que el proceso vive.
func NewHealthHandler(service string, store Pinger, log *logger.Logger) *HealthHandler {
	return &HealthHandler{service: service, store: store, log: log.Component("health")}
}

// Check godoc
// @Summary      Liveness
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /health [get]
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	if h.store != nil {
		ctx, cancel := context.WithTimeout(c.Context(), healthTimeout)
		defer cancel()
		if err := h.store.Ping(ctx); err != nil {
			return writeError(c, h.log, fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err))
		}
	}
	return c.JSON(fiber.Map{"status": "ok", "service": h.service})
}
