package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/sectorflow-api/pkg/logger"
)

// RequestLogger registra método, ruta, estado y latencia de cada petición.
// Debe registrarse después de requestid para incluir el X-Request-ID.
func RequestLogger(log *logger.Logger) fiber.Handler {
	log = log.Component("http")
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		ev := log.Info()
		if status >= fiber.StatusInternalServerError {
			ev = log.Error().Err(err)
		}
		ev.Str("request_id", c.GetRespHeader(fiber.HeaderXRequestID)).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("profile_id", GetProfileID(c)).
			Msg("petición")
		return err
	}
}
