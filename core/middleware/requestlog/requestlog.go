package requestlog

import (
	"errors"
	"time"

	"testsrv/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// New returns a middleware logging every request after it completes.
// Client errors are logged at Warn, server errors at Error.
func New(log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			}
		}

		l := logger.WithRayID(log, c)
		fields := []zap.Field{
			zap.String("method", c.Method()),
			zap.String("path", c.OriginalURL()),
			zap.Int("status", status),
			zap.String("ip", c.IP()),
			zap.Duration("duration", time.Since(start)),
		}

		switch {
		case status >= fiber.StatusInternalServerError:
			l.Error("Request failed", append(fields, zap.Error(err))...)
		case status >= fiber.StatusBadRequest:
			l.Warn("Request rejected", fields...)
		default:
			l.Info("Request served", fields...)
		}

		return err
	}
}
