package rayid

import (
	"testsrv/core/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HeaderName is the response header carrying the RayID.
const HeaderName = "X-Ray-ID"

// New returns a middleware assigning a RayID to every request.
// An incoming X-Ray-ID header is reused so callers can correlate their own logs.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(HeaderName)
		if id == "" {
			id = uuid.NewString()
		}

		c.Locals(logger.RayIDKey, id)
		c.Set(HeaderName, id)

		return c.Next()
	}
}
