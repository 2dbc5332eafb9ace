// Package rayid tags every request with a ray id for log correlation.
//
// An incoming X-Ray-ID header is reused, otherwise a random UUID is generated.
// The id is stored in the "ray_id" local and echoed in the response header.
package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	Header = "X-Ray-ID"
	Local  = "ray_id"
)

// New creates the ray id middleware.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(Header)
		if rid == "" {
			rid = uuid.NewString()
		}

		c.Locals(Local, rid)
		c.Set(Header, rid)
		return c.Next()
	}
}
