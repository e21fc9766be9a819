package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HeaderName is echoed on every response and honoured when a proxy already set it.
const HeaderName = "X-Ray-ID"

// LocalsKey is where the ray id is stored in fiber locals.
const LocalsKey = "ray_id"

// New returns a middleware that tags each request with a ray id.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(HeaderName)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Locals(LocalsKey, rid)
		c.Set(HeaderName, rid)
		return c.Next()
	}
}
