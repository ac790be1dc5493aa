package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Header is the request/response header carrying the ray id.
const Header = "X-Ray-Id"

// New returns a middleware that assigns every request a ray id.
// An incoming id is reused so callers can propagate correlation ids; otherwise
// a fresh UUID is generated. The id is stored in Locals("ray_id") for
// logger.WithRayID and echoed back on the response.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(Header)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Locals("ray_id", rid)
		c.Set(Header, rid)
		return c.Next()
	}
}
