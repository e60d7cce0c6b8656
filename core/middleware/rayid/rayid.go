package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/google/uuid"
)

const (
	// LocalsKey is the fiber locals key holding the request id.
	LocalsKey = "ray_id"
	// HeaderName is the response header carrying the request id.
	HeaderName = "X-Ray-ID"
)

// Config configures the RayID middleware.
type Config struct {
	// Header is the response header name. Defaults to HeaderName.
	Header string
	// Generator produces new ids. Defaults to uuid.NewString.
	Generator func() string
}

// New returns a middleware that tags every request with a RayID.
// An id supplied by an upstream proxy in the same header is kept.
func New(config ...Config) fiber.Handler {
	cfg := Config{}
	if len(config) > 0 {
		cfg = config[0]
	}
	if cfg.Header == "" {
		cfg.Header = HeaderName
	}
	if cfg.Generator == nil {
		cfg.Generator = uuid.NewString
	}

	return func(c *fiber.Ctx) error {
		rid := utils.CopyString(c.Get(cfg.Header))
		if rid == "" {
			rid = cfg.Generator()
		}
		c.Locals(LocalsKey, rid)
		c.Set(cfg.Header, rid)
		return c.Next()
	}
}

// FromContext returns the RayID stored on the request, or "".
func FromContext(c *fiber.Ctx) string {
	if rid, ok := c.Locals(LocalsKey).(string); ok {
		return rid
	}
	return ""
}
