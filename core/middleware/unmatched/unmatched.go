package unmatched

import (
	"errors"

	"marstack/core/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"go.uber.org/zap"
)

// Config configures the unmatched request middleware.
type Config struct {
	// Logger receives one error entry per unmatched request.
	Logger *zap.Logger
	// OnUnmatched, when set, is called after the entry is logged.
	OnUnmatched func(method string, status int)
}

// New returns a middleware that reports requests ending in 404 or 405.
//
// The response is never touched: the error (if any) from the rest of the
// chain is returned unchanged for fiber's error handler to render.
func New(cfg Config) fiber.Handler {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	return func(c *fiber.Ctx) error {
		err := c.Next()

		status := Status(c, err)
		if status != fiber.StatusNotFound && status != fiber.StatusMethodNotAllowed {
			return err
		}

		method := utils.CopyString(c.Method())
		logger.WithRayID(cfg.Logger, c).Error("Unmatched device request",
			zap.Int("status", status),
			zap.String("method", method),
			zap.String("url", c.BaseURL()+c.OriginalURL()),
		)
		if cfg.OnUnmatched != nil {
			cfg.OnUnmatched(method, status)
		}
		return err
	}
}

// Status returns the status the response will carry once err has been
// handled by fiber's error handler.
func Status(c *fiber.Ctx, err error) int {
	if err == nil {
		return c.Response().StatusCode()
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	return fiber.StatusInternalServerError
}
