package logger

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// levelAliases maps the level names accepted by the add-on options onto zap levels.
var levelAliases = map[string]zapcore.Level{
	"trace":    zapcore.DebugLevel,
	"debug":    zapcore.DebugLevel,
	"info":     zapcore.InfoLevel,
	"warn":     zapcore.WarnLevel,
	"warning":  zapcore.WarnLevel,
	"error":    zapcore.ErrorLevel,
	"critical": zapcore.ErrorLevel,
}

// ParseLevel converts a configured level name into a zap level.
// Unknown names resolve to info.
func ParseLevel(name string) zapcore.Level {
	if lvl, ok := levelAliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return lvl
	}
	return zapcore.InfoLevel
}

// New creates a new zap logger based on the configuration.
func New(cfg *Config) (*zap.Logger, error) {
	level := ParseLevel(cfg.Level)

	var config zap.Config
	if level == zapcore.DebugLevel {
		config = zap.NewDevelopmentConfig()
	} else {
		config = zap.NewProductionConfig()
	}
	config.Level = zap.NewAtomicLevelAt(level)

	if cfg.Format == "console" {
		config.Encoding = "console"
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		config.DisableStacktrace = true
	} else {
		config.Encoding = "json"
	}

	config.EncoderConfig.LevelKey = "level"
	config.EncoderConfig.TimeKey = "time"
	config.EncoderConfig.MessageKey = "message"

	return config.Build()
}

// WithRayID returns a logger with the ray_id field set from the Fiber context.
func WithRayID(l *zap.Logger, c *fiber.Ctx) *zap.Logger {
	rid := c.Locals("ray_id")
	if str, ok := rid.(string); ok && str != "" {
		return l.With(zap.String("ray_id", str))
	}
	return l
}
