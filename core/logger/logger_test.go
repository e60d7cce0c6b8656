package logger_test

import (
	"net/http/httptest"
	"testing"

	"marstack/core/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want zapcore.Level
	}{
		{"Trace", "trace", zapcore.DebugLevel},
		{"Debug", "debug", zapcore.DebugLevel},
		{"Info", "info", zapcore.InfoLevel},
		{"Warning", "warning", zapcore.WarnLevel},
		{"WarnUpper", "WARN", zapcore.WarnLevel},
		{"Error", "error", zapcore.ErrorLevel},
		{"Critical", "critical", zapcore.ErrorLevel},
		{"Unknown", "verbose", zapcore.InfoLevel},
		{"Empty", "", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.ParseLevel(tt.in))
		})
	}
}

func TestNew(t *testing.T) {
	t.Run("JSON", func(t *testing.T) {
		l, err := logger.New(&logger.Config{Level: "info", Format: "json"})
		require.NoError(t, err)
		assert.False(t, l.Core().Enabled(zapcore.DebugLevel))
		assert.True(t, l.Core().Enabled(zapcore.InfoLevel))
	})

	t.Run("ConsoleDebug", func(t *testing.T) {
		l, err := logger.New(&logger.Config{Level: "trace", Format: "console"})
		require.NoError(t, err)
		assert.True(t, l.Core().Enabled(zapcore.DebugLevel))
	})

	t.Run("Critical", func(t *testing.T) {
		l, err := logger.New(&logger.Config{Level: "critical"})
		require.NoError(t, err)
		assert.False(t, l.Core().Enabled(zapcore.WarnLevel))
		assert.True(t, l.Core().Enabled(zapcore.ErrorLevel))
	})
}

func TestWithRayID(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	base := zap.New(core)

	app := fiber.New()
	app.Get("/with", func(c *fiber.Ctx) error {
		c.Locals("ray_id", "abc-123")
		logger.WithRayID(base, c).Info("with")
		return c.SendStatus(fiber.StatusNoContent)
	})
	app.Get("/without", func(c *fiber.Ctx) error {
		logger.WithRayID(base, c).Info("without")
		return c.SendStatus(fiber.StatusNoContent)
	})

	_, err := app.Test(httptest.NewRequest("GET", "/with", nil))
	require.NoError(t, err)
	_, err = app.Test(httptest.NewRequest("GET", "/without", nil))
	require.NoError(t, err)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "abc-123", entries[0].ContextMap()["ray_id"])
	_, ok := entries[1].ContextMap()["ray_id"]
	assert.False(t, ok)
}
