package logger_test

import (
	"net/http/httptest"
	"testing"

	"order-items/core/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name string
		cfg  logger.Config
	}{
		{"Debug Console", logger.Config{Level: "debug", Format: "console"}},
		{"Info JSON", logger.Config{Level: "info", Format: "json"}},
		{"Warn Default Format", logger.Config{Level: "warn"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := logger.New(&tt.cfg)
			assert.NoError(t, err)
			assert.NotNil(t, l)
		})
	}
}

func TestWithRayID(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	base := zap.New(core)

	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		c.Locals("ray_id", "ray-123")
		logger.WithRayID(base, c).Info("hello")
		return c.SendStatus(fiber.StatusNoContent)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "ray-123", logs.All()[0].ContextMap()["ray_id"])
}
