package logger_test

import (
	"net/http/httptest"
	"testing"

	"site-preview/core/logger"
	"site-preview/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     logger.Config
		wantErr bool
	}{
		{"DebugConsole", logger.Config{Level: "debug", Format: "console"}, false},
		{"InfoJSON", logger.Config{Level: "info", Format: "json"}, false},
		{"WarnDefaultFormat", logger.Config{Level: "warn"}, false},
		{"EmptyLevel", logger.Config{}, false},
		{"InvalidLevel", logger.Config{Level: "loud"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := logger.New(&tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, l)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, l)
		})
	}
}

func TestNew_LevelIsApplied(t *testing.T) {
	l, err := logger.New(&logger.Config{Level: "warn", Format: "json"})
	require.NoError(t, err)

	assert.False(t, l.Core().Enabled(zap.InfoLevel))
	assert.True(t, l.Core().Enabled(zap.WarnLevel))
}

func TestWithRayID(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	base := zap.New(core)

	app := fiber.New()
	app.Use(rayid.New())
	app.Get("/", func(c *fiber.Ctx) error {
		logger.WithRayID(base, c).Info("tagged")
		return nil
	})

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(rayid.HeaderName, "ray-42")
	_, err := app.Test(req)
	require.NoError(t, err)

	entries := logs.FilterMessage("tagged").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "ray-42", entries[0].ContextMap()["ray_id"])

	// Without the middleware no field is attached.
	bare := fiber.New()
	bare.Get("/plain", func(c *fiber.Ctx) error {
		logger.WithRayID(base, c).Info("plain")
		return nil
	})
	_, err = bare.Test(httptest.NewRequest("GET", "/plain", nil))
	require.NoError(t, err)

	plain := logs.FilterMessage("plain").All()
	require.Len(t, plain, 1)
	_, ok := plain[0].ContextMap()["ray_id"]
	assert.False(t, ok)
}
