package requestlog_test

import (
	"net/http/httptest"
	"testing"

	"site-preview/core/middleware/rayid"
	"site-preview/core/middleware/requestlog"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)

	app := fiber.New()
	app.Use(rayid.New())
	app.Use(requestlog.New(zap.New(core)))
	app.Get("/ok", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	t.Run("Handled", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/ok", nil)
		req.Header.Set(rayid.HeaderName, "ray-1")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		entries := logs.FilterMessage("Request handled").All()
		require.Len(t, entries, 1)
		fields := entries[0].ContextMap()
		assert.Equal(t, "ray-1", fields["ray_id"])
		assert.Equal(t, "/ok", fields["path"])
		assert.EqualValues(t, 200, fields["status"])
	})

	t.Run("Error", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/missing", nil))
		require.NoError(t, err)
		assert.Equal(t, 404, resp.StatusCode)
		assert.Equal(t, 1, logs.FilterMessage("Request error").Len())
	})
}
