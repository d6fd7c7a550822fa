// Package requestlog logs every request handled by a fiber app with zap.
package requestlog

import (
	"time"

	"site-preview/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// New returns a middleware that logs method, path and outcome of each request.
// Register it after rayid so entries carry the ray id.
func New(l *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		log := logger.WithRayID(l, c)

		err := c.Next()
		if err != nil {
			log.Debug("Request error",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.Error(err),
			)
			return err
		}

		log.Debug("Request handled",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("latency", time.Since(start)),
		)
		return nil
	}
}
