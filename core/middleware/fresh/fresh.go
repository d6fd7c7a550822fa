// Package fresh marks every response as uncacheable and readable from any origin.
//
// The preview server is loaded by an embedded browser view during editing,
// so stale copies must never be served.
package fresh

import "github.com/gofiber/fiber/v2"

const (
	// CacheControl is the Cache-Control value set on every response.
	CacheControl = "no-cache"
	// AllowOrigin is the Access-Control-Allow-Origin value set on every response.
	AllowOrigin = "*"
)

// New returns the middleware. Headers are set before the handler runs so that
// error responses produced by the app's error handler carry them too.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderCacheControl, CacheControl)
		c.Set(fiber.HeaderAccessControlAllowOrigin, AllowOrigin)
		return c.Next()
	}
}
