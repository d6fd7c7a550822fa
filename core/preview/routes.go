package preview

import (
	"errors"
	"net/http"
	"path/filepath"

	"site-preview/core/middleware/fresh"
	"site-preview/core/middleware/rayid"
	"site-preview/core/middleware/requestlog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"go.uber.org/zap"
)

// newApp builds the fiber app serving cfg.Folder.
//
// The root path is matched first and only ever serves the index document;
// everything else goes through the filesystem middleware, whose http.Dir root
// refuses paths escaping the folder.
func newApp(cfg ServerConfig, logger *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler,
	})

	app.Use(rayid.New())
	app.Use(requestlog.New(logger))
	app.Use(cors.New(cors.Config{
		AllowOrigins: fresh.AllowOrigin,
	}))
	app.Use(fresh.New())

	app.Get("/", indexHandler(cfg))
	app.Use(filesystem.New(filesystem.Config{
		Root: http.Dir(cfg.Folder),
	}))

	return app
}

func indexHandler(cfg ServerConfig) fiber.Handler {
	root := http.Dir(filepath.Dir(cfg.IndexPath))
	name := "/" + filepath.Base(cfg.IndexPath)

	return func(c *fiber.Ctx) error {
		return filesystem.SendFile(c, root, name)
	}
}

// errorHandler answers 404 for directories without an index document, which
// the filesystem middleware reports as 403 when browsing is disabled.
func errorHandler(c *fiber.Ctx, err error) error {
	var e *fiber.Error
	if errors.As(err, &e) && e.Code == fiber.StatusForbidden {
		err = fiber.ErrNotFound
	}
	return fiber.DefaultErrorHandler(c, err)
}
