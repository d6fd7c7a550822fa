package commands

import (
	"errors"

	"site-preview/core/logger"
	"site-preview/core/preview"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for command invocation.
type Handler struct {
	service    *Service
	dispatcher *Dispatcher
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, dispatcher *Dispatcher) *Handler {
	return &Handler{service: service, dispatcher: dispatcher}
}

// RegisterRoutes registers the command routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/status", h.HandleStatus)

	group := app.Group("/commands")
	group.Get("/", h.HandleList)
	group.Post("/:name", h.HandleInvoke)
}

// HandleInvoke runs a command by name.
// @Summary Invoke Command
// @Description Invokes a host command (start_server, stop_server, server_status, greet) with a JSON object of arguments.
// @Tags commands
// @Accept json
// @Produce json
// @Param name path string true "Command name"
// @Param args body map[string]interface{} false "Command arguments"
// @Success 200 {object} map[string]string "Command result"
// @Failure 400 {object} map[string]string "Invalid or missing arguments"
// @Failure 404 {object} map[string]string "Unknown command"
// @Failure 409 {object} map[string]string "Preview server already running or not running"
// @Failure 503 {object} map[string]string "Preview port unavailable"
// @Router /commands/{name} [post]
func (h *Handler) HandleInvoke(c *fiber.Ctx) error {
	name := c.Params("name")
	l := logger.WithRayID(h.service.logger, c)

	args := Args{}
	if body := c.Body(); len(body) > 0 {
		if err := c.App().Config().JSONDecoder(body, &args); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "arguments must be a JSON object",
			})
		}
	}

	l.Info("Invoking command", zap.String("command", name))

	result, err := h.dispatcher.Invoke(c.Context(), name, args)
	if err != nil {
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"result": result})
}

// HandleList lists the registered commands.
// @Summary List Commands
// @Description Returns the names of all registered commands.
// @Tags commands
// @Produce json
// @Success 200 {object} map[string][]string "Command names"
// @Router /commands [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"commands": h.dispatcher.Names()})
}

// HandleStatus reports the preview server state.
// @Summary Preview Server Status
// @Description Reports whether the preview server is running and where.
// @Tags commands
// @Produce json
// @Success 200 {object} commands.Status "Preview server status"
// @Router /status [get]
func (h *Handler) HandleStatus(c *fiber.Ctx) error {
	return c.JSON(h.service.Status())
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrUnknownCommand):
		return fiber.StatusNotFound
	case errors.Is(err, ErrMissingArgument):
		return fiber.StatusBadRequest
	case errors.Is(err, preview.ErrAlreadyRunning), errors.Is(err, preview.ErrNotRunning):
		return fiber.StatusConflict
	case errors.Is(err, preview.ErrBindFailed):
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}
