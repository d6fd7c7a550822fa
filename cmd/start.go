package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"site-preview/core/config"
	"site-preview/core/loader"
	"site-preview/core/logger"
	"site-preview/core/middleware/rayid"
	"site-preview/core/middleware/requestlog"
	"site-preview/core/preview"

	"site-preview/feature/commands"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "site-preview/docs/swagger"
)

// @title Site Preview Control API
// @version 1.0
// @description Local control API driving the static-file preview server.
// @host localhost:1421
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the control API",
	Long: `Starts the control API through which the host shell starts and stops the
preview server (start_server, stop_server, server_status, greet).`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Preview server lifecycle, owned here for the whole process
		runner := preview.NewRunner(preview.NewRegistry(), logg.Named("preview"))

		// 4. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})
		app.Use(rayid.New())
		app.Use(requestlog.New(logg))
		app.Get("/swagger/*", swagger.HandlerDefault)

		// 5. Load Features
		mgr := loader.NewManager(logg)
		mgr.Register(commands.NewFeature(runner, logg))
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 6. Start Server
		go func() {
			logg.Info("Starting control API", zap.String("addr", cfg.Server.Addr()))
			if err := app.Listen(cfg.Server.Addr()); err != nil {
				logg.Fatal("Control API failed to start", zap.Error(err))
			}
		}()

		// 7. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down...")
		stopPreview(runner, logg)
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
