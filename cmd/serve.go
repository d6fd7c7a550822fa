package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"site-preview/core/config"
	"site-preview/core/logger"
	"site-preview/core/preview"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// stopTimeout bounds how long the CLI waits for the preview server on exit.
const stopTimeout = 10 * time.Second

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve [folder]",
	Short: "Serve a folder on the preview address until interrupted",
	Long: `Runs the preview server directly, without the control API. The folder
defaults to the current directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		folder := "."
		if len(args) == 1 {
			folder = args[0]
		}

		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer logg.Sync()

		runner := preview.NewRunner(preview.NewRegistry(), logg)
		addr, err := runner.Start(folder)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Serving %s on %s\n", folder, preview.URL(addr))

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if err := awaitPreview(ctx, runner.Done()); err != nil {
			return err
		}
		stopPreview(runner, logg)
		return nil
	},
}

// errPreviewExited is returned by serve when the preview server dies without
// being asked to stop.
var errPreviewExited = errors.New("preview server exited unexpectedly")

// awaitPreview blocks until ctx is done or the serve loop behind done exits.
func awaitPreview(ctx context.Context, done <-chan struct{}) error {
	select {
	case <-ctx.Done():
		return nil
	case <-done:
		return errPreviewExited
	}
}

// stopPreview stops the preview server if one is running.
func stopPreview(runner *preview.Runner, logg *zap.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), stopTimeout)
	defer cancel()

	if err := runner.Stop(ctx); err != nil && !errors.Is(err, preview.ErrNotRunning) {
		logg.Warn("Preview server did not stop cleanly", zap.Error(err))
	}
}

func init() {
	RootCmd.AddCommand(serveCmd)
}
