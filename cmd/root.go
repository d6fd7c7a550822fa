package cmd

import (
	"fmt"
	"os"

	"site-preview/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "site-preview",
	Short: "Local static-site preview server",
	Long: `Site Preview serves a project folder on http://127.0.0.1:8080 so an embedded
browser view can preview it while it is being edited. The server is started
and stopped on demand through the control API or directly from the CLI.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Debug config gives readable ISO8601 timestamps on the console
		l, logErr := logger.New(&logger.Config{Level: "debug", Format: "console"})
		if logErr != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		l.Error("command failed", zap.Error(err))
		_ = l.Sync()
		os.Exit(1)
	}
}
