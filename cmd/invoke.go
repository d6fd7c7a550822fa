package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"site-preview/core/config"
	"site-preview/feature/commands"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
)

var hostFlag string

// invokeCmd represents the invoke command
var invokeCmd = &cobra.Command{
	Use:   "invoke <command> [key=value ...]",
	Short: "Invoke a command on a running control API",
	Long: `Sends a command to the control API started with "site-preview start".

Examples:
  site-preview invoke start_server folder=./site
  site-preview invoke stop_server
  site-preview invoke greet name=Ada`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmdArgs, err := parseArgs(args[1:])
		if err != nil {
			return err
		}

		base := hostFlag
		if base == "" {
			cfg, err := config.LoadConfig(".")
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			base = cfg.Server.BaseURL()
		}

		result, err := invokeRemote(base, args[0], cmdArgs)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result)
		return nil
	},
}

// parseArgs turns key=value pairs into command arguments.
func parseArgs(pairs []string) (commands.Args, error) {
	args := commands.Args{}
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid argument %q, expected key=value", pair)
		}
		args[key] = value
	}
	return args, nil
}

// invokeRemote posts a command to the control API at base and returns its result.
func invokeRemote(base, name string, args commands.Args) (string, error) {
	agent := fiber.Post(strings.TrimRight(base, "/") + "/commands/" + name)
	agent.JSON(args)
	if err := agent.Parse(); err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}

	code, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return "", fmt.Errorf("control API unreachable: %w", errors.Join(errs...))
	}

	var out struct {
		Result string `json:"result"`
		Error  string `json:"error"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("unexpected response (status %d): %w", code, err)
	}
	if code != fiber.StatusOK {
		return "", errors.New(out.Error)
	}
	return out.Result, nil
}

func init() {
	invokeCmd.Flags().StringVar(&hostFlag, "host", "", "Control API base URL (defaults to http://SERVER_HOST:SERVER_PORT)")
	RootCmd.AddCommand(invokeCmd)
}
