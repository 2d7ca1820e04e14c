package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/studiowebux/cfgedit/internal/cli"
	"github.com/studiowebux/cfgedit/internal/config"
	"github.com/studiowebux/cfgedit/internal/errors"
	"github.com/studiowebux/cfgedit/internal/logging"
	"github.com/studiowebux/cfgedit/internal/session"
	"github.com/studiowebux/cfgedit/internal/tui"
)

var (
	version = "0.1.0"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", errors.UserFriendly(err))
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cfgedit [file]",
	Short: "cfgedit - JSON configuration editor",
	Long: `cfgedit edits JSON configuration files as an interactive form.

Every value becomes a field: booleans toggle, numbers and strings are edited
inline, and arrays named *Color or *Colour open a color picker. Saving
rewrites the file with objects indented and arrays on a single line.

Run without arguments and drop a JSON file on the terminal to open it.

Examples:
  cfgedit                              # Start with an empty form
  cfgedit settings.json                # Open settings.json
  cfgedit fmt settings.json            # Print settings.json in editor layout
  cfgedit query settings.json 'theme'  # Print one value
  cfgedit --help                       # Show help`,
	Version: version,
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, logger, closer, err := setup(cmd)
		if err != nil {
			return err
		}
		defer closer.Close()

		path := ""
		if len(args) > 0 {
			path = args[0]
		}
		return runTUI(cmd, settings, logger, path)
	},
}

var fmtCmd = &cobra.Command{
	Use:   "fmt <file>",
	Short: "Print a JSON file the way cfgedit saves it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, logger, closer, err := setup(cmd)
		if err != nil {
			return err
		}
		defer closer.Close()

		return cli.Format(cli.FormatOptions{
			FilePath: args[0],
			Indent:   settings.Indent,
			Logger:   logger,
		}, cmd.OutOrStdout())
	},
}

var queryCmd = &cobra.Command{
	Use:   "query <file> <expression>",
	Short: "Evaluate a JMESPath expression or $(shell command) against a JSON file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, logger, closer, err := setup(cmd)
		if err != nil {
			return err
		}
		defer closer.Close()

		return cli.Query(cli.QueryOptions{
			FilePath:   args[0],
			Expression: args[1],
			Logger:     logger,
		}, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(fmtCmd)
	rootCmd.AddCommand(queryCmd)
}

// setup resolves the configuration directory, loads settings and opens the
// log file. Unusable settings are reported and the defaults are used.
func setup(cmd *cobra.Command) (*config.Settings, *slog.Logger, io.Closer, error) {
	if err := config.Initialize(); err != nil {
		return nil, nil, nil, fmt.Errorf("failed to initialize config: %w", err)
	}

	settings, err := config.Load(config.SettingsFile)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s (using defaults)\n", errors.UserFriendly(err))
	}

	logger, closer, err := logging.Open(settings.LogFile, settings.LogLevel, settings.LogFormat)
	if err != nil {
		return nil, nil, nil, err
	}
	logger.Debug("config loaded", "dir", config.ConfigDir, "settings", config.SettingsFile)
	return settings, logger, closer, nil
}

// runTUI starts the interactive editor
func runTUI(cmd *cobra.Command, settings *config.Settings, logger *slog.Logger, path string) error {
	registry, err := tui.LoadKeybinds(config.KeybindsFile, logger)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v (using default keybinds)\n", err)
	}

	return tui.Run(tui.Options{
		Session:  session.NewManager(logger, settings.Indent),
		Keybinds: registry,
		Settings: settings,
		Logger:   logger,
		Version:  version,
		Path:     path,
	})
}
