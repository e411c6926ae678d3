// dovefly is a flappy-bird style game for the terminal.
//
// Usage:
//
//	dovefly play             - Play on the local terminal
//	dovefly serve            - Start SSH server for remote play
//	dovefly assets           - List and validate the game art
//
// Global flags:
//
//	--config <path>      - Config file (default search: ~/.dovefly/config.yaml, ./configs/dovefly.yaml)
//	--log-level <level>  - Override log.level from the config
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/dovefly/internal/config"

	// Import display backends to register them
	_ "github.com/vovakirdan/dovefly/internal/platform/console"
	_ "github.com/vovakirdan/dovefly/internal/platform/tui"
)

var (
	// Global flags
	flagConfig   string
	flagLogLevel string

	// cfg is loaded before any subcommand runs.
	cfg       config.Config
	cfgSource string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dovefly",
	Short: "DoveFly - guide a bird through the barriers in your terminal",
	Long: `DoveFly is a flappy-bird style game for an 80x40 terminal.

Available commands:
  play     - Play on this terminal
  serve    - Start SSH server for remote play
  assets   - List and validate the game art

Examples:
  dovefly play
  dovefly play --display tcell --sound
  dovefly serve --ssh :2222
  dovefly assets --assets ./art`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(assetsCmd)
}

func loadConfig(_ *cobra.Command, _ []string) error {
	loaded, source, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagLogLevel != "" {
		loaded.Log.Level = flagLogLevel
	}
	if err := loaded.Validate(); err != nil {
		return err
	}
	cfg, cfgSource = loaded, source
	return nil
}

// newLogger creates a logger writing to w at the configured level.
func newLogger(w io.Writer, prefix string) *log.Logger {
	// Validated in loadConfig
	level, _ := cfg.LogLevel()
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Level:           level,
		Prefix:          prefix,
	})
}
