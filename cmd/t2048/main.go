// t2048 is the 2048 sliding-tile puzzle for the terminal.
//
// Usage:
//
//	t2048 play      - Play full-screen
//	t2048 classic   - Play at a line prompt (w/a/s/d + Enter)
//	t2048 config    - Print the effective configuration
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible games
//	--config <path>      - Use a specific config YAML
//	--log-file <path>    - Append logs to a file
//	--log-level <level>  - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/t2048/internal/config"
)

var (
	// Global flags
	flagSeed     int64
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "t2048",
	Short: "2048 - slide and merge tiles in your terminal",
	Long: `t2048 is the 2048 puzzle on a 4x4 board. Slide the tiles up, down,
left or right; equal tiles that collide merge into one. Reach 2048 to win.

Available commands:
  play     - Full-screen game (arrow keys or WASD)
  classic  - Line prompt game (type w, a, s or d and press Enter)
  config   - Show the effective configuration

Examples:
  t2048 play
  t2048 play --seed 42
  t2048 classic --log-level debug
  t2048 config --config ./configs/t2048.yaml`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(classicCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the logger for a command. Without --log-file it writes
// to fallback. The returned close func must be called when done.
func newLogger(fallback io.Writer) (*log.Logger, func() error, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	w := fallback
	closeFn := func() error { return nil }
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = f.Close
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "t2048",
		Level:           level,
	})
	return logger, closeFn, nil
}

// loadConfig loads the config selected by --config and logs its source.
func loadConfig(logger *log.Logger) (config.Config, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	logger.Debug("config loaded", "source", source)
	return cfg, nil
}
