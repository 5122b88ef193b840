package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/t2048/internal/core"
	"github.com/vovakirdan/t2048/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play full-screen",
	Long: `Start a full-screen game of 2048.

Controls:
  Arrows/WASD  - Slide tiles
  R            - Restart (after win or game over)
  ?            - Toggle help
  Q/Ctrl+C     - Quit

Examples:
  t2048 play
  t2048 play --seed 42
  t2048 play --log-file t2048.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) error {
	// The alt screen owns stdout, so logs go nowhere unless --log-file is set
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}
	rules, err := cfg.GameRules()
	if err != nil {
		return err
	}

	runtime := core.DefaultConfig()
	runtime.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		runtime.ScreenW = w
		runtime.ScreenH = h
	}

	status, err := tui.Run(runtime, tui.Options{
		Rules:  rules,
		Color:  cfg.Display.Color,
		Logger: logger,
	})
	if err != nil {
		return err
	}
	logger.Info("session ended", "status", status)
	return nil
}
