package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/t2048/internal/core"
	"github.com/vovakirdan/t2048/internal/games/t2048"
	"github.com/vovakirdan/t2048/internal/platform/console"
)

var flagHints bool

var classicCmd = &cobra.Command{
	Use:   "classic",
	Short: "Play at a line prompt",
	Long: `Play 2048 one line at a time. The board is printed after every move;
type w (up), a (left), s (down) or d (right) and press Enter.

Input can be piped, which makes scripted games reproducible:

  printf 'a\nw\nd\n' | t2048 classic --seed 7`,
	Args: cobra.NoArgs,
	RunE: runClassic,
}

func init() {
	classicCmd.Flags().BoolVar(&flagHints, "hints", false, "List the moves that would change the board")
}

func runClassic(cmd *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(os.Stderr)
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

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	game := t2048.New(rules)
	game.Reset(core.RuntimeConfig{Seed: seed})
	logger.Info("game started", "seed", seed, "win_tile", rules.WinTile, "spawn", rules.Spawn)

	status, err := console.Run(game, console.Options{
		In:     cmd.InOrStdin(),
		Out:    cmd.OutOrStdout(),
		Logger: logger,
		Clear:  term.IsTerminal(int(os.Stdout.Fd())),
		Hints:  flagHints || cfg.Display.Hints,
	})
	if err != nil {
		return err
	}
	logger.Debug("session ended", "status", status, "moves", game.Moves())
	return nil
}
