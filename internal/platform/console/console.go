// Package console runs the game as a line-oriented prompt loop: print the
// board, read a w/a/s/d line, apply it, repeat until the game ends.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/t2048/internal/games/t2048"
)

const (
	prompt       = "Move (W = up, S = down, A = left, D = right): "
	invalidInput = "Invalid input. Use W, A, S, or D."
	lostMessage  = "Game Over! No more moves!"
	clearScreen  = "\x1b[H\x1b[2J"
)

// Options configures a console session.
type Options struct {
	In     io.Reader
	Out    io.Writer
	Logger *log.Logger

	// Clear clears the terminal before each board.
	Clear bool
	// Hints prints the moves that would change the board.
	Hints bool
}

// ParseKey maps a line of input to a direction. Only w, a, s and d are
// accepted, in either case; surrounding whitespace is ignored.
func ParseKey(line string) (t2048.Direction, bool) {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "w":
		return t2048.DirUp, true
	case "a":
		return t2048.DirLeft, true
	case "s":
		return t2048.DirDown, true
	case "d":
		return t2048.DirRight, true
	default:
		return 0, false
	}
}

// Run plays g until it is won or lost, or the input ends. It returns the
// final status; running out of input is not an error.
func Run(g *t2048.Game, opts Options) (t2048.Status, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := &session{game: g, out: opts.Out, opts: opts}
	scanner := bufio.NewScanner(opts.In)

	if err := s.printBoard(); err != nil {
		return g.Status(), err
	}

	for {
		switch g.Status() {
		case t2048.StatusWon:
			logger.Info("game won", "moves", g.Moves())
			return g.Status(), s.println(fmt.Sprintf("Congratulations! You've reached %d!", g.Rules().WinTile))
		case t2048.StatusLost:
			logger.Info("game lost", "moves", g.Moves(), "max", t2048.MaxTile(g.Board()))
			return g.Status(), s.println(lostMessage)
		}

		if _, err := io.WriteString(s.out, prompt); err != nil {
			return g.Status(), err
		}
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return g.Status(), fmt.Errorf("console: read input: %w", err)
			}
			logger.Debug("input closed", "moves", g.Moves())
			return g.Status(), s.println("")
		}

		dir, ok := ParseKey(scanner.Text())
		if !ok {
			logger.Debug("invalid input", "line", scanner.Text())
			if err := s.println(invalidInput); err != nil {
				return g.Status(), err
			}
			continue
		}

		res, err := g.Move(dir)
		if err != nil {
			return g.Status(), err
		}
		logger.Debug("move", "dir", dir, "changed", res.Changed, "spawned", res.Spawned,
			"at", res.SpawnedAt, "value", res.SpawnedValue)

		if err := s.printBoard(); err != nil {
			return g.Status(), err
		}
	}
}

type session struct {
	game *t2048.Game
	out  io.Writer
	opts Options
}

func (s *session) println(line string) error {
	_, err := fmt.Fprintln(s.out, line)
	return err
}

// printBoard writes the board followed by a blank line.
func (s *session) printBoard() error {
	var sb strings.Builder
	if s.opts.Clear {
		sb.WriteString(clearScreen)
	}
	sb.WriteString(t2048.FormatBoard(s.game.Board()))
	if s.opts.Hints && !s.game.Status().Terminal() {
		moves := t2048.AvailableMoves(s.game.Board())
		names := make([]string, len(moves))
		for i, d := range moves {
			names[i] = d.String()
		}
		fmt.Fprintf(&sb, "Available: %s\n", strings.Join(names, ", "))
	}
	sb.WriteString("\n\n")
	_, err := io.WriteString(s.out, sb.String())
	return err
}
