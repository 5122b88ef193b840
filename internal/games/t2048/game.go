package t2048

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/t2048/internal/core"
)

// Status is the position of a game in its lifecycle.
type Status string

const (
	StatusPlaying Status = "playing"
	StatusWon     Status = "won"
	StatusLost    Status = "lost"
)

// Terminal reports whether no further moves are accepted.
func (s Status) Terminal() bool {
	return s == StatusWon || s == StatusLost
}

var (
	// ErrGameFinished is returned by Game.Move once the game is won or lost.
	ErrGameFinished = errors.New("t2048: game is finished")
	// ErrInvalidDirection is returned by Game.Move for an unknown direction.
	ErrInvalidDirection = errors.New("t2048: invalid direction")
)

// Rules are the tunable parts of a game.
type Rules struct {
	WinTile     int         // Tile value that wins the game
	Spawn       SpawnPolicy // How new tile values are drawn
	SpawnOnNoop bool        // Spawn even when a move changed nothing
}

// DefaultRules returns the classic rules: win at 2048, 9:1 spawns, and no
// spawn after a move that changed nothing.
func DefaultRules() Rules {
	return Rules{
		WinTile: WinTile,
		Spawn:   SpawnWeighted,
	}
}

// MoveResult describes what a single Game.Move did.
type MoveResult struct {
	Direction    Direction
	Changed      bool // Tiles slid or merged
	Spawned      bool // A tile was added after the move
	SpawnedAt    Pos
	SpawnedValue int
	Status       Status // Status after the move
}

// Game owns the current board and drives it through the move cycle:
// slide, spawn, then win/loss detection.
type Game struct {
	rules  Rules
	rng    Rand
	board  Board
	status Status
	moves  int

	// Screen dimensions
	screenW  int
	screenH  int
	tooSmall bool
}

// New creates a game with the given rules and a clock-seeded source.
// Call Reset to start from a chosen seed.
func New(rules Rules) *Game {
	if rules.WinTile <= 0 {
		rules.WinTile = WinTile
	}
	return &Game{
		rules:  rules,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		status: StatusPlaying,
	}
}

// NewWithRand creates a game that draws spawns from rng and starts it
// immediately with two tiles. A nil rng keeps the clock-seeded source.
func NewWithRand(rules Rules, rng Rand) *Game {
	g := New(rules)
	if rng != nil {
		g.rng = rng
	}
	g.start()
	return g
}

// Reset starts a new game seeded from cfg.Seed.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.Resize(cfg.ScreenW, cfg.ScreenH)
	g.start()
}

func (g *Game) start() {
	g.moves = 0
	g.board = InitializeBoard(g.rng, g.rules.Spawn)
	g.updateStatus()
}

// Rules returns the rules the game was created with.
func (g *Game) Rules() Rules {
	return g.rules
}

// Board returns a copy of the current board.
func (g *Game) Board() Board {
	return g.board
}

// SetBoard replaces the current board, for starting from a known position.
func (g *Game) SetBoard(board Board) {
	g.board = board
	g.updateStatus()
}

// Status returns the current lifecycle status.
func (g *Game) Status() Status {
	return g.status
}

// Moves returns the number of moves that changed the board.
func (g *Game) Moves() int {
	return g.moves
}

// Move applies one full move cycle in the given direction.
func (g *Game) Move(dir Direction) (MoveResult, error) {
	if !dir.Valid() {
		return MoveResult{}, fmt.Errorf("%w: %d", ErrInvalidDirection, int(dir))
	}
	if g.status.Terminal() {
		return MoveResult{Direction: dir, Status: g.status}, ErrGameFinished
	}

	next := Move(g.board, dir)
	res := MoveResult{
		Direction: dir,
		Changed:   next != g.board,
	}
	g.board = next

	if res.Changed {
		g.moves++
	}

	if res.Changed || g.rules.SpawnOnNoop {
		g.board, res.SpawnedAt, res.Spawned = SpawnTile(g.board, g.rng, g.rules.Spawn)
		if res.Spawned {
			res.SpawnedValue = g.board[res.SpawnedAt.Y][res.SpawnedAt.X]
		}
	}

	g.updateStatus()
	res.Status = g.status
	return res, nil
}

// updateStatus checks for a win before checking for a loss.
func (g *Game) updateStatus() {
	switch {
	case CheckWinAt(g.board, g.rules.WinTile):
		g.status = StatusWon
	case CheckGameOver(g.board):
		g.status = StatusLost
	default:
		g.status = StatusPlaying
	}
}

// Resize records the screen dimensions used by Render.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.tooSmall = width < minScreenW || height < minScreenH
}

// Step applies the first directional action found in the frame.
// Restart is left to the front end, which calls Reset.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Empty() || g.tooSmall || g.status.Terminal() {
		return core.StepResult{State: g.State()}
	}

	for _, dir := range Directions {
		if !in.Has(actionFor(dir)) {
			continue
		}
		res, err := g.Move(dir)
		if err != nil {
			break
		}
		return core.StepResult{State: g.State(), Changed: res.Changed}
	}

	return core.StepResult{State: g.State()}
}

// actionFor maps a direction to its input action.
func actionFor(dir Direction) core.Action {
	switch dir {
	case DirUp:
		return core.ActionUp
	case DirDown:
		return core.ActionDown
	case DirLeft:
		return core.ActionLeft
	default:
		return core.ActionRight
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Moves:    g.moves,
		MaxTile:  MaxTile(g.board),
		Won:      g.status == StatusWon,
		GameOver: g.status.Terminal(),
	}
}
