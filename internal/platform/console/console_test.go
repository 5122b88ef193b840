package console

import (
	"bytes"
	"errors"
	"math/rand"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/t2048/internal/games/t2048"
)

func newGame(board t2048.Board) *t2048.Game {
	g := t2048.NewWithRand(t2048.DefaultRules(), rand.New(rand.NewSource(1)))
	g.SetBoard(board)
	return g
}

func TestParseKey(t *testing.T) {
	tests := []struct {
		line string
		want t2048.Direction
		ok   bool
	}{
		{"w", t2048.DirUp, true},
		{"a", t2048.DirLeft, true},
		{"s", t2048.DirDown, true},
		{"d", t2048.DirRight, true},
		{"W", t2048.DirUp, true},
		{" D \r", t2048.DirRight, true},
		{"", 0, false},
		{"x", 0, false},
		{"ww", 0, false},
		{"up", 0, false},
	}

	for _, tt := range tests {
		got, ok := ParseKey(tt.line)
		assert.Equal(t, tt.ok, ok, "ParseKey(%q) ok", tt.line)
		if tt.ok {
			assert.Equal(t, tt.want, got, "ParseKey(%q)", tt.line)
		}
	}
}

func TestRunWin(t *testing.T) {
	g := newGame(t2048.Board{{1024, 1024, 0, 0}})
	var out bytes.Buffer

	status, err := Run(g, Options{In: strings.NewReader("a\n"), Out: &out})
	require.NoError(t, err)

	assert.Equal(t, t2048.StatusWon, status)
	assert.Contains(t, out.String(), "2048\t")
	assert.True(t, strings.HasSuffix(out.String(), "Congratulations! You've reached 2048!\n"))
}

func TestRunLoss(t *testing.T) {
	g := newGame(t2048.Board{
		{8, 16, 8, 16},
		{16, 8, 16, 8},
		{8, 16, 8, 16},
		{8, 16, 8, 0},
	})
	var out bytes.Buffer

	status, err := Run(g, Options{In: strings.NewReader("d\nw\n"), Out: &out})
	require.NoError(t, err)

	assert.Equal(t, t2048.StatusLost, status)
	assert.True(t, strings.HasSuffix(out.String(), "Game Over! No more moves!\n"))
	// The second line of input is never read
	assert.Equal(t, 1, strings.Count(out.String(), prompt))
}

func TestRunAlreadyLost(t *testing.T) {
	g := newGame(t2048.Board{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 2},
	})
	var out bytes.Buffer

	status, err := Run(g, Options{In: strings.NewReader(""), Out: &out})
	require.NoError(t, err)

	assert.Equal(t, t2048.StatusLost, status)
	assert.NotContains(t, out.String(), prompt)
	assert.Equal(t, "2\t4\t2\t4\n4\t2\t4\t2\n2\t4\t2\t4\n4\t2\t4\t2\n\n\n"+lostMessage+"\n", out.String())
}

func TestRunInvalidInputReprompts(t *testing.T) {
	board := t2048.Board{{2}}
	g := newGame(board)
	var out bytes.Buffer

	status, err := Run(g, Options{In: strings.NewReader("x\nhello\n"), Out: &out})
	require.NoError(t, err)

	assert.Equal(t, t2048.StatusPlaying, status)
	assert.Equal(t, 2, strings.Count(out.String(), invalidInput))
	assert.Equal(t, 3, strings.Count(out.String(), prompt))
	assert.Equal(t, board, g.Board())
}

func TestRunNoopMoveDoesNotSpawn(t *testing.T) {
	board := t2048.Board{{2, 4}}
	g := newGame(board)
	var out bytes.Buffer

	_, err := Run(g, Options{In: strings.NewReader("a\nw\n"), Out: &out})
	require.NoError(t, err)
	assert.Equal(t, board, g.Board())
	assert.Equal(t, 0, g.Moves())
}

func TestRunHints(t *testing.T) {
	g := newGame(t2048.Board{{2}})
	var out bytes.Buffer

	_, err := Run(g, Options{In: strings.NewReader(""), Out: &out, Hints: true})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Available: down, right\n")
}

func TestRunClear(t *testing.T) {
	g := newGame(t2048.Board{{2}})
	var out bytes.Buffer

	_, err := Run(g, Options{In: strings.NewReader(""), Out: &out, Clear: true})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out.String(), clearScreen))
}

func TestRunReadError(t *testing.T) {
	g := newGame(t2048.Board{{2}})
	boom := errors.New("boom")

	_, err := Run(g, Options{In: iotest.ErrReader(boom), Out: &bytes.Buffer{}})
	assert.ErrorIs(t, err, boom)
}

func TestRunLogsMoves(t *testing.T) {
	g := newGame(t2048.Board{{0, 2}})
	var logs bytes.Buffer
	logger := log.NewWithOptions(&logs, log.Options{Level: log.DebugLevel})

	_, err := Run(g, Options{In: strings.NewReader("a\n"), Out: &bytes.Buffer{}, Logger: logger})
	require.NoError(t, err)
	assert.Contains(t, logs.String(), "move")
	assert.Contains(t, logs.String(), "changed=true")
}
