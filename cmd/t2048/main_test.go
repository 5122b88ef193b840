package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and stdin, returning stdout.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestConfigCommandPrintsDefaults(t *testing.T) {
	out, err := execute(t, "", "config", "--config", "")
	require.NoError(t, err)

	assert.Contains(t, out, "# source: embedded")
	assert.Contains(t, out, "win_tile: 2048")
	assert.Contains(t, out, "policy: weighted")
}

func TestClassicIsDeterministicForSeed(t *testing.T) {
	input := "a\nd\nw\ns\nx\n"

	first, err := execute(t, input, "classic", "--seed", "7", "--log-level", "error")
	require.NoError(t, err)
	second, err := execute(t, input, "classic", "--seed", "7", "--log-level", "error")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Contains(t, first, "Move (W = up, S = down, A = left, D = right): ")
	assert.Contains(t, first, "Invalid input. Use W, A, S, or D.")
}

func TestInvalidLogLevel(t *testing.T) {
	_, err := execute(t, "", "classic", "--log-level", "loud")
	assert.ErrorContains(t, err, "--log-level")
	flagLogLevel = "info"
}
