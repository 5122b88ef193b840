// Package config provides YAML-based configuration loading for t2048.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/t2048/internal/games/t2048"
)

// ErrInvalidConfig is wrapped by every validation error.
var ErrInvalidConfig = errors.New("invalid config")

// Config is the complete t2048 configuration.
type Config struct {
	Rules   RulesConfig   `yaml:"rules"`
	Display DisplayConfig `yaml:"display"`
}

// RulesConfig defines the game rules.
type RulesConfig struct {
	WinTile     int         `yaml:"win_tile"`
	Spawn       SpawnConfig `yaml:"spawn"`
	SpawnOnNoop bool        `yaml:"spawn_on_noop"`
}

// SpawnConfig defines how new tiles are drawn.
type SpawnConfig struct {
	Policy string `yaml:"policy"` // "weighted" or "uniform"
}

// DisplayConfig defines front-end presentation options.
type DisplayConfig struct {
	Color bool `yaml:"color"`
	Hints bool `yaml:"hints"`
}

const (
	minWinTile = 8
	maxWinTile = 131072
)

// Validate checks that the config describes a playable game.
func (c Config) Validate() error {
	w := c.Rules.WinTile
	if w < minWinTile || w > maxWinTile || w&(w-1) != 0 {
		return fmt.Errorf("%w: rules.win_tile must be a power of two in [%d, %d], got %d",
			ErrInvalidConfig, minWinTile, maxWinTile, w)
	}
	if _, err := t2048.ParseSpawnPolicy(c.Rules.Spawn.Policy); err != nil {
		return fmt.Errorf("%w: rules.spawn.policy: %v", ErrInvalidConfig, err)
	}
	return nil
}

// GameRules converts the rules section into t2048.Rules.
func (c Config) GameRules() (t2048.Rules, error) {
	if err := c.Validate(); err != nil {
		return t2048.Rules{}, err
	}
	policy, _ := t2048.ParseSpawnPolicy(c.Rules.Spawn.Policy)
	return t2048.Rules{
		WinTile:     c.Rules.WinTile,
		Spawn:       policy,
		SpawnOnNoop: c.Rules.SpawnOnNoop,
	}, nil
}
