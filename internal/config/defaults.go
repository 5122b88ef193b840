package config

import (
	_ "embed"
)

//go:embed defaults/t2048.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Rules: RulesConfig{
			WinTile: 2048,
			Spawn: SpawnConfig{
				Policy: "weighted",
			},
			SpawnOnNoop: false,
		},
		Display: DisplayConfig{
			Color: true,
			Hints: false,
		},
	}
}

// DefaultYAML returns the embedded default config file.
func DefaultYAML() []byte {
	return defaultYAML
}
