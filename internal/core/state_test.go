package core

import "testing"

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.ScreenW != 80 || cfg.ScreenH != 24 {
		t.Errorf("DefaultConfig() size = %dx%d, expected 80x24", cfg.ScreenW, cfg.ScreenH)
	}
	if cfg.Seed != 0 {
		t.Errorf("DefaultConfig().Seed = %d, expected 0", cfg.Seed)
	}
}
