package config

import (
	_ "embed"

	"github.com/vovakirdan/locked-in/internal/core"
	"github.com/vovakirdan/locked-in/internal/round"
)

//go:embed defaults/lockedin.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Round: RoundConfig{
			MinMinutes:   round.DefaultMinMinutes,
			MaxMinutes:   round.DefaultMaxMinutes,
			TickInterval: round.DefaultTickInterval,
			PauseDelay:   round.DefaultPauseDelay,
		},
		Display: DisplayConfig{
			WarningSeconds: core.DefaultWarnSeconds,
			ProgressScale:  ScaleMax,
		},
	}
}
