// Package config provides YAML-based configuration loading for LOCKED IN.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/locked-in/internal/round"
)

// Config is the complete game configuration.
type Config struct {
	Round   RoundConfig   `yaml:"round"`
	Display DisplayConfig `yaml:"display"`
}

// RoundConfig defines round timing.
type RoundConfig struct {
	MinMinutes   int           `yaml:"min_minutes"`
	MaxMinutes   int           `yaml:"max_minutes"`
	TickInterval time.Duration `yaml:"tick_interval"`
	PauseDelay   time.Duration `yaml:"pause_delay"`
}

// DisplayConfig defines presentation thresholds.
type DisplayConfig struct {
	WarningSeconds int           `yaml:"warning_seconds"` // urgent colors at or below this
	ProgressScale  ProgressScale `yaml:"progress_scale"`
}

// ProgressScale selects the denominator of the countdown bar.
type ProgressScale string

const (
	// ScaleMax divides by the longest possible round, so short rounds
	// start with a partly empty bar.
	ScaleMax ProgressScale = "max"
	// ScaleRound divides by the current round's own duration.
	ScaleRound ProgressScale = "round"
)

// Validation errors.
var (
	ErrMinMinutes     = errors.New("config: round.min_minutes must be at least 1")
	ErrMaxMinutes     = errors.New("config: round.max_minutes must not be below min_minutes")
	ErrTickInterval   = errors.New("config: round.tick_interval must be positive")
	ErrPauseDelay     = errors.New("config: round.pause_delay must not be negative")
	ErrWarningSeconds = errors.New("config: display.warning_seconds must not be negative")
)

// Validate checks the configuration for values the game cannot run with.
func (c Config) Validate() error {
	switch {
	case c.Round.MinMinutes < 1:
		return ErrMinMinutes
	case c.Round.MaxMinutes < c.Round.MinMinutes:
		return ErrMaxMinutes
	case c.Round.TickInterval <= 0:
		return ErrTickInterval
	case c.Round.PauseDelay < 0:
		return ErrPauseDelay
	case c.Display.WarningSeconds < 0:
		return ErrWarningSeconds
	}

	switch c.Display.ProgressScale {
	case ScaleMax, ScaleRound:
	default:
		return fmt.Errorf("config: unknown display.progress_scale %q", c.Display.ProgressScale)
	}
	return nil
}

// RoundSettings converts the round section for the controller.
func (c Config) RoundSettings() round.Config {
	return round.Config{
		MinMinutes:   c.Round.MinMinutes,
		MaxMinutes:   c.Round.MaxMinutes,
		TickInterval: c.Round.TickInterval,
		PauseDelay:   c.Round.PauseDelay,
	}
}

// ProgressDenominator returns the bar denominator in seconds for a round of
// the given duration.
func (c Config) ProgressDenominator(roundSeconds int) int {
	if c.Display.ProgressScale == ScaleRound && roundSeconds > 0 {
		return roundSeconds
	}
	return c.Round.MaxMinutes * 60
}
