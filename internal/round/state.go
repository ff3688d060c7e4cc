// Package round implements the LOCKED IN round state machine.
// A round counts down from a random duration; pressing before it expires
// scores a point and starts a new round after a short pause, letting it
// expire fails the streak until the player presses again.
package round

import "time"

// Default round timing. New fills zero minutes and a zero tick interval
// from these; a zero PauseDelay is kept and means no pause.
const (
	DefaultMinMinutes   = 5
	DefaultMaxMinutes   = 30
	DefaultTickInterval = time.Second
	DefaultPauseDelay   = time.Second
)

// Status is the player-visible round status.
type Status int

const (
	StatusInProgress Status = iota
	StatusFailed
)

// String returns a stable lowercase name, used in logs.
func (s Status) String() string {
	switch s {
	case StatusInProgress:
		return "in_progress"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Phase combines Status and the active flag into the three states of the
// round state machine.
type Phase int

const (
	PhaseRunning Phase = iota // in progress, countdown running
	PhasePaused               // in progress, waiting for the next round
	PhaseFailed               // countdown expired
)

func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// State is a snapshot of the round.
type State struct {
	Status    Status
	Remaining int  // seconds left in the current round
	Duration  int  // initial duration of the current round in seconds
	Active    bool // whether the countdown is running
	Score     int  // successful presses since the last failure
	Round     int  // rounds started since the controller was created
}

// Phase returns the state machine phase for this snapshot.
func (s State) Phase() Phase {
	switch {
	case s.Status == StatusFailed:
		return PhaseFailed
	case s.Active:
		return PhaseRunning
	default:
		return PhasePaused
	}
}

// Outcome reports what a Press did.
type Outcome int

const (
	OutcomeIgnored   Outcome = iota // pressed during the pause window
	OutcomeScored                   // pressed in time, score incremented
	OutcomeRestarted                // pressed after failing, score reset
)

func (o Outcome) String() string {
	switch o {
	case OutcomeIgnored:
		return "ignored"
	case OutcomeScored:
		return "scored"
	case OutcomeRestarted:
		return "restarted"
	default:
		return "unknown"
	}
}

// Config holds the round timing parameters.
type Config struct {
	MinMinutes   int           // shortest round, inclusive
	MaxMinutes   int           // longest round, inclusive
	TickInterval time.Duration // countdown resolution, one second of game time per tick
	PauseDelay   time.Duration // gap between a successful press and the next round
}

// DefaultConfig returns the standard 5 to 30 minute rounds with one second
// ticks and a one second pause.
func DefaultConfig() Config {
	return Config{
		MinMinutes:   DefaultMinMinutes,
		MaxMinutes:   DefaultMaxMinutes,
		TickInterval: DefaultTickInterval,
		PauseDelay:   DefaultPauseDelay,
	}
}

// withDefaults fills zero or inconsistent fields. A zero PauseDelay is
// valid and kept; only a negative one is replaced.
func (c Config) withDefaults() Config {
	if c.MinMinutes <= 0 {
		c.MinMinutes = DefaultMinMinutes
	}
	if c.MaxMinutes <= 0 {
		c.MaxMinutes = DefaultMaxMinutes
	}
	if c.MaxMinutes < c.MinMinutes {
		c.MaxMinutes = c.MinMinutes
	}
	if c.TickInterval <= 0 {
		c.TickInterval = DefaultTickInterval
	}
	if c.PauseDelay < 0 {
		c.PauseDelay = DefaultPauseDelay
	}
	return c
}

// MinSeconds returns the shortest possible round in seconds.
func (c Config) MinSeconds() int {
	return c.withDefaults().MinMinutes * 60
}

// MaxSeconds returns the longest possible round in seconds.
func (c Config) MaxSeconds() int {
	return c.withDefaults().MaxMinutes * 60
}
