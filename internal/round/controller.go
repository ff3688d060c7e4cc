package round

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
)

// Errors returned from ticker callbacks to stop a ticker. They never reach
// callers of the Controller.
var (
	errRoundOver   = errors.New("round: countdown finished")
	errStaleTicker = errors.New("round: ticker superseded")
)

// Observer is notified after every state change. Observers run with the
// controller lock held, in transition order, so they must not block or call
// back into the Controller.
type Observer func(State)

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for round events.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithObserver registers an observer.
func WithObserver(o Observer) Option {
	return func(c *Controller) {
		if o != nil {
			c.observers = append(c.observers, o)
		}
	}
}

// Controller owns the round state and the timers driving it.
//
// Timer callbacks arrive on their own goroutines, so every entry point takes
// the controller lock. Each round gets a new generation number; callbacks
// scheduled for an older generation are dropped.
type Controller struct {
	mu        sync.Mutex
	clock     quartz.Clock
	source    DurationSource
	cfg       Config
	logger    *log.Logger
	observers []Observer

	state      State
	gen        uint64
	stopTicker context.CancelFunc
	pause      *quartz.Timer
	closed     bool
}

// New creates a controller and starts the first round.
// Start cfg from DefaultConfig: a zero PauseDelay starts the next round
// right after a press.
func New(clock quartz.Clock, source DurationSource, cfg Config, opts ...Option) *Controller {
	if clock == nil {
		clock = quartz.NewReal()
	}
	if source == nil {
		source = NewRandSource(0)
	}

	c := &Controller{
		clock:  clock,
		source: source,
		cfg:    cfg.withDefaults(),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.mu.Lock()
	c.startNewRoundLocked()
	c.mu.Unlock()

	return c
}

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// StartNewRound draws a new duration and starts counting down.
// Any running ticker and any pending pause are cancelled first.
func (c *Controller) StartNewRound() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.startNewRoundLocked()
}

// Tick advances the countdown by one second. It is a no-op unless the
// round is in progress and active.
func (c *Controller) Tick() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tickLocked()
}

// Press handles the player's single action.
func (c *Controller) Press() Outcome {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return OutcomeIgnored
	}

	switch c.state.Phase() {
	case PhaseRunning:
		c.state.Score++
		c.state.Active = false
		// Stop the countdown before anything else is scheduled, so a tick
		// already queued cannot land on the round being replaced.
		c.stopTickerLocked()
		c.gen++
		c.schedulePauseLocked()
		c.logger.Debug("press scored",
			"round", c.state.Round,
			"score", c.state.Score,
			"remaining", c.state.Remaining,
		)
		c.notifyLocked()
		return OutcomeScored

	case PhaseFailed:
		c.logger.Debug("restart after failure", "score", c.state.Score)
		c.state.Score = 0
		c.startNewRoundLocked()
		return OutcomeRestarted

	default:
		return OutcomeIgnored
	}
}

// Close stops all timers. The state is kept but no longer changes.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	c.gen++
	c.stopTickerLocked()
	c.stopPauseLocked()
	c.logger.Debug("controller closed", "score", c.state.Score)
}

func (c *Controller) startNewRoundLocked() {
	c.stopTickerLocked()
	c.stopPauseLocked()

	minutes := clamp(c.source.IntRange(c.cfg.MinMinutes, c.cfg.MaxMinutes), c.cfg.MinMinutes, c.cfg.MaxMinutes)
	seconds := minutes * 60

	c.gen++
	c.state.Status = StatusInProgress
	c.state.Duration = seconds
	c.state.Remaining = seconds
	c.state.Active = true
	c.state.Round++

	c.startTickerLocked()
	c.logger.Debug("round started", "round", c.state.Round, "seconds", seconds)
	c.notifyLocked()
}

func (c *Controller) tickLocked() {
	if c.closed || !c.state.Active || c.state.Status != StatusInProgress {
		return
	}

	if c.state.Remaining > 1 {
		c.state.Remaining--
		c.notifyLocked()
		return
	}

	c.state.Remaining = 0
	c.state.Status = StatusFailed
	c.state.Active = false
	c.stopTickerLocked()
	c.logger.Debug("round expired", "round", c.state.Round, "score", c.state.Score)
	c.notifyLocked()
}

func (c *Controller) startTickerLocked() {
	ctx, cancel := context.WithCancel(context.Background())
	c.stopTicker = cancel
	gen := c.gen

	c.clock.TickerFunc(ctx, c.cfg.TickInterval, func() error {
		c.mu.Lock()
		defer c.mu.Unlock()
		if gen != c.gen || ctx.Err() != nil {
			return errStaleTicker
		}
		c.tickLocked()
		if !c.state.Active {
			return errRoundOver
		}
		return nil
	}, "round", "tick")
}

func (c *Controller) stopTickerLocked() {
	if c.stopTicker != nil {
		c.stopTicker()
		c.stopTicker = nil
	}
}

func (c *Controller) schedulePauseLocked() {
	gen := c.gen
	c.pause = c.clock.AfterFunc(c.cfg.PauseDelay, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if gen != c.gen || c.closed {
			return
		}
		c.pause = nil
		c.startNewRoundLocked()
	}, "round", "pause")
}

func (c *Controller) stopPauseLocked() {
	if c.pause != nil {
		c.pause.Stop()
		c.pause = nil
	}
}

func (c *Controller) notifyLocked() {
	for _, o := range c.observers {
		o(c.state)
	}
}
