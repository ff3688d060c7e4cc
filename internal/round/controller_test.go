package round

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// advance moves the mock clock forward one step and waits for every timer
// callback it triggered.
func advance(t *testing.T, clk *quartz.Mock, d time.Duration) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	clk.Advance(d).MustWait(ctx)
}

func newTestController(t *testing.T, source DurationSource, opts ...Option) (*Controller, *quartz.Mock) {
	t.Helper()
	clk := quartz.NewMock(t)
	c := New(clk, source, DefaultConfig(), opts...)
	t.Cleanup(c.Close)
	return c, clk
}

func TestNewStartsRunning(t *testing.T) {
	c, _ := newTestController(t, FixedSource(7))

	s := c.Snapshot()
	assert.Equal(t, StatusInProgress, s.Status)
	assert.Equal(t, PhaseRunning, s.Phase())
	assert.True(t, s.Active)
	assert.Equal(t, 7*60, s.Remaining)
	assert.Equal(t, 7*60, s.Duration)
	assert.Equal(t, 0, s.Score)
	assert.Equal(t, 1, s.Round)
}

func TestStartNewRoundDurationInRange(t *testing.T) {
	c, _ := newTestController(t, NewRandSource(12345))

	for i := 0; i < 500; i++ {
		c.StartNewRound()
		s := c.Snapshot()
		require.Equal(t, PhaseRunning, s.Phase())
		require.GreaterOrEqual(t, s.Remaining, 300)
		require.LessOrEqual(t, s.Remaining, 1800)
		require.Zero(t, s.Remaining%60, "durations are whole minutes")
	}
}

func TestStartNewRoundClampsSource(t *testing.T) {
	tests := []struct {
		name     string
		minutes  int
		expected int
	}{
		{"below range", 1, 300},
		{"above range", 90, 1800},
		{"lower bound", 5, 300},
		{"upper bound", 30, 1800},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := newTestController(t, FixedSource(tc.minutes))
			assert.Equal(t, tc.expected, c.Snapshot().Remaining)
		})
	}
}

func TestTickNonIncreasingAndNeverNegative(t *testing.T) {
	c, _ := newTestController(t, FixedSource(5))

	prev := c.Snapshot().Remaining
	for i := 0; i < 400; i++ {
		c.Tick()
		s := c.Snapshot()
		require.LessOrEqual(t, s.Remaining, prev)
		require.GreaterOrEqual(t, s.Remaining, 0)
		// Zero remaining iff failed and inactive.
		require.Equal(t, s.Remaining == 0, s.Status == StatusFailed)
		require.Equal(t, s.Remaining == 0, !s.Active)
		prev = s.Remaining
	}
}

func TestExpiryAfterDuration(t *testing.T) {
	c, _ := newTestController(t, FixedSource(5))

	for i := 0; i < 299; i++ {
		c.Tick()
	}
	s := c.Snapshot()
	require.Equal(t, StatusInProgress, s.Status)
	require.Equal(t, 1, s.Remaining)

	c.Tick()
	s = c.Snapshot()
	assert.Equal(t, StatusFailed, s.Status)
	assert.Equal(t, 0, s.Remaining)
	assert.False(t, s.Active)
	assert.Equal(t, PhaseFailed, s.Phase())
}

func TestExpiryDrivenByClock(t *testing.T) {
	c, clk := newTestController(t, FixedSource(5))

	for i := 0; i < 300; i++ {
		advance(t, clk, time.Second)
	}

	s := c.Snapshot()
	assert.Equal(t, StatusFailed, s.Status)
	assert.Equal(t, 0, s.Remaining)
	assert.False(t, s.Active)

	// The ticker stopped with the round; more time changes nothing.
	for i := 0; i < 5; i++ {
		advance(t, clk, time.Second)
	}
	assert.Equal(t, s, c.Snapshot())
}

func TestPressScoresAndPauses(t *testing.T) {
	c, clk := newTestController(t, NewSequenceSource(10, 20))

	advance(t, clk, time.Second)
	require.Equal(t, 10*60-1, c.Snapshot().Remaining)

	outcome := c.Press()
	assert.Equal(t, OutcomeScored, outcome)

	s := c.Snapshot()
	assert.Equal(t, 1, s.Score)
	assert.False(t, s.Active)
	assert.Equal(t, StatusInProgress, s.Status)
	assert.Equal(t, PhasePaused, s.Phase())
	assert.Equal(t, 10*60-1, s.Remaining, "countdown frozen during the pause")

	advance(t, clk, time.Second)

	s = c.Snapshot()
	assert.Equal(t, PhaseRunning, s.Phase())
	assert.True(t, s.Active)
	assert.Equal(t, 1, s.Score)
	assert.Equal(t, 2, s.Round)
	assert.Equal(t, 20*60, s.Remaining)
	assert.Equal(t, 20*60, s.Duration)

	// The new round counts down on its own ticker.
	advance(t, clk, time.Second)
	assert.Equal(t, 20*60-1, c.Snapshot().Remaining)
}

func TestRestartAfterFailure(t *testing.T) {
	c, _ := newTestController(t, FixedSource(5))

	for i := 0; i < 7; i++ {
		// Score a point and skip the pause.
		require.Equal(t, OutcomeScored, c.Press())
		c.StartNewRound()
	}
	for i := 0; i < 300; i++ {
		c.Tick()
	}
	s := c.Snapshot()
	require.Equal(t, StatusFailed, s.Status)
	require.Equal(t, 7, s.Score)

	outcome := c.Press()
	assert.Equal(t, OutcomeRestarted, outcome)

	s = c.Snapshot()
	assert.Equal(t, 0, s.Score)
	assert.Equal(t, StatusInProgress, s.Status)
	assert.True(t, s.Active, "restart has no pause")
	assert.Equal(t, 300, s.Remaining)
}

func TestPressDuringPauseIsNoop(t *testing.T) {
	c, _ := newTestController(t, FixedSource(5))

	require.Equal(t, OutcomeScored, c.Press())
	before := c.Snapshot()
	require.Equal(t, PhasePaused, before.Phase())

	for i := 0; i < 10; i++ {
		assert.Equal(t, OutcomeIgnored, c.Press())
	}
	assert.Equal(t, before, c.Snapshot())
}

func TestTickIgnoredWhilePaused(t *testing.T) {
	c, _ := newTestController(t, FixedSource(5))

	c.Press()
	before := c.Snapshot()
	c.Tick()
	assert.Equal(t, before, c.Snapshot())
}

func TestPressesDuringPauseDoNotCancelNextRound(t *testing.T) {
	c, clk := newTestController(t, FixedSource(6))

	require.Equal(t, OutcomeScored, c.Press())
	c.Press()
	c.Press()

	advance(t, clk, time.Second)
	s := c.Snapshot()
	assert.Equal(t, PhaseRunning, s.Phase())
	assert.Equal(t, 1, s.Score)
	assert.Equal(t, 2, s.Round)
}

func TestStaleTickDoesNotTouchNewRound(t *testing.T) {
	c, clk := newTestController(t, FixedSource(5))

	// Press lands exactly on a tick boundary: the old ticker and the pause
	// timer are due at the same instant.
	advance(t, clk, time.Second)
	require.Equal(t, OutcomeScored, c.Press())
	advance(t, clk, time.Second)

	s := c.Snapshot()
	assert.Equal(t, 300, s.Remaining, "a superseded ticker must not decrement the new round")
	assert.Equal(t, 2, s.Round)

	advance(t, clk, time.Second)
	assert.Equal(t, 299, c.Snapshot().Remaining)
}

func TestStartNewRoundCancelsPendingPause(t *testing.T) {
	c, clk := newTestController(t, NewSequenceSource(5, 8, 12))

	c.Press()
	c.StartNewRound()
	require.Equal(t, 2, c.Snapshot().Round)
	require.Equal(t, 8*60, c.Snapshot().Remaining)

	advance(t, clk, time.Second)
	s := c.Snapshot()
	assert.Equal(t, 2, s.Round, "cancelled pause must not start another round")
	assert.Equal(t, 8*60-1, s.Remaining)
}

func TestCloseStopsTimers(t *testing.T) {
	c, clk := newTestController(t, FixedSource(5))

	advance(t, clk, time.Second)
	c.Close()
	before := c.Snapshot()

	for i := 0; i < 3; i++ {
		advance(t, clk, time.Second)
	}
	c.Tick()
	assert.Equal(t, OutcomeIgnored, c.Press())
	assert.Equal(t, before, c.Snapshot())

	// Closing twice is fine.
	c.Close()
}

func TestCloseDuringPause(t *testing.T) {
	c, clk := newTestController(t, FixedSource(5))

	c.Press()
	c.Close()
	advance(t, clk, time.Second)

	s := c.Snapshot()
	assert.Equal(t, PhasePaused, s.Phase())
	assert.Equal(t, 1, s.Round)
}

func TestObserverSeesEveryTransition(t *testing.T) {
	var (
		mu     sync.Mutex
		phases []Phase
	)
	observer := func(s State) {
		mu.Lock()
		defer mu.Unlock()
		phases = append(phases, s.Phase())
	}

	c, clk := newTestController(t, FixedSource(5), WithObserver(observer))

	c.Press()
	advance(t, clk, time.Second)
	for i := 0; i < 300; i++ {
		c.Tick()
	}
	c.Press()

	mu.Lock()
	defer mu.Unlock()

	require.NotEmpty(t, phases)
	assert.Equal(t, PhaseRunning, phases[0])
	assert.Equal(t, PhasePaused, phases[1])
	assert.Equal(t, PhaseRunning, phases[2])
	assert.Contains(t, phases, PhaseFailed)
	assert.Equal(t, PhaseRunning, phases[len(phases)-1])
}

func TestCustomConfig(t *testing.T) {
	clk := quartz.NewMock(t)
	cfg := Config{MinMinutes: 1, MaxMinutes: 1, TickInterval: 500 * time.Millisecond, PauseDelay: 2 * time.Second}
	c := New(clk, FixedSource(1), cfg)
	t.Cleanup(c.Close)

	require.Equal(t, 60, c.Snapshot().Remaining)

	advance(t, clk, 500*time.Millisecond)
	assert.Equal(t, 59, c.Snapshot().Remaining)

	c.Press()
	// Step at tick resolution: the cancelled ticker may still be due.
	for i := 0; i < 3; i++ {
		advance(t, clk, 500*time.Millisecond)
	}
	assert.Equal(t, PhasePaused, c.Snapshot().Phase())
	advance(t, clk, 500*time.Millisecond)
	assert.Equal(t, PhaseRunning, c.Snapshot().Phase())
	assert.Equal(t, 60, c.Snapshot().Remaining)
}

func TestZeroPauseDelayStartsNextRoundAtOnce(t *testing.T) {
	clk := quartz.NewMock(t)
	cfg := DefaultConfig()
	cfg.PauseDelay = 0
	c := New(clk, FixedSource(5), cfg)
	t.Cleanup(c.Close)

	require.Equal(t, OutcomeScored, c.Press())

	require.Eventually(t, func() bool {
		return c.Snapshot().Round == 2
	}, time.Second, 5*time.Millisecond)

	s := c.Snapshot()
	assert.Equal(t, PhaseRunning, s.Phase())
	assert.Equal(t, 1, s.Score)
	assert.Equal(t, 300, s.Remaining)
}
