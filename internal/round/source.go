package round

import (
	"math/rand"
	"sync"
	"time"
)

// DurationSource picks round lengths.
// IntRange returns an integer in [min, max], both inclusive.
type DurationSource interface {
	IntRange(min, max int) int
}

// RandSource draws uniformly distributed values from a seeded generator.
// It is safe for concurrent use.
type RandSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandSource creates a source with the given seed.
// A zero seed uses the current time.
func NewRandSource(seed int64) *RandSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RandSource{rng: rand.New(rand.NewSource(seed))}
}

// IntRange implements DurationSource.
func (s *RandSource) IntRange(min, max int) int {
	if max <= min {
		return min
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return min + s.rng.Intn(max-min+1)
}

// FixedSource always returns the same value, clamped to the requested range.
type FixedSource int

// IntRange implements DurationSource.
func (f FixedSource) IntRange(min, max int) int {
	return clamp(int(f), min, max)
}

// SequenceSource returns its values in order, repeating the last one once
// exhausted. Values are clamped to the requested range.
type SequenceSource struct {
	mu     sync.Mutex
	values []int
	next   int
}

// NewSequenceSource creates a source that yields values in order.
func NewSequenceSource(values ...int) *SequenceSource {
	return &SequenceSource{values: values}
}

// IntRange implements DurationSource.
func (s *SequenceSource) IntRange(min, max int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.values) == 0 {
		return min
	}
	v := s.values[s.next]
	if s.next < len(s.values)-1 {
		s.next++
	}
	return clamp(v, min, max)
}

func clamp(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
