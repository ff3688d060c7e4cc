package core

import "fmt"

// FormatClock renders seconds as m:ss. Negative values render as 0:00.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// Fraction returns value/denominator clamped to [0, 1].
// A non-positive denominator yields 0.
func Fraction(value, denominator int) float64 {
	if denominator <= 0 {
		return 0
	}
	return ClampF(float64(value)/float64(denominator), 0, 1)
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
