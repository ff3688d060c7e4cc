// Package core provides presentation-independent helpers for LOCKED IN.
// It contains no Bubble Tea dependency so the rules deciding what the
// player sees stay pure and testable.
package core

// Tone is the urgency level of the current screen.
// The platform layer maps each tone to concrete colors.
type Tone uint8

const (
	ToneCalm    Tone = iota // plenty of time left
	ToneWarning             // at or under the warning threshold
	ToneFailed              // the countdown expired
)

// DefaultWarnSeconds is the remaining time at which the screen turns urgent.
const DefaultWarnSeconds = 60

// String returns the tone name.
func (t Tone) String() string {
	switch t {
	case ToneCalm:
		return "calm"
	case ToneWarning:
		return "warning"
	case ToneFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// ToneFor classifies the screen from the round status and time left.
func ToneFor(failed bool, remaining, warnAt int) Tone {
	if failed {
		return ToneFailed
	}
	if remaining <= warnAt {
		return ToneWarning
	}
	return ToneCalm
}

// Labels shown to the player.
const (
	StatusLockedIn = "LOCKED IN"
	StatusSilly    = "SILLY"

	ButtonStay  = "STAY LOCKED IN!"
	ButtonRetry = "TRY AGAIN"

	HintRunning = "Press before time runs out to stay locked in! Each round has a random timer."
	HintFailed  = "You got silly! Press to restart and try to stay locked in."
)

// StatusLabel returns the headline for the round status.
func StatusLabel(failed bool) string {
	if failed {
		return StatusSilly
	}
	return StatusLockedIn
}

// ButtonLabel returns the label of the press button.
func ButtonLabel(failed bool) string {
	if failed {
		return ButtonRetry
	}
	return ButtonStay
}

// Hint returns the instruction line under the button.
func Hint(failed bool) string {
	if failed {
		return HintFailed
	}
	return HintRunning
}
