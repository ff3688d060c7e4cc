package core

import "testing"

func TestFormatClock(t *testing.T) {
	tests := []struct {
		seconds  int
		expected string
	}{
		{0, "0:00"},
		{5, "0:05"},
		{59, "0:59"},
		{60, "1:00"},
		{61, "1:01"},
		{300, "5:00"},
		{1799, "29:59"},
		{1800, "30:00"},
		{-4, "0:00"},
	}

	for _, tc := range tests {
		result := FormatClock(tc.seconds)
		if result != tc.expected {
			t.Errorf("FormatClock(%d) = %q, expected %q", tc.seconds, result, tc.expected)
		}
	}
}

func TestToneFor(t *testing.T) {
	tests := []struct {
		name      string
		failed    bool
		remaining int
		expected  Tone
	}{
		{"plenty of time", false, 900, ToneCalm},
		{"just above threshold", false, 61, ToneCalm},
		{"at threshold", false, 60, ToneWarning},
		{"last second", false, 1, ToneWarning},
		{"failed", true, 0, ToneFailed},
		{"failed wins over time", true, 900, ToneFailed},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := ToneFor(tc.failed, tc.remaining, DefaultWarnSeconds)
			if result != tc.expected {
				t.Errorf("ToneFor(%v, %d) = %v, expected %v", tc.failed, tc.remaining, result, tc.expected)
			}
		})
	}
}

func TestFraction(t *testing.T) {
	tests := []struct {
		value, denominator int
		expected           float64
	}{
		{900, 1800, 0.5},
		{1800, 1800, 1},
		{0, 1800, 0},
		{2000, 1800, 1}, // clamped
		{-5, 1800, 0},   // clamped
		{10, 0, 0},      // no denominator
	}

	for _, tc := range tests {
		result := Fraction(tc.value, tc.denominator)
		if result != tc.expected {
			t.Errorf("Fraction(%d, %d) = %f, expected %f", tc.value, tc.denominator, result, tc.expected)
		}
	}
}

func TestLabels(t *testing.T) {
	if StatusLabel(false) != "LOCKED IN" || StatusLabel(true) != "SILLY" {
		t.Error("unexpected status labels")
	}
	if ButtonLabel(false) != "STAY LOCKED IN!" || ButtonLabel(true) != "TRY AGAIN" {
		t.Error("unexpected button labels")
	}
	if Hint(false) == Hint(true) {
		t.Error("hints should differ between running and failed")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestActionString(t *testing.T) {
	if ActionPress.String() != "Press" {
		t.Errorf("ActionPress.String() = %q", ActionPress.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("Action(99).String() = %q", Action(99).String())
	}
}
