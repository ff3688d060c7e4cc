package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/locked-in/internal/core"
)

const barWidth = 30

// Colors per tone.
var (
	colorGreen  = lipgloss.Color("#22c55e")
	colorRed    = lipgloss.Color("#ef4444")
	colorBlue   = lipgloss.Color("#3b82f6")
	colorText   = lipgloss.Color("#374151")
	colorMuted  = lipgloss.Color("#4b5563")
	colorTrack  = lipgloss.Color("#d1d5db")
	colorWhite  = lipgloss.Color("#ffffff")
	colorBgCalm = lipgloss.Color("#dcfce7")
	colorBgWarn = lipgloss.Color("#fef9c3")
	colorBgFail = lipgloss.Color("#fee2e2")
)

// Styles builds lipgloss styles for one renderer. SSH sessions each get
// their own renderer so color detection follows the remote terminal.
type Styles struct {
	r *lipgloss.Renderer
}

// NewStyles creates styles bound to r, or to the default renderer if r is nil.
func NewStyles(r *lipgloss.Renderer) Styles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return Styles{r: r}
}

// palette holds every style used on the game screen for one tone.
// Each style carries the background so nested resets do not punch holes.
type palette struct {
	bg       lipgloss.Color
	base     lipgloss.Style
	label    lipgloss.Style
	value    lipgloss.Style
	status   lipgloss.Style
	clock    lipgloss.Style
	barFill  lipgloss.Style
	barTrack lipgloss.Style
	button   lipgloss.Style
	hint     lipgloss.Style
}

func (s Styles) palette(t core.Tone) palette {
	bg, accent, button := colorBgCalm, colorGreen, colorBlue
	switch t {
	case core.ToneWarning:
		bg, accent, button = colorBgWarn, colorRed, colorRed
	case core.ToneFailed:
		bg, accent, button = colorBgFail, colorRed, colorRed
	}

	base := s.r.NewStyle().Background(bg)
	clock := base.Foreground(colorText).Bold(true)
	barFill := base.Foreground(colorBlue)
	if t != core.ToneCalm {
		clock = clock.Foreground(colorRed).Blink(true)
		barFill = base.Foreground(colorRed)
	}

	return palette{
		bg:       bg,
		base:     base,
		label:    base.Foreground(colorMuted),
		value:    base.Foreground(colorText).Bold(true),
		status:   base.Foreground(accent).Bold(true).Padding(0, 2),
		clock:    clock,
		barFill:  barFill,
		barTrack: base.Foreground(colorTrack),
		button: s.r.NewStyle().
			Foreground(colorWhite).
			Background(button).
			Bold(true).
			Padding(1, 4),
		hint: base.Foreground(colorMuted).Italic(true).Width(44).Align(lipgloss.Center),
	}
}

// gameView is everything the game screen shows.
type gameView struct {
	Failed      bool
	Remaining   int
	Denominator int // progress bar denominator in seconds
	Score       int
	Best        int
	WarnAt      int
	Help        string
	Width       int
	Height      int
}

// renderGame draws the game screen centered in the terminal.
func (s Styles) renderGame(v gameView) string {
	tone := core.ToneFor(v.Failed, v.Remaining, v.WarnAt)
	p := s.palette(tone)

	lines := []string{
		p.label.Render("Score: ") + p.value.Render(fmt.Sprintf("%d", v.Score)) +
			p.label.Render("   Best: ") + p.value.Render(fmt.Sprintf("%d", v.Best)),
		"",
		p.status.Render(core.StatusLabel(v.Failed)),
		"",
	}

	if !v.Failed {
		lines = append(lines,
			p.clock.Render(core.FormatClock(v.Remaining)),
			renderBar(p, core.Fraction(v.Remaining, v.Denominator)),
			"",
		)
	}

	lines = append(lines,
		p.button.Render(core.ButtonLabel(v.Failed)),
		"",
		p.hint.Render(core.Hint(v.Failed)),
	)
	if v.Help != "" {
		lines = append(lines, "", v.Help)
	}

	content := lipgloss.JoinVertical(lipgloss.Center, lines...)
	if v.Width <= 0 || v.Height <= 0 {
		return content
	}

	return s.r.Place(v.Width, v.Height, lipgloss.Center, lipgloss.Center, content,
		lipgloss.WithWhitespaceBackground(p.bg),
	)
}

// renderBar draws the countdown bar for a fill fraction in [0, 1].
func renderBar(p palette, fraction float64) string {
	filled := int(math.Round(fraction * barWidth))
	filled = core.Clamp(filled, 0, barWidth)
	return p.barFill.Render(strings.Repeat("█", filled)) +
		p.barTrack.Render(strings.Repeat("░", barWidth-filled))
}
