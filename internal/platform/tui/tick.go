// Package tui provides the Bubble Tea integration for LOCKED IN.
// It maps keys to the round controller, renders its state and hosts the
// SSH server.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/locked-in/internal/round"
)

// ChangeMsg is sent when the round controller changed state.
// The model re-reads the controller snapshot on receipt.
type ChangeMsg struct{}

// newChangeSignal returns a coalescing signal channel and the observer that
// feeds it. Several changes between two reads collapse into one message.
func newChangeSignal() (chan struct{}, round.Observer) {
	ch := make(chan struct{}, 1)
	return ch, func(round.State) {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// waitForChange returns a command that blocks until the controller signals.
// It returns no message once the channel is closed.
func waitForChange(ch <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return ChangeMsg{}
	}
}
