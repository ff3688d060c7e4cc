package tui

import (
	"io"
	"sync"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/vovakirdan/locked-in/internal/config"
	"github.com/vovakirdan/locked-in/internal/core"
	"github.com/vovakirdan/locked-in/internal/round"
	"github.com/vovakirdan/locked-in/internal/storage"
)

// Options configures a game Model.
type Options struct {
	Store     *storage.Store       // nil disables score saving
	Config    config.Config        // game configuration
	Runtime   core.RuntimeConfig   // screen size, seed, player name
	SessionID string               // empty = generated
	Clock     quartz.Clock         // nil = real clock
	Source    round.DurationSource // nil = seeded from Runtime.Seed
	Renderer  *lipgloss.Renderer   // nil = default renderer
	Logger    *log.Logger          // nil = discard
}

// Model is the Bubble Tea model for one LOCKED IN session.
type Model struct {
	ctrl      *round.Controller
	changes   chan struct{}
	closeOnce *sync.Once
	store     *storage.Store
	cfg       config.Config
	runtime   core.RuntimeConfig
	sessionID string
	logger    *log.Logger
	styles    Styles
	keys      KeyMap
	help      help.Model
	state     round.State
	best      int
	board     *ScoreboardModel
	quitting  bool
	// scoreSaved is set once the streak ending in the current failure has
	// been handled, so it is stored only once.
	scoreSaved bool
}

// NewModel creates a model and starts the first round.
func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	source := opts.Source
	if source == nil {
		source = round.NewRandSource(opts.Runtime.Seed)
	}
	sessionID := opts.SessionID
	if sessionID == "" {
		sessionID = storage.NewSessionID()
	}
	if opts.Runtime.Player == "" {
		opts.Runtime.Player = core.DefaultConfig().Player
	}

	changes, observer := newChangeSignal()
	ctrl := round.New(opts.Clock, source, opts.Config.RoundSettings(),
		round.WithLogger(logger.WithPrefix("round")),
		round.WithObserver(observer),
	)

	h := help.New()
	h.ShowAll = false
	h.Width = opts.Runtime.ScreenW

	m := Model{
		ctrl:      ctrl,
		changes:   changes,
		closeOnce: &sync.Once{},
		store:     opts.Store,
		cfg:       opts.Config,
		runtime:   opts.Runtime,
		sessionID: sessionID,
		logger:    logger,
		styles:    NewStyles(opts.Renderer),
		keys:      DefaultKeyMap(),
		help:      h,
		state:     ctrl.Snapshot(),
	}
	m.best = m.loadBest()
	return m
}

// Init starts listening for controller changes.
func (m Model) Init() tea.Cmd {
	return waitForChange(m.changes)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ChangeMsg:
		m.refresh()
		return m, waitForChange(m.changes)

	case tea.WindowSizeMsg:
		m.runtime.ScreenW = msg.Width
		m.runtime.ScreenH = msg.Height
		m.help.Width = msg.Width
		if m.board != nil {
			m.board.Resize(msg.Width, msg.Height)
		}
		return m, nil

	case tea.KeyMsg:
		if m.board != nil {
			return m.updateBoard(msg)
		}
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey processes keyboard input on the game screen.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.Action(msg) {
	case core.ActionQuit:
		m.quitting = true
		m.Close()
		return m, tea.Quit

	case core.ActionPress:
		// Catch a failure the change signal has not delivered yet, so its
		// streak is saved before the restart resets the score.
		m.refresh()
		outcome := m.ctrl.Press()
		m.logger.Debug("press", "outcome", outcome, "score", m.state.Score)
		m.refresh()

	case core.ActionScores:
		board := NewScoreboardModel(m.store, m.styles, m.runtime.ScreenW, m.runtime.ScreenH)
		m.board = &board
	}

	return m, nil
}

// updateBoard forwards input to the scoreboard overlay.
func (m Model) updateBoard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	board, cmd := m.board.Update(msg)
	m.board = &board

	if board.IsQuitting() {
		m.quitting = true
		m.Close()
		return m, tea.Quit
	}
	if board.IsGoingBack() {
		m.board = nil
	}
	return m, cmd
}

// refresh pulls the controller snapshot and records finished streaks.
func (m *Model) refresh() {
	s := m.ctrl.Snapshot()

	switch s.Status {
	case round.StatusFailed:
		if !m.scoreSaved {
			m.saveScore(s.Score)
			m.scoreSaved = true
		}
	case round.StatusInProgress:
		m.scoreSaved = false
	}

	m.state = s
}

// saveScore stores a finished streak. Best effort: the game goes on
// without storage.
func (m *Model) saveScore(score int) {
	if score > m.best {
		m.best = score
	}
	if m.store == nil || score <= 0 {
		return
	}

	_, err := m.store.SaveScore(storage.ScoreInput{
		SessionID: m.sessionID,
		Player:    m.runtime.Player,
		Score:     score,
	})
	if err != nil {
		m.logger.Warn("could not save score", "error", err)
		return
	}
	m.logger.Info("streak saved", "player", m.runtime.Player, "score", score)
}

func (m Model) loadBest() int {
	if m.store == nil {
		return 0
	}
	best, err := m.store.PlayerBest(m.runtime.Player)
	if err != nil {
		m.logger.Warn("could not load best score", "error", err)
		return 0
	}
	return best
}

// State returns the last snapshot the model rendered.
func (m Model) State() round.State {
	return m.state
}

// Close stops the round timers and releases the command waiting for
// changes. Safe to call more than once.
func (m Model) Close() {
	m.closeOnce.Do(func() {
		m.ctrl.Close()
		// The controller never notifies after Close, so nothing sends on
		// changes from here on.
		close(m.changes)
	})
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.board != nil {
		return m.board.View()
	}

	failed := m.state.Status == round.StatusFailed
	return m.styles.renderGame(gameView{
		Failed:      failed,
		Remaining:   m.state.Remaining,
		Denominator: m.cfg.ProgressDenominator(m.state.Duration),
		Score:       m.state.Score,
		Best:        max(m.best, m.state.Score),
		WarnAt:      m.cfg.Display.WarningSeconds,
		Help:        m.help.View(m.keys),
		Width:       m.runtime.ScreenW,
		Height:      m.runtime.ScreenH,
	})
}

// Run starts the Bubble Tea program for a local game.
func Run(opts Options) error {
	model := NewModel(opts)
	defer model.Close()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
