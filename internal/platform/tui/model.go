// Package tui provides the Bubble Tea integration for slither: the
// terminal event loop, key-to-signal mapping, screen rendering, and the
// Wish SSH front end.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/slither-tui/slither/internal/config"
	"github.com/slither-tui/slither/internal/core"
	"github.com/slither-tui/slither/internal/engine"
	"github.com/slither-tui/slither/internal/replay"
	"github.com/slither-tui/slither/internal/storage"
)

// Model is the Bubble Tea model driving one game session. Each key
// press produces at most one engine signal; there is no timer, the
// engine ticks only on input events.
type Model struct {
	game     *engine.Game
	screen   *core.Screen
	store    *storage.Store
	glyphs   config.Glyphs
	keys     KeyMap
	help     help.Model
	trace    *replay.Trace
	cfg      core.RuntimeConfig
	quitting bool
	saved    bool
}

// NewModel creates a model sized for the given terminal dimensions.
// A zero seed is replaced with the current time.
func NewModel(store *storage.Store, gcfg config.Game, termW, termH int, seed int64) Model {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	field := fieldForTerminal(termW, termH, gcfg)
	cfg := core.RuntimeConfig{FieldW: field.W, FieldH: field.H, Seed: seed}

	return Model{
		game:   engine.New(cfg, gcfg),
		screen: core.NewScreen(termW, core.Max(termH-helpHeight, 1)),
		store:  store,
		glyphs: gcfg.Glyphs,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		trace:  &replay.Trace{},
		cfg:    cfg,
	}
}

// fieldForTerminal computes the play field that fits inside the border,
// HUD and help lines, clamped to the configured minimum size.
func fieldForTerminal(termW, termH int, gcfg config.Game) core.Bounds {
	w := termW - 2
	h := termH - hudHeight - helpHeight - 2
	return core.Bounds{
		W: core.Max(w, core.Max(gcfg.Field.MinWidth, 1)),
		H: core.Max(h, core.Max(gcfg.Field.MinHeight, 1)),
	}
}

// Init initializes the model. The engine is already constructed; no
// startup command is needed.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// Resize only the display buffer; play field bounds are fixed
		// for the lifetime of a session.
		m.screen.Resize(msg.Width, core.Max(msg.Height-helpHeight, 1))
		return m, nil
	}

	return m, nil
}

// handleKey decodes one key press into a signal and applies it.
// Unrecognized keys are discarded without touching the engine.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	sig := m.keys.MapKey(msg)
	if sig.Kind == core.SignalNone {
		return m, nil
	}

	m.game.Apply(sig)
	m.trace.Record(sig)

	if m.game.Snapshot().Terminated {
		m.saveSession()
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// saveSession persists the session trace. Best effort: quitting works
// the same when the store is unavailable.
func (m *Model) saveSession() {
	if m.store == nil || m.saved || m.trace.Len() == 0 {
		return
	}

	bounds := m.game.Bounds()
	//nolint:errcheck // Best-effort save, exit continues regardless
	m.store.SaveSession(storage.SessionEntry{
		Width:  bounds.W,
		Height: bounds.H,
		Seed:   m.cfg.Seed,
		Ticks:  int(m.game.Snapshot().Ticks),
		Trace:  m.trace.Encode(),
	})
	m.saved = true
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	DrawFrame(m.screen, m.game.Snapshot(), m.game.Bounds(), m.glyphs)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for one local game session.
func Run(store *storage.Store, gcfg config.Game, termW, termH int, seed int64) error {
	model := NewModel(store, gcfg, termW, termH, seed)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
