// Package tui provides the Bubble Tea integration for ferretbox: the play
// screen, the results browser, and the SSH server. It translates key and
// mouse messages into game events and re-renders from the returned state;
// the game core itself never sees the terminal.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/arcadelab/ferretbox/internal/config"
	"github.com/arcadelab/ferretbox/internal/core"
	"github.com/arcadelab/ferretbox/internal/game"
	"github.com/arcadelab/ferretbox/internal/storage"
)

// Model is the Bubble Tea model for the play screen. It owns the single
// current game.State; every user intent becomes one game.Event applied
// synchronously, and the view re-renders from the new state.
type Model struct {
	state   game.State
	gameCfg config.GameConfig
	rtCfg   core.RuntimeConfig
	screen  *core.Screen
	store   *storage.Store
	keys    KeyMap
	help    help.Model
	layout  viewLayout

	cursor   int // Selected box for keyboard smashing
	best     int // Fewest moves recorded for the current configuration
	saved    bool
	quitting bool
}

// NewModel creates a play-screen model. store may be nil; the game then
// runs without result persistence.
func NewModel(gameCfg config.GameConfig, store *storage.Store, rtCfg core.RuntimeConfig) Model {
	m := Model{
		state:   game.New(gameCfg.Game.Boxes, gameCfg.Game.Speed),
		gameCfg: gameCfg,
		rtCfg:   rtCfg,
		// The bottom rows are reserved for the help footer.
		screen: core.NewScreen(rtCfg.ScreenW, core.Max(rtCfg.ScreenH-2, 1)),
		store:   store,
		keys:    DefaultKeyMap(),
		help:    help.New(),
	}
	m.layout = buildLayout(m.state, gameCfg.Limits, rtCfg.ScreenW)
	m.refreshBest()
	return m
}

// Init implements tea.Model. The game is event-driven; there is no tick loop.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.rtCfg.ScreenW = msg.Width
		m.rtCfg.ScreenH = msg.Height
		m.screen.Resize(msg.Width, core.Max(msg.Height-2, 1))
		m.help.Width = msg.Width
		m.layout = buildLayout(m.state, m.gameCfg.Limits, m.rtCfg.ScreenW)
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Left):
		m.cursor = core.Max(m.cursor-1, 0)

	case key.Matches(msg, m.keys.Right):
		m.cursor = core.Min(m.cursor+1, m.state.Boxes()-1)

	case key.Matches(msg, m.keys.Smash):
		m.applyEvent(game.SmashBox(m.cursor))

	case key.Matches(msg, m.keys.Undo):
		m.applyEvent(game.Event{Kind: game.EventUndo})

	case key.Matches(msg, m.keys.Reset):
		m.applyEvent(game.Event{Kind: game.EventReset})

	case key.Matches(msg, m.keys.AddBox):
		if m.state.Boxes() < m.gameCfg.Limits.MaxBoxes {
			m.applyEvent(game.Event{Kind: game.EventAddBox})
		}

	case key.Matches(msg, m.keys.RemoveBox):
		m.applyEvent(game.Event{Kind: game.EventRemoveBox})

	case key.Matches(msg, m.keys.SpeedUp):
		if m.state.Speed < m.gameCfg.Limits.MaxSpeed {
			m.applyEvent(game.Event{Kind: game.EventSpeedUp})
		}

	case key.Matches(msg, m.keys.SpeedDown):
		m.applyEvent(game.Event{Kind: game.EventSpeedDown})
	}

	return m, nil
}

// handleMouse processes left-clicks on boxes and panel buttons.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	for i, r := range m.layout.boxRects {
		if r.Contains(msg.X, msg.Y) {
			m.cursor = i
			m.applyEvent(game.SmashBox(i))
			return m, nil
		}
	}

	for _, b := range m.layout.buttons {
		if b.enabled && b.rect.Contains(msg.X, msg.Y) {
			m.applyEvent(b.event)
			return m, nil
		}
	}

	return m, nil
}

// applyEvent runs one game transition and refreshes everything derived
// from the state: layout, cursor bounds, best score, and result saving.
func (m *Model) applyEvent(ev game.Event) {
	reconfigured := ev.Kind == game.EventAddBox || ev.Kind == game.EventRemoveBox ||
		ev.Kind == game.EventSpeedUp || ev.Kind == game.EventSpeedDown

	m.state = game.Apply(m.state, ev)
	m.layout = buildLayout(m.state, m.gameCfg.Limits, m.rtCfg.ScreenW)
	m.cursor = core.Clamp(m.cursor, 0, m.state.Boxes()-1)

	if reconfigured {
		m.refreshBest()
	}

	if !m.state.Cleared() {
		m.saved = false
		return
	}

	// Save the round once when the last ferret goes.
	if !m.saved && m.state.Moves() > 0 && m.store != nil {
		//nolint:errcheck // Best-effort save, play continues regardless
		m.store.SaveResult(m.state.Boxes(), m.state.Speed, m.state.Moves())
		m.saved = true
		m.refreshBest()
	}
}

// refreshBest reloads the fewest-moves record for the current configuration.
func (m *Model) refreshBest() {
	m.best = 0
	if m.store == nil {
		return
	}
	if best, err := m.store.FewestMoves(m.state.Boxes(), m.state.Speed); err == nil {
		m.best = best
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	drawGame(m.screen, m.state, m.cursor, m.layout, m.best)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program with the given model.
func Run(gameCfg config.GameConfig, store *storage.Store, rtCfg core.RuntimeConfig) error {
	model := NewModel(gameCfg, store, rtCfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Boxes and panel buttons are clickable
	)

	_, err := p.Run()
	return err
}
