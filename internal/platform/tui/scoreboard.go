package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/arcadelab/ferretbox/internal/core"
	"github.com/arcadelab/ferretbox/internal/storage"
)

const maxResults = 100 // Max results to load per view

// scoreboardView selects which result set the table shows.
type scoreboardView int

const (
	viewBest   scoreboardView = iota // Fewest-moves rounds for one configuration
	viewRecent                       // Latest rounds across all configurations
)

// ScoreboardKeyMap defines the key bindings for the results browser.
type ScoreboardKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Toggle, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "best/recent"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for browsing recorded rounds.
type ScoreboardModel struct {
	store    *storage.Store
	boxes    int // Configuration shown in the best view
	speed    int
	view     scoreboardView
	table    table.Model
	help     help.Model
	keys     ScoreboardKeyMap
	width    int
	height   int
	quitting bool
}

// NewScoreboardModel creates a results browser focused on the given board
// configuration for its best view.
func NewScoreboardModel(store *storage.Store, boxes, speed, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		store:  store,
		boxes:  boxes,
		speed:  speed,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}

	m.table = m.createTable()
	m.loadRows()
	return m
}

// createTable creates the results table.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Boxes", Width: 7},
		{Title: "Speed", Width: 7},
		{Title: "Moves", Width: 7},
		{Title: "Date", Width: 18},
	}

	height := core.Clamp(m.height-6, 3, 20)

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57"))
	t.SetStyles(s)

	return t
}

// loadRows fills the table for the active view.
func (m *ScoreboardModel) loadRows() {
	var (
		results []storage.Result
		err     error
	)

	switch m.view {
	case viewBest:
		results, err = m.store.BestResults(m.boxes, m.speed, maxResults)
	case viewRecent:
		results, err = m.store.RecentResults(maxResults)
	}
	if err != nil {
		m.table.SetRows([]table.Row{})
		return
	}

	rows := make([]table.Row, 0, len(results))
	for i, r := range results {
		rows = append(rows, table.Row{
			strconv.Itoa(i + 1),
			strconv.Itoa(r.Boxes),
			strconv.Itoa(r.Speed),
			strconv.Itoa(r.Moves),
			r.CreatedAt.Format("2006-01-02 15:04"),
		})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the results browser.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Toggle):
			if m.view == viewBest {
				m.view = viewRecent
			} else {
				m.view = viewBest
			}
			m.loadRows()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table.SetHeight(core.Clamp(msg.Height-6, 3, 20))
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the results browser.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	title := fmt.Sprintf("Best rounds - %d boxes, speed %d", m.boxes, m.speed)
	if m.view == viewRecent {
		title = "Recent rounds"
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	return titleStyle.Render(title) + "\n\n" + m.table.View() + "\n" + m.help.View(m.keys)
}

// RunScoreboard starts the interactive results browser.
func RunScoreboard(store *storage.Store, boxes, speed int, rtCfg core.RuntimeConfig) error {
	model := NewScoreboardModel(store, boxes, speed, rtCfg.ScreenW, rtCfg.ScreenH)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
