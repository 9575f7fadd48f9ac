package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/citadelgame/citadel/internal/player"
	"github.com/citadelgame/citadel/internal/storage"
)

const maxVisitRows = 100

// statsTab selects which table the stats screen shows.
type statsTab int

const (
	tabVisits statsTab = iota
	tabEstablishments
)

// StatsKeyMap defines the key bindings for the stats screen.
type StatsKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	NextTab key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k StatsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextTab, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k StatsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.NextTab, k.Quit},
	}
}

// DefaultStatsKeyMap returns default key bindings.
func DefaultStatsKeyMap() StatsKeyMap {
	return StatsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch view"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// StatsModel is the Bubble Tea model for the stats screen. It shows the
// persisted player stats and two tables: recent visits and per
// establishment totals.
type StatsModel struct {
	store    *storage.Store
	stats    player.Stats
	visits   []storage.VisitEntry
	estTotal []storage.EstablishmentStats
	tab      statsTab
	table    table.Model
	help     help.Model
	keys     StatsKeyMap
	width    int
	height   int
	quitting bool
}

// NewStatsModel creates a stats model and loads its data up front.
func NewStatsModel(store *storage.Store, width, height int) StatsModel {
	h := help.New()
	h.ShowAll = false

	m := StatsModel{
		store:  store,
		keys:   DefaultStatsKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.loadData()
	m.table = m.createTable()
	m.fillRows()
	return m
}

func (m *StatsModel) loadData() {
	if m.store == nil {
		return
	}
	if st, err := m.store.LoadStats(); err == nil {
		m.stats = st
	}
	if v, err := m.store.RecentVisits(maxVisitRows); err == nil {
		m.visits = v
	}
	if e, err := m.store.StatsByEstablishment(); err == nil {
		m.estTotal = e
	}
}

// createTable builds the table with columns for the active tab.
func (m *StatsModel) createTable() table.Model {
	var columns []table.Column
	if m.tab == tabVisits {
		columns = []table.Column{
			{Title: "When", Width: 18},
			{Title: "Place", Width: 12},
			{Title: "Action", Width: 20},
			{Title: "Gold", Width: 6},
		}
	} else {
		columns = []table.Column{
			{Title: "Place", Width: 12},
			{Title: "Visits", Width: 8},
			{Title: "Gold spent", Width: 12},
			{Title: "Last visit", Width: 18},
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(m.height-8),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// fillRows populates the table for the active tab.
func (m *StatsModel) fillRows() {
	var rows []table.Row
	if m.tab == tabVisits {
		rows = make([]table.Row, len(m.visits))
		for i, v := range m.visits {
			rows[i] = table.Row{
				v.CreatedAt.Format("Jan 02 15:04"),
				v.Establishment,
				v.Action,
				fmt.Sprintf("%+d", v.GoldDelta),
			}
		}
	} else {
		rows = make([]table.Row, len(m.estTotal))
		for i, e := range m.estTotal {
			rows[i] = table.Row{
				e.Establishment,
				fmt.Sprintf("%d", e.Visits),
				fmt.Sprintf("%d", e.GoldSpent),
				e.LastVisit.Format("Jan 02 15:04"),
			}
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the stats model.
func (m StatsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the stats screen.
func (m StatsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextTab):
			if m.tab == tabVisits {
				m.tab = tabEstablishments
			} else {
				m.tab = tabVisits
			}
			m.table = m.createTable()
			m.fillRows()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.fillRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the stats screen.
func (m StatsModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := "RECENT VISITS"
	if m.tab == tabEstablishments {
		title = "ESTABLISHMENT TOTALS"
	}
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	statsLine := fmt.Sprintf("HP %d   Stamina %d   Charisma %d   Gold %d",
		m.stats.Health, m.stats.Stamina, m.stats.Charisma, m.stats.Gold)
	b.WriteString(centerText(statsLine, m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	b.WriteString(centerText(tableStyle.Render(m.renderTableContent()), m.width))

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or an empty message.
func (m StatsModel) renderTableContent() string {
	empty := m.tab == tabVisits && len(m.visits) == 0 ||
		m.tab == tabEstablishments && len(m.estTotal) == 0
	if empty {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("Nothing recorded yet.\nGo visit the tavern!")
	}
	return m.table.View()
}

// centerText centers a possibly multi-line block within the given width.
func centerText(text string, width int) string {
	lines := strings.Split(text, "\n")
	out := make([]string, len(lines))
	for i, line := range lines {
		pad := (width - lipgloss.Width(line)) / 2
		if pad < 0 {
			pad = 0
		}
		out[i] = strings.Repeat(" ", pad) + line
	}
	return strings.Join(out, "\n")
}

// RunStats runs the stats screen until the user quits.
func RunStats(store *storage.Store, width, height int) error {
	model := NewStatsModel(store, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
