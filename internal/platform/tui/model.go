package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/citadelgame/citadel/internal/core"
	"github.com/citadelgame/citadel/internal/game"
	"github.com/citadelgame/citadel/internal/storage"
)

// Model is the Bubble Tea model driving a single game session.
type Model struct {
	game       *game.Game
	screen     *core.Screen
	store      *storage.Store
	keys       *KeyMapper
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game session.
// store may be nil when persistence is disabled.
func NewModel(g *game.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	g.Reset(cfg)

	return Model{
		game:       g,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		keys:       NewKeyMapper(),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey buffers input for the next simulation tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		m.persist(true)
		return m, tea.Quit
	}
	return m, nil
}

// handleResize adapts the screen buffer. The simulation itself is
// size-independent, so the walk continues uninterrupted.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick runs one simulation step and persists whatever changed.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	// A finished session always flushes stats, matching the quit keys.
	m.persist(m.gameState.DirtyStats || m.gameState.Done)

	if m.gameState.Done {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.config.TickRate)
}

// persist writes dirty stats and drained visits to the store.
// Best effort: a failed write never interrupts the session.
func (m Model) persist(saveStats bool) {
	if m.store == nil {
		return
	}
	if saveStats {
		//nolint:errcheck
		m.store.SaveStats(m.game.Stats())
	}
	for _, v := range m.game.TakeVisits() {
		//nolint:errcheck
		m.store.RecordVisit(v.Establishment, v.Action, v.GoldDelta)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(g *game.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(g, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
