package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/horsecatdog/gazool/internal/core"
	"github.com/horsecatdog/gazool/internal/game"
	"github.com/horsecatdog/gazool/internal/storage"
)

// Model is the Bubble Tea model driving one game session. Every tick it
// steps the state machine, then composites the virtual console to the
// terminal.
type Model struct {
	session    *game.Session
	console    *core.Console
	store      *storage.Store
	keyMapper  *KeyMapper
	config     core.RuntimeConfig
	quitting   bool
	scoreSaved bool // Whether the result has been saved for the current game over
}

// NewModel creates a new Bubble Tea model running a fresh session.
func NewModel(store *storage.Store, cfg core.RuntimeConfig) Model {
	console := core.NewConsole(core.ConsoleWidth, core.ConsoleHeight)
	session := game.NewSession(cfg, console)

	// Seed the title-screen high score from stored history
	if store != nil {
		if high, err := store.HighScore(); err == nil {
			session.SetHighScore(high)
		}
	}

	return Model{
		session:   session,
		console:   console,
		store:     store,
		keyMapper: NewKeyMapper(),
		config:    cfg,
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

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Hard quit regardless of game state
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	if msg.Type == tea.KeyCtrlS {
		m.saveScreenshot()
		return m, nil
	}

	if k := m.keyMapper.MapKey(msg); k != core.KeyNone {
		m.session.Keys().Push(k)
	}

	return m, nil
}

// handleTick advances the session one tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	before := m.session.State()
	m.session.Step()
	after := m.session.State()

	// A fresh game invalidates the previous save
	if after == game.StateGameInput && before != game.StateGameInput {
		m.scoreSaved = false
	}

	// Record the result on the victory/defeat edge, once per game
	if !m.scoreSaved && (after == game.StateVictory || after == game.StateDefeat) {
		m.saveResult(after == game.StateVictory)
		m.scoreSaved = true
	}

	if m.session.QuitRequested() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.config.TickRate)
}

// saveResult persists a finished game, best effort.
func (m *Model) saveResult(won bool) {
	if m.store == nil {
		return
	}
	snap := m.session.Snapshot()
	//nolint:errcheck // Best-effort save, play continues regardless
	m.store.SaveScore(storage.ScoreEntry{
		Score:   snap.Score,
		Target:  snap.Target,
		MaxTile: snap.MaxTile,
		Won:     won,
	})
}

// saveScreenshot saves the current console to a file.
func (m *Model) saveScreenshot() {
	dir := filepath.Join(os.Getenv("HOME"), ".gazool", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	var buf []byte
	for row := 0; row < m.console.Height(); row++ {
		buf = append(buf, m.console.Row(row)...)
		buf = append(buf, '\n')
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("gazool_%s.txt", timestamp))
	//nolint:errcheck // Best-effort save, play continues regardless
	os.WriteFile(path, buf, 0o600)
}

// View renders the console buffer to a styled string.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return RenderConsole(m.console)
}

// Run starts the Bubble Tea program with the given model.
func Run(store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
