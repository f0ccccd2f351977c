// Package tui provides the Bubble Tea front end for the game, including
// SSH server support via Wish.
package tui

import (
	"math/rand"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/akarpov/t2048/internal/board"
	"github.com/akarpov/t2048/internal/config"
	"github.com/akarpov/t2048/internal/core"
	"github.com/akarpov/t2048/internal/storage"
)

// Model is the Bubble Tea model driving a single game. It is purely
// key-driven: the board changes only in response to key messages, there
// is no tick loop.
type Model struct {
	board     *board.Board
	screen    *core.Screen
	store     *storage.Store
	ui        config.UIConfig
	startedAt time.Time
	recorded  bool // Whether the current game over has been recorded
	quitting  bool
}

// NewModel creates a model with a fresh board. A zero seed means a
// time-based seed. The store may be nil to play without history.
func NewModel(store *storage.Store, ui config.UIConfig, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		board:     board.New(rand.New(rand.NewSource(cfg.Seed))),
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		ui:        ui,
		startedAt: time.Now(),
	}
}

// Init implements tea.Model. The first View call draws the starting board.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input. Unrecognized keys leave the model
// untouched.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := ActionFor(msg)

	switch action {
	case ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case ActionNewGame:
		// Always allowed, even mid-game.
		m.board.Reset()
		m.recorded = false
		m.startedAt = time.Now()
		return m, nil
	}

	if dir, ok := action.Direction(); ok {
		m.board.Move(dir)
		if m.board.GameOver() && !m.recorded {
			m.recordGame()
			m.recorded = true
		}
	}

	return m, nil
}

// recordGame saves the finished game to history. Best effort: the game
// continues regardless of storage errors.
func (m *Model) recordGame() {
	if m.store == nil {
		return
	}

	result := storage.ResultLost
	if m.board.Won() {
		result = storage.ResultWon
	}

	//nolint:errcheck // Best-effort save
	m.store.RecordGame(storage.GameRecord{
		Result:   result,
		MaxTile:  m.board.MaxTile(),
		Moves:    m.board.Moves(),
		Duration: int(time.Since(m.startedAt).Seconds()),
	})
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	drawGame(m.screen, m.board, m.ui)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(store *storage.Store, ui config.UIConfig, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewModel(store, ui, cfg),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
