package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/puzzle-deck/internal/core"
	"github.com/vovakirdan/puzzle-deck/internal/plugin"
	"github.com/vovakirdan/puzzle-deck/internal/storage"
)

// GameModel is the Bubble Tea model hosting a single plugin.
type GameModel struct {
	plug       plugin.Plugin
	screen     *core.Screen
	store      *storage.Store
	config     core.HostConfig
	inputFrame core.InputFrame
	status     core.Status
	keyMapper  *KeyMapper
	quitting   bool
	backToMenu bool
	// quitOnClose makes a back-out quit the program. Set for standalone play;
	// session mode returns to the menu instead.
	quitOnClose bool
	scoreSaved  bool // Whether score has been saved for the current game over
}

// NewGameModel creates a new Bubble Tea model for the given plugin.
func NewGameModel(p plugin.Plugin, store *storage.Store, cfg core.HostConfig) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return GameModel{
		plug:       p,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
}

// Init initializes the plugin and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.plug.Init(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	// B returns to the menu once the game is over or paused.
	if msg.String() == "b" && (m.status.Done || m.status.Paused) {
		m.backToMenu = true
		if m.quitOnClose {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	return m, nil
}

// handleResize processes window resize events.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	// A restart discards the previous game over, allow a fresh save.
	if m.inputFrame.Has(core.ActionRestart) && m.status.Done {
		m.scoreSaved = false
	}

	m.status = m.plug.Update(m.inputFrame)

	// Save score on game over (once)
	if m.status.Done && !m.scoreSaved && m.status.Score > 0 {
		if m.store != nil {
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveScore(m.plug.ID(), m.status.Score)
			//nolint:errcheck // Best-effort save
			m.store.RecordGameEnd(m.plug.ID(), m.status.Score)
		}
		m.scoreSaved = true
	}

	if m.plug.WantsClose() {
		m.backToMenu = true
		if m.quitOnClose {
			m.quitting = true
			m.inputFrame.Clear()
			return m, tea.Quit
		}
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.screen.Clear()
	m.plug.Draw(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".puzzledeck", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.plug.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	// The plugin contract promises a cleared buffer before each draw.
	m.screen.Clear()
	m.plug.Draw(m.screen)

	return RenderScreen(m.screen)
}

// IsQuitting returns true if the user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user requested to go back to the menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program hosting a single plugin.
func Run(p plugin.Plugin, store *storage.Store, cfg core.HostConfig) error {
	model := NewGameModel(p, store, cfg)
	model.quitOnClose = true

	prog := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := prog.Run()
	p.Shutdown()
	return err
}
