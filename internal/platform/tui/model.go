package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/mazeblast/internal/core"
	"github.com/vovakirdan/mazeblast/internal/registry"
	"github.com/vovakirdan/mazeblast/internal/storage"
)

// Model is the Bubble Tea model that runs one game.
// The game must already be Reset.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	standalone bool // Back quits the program instead of flagging the session
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether the score of the current game over was stored
}

// NewModel creates a model for a game that has already been Reset.
// store and logger may be nil.
func NewModel(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) Model {
	if logger == nil {
		logger = log.Default()
	}
	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     logger.With("game", game.ID()),
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
	}
}

// Init starts the frame loop.
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

// handleKey records the action for the next frame.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.inputFrame.Has(core.ActionBack) && m.canLeave() {
		m.backToMenu = true
		if m.standalone {
			return m, tea.Quit
		}
	}
	return m, nil
}

// canLeave reports whether Back may leave the game without losing a run in progress.
func (m Model) canLeave() bool {
	return !m.gameState.Started || m.gameState.GameOver || m.gameState.Paused
}

// handleResize follows the terminal size. Games that cannot resize in place
// are reset.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(msg.Width, msg.Height)
		return m, nil
	}
	if !m.gameState.GameOver {
		if err := m.game.Reset(m.config); err != nil {
			m.logger.Error("reset after resize failed", "error", err)
		}
		m.gameState = m.game.State()
	}
	return m, nil
}

// handleTick runs one frame of the game.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.inputFrame.Clear()

	for _, ev := range result.Events {
		m.logger.Debug("event", "event", ev)
	}

	wasOver := m.gameState.GameOver
	m.gameState = result.State

	switch {
	case m.gameState.GameOver && !wasOver:
		m.logger.Info("game over", "score", m.gameState.Score, "level", m.gameState.Level)
		m.saveScore()
	case wasOver && !m.gameState.GameOver:
		m.logger.Info("game restarted")
		m.scoreSaved = false
	}

	return m, tickCmd(m.config.TickRate)
}

// saveScore stores the finished run once. Failures are logged and play continues.
func (m *Model) saveScore() {
	if m.scoreSaved || m.store == nil || m.gameState.Score <= 0 {
		return
	}
	m.scoreSaved = true

	best, err := m.store.HighScore(m.game.ID())
	if err != nil {
		m.logger.Warn("cannot read high score", "error", err)
	}
	id, err := m.store.SaveScore(m.game.ID(), m.gameState.Score, m.gameState.Level)
	if err != nil {
		m.logger.Warn("cannot save score", "error", err)
		return
	}
	m.logger.Info("score saved", "id", id, "new_best", m.gameState.Score > best)
}

// saveScreenshot writes the current screen as plain text under ~/.mazeblast/screenshots.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	dir := filepath.Join(home, ".mazeblast", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if the user asked to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user asked to leave the game.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// RunResult reports how a standalone game ended.
type RunResult struct {
	State      core.GameState
	BackToMenu bool
}

// Run resets the game and plays it until the user quits or goes back.
func Run(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) (RunResult, error) {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if err := game.Reset(cfg); err != nil {
		return RunResult{}, err
	}

	model := NewModel(game, store, logger, cfg)
	model.standalone = true

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return RunResult{}, err
	}

	m, ok := finalModel.(Model)
	if !ok {
		return RunResult{}, nil
	}
	return RunResult{State: m.State(), BackToMenu: m.BackToMenu()}, nil
}
