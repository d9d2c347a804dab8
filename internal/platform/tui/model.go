package tui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/registry"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// Options configures a game Model. The zero value plays without storage or
// logging and quits on the back key.
type Options struct {
	Store  *storage.Store
	Logger *log.Logger
	Player string // Recorded with saved runs

	// FixedSeed makes restarts replay the same seed instead of a new one.
	FixedSeed bool

	// Embedded makes the back key hand control to the caller instead of
	// quitting the program.
	Embedded bool

	// ScreenshotDir defaults to ~/.tui-flappy/screenshots.
	ScreenshotDir string
}

// runStats is implemented by games that can report run details for storage.
type runStats interface {
	PairsSpawned() int
	Ticks() int
}

// Model drives one game in Bubble Tea.
type Model struct {
	game   registry.Game
	screen *core.Screen
	opts   Options
	logger *log.Logger
	config core.RuntimeConfig
	keys   GameKeyMap
	tickID int64

	input      core.InputFrame
	state      core.GameState
	restart    bool
	saved      bool // Run saved for the current game over
	quitting   bool
	backToMenu bool
}

// NewModel creates a model for game. A zero seed is replaced by the clock.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		opts:   opts,
		logger: logger,
		config: cfg,
		keys:   DefaultGameKeyMap(),
		tickID: nextTickID(),
		input:  core.NewInputFrame(),
	}
}

// Init resets the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Debug("game ready", "game", m.game.ID(), "seed", m.config.Seed)
	return tickCmd(m.tickID, m.config.TickRate)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The world has a fixed size; only the projection changes
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if msg.ID != m.tickID || m.quitting || m.backToMenu {
			return m, nil
		}
		return m.handleTick()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionBack:
		if !m.opts.Embedded {
			m.quitting = true
			return m, tea.Quit
		}
		if m.state.GameOver() || m.state.Paused() || m.state.Phase == core.PhaseReady {
			m.backToMenu = true
		}
	case core.ActionRestart:
		if m.state.GameOver() {
			m.restart = true
		}
	case core.ActionNone:
	default:
		m.input.Set(action)
	}
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.restart {
		if !m.opts.FixedSeed {
			m.config.Seed = time.Now().UnixNano()
		}
		m.game.Reset(m.config)
		m.state = m.game.State()
		m.restart = false
		m.saved = false
		m.input.Clear()
		m.logger.Debug("game restarted", "game", m.game.ID(), "seed", m.config.Seed)
		return m, tickCmd(m.tickID, m.config.TickRate)
	}

	result := m.game.Step(m.input)
	m.state = result.State
	m.input.Clear()

	for _, ev := range result.Events {
		switch ev.Kind {
		case core.EventStarted:
			m.logger.Debug("run started", "game", m.game.ID())
		case core.EventScored:
			m.logger.Debug("pair spawned", "game", m.game.ID(), "score", ev.Value)
		case core.EventCrashed:
			m.logger.Info("run over", "game", m.game.ID(), "player", m.player(), "score", ev.Value)
		}
	}

	if m.state.GameOver() && !m.saved {
		m.saveRun()
		m.saved = true
	}

	return m, tickCmd(m.tickID, m.config.TickRate)
}

// saveRun stores the finished run. Zero scores are not kept.
func (m *Model) saveRun() {
	if m.opts.Store == nil || m.state.Score == 0 {
		return
	}

	run := storage.Run{
		GameID: m.game.ID(),
		Player: m.player(),
		Score:  m.state.Score,
		Seed:   m.config.Seed,
	}
	if rs, ok := m.game.(runStats); ok {
		run.Pairs = rs.PairsSpawned()
		run.Ticks = rs.Ticks()
	}

	if _, err := m.opts.Store.SaveRun(run); err != nil {
		m.logger.Error("could not save run", "game", run.GameID, "error", err)
	}
}

func (m Model) player() string {
	if m.opts.Player == "" {
		return storage.LocalPlayer
	}
	return m.opts.Player
}

// saveScreenshot writes the current frame as plain text and returns its path.
func (m *Model) saveScreenshot() (string, error) {
	dir := m.opts.ScreenshotDir
	if dir == "" {
		dir = config.UserPath("screenshots")
	}
	if dir == "" {
		return "", errors.New("no screenshot directory")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create screenshot directory: %w", err)
	}

	m.game.Render(m.screen)
	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405.000"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("write screenshot: %w", err)
	}
	return path, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the game state after the latest tick.
func (m Model) State() core.GameState {
	return m.state
}

// IsQuitting reports whether the user asked to leave the program.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu reports whether an embedded model wants to return to its menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run plays game in the current terminal until the user quits.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, cfg, opts),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
