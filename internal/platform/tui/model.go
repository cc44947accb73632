package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-skyroads/internal/core"
	"github.com/vovakirdan/tui-skyroads/internal/registry"
	"github.com/vovakirdan/tui-skyroads/internal/storage"
)

// RunReporter is implemented by games that describe a finished run beyond
// its score. The platform stores the extra fields with the score.
type RunReporter interface {
	Difficulty() string
	Cause() string
	Ticks() int
}

// PresetSetter is implemented by games with selectable difficulty presets.
type PresetSetter interface {
	SetPreset(preset string)
}

// runRecord builds the storage row for a finished run.
func runRecord(game registry.Game, state core.GameState) storage.Run {
	run := storage.Run{GameID: game.ID(), Score: state.Score}
	if r, ok := game.(RunReporter); ok {
		run.Difficulty = r.Difficulty()
		run.Cause = r.Cause()
		run.Ticks = r.Ticks()
	}
	return run
}

// ModelOption tweaks a Model.
type ModelOption func(*Model)

// WithMenuReturn lets "b" leave a finished or paused run. The owner checks
// BackToMenu after each update.
func WithMenuReturn() ModelOption {
	return func(m *Model) { m.menuReturn = true }
}

// WithScreenshotDir sets where ctrl+s writes screen dumps. Empty disables it.
func WithScreenshotDir(dir string) ModelOption {
	return func(m *Model) { m.shotDir = dir }
}

// Model drives one game: ticks, input, saving finished runs.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	store     *storage.Store
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	input     core.InputFrame
	state     core.GameState

	menuReturn bool
	shotDir    string

	quitting   bool
	backToMenu bool
	saved      bool // finished run already stored
}

// NewModel wraps game. A zero seed in cfg is replaced by a time-based one.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...ModelOption) Model {
	cfg = cfg.WithDefaults()
	m := Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		shotDir:   defaultScreenshotDir(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

func defaultScreenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "screenshots")
}

func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The projection follows the screen, so the run keeps going.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		if path, err := m.saveScreenshot(); err == nil {
			appLog().Info("screenshot saved", "path", path)
		} else {
			appLog().Warn("screenshot failed", "error", err)
		}
		return m, nil
	case "b":
		if m.menuReturn && (m.state.GameOver || m.state.Paused) {
			m.backToMenu = true
			return m, nil
		}
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.input) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.state.GameOver && m.input.Has(core.ActionRestart) {
		m.config = m.config.Reseed()
		m.game.Reset(m.config)
		m.state = m.game.State()
		m.saved = false
		m.input.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	m.state = m.game.Step(m.input).State
	if m.state.GameOver && !m.saved {
		m.saveRun()
		m.saved = true
	}

	m.input.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveRun stores the finished run. Zero scores are not worth a row.
func (m Model) saveRun() {
	if m.store == nil || m.state.Score <= 0 {
		return
	}
	run := runRecord(m.game, m.state)
	if _, err := m.store.SaveRun(run); err != nil {
		appLog().Warn("could not save run", "game", run.GameID, "error", err)
		return
	}
	appLog().Debug("run saved", "game", run.GameID, "score", run.Score, "cause", run.Cause)
}

// saveScreenshot writes the current frame as plain text.
func (m *Model) saveScreenshot() (string, error) {
	if m.shotDir == "" {
		return "", fmt.Errorf("no screenshot directory")
	}
	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		return "", fmt.Errorf("create screenshot dir: %w", err)
	}

	m.screen.Clear()
	m.game.Render(m.screen)

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(m.shotDir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("write screenshot: %w", err)
	}
	return path, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting reports whether the player asked to end the session.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu reports whether the player asked to leave the run.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run plays game full screen until the player quits.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(NewModel(game, store, cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
