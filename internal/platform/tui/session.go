package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-skyroads/internal/core"
	"github.com/vovakirdan/tui-skyroads/internal/registry"
	"github.com/vovakirdan/tui-skyroads/internal/storage"
)

type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenGame
	screenScores
)

// SessionModel runs the whole flow of one SSH connection inside a single
// program: menu, run, scoreboard and back.
type SessionModel struct {
	store    *storage.Store
	config   core.RuntimeConfig
	gameID   string
	username string
	logger   *log.Logger

	screen     sessionScreen
	menu       MenuModel
	scoreboard ScoreboardModel
	run        *Model
	quitting   bool
}

func NewSessionModel(store *storage.Store, cfg core.RuntimeConfig, gameID, username string) SessionModel {
	return SessionModel{
		store:    store,
		config:   cfg,
		gameID:   gameID,
		username: username,
		logger:   appLog(),
		menu:     NewMenuModel(store, cfg, gameID, ""),
	}
}

func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenScores:
		return m.updateScores(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu forwards to the menu. The menu quits its own program on a
// choice; here those commands are dropped and the session switches screens.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	if menu, ok := next.(MenuModel); ok {
		m.menu = menu
	}

	switch {
	case m.menu.IsQuitting():
		return m.quit()

	case m.menu.WantsScoreboard():
		m.scoreboard = NewScoreboardModel(m.store, m.gameID, m.menu.title, m.config.ScreenW, m.config.ScreenH)
		m.screen = screenScores
		return m, m.scoreboard.Init()

	case m.menu.WantsPlay():
		return m.startRun()
	}

	return m, cmd
}

func (m SessionModel) startRun() (tea.Model, tea.Cmd) {
	game, err := registry.Create(m.gameID)
	if err != nil {
		m.logger.Error("cannot create game", "game", m.gameID, "error", err)
		return m.quit()
	}
	preset := m.menu.Preset()
	if ps, ok := game.(PresetSetter); ok {
		ps.SetPreset(string(preset))
	}

	m.config = m.menu.Config().Reseed()
	run := NewModel(game, m.store, m.config, WithMenuReturn())
	m.run = &run
	m.screen = screenGame
	m.logger.Debug("run started", "user", m.username, "preset", preset)
	return m, m.run.Init()
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scoreboard.Update(msg)
	if board, ok := next.(ScoreboardModel); ok {
		m.scoreboard = board
	}

	switch {
	case m.scoreboard.IsQuitting():
		return m.quit()
	case m.scoreboard.IsGoingBack():
		return m.backToMenu()
	}
	return m, cmd
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.run.Update(msg)
	if run, ok := next.(Model); ok {
		m.run = &run
	}

	switch {
	case m.run.BackToMenu():
		m.run = nil
		return m.backToMenu()
	case m.run.IsQuitting():
		return m.quit()
	}
	return m, cmd
}

// backToMenu rebuilds the menu with the last chosen preset.
func (m SessionModel) backToMenu() (tea.Model, tea.Cmd) {
	m.menu = NewMenuModel(m.store, m.config, m.gameID, string(m.menu.Preset()))
	m.screen = screenMenu
	return m, m.menu.Init()
}

func (m SessionModel) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	return m, tea.Quit
}

func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenGame:
		if m.run != nil {
			return m.run.View()
		}
	case screenScores:
		return m.scoreboard.View()
	}
	return m.menu.View()
}
