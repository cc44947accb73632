package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-skyroads/internal/config"
	"github.com/vovakirdan/tui-skyroads/internal/core"
	"github.com/vovakirdan/tui-skyroads/internal/registry"
	"github.com/vovakirdan/tui-skyroads/internal/storage"
)

// MenuEntry identifies a row of the main menu.
type MenuEntry int

const (
	EntryPlay MenuEntry = iota
	EntryDifficulty
	EntryScores
	EntryQuit
)

var menuEntries = []MenuEntry{EntryPlay, EntryDifficulty, EntryScores, EntryQuit}

// MenuModel is the Bubble Tea model for the main menu.
type MenuModel struct {
	gameID         string
	title          string
	cursor         int
	preset         int // index into config.Presets
	width          int
	height         int
	store          *storage.Store
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	help           help.Model
	quitting       bool
	play           bool
	openScoreboard bool
}

// NewMenuModel creates a new menu model for the given game.
// The difficulty cursor starts on preset, or normal if it is unknown.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig, gameID, preset string) MenuModel {
	title := gameID
	if info, ok := registry.Lookup(gameID); ok {
		title = info.Title
	}

	idx := presetIndex(config.DifficultyNormal)
	if p := config.ParsePreset(preset); p != "" {
		idx = presetIndex(p)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return MenuModel{
		gameID:    gameID,
		title:     title,
		preset:    idx,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		store:     store,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		help:      h,
	}
}

func presetIndex(p config.DifficultyPreset) int {
	for i, candidate := range config.Presets {
		if candidate == p {
			return i
		}
	}
	return 0
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	switch action {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(menuEntries)-1 {
			m.cursor++
		}

	case MenuActionLeft:
		if menuEntries[m.cursor] == EntryDifficulty {
			m.cyclePreset(-1)
		}

	case MenuActionRight:
		if menuEntries[m.cursor] == EntryDifficulty {
			m.cyclePreset(1)
		}

	case MenuActionSelect:
		switch menuEntries[m.cursor] {
		case EntryPlay:
			m.play = true
			return m, tea.Quit
		case EntryDifficulty:
			m.cyclePreset(1)
		case EntryScores:
			m.openScoreboard = true
			return m, tea.Quit
		case EntryQuit:
			m.quitting = true
			return m, tea.Quit
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	}

	return m, nil
}

func (m *MenuModel) cyclePreset(delta int) {
	n := len(config.Presets)
	m.preset = ((m.preset+delta)%n + n) % n
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	spaced := strings.Join(strings.Split(strings.ToUpper(m.title), ""), " ")
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render(spaced), m.width))
	b.WriteString("\n\n")

	if best := m.bestScore(); best > 0 {
		b.WriteString(centerText(dimStyle.Render(fmt.Sprintf("Best (%s): %d", m.Preset(), best)), m.width))
		b.WriteString("\n\n")
	}

	for i, entry := range menuEntries {
		line := m.entryLabel(entry)
		if i == m.cursor {
			line = cursorStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(m.help.View(menuHelp{m.keyMapper}), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(dimStyle.Render("In game"), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(m.help.View(gameHelp{m.keyMapper}), m.width))
	b.WriteString("\n")

	return b.String()
}

func (m MenuModel) entryLabel(entry MenuEntry) string {
	switch entry {
	case EntryPlay:
		return "Play"
	case EntryDifficulty:
		return fmt.Sprintf("Difficulty: < %s >", m.Preset())
	case EntryScores:
		return "High Scores"
	case EntryQuit:
		return "Quit"
	}
	return ""
}

func (m MenuModel) bestScore() int {
	if m.store == nil {
		return 0
	}
	entries, err := m.store.TopScoresByDifficulty(m.gameID, string(m.Preset()), 1)
	if err != nil || len(entries) == 0 {
		return 0
	}
	return entries[0].Score
}

// Preset returns the selected difficulty preset.
func (m MenuModel) Preset() config.DifficultyPreset {
	return config.Presets[m.preset]
}

// WantsPlay returns true if the user chose to start a run.
func (m MenuModel) WantsPlay() bool {
	return m.play
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width. Styled text is measured by
// its printable width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Play            bool
	Preset          config.DifficultyPreset
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig, gameID, preset string) (MenuResult, error) {
	model := NewMenuModel(store, cfg, gameID, preset)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{
		Preset: m.Preset(),
		Config: m.Config(),
	}

	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.WantsPlay():
		result.Play = true
	default:
		result.Quit = true
	}

	return result, nil
}
