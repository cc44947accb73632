package tui

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-skyroads/internal/config"
	"github.com/vovakirdan/tui-skyroads/internal/core"
	"github.com/vovakirdan/tui-skyroads/internal/storage"
)

const (
	sidebarMinWidth = 90 // narrower terminals drop the stats panel
	sidebarWidth    = 26
	boardLimit      = 100
	allTab          = "all"
)

// ScoreboardKeyMap holds the scoreboard bindings. It implements help.KeyMap.
type ScoreboardKeyMap struct {
	Up, Down         key.Binding
	NextTab, PrevTab key.Binding
	Back, Quit       key.Binding
}

func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextTab, k.PrevTab, k.Back}
}

func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.NextTab, k.PrevTab}, {k.Back, k.Quit}}
}

func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:      bind("↑/k", "scroll up", "up", "k"),
		Down:    bind("↓/j", "scroll down", "down", "j"),
		NextTab: bind("tab/→", "next difficulty", "tab", "right", "l"),
		PrevTab: bind("S-tab/←", "prev difficulty", "shift+tab", "left", "h"),
		Back:    bind("esc/b", "back", "esc", "b"),
		Quit:    bind("q", "quit", "q", "ctrl+c"),
	}
}

// ScoreboardModel lists recorded runs, one tab per difficulty preset plus
// an "all" tab, next to totals for the game.
type ScoreboardModel struct {
	store  *storage.Store
	gameID string
	title  string

	tabs []string
	tab  int

	scores []storage.ScoreEntry
	stats  *storage.GameStats
	causes map[string]int

	table table.Model
	help  help.Model
	keys  ScoreboardKeyMap

	width, height int
	quitting      bool
	goingBack     bool
}

func NewScoreboardModel(store *storage.Store, gameID, title string, width, height int) ScoreboardModel {
	tabs := []string{allTab}
	for _, p := range config.Presets {
		tabs = append(tabs, string(p))
	}

	m := ScoreboardModel{
		store:  store,
		gameID: gameID,
		title:  title,
		tabs:   tabs,
		help:   help.New(),
		keys:   DefaultScoreboardKeyMap(),
		width:  width,
		height: height,
	}
	m.help.Width = width
	m.table = m.newTable()
	m.loadTotals()
	m.loadScores()
	return m
}

func (m ScoreboardModel) sidebar() bool {
	return m.width >= sidebarMinWidth
}

func (m *ScoreboardModel) newTable() table.Model {
	cols := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 8},
		{Title: "Level", Width: 8},
		{Title: "Cause", Width: 20},
		{Title: "Date", Width: 14},
	}

	// The cause column takes whatever width is left.
	avail := m.width - 4
	if m.sidebar() {
		avail -= sidebarWidth + 3
	}
	used := 10
	for i, c := range cols {
		if i != 3 {
			used += c.Width
		}
	}
	cols[3].Width = core.Clamp(avail-used, 8, 26)

	t := table.New(
		table.WithColumns(cols),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)),
	)

	st := table.DefaultStyles()
	st.Header = st.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(colBorder).
		BorderBottom(true).
		Bold(true)
	st.Selected = st.Selected.Foreground(colBright).Background(colSelect).Bold(false)
	t.SetStyles(st)
	return t
}

func (m ScoreboardModel) currentTab() string {
	return m.tabs[m.tab]
}

func (m *ScoreboardModel) loadScores() {
	m.scores = nil
	if m.store != nil {
		q := storage.Query{GameID: m.gameID, Limit: boardLimit}
		if tab := m.currentTab(); tab != allTab {
			q.Difficulty = tab
		}
		if scores, err := m.store.Scores(q); err == nil {
			m.scores = scores
		} else {
			appLog().Warn("cannot load scores", "game", m.gameID, "error", err)
		}
	}
	m.fillTable()
}

func (m *ScoreboardModel) loadTotals() {
	if m.store == nil {
		return
	}
	if stats, err := m.store.GetGameStats(m.gameID); err == nil {
		m.stats = stats
	}
	if causes, err := m.store.CauseCounts(m.gameID); err == nil {
		m.causes = causes
	}
}

func (m *ScoreboardModel) fillTable() {
	rows := make([]table.Row, 0, len(m.scores))
	for i, s := range m.scores {
		level := s.Difficulty
		if level == "" {
			level = "-"
		}
		rows = append(rows, table.Row{
			"#" + strconv.Itoa(i+1),
			strconv.Itoa(s.Score),
			level,
			s.Cause,
			s.CreatedAt.Format("Jan 02 15:04"),
		})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles input. Back and quit end the program so the scoreboard
// also works standalone; embedding models check IsGoingBack and IsQuitting.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextTab):
			m.switchTab(1)
			return m, nil
		case key.Matches(msg, m.keys.PrevTab):
			m.switchTab(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.fillTable()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *ScoreboardModel) switchTab(delta int) {
	n := len(m.tabs)
	m.tab = ((m.tab+delta)%n + n) % n
	m.loadScores()
}

func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString(headingStyle.Render(centerText("HIGH SCORES - "+m.title, m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.viewTabs(), m.width))
	b.WriteString("\n\n")

	board := panelStyle.Render(m.viewBoard())
	if m.sidebar() {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.viewStats(), "  ", board))
	} else {
		b.WriteString(centerText(board, m.width))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m ScoreboardModel) viewTabs() string {
	parts := make([]string, len(m.tabs))
	for i, name := range m.tabs {
		style := tabStyle
		if i == m.tab {
			style = activeTabStyle
		}
		parts[i] = style.Render(name)
	}

	line := strings.Join(parts, " ")
	if lipgloss.Width(line) > m.width-4 {
		return fmt.Sprintf("< %s >", m.currentTab())
	}
	return line
}

func (m ScoreboardModel) viewBoard() string {
	if len(m.scores) == 0 {
		return emptyStyle.Render("No scores recorded yet.\nPlay a run to set a high score!")
	}
	return m.table.View()
}

func (m ScoreboardModel) viewStats() string {
	panel := panelStyle.Width(sidebarWidth)

	var sb strings.Builder
	sb.WriteString("Stats\n")
	sb.WriteString(strings.Repeat("-", sidebarWidth-4))
	sb.WriteString("\n")

	if m.stats == nil || m.stats.GamesCount == 0 {
		sb.WriteString("No runs yet\n")
		return panel.Render(sb.String())
	}

	rows := [][2]string{
		{"Runs", strconv.Itoa(m.stats.GamesCount)},
		{"Best", strconv.Itoa(m.stats.HighScore)},
		{"Average", fmt.Sprintf("%.0f", m.stats.AvgScore)},
		{"Distance", strconv.FormatInt(m.stats.TotalScore, 10)},
		{"Played", playTime(m.stats.TotalTicks)},
	}
	for _, r := range rows {
		fmt.Fprintf(&sb, "%-10s%s\n", r[0]+":", r[1])
	}

	if len(m.causes) > 0 {
		sb.WriteString("\nRuns ended by\n")
		nameWidth := sidebarWidth - 8
		for _, c := range slices.Sorted(maps.Keys(m.causes)) {
			fmt.Fprintf(&sb, " %-*s %d\n", nameWidth, truncate(c, nameWidth), m.causes[c])
		}
	}
	return panel.Render(sb.String())
}

// truncate shortens s to width runes, marking the cut with a dot.
func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:width-1]) + "."
}

// playTime formats a tick count at the default tick rate.
func playTime(ticks int64) string {
	d := time.Duration(ticks) * time.Second / core.DefaultTickRate
	return d.Round(time.Second).String()
}

func (m ScoreboardModel) IsGoingBack() bool { return m.goingBack }
func (m ScoreboardModel) IsQuitting() bool  { return m.quitting }

// RunScoreboard shows the scoreboard full screen. goBack is false when the
// player quit instead of returning to the menu.
func RunScoreboard(store *storage.Store, gameID, title string, width, height int) (goBack bool, err error) {
	final, err := tea.NewProgram(NewScoreboardModel(store, gameID, title, width, height), tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
