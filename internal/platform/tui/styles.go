package tui

import "github.com/charmbracelet/lipgloss"

// Shared colors (ANSI 256).
var (
	colAccent = lipgloss.Color("33")
	colCursor = lipgloss.Color("208")
	colBright = lipgloss.Color("229")
	colSelect = lipgloss.Color("57")
	colDim    = lipgloss.Color("241")
	colBorder = lipgloss.Color("240")
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(colAccent)
	cursorStyle = lipgloss.NewStyle().Bold(true).Foreground(colCursor)
	dimStyle    = lipgloss.NewStyle().Foreground(colDim)

	headingStyle   = lipgloss.NewStyle().Bold(true).Foreground(colBright)
	activeTabStyle = lipgloss.NewStyle().Bold(true).Foreground(colBright).Background(colSelect).Padding(0, 1)
	tabStyle       = lipgloss.NewStyle().Foreground(colDim).Padding(0, 1)
	panelStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colBorder).Padding(0, 1)
	emptyStyle     = lipgloss.NewStyle().Foreground(colDim).Italic(true).Padding(2, 4)
)
