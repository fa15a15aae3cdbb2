package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/go-drift/refresh/pkg/config"
)

// Model is the root Bubble Tea model of the demo.
type Model struct {
	session *session

	keys    keyMap
	help    help.Model
	spinner spinner.Model
	pull    progress.Model

	width    int
	height   int
	quitting bool
}

// NewModel builds the demo list described by cfg with a header and a footer
// attached.
func NewModel(cfg *config.Config) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	pull := progress.New(
		progress.WithDefaultGradient(),
		progress.WithoutPercentage(),
		progress.WithWidth(pullBarWidth),
	)

	return Model{
		session: newSession(cfg),
		keys:    newKeyMap(),
		help:    help.New(),
		spinner: s,
		pull:    pull,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}
