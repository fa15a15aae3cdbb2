package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	s := m.session

	switch x := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = x.Width, x.Height
		m.help.Width = x.Width
		s.resize(x.Width, x.Height)

	case tea.KeyMsg:
		if key.Matches(x, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
		m = m.handleKey(x)

	case spinner.TickMsg:
		m.spinner, cmd = m.spinner.Update(x)

	case settleMsg:
		if !s.view.PanPhase().Dragging() && s.view.Overscrolled() {
			s.view.Settle()
		}

	case hideDoneMsg:
		s.header.CompleteHideAnimation()
		if s.view.Overscrolled() {
			s.view.Settle()
		}

	case refreshDoneMsg:
		s.finishRefresh()

	case loadDoneMsg:
		s.finishLoad()
	}

	cmds := append([]tea.Cmd{cmd}, s.drain()...)
	return m, tea.Batch(cmds...)
}

func (m Model) handleKey(msg tea.KeyMsg) Model {
	s := m.session
	switch {
	case key.Matches(msg, m.keys.Pull):
		s.view.Drag(dragStep)
	case key.Matches(msg, m.keys.Push):
		s.view.Drag(-dragStep)
	case key.Matches(msg, m.keys.Release):
		if s.view.PanPhase().Dragging() {
			s.view.EndPan()
			s.post(after(settleDelay, settleMsg{}))
		}
	case key.Matches(msg, m.keys.Tap):
		if s.mode.AllowsTap() {
			s.footer.Tap()
		}
	case key.Matches(msg, m.keys.Refresh):
		s.header.BeginRefreshing()
	case key.Matches(msg, m.keys.Fail):
		s.failNext = !s.failNext
	case key.Matches(msg, m.keys.Reset):
		s.footer.ResetToDefault()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m
}
