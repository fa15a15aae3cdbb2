package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/go-drift/refresh/pkg/refresh"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	badgeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	controlStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86"))

	failStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render("refreshkit"))
	b.WriteString(" ")
	b.WriteString(badgeStyle.Render(fmt.Sprintf("footer mode: %s", m.session.mode)))
	b.WriteString("\n")
	for _, line := range m.lines() {
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString(m.status())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// lines renders the visible part of the surface, header and footer
// included, one row per line.
func (m Model) lines() []string {
	s := m.session
	metrics := s.view.Metrics()
	count := int(metrics.ViewportSize.Height / pointsPerLine)
	header, hasHeader := s.view.ControlPosition(refresh.EdgeTop)
	footer, hasFooter := s.view.ControlPosition(refresh.EdgeBottom)

	out := make([]string, 0, count)
	for i := range count {
		y := metrics.Offset.Y + float64(i)*pointsPerLine
		switch {
		case y >= 0 && y < metrics.ContentSize.Height:
			out = append(out, "  "+s.rows[int(math.Floor(y/pointsPerLine))])
		case hasHeader && y < 0 && y >= header.Y:
			out = append(out, m.controlLine(y+pointsPerLine >= header.Y+header.Height, m.headerLabel))
		case hasFooter && y >= footer.Y && y < footer.Y+footer.Height:
			out = append(out, m.controlLine(y < footer.Y+pointsPerLine, m.footerLabel))
		default:
			out = append(out, "")
		}
	}
	return out
}

// controlLine draws label on the line nearest the content and leaves the
// rest of the control blank.
func (m Model) controlLine(labelled bool, label func() string) string {
	if !labelled {
		return ""
	}
	return "  " + label()
}

func (m Model) headerLabel() string {
	h := m.session.header
	switch {
	case h.State() == refresh.StateTriggering:
		return m.spinner.View() + controlStyle.Render(" Refreshing…")
	case h.Hiding() && m.session.hideResult == refresh.ResultFailure:
		return failStyle.Render("✗ Refresh failed")
	case h.Hiding():
		return controlStyle.Render("✓ Updated")
	case m.session.percent >= 1:
		return controlStyle.Render("↑ Release to refresh")
	default:
		return controlStyle.Render("↓ Pull to refresh ") + m.pull.ViewAs(m.session.percent)
	}
}

func (m Model) footerLabel() string {
	s := m.session
	switch s.footer.State() {
	case refresh.StateTriggering:
		return m.spinner.View() + controlStyle.Render(" Loading…")
	case refresh.StateNoMoreData:
		return mutedStyle.Render("No more data")
	}
	switch s.mode {
	case refresh.ModeTap:
		return controlStyle.Render("Press t to load more")
	case refresh.ModeScroll:
		return controlStyle.Render("Drag up to load more")
	default:
		return controlStyle.Render("Drag up or press t to load more")
	}
}

func (m Model) status() string {
	s := m.session
	inset := s.view.ContentInset()
	text := fmt.Sprintf("offset %.0f  inset %.0f/%.0f  header %s  footer %s  pages %d  refreshes %d",
		s.view.Offset(), inset.Top, inset.Bottom, s.header.State(), s.footer.State(), s.pages, s.refreshes)
	if s.failNext {
		text += "  next refresh fails"
	}
	return mutedStyle.Render(text)
}
