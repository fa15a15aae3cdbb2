// Package tui hosts the interactive refresh demo: a list backed by a
// scroll.View with a pull to refresh header and a load more footer,
// rendered with lipgloss and driven from the keyboard.
package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/go-drift/refresh/pkg/config"
	"github.com/go-drift/refresh/pkg/platform"
)

// Run starts the demo and blocks until the user quits.
func Run(cfg *config.Config) error {
	model := NewModel(cfg)
	defer model.session.close()

	// Engine callbacks are posted to the session queue and drained at the
	// end of every Update, on the program goroutine.
	previous := platform.RegisterDispatch(model.session.queue.Dispatch)
	defer platform.RegisterDispatch(previous)

	p := tea.NewProgram(model, tea.WithAltScreen())

	// Silence logs while the alternate screen is active.
	prevOut := logrus.StandardLogger().Out
	logrus.SetOutput(io.Discard)
	defer logrus.SetOutput(prevOut)

	_, err := p.Run()
	return err
}
