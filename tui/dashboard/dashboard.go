package dashboard

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/grovetools/patrol/errors"
	"github.com/grovetools/patrol/pkg/repos"
)

// Run drives the dashboard until the user quits. It takes over the
// alternate screen, so callers should fall back to plain printing when this
// returns a dashboard error.
func Run(stream, updates <-chan *repos.Repo, verbose bool, columns int) error {
	p := tea.NewProgram(New(stream, updates, verbose).WithColumns(columns), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return errors.DashboardInit(err)
	}
	return nil
}
