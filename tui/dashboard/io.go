package dashboard

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/grovetools/patrol/pkg/repos"
)

// renderInterval throttles redraws while records are streaming in.
const renderInterval = 100 * time.Millisecond

// repoMsg carries one newly probed repository from the scan stream.
type repoMsg struct {
	repo *repos.Repo
}

// streamDoneMsg is sent once, when the scan stream closes.
type streamDoneMsg struct{}

// repoUpdatedMsg carries a re-probed repository from watch mode.
type repoUpdatedMsg struct {
	repo *repos.Repo
}

// tickMsg drives the throttled render loop.
type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(renderInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// waitForRepo blocks on the scan stream and converts its items to messages.
// A closed channel yields streamDoneMsg.
func waitForRepo(stream <-chan *repos.Repo) tea.Cmd {
	return func() tea.Msg {
		repo, ok := <-stream
		if !ok {
			return streamDoneMsg{}
		}
		return repoMsg{repo: repo}
	}
}

// waitForUpdate blocks on the watch channel. When it closes, no further
// update messages are produced.
func waitForUpdate(updates <-chan *repos.Repo) tea.Cmd {
	return func() tea.Msg {
		repo, ok := <-updates
		if !ok {
			return nil
		}
		return repoUpdatedMsg{repo: repo}
	}
}
