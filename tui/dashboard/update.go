package dashboard

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/grovetools/patrol/pkg/repos"
)

// Update is the single state transition function. Incoming records are
// buffered and folded into the sorted grid on the next tick, so a burst of
// probe results costs one redraw instead of one per record.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.clampOffset()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Down):
			if m.offset < m.maxOffset() {
				m.offset++
			}
			return m, nil
		case key.Matches(msg, m.keys.Up):
			if m.offset > 0 {
				m.offset--
			}
			return m, nil
		}
		return m, nil

	case repoMsg:
		m.pending = append(m.pending, msg.repo)
		return m, waitForRepo(m.stream)

	case streamDoneMsg:
		m.flushPending()
		m.phase = phaseLoaded
		return m, nil

	case repoUpdatedMsg:
		m.replace(msg.repo)
		return m, waitForUpdate(m.updates)

	case tickMsg:
		m.frame++
		m.flushPending()
		if m.phase == phaseLoading || m.updates != nil {
			return m, tickCmd()
		}
		return m, nil
	}

	return m, nil
}

// flushPending folds buffered records into the grid, keeping it sorted.
func (m *Model) flushPending() {
	if len(m.pending) == 0 {
		return
	}
	m.repos = append(m.repos, m.pending...)
	m.pending = nil
	repos.Sort(m.repos)
	m.clampOffset()
}

// replace swaps in a re-probed record by path, or appends it when the path
// is new, then restores sort order.
func (m *Model) replace(repo *repos.Repo) {
	for i, existing := range m.repos {
		if existing.Path == repo.Path {
			m.repos[i] = repo
			repos.Sort(m.repos)
			m.clampOffset()
			return
		}
	}
	m.repos = append(m.repos, repo)
	repos.Sort(m.repos)
	m.clampOffset()
}

func (m *Model) clampOffset() {
	if max := m.maxOffset(); m.offset > max {
		m.offset = max
	}
	if m.offset < 0 {
		m.offset = 0
	}
}
