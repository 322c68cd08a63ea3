// Package dashboard is the live status view. It consumes repository records
// from a channel while the scan is still running, keeps the grid sorted, and
// lets the user scroll once the rows overflow the screen.
package dashboard

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/grovetools/patrol/pkg/repos"
	"github.com/grovetools/patrol/tui/theme"
)

const (
	// defaultColumns is the number of repository cells per row unless the
	// configuration overrides it.
	defaultColumns = 3

	// cellHeight is the number of terminal rows one repository cell
	// occupies, border included.
	cellHeight = 6

	// verboseCellHeight fits the worst case of a verbose cell: name,
	// branch, and one line per touched category, border included.
	verboseCellHeight = 8

	// chromeHeight accounts for the title block and the key hints line.
	chromeHeight = 5
)

// phase is the dashboard lifecycle. The model starts in phaseLoading and
// moves to phaseLoaded exactly once, when the record stream closes.
type phase int

const (
	phaseLoading phase = iota
	phaseLoaded
)

// Model holds the dashboard state. All mutation happens in Update; View is
// a pure function of this struct.
type Model struct {
	repos   []*repos.Repo
	pending []*repos.Repo
	stream  <-chan *repos.Repo
	updates <-chan *repos.Repo

	phase   phase
	verbose bool
	columns int
	offset  int
	width   int
	height  int
	frame   int

	keys  KeyMap
	theme *theme.Theme
}

// New creates a dashboard consuming records from stream. The updates channel
// is optional; when non-nil, records arriving on it replace earlier ones for
// the same path.
func New(stream, updates <-chan *repos.Repo, verbose bool) Model {
	return Model{
		stream:  stream,
		updates: updates,
		phase:   phaseLoading,
		verbose: verbose,
		columns: defaultColumns,
		keys:    defaultKeyMap,
		theme:   theme.DefaultTheme,
	}
}

// WithColumns overrides the grid width. Values below one keep the default.
func (m Model) WithColumns(n int) Model {
	if n > 0 {
		m.columns = n
	}
	return m
}

// Init starts the record pump and the render ticker.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{waitForRepo(m.stream), tickCmd()}
	if m.updates != nil {
		cmds = append(cmds, waitForUpdate(m.updates))
	}
	return tea.Batch(cmds...)
}

// Repos returns the current sorted records. Used by the fallback printer
// when the program exits while watch mode collected newer state.
func (m Model) Repos() []*repos.Repo {
	return m.repos
}

// totalRows is the number of grid rows needed for all records.
func (m Model) totalRows() int {
	return (len(m.repos) + m.columns - 1) / m.columns
}

// rowHeight is the terminal rows one grid row occupies. Verbose cells carry
// per-category lines, so they need a taller box.
func (m Model) rowHeight() int {
	if m.verbose {
		return verboseCellHeight
	}
	return cellHeight
}

// visibleRows is how many grid rows fit in the current terminal height.
func (m Model) visibleRows() int {
	rows := (m.height - chromeHeight) / m.rowHeight()
	if rows < 1 {
		rows = 1
	}
	return rows
}

// maxOffset is the largest valid scroll offset for the current geometry.
func (m Model) maxOffset() int {
	max := m.totalRows() - m.visibleRows()
	if max < 0 {
		max = 0
	}
	return max
}
