package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/grovetools/patrol/pkg/repos"
)

// View renders the title bar, the repository grid, and the key hints.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.theme.Title.Render(m.titleLine()))
	b.WriteString("\n\n")

	if len(m.repos) == 0 && m.phase == phaseLoaded {
		b.WriteString(m.theme.Warning.Render("No repositories found"))
		b.WriteString("\n")
	} else {
		b.WriteString(m.grid())
	}

	b.WriteString("\n")
	b.WriteString(m.theme.Muted.Render(m.hintLine()))
	return b.String()
}

func (m Model) titleLine() string {
	total := len(m.repos) + len(m.pending)
	switch {
	case m.phase == phaseLoading:
		return fmt.Sprintf("%s Patrol - Scanning... (%d found)", spinnerFrame(m.frame), total)
	case m.totalRows() > m.visibleRows():
		last := m.offset + m.visibleRows()
		if rows := m.totalRows(); last > rows {
			last = rows
		}
		return fmt.Sprintf("Patrol (rows %d-%d of %d)", m.offset+1, last, m.totalRows())
	default:
		return fmt.Sprintf("Patrol (%d repositories)", total)
	}
}

// spinnerFrame returns the scan animation glyph for the given tick count.
func spinnerFrame(frame int) string {
	frames := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
	return frames[frame%len(frames)]
}

func (m Model) hintLine() string {
	if m.totalRows() > m.visibleRows() {
		return "↑/↓ scroll · q quit"
	}
	return "q quit"
}

// grid lays the visible window of records out in fixed-width columns,
// row-major. Scrolling moves in whole rows.
func (m Model) grid() string {
	start := m.offset * m.columns
	if start > len(m.repos) {
		start = len(m.repos)
	}
	end := start + m.visibleRows()*m.columns
	if end > len(m.repos) {
		end = len(m.repos)
	}
	window := m.repos[start:end]

	cellWidth := m.width / m.columns
	if cellWidth < 20 {
		cellWidth = 20
	}

	var rows []string
	for i := 0; i < len(window); i += m.columns {
		j := i + m.columns
		if j > len(window) {
			j = len(window)
		}
		var cells []string
		for _, repo := range window[i:j] {
			cells = append(cells, m.cell(repo, cellWidth))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(rows, "\n")
}

// cell renders one repository box: name, branch, then either the change
// summary or a clean marker. With verbose on, each touched category gets
// its own line so counts are easier to scan.
func (m Model) cell(repo *repos.Repo, width int) string {
	var lines []string
	lines = append(lines, m.theme.Bold.Render(repo.Name))
	lines = append(lines, m.theme.Branch.Render("["+repo.Branch+"]"))

	if !repo.HasChanges() {
		lines = append(lines, m.theme.Clean.Render("Nothing new here!"))
	} else if m.verbose {
		for _, c := range repo.Changes() {
			if c.Count == 0 {
				continue
			}
			style := m.categoryStyle(c.Label)
			lines = append(lines, style.Render(fmt.Sprintf("%s: %d", c.Label, c.Count)))
		}
	} else {
		summary := strings.Join([]string{
			m.theme.New.Render(fmt.Sprintf("?%d", repo.New.Count)),
			m.theme.Added.Render(fmt.Sprintf("+%d", repo.Added.Count)),
			m.theme.Modified.Render(fmt.Sprintf("~%d", repo.Modified.Count)),
			m.theme.Deleted.Render(fmt.Sprintf("-%d", repo.Deleted.Count)),
		}, " ")
		lines = append(lines, summary)
	}

	return m.theme.Box.
		Width(width - 2).
		Height(m.rowHeight() - 2).
		MaxHeight(m.rowHeight()).
		Render(strings.Join(lines, "\n"))
}

func (m Model) categoryStyle(label string) lipgloss.Style {
	switch label {
	case "New":
		return m.theme.New
	case "Added":
		return m.theme.Added
	case "Modified":
		return m.theme.Modified
	case "Deleted":
		return m.theme.Deleted
	}
	return m.theme.Muted
}
