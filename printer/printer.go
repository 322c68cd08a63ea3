// Package printer renders collected repository records as plain text. It is
// the fallback surface when stdout is not a terminal or the dashboard cannot
// start, so its output is deterministic and free of escape sequences.
package printer

import (
	"fmt"
	"io"
	"strings"

	"github.com/grovetools/patrol/pkg/repos"
)

// Printer writes repository reports to a single destination.
type Printer struct {
	out io.Writer
}

// New creates a printer writing to out.
func New(out io.Writer) *Printer {
	return &Printer{out: out}
}

// Print renders every repository in the given order, one block per
// repository separated by a blank line. When verbose is true each category
// with files lists them, and empty categories are summarized on one line.
func (p *Printer) Print(list []*repos.Repo, verbose bool) error {
	if len(list) == 0 {
		_, err := fmt.Fprintln(p.out, "Nothing to report.")
		return err
	}

	var b strings.Builder
	for _, repo := range list {
		fmt.Fprintf(&b, "| %s: [%s]\n", repo.Name, repo.Branch)
		fmt.Fprintf(&b, "| ?%d | +%d | ~%d | -%d |\n",
			repo.New.Count, repo.Added.Count, repo.Modified.Count, repo.Deleted.Count)
		if verbose {
			writeFileLists(&b, repo)
		}
		b.WriteString("\n")
	}

	_, err := io.WriteString(p.out, b.String())
	return err
}

func writeFileLists(b *strings.Builder, repo *repos.Repo) {
	var empty []string
	for _, c := range repo.Changes() {
		if len(c.Files) == 0 {
			empty = append(empty, c.Label)
			continue
		}
		fmt.Fprintf(b, "| %s files:\n", c.Label)
		for _, file := range c.Files {
			fmt.Fprintf(b, "| _ %s\n", file)
		}
	}
	if len(empty) > 0 {
		fmt.Fprintf(b, "| No %s files.\n", joinLabels(empty))
	}
}

// joinLabels renders "A", "A or B", "A, B or C".
func joinLabels(labels []string) string {
	switch len(labels) {
	case 0:
		return ""
	case 1:
		return labels[0]
	}
	return strings.Join(labels[:len(labels)-1], ", ") + " or " + labels[len(labels)-1]
}
