package git

import (
	"strings"
)

// Category classifies a status line into the change kind patrol reports.
type Category int

const (
	CategoryNone Category = iota
	CategoryNew
	CategoryAdded
	CategoryModified
	CategoryDeleted
)

// String returns the display label for a category.
func (c Category) String() string {
	switch c {
	case CategoryNew:
		return "New"
	case CategoryAdded:
		return "Added"
	case CategoryModified:
		return "Modified"
	case CategoryDeleted:
		return "Deleted"
	default:
		return "None"
	}
}

// StatusEntry is one parsed line of `git status --short`: the two-character
// XY code and the affected path.
type StatusEntry struct {
	Code string
	Path string
}

// Category maps the two-character code to a change category. Precedence,
// first match wins: untracked, then A, M, D in either column. Codes outside
// this table (renames, copies, unmerged) contribute to no category.
func (e StatusEntry) Category() Category {
	if len(e.Code) < 2 {
		return CategoryNone
	}
	if e.Code == "??" {
		return CategoryNew
	}
	for _, probe := range []struct {
		letter byte
		cat    Category
	}{
		{'A', CategoryAdded},
		{'M', CategoryModified},
		{'D', CategoryDeleted},
	} {
		if e.Code[0] == probe.letter || e.Code[1] == probe.letter {
			return probe.cat
		}
	}
	return CategoryNone
}

// ParseShortStatus parses the output of `git status --short` into entries.
// Each line is `XY PATH` with the path at a fixed offset of 3. Rename lines
// (`R  old -> new`) report the new path. Lines too short to carry a code and
// a path are skipped.
func ParseShortStatus(output string) []StatusEntry {
	var entries []StatusEntry
	for _, line := range strings.Split(output, "\n") {
		if len(line) < 4 {
			continue
		}
		code := line[:2]
		path := line[3:]
		if idx := strings.Index(path, " -> "); idx >= 0 {
			path = path[idx+4:]
		}
		entries = append(entries, StatusEntry{Code: code, Path: path})
	}
	return entries
}
