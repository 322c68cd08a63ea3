package repos

import "fmt"

// Change holds one category of working-tree change for a repository: how many
// files it affects and, when verbose probing is enabled, which ones.
type Change struct {
	Count int      `json:"count"`
	Files []string `json:"files,omitempty"`
}

// Repo is the status record for one discovered repository. Records are
// created once by the prober and never mutated afterwards; consumers that
// need to reorder them work on slices of pointers.
type Repo struct {
	// Name is the last path segment, used for display.
	Name string `json:"name"`

	// Path is the absolute repository root and serves as the unique key.
	Path string `json:"path"`

	// Branch is the current branch name, or a short-hash sentinel like
	// "(a1b2c3d)" when HEAD is detached.
	Branch string `json:"branch"`

	New      Change `json:"new"`
	Added    Change `json:"added"`
	Modified Change `json:"modified"`
	Deleted  Change `json:"deleted"`
}

// HasChanges reports whether any category holds at least one file.
func (r *Repo) HasChanges() bool {
	return r.New.Count > 0 || r.Added.Count > 0 || r.Modified.Count > 0 || r.Deleted.Count > 0
}

// TotalChanges is the sum of all category counts.
func (r *Repo) TotalChanges() int {
	return r.New.Count + r.Added.Count + r.Modified.Count + r.Deleted.Count
}

// Summary renders the compact one-line change summary, e.g. "?2 +0 ~1 -0".
func (r *Repo) Summary() string {
	return fmt.Sprintf("?%d +%d ~%d -%d", r.New.Count, r.Added.Count, r.Modified.Count, r.Deleted.Count)
}

// LabeledChange pairs a category label with its change set, in the fixed
// rendering order used by the dashboard and the printer.
type LabeledChange struct {
	Label string
	Change
}

// Changes returns the four categories in rendering order.
func (r *Repo) Changes() []LabeledChange {
	return []LabeledChange{
		{"New", r.New},
		{"Added", r.Added},
		{"Modified", r.Modified},
		{"Deleted", r.Deleted},
	}
}
