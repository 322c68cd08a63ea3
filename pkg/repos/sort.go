package repos

import "sort"

// Sort total-orders records in place: repositories with changes come first,
// ordered by most changes then name; clean repositories follow, ordered by
// name. The same order is applied in batch mode and after every streaming
// arrival, so the visible order never depends on probe completion order.
func Sort(list []*Repo) {
	sort.SliceStable(list, func(i, j int) bool {
		a, b := list[i], list[j]
		switch {
		case a.HasChanges() && !b.HasChanges():
			return true
		case !a.HasChanges() && b.HasChanges():
			return false
		case a.HasChanges():
			if a.TotalChanges() != b.TotalChanges() {
				return a.TotalChanges() > b.TotalChanges()
			}
			return a.Name < b.Name
		default:
			return a.Name < b.Name
		}
	})
}
