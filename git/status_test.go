package git

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusEntryCategory(t *testing.T) {
	tests := []struct {
		code string
		want Category
	}{
		{"??", CategoryNew},
		{"A ", CategoryAdded},
		{" A", CategoryAdded},
		{"AM", CategoryAdded}, // A takes precedence over M
		{"M ", CategoryModified},
		{" M", CategoryModified},
		{"MM", CategoryModified},
		{"MD", CategoryModified}, // M takes precedence over D
		{"D ", CategoryDeleted},
		{" D", CategoryDeleted},
		{"R ", CategoryNone},
		{"C ", CategoryNone},
		{"UU", CategoryNone},
		{"!!", CategoryNone},
		{"", CategoryNone},
	}

	for _, tt := range tests {
		t.Run("code "+tt.code, func(t *testing.T) {
			entry := StatusEntry{Code: tt.code, Path: "file.txt"}
			assert.Equal(t, tt.want, entry.Category())
		})
	}
}

func TestParseShortStatus(t *testing.T) {
	t.Run("mixed output", func(t *testing.T) {
		out := "?? untracked.txt\n M modified.go\nA  staged.go\nD  gone.txt\n"
		entries := ParseShortStatus(out)
		assert.Len(t, entries, 4)
		assert.Equal(t, StatusEntry{Code: "??", Path: "untracked.txt"}, entries[0])
		assert.Equal(t, StatusEntry{Code: " M", Path: "modified.go"}, entries[1])
		assert.Equal(t, StatusEntry{Code: "A ", Path: "staged.go"}, entries[2])
		assert.Equal(t, StatusEntry{Code: "D ", Path: "gone.txt"}, entries[3])
	})

	t.Run("empty output", func(t *testing.T) {
		assert.Empty(t, ParseShortStatus(""))
		assert.Empty(t, ParseShortStatus("\n"))
	})

	t.Run("rename reports new path", func(t *testing.T) {
		entries := ParseShortStatus("R  old.go -> new.go\n")
		assert.Len(t, entries, 1)
		assert.Equal(t, "new.go", entries[0].Path)
		assert.Equal(t, CategoryNone, entries[0].Category())
	})

	t.Run("paths with spaces survive", func(t *testing.T) {
		entries := ParseShortStatus("?? my notes.txt\n")
		assert.Len(t, entries, 1)
		assert.Equal(t, "my notes.txt", entries[0].Path)
	})

	t.Run("category counts from parsed lines", func(t *testing.T) {
		out := "?? a\n?? b\n M c\n"
		counts := map[Category]int{}
		for _, e := range ParseShortStatus(out) {
			counts[e.Category()]++
		}
		assert.Equal(t, 2, counts[CategoryNew])
		assert.Equal(t, 1, counts[CategoryModified])
		assert.Equal(t, 0, counts[CategoryAdded])
	})
}
