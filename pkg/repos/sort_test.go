package repos

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func mkRepo(name string, newCount, added, modified, deleted int) *Repo {
	return &Repo{
		Name:     name,
		Path:     "/tmp/" + name,
		Branch:   "main",
		New:      Change{Count: newCount},
		Added:    Change{Count: added},
		Modified: Change{Count: modified},
		Deleted:  Change{Count: deleted},
	}
}

func names(list []*Repo) []string {
	out := make([]string, len(list))
	for i, r := range list {
		out[i] = r.Name
	}
	return out
}

func TestSort(t *testing.T) {
	t.Run("changed before clean", func(t *testing.T) {
		list := []*Repo{
			mkRepo("clean", 0, 0, 0, 0),
			mkRepo("dirty", 1, 0, 0, 0),
		}
		Sort(list)
		assert.Equal(t, []string{"dirty", "clean"}, names(list))
	})

	t.Run("most changes first among dirty", func(t *testing.T) {
		list := []*Repo{
			mkRepo("small", 1, 0, 0, 0),
			mkRepo("big", 0, 2, 3, 0),
		}
		Sort(list)
		assert.Equal(t, []string{"big", "small"}, names(list))
	})

	t.Run("ties broken by name", func(t *testing.T) {
		list := []*Repo{
			mkRepo("zeta", 2, 0, 0, 0),
			mkRepo("alpha", 0, 0, 2, 0),
		}
		Sort(list)
		assert.Equal(t, []string{"alpha", "zeta"}, names(list))
	})

	t.Run("clean sorted alphabetically", func(t *testing.T) {
		list := []*Repo{
			mkRepo("c", 0, 0, 0, 0),
			mkRepo("a", 0, 0, 0, 0),
			mkRepo("b", 0, 0, 0, 0),
		}
		Sort(list)
		assert.Equal(t, []string{"a", "b", "c"}, names(list))
	})

	t.Run("order independent of arrival order", func(t *testing.T) {
		base := []*Repo{
			mkRepo("busy", 3, 1, 0, 0),
			mkRepo("idle", 0, 0, 0, 0),
			mkRepo("light", 1, 0, 0, 0),
			mkRepo("other-idle", 0, 0, 0, 0),
		}
		Sort(base)
		want := names(base)

		rng := rand.New(rand.NewSource(42))
		for i := 0; i < 10; i++ {
			shuffled := make([]*Repo, len(base))
			copy(shuffled, base)
			rng.Shuffle(len(shuffled), func(a, b int) {
				shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
			})
			Sort(shuffled)
			assert.Equal(t, want, names(shuffled))
		}
	})
}

func TestRepoDerived(t *testing.T) {
	r := mkRepo("x", 2, 0, 1, 0)
	assert.True(t, r.HasChanges())
	assert.Equal(t, 3, r.TotalChanges())
	assert.Equal(t, "?2 +0 ~1 -0", r.Summary())

	clean := mkRepo("y", 0, 0, 0, 0)
	assert.False(t, clean.HasChanges())
	assert.Equal(t, 0, clean.TotalChanges())

	// TotalChanges is zero exactly when HasChanges is false.
	for _, r := range []*Repo{r, clean} {
		assert.Equal(t, r.TotalChanges() == 0, !r.HasChanges())
	}
}
