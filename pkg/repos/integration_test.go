package repos_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grovetools/patrol/git"
	"github.com/grovetools/patrol/pkg/repos"
	"github.com/grovetools/patrol/testutil"
)

func discardLogger() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l.WithField("component", "test")
}

// TestScanPipeline drives discovery, probing and collection against real
// repositories on disk.
func TestScanPipeline(t *testing.T) {
	testutil.RequireGit(t)

	root := t.TempDir()

	// Repository A: two untracked files on main.
	repoA := filepath.Join(root, "alpha")
	require.NoError(t, os.MkdirAll(repoA, 0o755))
	testutil.InitGitRepo(t, repoA)
	testutil.WriteFile(t, repoA, "one.txt", "1")
	testutil.WriteFile(t, repoA, "two.txt", "2")

	// Repository B: clean, on branch dev.
	repoB := filepath.Join(root, "group", "beta")
	require.NoError(t, os.MkdirAll(repoB, 0o755))
	testutil.InitGitRepo(t, repoB)
	testutil.CreateBranch(t, repoB, "dev")

	// Repository C: one staged, one modified, one deleted.
	repoC := filepath.Join(root, "gamma")
	require.NoError(t, os.MkdirAll(repoC, 0o755))
	testutil.InitGitRepo(t, repoC)
	testutil.CreateCommit(t, repoC, "keep.txt", "v1")
	testutil.CreateCommit(t, repoC, "gone.txt", "x")
	testutil.StageFile(t, repoC, "staged.txt", "s")
	testutil.WriteFile(t, repoC, "keep.txt", "v2")
	testutil.DeleteTracked(t, repoC, "gone.txt")

	logger := discardLogger()
	discovery, err := repos.NewDiscoveryService(logger, nil)
	require.NoError(t, err)

	paths, err := discovery.Discover(root, 10)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{repoA, repoB, repoC}, paths)

	collector := repos.NewCollector(repos.NewProber(git.NewCLIClient()), logger)
	list := collector.Collect(context.Background(), paths, true)
	require.Len(t, list, 3)

	byName := map[string]*repos.Repo{}
	for _, r := range list {
		byName[r.Name] = r
	}

	a := byName["alpha"]
	require.NotNil(t, a)
	assert.Equal(t, "main", a.Branch)
	assert.Equal(t, 2, a.New.Count)
	assert.Equal(t, "?2 +0 ~0 -0", a.Summary())
	assert.ElementsMatch(t, []string{"one.txt", "two.txt"}, a.New.Files)

	b := byName["beta"]
	require.NotNil(t, b)
	assert.Equal(t, "dev", b.Branch)
	assert.False(t, b.HasChanges())

	c := byName["gamma"]
	require.NotNil(t, c)
	assert.Equal(t, 1, c.Added.Count)
	assert.Equal(t, 1, c.Modified.Count)
	assert.Equal(t, 1, c.Deleted.Count)

	// Dirty-first ordering: gamma (3) before alpha (2) before beta (clean).
	assert.Equal(t, []string{"gamma", "alpha", "beta"}, []string{list[0].Name, list[1].Name, list[2].Name})

	// Streaming the same paths yields the same set of records.
	var streamed []*repos.Repo
	for repo := range collector.Stream(context.Background(), paths, true) {
		streamed = append(streamed, repo)
	}
	repos.Sort(streamed)
	require.Len(t, streamed, 3)
	for i := range streamed {
		assert.Equal(t, list[i].Name, streamed[i].Name)
		assert.Equal(t, list[i].TotalChanges(), streamed[i].TotalChanges())
	}
}

func TestDetachedHeadProbe(t *testing.T) {
	testutil.RequireGit(t)

	dir := t.TempDir()
	testutil.InitGitRepo(t, dir)
	testutil.DetachHead(t, dir)

	prober := repos.NewProber(git.NewCLIClient())
	repo, err := prober.Probe(context.Background(), dir, false)
	require.NoError(t, err)

	short := testutil.GitOutput(t, dir, "rev-parse", "--short", "HEAD")
	assert.Equal(t, "("+short+")", repo.Branch)
}
