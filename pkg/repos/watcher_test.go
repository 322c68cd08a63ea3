package repos_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grovetools/patrol/git"
	"github.com/grovetools/patrol/pkg/repos"
	"github.com/grovetools/patrol/testutil"
)

func TestWatcher(t *testing.T) {
	testutil.RequireGit(t)

	root := t.TempDir()
	repoDir := filepath.Join(root, "observed")
	require.NoError(t, os.MkdirAll(repoDir, 0o755))
	testutil.InitGitRepo(t, repoDir)

	prober := repos.NewProber(git.NewCLIClient())
	watcher, err := repos.NewWatcher(prober, discardLogger(), []string{repoDir})
	require.NoError(t, err)
	defer watcher.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	updates := watcher.Run(ctx, false)

	// Touching the working tree must produce a refreshed record after the
	// debounce window.
	testutil.WriteFile(t, repoDir, "untracked.txt", "x")

	select {
	case repo := <-updates:
		require.NotNil(t, repo)
		assert.Equal(t, "observed", repo.Name)
		assert.Equal(t, 1, repo.New.Count)
	case <-time.After(5 * time.Second):
		t.Fatal("no update received for a changed repository")
	}

	// Cancellation closes the update channel.
	cancel()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-updates:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("update channel not closed after cancellation")
		}
	}
}
