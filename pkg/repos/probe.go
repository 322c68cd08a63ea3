package repos

import (
	"context"
	"path/filepath"

	"github.com/grovetools/patrol/errors"
	"github.com/grovetools/patrol/git"
)

// Prober turns one repository path into a status record. It holds no mutable
// state and is safe for concurrent use across repositories.
type Prober struct {
	client git.Client
}

// NewProber creates a prober backed by the given git client.
func NewProber(client git.Client) *Prober {
	return &Prober{client: client}
}

// Probe queries the repository's branch and working-tree changes. When
// verbose is false only counts are retained. A failure of either underlying
// query is reported as a probe error scoped to this repository; callers
// continue probing siblings.
func (p *Prober) Probe(ctx context.Context, path string, verbose bool) (*Repo, error) {
	branch, err := p.client.CurrentBranch(ctx, path)
	if err != nil {
		return nil, errors.ProbeFailed(path, err)
	}

	entries, err := p.client.ShortStatus(ctx, path)
	if err != nil {
		return nil, errors.ProbeFailed(path, err)
	}

	repo := &Repo{
		Name:   filepath.Base(path),
		Path:   path,
		Branch: branch,
	}

	for _, entry := range entries {
		var change *Change
		switch entry.Category() {
		case git.CategoryNew:
			change = &repo.New
		case git.CategoryAdded:
			change = &repo.Added
		case git.CategoryModified:
			change = &repo.Modified
		case git.CategoryDeleted:
			change = &repo.Deleted
		default:
			// Unrecognized codes contribute to no category.
			continue
		}
		change.Count++
		if verbose {
			change.Files = append(change.Files, entry.Path)
		}
	}

	return repo, nil
}
