package repos

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/grovetools/patrol/errors"
	"github.com/moby/patternmatcher"
	"github.com/sirupsen/logrus"
)

// DiscoveryService scans a directory tree for git repository roots.
type DiscoveryService struct {
	logger  *logrus.Entry
	matcher *patternmatcher.PatternMatcher
}

// NewDiscoveryService creates a discovery service. ignore takes
// gitignore-style patterns matched against root-relative paths; matching
// directories are skipped entirely.
func NewDiscoveryService(logger *logrus.Entry, ignore []string) (*DiscoveryService, error) {
	var matcher *patternmatcher.PatternMatcher
	if len(ignore) > 0 {
		m, err := patternmatcher.New(ignore)
		if err != nil {
			return nil, errors.ConfigInvalid("bad ignore pattern").WithDetail("patterns", ignore)
		}
		matcher = m
	}
	return &DiscoveryService{logger: logger, matcher: matcher}, nil
}

// Discover walks the tree under root, bounded by maxDepth path components,
// and returns the absolute path of every directory containing a .git
// metadata folder. Traversal does not descend into a repository once found,
// so nested repositories below another repository's root are not reported.
// Unreadable subtrees are skipped; only an invalid root is fatal.
func (s *DiscoveryService) Discover(root string, maxDepth int) ([]string, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, errors.RootNotFound(root)
	}

	info, err := os.Stat(absRoot)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.RootNotFound(absRoot)
		}
		return nil, errors.RootUnreadable(absRoot, err)
	}
	if !info.IsDir() {
		return nil, errors.RootNotFound(absRoot).WithDetail("reason", "not a directory")
	}

	var found []string

	walkErr := filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Fail soft: an unreadable subtree is skipped, not fatal. The
			// root itself was already stat-ed above.
			s.logger.WithError(err).WithField("path", path).Debug("Skipping unreadable subtree")
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if d.Name() == ".git" {
			return fs.SkipDir
		}

		rel, relErr := filepath.Rel(absRoot, path)
		if relErr != nil {
			return nil
		}

		if rel != "." {
			if depth(rel) > maxDepth {
				return fs.SkipDir
			}
			if s.matcher != nil {
				if matched, _ := s.matcher.MatchesOrParentMatches(rel); matched {
					s.logger.WithField("path", rel).Debug("Ignoring directory")
					return fs.SkipDir
				}
			}
		}

		gitDir := filepath.Join(path, ".git")
		if gi, statErr := os.Stat(gitDir); statErr == nil && gi.IsDir() {
			found = append(found, path)
			// Do not descend into a repository's own tree.
			return fs.SkipDir
		}

		return nil
	})
	if walkErr != nil {
		return nil, errors.RootUnreadable(absRoot, walkErr)
	}

	s.logger.WithFields(logrus.Fields{"root": absRoot, "count": len(found)}).
		Debug("Repository discovery complete")
	return found, nil
}

// depth counts the path components of a root-relative path.
func depth(rel string) int {
	return strings.Count(rel, string(filepath.Separator)) + 1
}
