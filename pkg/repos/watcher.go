package repos

import (
	"context"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

// debounceWindow coalesces bursts of filesystem events (editors commonly
// write several files in quick succession) into a single re-probe.
const debounceWindow = 500 * time.Millisecond

// Watcher re-probes repositories when their trees change on disk, feeding
// refreshed records to the dashboard in watch mode. State lives only for the
// duration of the run.
type Watcher struct {
	prober  *Prober
	logger  *logrus.Entry
	roots   []string // sorted longest-first for prefix matching
	fs      *fsnotify.Watcher
	timers  map[string]*time.Timer
	timerMu sync.Mutex
	pending chan string
}

// NewWatcher creates a watcher over the given repository roots. Each root is
// watched non-recursively: top-level churn (including .git updates after a
// commit) is enough of a signal to re-probe.
func NewWatcher(prober *Prober, logger *logrus.Entry, roots []string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	sorted := make([]string, len(roots))
	copy(sorted, roots)
	sort.Slice(sorted, func(i, j int) bool { return len(sorted[i]) > len(sorted[j]) })

	w := &Watcher{
		prober:  prober,
		logger:  logger,
		roots:   sorted,
		fs:      fw,
		timers:  make(map[string]*time.Timer),
		pending: make(chan string, StreamBuffer),
	}

	for _, root := range roots {
		if err := fw.Add(root); err != nil {
			// A vanished repository is not fatal to watch mode.
			logger.WithError(err).WithField("path", root).Warn("Cannot watch repository")
		}
	}

	return w, nil
}

// Close releases the underlying filesystem watcher. Safe to call whether or
// not Run was started.
func (w *Watcher) Close() error {
	return w.fs.Close()
}

// Run emits a refreshed record whenever a watched repository changes. The
// returned channel is closed when ctx is cancelled.
func (w *Watcher) Run(ctx context.Context, verbose bool) <-chan *Repo {
	out := make(chan *Repo, StreamBuffer)

	go func() {
		defer close(out)
		defer w.fs.Close()

		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-w.fs.Events:
				if !ok {
					return
				}
				if root := w.rootFor(event.Name); root != "" {
					w.schedule(root)
				}

			case err, ok := <-w.fs.Errors:
				if !ok {
					return
				}
				w.logger.WithError(err).Debug("Filesystem watch error")

			case root := <-w.pending:
				repo, err := w.prober.Probe(ctx, root, verbose)
				if err != nil {
					w.logger.WithError(err).WithField("path", root).Warn("Re-probe failed")
					continue
				}
				select {
				case out <- repo:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out
}

// schedule arms (or re-arms) the debounce timer for a repository root.
func (w *Watcher) schedule(root string) {
	w.timerMu.Lock()
	defer w.timerMu.Unlock()

	if timer, ok := w.timers[root]; ok {
		timer.Reset(debounceWindow)
		return
	}
	w.timers[root] = time.AfterFunc(debounceWindow, func() {
		w.timerMu.Lock()
		delete(w.timers, root)
		w.timerMu.Unlock()

		select {
		case w.pending <- root:
		default:
			// A full queue means a re-probe is already pending; dropping the
			// signal loses nothing.
		}
	})
}

// rootFor maps an event path to the repository root that contains it.
func (w *Watcher) rootFor(name string) string {
	for _, root := range w.roots {
		if name == root || strings.HasPrefix(name, root+string(filepath.Separator)) {
			return root
		}
	}
	return ""
}
