package repos

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
)

// StreamBuffer is the capacity of the streaming result channel. Keeping it
// small relative to large trees bounds memory and applies natural
// backpressure on the probing fan-out.
const StreamBuffer = 100

// Collector fans out one probe per discovered repository and gathers the
// results, either as a sorted batch or as a stream.
type Collector struct {
	prober *Prober
	logger *logrus.Entry
}

// NewCollector creates a collector around the given prober.
func NewCollector(prober *Prober, logger *logrus.Entry) *Collector {
	return &Collector{prober: prober, logger: logger}
}

// Collect probes every path concurrently and returns the full, sorted record
// set. A failed probe is logged and dropped; it never aborts sibling probes.
func (c *Collector) Collect(ctx context.Context, paths []string, verbose bool) []*Repo {
	results := make(chan *Repo, len(paths))

	var wg sync.WaitGroup
	for _, path := range paths {
		wg.Add(1)
		go func(path string) {
			defer wg.Done()
			repo, err := c.prober.Probe(ctx, path, verbose)
			if err != nil {
				c.logger.WithError(err).WithField("path", path).Warn("Dropping repository after failed probe")
				return
			}
			results <- repo
		}(path)
	}
	wg.Wait()
	close(results)

	collected := make([]*Repo, 0, len(paths))
	for repo := range results {
		collected = append(collected, repo)
	}

	Sort(collected)
	return collected
}

// Stream probes every path concurrently and emits each record as it
// completes on a bounded channel. The channel is closed once all probes have
// finished; the caller is solely responsible for draining it.
func (c *Collector) Stream(ctx context.Context, paths []string, verbose bool) <-chan *Repo {
	out := make(chan *Repo, StreamBuffer)

	go func() {
		var wg sync.WaitGroup
		for _, path := range paths {
			wg.Add(1)
			go func(path string) {
				defer wg.Done()
				repo, err := c.prober.Probe(ctx, path, verbose)
				if err != nil {
					c.logger.WithError(err).WithField("path", path).Warn("Dropping repository after failed probe")
					return
				}
				select {
				case out <- repo:
				case <-ctx.Done():
				}
			}(path)
		}
		wg.Wait()
		close(out)
	}()

	return out
}
