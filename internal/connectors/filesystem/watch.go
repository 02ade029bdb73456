package filesystem

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/csvnorm/internal/logger"
)

// DefaultQuietPeriod is how long the watcher waits after the last archive
// event before reporting, so a file still being copied is not picked up.
const DefaultQuietPeriod = 2 * time.Second

// WatchArchives watches the root for archives that are created or rewritten.
// Once no archive event has arrived for quiet, the sorted paths seen since
// the last report are sent as one batch. The channel is closed when ctx is
// done.
func (w *Workspace) WatchArchives(ctx context.Context, quiet time.Duration) (<-chan []string, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := watcher.Add(w.root); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("watch %s: %w", w.root, err)
	}

	out := make(chan []string)
	go func() {
		defer close(out)
		defer watcher.Close()

		pending := make(map[string]struct{})
		timer := time.NewTimer(quiet)
		timer.Stop()

		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				path, ok := w.handleFsEvent(event)
				if !ok {
					continue
				}
				logger.Debug("archive event %s: %s", event.Op, path)
				pending[path] = struct{}{}
				timer.Reset(quiet)

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("watch %s: %v", w.root, err)

			case <-timer.C:
				if len(pending) == 0 {
					continue
				}
				batch := make([]string, 0, len(pending))
				for path := range pending {
					batch = append(batch, path)
				}
				sort.Strings(batch)
				pending = make(map[string]struct{})

				select {
				case out <- batch:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}

// handleFsEvent returns the archive path an event concerns, if any.
// Only creates and writes of visible regular files matching the archive
// pattern count.
func (w *Workspace) handleFsEvent(event fsnotify.Event) (string, bool) {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
		return "", false
	}

	rel, err := filepath.Rel(w.root, event.Name)
	if err != nil || isHidden(rel) || !w.IsArchive(rel) {
		return "", false
	}
	if !regularFile(event.Name) {
		return "", false
	}
	return event.Name, true
}
