package issues

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"issuepick/internal/eventbus"
)

// DefaultDebounce collapses the burst of events editors emit on save
const DefaultDebounce = 300 * time.Millisecond

// Watcher reloads an issue file when it changes and publishes the new list
type Watcher struct {
	path     string
	bus      eventbus.EventBus
	Debounce time.Duration
}

// NewWatcher creates a watcher for the given issue file
func NewWatcher(path string, bus eventbus.EventBus) *Watcher {
	return &Watcher{
		path:     path,
		bus:      bus,
		Debounce: DefaultDebounce,
	}
}

// Run watches until ctx is cancelled. The parent directory is watched so
// that editors replacing the file by rename are still seen.
func (w *Watcher) Run(ctx context.Context) error {
	absPath, err := filepath.Abs(w.path)
	if err != nil {
		return fmt.Errorf("failed to resolve issues file: %w", err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = fw.Close() }()

	if err := fw.Add(filepath.Dir(absPath)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(absPath), err)
	}
	log.Printf("Watching %s for changes", absPath)

	var (
		mu    sync.Mutex
		timer *time.Timer
	)
	defer func() {
		mu.Lock()
		if timer != nil {
			timer.Stop()
		}
		mu.Unlock()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != absPath {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			mu.Lock()
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.Debounce, func() {
				if ctx.Err() != nil {
					return
				}
				w.reload(absPath)
			})
			mu.Unlock()

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			log.Printf("Watcher error: %v", err)
		}
	}
}

func (w *Watcher) reload(path string) {
	list, err := Load(path)
	if err != nil {
		log.Printf("Reload of %s failed, keeping current list: %v", path, err)
		w.bus.Publish(eventbus.ErrorEvent{Message: "reload failed", Err: err})
		return
	}
	log.Printf("Reloaded %d issues from %s", len(list), path)
	w.bus.Publish(eventbus.IssuesLoadedEvent{Source: path, Issues: list})
}
