// Package watch emits filesystem change events for a directory tree,
// feeding continuous ingestion.
package watch

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/cerebra-labs/cerebra-cli/internal/core/domain"
	"github.com/cerebra-labs/cerebra-cli/internal/logger"
)

// ChangeType describes what happened to a watched file.
type ChangeType int

const (
	// ChangeCreated means a new supported file appeared.
	ChangeCreated ChangeType = iota
	// ChangeUpdated means an existing supported file was written.
	ChangeUpdated
	// ChangeRemoved means a supported file was removed or renamed away.
	ChangeRemoved
)

// Change is a single filesystem event for a supported file.
type Change struct {
	Path string
	Type ChangeType
}

// Watcher observes a directory tree recursively and reports changes to
// files with supported extensions. Events for other files and for
// directories are handled internally (new directories are added to the
// watch set) but never emitted.
type Watcher struct {
	root string

	mu      sync.Mutex
	watcher *fsnotify.Watcher
	closed  bool
}

// New creates a watcher rooted at the given directory.
func New(root string) *Watcher {
	return &Watcher{root: root}
}

// Watch begins watching and returns the change channel. The channel
// closes when ctx is cancelled or the watcher is closed.
func (w *Watcher) Watch(ctx context.Context) (<-chan Change, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil, fmt.Errorf("watcher is closed")
	}

	info, err := os.Stat(w.root)
	if err != nil {
		return nil, fmt.Errorf("root path error: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("root path error: %s is not a directory", w.root)
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}

	// Watch the root and every existing subdirectory.
	walkErr := filepath.WalkDir(w.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return fsWatcher.Add(path)
		}
		return nil
	})
	if walkErr != nil {
		fsWatcher.Close()
		return nil, fmt.Errorf("watching tree: %w", walkErr)
	}

	w.watcher = fsWatcher

	changes := make(chan Change)
	go w.run(ctx, fsWatcher, changes)
	return changes, nil
}

// run pumps fsnotify events into the change channel until ctx ends.
func (w *Watcher) run(ctx context.Context, fsWatcher *fsnotify.Watcher, changes chan<- Change) {
	defer close(changes)

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-fsWatcher.Events:
			if !ok {
				return
			}
			change, emit := w.translate(fsWatcher, event)
			if !emit {
				continue
			}
			select {
			case changes <- change:
			case <-ctx.Done():
				return
			}

		case err, ok := <-fsWatcher.Errors:
			if !ok {
				return
			}
			logger.Warn("watch error: %v", err)
		}
	}
}

// translate maps an fsnotify event to a Change, registering newly
// created directories as a side effect.
func (w *Watcher) translate(fsWatcher *fsnotify.Watcher, event fsnotify.Event) (Change, bool) {
	if event.Op.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := fsWatcher.Add(event.Name); err != nil {
				logger.Warn("watching new directory %s: %v", event.Name, err)
			}
			return Change{}, false
		}
	}

	if _, err := domain.FileTypeForPath(event.Name); err != nil {
		return Change{}, false
	}

	switch {
	case event.Op.Has(fsnotify.Create):
		return Change{Path: event.Name, Type: ChangeCreated}, true
	case event.Op.Has(fsnotify.Write):
		return Change{Path: event.Name, Type: ChangeUpdated}, true
	case event.Op.Has(fsnotify.Remove), event.Op.Has(fsnotify.Rename):
		return Change{Path: event.Name, Type: ChangeRemoved}, true
	}
	return Change{}, false
}

// Close stops the watcher. It is idempotent and safe to call before Watch.
func (w *Watcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil
	}
	w.closed = true

	if w.watcher != nil {
		return w.watcher.Close()
	}
	return nil
}
