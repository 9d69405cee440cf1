// Package fsnotify implements ports.Watcher for a single file using
// github.com/fsnotify/fsnotify. The parent directory is watched rather than
// the file itself: editors and atomic writers replace files on save, which
// would otherwise drop the watch. Rapid event bursts are debounced.
package fsnotify

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceInterval absorbs the multiple events one save typically emits.
const debounceInterval = 200 * time.Millisecond

// Watcher implements ports.Watcher using fsnotify.
type Watcher struct {
	fw      *fsnotify.Watcher
	done    chan struct{}
	mu      sync.Mutex
	stopped bool
}

// NewWatcher creates a file system watcher.
func NewWatcher() (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("fsnotify: %w", err)
	}
	return &Watcher{fw: fw, done: make(chan struct{})}, nil
}

// WatchFile starts watching path and calls onChange after each write or
// replacement of the file, debounced. onChange runs on the watcher's
// goroutine.
func (w *Watcher) WatchFile(path string, onChange func()) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if err := w.fw.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	go func() {
		var timer *time.Timer
		defer func() {
			if timer != nil {
				timer.Stop()
			}
		}()
		for {
			select {
			case <-w.done:
				return
			case ev, ok := <-w.fw.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != abs {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
					continue
				}
				if timer != nil {
					timer.Stop()
				}
				timer = time.AfterFunc(debounceInterval, onChange)
			case _, ok := <-w.fw.Errors:
				if !ok {
					return
				}
			}
		}
	}()
	return nil
}

// Stop ends watching and releases resources. Idempotent.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopped {
		return
	}
	w.stopped = true
	close(w.done)
	w.fw.Close()
}
