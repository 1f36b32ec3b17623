// Package watcher provides file watching for configuration live reload.
//
// The watcher monitors a single configuration file and triggers a
// reload callback when it changes. It watches the file's parent
// directory rather than the file itself so that editors which save via
// atomic rename still produce events.
package watcher

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ErrWatcherClosed is returned when using a closed watcher.
var ErrWatcherClosed = errors.New("watcher is closed")

// Handler is called with the config file path after it changes.
type Handler func(path string)

// ErrorHandler is called with watch errors.
type ErrorHandler func(err error)

// Watcher monitors a configuration file for changes.
type Watcher struct {
	mu sync.Mutex

	fsw     *fsnotify.Watcher
	path    string
	handler Handler
	onError ErrorHandler

	debounce time.Duration
	timer    *time.Timer

	closed  bool
	closeCh chan struct{}
	wg      sync.WaitGroup
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets the quiet period after the last event before the
// handler fires. Editors often produce several events per save.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d >= 0 {
			w.debounce = d
		}
	}
}

// WithErrorHandler sets a callback for watch errors.
func WithErrorHandler(h ErrorHandler) Option {
	return func(w *Watcher) {
		w.onError = h
	}
}

// New creates a watcher for the given config file and starts watching.
// The parent directory must exist; the file itself may not exist yet.
func New(path string, handler Handler, opts ...Option) (*Watcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	w := &Watcher{
		fsw:      fsw,
		path:     absPath,
		handler:  handler,
		debounce: 100 * time.Millisecond,
		closeCh:  make(chan struct{}),
	}

	for _, opt := range opts {
		opt(w)
	}

	if err := fsw.Add(filepath.Dir(absPath)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(absPath), err)
	}

	w.wg.Add(1)
	go w.processLoop()

	return w, nil
}

// Path returns the watched config file path.
func (w *Watcher) Path() string {
	return w.path
}

// Close stops the watcher. It is safe to call Close multiple times.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	if w.timer != nil {
		w.timer.Stop()
	}
	close(w.closeCh)
	w.mu.Unlock()

	err := w.fsw.Close()
	w.wg.Wait()
	return err
}

// processLoop handles incoming fsnotify events.
func (w *Watcher) processLoop() {
	defer w.wg.Done()

	for {
		select {
		case <-w.closeCh:
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.scheduleReload()

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			if w.onError != nil {
				w.onError(err)
			}
		}
	}
}

// scheduleReload arms the debounce timer, replacing any pending one.
func (w *Watcher) scheduleReload() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		w.handler(w.path)
	})
}
