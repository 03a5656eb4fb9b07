// Package watcher monitors a topology file for changes and triggers
// re-resolution with debouncing.
package watcher

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"topoctl/pkg/logging"
)

// DefaultDebounceInterval is the time to wait before triggering a reload
// after the last file change is detected. Editors often write a file several
// times in quick succession (truncate, write, rename).
const DefaultDebounceInterval = 500 * time.Millisecond

// DefaultPollInterval is the fallback polling interval when fsnotify is not
// available.
const DefaultPollInterval = 2 * time.Second

// Config holds configuration for the topology file watcher.
type Config struct {
	// Path is the topology file to watch.
	Path string

	// Debounce overrides DefaultDebounceInterval when positive.
	Debounce time.Duration

	// PollInterval overrides DefaultPollInterval when positive.
	PollInterval time.Duration

	// OnChange is called, debounced, when the file changes.
	OnChange func()
}

// Watcher monitors a single topology file. It uses fsnotify where available
// and falls back to modification-time polling. The parent directory is
// watched rather than the file itself so rename-based saves are seen.
type Watcher struct {
	mu sync.Mutex

	config Config

	fsWatcher *fsnotify.Watcher
	stopCh    chan struct{}
	running   bool

	lastModTime time.Time

	debounceTimer *time.Timer
	debounceMu    sync.Mutex
}

// New creates a watcher for the given file.
func New(config Config) *Watcher {
	if config.Debounce <= 0 {
		config.Debounce = DefaultDebounceInterval
	}
	if config.PollInterval <= 0 {
		config.PollInterval = DefaultPollInterval
	}
	return &Watcher{config: config}
}

// Start begins watching. It returns immediately; change notifications arrive
// on the OnChange callback from a background goroutine.
func (w *Watcher) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		return nil
	}

	w.stopCh = make(chan struct{})
	w.running = true

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		logging.Warn("Watcher", "fsnotify not available, falling back to polling: %v", err)
		go w.pollForChanges()
		return nil
	}
	w.fsWatcher = watcher

	dir := filepath.Dir(w.config.Path)
	if err := w.fsWatcher.Add(dir); err != nil {
		logging.Warn("Watcher", "Failed to watch directory %s, falling back to polling: %v", dir, err)
		w.fsWatcher.Close()
		w.fsWatcher = nil
		go w.pollForChanges()
		return nil
	}

	// Capture channels before releasing the lock to avoid racing with Stop.
	eventsCh := w.fsWatcher.Events
	errorsCh := w.fsWatcher.Errors
	go w.processEvents(eventsCh, errorsCh)

	logging.Info("Watcher", "Watching %s for changes", w.config.Path)
	return nil
}

// Stop halts the watcher. It is safe to call more than once.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.running {
		return
	}
	w.running = false
	close(w.stopCh)

	if w.fsWatcher != nil {
		w.fsWatcher.Close()
		w.fsWatcher = nil
	}
}

func (w *Watcher) processEvents(eventsCh <-chan fsnotify.Event, errorsCh <-chan error) {
	for {
		select {
		case <-w.stopCh:
			return

		case event, ok := <-eventsCh:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-errorsCh:
			if !ok {
				return
			}
			logging.Error("Watcher", err, "fsnotify error")
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if filepath.Base(event.Name) != filepath.Base(w.config.Path) {
		return
	}
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return
	}

	logging.Debug("Watcher", "Topology file changed: %s", event.Name)
	w.triggerDebounced()
}

// triggerDebounced invokes OnChange after the debounce period, collapsing
// bursts of events into one notification.
func (w *Watcher) triggerDebounced() {
	w.debounceMu.Lock()
	defer w.debounceMu.Unlock()

	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}

	w.debounceTimer = time.AfterFunc(w.config.Debounce, func() {
		w.mu.Lock()
		running := w.running
		callback := w.config.OnChange
		w.mu.Unlock()

		if running && callback != nil {
			callback()
		}
	})
}

// pollForChanges implements fallback polling when fsnotify is unavailable.
func (w *Watcher) pollForChanges() {
	ticker := time.NewTicker(w.config.PollInterval)
	defer ticker.Stop()

	if info, err := os.Stat(w.config.Path); err == nil {
		w.lastModTime = info.ModTime()
	}

	for {
		select {
		case <-w.stopCh:
			return

		case <-ticker.C:
			info, err := os.Stat(w.config.Path)
			if err != nil {
				continue
			}
			if info.ModTime().After(w.lastModTime) {
				w.lastModTime = info.ModTime()
				logging.Debug("Watcher", "Topology change detected via polling")
				w.triggerDebounced()
			}
		}
	}
}
