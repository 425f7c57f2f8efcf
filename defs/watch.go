package defs

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceWindow collapses the burst of events editors emit per save.
const debounceWindow = 100 * time.Millisecond

// Reload is delivered when a watched file changes. Registry carries the
// freshly loaded defs for def-file edits and is nil for scenario edits.
type Reload struct {
	Registry *Registry
	Path     string
}

// Watcher watches def and scenario directories. Def-file edits are loaded
// into a new Registry before delivery, so consumers never see a change
// notification for defs that fail to parse.
type Watcher struct {
	watcher *fsnotify.Watcher
	Reloads chan Reload
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

// NewWatcher watches the given directories.
func NewWatcher(dirs ...string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	watcher := &Watcher{
		watcher: w,
		Reloads: make(chan Reload, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

// Close stops the watcher. The run loop owns the outbound channels and
// closes them on its way out, so Close never races a pending delivery.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.Reloads)
	defer close(w.Errors)

	seen := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			w.handle(seen, event.Name)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.report(err)
		case <-w.closeCh:
			return
		}
	}
}

func (w *Watcher) handle(seen map[string]time.Time, path string) {
	switch {
	case isDefFile(path):
		if !shouldReload(seen, path) {
			return
		}
		registry, err := LoadRegistry()
		if err != nil {
			w.report(err)
			return
		}
		w.deliver(Reload{Registry: registry, Path: path})
	case isScenarioFile(path):
		if !shouldReload(seen, path) {
			return
		}
		w.deliver(Reload{Path: path})
	}
}

// shouldReload debounces per file, preferring the on-disk modification time
// over the wall clock so every event in a single save collapses to one
// reload.
func shouldReload(seen map[string]time.Time, path string) bool {
	stamp, ok := ModTime(path)
	if !ok {
		stamp = time.Now()
	}
	if prev, ok := seen[path]; ok && stamp.Sub(prev) < debounceWindow {
		return false
	}
	seen[path] = stamp
	return true
}

func (w *Watcher) deliver(r Reload) {
	select {
	case w.Reloads <- r:
	case <-w.closeCh:
	}
}

func (w *Watcher) report(err error) {
	select {
	case w.Errors <- err:
	case <-w.closeCh:
	default:
	}
}

func isDefFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

func isScenarioFile(path string) bool {
	return strings.ToLower(filepath.Ext(path)) == ".tengo"
}
