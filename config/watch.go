package config

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports changes to a tuning file. Reloads are delivered on Events
// and applied by the receiver, which keeps every write to the globals on the
// game goroutine.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

const watchDebounce = 100 * time.Millisecond

// Watch starts watching the directory holding path. Editors often replace
// files instead of writing them, so the directory is watched rather than the
// file itself.
func Watch(path string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		_ = w.Close()
		return nil, err
	}

	watcher := &Watcher{
		path:    filepath.Clean(path),
		watcher: w,
		Events:  make(chan string, 4),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

// Close stops the watcher. It is safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

// Poll applies a pending change, if any. It never blocks and returns whether
// the globals were reloaded.
func (w *Watcher) Poll() (bool, error) {
	select {
	case path := <-w.Events:
		if err := LoadFile(path); err != nil {
			return false, err
		}
		return true, nil
	case err := <-w.Errors:
		return false, err
	default:
		return false, nil
	}
}

// run coalesces bursts of events and reports once the file has been quiet for
// watchDebounce, so a truncate followed by a write is read only after the write.
func (w *Watcher) run() {
	var settle <-chan time.Time
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			settle = time.After(watchDebounce)
		case <-settle:
			settle = nil
			select {
			case w.Events <- w.path:
			default:
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}
