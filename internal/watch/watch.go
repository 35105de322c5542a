// Package watch reports when a file changes on disk.
package watch

import (
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDelay is how long a Watcher waits for writes to stop before
// reporting a change
const DefaultDelay = 100 * time.Millisecond

// Watcher watches one file. A change is reported once on Changes; several
// changes between reads collapse into one.
//
// The file's directory is watched rather than the file, so saves that replace
// the file by rename are seen too.
type Watcher struct {
	path  string
	delay time.Duration

	fs      *fsnotify.Watcher
	changes chan struct{}
	done    chan struct{}
	wg      sync.WaitGroup

	mu      sync.Mutex
	stopped bool
}

// New starts watching path. The file must exist when watching starts.
func New(path string, delay time.Duration) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(abs); err != nil {
		return nil, err
	}
	if delay <= 0 {
		delay = DefaultDelay
	}

	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fs.Add(filepath.Dir(abs)); err != nil {
		fs.Close()
		return nil, err
	}

	w := &Watcher{
		path:    abs,
		delay:   delay,
		fs:      fs,
		changes: make(chan struct{}, 1),
		done:    make(chan struct{}),
	}

	w.wg.Add(1)
	go w.run()

	return w, nil
}

// relevant reports whether ev leaves new content at the watched path.
// Removes and renames away are not changes; the create that follows is.
func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != w.path {
		return false
	}
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)
}

func (w *Watcher) run() {
	defer w.wg.Done()

	// Stopped until the first relevant event arrives
	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-w.done:
			return

		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if w.relevant(ev) {
				timer.Reset(w.delay)
			}

		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			slog.Warn("watch: error", "path", w.path, "error", err)

		case <-timer.C:
			w.notify()
		}
	}
}

func (w *Watcher) notify() {
	select {
	case w.changes <- struct{}{}:
	default:
	}
}

// Changes receives a value after the file changed. It is closed by Stop.
func (w *Watcher) Changes() <-chan struct{} {
	return w.changes
}

// Stop ends watching and closes Changes. It is safe to call more than once.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return
	}
	w.stopped = true
	w.mu.Unlock()

	close(w.done)
	w.wg.Wait()
	w.fs.Close()
	close(w.changes)
}
