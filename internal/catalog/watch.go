package catalog

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

const changeBufferSize = 16

// Watcher reports documents under a directory source that changed on disk.
type Watcher struct {
	root    string
	fsw     *fsnotify.Watcher
	mu      sync.Mutex
	dirs    map[string]bool
	changes chan string
	errors  chan error
	done    chan struct{}
	once    sync.Once
}

// Watch starts watching the directories holding refs under root. Changes are
// reported as refs relative to root, slash-separated. Refs that do not resolve
// under root are skipped.
func Watch(root string, refs ...string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		root:    root,
		fsw:     fsw,
		dirs:    make(map[string]bool),
		changes: make(chan string, changeBufferSize),
		errors:  make(chan error, 1),
		done:    make(chan struct{}),
	}
	for _, ref := range refs {
		if _, err := cleanRef(ref); err != nil {
			continue
		}
		if err := w.Add(ref); err != nil {
			fsw.Close()
			return nil, err
		}
	}
	go w.run()
	return w, nil
}

// Add extends the watch to the directory holding ref. Adding a directory that
// is already watched does nothing.
func (w *Watcher) Add(ref string) error {
	name, err := cleanRef(ref)
	if err != nil {
		return err
	}
	dir := filepath.Dir(filepath.Join(w.root, filepath.FromSlash(name)))

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.dirs[dir] {
		return nil
	}
	if err := w.fsw.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", ref, err)
	}
	w.dirs[dir] = true
	return nil
}

// Changes receives changed refs. Bursts may be coalesced. The channel is
// closed once the watcher stops.
func (w *Watcher) Changes() <-chan string { return w.changes }

// Errors receives watcher failures.
func (w *Watcher) Errors() <-chan error { return w.errors }

// Close stops the watcher.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		err = w.fsw.Close()
		<-w.done
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.done)
	defer close(w.errors)
	defer close(w.changes)
	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			rel, err := filepath.Rel(w.root, ev.Name)
			if err != nil {
				continue
			}
			select {
			case w.changes <- filepath.ToSlash(rel):
			default:
				// Drop if buffer full; a reload is already pending
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			select {
			case w.errors <- err:
			default:
			}
		}
	}
}
