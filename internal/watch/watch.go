// Package watch observes a workspace for saves of mason.yaml and hands the
// containing directory to a handler, one save at a time.
package watch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/schmitthub/brickyard/internal/logger"
)

// ManifestFileName is the file whose saves trigger the handler.
const ManifestFileName = "mason.yaml"

// DefaultDebounce coalesces editors that write a file in several steps.
const DefaultDebounce = 300 * time.Millisecond

// Handler is called with the directory containing a saved manifest.
type Handler func(ctx context.Context, dir string) error

// Options configures a Watcher.
type Options struct {
	// Root is the directory tree to observe.
	Root string
	// Debounce is the quiet period per directory before the handler runs.
	Debounce time.Duration
	// Ignore lists directory base names that are never descended into.
	Ignore []string
	// Skip optionally reports additional paths to leave out, e.g. gitignored
	// directories.
	Skip func(path string, isDir bool) bool
	// OnSave receives each debounced save.
	OnSave Handler
}

// Watcher is a recursive fsnotify watcher filtered to manifest saves.
type Watcher struct {
	opts    Options
	fsw     *fsnotify.Watcher
	ready   chan string
	done    chan struct{}
	closeMu sync.Once

	mu      sync.Mutex
	pending map[string]*time.Timer
}

// New creates a Watcher and registers every directory under opts.Root.
func New(opts Options) (*Watcher, error) {
	if opts.OnSave == nil {
		return nil, errors.New("watch: OnSave handler is required")
	}
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	w := &Watcher{
		opts:    opts,
		fsw:     fsw,
		ready:   make(chan string),
		done:    make(chan struct{}),
		pending: make(map[string]*time.Timer),
	}
	if err := w.addTree(opts.Root); err != nil {
		fsw.Close()
		return nil, err
	}
	return w, nil
}

// Run dispatches saves until ctx is cancelled. Handler errors are logged
// and do not stop the watcher.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.Close()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			w.handleEvent(ev)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			logger.Warn().Err(err).Msg("file watcher error")
		case dir := <-w.ready:
			logger.Debug().Str("dir", dir).Msg("manifest saved")
			if err := w.opts.OnSave(ctx, dir); err != nil {
				logger.Debug().Err(err).Str("dir", dir).Msg("save handler failed")
			}
		}
	}
}

// Close stops the watcher. Safe to call multiple times.
func (w *Watcher) Close() error {
	var err error
	w.closeMu.Do(func() {
		close(w.done)
		w.mu.Lock()
		for _, t := range w.pending {
			t.Stop()
		}
		w.mu.Unlock()
		err = w.fsw.Close()
	})
	return err
}

// WatchedDirs lists the registered directories.
func (w *Watcher) WatchedDirs() []string {
	dirs := w.fsw.WatchList()
	slices.Sort(dirs)
	return dirs
}

func (w *Watcher) handleEvent(ev fsnotify.Event) {
	if ev.Has(fsnotify.Create) {
		if info, err := os.Lstat(ev.Name); err == nil && info.IsDir() {
			if err := w.addTree(ev.Name); err != nil {
				logger.Debug().Err(err).Str("dir", ev.Name).Msg("failed to watch new directory")
			}
			return
		}
	}

	if filepath.Base(ev.Name) != ManifestFileName {
		return
	}
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
		return
	}
	w.schedule(filepath.Dir(ev.Name))
}

// schedule (re)starts the quiet period for dir.
func (w *Watcher) schedule(dir string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if t, ok := w.pending[dir]; ok {
		t.Stop()
	}
	var t *time.Timer
	t = time.AfterFunc(w.opts.Debounce, func() {
		w.mu.Lock()
		if w.pending[dir] == t {
			delete(w.pending, dir)
		}
		w.mu.Unlock()

		select {
		case w.ready <- dir:
		case <-w.done:
		}
	})
	w.pending[dir] = t
}

func (w *Watcher) ignored(path string, isDir bool) bool {
	if path == w.opts.Root {
		return false
	}
	if isDir && slices.Contains(w.opts.Ignore, filepath.Base(path)) {
		return true
	}
	return w.opts.Skip != nil && w.opts.Skip(path, isDir)
}

func (w *Watcher) addTree(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			logger.Debug().Err(err).Str("path", path).Msg("skipping unreadable path")
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if w.ignored(path, true) {
			return filepath.SkipDir
		}
		if err := w.fsw.Add(path); err != nil {
			return fmt.Errorf("failed to watch %s: %w", path, err)
		}
		return nil
	})
}
