package watch

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
)

const DefaultWindow = 300 * time.Millisecond

type Options struct {
	// Root is watched recursively.
	Root string
	// Exclude is ignored along with everything below it.
	Exclude string
	// Files outside Root that also trigger a pass, such as the config document.
	Files  []string
	Window time.Duration
	Logger *slog.Logger
}

// Watcher turns filesystem changes into regeneration passes. Events are
// produced by fsnotify and consumed by a single loop, so passes never
// overlap.
type Watcher struct {
	root    string
	exclude string
	files   map[string]struct{}
	window  time.Duration
	logger  *slog.Logger
}

func New(opts Options) (*Watcher, error) {
	root, err := filepath.Abs(opts.Root)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var exclude string
	if opts.Exclude != "" {
		if exclude, err = filepath.Abs(opts.Exclude); err != nil {
			return nil, errors.WithStack(err)
		}
	}

	files := make(map[string]struct{}, len(opts.Files))
	for _, f := range opts.Files {
		abs, err := filepath.Abs(f)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		files[abs] = struct{}{}
	}

	window := opts.Window
	if window <= 0 {
		window = DefaultWindow
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Watcher{
		root:    root,
		exclude: exclude,
		files:   files,
		window:  window,
		logger:  logger,
	}, nil
}

// Run blocks until ctx is done, calling pass once per coalesced burst of
// changes. A failing pass is logged and the watcher keeps going.
func (w *Watcher) Run(ctx context.Context, pass func(context.Context) error) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "creating watcher")
	}
	defer fsw.Close()

	if err := w.addTree(fsw, w.root); err != nil {
		return err
	}
	for f := range w.files {
		if err := fsw.Add(filepath.Dir(f)); err != nil {
			return errors.Wrapf(err, "watching %s", f)
		}
	}

	w.logger.Info("watching for changes", "dir", w.root)

	changes := make(chan struct{}, 1)
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go w.produce(ctx, fsw, changes)

	for range Debounce(ctx, changes, w.window) {
		if ctx.Err() != nil {
			break
		}
		w.logger.Info("change detected, regenerating")
		if err := pass(ctx); err != nil {
			w.logger.Error("generation failed", "error", err)
		}
	}

	return nil
}

func (w *Watcher) produce(ctx context.Context, fsw *fsnotify.Watcher, changes chan<- struct{}) {
	defer close(changes)

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-fsw.Events:
			if !ok {
				return
			}
			if !w.relevant(event) {
				continue
			}
			w.logger.Debug("filesystem event", "path", event.Name, "op", event.Op.String())

			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := w.addTree(fsw, event.Name); err != nil {
						w.logger.Warn("failed to watch directory", "dir", event.Name, "error", err)
					}
				}
			}

			select {
			case changes <- struct{}{}:
			default:
			}

		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			w.logger.Error("watcher error", "error", err)
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if event.Op == fsnotify.Chmod {
		return false
	}
	if w.excluded(event.Name) {
		return false
	}
	if within(w.root, event.Name) {
		return true
	}
	_, ok := w.files[event.Name]
	return ok
}

func (w *Watcher) excluded(path string) bool {
	return w.exclude != "" && within(w.exclude, path)
}

// addTree watches dir and every directory below it; fsnotify itself is not
// recursive.
func (w *Watcher) addTree(fsw *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return errors.Wrapf(err, "scanning %s", path)
		}
		if !d.IsDir() {
			return nil
		}
		if w.excluded(path) {
			return filepath.SkipDir
		}
		if err := fsw.Add(path); err != nil {
			return errors.Wrapf(err, "watching %s", path)
		}
		return nil
	})
}

func within(dir, path string) bool {
	if path == dir {
		return true
	}
	return strings.HasPrefix(path, dir+string(filepath.Separator))
}
