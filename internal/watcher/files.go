package watcher

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// FileWatcher watches a fixed set of files for changes.
type FileWatcher struct {
	fsWatcher *fsnotify.Watcher
	debouncer *debouncer
	files     map[string]struct{}
	dirs      []string
	events    chan []FileEvent
	errors    chan error
	stopCh    chan struct{}
	logger    *slog.Logger
	mu        sync.Mutex
	stopped   bool
}

// New creates a watcher for paths. Paths are made absolute and duplicates
// are ignored.
func New(paths []string, opts ...Option) (*FileWatcher, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("no files to watch")
	}
	cfg := settings{
		debounce:   DefaultDebounce,
		bufferSize: DefaultBufferSize,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	files := make(map[string]struct{}, len(paths))
	var dirs []string
	seenDir := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, fmt.Errorf("resolve absolute path: %w", err)
		}
		files[abs] = struct{}{}
		if dir := filepath.Dir(abs); !seenDir[dir] {
			seenDir[dir] = true
			dirs = append(dirs, dir)
		}
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}

	return &FileWatcher{
		fsWatcher: fsw,
		debouncer: newDebouncer(cfg.debounce, cfg.bufferSize, cfg.logger),
		files:     files,
		dirs:      dirs,
		events:    make(chan []FileEvent, cfg.bufferSize),
		errors:    make(chan error, cfg.bufferSize),
		stopCh:    make(chan struct{}),
		logger:    cfg.logger,
	}, nil
}

// Start watches until ctx is cancelled or Stop is called. It blocks.
func (w *FileWatcher) Start(ctx context.Context) error {
	for _, dir := range w.dirs {
		if err := w.fsWatcher.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
	}

	go w.forward(ctx)

	for {
		select {
		case <-ctx.Done():
			_ = w.Stop()
			return ctx.Err()
		case <-w.stopCh:
			return nil
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return nil
			}
			w.handle(event)
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return nil
			}
			w.emitError(err)
		}
	}
}

// handle converts an fsnotify event on a watched file.
func (w *FileWatcher) handle(event fsnotify.Event) {
	path := filepath.Clean(event.Name)
	if _, ok := w.files[path]; !ok {
		return
	}

	op, ok := operationOf(event.Op)
	if !ok {
		return
	}

	w.debouncer.add(FileEvent{Path: path, Operation: op, Timestamp: time.Now()})
}

// forward moves debounced batches to the events channel.
func (w *FileWatcher) forward(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case batch, ok := <-w.debouncer.batches():
			if !ok {
				return
			}
			w.emit(batch)
		}
	}
}

func (w *FileWatcher) emit(batch []FileEvent) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopped {
		return
	}
	select {
	case w.events <- batch:
	default:
		w.logger.Warn("watcher event buffer full, dropping batch",
			slog.Int("batch_size", len(batch)))
	}
}

func (w *FileWatcher) emitError(err error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopped {
		return
	}
	select {
	case w.errors <- err:
	default:
		w.logger.Warn("watcher error buffer full", slog.Any("error", err))
	}
}

// Stop stops the watcher and closes the Events and Errors channels.
// Safe to call multiple times.
func (w *FileWatcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped {
		return nil
	}
	w.stopped = true

	close(w.stopCh)
	w.debouncer.stop()
	err := w.fsWatcher.Close()
	close(w.events)
	close(w.errors)
	return err
}

// Events returns the channel of debounced change batches.
func (w *FileWatcher) Events() <-chan []FileEvent {
	return w.events
}

// Errors returns the channel of non-fatal watcher errors.
func (w *FileWatcher) Errors() <-chan error {
	return w.errors
}

// Files returns the number of distinct watched files.
func (w *FileWatcher) Files() int {
	return len(w.files)
}
