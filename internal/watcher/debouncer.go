package watcher

import (
	"cmp"
	"log/slog"
	"slices"
	"sync"
	"time"
)

// transition pairs the first operation seen for a path in the current
// window with the operation that just arrived.
type transition struct{ first, next Operation }

// merged gives the operation reported for a transition. A zero result means
// the two events cancel out. Pairs not listed report the latest operation.
//
// Editors that save through a temp file and rename produce DELETE then
// CREATE for the watched input; that is reported as a single MODIFY.
var merged = map[transition]Operation{
	{OpCreate, OpModify}: OpCreate,
	{OpCreate, OpDelete}: 0,
	{OpDelete, OpCreate}: OpModify,
}

type pending struct {
	first Operation
	event FileEvent
}

// debouncer collects events per path and emits them as one sorted batch
// once no new event has arrived for the window.
type debouncer struct {
	window time.Duration
	logger *slog.Logger
	out    chan []FileEvent

	mu      sync.Mutex
	byPath  map[string]pending
	timer   *time.Timer
	stopped bool
}

func newDebouncer(window time.Duration, capacity int, logger *slog.Logger) *debouncer {
	if logger == nil {
		logger = slog.Default()
	}
	return &debouncer{
		window: window,
		logger: logger,
		out:    make(chan []FileEvent, capacity),
		byPath: make(map[string]pending),
	}
}

// add records ev and restarts the window.
func (d *debouncer) add(ev FileEvent) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}

	p, seen := d.byPath[ev.Path]
	switch {
	case !seen:
		d.byPath[ev.Path] = pending{first: ev.Operation, event: ev}
	default:
		op, listed := merged[transition{p.first, ev.Operation}]
		switch {
		case listed && op == 0:
			delete(d.byPath, ev.Path)
		case listed:
			ev.Operation = op
			p.event = ev
			d.byPath[ev.Path] = p
		default:
			p.event = ev
			d.byPath[ev.Path] = p
		}
	}

	if d.timer == nil {
		d.timer = time.AfterFunc(d.window, d.emit)
	} else {
		d.timer.Reset(d.window)
	}
}

// emit sends the pending events, sorted by path, without blocking. A batch
// that does not fit in the buffer is dropped with a warning.
func (d *debouncer) emit() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped || len(d.byPath) == 0 {
		return
	}

	batch := make([]FileEvent, 0, len(d.byPath))
	for _, p := range d.byPath {
		batch = append(batch, p.event)
	}
	slices.SortFunc(batch, func(a, b FileEvent) int { return cmp.Compare(a.Path, b.Path) })
	clear(d.byPath)

	select {
	case d.out <- batch:
	default:
		d.logger.Warn("debouncer output full, dropping batch", slog.Int("batch_size", len(batch)))
	}
}

func (d *debouncer) batches() <-chan []FileEvent { return d.out }

// stop discards pending events and closes the output. It is idempotent.
func (d *debouncer) stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
	}
	close(d.out)
}
