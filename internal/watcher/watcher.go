package watcher

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Operation is the kind of change seen on a watched file.
type Operation uint8

const (
	OpCreate Operation = iota + 1
	OpModify
	// OpDelete covers removal and renaming the file away.
	OpDelete
)

var opNames = [...]string{OpCreate: "create", OpModify: "modify", OpDelete: "delete"}

func (op Operation) String() string {
	if int(op) < len(opNames) && opNames[op] != "" {
		return opNames[op]
	}
	return fmt.Sprintf("Operation(%d)", uint8(op))
}

// operationOf maps an fsnotify op. Chmod-only events report false.
func operationOf(op fsnotify.Op) (Operation, bool) {
	switch {
	case op.Has(fsnotify.Create):
		return OpCreate, true
	case op.Has(fsnotify.Write):
		return OpModify, true
	case op.Has(fsnotify.Remove), op.Has(fsnotify.Rename):
		return OpDelete, true
	default:
		return 0, false
	}
}

// FileEvent is a change to one watched file.
type FileEvent struct {
	// Path is absolute and cleaned.
	Path      string
	Operation Operation
	Timestamp time.Time
}

// Defaults for New.
const (
	DefaultDebounce   = 300 * time.Millisecond
	DefaultBufferSize = 16
)

type settings struct {
	debounce   time.Duration
	bufferSize int
	logger     *slog.Logger
}

// Option configures a FileWatcher.
type Option func(*settings)

// WithDebounce sets how long a file must stay quiet before its change is
// delivered. Non-positive values keep the default.
func WithDebounce(d time.Duration) Option {
	return func(s *settings) {
		if d > 0 {
			s.debounce = d
		}
	}
}

// WithBufferSize sets how many undelivered batches are held before new
// ones are dropped. Non-positive values keep the default.
func WithBufferSize(n int) Option {
	return func(s *settings) {
		if n > 0 {
			s.bufferSize = n
		}
	}
}

// WithLogger sets the logger for dropped batches and watcher errors.
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.logger = l
		}
	}
}
