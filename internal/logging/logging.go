package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Config describes one structured logger.
type Config struct {
	// Level is the minimum level: debug, info, warn or error.
	Level string
	// FilePath receives JSON records through a RotatingWriter. Empty
	// disables the file sink.
	FilePath string
	// MaxSizeMB is the size at which the file rotates.
	MaxSizeMB int
	// MaxFiles is how many rotated generations are kept.
	MaxFiles int
	// Mirror, when set, receives a copy of every record.
	Mirror io.Writer
}

// DebugConfig is the --debug configuration: debug level, CLI log file.
func DebugConfig() Config {
	return Config{
		Level:     "debug",
		FilePath:  LogPath(CLILogFile),
		MaxSizeMB: 10,
		MaxFiles:  5,
	}
}

// ServerConfig is the serve configuration: file only, never stdout or
// stderr, since stdout carries the JSON-RPC stream.
func ServerConfig(level string) Config {
	return Config{
		Level:     level,
		FilePath:  LogPath(ServerLogFile),
		MaxSizeMB: 10,
		MaxFiles:  5,
	}
}

// Setup builds a JSON logger from cfg. The returned cleanup flushes and
// closes the log file and is never nil on success.
func Setup(cfg Config) (*slog.Logger, func(), error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		level = slog.LevelInfo
	}

	var sinks []io.Writer
	cleanup := func() {}

	if cfg.FilePath != "" {
		file, err := NewRotatingWriter(cfg.FilePath, cfg.MaxSizeMB, cfg.MaxFiles)
		if err != nil {
			return nil, nil, err
		}
		sinks = append(sinks, file)
		cleanup = func() {
			_ = file.Sync()
			_ = file.Close()
		}
	}
	if cfg.Mirror != nil {
		sinks = append(sinks, cfg.Mirror)
	}

	var out io.Writer
	switch len(sinks) {
	case 0:
		out = io.Discard
	case 1:
		out = sinks[0]
	default:
		out = io.MultiWriter(sinks...)
	}

	handler := slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level})
	return slog.New(handler), cleanup, nil
}

// Console returns the logger used by ordinary CLI runs: warnings and errors
// as short text lines on w, without timestamps.
func Console(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.LevelWarn,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))
}

// SetupServeMode installs the server logger as the slog default.
func SetupServeMode(level string) (func(), error) {
	cfg := ServerConfig(level)
	logger, cleanup, err := Setup(cfg)
	if err != nil {
		return nil, err
	}

	slog.SetDefault(logger)
	slog.Info("serve mode logging initialized",
		slog.String("log_file", cfg.FilePath),
		slog.String("level", cfg.Level))

	return cleanup, nil
}

// ParseLevel accepts debug, info, warn (or warning) and error in any case.
func ParseLevel(s string) (slog.Level, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "warning" {
		name = "warn"
	}
	var level slog.Level
	switch name {
	case "debug", "info", "warn", "error":
		if err := level.UnmarshalText([]byte(name)); err != nil {
			return slog.LevelInfo, err
		}
		return level, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}
