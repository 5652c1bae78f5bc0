package logging

import (
	"os"
	"path/filepath"
)

// Log file names under LogDir.
const (
	CLILogFile    = "amankeys.log"
	ServerLogFile = "server.log"
)

// LogDir returns ~/.amankeys/logs, or a directory under the temp dir when
// the home directory cannot be resolved.
func LogDir() string {
	root := os.TempDir()
	if home, err := os.UserHomeDir(); err == nil {
		root = home
	}
	return filepath.Join(root, ".amankeys", "logs")
}

// LogPath returns the full path of a log file under LogDir.
func LogPath(name string) string {
	return filepath.Join(LogDir(), name)
}
