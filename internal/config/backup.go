package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"time"
)

// MaxBackups is how many backups are kept per config file; older ones are
// pruned after each new backup.
const MaxBackups = 3

// Backup names are "<file>.bak.<stamp>". The stamp sorts lexically in
// time order.
const (
	backupInfix = ".bak."
	backupStamp = "20060102T150405.000000000"
)

// BackupFile copies the config file at path next to itself before it is
// overwritten by `config init --force`. It returns the backup path, or ""
// when path does not exist.
func BackupFile(path string) (string, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to stat config: %w", err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("config path %s is a directory", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read config for backup: %w", err)
	}

	backup := path + backupInfix + time.Now().UTC().Format(backupStamp)
	if err := os.WriteFile(backup, data, info.Mode().Perm()); err != nil {
		return "", fmt.Errorf("failed to write backup: %w", err)
	}

	// Pruning failures leave extra backups behind and are not reported.
	_ = pruneBackups(path)
	return backup, nil
}

// ListBackups returns the backups of the config file at path, newest first.
func ListBackups(path string) ([]string, error) {
	pattern := filepath.Join(filepath.Dir(path), globEscape(filepath.Base(path)+backupInfix)+"*")
	backups, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to list backups: %w", err)
	}
	slices.Sort(backups)
	slices.Reverse(backups)
	return backups, nil
}

func pruneBackups(path string) error {
	backups, err := ListBackups(path)
	if err != nil || len(backups) <= MaxBackups {
		return err
	}
	var errs []error
	for _, old := range backups[MaxBackups:] {
		if err := os.Remove(old); err != nil && !errors.Is(err, fs.ErrNotExist) {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// globEscape quotes the filepath.Match metacharacters in a literal name.
func globEscape(name string) string {
	out := make([]byte, 0, len(name))
	for i := 0; i < len(name); i++ {
		switch c := name[i]; c {
		case '*', '?', '[', ']', '\\':
			out = append(out, '\\', c)
		default:
			out = append(out, c)
		}
	}
	return string(out)
}
