package output

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	amerrors "github.com/Aman-CERP/amankeys/internal/errors"
)

// LockSuffix is appended to a results path to name its lock file.
const LockSuffix = ".lock"

// WriteFileLocked replaces the file at path with data while holding a
// cross-process lock on path+LockSuffix. The file is written to a temporary
// sibling and renamed so readers never see a partial result. If another
// process holds the lock it returns a retryable ERR_204 error.
func WriteFileLocked(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return amerrors.FileError(dir, err)
	}

	lock := flock.New(path + LockSuffix)
	acquired, err := lock.TryLock()
	if err != nil {
		return amerrors.FileError(lock.Path(), err)
	}
	if !acquired {
		return amerrors.New(amerrors.ErrCodeResourceLocked, "results file is locked by another process", nil).
			WithDetail("path", path).
			WithSuggestion("Wait for the other amankeys process to finish, or choose a different --out path")
	}
	defer func() { _ = lock.Unlock() }()

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return amerrors.FileError(dir, err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return amerrors.FileError(tmpPath, fmt.Errorf("write: %w", err))
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return amerrors.FileError(tmpPath, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return amerrors.FileError(path, err)
	}
	return nil
}
