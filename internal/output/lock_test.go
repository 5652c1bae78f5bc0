package output

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gofrs/flock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	amerrors "github.com/Aman-CERP/amankeys/internal/errors"
)

func TestWriteFileLocked_WritesAndReplaces(t *testing.T) {
	// Given
	path := filepath.Join(t.TempDir(), "out", "keywords.json")

	// When
	require.NoError(t, WriteFileLocked(path, []byte("first")))
	require.NoError(t, WriteFileLocked(path, []byte("second")))

	// Then
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	for _, e := range entries {
		assert.NotContains(t, e.Name(), ".tmp-", "temporary files are cleaned up")
	}
}

func TestWriteFileLocked_Contention(t *testing.T) {
	// Given: another holder of the lock
	path := filepath.Join(t.TempDir(), "keywords.json")
	other := flock.New(path + LockSuffix)
	locked, err := other.TryLock()
	require.NoError(t, err)
	require.True(t, locked)
	defer func() { _ = other.Unlock() }()

	// When
	err = WriteFileLocked(path, []byte("data"))

	// Then
	require.Error(t, err)
	assert.Equal(t, amerrors.ErrCodeResourceLocked, amerrors.GetCode(err))
	assert.True(t, amerrors.IsRetryable(err))
	assert.NoFileExists(t, path)
}

func TestWriteFileLocked_ReleasesLock(t *testing.T) {
	// Given
	path := filepath.Join(t.TempDir(), "keywords.json")
	require.NoError(t, WriteFileLocked(path, []byte("data")))

	// When
	other := flock.New(path + LockSuffix)
	locked, err := other.TryLock()

	// Then
	require.NoError(t, err)
	assert.True(t, locked)
	_ = other.Unlock()
}
