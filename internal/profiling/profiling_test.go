package profiling

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaths_Enabled(t *testing.T) {
	assert.False(t, Paths{}.Enabled())
	assert.True(t, Paths{Mem: "mem.prof"}.Enabled())
}

func TestSession_WritesProfiles(t *testing.T) {
	// Given
	dir := t.TempDir()
	paths := Paths{
		CPU:   filepath.Join(dir, "cpu.prof"),
		Mem:   filepath.Join(dir, "mem.prof"),
		Trace: filepath.Join(dir, "trace.out"),
	}

	// When
	s, err := Start(paths)
	require.NoError(t, err)
	require.NoError(t, s.Stop())

	// Then
	for _, path := range []string{paths.CPU, paths.Mem, paths.Trace} {
		info, err := os.Stat(path)
		require.NoError(t, err, path)
		assert.Positive(t, info.Size(), path)
	}
}

func TestSession_StopTwice(t *testing.T) {
	// Given
	s, err := Start(Paths{Mem: filepath.Join(t.TempDir(), "mem.prof")})
	require.NoError(t, err)

	// When / Then
	require.NoError(t, s.Stop())
	assert.NoError(t, s.Stop())
}

func TestStart_BadPath(t *testing.T) {
	// Given: a directory that does not exist
	path := filepath.Join(t.TempDir(), "missing", "cpu.prof")

	// When
	_, err := Start(Paths{CPU: path})

	// Then
	assert.Error(t, err)
}

func TestMemSummary(t *testing.T) {
	assert.Contains(t, MemSummary(), "heap ")
}
