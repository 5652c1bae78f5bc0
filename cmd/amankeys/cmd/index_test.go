package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofrs/flock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	amerrors "github.com/Aman-CERP/amankeys/internal/errors"
)

type indexReport struct {
	Source   string `json:"source"`
	Keywords []struct {
		Term      string `json:"term"`
		Frequency int    `json:"frequency"`
		Strength  int    `json:"strength"`
	} `json:"keywords"`
	Tokens []string `json:"tokens"`
}

func terms(r indexReport) []string {
	out := make([]string, len(r.Keywords))
	for i, kw := range r.Keywords {
		out[i] = kw.Term
	}
	return out
}

func TestIndexCmd_StdinJSON(t *testing.T) {
	// Given
	isolateCLI(t)

	// When
	stdout, _, err := runCLI(t, sampleText, "index", "--format", "json")

	// Then
	require.NoError(t, err)
	var rep indexReport
	require.NoError(t, json.Unmarshal([]byte(stdout), &rep))
	assert.Equal(t, "-", rep.Source)
	assert.Contains(t, terms(rep), "sample test")
	assert.Empty(t, rep.Tokens, "stages are opt-in")
}

func TestIndexCmd_TextOutput(t *testing.T) {
	// Given
	isolateCLI(t)

	// When
	stdout, _, err := runCLI(t, sampleText, "index", "--no-color")

	// Then
	require.NoError(t, err)
	assert.Contains(t, stdout, "sample test")
	assert.Contains(t, stdout, "20 tokens")
}

func TestIndexCmd_SortAndLimit(t *testing.T) {
	// Given
	isolateCLI(t)

	// When
	stdout, _, err := runCLI(t, sampleText, "index", "--format", "json", "--sort", "--limit", "3")

	// Then: the three most specific candidates, composite phrase included
	require.NoError(t, err)
	var rep indexReport
	require.NoError(t, json.Unmarshal([]byte(stdout), &rep))
	assert.Equal(t, []string{"sample", "test", "sample test"}, terms(rep))
}

func TestIndexCmd_DebugStages(t *testing.T) {
	// Given
	isolateCLI(t)

	// When
	stdout, _, err := runCLI(t, "It uses tests.", "index", "--format", "json", "--debug-stages")

	// Then
	require.NoError(t, err)
	var rep indexReport
	require.NoError(t, json.Unmarshal([]byte(stdout), &rep))
	assert.Equal(t, []string{"it", "uses", "tests", "#"}, rep.Tokens)
}

func TestIndexCmd_MultipleFiles(t *testing.T) {
	// Given
	dir := isolateCLI(t)
	writeFile(t, filepath.Join(dir, "a.txt"), sampleText)
	writeFile(t, filepath.Join(dir, "b.txt"), "Fulltext index of a module.")

	// When
	stdout, _, err := runCLI(t, "", "index", "--format", "json", "a.txt", "b.txt")

	// Then: a list in argument order
	require.NoError(t, err)
	var reps []indexReport
	require.NoError(t, json.Unmarshal([]byte(stdout), &reps))
	require.Len(t, reps, 2)
	assert.Equal(t, "a.txt", reps[0].Source)
	assert.Equal(t, "b.txt", reps[1].Source)
}

func TestIndexCmd_OutFile(t *testing.T) {
	// Given
	dir := isolateCLI(t)
	outPath := filepath.Join(dir, "out", "keywords.json")

	// When
	stdout, stderr, err := runCLI(t, sampleText, "index", "--format", "json", "--out", outPath)

	// Then
	require.NoError(t, err)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, outPath)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	var rep indexReport
	require.NoError(t, json.Unmarshal(data, &rep))
	assert.Contains(t, terms(rep), "sample test")
}

func TestIndexCmd_OutFileLocked(t *testing.T) {
	// Given: another process holds the results file lock
	dir := isolateCLI(t)
	outPath := filepath.Join(dir, "keywords.json")
	lock := flock.New(outPath + ".lock")
	locked, err := lock.TryLock()
	require.NoError(t, err)
	require.True(t, locked)
	defer func() { _ = lock.Unlock() }()

	// When
	_, _, err = runCLI(t, sampleText, "index", "--format", "json", "--out", outPath)

	// Then: the retries give up with the lock error and nothing is written
	require.Error(t, err)
	assert.Equal(t, amerrors.ErrCodeResourceLocked, amerrors.GetCode(err))
	assert.NoFileExists(t, outPath)
}

func TestIndexCmd_MissingFile(t *testing.T) {
	// Given
	isolateCLI(t)

	// When
	_, _, err := runCLI(t, "", "index", "missing.txt")

	// Then
	require.Error(t, err)
	assert.Equal(t, amerrors.ErrCodeFileNotFound, amerrors.GetCode(err))
}

func TestIndexCmd_InputTooLarge(t *testing.T) {
	// Given
	isolateCLI(t)
	t.Setenv("AMANKEYS_MAX_INPUT_BYTES", "16")

	// When
	_, _, err := runCLI(t, strings.Repeat("word ", 10), "index")

	// Then
	require.Error(t, err)
	assert.Equal(t, amerrors.ErrCodeInputTooLarge, amerrors.GetCode(err))
}

func TestIndexCmd_InvalidFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown format", []string{"index", "--format", "xml"}},
		{"negative limit", []string{"index", "--limit", "-1"}},
		{"watch on stdin", []string{"index", "--watch"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given
			isolateCLI(t)

			// When
			_, _, err := runCLI(t, sampleText, tt.args...)

			// Then
			assert.Error(t, err)
		})
	}
}

func TestIndexCmd_ProjectConfig(t *testing.T) {
	// Given: a project stop word list that removes "sample"
	dir := isolateCLI(t)
	writeFile(t, filepath.Join(dir, "stop.txt"), "sample\n")
	writeFile(t, filepath.Join(dir, ".amankeys.yaml"), "resources:\n  stopwords: stop.txt\n")

	// When
	stdout, _, err := runCLI(t, sampleText, "index", "--format", "json")

	// Then
	require.NoError(t, err)
	var rep indexReport
	require.NoError(t, json.Unmarshal([]byte(stdout), &rep))
	assert.NotContains(t, terms(rep), "sample")
	assert.Contains(t, terms(rep), "test")
}
