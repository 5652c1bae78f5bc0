package errors

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmanError_Unwrap_PreservesOriginalError(t *testing.T) {
	// Given: an original error
	originalErr := errors.New("original error")

	// When: wrapping with AmanError
	amanErr := New(ErrCodeFileNotFound, "file not found: doc.txt", originalErr)

	// Then: unwrapping returns original error
	require.NotNil(t, amanErr)
	assert.Equal(t, originalErr, errors.Unwrap(amanErr))
	assert.True(t, errors.Is(amanErr, originalErr))
}

func TestAmanError_Error(t *testing.T) {
	err := New(ErrCodeInputTooLarge, "input exceeds 10 MiB", nil)

	assert.Equal(t, "[ERR_402_INPUT_TOO_LARGE] input exceeds 10 MiB", err.Error())
}

func TestAmanError_Is_MatchesByCode(t *testing.T) {
	err1 := New(ErrCodeFileNotFound, "file A not found", nil)
	err2 := New(ErrCodeFileNotFound, "file B not found", nil)
	err3 := New(ErrCodeConfigInvalid, "bad config", nil)

	assert.True(t, errors.Is(err1, err2))
	assert.False(t, errors.Is(err1, err3))
	assert.True(t, errors.Is(fmt.Errorf("loading: %w", err1), err2), "code match through a wrap")
}

func TestAmanError_WithDetailAndSuggestion(t *testing.T) {
	// Given: a base error
	err := New(ErrCodeResourceCorrupt, "lexicon is corrupt", nil)

	// When: adding context
	err = err.WithDetail("path", "/tmp/lexicon.txt").
		WithDetail("line", "12").
		WithSuggestion("Regenerate the lexicon file")

	// Then: context is available
	assert.Equal(t, "/tmp/lexicon.txt", err.Details["path"])
	assert.Equal(t, "12", err.Details["line"])
	assert.Equal(t, "Regenerate the lexicon file", err.Suggestion)
}

func TestNew_Classification(t *testing.T) {
	tests := []struct {
		code          string
		wantCategory  Category
		wantSeverity  Severity
		wantRetryable bool
	}{
		{ErrCodeConfigInvalid, CategoryConfig, SeverityFatal, false},
		{ErrCodeFileNotFound, CategoryIO, SeverityError, false},
		{ErrCodeFilePermission, CategoryIO, SeverityError, false},
		{ErrCodeResourceCorrupt, CategoryIO, SeverityFatal, false},
		{ErrCodeResourceLocked, CategoryIO, SeverityWarning, true},
		{ErrCodeInvalidInput, CategoryValidation, SeverityError, false},
		{ErrCodeInputTooLarge, CategoryValidation, SeverityError, false},
		{ErrCodeInternal, CategoryInternal, SeverityError, false},
		{ErrCodeIndexFailed, CategoryInternal, SeverityError, false},
		{"bogus", CategoryInternal, SeverityError, false},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			err := New(tt.code, "test message", nil)
			assert.Equal(t, tt.wantCategory, err.Category)
			assert.Equal(t, tt.wantSeverity, err.Severity)
			assert.Equal(t, tt.wantRetryable, err.Retryable)
			assert.Equal(t, tt.wantRetryable, IsRetryable(err))
			assert.Equal(t, tt.wantSeverity == SeverityFatal, IsFatal(err))
		})
	}
}

func TestWrap(t *testing.T) {
	// Given: a standard error
	originalErr := errors.New("something went wrong")

	// When: wrapping with a code
	amanErr := Wrap(ErrCodeInternal, originalErr)

	// Then
	require.NotNil(t, amanErr)
	assert.Equal(t, ErrCodeInternal, amanErr.Code)
	assert.Equal(t, "something went wrong", amanErr.Message)
	assert.Equal(t, originalErr, amanErr.Cause)
	assert.Nil(t, Wrap(ErrCodeInternal, nil))
}

func TestConstructors_SetCategories(t *testing.T) {
	assert.Equal(t, CategoryConfig, ConfigError("bad yaml", nil).Category)
	assert.Equal(t, CategoryValidation, ValidationError("empty", nil).Category)
}

func TestAccessors_FollowTheChain(t *testing.T) {
	// Given: an AmanError behind a plain wrap
	inner := New(ErrCodeResourceLocked, "results file is locked", nil)
	err := fmt.Errorf("writing results: %w", inner)

	// Then
	ae, ok := As(err)
	require.True(t, ok)
	assert.Same(t, inner, ae)
	assert.Equal(t, ErrCodeResourceLocked, GetCode(err))
	assert.Equal(t, CategoryIO, GetCategory(err))
	assert.True(t, IsRetryable(err))
}

func TestAccessors_StandardError(t *testing.T) {
	err := errors.New("plain")

	_, ok := As(err)
	assert.False(t, ok)
	assert.Empty(t, GetCode(err))
	assert.Empty(t, GetCategory(err))
	assert.False(t, IsRetryable(err))
	assert.False(t, IsFatal(nil))
}

func TestFileError_ClassifiesOSErrors(t *testing.T) {
	// Given: errors from the filesystem
	_, notExist := os.Open(filepath.Join(t.TempDir(), "missing.txt"))

	// When
	ae := FileError("missing.txt", notExist)

	// Then
	assert.Equal(t, ErrCodeFileNotFound, ae.Code)
	assert.Equal(t, "missing.txt", ae.Details["path"])
	assert.ErrorIs(t, ae, fs.ErrNotExist)

	perm := FileError("locked.txt", &fs.PathError{Op: "open", Path: "locked.txt", Err: fs.ErrPermission})
	assert.Equal(t, ErrCodeFilePermission, perm.Code)

	assert.Nil(t, FileError("x", nil))
}

func TestCorruptResource_IsFatal(t *testing.T) {
	ae := CorruptResource("lexicon.json", fmt.Errorf("unexpected EOF"))

	assert.Equal(t, ErrCodeResourceCorrupt, ae.Code)
	assert.True(t, IsFatal(ae))
	assert.NotEmpty(t, ae.Suggestion)
}

func TestAmanError_LogValue(t *testing.T) {
	// Given: a JSON logger
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	err := New(ErrCodeInputTooLarge, "too big", errors.New("limit 16")).
		WithDetail("path", "notes.txt")

	// When
	logger.Info("failed", slog.Any("error", err))

	// Then: the error is logged as a group
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	group, ok := entry["error"].(map[string]any)
	require.True(t, ok, "error should be a group: %s", buf.String())
	assert.Equal(t, ErrCodeInputTooLarge, group["code"])
	assert.Equal(t, "limit 16", group["cause"])
	assert.Equal(t, "notes.txt", group["path"])
}
