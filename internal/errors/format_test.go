package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatForCLI_IncludesHintAndCode(t *testing.T) {
	// Given: an error with a suggestion and a detail
	err := New(ErrCodeFileNotFound, "file not found", nil).
		WithDetail("path", "doc.txt").
		WithSuggestion("Check the path")

	// When
	result := FormatForCLI(err)

	// Then
	assert.Equal(t, "Error: file not found\n"+
		"  path: doc.txt\n"+
		"  Hint: Check the path\n"+
		"  Code: ERR_201_FILE_NOT_FOUND\n", result)
}

func TestFormatForCLI_ShowsDistinctCause(t *testing.T) {
	err := ConfigError("failed to load configuration", errors.New("yaml: line 3: mapping values are not allowed"))

	result := FormatForCLI(fmt.Errorf("startup: %w", err))

	assert.Contains(t, result, "Error: failed to load configuration\n")
	assert.Contains(t, result, "Cause: yaml: line 3")
	assert.Contains(t, result, ErrCodeConfigInvalid)
}

func TestFormatForCLI_StandardErrorIsWrapped(t *testing.T) {
	result := FormatForCLI(errors.New("boom"))

	assert.Equal(t, "Error: boom\n  Code: ERR_501_INTERNAL\n", result)
	assert.Empty(t, FormatForCLI(nil))
}
