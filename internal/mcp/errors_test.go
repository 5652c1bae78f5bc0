package mcp

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"

	amerrors "github.com/Aman-CERP/amankeys/internal/errors"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"deadline", context.DeadlineExceeded, ErrCodeTimeout},
		{"canceled", fmt.Errorf("wrapped: %w", context.Canceled), ErrCodeTimeout},
		{"too large sentinel", ErrInputTooLarge, ErrCodeInputTooLarge},
		{"unknown tool", NewMethodNotFoundError("summarize"), ErrCodeMethodNotFound},
		{"wrapped invalid params", fmt.Errorf("call: %w", NewInvalidParamsError("text is required")), ErrCodeInvalidParams},
		{"unknown", errors.New("boom"), ErrCodeInternalError},
		{"aman too large", amerrors.New(amerrors.ErrCodeInputTooLarge, "big", nil), ErrCodeInputTooLarge},
		{"aman not found", amerrors.FileError("x", fmt.Errorf("open: %w", fs.ErrNotExist)), ErrCodeFileNotFound},
		{"aman corrupt", amerrors.CorruptResource("lex.txt", errors.New("bad line")), ErrCodeResourceCorrupt},
		{"aman locked", amerrors.New(amerrors.ErrCodeResourceLocked, "locked", nil), ErrCodeResourceLocked},
		{"aman validation", amerrors.ValidationError("bad", nil), ErrCodeInvalidParams},
		{"aman config", amerrors.ConfigError("bad", nil), ErrCodeInternalError},
		{"aman index failed", amerrors.New(amerrors.ErrCodeIndexFailed, "indexing failed", nil), ErrCodeInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapError(tt.err)

			assert.Equal(t, tt.code, got.Code)
			assert.NotEmpty(t, got.Message)
		})
	}
}

func TestMapError_Nil(t *testing.T) {
	assert.Nil(t, MapError(nil))
}

func TestMapError_PassesThroughMCPError(t *testing.T) {
	orig := NewInvalidParamsError("text is required")

	got := MapError(fmt.Errorf("wrapped: %w", orig))

	assert.Same(t, orig, got)
}

func TestMapError_IncludesSuggestion(t *testing.T) {
	err := amerrors.New(amerrors.ErrCodeInputTooLarge, "text is too big", nil).
		WithSuggestion("Split it.")

	got := MapError(err)

	assert.Equal(t, "text is too big Split it.", got.Message)
	assert.Equal(t, map[string]string{"code": amerrors.ErrCodeInputTooLarge}, got.Data)
}

func TestMapError_HidesUnknownErrorText(t *testing.T) {
	got := MapError(errors.New("open /etc/secret: permission denied"))

	assert.Equal(t, "Internal server error.", got.Message)
	assert.Nil(t, got.Data)
}

func TestMCPError_Error(t *testing.T) {
	err := &MCPError{Code: -32602, Message: "bad"}

	assert.Equal(t, "MCP error -32602: bad", err.Error())
}
