package cmd

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	amerrors "github.com/Aman-CERP/amankeys/internal/errors"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"success", nil, ExitOK},
		{"plain error", errors.New("unknown flag: --bogus"), ExitFailure},
		{"invalid config", amerrors.ConfigError("bad min_occur", nil), ExitUsage},
		{"invalid input", amerrors.ValidationError("--limit must be non-negative", nil), ExitUsage},
		{"missing file", amerrors.New(amerrors.ErrCodeFileNotFound, "no such file", nil), ExitIO},
		{"wrapped io error", fmt.Errorf("read: %w", amerrors.New(amerrors.ErrCodeFilePermission, "denied", nil)), ExitIO},
		{"internal", amerrors.New(amerrors.ErrCodeInternal, "boom", nil), ExitFailure},
		{"interrupted", amerrors.New(amerrors.ErrCodeIndexFailed, "indexing was interrupted", context.Canceled), ExitInterrupted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}
