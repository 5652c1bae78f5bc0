package cmd

import (
	"context"
	"errors"

	amerrors "github.com/Aman-CERP/amankeys/internal/errors"
)

// Process exit codes.
const (
	ExitOK          = 0
	ExitFailure     = 1
	ExitUsage       = 2
	ExitIO          = 3
	ExitInterrupted = 130
)

// ExitCode maps an error returned by Execute to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	if errors.Is(err, context.Canceled) {
		return ExitInterrupted
	}
	switch amerrors.GetCategory(err) {
	case amerrors.CategoryConfig, amerrors.CategoryValidation:
		return ExitUsage
	case amerrors.CategoryIO:
		return ExitIO
	default:
		return ExitFailure
	}
}
