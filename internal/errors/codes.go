// Package errors provides structured error handling for amankeys.
//
// Error codes follow the pattern ERR_XXX_DESCRIPTION where:
//   - 1XX: Configuration errors
//   - 2XX: IO errors (input files, resource tables)
//   - 4XX: Validation errors
//   - 5XX: Internal errors
//
// The extraction pipeline itself never returns errors; these codes cover
// the edges around it (configuration, resource loading, CLI and MCP input).
package errors

// Category defines error categories for classification.
type Category string

const (
	CategoryConfig     Category = "CONFIG"
	CategoryIO         Category = "IO"
	CategoryValidation Category = "VALIDATION"
	CategoryInternal   Category = "INTERNAL"
)

// Severity defines error severity levels.
type Severity string

const (
	// SeverityFatal means the run cannot continue with this configuration.
	SeverityFatal Severity = "FATAL"
	// SeverityError means the operation failed.
	SeverityError Severity = "ERROR"
	// SeverityWarning means the operation may succeed if retried.
	SeverityWarning Severity = "WARNING"
)

const (
	ErrCodeConfigInvalid = "ERR_102_CONFIG_INVALID"

	ErrCodeFileNotFound    = "ERR_201_FILE_NOT_FOUND"
	ErrCodeFilePermission  = "ERR_202_FILE_PERMISSION"
	ErrCodeResourceCorrupt = "ERR_203_RESOURCE_CORRUPT"
	ErrCodeResourceLocked  = "ERR_204_RESOURCE_LOCKED"

	ErrCodeInvalidInput  = "ERR_401_INVALID_INPUT"
	ErrCodeInputTooLarge = "ERR_402_INPUT_TOO_LARGE"

	ErrCodeInternal    = "ERR_501_INTERNAL"
	ErrCodeIndexFailed = "ERR_502_INDEX_FAILED"
)

// codeInfo is the classification attached to a code.
type codeInfo struct {
	category  Category
	severity  Severity
	retryable bool
}

var registry = map[string]codeInfo{
	ErrCodeConfigInvalid: {CategoryConfig, SeverityFatal, false},

	ErrCodeFileNotFound:   {CategoryIO, SeverityError, false},
	ErrCodeFilePermission: {CategoryIO, SeverityError, false},
	// A malformed lexicon or dictionary fails every document.
	ErrCodeResourceCorrupt: {CategoryIO, SeverityFatal, false},
	// The results file frees up once the other writer finishes.
	ErrCodeResourceLocked: {CategoryIO, SeverityWarning, true},

	ErrCodeInvalidInput:  {CategoryValidation, SeverityError, false},
	ErrCodeInputTooLarge: {CategoryValidation, SeverityError, false},

	ErrCodeInternal:    {CategoryInternal, SeverityError, false},
	ErrCodeIndexFailed: {CategoryInternal, SeverityError, false},
}

// classify returns the registered classification of code. Unknown codes
// are internal errors.
func classify(code string) codeInfo {
	if info, ok := registry[code]; ok {
		return info
	}
	return codeInfo{category: CategoryInternal, severity: SeverityError}
}
