package errors

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"log/slog"
	"sort"
)

// AmanError is the structured error type for amankeys.
type AmanError struct {
	// Code is the unique error code (e.g., "ERR_201_FILE_NOT_FOUND").
	Code    string
	Message string

	Category Category
	Severity Severity

	// Details carries context such as the offending path.
	Details map[string]string

	Cause      error
	Retryable  bool
	Suggestion string
}

// Error implements the error interface.
func (e *AmanError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for error chain support.
func (e *AmanError) Unwrap() error {
	return e.Cause
}

// Is matches another AmanError by code, so errors.Is(err, New(code, "", nil))
// tests for a code anywhere in the chain.
func (e *AmanError) Is(target error) bool {
	if t, ok := target.(*AmanError); ok {
		return e.Code == t.Code
	}
	return false
}

// LogValue renders the error as a group when passed to slog.
func (e *AmanError) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("code", e.Code),
		slog.String("message", e.Message),
		slog.String("severity", string(e.Severity)),
	}
	if e.Cause != nil {
		attrs = append(attrs, slog.String("cause", e.Cause.Error()))
	}
	for _, k := range e.detailKeys() {
		attrs = append(attrs, slog.String(k, e.Details[k]))
	}
	return slog.GroupValue(attrs...)
}

// detailKeys returns the detail keys in sorted order.
func (e *AmanError) detailKeys() []string {
	keys := make([]string, 0, len(e.Details))
	for k := range e.Details {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// WithDetail adds a key-value detail to the error.
func (e *AmanError) WithDetail(key, value string) *AmanError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// WithSuggestion adds an actionable suggestion for the user.
func (e *AmanError) WithSuggestion(suggestion string) *AmanError {
	e.Suggestion = suggestion
	return e
}

// New creates an AmanError classified by its code.
func New(code string, message string, cause error) *AmanError {
	info := classify(code)
	return &AmanError{
		Code:      code,
		Message:   message,
		Category:  info.category,
		Severity:  info.severity,
		Cause:     cause,
		Retryable: info.retryable,
	}
}

// Wrap creates an AmanError carrying err's message. It returns nil for a
// nil err.
func Wrap(code string, err error) *AmanError {
	if err == nil {
		return nil
	}
	return New(code, err.Error(), err)
}

// ConfigError reports an invalid configuration.
func ConfigError(message string, cause error) *AmanError {
	return New(ErrCodeConfigInvalid, message, cause)
}

// ValidationError reports invalid user input.
func ValidationError(message string, cause error) *AmanError {
	return New(ErrCodeInvalidInput, message, cause)
}

// FileError classifies an error from opening or reading path.
func FileError(path string, err error) *AmanError {
	if err == nil {
		return nil
	}
	var ae *AmanError
	switch {
	case stderrors.Is(err, fs.ErrNotExist):
		ae = New(ErrCodeFileNotFound, "file not found", err).
			WithSuggestion("Check the path or create the file")
	case stderrors.Is(err, fs.ErrPermission):
		ae = New(ErrCodeFilePermission, "permission denied", err).
			WithSuggestion("Check file permissions")
	default:
		ae = New(ErrCodeFileNotFound, "failed to read file", err)
	}
	return ae.WithDetail("path", path)
}

// CorruptResource reports a resource file that exists but cannot be parsed.
func CorruptResource(path string, cause error) *AmanError {
	return New(ErrCodeResourceCorrupt, "resource file is malformed", cause).
		WithDetail("path", path).
		WithSuggestion("Fix the file or remove it from the configuration to use the defaults")
}

// As returns the first AmanError in err's chain.
func As(err error) (*AmanError, bool) {
	var ae *AmanError
	if stderrors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

// IsRetryable reports whether err's chain holds a retryable AmanError.
func IsRetryable(err error) bool {
	ae, ok := As(err)
	return ok && ae.Retryable
}

// IsFatal reports whether err's chain holds a fatal AmanError.
func IsFatal(err error) bool {
	ae, ok := As(err)
	return ok && ae.Severity == SeverityFatal
}

// GetCode returns the code of the first AmanError in err's chain, or "".
func GetCode(err error) string {
	if ae, ok := As(err); ok {
		return ae.Code
	}
	return ""
}

// GetCategory returns the category of the first AmanError in err's chain,
// or "".
func GetCategory(err error) Category {
	if ae, ok := As(err); ok {
		return ae.Category
	}
	return ""
}
