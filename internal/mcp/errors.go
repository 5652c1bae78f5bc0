// Package mcp implements the Model Context Protocol (MCP) server for amankeys.
package mcp

import (
	"context"
	"errors"
	"fmt"

	amerrors "github.com/Aman-CERP/amankeys/internal/errors"
)

// JSON-RPC error codes. The -3200x range is server defined.
const (
	ErrCodeResourceLocked  = -32001
	ErrCodeResourceCorrupt = -32002
	ErrCodeTimeout         = -32003
	ErrCodeFileNotFound    = -32004
	ErrCodeInputTooLarge   = -32005

	ErrCodeInvalidRequest = -32600
	ErrCodeMethodNotFound = -32601
	ErrCodeInvalidParams  = -32602
	ErrCodeInternalError  = -32603
)

// ErrInputTooLarge is the cause attached when text exceeds
// performance.max_input_bytes.
var ErrInputTooLarge = errors.New("input too large")

// MCPError is the error returned to MCP clients. Data carries the amankeys
// error code when the failure originated in an AmanError.
type MCPError struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Data    map[string]string `json:"data,omitempty"`
}

func (e *MCPError) Error() string {
	return fmt.Sprintf("MCP error %d: %s", e.Code, e.Message)
}

// Protocol codes for AmanError codes with a dedicated mapping. Other
// AmanErrors map by category.
var (
	codeByAmanCode = map[string]int{
		amerrors.ErrCodeInputTooLarge:   ErrCodeInputTooLarge,
		amerrors.ErrCodeFileNotFound:    ErrCodeFileNotFound,
		amerrors.ErrCodeResourceCorrupt: ErrCodeResourceCorrupt,
		amerrors.ErrCodeResourceLocked:  ErrCodeResourceLocked,
	}
	codeByCategory = map[amerrors.Category]int{
		amerrors.CategoryValidation: ErrCodeInvalidParams,
	}
)

// MapError converts any error into an MCPError. Existing MCPErrors in the
// chain are returned unchanged; unknown errors become internal errors
// without leaking their text.
func MapError(err error) *MCPError {
	if err == nil {
		return nil
	}

	var mcpErr *MCPError
	if errors.As(err, &mcpErr) {
		return mcpErr
	}
	if ae, ok := amerrors.As(err); ok {
		return fromAmanError(ae)
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return &MCPError{Code: ErrCodeTimeout, Message: "Request timed out."}
	case errors.Is(err, context.Canceled):
		return &MCPError{Code: ErrCodeTimeout, Message: "Request was canceled."}
	case errors.Is(err, ErrInputTooLarge):
		return &MCPError{Code: ErrCodeInputTooLarge, Message: "Input is too large to process."}
	default:
		return &MCPError{Code: ErrCodeInternalError, Message: "Internal server error."}
	}
}

func fromAmanError(ae *amerrors.AmanError) *MCPError {
	code, ok := codeByAmanCode[ae.Code]
	if !ok {
		code, ok = codeByCategory[ae.Category]
	}
	if !ok {
		code = ErrCodeInternalError
	}

	msg := ae.Message
	if ae.Suggestion != "" {
		msg += " " + ae.Suggestion
	}
	return &MCPError{Code: code, Message: msg, Data: map[string]string{"code": ae.Code}}
}

// NewInvalidParamsError reports a missing or malformed tool argument.
func NewInvalidParamsError(msg string) *MCPError {
	return &MCPError{Code: ErrCodeInvalidParams, Message: msg}
}

// NewMethodNotFoundError reports an unknown tool name.
func NewMethodNotFoundError(name string) *MCPError {
	return &MCPError{Code: ErrCodeMethodNotFound, Message: fmt.Sprintf("Tool '%s' not found.", name)}
}

// NewResourceNotFoundError reports an unknown resource URI.
func NewResourceNotFoundError(uri string) *MCPError {
	return &MCPError{Code: ErrCodeMethodNotFound, Message: fmt.Sprintf("Resource '%s' not found.", uri)}
}
