package errors

import (
	stderrors "errors"
	"fmt"
)

// Error is the unified translation error type.
type Error struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *Error) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new Error with the given code and message.
func New(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// CodeOf extracts the ErrorCode from err, unwrapping as needed.
// Returns an empty code when err is not an *Error.
func CodeOf(err error) ErrorCode {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Code
	}
	return ""
}

// --- Common Error Constructors ---

// MissingTagMapping creates a new Error for a value handle with no
// registered tag. The handle's producer was never focused, or failed to
// declare the output.
func MissingTagMapping(value string) *Error {
	return &Error{
		Code:    ErrCodeMissingTagMapping,
		Message: fmt.Sprintf("failed to find tag for value %q", value),
		Details: map[string]any{"value": value},
	}
}

// UnsupportedValueKind creates a new Error for a value handle whose
// runtime kind is neither a collection nor a view.
func UnsupportedValueKind(value string, kind any) *Error {
	return &Error{
		Code:    ErrCodeUnsupportedValueKind,
		Message: fmt.Sprintf("unexpected value kind %T for %q", kind, value),
		Details: map[string]any{"value": value, "kind": fmt.Sprintf("%T", kind)},
	}
}

// MissingCurrentNode creates a new Error for a query issued while no
// node is focused.
func MissingCurrentNode(query string) *Error {
	return &Error{
		Code:    ErrCodeMissingCurrentNode,
		Message: fmt.Sprintf("%s called with no node focused", query),
		Details: map[string]any{"query": query},
	}
}

// MultipleOutputs creates a new Error for a sole-output query against a
// node declaring a different number of outputs.
func MultipleOutputs(node string, count int) *Error {
	return &Error{
		Code:    ErrCodeMultipleOutputs,
		Message: fmt.Sprintf("node %q declares %d outputs, expected exactly one", node, count),
		Details: map[string]any{"node": node, "outputs": count},
	}
}

// GraphCycle creates a new Error for a cyclic step graph.
func GraphCycle(visited, total int) *Error {
	return &Error{
		Code:    ErrCodeGraphCycle,
		Message: fmt.Sprintf("cycle detected, ordered %d of %d steps", visited, total),
		Details: map[string]any{"ordered": visited, "total": total},
	}
}

// InvalidPipeline creates a new Error for a malformed pipeline definition.
func InvalidPipeline(reason string) *Error {
	return &Error{Code: ErrCodeInvalidPipeline, Message: reason}
}

// Validation creates a new Error for invalid configuration or options.
func Validation(message string) *Error {
	return &Error{Code: ErrCodeInvalidInput, Message: message}
}

// NotFound creates a new Error for a named resource that was not found.
func NotFound(resource, name string) *Error {
	return &Error{
		Code:    ErrCodeNotFound,
		Message: fmt.Sprintf("%s %q not found", resource, name),
		Details: map[string]any{"resource": resource, "name": name},
	}
}
