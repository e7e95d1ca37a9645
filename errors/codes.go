package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Tag resolution errors
const (
	// ErrCodeMissingTagMapping indicates a value handle was resolved
	// before its producer was registered.
	ErrCodeMissingTagMapping ErrorCode = "MISSING_TAG_MAPPING"
	// ErrCodeUnsupportedValueKind indicates a value handle is neither a
	// collection nor a view.
	ErrCodeUnsupportedValueKind ErrorCode = "UNSUPPORTED_VALUE_KIND"
)

// Driver sequencing errors
const (
	// ErrCodeMissingCurrentNode indicates a query was issued while no
	// node was focused.
	ErrCodeMissingCurrentNode ErrorCode = "MISSING_CURRENT_NODE"
	// ErrCodeMultipleOutputs indicates a sole-output query hit a node
	// with zero or more than one declared output.
	ErrCodeMultipleOutputs ErrorCode = "MULTIPLE_OUTPUTS_UNEXPECTED"
)

// Structural errors
const (
	// ErrCodeGraphCycle indicates the step graph contains a
	// producer/consumer cycle.
	ErrCodeGraphCycle ErrorCode = "GRAPH_CYCLE"
	// ErrCodeInvalidPipeline indicates a malformed pipeline definition.
	ErrCodeInvalidPipeline ErrorCode = "INVALID_PIPELINE"
	// ErrCodeNotFound indicates a named resource (coder, windowing,
	// pipeline file) was not found.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
	// ErrCodeInvalidInput indicates invalid configuration or options.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
)
