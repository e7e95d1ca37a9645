// Package errors provides unified error handling for the dataflow
// translation kit. It implements structured error types with
// machine-readable codes for every translation-time failure. All
// translation errors are deterministic given the same input tree, so
// no retryable classification exists: the fix is always upstream, in
// the tree construction or the node classification.
package errors
