package pipeline

import "github.com/google/uuid"

// Key is the unique identity of a value edge. It is assigned once, by
// the producer of the underlying value, and never reassigned. Two tags
// are equal iff their keys are equal.
type Key string

// NewKey generates a fresh unique Key.
func NewKey() Key {
	return Key(uuid.NewString())
}

// String returns the key as a string.
func (k Key) String() string { return string(k) }
