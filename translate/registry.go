package translate

import (
	"github.com/kbukum/dataflow/errors"
	"github.com/kbukum/dataflow/pipeline"
)

// Binding is one recorded value-to-key association.
type Binding struct {
	Value pipeline.Value
	Key   pipeline.Key
}

// TagRegistry is an append-only arena of value-to-key bindings. Every
// Bind is recorded with a monotonic index; lookups resolve to the most
// recent binding for a value, while the full history stays auditable
// through Entries.
type TagRegistry struct {
	entries []Binding
	latest  map[pipeline.Value]int // value -> index of newest binding
}

// NewTagRegistry creates an empty registry.
func NewTagRegistry() *TagRegistry {
	return &TagRegistry{latest: make(map[pipeline.Value]int)}
}

// Bind records that value is identified by key. Rebinding the same
// value appends a new entry and makes it the one lookups see.
func (r *TagRegistry) Bind(value pipeline.Value, key pipeline.Key) {
	r.latest[value] = len(r.entries)
	r.entries = append(r.entries, Binding{Value: value, Key: key})
}

// Lookup returns the newest key bound to value.
func (r *TagRegistry) Lookup(value pipeline.Value) (pipeline.Key, bool) {
	idx, ok := r.latest[value]
	if !ok {
		return "", false
	}
	return r.entries[idx].Key, true
}

// Resolve returns the tag for a previously bound value. An unbound
// value reports MISSING_TAG_MAPPING; a value of a kind translation
// does not model reports UNSUPPORTED_VALUE_KIND.
func (r *TagRegistry) Resolve(value pipeline.Value) (Tag, error) {
	key, ok := r.Lookup(value)
	if !ok {
		return Tag{}, errors.MissingTagMapping(value.Name())
	}
	switch value.(type) {
	case *pipeline.Collection, *pipeline.View:
		return tagFor(value, key), nil
	default:
		return Tag{}, errors.UnsupportedValueKind(value.Name(), value)
	}
}

// Entries returns the full binding history in bind order.
func (r *TagRegistry) Entries() []Binding { return r.entries }

// Len returns the number of recorded bindings, including superseded ones.
func (r *TagRegistry) Len() int { return len(r.entries) }
