package translate

import (
	"github.com/kbukum/dataflow/errors"
	"github.com/kbukum/dataflow/pipeline"
)

// Tag identifies one produced dataset in a lowered graph: the identity
// key it was bound under plus the metadata a reader needs to decode
// and window it. Tags are plain values; copying one never copies data.
type Tag struct {
	Name      string
	Key       pipeline.Key
	Coder     pipeline.Coder
	Windowing pipeline.Windowing
}

// NewTag builds a tag, rejecting an empty identity key.
func NewTag(name string, key pipeline.Key, coder pipeline.Coder, windowing pipeline.Windowing) (Tag, error) {
	if key == "" {
		return Tag{}, errors.Validation("tag requires a non-empty key").WithDetail("name", name)
	}
	return Tag{Name: name, Key: key, Coder: coder, Windowing: windowing}, nil
}

// ID returns the tag's graph identity, the bound key.
func (t Tag) ID() string { return t.Key.String() }

// tagFor rebuilds a value's tag from its metadata and a bound key.
func tagFor(v pipeline.Value, key pipeline.Key) Tag {
	return Tag{Name: v.Name(), Key: key, Coder: v.Coder(), Windowing: v.Windowing()}
}

// Step is the payload lowered into a graph for one leaf node.
type Step struct {
	Name string
	Kind pipeline.OpKind
}
