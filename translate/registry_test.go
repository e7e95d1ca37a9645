package translate

import (
	"testing"

	"github.com/kbukum/dataflow/errors"
	"github.com/kbukum/dataflow/pipeline"
)

func testCollection(name string) *pipeline.Collection {
	return pipeline.NewCollection(name, pipeline.NamedCoder("bytes"), pipeline.NamedWindowing("global"))
}

func testView(name string) *pipeline.View {
	return pipeline.NewView(name, "", pipeline.NamedCoder("bytes"), pipeline.NamedWindowing("global"))
}

type alienValue struct{ name string }

func (a alienValue) Name() string                  { return a.name }
func (a alienValue) Coder() pipeline.Coder         { return pipeline.NamedCoder("bytes") }
func (a alienValue) Windowing() pipeline.Windowing { return pipeline.NamedWindowing("global") }

func TestBindAndLookup(t *testing.T) {
	r := NewTagRegistry()
	v := testCollection("a")

	if _, ok := r.Lookup(v); ok {
		t.Fatal("Lookup succeeded on empty registry")
	}

	r.Bind(v, "k1")
	key, ok := r.Lookup(v)
	if !ok || key != "k1" {
		t.Errorf("Lookup = %q, %v; want k1, true", key, ok)
	}
}

func TestRebindIsLastWriteWinsButAuditable(t *testing.T) {
	r := NewTagRegistry()
	v := testCollection("a")

	r.Bind(v, "k1")
	r.Bind(v, "k2")

	key, ok := r.Lookup(v)
	if !ok || key != "k2" {
		t.Errorf("Lookup = %q, %v; want k2, true", key, ok)
	}

	entries := r.Entries()
	if len(entries) != 2 {
		t.Fatalf("Entries has %d bindings, want 2", len(entries))
	}
	if entries[0].Key != "k1" || entries[1].Key != "k2" {
		t.Errorf("history = [%q, %q], want [k1, k2]", entries[0].Key, entries[1].Key)
	}
	if r.Len() != 2 {
		t.Errorf("Len = %d, want 2", r.Len())
	}
}

func TestResolveUnboundValue(t *testing.T) {
	r := NewTagRegistry()
	_, err := r.Resolve(testCollection("orphan"))
	if errors.CodeOf(err) != errors.ErrCodeMissingTagMapping {
		t.Errorf("code = %v, want %v", errors.CodeOf(err), errors.ErrCodeMissingTagMapping)
	}
}

func TestResolveBuildsTagFromValueMetadata(t *testing.T) {
	r := NewTagRegistry()
	v := testCollection("a")
	r.Bind(v, "k1")

	tag, err := r.Resolve(v)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if tag.Name != "a" || tag.Key != "k1" {
		t.Errorf("tag = %+v", tag)
	}
	if tag.Coder.Name() != "bytes" || tag.Windowing.Name() != "global" {
		t.Errorf("tag metadata = %q/%q", tag.Coder.Name(), tag.Windowing.Name())
	}
}

func TestResolveViewValue(t *testing.T) {
	r := NewTagRegistry()
	v := testView("side")
	r.Bind(v, v.Key())

	tag, err := r.Resolve(v)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if tag.Key != v.Key() {
		t.Errorf("tag.Key = %q, want %q", tag.Key, v.Key())
	}
}

func TestResolveUnsupportedValueKind(t *testing.T) {
	r := NewTagRegistry()
	v := alienValue{name: "weird"}
	r.Bind(v, "k1")

	_, err := r.Resolve(v)
	if errors.CodeOf(err) != errors.ErrCodeUnsupportedValueKind {
		t.Errorf("code = %v, want %v", errors.CodeOf(err), errors.ErrCodeUnsupportedValueKind)
	}
}

func TestNewTagRejectsEmptyKey(t *testing.T) {
	if _, err := NewTag("a", "", nil, nil); err == nil {
		t.Error("NewTag accepted an empty key")
	}
	tag, err := NewTag("a", "k", pipeline.NamedCoder("bytes"), pipeline.NamedWindowing("global"))
	if err != nil {
		t.Fatalf("NewTag: %v", err)
	}
	if tag.ID() != "k" {
		t.Errorf("ID = %q, want %q", tag.ID(), "k")
	}
}
