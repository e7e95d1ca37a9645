package pipeline

import (
	"testing"

	"github.com/kbukum/dataflow/errors"
)

func testCollection(name string) *Collection {
	return NewCollection(name, NamedCoder("bytes"), NamedWindowing("global"))
}

func testView(name string) *View {
	return NewView(name, "", NamedCoder("bytes"), NamedWindowing("global"))
}

func TestWalkVisitsLeavesInDeclarationOrder(t *testing.T) {
	p := New("walk")
	root := p.Root()

	a := testCollection("a")
	b := testCollection("b")

	root.Apply("read", NodeSpec{Outputs: []Output{{Key: NewKey(), Value: a}}})
	group := root.Composite("group")
	group.Apply("inner1", NodeSpec{Inputs: []Value{a}, Outputs: []Output{{Key: NewKey(), Value: b}}})
	group.Apply("inner2", NodeSpec{Inputs: []Value{b}})
	root.Apply("write", NodeSpec{Inputs: []Value{b}})

	var visited []string
	err := p.Walk(func(n *Node) error {
		visited = append(visited, n.FullName())
		return nil
	})
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}

	want := []string{"read", "group/inner1", "group/inner2", "write"}
	if len(visited) != len(want) {
		t.Fatalf("visited %v, want %v", visited, want)
	}
	for i := range want {
		if visited[i] != want[i] {
			t.Errorf("visited[%d] = %q, want %q", i, visited[i], want[i])
		}
	}
}

func TestWalkSkipsComposites(t *testing.T) {
	p := New("composite")
	outer := p.Root().Composite("outer")
	inner := outer.Composite("inner")
	inner.Apply("leaf", NodeSpec{Outputs: []Output{{Key: NewKey(), Value: testCollection("x")}}})

	count := 0
	_ = p.Walk(func(n *Node) error {
		count++
		if n.IsComposite() {
			t.Errorf("Walk visited composite %q", n.FullName())
		}
		return nil
	})
	if count != 1 {
		t.Errorf("visited %d leaves, want 1", count)
	}
}

func TestValidateAcceptsOrderedPipeline(t *testing.T) {
	p := New("ok")
	root := p.Root()

	a := testCollection("a")
	v := testView("v")
	b := testCollection("b")
	c := testCollection("c")

	root.Apply("read", NodeSpec{Outputs: []Output{{Key: NewKey(), Value: a}}})
	root.Apply("as_view", NodeSpec{
		Kind:    KindCreateView,
		Inputs:  []Value{a},
		Outputs: []Output{{Key: NewKey(), Value: a}},
		View:    v,
	})
	root.Apply("pardo", NodeSpec{
		Kind:       KindMultiOutput,
		Inputs:     []Value{a},
		SideInputs: []Value{v},
		Outputs:    []Output{{Key: NewKey(), Value: b}, {Key: NewKey(), Value: c}},
	})
	root.Apply("write", NodeSpec{Inputs: []Value{b, c}})

	if err := p.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestValidateRejectsConsumerBeforeProducer(t *testing.T) {
	p := New("disordered")
	root := p.Root()

	a := testCollection("a")
	root.Apply("write", NodeSpec{Inputs: []Value{a}})
	root.Apply("read", NodeSpec{Outputs: []Output{{Key: NewKey(), Value: a}}})

	err := p.Validate()
	if err == nil {
		t.Fatal("Validate accepted consumer before producer")
	}
	if errors.CodeOf(err) != errors.ErrCodeInvalidInput {
		t.Errorf("code = %v, want %v", errors.CodeOf(err), errors.ErrCodeInvalidInput)
	}
}

func TestValidateRejectsSideInputsOnOrdinaryNode(t *testing.T) {
	p := New("bad-side")
	root := p.Root()

	a := testCollection("a")
	v := testView("v")
	root.Apply("read", NodeSpec{Outputs: []Output{{Key: NewKey(), Value: a}}})
	root.Apply("as_view", NodeSpec{Kind: KindCreateView, Inputs: []Value{a}, View: v})
	root.Apply("step", NodeSpec{Inputs: []Value{a}, SideInputs: []Value{v}})

	if err := p.Validate(); err == nil {
		t.Fatal("Validate accepted side inputs on ordinary node")
	}
}

func TestValidateRejectsViewNodeWithoutView(t *testing.T) {
	p := New("bad-view")
	root := p.Root()

	a := testCollection("a")
	root.Apply("read", NodeSpec{Outputs: []Output{{Key: NewKey(), Value: a}}})
	root.Apply("as_view", NodeSpec{Kind: KindCreateView, Inputs: []Value{a}})

	if err := p.Validate(); err == nil {
		t.Fatal("Validate accepted view-creation node without a view")
	}
}

func TestValidateCountsViewAsProduced(t *testing.T) {
	p := New("view-produced")
	root := p.Root()

	a := testCollection("a")
	v := testView("v")

	// The view node only declares the view through its View field; a
	// later consumer must still see it as produced.
	root.Apply("read", NodeSpec{Outputs: []Output{{Key: NewKey(), Value: a}}})
	root.Apply("as_view", NodeSpec{Kind: KindCreateView, Inputs: []Value{a}, View: v})
	root.Apply("pardo", NodeSpec{Kind: KindMultiOutput, Inputs: []Value{a}, SideInputs: []Value{v}})

	if err := p.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestFullNameExcludesRoot(t *testing.T) {
	p := New("names")
	outer := p.Root().Composite("outer")
	leaf := outer.Apply("leaf", NodeSpec{})

	if got := leaf.FullName(); got != "outer/leaf" {
		t.Errorf("FullName = %q, want %q", got, "outer/leaf")
	}
}

func TestViewMintsKeyWhenEmpty(t *testing.T) {
	v := testView("v")
	if v.Key() == "" {
		t.Error("NewView with empty key did not mint one")
	}

	explicit := NewView("w", Key("fixed"), NamedCoder("bytes"), NamedWindowing("global"))
	if explicit.Key() != "fixed" {
		t.Errorf("Key = %q, want %q", explicit.Key(), "fixed")
	}
}
