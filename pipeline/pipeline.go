package pipeline

import (
	"fmt"

	"github.com/kbukum/dataflow/validation"
)

// Pipeline is the hierarchical dataflow program being translated.
type Pipeline struct {
	name string
	root *Node
}

// New creates an empty pipeline with an unnamed root composite.
func New(name string) *Pipeline {
	return &Pipeline{name: name, root: &Node{composite: true}}
}

// Name returns the pipeline identifier.
func (p *Pipeline) Name() string { return p.name }

// Root returns the root composite to build under.
func (p *Pipeline) Root() *Node { return p.root }

// Walk visits every leaf node in depth-first declaration order, the
// dependency order the author constructed. It stops at the first error.
func (p *Pipeline) Walk(fn func(*Node) error) error {
	return walk(p.root, fn)
}

func walk(n *Node, fn func(*Node) error) error {
	if !n.composite {
		return fn(n)
	}
	for _, child := range n.children {
		if err := walk(child, fn); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks the tree's structural contract: every leaf declares
// a name and kind-consistent fields, and every consumed handle is
// produced by an earlier leaf. A valid pipeline translates without
// resolution errors.
func (p *Pipeline) Validate() error {
	v := validation.New()
	produced := make(map[Value]bool)

	_ = p.Walk(func(n *Node) error {
		field := n.FullName()
		if field == "" {
			field = "node"
		}
		v.Required(field, n.Name())

		switch n.kind {
		case KindMultiOutput:
			if len(n.inputs) == 0 {
				v.AddError(field, "multi-output node requires a primary input")
			}
		case KindCreateView:
			if n.view == nil {
				v.AddError(field, "view-creation node requires a view")
			}
		default:
			if len(n.sideInputs) > 0 {
				v.AddError(field, "side inputs are only allowed on multi-output nodes")
			}
		}

		consumed := n.inputs
		if n.kind == KindMultiOutput {
			consumed = append(consumed[:len(consumed):len(consumed)], n.sideInputs...)
		}
		for _, in := range consumed {
			if in == nil {
				v.AddError(field, "nil input handle")
				continue
			}
			if !produced[in] {
				v.AddError(field, fmt.Sprintf("input %q has no earlier producer", in.Name()))
			}
		}

		for _, out := range n.outputs {
			if out.Value == nil {
				v.AddError(field, "nil output handle")
				continue
			}
			if out.Key == "" {
				v.AddError(field, fmt.Sprintf("output %q has no identity key", out.Value.Name()))
			}
			produced[out.Value] = true
		}
		if n.kind == KindCreateView && n.view != nil {
			produced[n.view] = true
		}
		return nil
	})

	return v.Error()
}
