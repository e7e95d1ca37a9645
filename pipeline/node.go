package pipeline

// OpKind classifies a node's operation. The classification is decided
// once at tree construction and carried as data, so translation is a
// total match over kinds instead of runtime type inspection.
type OpKind int

const (
	// KindOrdinary is a plain transform.
	KindOrdinary OpKind = iota
	// KindMultiOutput is an element-wise transform that may emit to
	// multiple output channels and declares auxiliary side inputs.
	KindMultiOutput
	// KindCreateView materializes a broadcastable side-input view from
	// a collection.
	KindCreateView
)

// String returns the kind's YAML/display name.
func (k OpKind) String() string {
	switch k {
	case KindMultiOutput:
		return "multi_output"
	case KindCreateView:
		return "create_view"
	default:
		return "ordinary"
	}
}

// Output is a declared (identity, output handle) pair.
type Output struct {
	Key   Key
	Value Value
}

// NodeSpec declares a leaf node's operation.
type NodeSpec struct {
	// Kind classifies the operation. Zero value is KindOrdinary.
	Kind OpKind
	// Inputs are the consumed value handles, in declaration order.
	Inputs []Value
	// Outputs are the produced (identity, handle) pairs, in order.
	Outputs []Output
	// SideInputs are auxiliary handles (KindMultiOutput only), in order.
	SideInputs []Value
	// View is the created view (KindCreateView only).
	View *View
}

// Node is a unit of the hierarchical pipeline tree. Composite nodes
// group children; leaf nodes carry a NodeSpec and are the units the
// translate package lowers.
type Node struct {
	name      string
	parent    *Node
	children  []*Node
	composite bool

	kind       OpKind
	inputs     []Value
	outputs    []Output
	sideInputs []Value
	view       *View
}

// Name returns the node's own display name.
func (n *Node) Name() string { return n.name }

// FullName returns the node's path from the root, joined with "/".
// The unnamed root itself does not contribute a segment.
func (n *Node) FullName() string {
	if n.parent == nil || (n.parent.parent == nil && n.parent.name == "") {
		return n.name
	}
	return n.parent.FullName() + "/" + n.name
}

// Kind returns the operation classification.
func (n *Node) Kind() OpKind { return n.kind }

// Inputs returns the declared input handles, in declaration order.
func (n *Node) Inputs() []Value { return n.inputs }

// Outputs returns the declared (identity, handle) pairs, in order.
func (n *Node) Outputs() []Output { return n.outputs }

// SideInputs returns the declared side-input handles, in order.
func (n *Node) SideInputs() []Value { return n.sideInputs }

// View returns the created view for KindCreateView nodes, nil otherwise.
func (n *Node) View() *View { return n.view }

// Children returns the node's children, in declaration order.
func (n *Node) Children() []*Node { return n.children }

// IsComposite reports whether the node groups children rather than
// declaring an operation.
func (n *Node) IsComposite() bool { return n.composite }

// Composite adds a child composite node and returns it.
func (n *Node) Composite(name string) *Node {
	child := &Node{name: name, parent: n, composite: true}
	n.children = append(n.children, child)
	return child
}

// Apply adds a leaf child node declaring the given operation and
// returns it. Structural problems are reported by Pipeline.Validate,
// not here.
func (n *Node) Apply(name string, spec NodeSpec) *Node {
	child := &Node{
		name:       name,
		parent:     n,
		kind:       spec.Kind,
		inputs:     spec.Inputs,
		outputs:    spec.Outputs,
		sideInputs: spec.SideInputs,
		view:       spec.View,
	}
	n.children = append(n.children, child)
	return child
}
