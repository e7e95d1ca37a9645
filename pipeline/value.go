package pipeline

// Value is an abstract value handle: a reference to a collection or
// view produced and consumed by nodes. The translate package resolves
// handles to tags through its identity registry; a handle whose
// concrete type is neither *Collection nor *View is rejected there as
// an unsupported value kind.
type Value interface {
	Name() string
	Coder() Coder
	Windowing() Windowing
}

// Collection is a named, distributed dataset flowing between nodes.
type Collection struct {
	name      string
	coder     Coder
	windowing Windowing
}

// NewCollection creates a collection handle.
func NewCollection(name string, coder Coder, windowing Windowing) *Collection {
	return &Collection{name: name, coder: coder, windowing: windowing}
}

func (c *Collection) Name() string         { return c.name }
func (c *Collection) Coder() Coder         { return c.coder }
func (c *Collection) Windowing() Windowing { return c.windowing }

// View is a materialized, broadcastable side input derived from a
// collection. Unlike a collection, a view carries its own identity:
// the authoring expansion of view-creation operations reports an
// output handle that does not match the view, so translation keys the
// view under this identity instead.
type View struct {
	name      string
	key       Key
	coder     Coder
	windowing Windowing
}

// NewView creates a view handle with its own identity. An empty key is
// replaced with a fresh one.
func NewView(name string, key Key, coder Coder, windowing Windowing) *View {
	if key == "" {
		key = NewKey()
	}
	return &View{name: name, key: key, coder: coder, windowing: windowing}
}

func (v *View) Name() string         { return v.name }
func (v *View) Key() Key             { return v.key }
func (v *View) Coder() Coder         { return v.coder }
func (v *View) Windowing() Windowing { return v.windowing }
