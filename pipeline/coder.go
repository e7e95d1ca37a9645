package pipeline

// Coder is an opaque encoding strategy for values on an edge. The kit
// never inspects it beyond its name; it is carried by reference onto
// tags for the execution engine to use.
type Coder interface {
	Name() string
}

// Windowing is an opaque grouping/windowing policy governing how
// elements on an edge are grouped over time and keys. Carried by
// reference, like Coder.
type Windowing interface {
	Name() string
}

// NamedCoder returns a Coder that carries only a name. Concrete
// encoding behavior belongs to the execution engine.
func NamedCoder(name string) Coder {
	return namedCoder(name)
}

type namedCoder string

func (c namedCoder) Name() string { return string(c) }

// NamedWindowing returns a Windowing that carries only a name.
func NamedWindowing(name string) Windowing {
	return namedWindowing(name)
}

type namedWindowing string

func (w namedWindowing) Name() string { return string(w) }
