package pipeline

import (
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"github.com/kbukum/dataflow/errors"
)

// Definition is the YAML form of a pipeline: named value handles plus a
// tree of node definitions referring to them by name.
type Definition struct {
	Name   string     `yaml:"name"`
	Values []ValueDef `yaml:"values"`
	Nodes  []NodeDef  `yaml:"nodes"`
}

// ValueDef declares a value handle by name. Kind is "collection"
// (default) or "view". Coder and windowing name registered strategies.
type ValueDef struct {
	Name      string `yaml:"name"`
	Kind      string `yaml:"kind"`
	Coder     string `yaml:"coder"`
	Windowing string `yaml:"windowing"`
}

// NodeDef declares a node. Composite nodes carry nested Nodes and no
// operation fields; leaves carry a kind plus input/output value names.
type NodeDef struct {
	Name       string    `yaml:"name"`
	Kind       string    `yaml:"kind"`
	Inputs     []string  `yaml:"inputs"`
	Outputs    []string  `yaml:"outputs"`
	SideInputs []string  `yaml:"side_inputs"`
	View       string    `yaml:"view"`
	Nodes      []NodeDef `yaml:"nodes"`
}

// Loader loads pipeline definitions by name.
type Loader interface {
	Load(name string) (*Definition, error)
}

// FileLoader loads pipeline definitions from YAML files on disk.
type FileLoader struct {
	dirs []string
}

// NewFileLoader creates a loader that searches the given directories
// for pipeline YAML files.
func NewFileLoader(dirs ...string) *FileLoader {
	return &FileLoader{dirs: dirs}
}

// Load searches for {name}.yaml and {name}.yml in each directory.
func (l *FileLoader) Load(name string) (*Definition, error) {
	for _, dir := range l.dirs {
		for _, ext := range []string{".yaml", ".yml"} {
			path := filepath.Join(dir, name+ext)
			if def, err := loadDefinitionFile(path); err == nil {
				return def, nil
			}

			matches, _ := filepath.Glob(filepath.Join(dir, "**", name+ext))
			for _, match := range matches {
				if def, err := loadDefinitionFile(match); err == nil {
					return def, nil
				}
			}
		}
	}
	return nil, errors.NotFound("pipeline", name)
}

func loadDefinitionFile(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseDefinition(data)
}

// ParseDefinition decodes a YAML pipeline definition.
func ParseDefinition(data []byte) (*Definition, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, errors.InvalidPipeline("parsing definition").WithCause(err)
	}
	return &def, nil
}

// Build converts a definition into a pipeline tree, resolving coder and
// windowing names against the registry and minting fresh identity keys
// for every declared output.
func Build(def *Definition, registry *Registry) (*Pipeline, error) {
	if def.Name == "" {
		return nil, errors.InvalidPipeline("definition has no name")
	}

	values := make(map[string]Value, len(def.Values))
	for _, vd := range def.Values {
		if vd.Name == "" {
			return nil, errors.InvalidPipeline("value definition has no name")
		}
		if _, exists := values[vd.Name]; exists {
			return nil, errors.InvalidPipeline(fmt.Sprintf("duplicate value %q", vd.Name))
		}
		v, err := buildValue(vd, registry)
		if err != nil {
			return nil, err
		}
		values[vd.Name] = v
	}

	p := New(def.Name)
	for _, nd := range def.Nodes {
		if err := buildNode(p.Root(), nd, values); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func buildValue(vd ValueDef, registry *Registry) (Value, error) {
	coder, ok := registry.Coder(vd.Coder)
	if !ok {
		return nil, errors.NotFound("coder", vd.Coder)
	}
	windowing, ok := registry.Windowing(vd.Windowing)
	if !ok {
		return nil, errors.NotFound("windowing", vd.Windowing)
	}

	switch vd.Kind {
	case "", "collection":
		return NewCollection(vd.Name, coder, windowing), nil
	case "view":
		return NewView(vd.Name, "", coder, windowing), nil
	default:
		return nil, errors.InvalidPipeline(fmt.Sprintf("value %q has unknown kind %q", vd.Name, vd.Kind))
	}
}

func buildNode(parent *Node, nd NodeDef, values map[string]Value) error {
	if nd.Name == "" {
		return errors.InvalidPipeline("node definition has no name")
	}

	if len(nd.Nodes) > 0 {
		if nd.Kind != "" || len(nd.Inputs) > 0 || len(nd.Outputs) > 0 {
			return errors.InvalidPipeline(fmt.Sprintf("composite node %q must not declare operation fields", nd.Name))
		}
		composite := parent.Composite(nd.Name)
		for _, child := range nd.Nodes {
			if err := buildNode(composite, child, values); err != nil {
				return err
			}
		}
		return nil
	}

	kind, err := parseKind(nd)
	if err != nil {
		return err
	}

	spec := NodeSpec{Kind: kind}
	for _, name := range nd.Inputs {
		v, err := lookupValue(values, name)
		if err != nil {
			return err
		}
		spec.Inputs = append(spec.Inputs, v)
	}
	for _, name := range nd.Outputs {
		v, err := lookupValue(values, name)
		if err != nil {
			return err
		}
		spec.Outputs = append(spec.Outputs, Output{Key: NewKey(), Value: v})
	}
	for _, name := range nd.SideInputs {
		v, err := lookupValue(values, name)
		if err != nil {
			return err
		}
		spec.SideInputs = append(spec.SideInputs, v)
	}
	if kind == KindCreateView {
		if nd.View == "" {
			return errors.InvalidPipeline(fmt.Sprintf("view-creation node %q declares no view", nd.Name))
		}
		v, err := lookupValue(values, nd.View)
		if err != nil {
			return err
		}
		view, ok := v.(*View)
		if !ok {
			return errors.InvalidPipeline(fmt.Sprintf("node %q: value %q is not a view", nd.Name, nd.View))
		}
		spec.View = view
	}

	parent.Apply(nd.Name, spec)
	return nil
}

func parseKind(nd NodeDef) (OpKind, error) {
	switch nd.Kind {
	case "", "ordinary":
		return KindOrdinary, nil
	case "multi_output":
		return KindMultiOutput, nil
	case "create_view":
		return KindCreateView, nil
	default:
		return KindOrdinary, errors.InvalidPipeline(fmt.Sprintf("node %q has unknown kind %q", nd.Name, nd.Kind))
	}
}

func lookupValue(values map[string]Value, name string) (Value, error) {
	if v, ok := values[name]; ok {
		return v, nil
	}
	return nil, errors.NotFound("value", name)
}
