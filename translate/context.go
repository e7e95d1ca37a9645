package translate

import (
	"github.com/kbukum/dataflow/config"
	"github.com/kbukum/dataflow/errors"
	"github.com/kbukum/dataflow/graph"
	"github.com/kbukum/dataflow/logger"
	"github.com/kbukum/dataflow/pipeline"
)

// NodeScope exposes the tag queries for one focused leaf node. It is a
// pure view: all mutation happened when the node was focused, so a
// scope can be queried in any order, any number of times.
type NodeScope struct {
	node     *pipeline.Node
	registry *TagRegistry
}

// Node returns the focused node.
func (s *NodeScope) Node() *pipeline.Node { return s.node }

// StepName returns the node's full path name, used as the step name in
// lowered graphs.
func (s *NodeScope) StepName() string { return s.node.FullName() }

// Input returns the node's primary input handle.
func (s *NodeScope) Input() (pipeline.Value, error) {
	inputs := s.node.Inputs()
	if len(inputs) == 0 {
		return nil, errors.Validation("node declares no input").WithDetail("node", s.StepName())
	}
	return inputs[0], nil
}

// Output returns the node's primary output handle.
func (s *NodeScope) Output() (pipeline.Value, error) {
	outputs := s.node.Outputs()
	if len(outputs) == 0 {
		return nil, errors.Validation("node declares no output").WithDetail("node", s.StepName())
	}
	return outputs[0].Value, nil
}

// InputTags resolves the tags a lowered step reads. For multi-output
// nodes the primary input tag comes first, followed by the side-input
// tags in declaration order; other kinds resolve their declared inputs.
func (s *NodeScope) InputTags() ([]Tag, error) {
	if s.node.Kind() == pipeline.KindMultiOutput {
		primary, err := s.Input()
		if err != nil {
			return nil, err
		}
		tags := make([]Tag, 0, 1+len(s.node.SideInputs()))
		tag, err := s.registry.Resolve(primary)
		if err != nil {
			return nil, err
		}
		tags = append(tags, tag)
		side, err := s.SideInputTags()
		if err != nil {
			return nil, err
		}
		return append(tags, side...), nil
	}
	return s.resolveAll(s.node.Inputs())
}

// SideInputTags resolves the node's side-input tags in declaration order.
func (s *NodeScope) SideInputTags() ([]Tag, error) {
	return s.resolveAll(s.node.SideInputs())
}

// OutputTags resolves the tags a lowered step writes. A view-creation
// node reports its view's own tag directly, regardless of what its
// output list claims; the declared output handle of such nodes is not
// trustworthy.
func (s *NodeScope) OutputTags() ([]Tag, error) {
	if s.node.Kind() == pipeline.KindCreateView {
		view := s.node.View()
		if view == nil {
			return nil, errors.InvalidPipeline("view-creation node has no view").WithDetail("node", s.StepName())
		}
		return []Tag{tagFor(view, view.Key())}, nil
	}
	tags := make([]Tag, 0, len(s.node.Outputs()))
	for _, out := range s.node.Outputs() {
		tag, err := s.registry.Resolve(out.Value)
		if err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

// OnlyOutputKey returns the identity key of the node's single output,
// failing when the node declares any other number of outputs.
func (s *NodeScope) OnlyOutputKey() (pipeline.Key, error) {
	outputs := s.node.Outputs()
	if len(outputs) != 1 {
		return "", errors.MultipleOutputs(s.StepName(), len(outputs))
	}
	return outputs[0].Key, nil
}

func (s *NodeScope) resolveAll(values []pipeline.Value) ([]Tag, error) {
	tags := make([]Tag, 0, len(values))
	for _, v := range values {
		tag, err := s.registry.Resolve(v)
		if err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

// UserGraphContext accumulates the execution graph while leaf nodes
// are translated one at a time. Focusing a node registers its output
// bindings; the returned scope answers that node's tag queries.
type UserGraphContext struct {
	registry *TagRegistry
	graph    *graph.Graph[Step, Tag]
	current  *NodeScope
	log      *logger.Logger
}

// NewUserGraphContext creates a context with an empty registry and graph.
func NewUserGraphContext(log *logger.Logger) *UserGraphContext {
	if log == nil {
		log = logger.NewNop()
	}
	return &UserGraphContext{
		registry: NewTagRegistry(),
		graph:    graph.New[Step](func(t Tag) string { return t.ID() }),
		log:      log.WithComponent("translate"),
	}
}

// SetCurrentNode focuses a leaf node, binding each declared output to
// its identity key. A view-creation node additionally binds the view
// it materializes under the view's own key, since its declared output
// handle does not name the view.
func (c *UserGraphContext) SetCurrentNode(n *pipeline.Node) *NodeScope {
	for _, out := range n.Outputs() {
		c.registry.Bind(out.Value, out.Key)
	}
	if n.Kind() == pipeline.KindCreateView {
		if view := n.View(); view != nil {
			c.registry.Bind(view, view.Key())
		}
	}
	c.current = &NodeScope{node: n, registry: c.registry}
	c.log.Debug("focused node", logger.Fields(
		logger.FieldNode, n.FullName(),
		logger.FieldKind, n.Kind().String(),
		logger.FieldCount, len(n.Outputs()),
	))
	return c.current
}

// CurrentNode returns the focused scope, or a MISSING_CURRENT_NODE
// error when no node has been focused yet.
func (c *UserGraphContext) CurrentNode() (*NodeScope, error) {
	if c.current == nil {
		return nil, errors.MissingCurrentNode("CurrentNode")
	}
	return c.current, nil
}

// StepName answers for the focused node.
func (c *UserGraphContext) StepName() (string, error) {
	if c.current == nil {
		return "", errors.MissingCurrentNode("StepName")
	}
	return c.current.StepName(), nil
}

// Input answers for the focused node.
func (c *UserGraphContext) Input() (pipeline.Value, error) {
	if c.current == nil {
		return nil, errors.MissingCurrentNode("Input")
	}
	return c.current.Input()
}

// Output answers for the focused node.
func (c *UserGraphContext) Output() (pipeline.Value, error) {
	if c.current == nil {
		return nil, errors.MissingCurrentNode("Output")
	}
	return c.current.Output()
}

// InputTags answers for the focused node.
func (c *UserGraphContext) InputTags() ([]Tag, error) {
	if c.current == nil {
		return nil, errors.MissingCurrentNode("InputTags")
	}
	return c.current.InputTags()
}

// SideInputTags answers for the focused node.
func (c *UserGraphContext) SideInputTags() ([]Tag, error) {
	if c.current == nil {
		return nil, errors.MissingCurrentNode("SideInputTags")
	}
	return c.current.SideInputTags()
}

// OutputTags answers for the focused node.
func (c *UserGraphContext) OutputTags() ([]Tag, error) {
	if c.current == nil {
		return nil, errors.MissingCurrentNode("OutputTags")
	}
	return c.current.OutputTags()
}

// OnlyOutputKey answers for the focused node.
func (c *UserGraphContext) OnlyOutputKey() (pipeline.Key, error) {
	if c.current == nil {
		return "", errors.MissingCurrentNode("OnlyOutputKey")
	}
	return c.current.OnlyOutputKey()
}

// Registry returns the shared tag registry.
func (c *UserGraphContext) Registry() *TagRegistry { return c.registry }

// Graph returns the execution graph under construction.
func (c *UserGraphContext) Graph() *graph.Graph[Step, Tag] { return c.graph }

// AddStep lowers a step into the execution graph.
func (c *UserGraphContext) AddStep(step Step, inputs, outputs []Tag) {
	c.graph.AddStep(step, inputs, outputs)
	c.log.Debug("added step", logger.Fields(
		logger.FieldStep, step.Name,
		logger.FieldKind, step.Kind.String(),
	))
}

// TranslationContext owns everything one translation run accumulates:
// the user graph context for ordinary lowering and a separate init
// graph for bootstrap steps that must run before the main execution.
type TranslationContext struct {
	opts *config.Options
	log  *logger.Logger
	user *UserGraphContext
	init *graph.Graph[Step, Tag]
}

// NewTranslationContext creates a context for one run. A nil opts gets
// defaults for an anonymous job.
func NewTranslationContext(opts *config.Options) *TranslationContext {
	if opts == nil {
		opts = config.Default("dataflow")
	}
	log := logger.New(&opts.Logging, opts.JobName)
	return &TranslationContext{
		opts: opts,
		log:  log,
		user: NewUserGraphContext(log),
		init: graph.New[Step](func(t Tag) string { return t.ID() }),
	}
}

// Options returns the run's configuration.
func (t *TranslationContext) Options() *config.Options { return t.opts }

// Logger returns the run's logger.
func (t *TranslationContext) Logger() *logger.Logger { return t.log }

// UserGraphContext returns the ordinary lowering context.
func (t *TranslationContext) UserGraphContext() *UserGraphContext { return t.user }

// InitGraph returns the bootstrap graph.
func (t *TranslationContext) InitGraph() *graph.Graph[Step, Tag] { return t.init }

// AddInitStep lowers a bootstrap step into the init graph.
func (t *TranslationContext) AddInitStep(step Step, inputs, outputs []Tag) {
	t.init.AddStep(step, inputs, outputs)
}
