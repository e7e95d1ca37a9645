// Package pipeline provides the hierarchical dataflow program model
// that the translate package lowers into execution graphs.
//
// A Pipeline is a tree of transform nodes. Composite nodes group
// children; leaf nodes are the translation units. Every leaf declares
// its input value handles, its (identity, output handle) pairs, and a
// fixed operation kind decided at construction time:
//
//   - KindOrdinary: plain transform, inputs in, outputs out.
//   - KindMultiOutput: element-wise transform that may emit to several
//     output channels and consumes auxiliary side inputs.
//   - KindCreateView: materializes a broadcastable side-input view
//     from a collection.
//
// Value handles are collections or views. Coders and windowing
// policies are opaque references; the kit only carries them onto tags.
//
// Pipelines are built programmatically:
//
//	p := pipeline.New("wordcount")
//	lines := pipeline.NewCollection("lines", utf8, global)
//	p.Root().Apply("Read", pipeline.NodeSpec{
//	    Outputs: []pipeline.Output{{Key: pipeline.NewKey(), Value: lines}},
//	})
//
// or loaded from a YAML definition via FileLoader, resolving coder and
// windowing names through a Registry.
package pipeline
