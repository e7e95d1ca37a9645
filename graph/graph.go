package graph

import (
	"sort"

	"github.com/kbukum/dataflow/errors"
)

// Vertex pairs a step with the tags it reads and writes.
type Vertex[S, T any] struct {
	Step    S
	Inputs  []T
	Outputs []T
}

// Graph is an append-only flat graph of typed steps wired by tags.
// S is the step payload, T the tag type; tags are compared through the
// key function supplied at construction.
type Graph[S, T any] struct {
	key       func(T) string
	vertices  []Vertex[S, T]
	producers map[string]int // tag key -> producing vertex index
}

// New creates an empty graph. key must map a tag to a stable identity
// string; tags with equal keys refer to the same dataset.
func New[S, T any](key func(T) string) *Graph[S, T] {
	return &Graph[S, T]{
		key:       key,
		producers: make(map[string]int),
	}
}

// AddStep appends a step that reads inputs and writes outputs. A tag
// written by several steps is attributed to the latest writer.
func (g *Graph[S, T]) AddStep(step S, inputs, outputs []T) {
	idx := len(g.vertices)
	g.vertices = append(g.vertices, Vertex[S, T]{Step: step, Inputs: inputs, Outputs: outputs})
	for _, out := range outputs {
		g.producers[g.key(out)] = idx
	}
}

// Len returns the number of steps.
func (g *Graph[S, T]) Len() int { return len(g.vertices) }

// Steps returns the step payloads in insertion order.
func (g *Graph[S, T]) Steps() []S {
	steps := make([]S, len(g.vertices))
	for i, v := range g.vertices {
		steps[i] = v.Step
	}
	return steps
}

// Vertices returns the full vertex list in insertion order.
func (g *Graph[S, T]) Vertices() []Vertex[S, T] { return g.vertices }

// ProducerOf returns the step that writes the given tag.
func (g *Graph[S, T]) ProducerOf(tag T) (S, bool) {
	if idx, ok := g.producers[g.key(tag)]; ok {
		return g.vertices[idx].Step, true
	}
	var zero S
	return zero, false
}

// ReverseTopologicalOrder returns the steps so that every producer
// appears after all steps consuming its outputs. Steps whose outputs
// nobody reads come first; ties keep insertion order. A dependency
// cycle yields a GRAPH_CYCLE error.
func (g *Graph[S, T]) ReverseTopologicalOrder() ([]S, error) {
	n := len(g.vertices)

	// Reversed dependency edges: consumer -> producer.
	inDegree := make([]int, n)
	dependents := make([][]int, n)
	for i, v := range g.vertices {
		for _, in := range v.Inputs {
			p, ok := g.producers[g.key(in)]
			if !ok || p == i {
				continue // externally supplied input
			}
			inDegree[p]++
			dependents[i] = append(dependents[i], p)
		}
	}

	var queue []int
	for i := 0; i < n; i++ {
		if inDegree[i] == 0 {
			queue = append(queue, i)
		}
	}

	order := make([]S, 0, n)
	visited := 0
	for len(queue) > 0 {
		visited += len(queue)
		for _, i := range queue {
			order = append(order, g.vertices[i].Step)
		}

		var next []int
		for _, i := range queue {
			for _, p := range dependents[i] {
				inDegree[p]--
				if inDegree[p] == 0 {
					next = append(next, p)
				}
			}
		}
		sort.Ints(next)
		queue = next
	}

	if visited != n {
		return nil, errors.GraphCycle(visited, n)
	}
	return order, nil
}
