package graph

import (
	"fmt"
	"strings"
)

// Mermaid renders the graph as a Mermaid flowchart. label names each
// step; edges point from producer to consumer and carry the tag key.
func (g *Graph[S, T]) Mermaid(label func(S) string) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	ids := make([]string, len(g.vertices))
	for i, v := range g.vertices {
		ids[i] = fmt.Sprintf("s%d", i)
		sb.WriteString(fmt.Sprintf("    %s[\"%s\"]\n", ids[i], escapeMermaid(label(v.Step))))
	}

	for i, v := range g.vertices {
		for _, in := range v.Inputs {
			key := g.key(in)
			p, ok := g.producers[key]
			if !ok || p == i {
				continue
			}
			sb.WriteString(fmt.Sprintf("    %s -- \"%s\" --> %s\n", ids[p], escapeMermaid(key), ids[i]))
		}
	}

	return sb.String()
}

func escapeMermaid(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}
