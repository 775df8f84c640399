package algorithms

import (
	"testing"

	"github.com/hooplink/hooplink/pkg/graph"
	"github.com/hooplink/hooplink/pkg/roster"
)

// buildGraph assembles a unit-weight graph from player pairs
func buildGraph(t *testing.T, pairs [][2]string) *graph.Graph {
	t.Helper()

	edges := make([]roster.TeammateEdge, 0, len(pairs))
	for _, p := range pairs {
		a, b := p[0], p[1]
		if b < a {
			a, b = b, a
		}
		edges = append(edges, roster.TeammateEdge{A: a, B: b, Weight: 1})
	}
	return graph.Assemble(edges, graph.AssembleOptions{}, nil)
}

// twoCliquesBridged builds two 4-cliques joined by a single bridge edge.
// Expected community structure: one community per clique.
func twoCliquesBridged(t *testing.T) *graph.Graph {
	t.Helper()

	pairs := [][2]string{
		{"a1", "a2"}, {"a1", "a3"}, {"a1", "a4"},
		{"a2", "a3"}, {"a2", "a4"}, {"a3", "a4"},
		{"b1", "b2"}, {"b1", "b3"}, {"b1", "b4"},
		{"b2", "b3"}, {"b2", "b4"}, {"b3", "b4"},
		{"a4", "b1"}, // bridge
	}
	return buildGraph(t, pairs)
}
