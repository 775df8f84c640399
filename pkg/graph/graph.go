// Package graph holds the simple undirected teammate graph the analysis
// stages run on. Vertices are player identifiers; construction removes
// self-loops and parallel edges, and iteration order is deterministic
// (vertices lexically sorted, adjacency ascending).
package graph

import (
	"sort"
)

// Edge is one undirected edge between vertex indices U < V
type Edge struct {
	U      int
	V      int
	Weight int
}

// Graph is an immutable simple undirected graph
type Graph struct {
	vertices []string
	index    map[string]int
	adj      [][]int
	edges    []Edge
}

// New builds a graph directly from vertex identifiers and index pairs,
// applying the same simplification as Assemble: self-loops and duplicate
// undirected edges are dropped. Vertices may be isolated here; the roster
// path never produces those, but callers constructing graphs by hand can.
func New(vertices []string, edges []Edge) *Graph {
	sorted := make([]string, len(vertices))
	copy(sorted, vertices)
	sort.Strings(sorted)

	index := make(map[string]int, len(sorted))
	for i, v := range sorted {
		index[v] = i
	}

	g := &Graph{
		vertices: sorted,
		index:    index,
		adj:      make([][]int, len(sorted)),
	}

	seen := make(map[[2]int]bool, len(edges))
	for _, e := range edges {
		u, v := e.U, e.V
		if u == v || u < 0 || v < 0 || u >= len(vertices) || v >= len(vertices) {
			continue
		}
		// Incoming indices refer to the caller's vertex order
		ui, vi := index[vertices[u]], index[vertices[v]]
		if vi < ui {
			ui, vi = vi, ui
		}
		if seen[[2]int{ui, vi}] {
			continue
		}
		seen[[2]int{ui, vi}] = true
		g.edges = append(g.edges, Edge{U: ui, V: vi, Weight: e.Weight})
		g.adj[ui] = append(g.adj[ui], vi)
		g.adj[vi] = append(g.adj[vi], ui)
	}

	sort.Slice(g.edges, func(i, j int) bool {
		if g.edges[i].U != g.edges[j].U {
			return g.edges[i].U < g.edges[j].U
		}
		return g.edges[i].V < g.edges[j].V
	})
	for i := range g.adj {
		sort.Ints(g.adj[i])
	}

	return g
}

// Order returns the number of vertices
func (g *Graph) Order() int { return len(g.vertices) }

// Size returns the number of edges
func (g *Graph) Size() int { return len(g.edges) }

// Vertices returns the vertex identifiers in their canonical order
func (g *Graph) Vertices() []string {
	out := make([]string, len(g.vertices))
	copy(out, g.vertices)
	return out
}

// VertexID returns the identifier for a vertex index
func (g *Graph) VertexID(i int) string { return g.vertices[i] }

// IndexOf returns the vertex index for an identifier
func (g *Graph) IndexOf(id string) (int, bool) {
	i, ok := g.index[id]
	return i, ok
}

// Neighbors returns the adjacent vertex indices of i in ascending order.
// The returned slice is shared; callers must not mutate it.
func (g *Graph) Neighbors(i int) []int { return g.adj[i] }

// Degree returns the number of neighbors of vertex i
func (g *Graph) Degree(i int) int { return len(g.adj[i]) }

// Edges returns the edge list sorted by (U, V).
// The returned slice is shared; callers must not mutate it.
func (g *Graph) Edges() []Edge { return g.edges }

// HasEdge reports whether vertices u and v are adjacent
func (g *Graph) HasEdge(u, v int) bool {
	neighbors := g.adj[u]
	pos := sort.SearchInts(neighbors, v)
	return pos < len(neighbors) && neighbors[pos] == v
}

// TotalWeight returns the sum of edge weights
func (g *Graph) TotalWeight() float64 {
	total := 0.0
	for _, e := range g.edges {
		total += float64(e.Weight)
	}
	return total
}

// WeightedDegree returns the sum of weights of edges incident to vertex i
func (g *Graph) WeightedDegree(i int) float64 {
	total := 0.0
	for _, e := range g.edges {
		if e.U == i || e.V == i {
			total += float64(e.Weight)
		}
	}
	return total
}

// ConnectedComponents labels each vertex with a component id and returns the
// labels plus the component count. Ids are assigned in ascending order of
// the component's lowest vertex index.
func (g *Graph) ConnectedComponents() ([]int, int) {
	labels := make([]int, g.Order())
	for i := range labels {
		labels[i] = -1
	}

	count := 0
	for start := 0; start < g.Order(); start++ {
		if labels[start] >= 0 {
			continue
		}

		queue := []int{start}
		labels[start] = count
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			for _, w := range g.adj[v] {
				if labels[w] < 0 {
					labels[w] = count
					queue = append(queue, w)
				}
			}
		}
		count++
	}

	return labels, count
}
