package graph

import (
	"sort"

	"github.com/hooplink/hooplink/pkg/logging"
	"github.com/hooplink/hooplink/pkg/roster"
)

// AssembleOptions controls graph construction
type AssembleOptions struct {
	// TopK keeps only the K most-connected players, ranked by edge count
	// with ties broken lexically. Zero keeps everyone.
	TopK int
}

// Assemble builds the simple undirected graph from teammate edges. Self-loops
// are dropped and duplicate undirected edges collapse into the first one seen
// (the roster builder emits neither, this is defensive simplification). When
// TopK is set the result is the subgraph induced by the top-K players by
// degree; vertices left without edges disappear, since vertices only exist
// through edges.
func Assemble(edges []roster.TeammateEdge, opts AssembleOptions, logger logging.Logger) *Graph {
	if logger == nil {
		logger = logging.NewNopLogger()
	}

	// Simplify: self-loops out, one edge per unordered pair
	type key struct{ a, b string }
	unique := make(map[key]roster.TeammateEdge, len(edges))
	order := make([]key, 0, len(edges))
	for _, e := range edges {
		a, b := e.A, e.B
		if a == b {
			continue
		}
		if b < a {
			a, b = b, a
		}
		k := key{a: a, b: b}
		if _, dup := unique[k]; dup {
			continue
		}
		unique[k] = e
		order = append(order, k)
	}

	// Degree ranking over the simplified edge set
	degrees := make(map[string]int)
	for _, k := range order {
		degrees[k.a]++
		degrees[k.b]++
	}

	keep := selectTopK(degrees, opts.TopK)

	// Induced subgraph: both endpoints must survive the cap
	kept := make([]key, 0, len(order))
	for _, k := range order {
		if keep[k.a] && keep[k.b] {
			kept = append(kept, k)
		}
	}

	// Vertex set: players appearing in at least one surviving edge
	vertexSet := make(map[string]bool)
	for _, k := range kept {
		vertexSet[k.a] = true
		vertexSet[k.b] = true
	}
	vertices := make([]string, 0, len(vertexSet))
	for v := range vertexSet {
		vertices = append(vertices, v)
	}
	sort.Strings(vertices)

	index := make(map[string]int, len(vertices))
	for i, v := range vertices {
		index[v] = i
	}

	g := &Graph{
		vertices: vertices,
		index:    index,
		adj:      make([][]int, len(vertices)),
		edges:    make([]Edge, 0, len(kept)),
	}

	for _, k := range kept {
		u, v := index[k.a], index[k.b]
		if v < u {
			u, v = v, u
		}
		g.edges = append(g.edges, Edge{U: u, V: v, Weight: unique[k].Weight})
		g.adj[u] = append(g.adj[u], v)
		g.adj[v] = append(g.adj[v], u)
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

	logger.Info("assembled graph",
		logging.Stage("graph"),
		logging.Vertices(g.Order()),
		logging.Edges(g.Size()),
		logging.Int("top_k", opts.TopK))

	return g
}

// selectTopK returns the players retained under the top-K degree cap. Ranking
// is by degree descending, ties broken by ascending player id so the cut is
// reproducible.
func selectTopK(degrees map[string]int, k int) map[string]bool {
	keep := make(map[string]bool, len(degrees))
	if k <= 0 || len(degrees) <= k {
		for p := range degrees {
			keep[p] = true
		}
		return keep
	}

	type ranked struct {
		player string
		degree int
	}
	ranking := make([]ranked, 0, len(degrees))
	for p, d := range degrees {
		ranking = append(ranking, ranked{player: p, degree: d})
	}
	sort.Slice(ranking, func(i, j int) bool {
		if ranking[i].degree != ranking[j].degree {
			return ranking[i].degree > ranking[j].degree
		}
		return ranking[i].player < ranking[j].player
	})

	for _, r := range ranking[:k] {
		keep[r.player] = true
	}
	return keep
}
