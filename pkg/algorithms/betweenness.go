package algorithms

import (
	"github.com/hooplink/hooplink/pkg/graph"
)

// BetweennessResult contains betweenness centrality for all vertices
type BetweennessResult struct {
	// Raw holds unnormalized scores: the number of shortest paths through
	// each vertex, each unordered pair counted once
	Raw map[string]float64 `json:"raw"`
	// Normalized divides Raw by (n-1)(n-2)/2, the maximum possible value
	// for an undirected graph
	Normalized map[string]float64 `json:"normalized"`
	// Ranked lists the top vertices by raw score
	Ranked []RankedPlayer `json:"ranked"`
}

// Betweenness computes betweenness centrality with Brandes' algorithm over
// unweighted shortest paths (edge weights are ignored for distance).
// Disconnected graphs are fine: unreachable pairs simply contribute nothing.
func Betweenness(g *graph.Graph, topN int) *BetweennessResult {
	n := g.Order()
	if n < 2 {
		// No pairs to route between
		return &BetweennessResult{
			Raw:        map[string]float64{},
			Normalized: map[string]float64{},
		}
	}

	raw := make([]float64, n)

	// Reused per-source working state
	stack := make([]int, 0, n)
	sigma := make([]float64, n)
	distance := make([]int, n)
	delta := make([]float64, n)
	predecessors := make([][]int, n)
	queue := make([]int, 0, n)

	for source := 0; source < n; source++ {
		stack = stack[:0]
		queue = queue[:0]
		for i := 0; i < n; i++ {
			sigma[i] = 0
			distance[i] = -1
			delta[i] = 0
			predecessors[i] = predecessors[i][:0]
		}

		sigma[source] = 1
		distance[source] = 0
		queue = append(queue, source)

		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			stack = append(stack, v)

			for _, w := range g.Neighbors(v) {
				if distance[w] < 0 {
					distance[w] = distance[v] + 1
					queue = append(queue, w)
				}
				if distance[w] == distance[v]+1 {
					sigma[w] += sigma[v]
					predecessors[w] = append(predecessors[w], v)
				}
			}
		}

		// Back-propagation of pair dependencies
		for i := len(stack) - 1; i >= 0; i-- {
			w := stack[i]
			for _, pred := range predecessors[w] {
				delta[pred] += (sigma[pred] / sigma[w]) * (1 + delta[w])
			}
			if w != source {
				raw[w] += delta[w]
			}
		}
	}

	// Each unordered pair was visited from both endpoints
	for i := range raw {
		raw[i] /= 2
	}

	result := &BetweennessResult{
		Raw:        make(map[string]float64, n),
		Normalized: make(map[string]float64, n),
	}

	maxPossible := float64((n-1)*(n-2)) / 2
	for i := 0; i < n; i++ {
		id := g.VertexID(i)
		result.Raw[id] = raw[i]
		if maxPossible > 0 {
			result.Normalized[id] = raw[i] / maxPossible
		} else {
			result.Normalized[id] = 0
		}
	}

	result.Ranked = topPlayers(result.Raw, topN)
	return result
}
