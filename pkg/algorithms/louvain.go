package algorithms

import (
	"sort"

	"github.com/hooplink/hooplink/pkg/graph"
)

// Community is one detected community
type Community struct {
	ID      int      `json:"id"`
	Members []string `json:"members"`
	Size    int      `json:"size"`
	Density float64  `json:"density"` // Edge density within the community
}

// CommunityResult contains the detected partition
type CommunityResult struct {
	// Assignments maps every vertex to its community id (1-based)
	Assignments map[string]int `json:"assignments"`
	Communities []*Community   `json:"communities"`
	// Modularity is the quality of the partition on the original graph
	Modularity float64 `json:"modularity"`
}

// weighted working graph for the aggregation levels
type levelGraph struct {
	n         int
	neighbors [][]levelEdge
	selfLoop  []float64 // A_ii, twice the internal weight after aggregation
	m2        float64   // sum of weighted degrees, 2m
}

type levelEdge struct {
	to     int
	weight float64
}

// DetectCommunities partitions the graph by greedy multi-level modularity
// optimization (Louvain). Edge weights (shared team-seasons) count toward
// modularity. The result is deterministic: vertices are visited in ascending
// index order, candidate communities are scanned in ascending id order, and
// a move requires strictly positive gain, so on ties the lowest community id
// wins. Isolated vertices end up as singleton communities.
func DetectCommunities(g *graph.Graph) *CommunityResult {
	n := g.Order()
	if n == 0 {
		return &CommunityResult{Assignments: map[string]int{}}
	}

	lg := newLevelGraph(g)

	// assignment[v] = community of original vertex v, tracked across levels
	assignment := make([]int, n)
	for i := range assignment {
		assignment[i] = i
	}

	for {
		moved, communities := lg.localMove()
		if !moved {
			break
		}

		// Renumber level communities densely, lowest member first
		renumber := make(map[int]int, len(communities))
		for _, node := range sortedKeys(communities) {
			if _, ok := renumber[communities[node]]; !ok {
				renumber[communities[node]] = len(renumber)
			}
		}

		for v := range assignment {
			assignment[v] = renumber[communities[assignment[v]]]
		}

		lg = lg.aggregate(communities, renumber, len(renumber))
	}

	return buildCommunityResult(g, assignment)
}

func newLevelGraph(g *graph.Graph) *levelGraph {
	lg := &levelGraph{
		n:         g.Order(),
		neighbors: make([][]levelEdge, g.Order()),
		selfLoop:  make([]float64, g.Order()),
	}
	for _, e := range g.Edges() {
		w := float64(e.Weight)
		lg.neighbors[e.U] = append(lg.neighbors[e.U], levelEdge{to: e.V, weight: w})
		lg.neighbors[e.V] = append(lg.neighbors[e.V], levelEdge{to: e.U, weight: w})
		lg.m2 += 2 * w
	}
	return lg
}

// degree returns the weighted degree of node i including its self-loop
func (lg *levelGraph) degree(i int) float64 {
	d := lg.selfLoop[i]
	for _, e := range lg.neighbors[i] {
		d += e.weight
	}
	return d
}

// localMove runs repeated single-node move passes until no node moves.
// Returns whether any node moved and the final node-to-community map.
func (lg *levelGraph) localMove() (bool, map[int]int) {
	community := make(map[int]int, lg.n)
	sumTot := make([]float64, lg.n)
	degrees := make([]float64, lg.n)
	for i := 0; i < lg.n; i++ {
		community[i] = i
		degrees[i] = lg.degree(i)
		sumTot[i] = degrees[i]
	}

	if lg.m2 == 0 {
		return false, community
	}

	movedAny := false
	for {
		movedInPass := false

		for i := 0; i < lg.n; i++ {
			current := community[i]

			// Weight from i into each neighboring community
			neighWeight := make(map[int]float64)
			for _, e := range lg.neighbors[i] {
				if e.to == i {
					continue
				}
				neighWeight[community[e.to]] += e.weight
			}

			// Remove i from its community before evaluating gains
			sumTot[current] -= degrees[i]

			bestCommunity := current
			bestGain := neighWeight[current] - sumTot[current]*degrees[i]/lg.m2

			// Ascending community id scan with a strict improvement
			// requirement keeps ties on the lowest id
			candidates := make([]int, 0, len(neighWeight))
			for c := range neighWeight {
				candidates = append(candidates, c)
			}
			sort.Ints(candidates)

			for _, c := range candidates {
				if c == current {
					continue
				}
				gain := neighWeight[c] - sumTot[c]*degrees[i]/lg.m2
				if gain > bestGain || (gain == bestGain && c < bestCommunity) {
					bestGain = gain
					bestCommunity = c
				}
			}

			sumTot[bestCommunity] += degrees[i]
			if bestCommunity != current {
				community[i] = bestCommunity
				movedInPass = true
				movedAny = true
			}
		}

		if !movedInPass {
			break
		}
	}

	return movedAny, community
}

// aggregate collapses each community into a super-node, summing edge weights
// between communities and folding intra-community weight into self-loops.
func (lg *levelGraph) aggregate(community map[int]int, renumber map[int]int, k int) *levelGraph {
	next := &levelGraph{
		n:         k,
		neighbors: make([][]levelEdge, k),
		selfLoop:  make([]float64, k),
		m2:        lg.m2,
	}

	between := make([]map[int]float64, k)
	for i := range between {
		between[i] = make(map[int]float64)
	}

	for i := 0; i < lg.n; i++ {
		ci := renumber[community[i]]
		next.selfLoop[ci] += lg.selfLoop[i]
		for _, e := range lg.neighbors[i] {
			cj := renumber[community[e.to]]
			if ci == cj {
				// Each undirected edge is stored twice, so the two
				// traversals sum to A_ii's full contribution
				next.selfLoop[ci] += e.weight
			} else {
				between[ci][cj] += e.weight
			}
		}
	}

	for ci := range between {
		targets := make([]int, 0, len(between[ci]))
		for cj := range between[ci] {
			targets = append(targets, cj)
		}
		sort.Ints(targets)
		for _, cj := range targets {
			next.neighbors[ci] = append(next.neighbors[ci], levelEdge{to: cj, weight: between[ci][cj]})
		}
	}

	return next
}

// Modularity computes the weighted modularity of a vertex-to-community
// assignment on g, independently of how the assignment was produced.
func Modularity(g *graph.Graph, assignments map[string]int) float64 {
	m := g.TotalWeight()
	if m == 0 {
		return 0
	}

	internal := make(map[int]float64)
	degree := make(map[int]float64)

	for _, e := range g.Edges() {
		w := float64(e.Weight)
		cu := assignments[g.VertexID(e.U)]
		cv := assignments[g.VertexID(e.V)]
		degree[cu] += w
		degree[cv] += w
		if cu == cv {
			internal[cu] += w
		}
	}

	q := 0.0
	for c, deg := range degree {
		q += internal[c]/m - (deg/(2*m))*(deg/(2*m))
	}
	return q
}

// buildCommunityResult renumbers communities 1..K in order of their lowest
// vertex index and fills in member lists, densities and the modularity score.
func buildCommunityResult(g *graph.Graph, assignment []int) *CommunityResult {
	renumber := make(map[int]int)
	for v := 0; v < len(assignment); v++ {
		if _, ok := renumber[assignment[v]]; !ok {
			renumber[assignment[v]] = len(renumber) + 1
		}
	}

	result := &CommunityResult{
		Assignments: make(map[string]int, g.Order()),
		Communities: make([]*Community, len(renumber)),
	}

	members := make(map[int][]string)
	memberIdx := make(map[int][]int)
	for v := 0; v < len(assignment); v++ {
		id := renumber[assignment[v]]
		result.Assignments[g.VertexID(v)] = id
		members[id] = append(members[id], g.VertexID(v))
		memberIdx[id] = append(memberIdx[id], v)
	}

	for id := 1; id <= len(renumber); id++ {
		sort.Strings(members[id])
		result.Communities[id-1] = &Community{
			ID:      id,
			Members: members[id],
			Size:    len(members[id]),
			Density: communityDensity(g, memberIdx[id]),
		}
	}

	result.Modularity = Modularity(g, result.Assignments)
	return result
}

func communityDensity(g *graph.Graph, members []int) float64 {
	n := len(members)
	if n < 2 {
		return 0
	}

	inside := make(map[int]bool, n)
	for _, v := range members {
		inside[v] = true
	}

	internalEdges := 0
	for _, e := range g.Edges() {
		if inside[e.U] && inside[e.V] {
			internalEdges++
		}
	}

	return float64(2*internalEdges) / float64(n*(n-1))
}

func sortedKeys(m map[int]int) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
