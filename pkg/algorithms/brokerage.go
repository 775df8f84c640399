package algorithms

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/hooplink/hooplink/pkg/graph"
)

// ErrPartitionMismatch is returned when the community partition does not
// cover the graph's vertex set exactly. Scoring against a mismatched
// partition would silently misattribute roles, so this is fatal.
var ErrPartitionMismatch = errors.New("partition does not match graph vertex set")

// Role identifies one of the five Gould-Fernandez brokerage roles
type Role int

const (
	// Coordinator brokers within its own community (A-A-A)
	Coordinator Role = iota
	// Consultant brokers between two members of another community (A-B-A)
	Consultant
	// Gatekeeper admits an outsider into its own community (A-B-B)
	Gatekeeper
	// Representative connects its own community to an outsider (A-A-B)
	Representative
	// Liaison brokers between two foreign communities (A-B-C)
	Liaison

	numRoles
)

// String returns the role name
func (r Role) String() string {
	switch r {
	case Coordinator:
		return "coordinator"
	case Consultant:
		return "consultant"
	case Gatekeeper:
		return "gatekeeper"
	case Representative:
		return "representative"
	case Liaison:
		return "liaison"
	default:
		return "unknown"
	}
}

// RoleCounts holds raw role counts for one vertex. Counts are over ordered
// pairs of neighbors, so on an undirected graph gatekeeper and representative
// mirror each other while coordinator, consultant and liaison count each
// unordered path twice.
type RoleCounts [numRoles]int

// Total returns the count across all roles
func (rc RoleCounts) Total() int {
	total := 0
	for _, c := range rc {
		total += c
	}
	return total
}

// BrokerageScore holds the z-scores for one vertex
type BrokerageScore struct {
	Player         string     `json:"player"`
	Raw            RoleCounts `json:"raw"`
	Coordinator    float64    `json:"coordinator"`
	Consultant     float64    `json:"consultant"`
	Gatekeeper     float64    `json:"gatekeeper"`
	Representative float64    `json:"representative"`
	Liaison        float64    `json:"liaison"`
	Total          float64    `json:"total"`
}

// BrokerageResult contains brokerage scores for all vertices
type BrokerageResult struct {
	Scores []BrokerageScore `json:"scores"`
	// Ranked lists the top vertices by total z-score
	Ranked []RankedPlayer `json:"ranked"`
}

// BrokerageOptions controls the null model and reporting
type BrokerageOptions struct {
	// Permutations is the number of random label assignments sampled for
	// the null model
	Permutations int
	// Seed fixes the permutation RNG so runs are reproducible
	Seed int64
	// Precision is the number of decimal digits z-scores are rounded to
	Precision int
	// TopN bounds the ranked output
	TopN int
}

// DefaultBrokerageOptions returns the standard settings
func DefaultBrokerageOptions() BrokerageOptions {
	return BrokerageOptions{
		Permutations: 500,
		Seed:         1,
		Precision:    2,
		TopN:         25,
	}
}

// Brokerage computes Gould-Fernandez brokerage roles for every vertex.
//
// For each vertex b and each ordered pair (a, c) of distinct neighbors of b,
// the triad is classified by community membership:
//
//	a, b, c all same                -> Coordinator
//	a, c same; b different          -> Consultant
//	b, c same; a different          -> Gatekeeper
//	a, b same; c different          -> Representative
//	a, b, c all different           -> Liaison
//
// This mapping is fixed: the Gatekeeper/Representative labels follow the
// pattern table above, not any library's column order.
//
// Raw counts are normalized to z-scores against a null model that randomly
// reassigns community labels while preserving community sizes: the label
// vector is permuted Permutations times with a seeded RNG and the empirical
// mean and standard deviation per role per vertex form the z-transform. The
// total z-score is the sum of the five role z-scores.
func Brokerage(g *graph.Graph, partition *CommunityResult, opts BrokerageOptions) (*BrokerageResult, error) {
	if opts.Permutations <= 0 {
		opts.Permutations = DefaultBrokerageOptions().Permutations
	}

	n := g.Order()

	// The partition must cover every vertex exactly
	if len(partition.Assignments) != n {
		return nil, fmt.Errorf("%w: %d vertices, %d assignments",
			ErrPartitionMismatch, n, len(partition.Assignments))
	}
	labels := make([]int, n)
	for i := 0; i < n; i++ {
		id := g.VertexID(i)
		community, ok := partition.Assignments[id]
		if !ok {
			return nil, fmt.Errorf("%w: vertex %q has no community", ErrPartitionMismatch, id)
		}
		labels[i] = community
	}

	observed := censusAll(g, labels)

	// Null model: permute labels, keeping community sizes fixed
	rng := rand.New(rand.NewSource(opts.Seed))
	sum := make([][numRoles]float64, n)
	sumSq := make([][numRoles]float64, n)
	permuted := make([]int, n)
	copy(permuted, labels)

	for p := 0; p < opts.Permutations; p++ {
		rng.Shuffle(n, func(i, j int) {
			permuted[i], permuted[j] = permuted[j], permuted[i]
		})
		counts := censusAll(g, permuted)
		for v := 0; v < n; v++ {
			for r := 0; r < int(numRoles); r++ {
				x := float64(counts[v][r])
				sum[v][r] += x
				sumSq[v][r] += x * x
			}
		}
	}

	result := &BrokerageResult{Scores: make([]BrokerageScore, n)}
	totals := make(map[string]float64, n)

	samples := float64(opts.Permutations)
	for v := 0; v < n; v++ {
		var z [numRoles]float64
		for r := 0; r < int(numRoles); r++ {
			mean := sum[v][r] / samples
			variance := sumSq[v][r]/samples - mean*mean
			if variance < 0 {
				variance = 0
			}
			sd := math.Sqrt(variance)
			if sd > 0 {
				z[r] = roundTo((float64(observed[v][r])-mean)/sd, opts.Precision)
			}
		}

		total := roundTo(z[Coordinator]+z[Consultant]+z[Gatekeeper]+z[Representative]+z[Liaison], opts.Precision)
		id := g.VertexID(v)
		result.Scores[v] = BrokerageScore{
			Player:         id,
			Raw:            observed[v],
			Coordinator:    z[Coordinator],
			Consultant:     z[Consultant],
			Gatekeeper:     z[Gatekeeper],
			Representative: z[Representative],
			Liaison:        z[Liaison],
			Total:          total,
		}
		totals[id] = total
	}

	result.Ranked = topPlayers(totals, opts.TopN)
	return result, nil
}

// censusAll classifies every ordered two-path a-b-c through every broker b
func censusAll(g *graph.Graph, labels []int) []RoleCounts {
	counts := make([]RoleCounts, g.Order())

	for b := 0; b < g.Order(); b++ {
		neighbors := g.Neighbors(b)
		lb := labels[b]
		for _, a := range neighbors {
			for _, c := range neighbors {
				if a == c {
					continue
				}
				counts[b][classifyTriad(labels[a], lb, labels[c])]++
			}
		}
	}

	return counts
}

// classifyTriad maps the community pattern of a two-path onto a role
func classifyTriad(la, lb, lc int) Role {
	switch {
	case la == lb && lb == lc:
		return Coordinator
	case la == lc && la != lb:
		return Consultant
	case lb == lc: // la differs
		return Gatekeeper
	case la == lb: // lc differs
		return Representative
	default:
		return Liaison
	}
}

// roundTo rounds x to the given number of decimal digits
func roundTo(x float64, digits int) float64 {
	scale := math.Pow(10, float64(digits))
	return math.Round(x*scale) / scale
}
