package pipeline

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/hooplink/hooplink/pkg/algorithms"
)

// EdgeExport is one weighted teammate edge in the export format
type EdgeExport struct {
	A          string   `json:"a"`
	B          string   `json:"b"`
	Weight     int      `json:"weight"`
	Provenance []string `json:"provenance,omitempty"`
}

// GraphExport is the graph output contract
type GraphExport struct {
	Vertices []string     `json:"vertices"`
	Edges    []EdgeExport `json:"edges"`
}

// PartitionExport is the community partition output contract
type PartitionExport struct {
	Assignments map[string]int          `json:"assignments"`
	Communities []*algorithms.Community `json:"communities"`
	Modularity  float64                 `json:"modularity"`
}

// Export bundles the four output contracts consumed by visualization and
// reporting collaborators
type Export struct {
	RunID      string                        `json:"run_id"`
	Graph      GraphExport                   `json:"graph"`
	Partition  PartitionExport               `json:"partition"`
	Centrality *algorithms.BetweennessResult `json:"centrality"`
	Brokerage  *algorithms.BrokerageResult   `json:"brokerage"`
}

// Export converts a run result into the serializable output contracts
func (r *Result) Export() Export {
	graphExport := GraphExport{
		Vertices: r.Graph.Vertices(),
		Edges:    make([]EdgeExport, 0, len(r.Edges)),
	}

	// Only edges that survived graph assembly appear in the contract
	for _, e := range r.Graph.Edges() {
		a := r.Graph.VertexID(e.U)
		b := r.Graph.VertexID(e.V)
		export := EdgeExport{A: a, B: b, Weight: e.Weight}
		for _, re := range r.Edges {
			if re.A == a && re.B == b {
				for _, ts := range re.Provenance {
					export.Provenance = append(export.Provenance, ts.Label())
				}
				break
			}
		}
		graphExport.Edges = append(graphExport.Edges, export)
	}

	return Export{
		RunID: r.RunID,
		Graph: graphExport,
		Partition: PartitionExport{
			Assignments: r.Communities.Assignments,
			Communities: r.Communities.Communities,
			Modularity:  r.Communities.Modularity,
		},
		Centrality: r.Centrality,
		Brokerage:  r.Brokerage,
	}
}

// WriteJSON writes the export to a file as indented JSON
func (r *Result) WriteJSON(path string) error {
	data, err := json.MarshalIndent(r.Export(), "", "  ")
	if err != nil {
		return fmt.Errorf("encoding results: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing results to %s: %w", path, err)
	}
	return nil
}
