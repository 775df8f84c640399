// Package pipeline wires the analysis stages together: normalize game logs,
// build teammate edges, assemble the graph, then detect communities, score
// centrality and score brokerage roles. Each stage consumes its
// predecessor's complete output and returns a fresh immutable snapshot;
// a run either completes or fails outright.
package pipeline

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/hooplink/hooplink/pkg/algorithms"
	"github.com/hooplink/hooplink/pkg/config"
	"github.com/hooplink/hooplink/pkg/gamelog"
	"github.com/hooplink/hooplink/pkg/graph"
	"github.com/hooplink/hooplink/pkg/logging"
	"github.com/hooplink/hooplink/pkg/metrics"
	"github.com/hooplink/hooplink/pkg/roster"
)

// ErrInsufficientData is returned when filtering leaves too little graph to
// analyze: no edges, or fewer than two vertices.
var ErrInsufficientData = errors.New("insufficient data after filtering")

// brokerageSeed fixes the null-model RNG so identical input yields
// identical scores across runs
const brokerageSeed = 1

// rankedTopN bounds the ranked lists in the result
const rankedTopN = 25

// Pipeline runs the full analysis
type Pipeline struct {
	cfg     config.Config
	logger  logging.Logger
	metrics *metrics.Registry
}

// Result is the complete output of one run
type Result struct {
	RunID string

	// Normalization accounting
	Ingest gamelog.NormalizeResult

	// Edges is the weighted teammate edge list with provenance
	Edges []roster.TeammateEdge

	Graph      *graph.Graph
	Components int

	Communities *algorithms.CommunityResult
	Centrality  *algorithms.BetweennessResult
	Brokerage   *algorithms.BrokerageResult
}

// New creates a pipeline. A nil logger or registry falls back to no-op
// logging and the default registry.
func New(cfg config.Config, logger logging.Logger, reg *metrics.Registry) *Pipeline {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	if reg == nil {
		reg = metrics.DefaultRegistry()
	}
	return &Pipeline{cfg: cfg, logger: logger, metrics: reg}
}

// Run executes every stage against the given game-log rows
func (p *Pipeline) Run(rows []gamelog.Row) (*Result, error) {
	runID := uuid.New().String()
	logger := p.logger.With(logging.RunID(runID))

	result, err := p.run(rows, logger)
	if err != nil {
		p.metrics.RecordRun("error")
		logger.Error("pipeline run failed", logging.Error(err))
		return nil, err
	}

	result.RunID = runID
	p.metrics.RecordRun("ok")
	return result, nil
}

func (p *Pipeline) run(rows []gamelog.Row, logger logging.Logger) (*Result, error) {
	result := &Result{}

	// Stage 1: normalize
	timer := logging.StartTimer(logger, "normalize complete", logging.Stage("normalize"))
	result.Ingest = gamelog.Normalize(rows, gamelog.Filter{
		Seasons:    p.cfg.Seasons,
		DraftClass: p.cfg.DraftClass,
	}, logger)
	p.metrics.RecordNormalization(result.Ingest.RowsRead, result.Ingest.RowsMalformed,
		result.Ingest.RowsFiltered, len(result.Ingest.Tuples))
	p.metrics.RecordStage("normalize", timer.Elapsed())
	timer.End()

	// Stage 2: teammate edges
	timer = logging.StartTimer(logger, "edge build complete", logging.Stage("roster"))
	build := roster.BuildEdges(result.Ingest.Tuples, p.cfg.MinSharedTeams, logger)
	result.Edges = build.Edges
	p.metrics.RecordEdgeBuild(build.Groups, len(build.Edges), build.PairsFiltered)
	p.metrics.RecordStage("roster", timer.Elapsed())
	timer.End()

	// Stage 3: graph assembly
	timer = logging.StartTimer(logger, "graph assembly complete", logging.Stage("graph"))
	result.Graph = graph.Assemble(result.Edges, graph.AssembleOptions{TopK: p.cfg.TopKVertices}, logger)
	_, result.Components = result.Graph.ConnectedComponents()
	p.metrics.RecordGraph(result.Graph.Order(), result.Graph.Size(), result.Components)
	p.metrics.RecordStage("graph", timer.Elapsed())
	timer.End()

	if result.Graph.Size() == 0 || result.Graph.Order() < 2 {
		return nil, fmt.Errorf("%w: %d vertices, %d edges",
			ErrInsufficientData, result.Graph.Order(), result.Graph.Size())
	}

	// Stage 4: community detection
	timer = logging.StartTimer(logger, "community detection complete", logging.Stage("louvain"))
	result.Communities = algorithms.DetectCommunities(result.Graph)
	p.metrics.RecordPartition(len(result.Communities.Communities), result.Communities.Modularity)
	p.metrics.RecordStage("louvain", timer.Elapsed())
	timer.End(
		logging.Communities(len(result.Communities.Communities)),
		logging.Modularity(result.Communities.Modularity))

	// Stage 5: betweenness centrality
	timer = logging.StartTimer(logger, "centrality scoring complete", logging.Stage("betweenness"))
	result.Centrality = algorithms.Betweenness(result.Graph, rankedTopN)
	p.metrics.RecordStage("betweenness", timer.Elapsed())
	timer.End()

	// Stage 6: brokerage roles
	timer = logging.StartTimer(logger, "brokerage scoring complete", logging.Stage("brokerage"))
	brokerage, err := algorithms.Brokerage(result.Graph, result.Communities, algorithms.BrokerageOptions{
		Permutations: p.cfg.BrokeragePermutations,
		Seed:         brokerageSeed,
		Precision:    p.cfg.RoundingPrecision,
		TopN:         rankedTopN,
	})
	if err != nil {
		timer.EndError(err)
		return nil, fmt.Errorf("brokerage scoring: %w", err)
	}
	result.Brokerage = brokerage
	p.metrics.RecordStage("brokerage", timer.Elapsed())
	timer.End()

	return result, nil
}
