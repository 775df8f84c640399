package metrics

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds all metrics for the pipeline
type Registry struct {
	// Ingestion
	RowsReadTotal    prometheus.Counter
	RowsDroppedTotal *prometheus.CounterVec
	TuplesTotal      prometheus.Gauge

	// Edge building
	EdgesBuiltTotal    prometheus.Gauge
	EdgesFilteredTotal prometheus.Gauge
	TeamSeasonGroups   prometheus.Gauge

	// Graph
	GraphVertices   prometheus.Gauge
	GraphEdges      prometheus.Gauge
	GraphComponents prometheus.Gauge

	// Analysis
	CommunitiesDetected prometheus.Gauge
	ModularityScore     prometheus.Gauge

	// Pipeline
	StageDuration *prometheus.HistogramVec
	RunsTotal     *prometheus.CounterVec

	registry *prometheus.Registry
}

var (
	defaultRegistry *Registry
	once            sync.Once
)

// DefaultRegistry returns the global metrics registry
func DefaultRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry creates a new metrics registry with all metrics initialized
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	r := &Registry{registry: reg}

	r.RowsReadTotal = promauto.With(reg).NewCounter(
		prometheus.CounterOpts{
			Name: "hooplink_rows_read_total",
			Help: "Total number of game-log rows read",
		},
	)

	r.RowsDroppedTotal = promauto.With(reg).NewCounterVec(
		prometheus.CounterOpts{
			Name: "hooplink_rows_dropped_total",
			Help: "Total number of game-log rows dropped",
		},
		[]string{"reason"},
	)

	r.TuplesTotal = promauto.With(reg).NewGauge(
		prometheus.GaugeOpts{
			Name: "hooplink_player_team_seasons_total",
			Help: "Deduplicated player-team-season tuples after normalization",
		},
	)

	r.EdgesBuiltTotal = promauto.With(reg).NewGauge(
		prometheus.GaugeOpts{
			Name: "hooplink_teammate_edges_total",
			Help: "Teammate edges emitted by the roster builder",
		},
	)

	r.EdgesFilteredTotal = promauto.With(reg).NewGauge(
		prometheus.GaugeOpts{
			Name: "hooplink_teammate_edges_filtered_total",
			Help: "Teammate pairs dropped below the min-shared-teams threshold",
		},
	)

	r.TeamSeasonGroups = promauto.With(reg).NewGauge(
		prometheus.GaugeOpts{
			Name: "hooplink_team_season_groups_total",
			Help: "Distinct team-season roster groups",
		},
	)

	r.GraphVertices = promauto.With(reg).NewGauge(
		prometheus.GaugeOpts{
			Name: "hooplink_graph_vertices_total",
			Help: "Vertices in the assembled graph",
		},
	)

	r.GraphEdges = promauto.With(reg).NewGauge(
		prometheus.GaugeOpts{
			Name: "hooplink_graph_edges_total",
			Help: "Edges in the assembled graph",
		},
	)

	r.GraphComponents = promauto.With(reg).NewGauge(
		prometheus.GaugeOpts{
			Name: "hooplink_graph_components_total",
			Help: "Connected components in the assembled graph",
		},
	)

	r.CommunitiesDetected = promauto.With(reg).NewGauge(
		prometheus.GaugeOpts{
			Name: "hooplink_communities_total",
			Help: "Communities detected by modularity optimization",
		},
	)

	r.ModularityScore = promauto.With(reg).NewGauge(
		prometheus.GaugeOpts{
			Name: "hooplink_modularity_score",
			Help: "Modularity of the detected partition",
		},
	)

	r.StageDuration = promauto.With(reg).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "hooplink_stage_duration_seconds",
			Help:    "Pipeline stage duration in seconds",
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1.0, 5.0, 30.0},
		},
		[]string{"stage"},
	)

	r.RunsTotal = promauto.With(reg).NewCounterVec(
		prometheus.CounterOpts{
			Name: "hooplink_runs_total",
			Help: "Pipeline runs by final status",
		},
		[]string{"status"},
	)

	return r
}

// RecordStage records a completed pipeline stage
func (r *Registry) RecordStage(stage string, duration time.Duration) {
	r.StageDuration.WithLabelValues(stage).Observe(duration.Seconds())
}

// RecordRun records a finished pipeline run
func (r *Registry) RecordRun(status string) {
	r.RunsTotal.WithLabelValues(status).Inc()
}

// RecordNormalization records ingestion counts
func (r *Registry) RecordNormalization(rowsRead, rowsDroppedMalformed, rowsFiltered, tuples int) {
	r.RowsReadTotal.Add(float64(rowsRead))
	r.RowsDroppedTotal.WithLabelValues("malformed").Add(float64(rowsDroppedMalformed))
	r.RowsDroppedTotal.WithLabelValues("filtered").Add(float64(rowsFiltered))
	r.TuplesTotal.Set(float64(tuples))
}

// RecordEdgeBuild records roster builder output
func (r *Registry) RecordEdgeBuild(groups, emitted, filtered int) {
	r.TeamSeasonGroups.Set(float64(groups))
	r.EdgesBuiltTotal.Set(float64(emitted))
	r.EdgesFilteredTotal.Set(float64(filtered))
}

// RecordGraph records assembled graph size
func (r *Registry) RecordGraph(vertices, edges, components int) {
	r.GraphVertices.Set(float64(vertices))
	r.GraphEdges.Set(float64(edges))
	r.GraphComponents.Set(float64(components))
}

// RecordPartition records community detection output
func (r *Registry) RecordPartition(communities int, modularity float64) {
	r.CommunitiesDetected.Set(float64(communities))
	r.ModularityScore.Set(modularity)
}

// Handler returns an HTTP handler exposing the registry in Prometheus format
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// Gather exposes the underlying registry for tests and exposition
func (r *Registry) Gather() prometheus.Gatherer {
	return r.registry
}
