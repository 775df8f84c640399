package metrics

import (
	"testing"
	"time"
)

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()
	if r == nil {
		t.Fatal("NewRegistry() returned nil")
	}

	if r.RowsReadTotal == nil {
		t.Error("RowsReadTotal not initialized")
	}
	if r.EdgesBuiltTotal == nil {
		t.Error("EdgesBuiltTotal not initialized")
	}
	if r.StageDuration == nil {
		t.Error("StageDuration not initialized")
	}
	if r.registry == nil {
		t.Error("Prometheus registry not initialized")
	}
}

func TestDefaultRegistry(t *testing.T) {
	r1 := DefaultRegistry()
	r2 := DefaultRegistry()

	if r1 != r2 {
		t.Error("DefaultRegistry() should return the same instance")
	}
}

func TestRecordHelpers(t *testing.T) {
	r := NewRegistry()

	r.RecordNormalization(100, 3, 10, 87)
	r.RecordEdgeBuild(12, 240, 5)
	r.RecordGraph(80, 240, 2)
	r.RecordPartition(4, 0.41)
	r.RecordStage("betweenness", 50*time.Millisecond)
	r.RecordRun("ok")

	families, err := r.Gather().Gather()
	if err != nil {
		t.Fatalf("Gather failed: %v", err)
	}

	found := make(map[string]bool)
	for _, mf := range families {
		found[mf.GetName()] = true
	}

	for _, name := range []string{
		"hooplink_rows_read_total",
		"hooplink_teammate_edges_total",
		"hooplink_graph_vertices_total",
		"hooplink_modularity_score",
		"hooplink_stage_duration_seconds",
		"hooplink_runs_total",
	} {
		if !found[name] {
			t.Errorf("Expected metric family %s to be gathered", name)
		}
	}
}
