package roster

import (
	"reflect"
	"testing"

	"github.com/hooplink/hooplink/pkg/gamelog"
)

func tuple(player, team, season string) gamelog.PlayerTeamSeason {
	return gamelog.PlayerTeamSeason{Player: player, Team: team, Season: season}
}

func findEdge(t *testing.T, edges []TeammateEdge, a, b string) TeammateEdge {
	t.Helper()
	x, y := a, b
	if y < x {
		x, y = y, x
	}
	for _, e := range edges {
		if e.A == x && e.B == y {
			return e
		}
	}
	t.Fatalf("Edge (%s, %s) not found in %v", a, b, edges)
	return TeammateEdge{}
}

func TestBuildEdges_WeightCountsSharedTeamSeasons(t *testing.T) {
	// X and Y together on T1 in 2020 and 2021, then both on T2 in 2022
	tuples := []gamelog.PlayerTeamSeason{
		tuple("X", "T1", "2020"),
		tuple("Y", "T1", "2020"),
		tuple("X", "T1", "2021"),
		tuple("Y", "T1", "2021"),
		tuple("X", "T2", "2022"),
		tuple("Y", "T2", "2022"),
	}

	result := BuildEdges(tuples, 1, nil)

	if len(result.Edges) != 1 {
		t.Fatalf("Expected 1 edge, got %d", len(result.Edges))
	}

	edge := findEdge(t, result.Edges, "X", "Y")
	if edge.Weight != 3 {
		t.Errorf("Expected weight 3, got %d", edge.Weight)
	}
	if len(edge.Provenance) != 3 {
		t.Errorf("Expected 3 provenance entries, got %v", edge.Provenance)
	}

	want := []TeamSeason{
		{Team: "T1", Season: "2020"},
		{Team: "T1", Season: "2021"},
		{Team: "T2", Season: "2022"},
	}
	if !reflect.DeepEqual(edge.Provenance, want) {
		t.Errorf("Provenance = %v, want %v", edge.Provenance, want)
	}
}

func TestBuildEdges_AllPairsPerGroup(t *testing.T) {
	tuples := []gamelog.PlayerTeamSeason{
		tuple("a", "T1", "2020"),
		tuple("b", "T1", "2020"),
		tuple("c", "T1", "2020"),
	}

	result := BuildEdges(tuples, 1, nil)

	// 3 players yield C(3,2) = 3 pairs
	if len(result.Edges) != 3 {
		t.Fatalf("Expected 3 edges, got %d", len(result.Edges))
	}
	for _, e := range result.Edges {
		if e.Weight != 1 {
			t.Errorf("Expected weight 1 for %s-%s, got %d", e.A, e.B, e.Weight)
		}
	}
}

func TestBuildEdges_NoSelfLoops(t *testing.T) {
	tuples := []gamelog.PlayerTeamSeason{
		tuple("a", "T1", "2020"),
		tuple("b", "T1", "2020"),
		tuple("a", "T2", "2020"),
		tuple("b", "T2", "2020"),
	}

	result := BuildEdges(tuples, 1, nil)

	for _, e := range result.Edges {
		if e.A == e.B {
			t.Errorf("Self-loop emitted: %v", e)
		}
		if e.A > e.B {
			t.Errorf("Edge endpoints not canonically ordered: %v", e)
		}
	}
}

func TestBuildEdges_SkipsSingletonGroups(t *testing.T) {
	tuples := []gamelog.PlayerTeamSeason{
		tuple("a", "T1", "2020"), // alone on T1
		tuple("b", "T2", "2020"),
		tuple("c", "T2", "2020"),
	}

	result := BuildEdges(tuples, 1, nil)

	if result.Groups != 2 {
		t.Errorf("Expected 2 groups, got %d", result.Groups)
	}
	if len(result.Edges) != 1 {
		t.Fatalf("Expected 1 edge (singleton group contributes none), got %d", len(result.Edges))
	}
	edge := findEdge(t, result.Edges, "b", "c")
	if edge.Weight != 1 {
		t.Errorf("Expected weight 1, got %d", edge.Weight)
	}
}

func TestBuildEdges_MinSharedTeamsThreshold(t *testing.T) {
	tuples := []gamelog.PlayerTeamSeason{
		// a-b share two team-seasons, a-c and b-c only one
		tuple("a", "T1", "2020"),
		tuple("b", "T1", "2020"),
		tuple("a", "T1", "2021"),
		tuple("b", "T1", "2021"),
		tuple("c", "T1", "2021"),
	}

	result := BuildEdges(tuples, 2, nil)

	if len(result.Edges) != 1 {
		t.Fatalf("Expected 1 edge above threshold, got %d", len(result.Edges))
	}
	if result.PairsFiltered != 2 {
		t.Errorf("Expected 2 filtered pairs, got %d", result.PairsFiltered)
	}
	edge := findEdge(t, result.Edges, "a", "b")
	if edge.Weight != 2 {
		t.Errorf("Expected weight 2, got %d", edge.Weight)
	}
}

func TestBuildEdges_EmptyInput(t *testing.T) {
	result := BuildEdges(nil, 1, nil)

	if len(result.Edges) != 0 || result.Groups != 0 {
		t.Errorf("Expected empty result, got %+v", result)
	}
}

func TestBuildEdges_Deterministic(t *testing.T) {
	tuples := []gamelog.PlayerTeamSeason{
		tuple("d", "T2", "2021"),
		tuple("a", "T1", "2020"),
		tuple("c", "T2", "2021"),
		tuple("b", "T1", "2020"),
		tuple("a", "T2", "2021"),
	}

	first := BuildEdges(tuples, 1, nil)
	second := BuildEdges(tuples, 1, nil)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("BuildEdges is not deterministic:\n%v\nvs\n%v", first, second)
	}
}
