package gamelog

import (
	"reflect"
	"testing"

	"github.com/hooplink/hooplink/pkg/logging"
)

func row(player, team, season string) Row {
	return Row{PlayerID: player, TeamID: team, SeasonID: season}
}

func TestNormalize_DeduplicatesRows(t *testing.T) {
	rows := []Row{
		row("curry", "GSW", "2020-21"),
		row("curry", "GSW", "2020-21"), // same tuple, different game
		row("curry", "GSW", "2020-21"),
		row("curry", "GSW", "2021-22"),
	}

	result := Normalize(rows, Filter{}, logging.NewNopLogger())

	if len(result.Tuples) != 2 {
		t.Fatalf("Expected 2 tuples, got %d", len(result.Tuples))
	}
	if result.RowsDuplicate != 2 {
		t.Errorf("Expected 2 duplicate rows, got %d", result.RowsDuplicate)
	}

	want := []PlayerTeamSeason{
		{Player: "curry", Team: "GSW", Season: "2020-21"},
		{Player: "curry", Team: "GSW", Season: "2021-22"},
	}
	if !reflect.DeepEqual(result.Tuples, want) {
		t.Errorf("Tuples = %v, want %v", result.Tuples, want)
	}
}

func TestNormalize_DropsMalformedRows(t *testing.T) {
	rows := []Row{
		row("", "GSW", "2020-21"),
		row("curry", "", "2020-21"),
		row("curry", "GSW", ""),
		row("curry", "GSW", "2020-21"),
	}

	result := Normalize(rows, Filter{}, logging.NewNopLogger())

	if result.RowsMalformed != 3 {
		t.Errorf("Expected 3 malformed rows, got %d", result.RowsMalformed)
	}
	if len(result.Tuples) != 1 {
		t.Errorf("Malformed rows must not become tuples, got %d", len(result.Tuples))
	}
}

func TestNormalize_SeasonFilter(t *testing.T) {
	rows := []Row{
		row("curry", "GSW", "2019-20"),
		row("curry", "GSW", "2020-21"),
		row("thompson", "GSW", "2021-22"),
	}

	result := Normalize(rows, Filter{Seasons: []string{"2020-21", "2021-22"}}, nil)

	if len(result.Tuples) != 2 {
		t.Fatalf("Expected 2 tuples after season filter, got %d", len(result.Tuples))
	}
	if result.RowsFiltered != 1 {
		t.Errorf("Expected 1 filtered row, got %d", result.RowsFiltered)
	}
	for _, tuple := range result.Tuples {
		if tuple.Season == "2019-20" {
			t.Errorf("Season 2019-20 should be filtered out, got %v", tuple)
		}
	}
}

func TestNormalize_DraftClassFilter(t *testing.T) {
	rows := []Row{
		row("curry", "GSW", "2020-21"),
		row("thompson", "GSW", "2020-21"),
		row("james", "LAL", "2020-21"),
	}

	result := Normalize(rows, Filter{DraftClass: []string{"curry", "james"}}, nil)

	if len(result.Tuples) != 2 {
		t.Fatalf("Expected 2 tuples after draft-class filter, got %d", len(result.Tuples))
	}
	for _, tuple := range result.Tuples {
		if tuple.Player == "thompson" {
			t.Errorf("thompson is outside the draft class, got %v", tuple)
		}
	}
}

func TestNormalize_EmptyInput(t *testing.T) {
	result := Normalize(nil, Filter{}, nil)

	if len(result.Tuples) != 0 {
		t.Errorf("Expected no tuples for empty input, got %d", len(result.Tuples))
	}
	if result.RowsRead != 0 {
		t.Errorf("Expected 0 rows read, got %d", result.RowsRead)
	}
}

func TestNormalize_Deterministic(t *testing.T) {
	rows := []Row{
		row("b", "GSW", "2020-21"),
		row("a", "GSW", "2020-21"),
		row("c", "LAL", "2020-21"),
		row("b", "GSW", "2020-21"),
	}

	first := Normalize(rows, Filter{}, nil)
	second := Normalize(rows, Filter{}, nil)

	if !reflect.DeepEqual(first.Tuples, second.Tuples) {
		t.Errorf("Normalize is not deterministic: %v vs %v", first.Tuples, second.Tuples)
	}
}
