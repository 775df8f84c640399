package gamelog

import (
	"strings"
	"testing"
)

func TestReadCSV_ParsesRows(t *testing.T) {
	input := `PLAYER_NAME,TEAM_ABBREVIATION,SEASON_ID,PTS,AST
Stephen Curry,GSW,2020-21,32,5
Klay Thompson,GSW,2020-21,20,2
`

	rows, err := ReadCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadCSV failed: %v", err)
	}

	if len(rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(rows))
	}

	first := rows[0]
	if first.PlayerID != "Stephen Curry" {
		t.Errorf("Expected player Stephen Curry, got %q", first.PlayerID)
	}
	if first.TeamID != "GSW" {
		t.Errorf("Expected team GSW, got %q", first.TeamID)
	}
	if first.SeasonID != "2020-21" {
		t.Errorf("Expected season 2020-21, got %q", first.SeasonID)
	}
	if first.Stats["pts"] != "32" {
		t.Errorf("Expected pts stat 32, got %q", first.Stats["pts"])
	}
}

func TestReadCSV_LowercaseHeader(t *testing.T) {
	input := "player_id,team_id,season_id\ncurry,GSW,2020-21\n"

	rows, err := ReadCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadCSV failed: %v", err)
	}
	if len(rows) != 1 || rows[0].PlayerID != "curry" {
		t.Errorf("Expected one curry row, got %v", rows)
	}
}

func TestReadCSV_MissingIdentifierColumn(t *testing.T) {
	input := "PLAYER_NAME,PTS\nStephen Curry,32\n"

	if _, err := ReadCSV(strings.NewReader(input)); err == nil {
		t.Error("Expected error for header without team/season columns")
	}
}

func TestReadCSV_EmptyStream(t *testing.T) {
	if _, err := ReadCSV(strings.NewReader("")); err == nil {
		t.Error("Expected error for missing header")
	}
}
