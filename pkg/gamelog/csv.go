package gamelog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// Column aliases recognized in game-log CSV headers. Matching is
// case-insensitive; the first alias present wins.
var (
	playerColumns = []string{"player_id", "player", "player_name"}
	teamColumns   = []string{"team_id", "team", "team_abbreviation"}
	seasonColumns = []string{"season_id", "season"}
)

// ReadCSV parses game-log rows from a CSV stream with a header row. Columns
// beyond the three identifiers are carried through as stats. Rows with the
// wrong field count are skipped, not fatal; a missing identifier column in
// the header is fatal because no row could ever be valid.
func ReadCSV(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}

	playerIdx := findColumn(header, playerColumns)
	teamIdx := findColumn(header, teamColumns)
	seasonIdx := findColumn(header, seasonColumns)
	if playerIdx < 0 || teamIdx < 0 || seasonIdx < 0 {
		return nil, fmt.Errorf("CSV header missing player/team/season columns: %v", header)
	}

	rows := make([]Row, 0, 256)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading CSV record: %w", err)
		}
		if len(record) != len(header) {
			continue
		}

		row := Row{
			PlayerID: strings.TrimSpace(record[playerIdx]),
			TeamID:   strings.TrimSpace(record[teamIdx]),
			SeasonID: strings.TrimSpace(record[seasonIdx]),
		}
		for i, value := range record {
			if i == playerIdx || i == teamIdx || i == seasonIdx {
				continue
			}
			if row.Stats == nil {
				row.Stats = make(map[string]string)
			}
			row.Stats[strings.ToLower(header[i])] = value
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// ReadCSVFile parses game-log rows from a CSV file on disk
func ReadCSVFile(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening game log %s: %w", path, err)
	}
	defer f.Close()

	return ReadCSV(f)
}

func findColumn(header []string, aliases []string) int {
	for _, alias := range aliases {
		for i, name := range header {
			if strings.EqualFold(strings.TrimSpace(name), alias) {
				return i
			}
		}
	}
	return -1
}
