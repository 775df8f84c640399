package gamelog

import (
	"github.com/hooplink/hooplink/pkg/logging"
)

// Filter restricts which rows survive normalization. Zero value means no
// filtering.
type Filter struct {
	// Seasons is the inclusive set of season identifiers to keep. Empty
	// keeps all seasons.
	Seasons []string

	// DraftClass is the set of player identifiers to keep. Empty keeps all
	// players.
	DraftClass []string
}

// NormalizeResult is the normalizer output plus ingestion accounting
type NormalizeResult struct {
	Tuples []PlayerTeamSeason

	RowsRead      int
	RowsMalformed int
	RowsFiltered  int
	RowsDuplicate int
}

// Normalize deduplicates raw game-log rows into PlayerTeamSeason tuples.
// Rows missing any identifying field are dropped and logged, never fatal.
// Tuple order follows first appearance in the input, so identical input
// yields an identical tuple sequence.
func Normalize(rows []Row, filter Filter, logger logging.Logger) NormalizeResult {
	if logger == nil {
		logger = logging.NewNopLogger()
	}

	seasons := toSet(filter.Seasons)
	draftClass := toSet(filter.DraftClass)

	result := NormalizeResult{
		RowsRead: len(rows),
		Tuples:   make([]PlayerTeamSeason, 0, len(rows)),
	}
	seen := make(map[PlayerTeamSeason]bool, len(rows))

	for _, row := range rows {
		tuple := PlayerTeamSeason{
			Player: row.PlayerID,
			Team:   row.TeamID,
			Season: row.SeasonID,
		}

		if !tuple.Valid() {
			result.RowsMalformed++
			logger.Debug("dropping malformed game-log row",
				logging.Player(row.PlayerID),
				logging.String("team", row.TeamID),
				logging.String("season", row.SeasonID))
			continue
		}

		if len(seasons) > 0 && !seasons[tuple.Season] {
			result.RowsFiltered++
			continue
		}
		if len(draftClass) > 0 && !draftClass[tuple.Player] {
			result.RowsFiltered++
			continue
		}

		if seen[tuple] {
			result.RowsDuplicate++
			continue
		}
		seen[tuple] = true
		result.Tuples = append(result.Tuples, tuple)
	}

	if result.RowsMalformed > 0 {
		logger.Warn("malformed game-log rows dropped",
			logging.Stage("normalize"),
			logging.Int("malformed", result.RowsMalformed))
	}
	logger.Info("normalized game-log rows",
		logging.Stage("normalize"),
		logging.Rows(result.RowsRead),
		logging.Int("tuples", len(result.Tuples)),
		logging.Int("filtered", result.RowsFiltered),
		logging.Int("duplicates", result.RowsDuplicate))

	return result
}

func toSet(values []string) map[string]bool {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}
