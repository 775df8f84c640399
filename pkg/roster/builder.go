package roster

import (
	"sort"

	"github.com/hooplink/hooplink/pkg/gamelog"
	"github.com/hooplink/hooplink/pkg/logging"
)

// BuildResult is the edge builder output plus accounting
type BuildResult struct {
	Edges []TeammateEdge

	// Groups is the number of distinct team-season roster groups seen
	Groups int

	// PairsFiltered counts pairs dropped below the min-shared-teams threshold
	PairsFiltered int
}

type pair struct {
	a, b string
}

// BuildEdges groups player-team-season tuples by team-season and emits one
// weighted undirected edge per teammate pair. Weight is the number of
// distinct team-seasons shared; pairs below minSharedTeams are dropped.
// Groups with fewer than two distinct players contribute nothing. Output is
// sorted by (A, B) so identical input yields identical edges.
func BuildEdges(tuples []gamelog.PlayerTeamSeason, minSharedTeams int, logger logging.Logger) BuildResult {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	if minSharedTeams < 1 {
		minSharedTeams = 1
	}

	// Group distinct players per team-season. Tuples are already
	// deduplicated upstream, but the set guards against a caller skipping
	// the normalizer.
	groups := make(map[TeamSeason]map[string]bool)
	for _, tuple := range tuples {
		ts := TeamSeason{Team: tuple.Team, Season: tuple.Season}
		if groups[ts] == nil {
			groups[ts] = make(map[string]bool)
		}
		groups[ts][tuple.Player] = true
	}

	// Deterministic group order
	groupKeys := make([]TeamSeason, 0, len(groups))
	for ts := range groups {
		groupKeys = append(groupKeys, ts)
	}
	sort.Slice(groupKeys, func(i, j int) bool {
		if groupKeys[i].Team != groupKeys[j].Team {
			return groupKeys[i].Team < groupKeys[j].Team
		}
		return groupKeys[i].Season < groupKeys[j].Season
	})

	weights := make(map[pair]int)
	provenance := make(map[pair][]TeamSeason)

	for _, ts := range groupKeys {
		roster := groups[ts]
		if len(roster) < 2 {
			continue
		}

		players := make([]string, 0, len(roster))
		for p := range roster {
			players = append(players, p)
		}
		sort.Strings(players)

		for i := 0; i < len(players); i++ {
			for j := i + 1; j < len(players); j++ {
				a, b := pairKey(players[i], players[j])
				key := pair{a: a, b: b}
				weights[key]++
				provenance[key] = append(provenance[key], ts)
			}
		}
	}

	result := BuildResult{
		Groups: len(groups),
		Edges:  make([]TeammateEdge, 0, len(weights)),
	}

	for key, weight := range weights {
		if weight < minSharedTeams {
			result.PairsFiltered++
			continue
		}
		result.Edges = append(result.Edges, TeammateEdge{
			A:          key.a,
			B:          key.b,
			Weight:     weight,
			Provenance: provenance[key],
		})
	}

	sort.Slice(result.Edges, func(i, j int) bool {
		if result.Edges[i].A != result.Edges[j].A {
			return result.Edges[i].A < result.Edges[j].A
		}
		return result.Edges[i].B < result.Edges[j].B
	})

	logger.Info("built teammate edges",
		logging.Stage("roster"),
		logging.Int("groups", result.Groups),
		logging.Edges(len(result.Edges)),
		logging.Int("filtered", result.PairsFiltered))

	return result
}
