package roster

import (
	"fmt"
)

// TeamSeason labels one roster group: a team in a season
type TeamSeason struct {
	Team   string
	Season string
}

// Label returns the canonical "TEAM SEASON" form used in provenance output
func (ts TeamSeason) Label() string {
	return fmt.Sprintf("%s %s", ts.Team, ts.Season)
}

// TeammateEdge is an undirected weighted edge between two players. A is
// always lexically smaller than B, so an unordered pair has exactly one
// representation.
type TeammateEdge struct {
	A string
	B string

	// Weight is the number of distinct team-seasons the pair shared
	Weight int

	// Provenance lists the team-seasons that produced the edge, sorted by
	// (team, season)
	Provenance []TeamSeason
}

// pairKey builds the canonical unordered pair for two distinct players
func pairKey(a, b string) (string, string) {
	if a < b {
		return a, b
	}
	return b, a
}
