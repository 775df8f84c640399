package gamelog

// Row is one raw game-log record. Only the three identifying fields matter to
// the pipeline; box-score stats are carried through untouched for downstream
// consumers.
type Row struct {
	PlayerID string
	TeamID   string
	SeasonID string
	Stats    map[string]string
}

// PlayerTeamSeason is one deduplicated (player, team, season) tuple
type PlayerTeamSeason struct {
	Player string
	Team   string
	Season string
}

// Valid reports whether all identifying fields are present
func (p PlayerTeamSeason) Valid() bool {
	return p.Player != "" && p.Team != "" && p.Season != ""
}
