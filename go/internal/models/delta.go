package models

// GameDelta is a partial update to a mounted GameSnapshot. Nil pointer
// fields mean "unchanged"; only populated fields are applied to the view.
type GameDelta struct {
	GameID    string        `json:"game_id"`
	Status    *GameStatus   `json:"status,omitempty"`
	Clock     *string       `json:"clock,omitempty"`
	Period    *string       `json:"period,omitempty"`
	HomeScore *int          `json:"home_score,omitempty"`
	AwayScore *int          `json:"away_score,omitempty"`
	Players   []PlayerDelta `json:"players,omitempty"`
}

// PlayerDelta carries the changed stat fields for one player.
type PlayerDelta struct {
	PlayerID  string   `json:"player_id"`
	Minutes   *float64 `json:"minutes,omitempty"`
	Points    *int     `json:"points,omitempty"`
	Rebounds  *int     `json:"rebounds,omitempty"`
	Assists   *int     `json:"assists,omitempty"`
	Steals    *int     `json:"steals,omitempty"`
	Blocks    *int     `json:"blocks,omitempty"`
	PlusMinus *int     `json:"plus_minus,omitempty"`
}

// Empty reports whether the delta carries no changes at all.
func (d *GameDelta) Empty() bool {
	return d.Status == nil && d.Clock == nil && d.Period == nil &&
		d.HomeScore == nil && d.AwayScore == nil && len(d.Players) == 0
}
