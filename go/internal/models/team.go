package models

// TeamStats holds a team's aggregate shooting/rebounding/assist figures.
// Display-only; nothing downstream computes from these.
type TeamStats struct {
	FieldGoalPct  float64 `json:"field_goal_pct"`
	ThreePointPct float64 `json:"three_point_pct"`
	FreeThrowPct  float64 `json:"free_throw_pct"`
	Rebounds      int     `json:"rebounds"`
	Assists       int     `json:"assists"`
	Turnovers     int     `json:"turnovers"`
}

// TeamSnapshot is one team's side of a GameSnapshot. Players preserves
// roster order from the source payload; byID is derived at normalization
// time for O(1) merges and is not part of the wire format.
type TeamSnapshot struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Abbreviation string       `json:"abbreviation"`
	Score        int          `json:"score"`
	TeamStats    TeamStats    `json:"team_stats"`
	Players      []PlayerStat `json:"players"`

	byID map[string]*PlayerStat
}

// PlayerByID returns the team's player with the given id, or nil.
func (t *TeamSnapshot) PlayerByID(playerID string) *PlayerStat {
	if t.byID == nil {
		return nil
	}
	return t.byID[playerID]
}

// Reindex rebuilds the id lookup over the Players slice. Must be called
// after Players is populated or reallocated; the map points into the slice.
func (t *TeamSnapshot) Reindex() {
	t.byID = make(map[string]*PlayerStat, len(t.Players))
	for i := range t.Players {
		t.byID[t.Players[i].ID] = &t.Players[i]
	}
}
