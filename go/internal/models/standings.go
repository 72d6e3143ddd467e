package models

// Conference identifies an NBA conference
type Conference string

const (
	ConferenceEast Conference = "east"
	ConferenceWest Conference = "west"
)

// StandingRow is one team's record in the league standings
type StandingRow struct {
	TeamID       string     `json:"team_id"`
	Name         string     `json:"name"`
	Abbreviation string     `json:"abbreviation"`
	Conference   Conference `json:"conference"`
	Wins         int        `json:"wins"`
	Losses       int        `json:"losses"`
	LastTen      string     `json:"last_ten"` // e.g. "7-3"
	Streak       string     `json:"streak"`   // e.g. "W4", "L2"
}

// WinPct returns the team's winning percentage, 0 for an 0-0 record.
func (s StandingRow) WinPct() float64 {
	games := s.Wins + s.Losses
	if games == 0 {
		return 0
	}
	return float64(s.Wins) / float64(games)
}
