package models

// PlayerInfo is one entry in the league player directory: the bio line
// shown on search results and at the top of a player profile.
type PlayerInfo struct {
	ID           string `json:"id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Position     string `json:"position"`
	Height       string `json:"height"`
	Weight       string `json:"weight"`
	JerseyNumber string `json:"jersey_number"`
	College      string `json:"college"`
	Country      string `json:"country"`
	TeamID       string `json:"team_id"`
	TeamName     string `json:"team_name"`
	TeamAbbr     string `json:"team_abbreviation"`
}

func (p PlayerInfo) FullName() string {
	if p.FirstName == "" {
		return p.LastName
	}
	if p.LastName == "" {
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}

// PlayerGameLine is one recent-game stat line on a player profile.
type PlayerGameLine struct {
	GameID    string  `json:"game_id"`
	Date      string  `json:"date"`
	Opponent  string  `json:"opponent"`
	Minutes   float64 `json:"minutes"`
	Points    int     `json:"points"`
	Rebounds  int     `json:"rebounds"`
	Assists   int     `json:"assists"`
	Steals    int     `json:"steals"`
	Blocks    int     `json:"blocks"`
	PlusMinus int     `json:"plus_minus"`
}
