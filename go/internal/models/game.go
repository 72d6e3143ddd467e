package models

import "time"

// GameStatus represents the lifecycle state of a game
type GameStatus string

const (
	StatusScheduled GameStatus = "scheduled"
	StatusLive      GameStatus = "live"
	StatusFinal     GameStatus = "final"
)

// GameSnapshot is one point-in-time observation of a game: scores, clock,
// and the full per-player box score for both teams. Exactly one snapshot
// is current per mounted view.
type GameSnapshot struct {
	GameID   string       `json:"game_id"`
	Status   GameStatus   `json:"status"`
	Clock    string       `json:"clock"`  // remaining time in the period, live games only
	Period   string       `json:"period"` // "Q1".."Q4", "OT", "Halftime"
	StartsAt time.Time    `json:"starts_at,omitempty"`
	HomeTeam TeamSnapshot `json:"home_team"`
	AwayTeam TeamSnapshot `json:"away_team"`
}

// IsLive reports whether the game is in progress
func (g *GameSnapshot) IsLive() bool {
	return g.Status == StatusLive
}

// PlayerByID looks up a player on either roster
func (g *GameSnapshot) PlayerByID(playerID string) *PlayerStat {
	if p := g.HomeTeam.PlayerByID(playerID); p != nil {
		return p
	}
	return g.AwayTeam.PlayerByID(playerID)
}
