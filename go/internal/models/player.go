package models

// PlayerStat is one player's cumulative box line for a game. A player
// appears the first time any snapshot mentions them (bench players show
// up with zero minutes) and is mutated in place by later snapshots for
// the life of the mounted view; it is never removed mid-game.
//
// All counters except PlusMinus are non-negative and non-decreasing while
// the game is live. PlusMinus moves in either direction.
type PlayerStat struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Position  string  `json:"position"`
	Minutes   float64 `json:"minutes"`
	Points    int     `json:"points"`
	Rebounds  int     `json:"rebounds"`
	Assists   int     `json:"assists"`
	Steals    int     `json:"steals"`
	Blocks    int     `json:"blocks"`
	PlusMinus int     `json:"plus_minus"`
}

// Played reports whether the player has seen the floor. Players with zero
// minutes are filtered from "played" views but stay in the roster index.
func (p *PlayerStat) Played() bool {
	return p.Minutes > 0
}
