package models

import "time"

// TeamPreference is a user's persisted "my team" selection. Read once at
// startup, rewritten only on explicit user action.
type TeamPreference struct {
	UserID       string    `json:"user_id"`
	TeamID       string    `json:"team_id"`
	TeamName     string    `json:"team_name"`
	Abbreviation string    `json:"abbreviation"`
	UpdatedAt    time.Time `json:"updated_at"`
}
