package snapshot

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/mpcost/hoopzone/go/internal/models"
)

// DefaultFallbackClock is rendered when a live payload omits the clock.
const DefaultFallbackClock = "12:00"

// Normalizer turns raw feed payloads into fully-populated GameSnapshots.
// Every optional field gets an explicit default so downstream rendering
// never sees a zero-value surprise it did not choose.
type Normalizer struct {
	fallbackClock string
}

func NewNormalizer() *Normalizer {
	return &Normalizer{fallbackClock: DefaultFallbackClock}
}

// WithFallbackClock overrides the clock string used when a live payload
// carries none.
func (n *Normalizer) WithFallbackClock(clock string) *Normalizer {
	n.fallbackClock = clock
	return n
}

// Normalize decodes a raw game payload in either field convention and
// produces a GameSnapshot with both team rosters indexed by player id.
// Returns ErrMalformedSnapshot when neither convention identifies both
// teams.
func (n *Normalizer) Normalize(data []byte) (*models.GameSnapshot, error) {
	var raw rawGame
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode game payload: %w", err)
	}

	home, away := raw.home(), raw.away()
	if home == nil || away == nil {
		return nil, ErrMalformedSnapshot
	}

	status := ParseStatus(raw.Status, raw.Time)
	live := ParseLiveStatus(raw.Status, raw.Time)

	snap := &models.GameSnapshot{
		GameID: asID(coalesce(raw.ID, raw.GameID)),
		Status: status,
		Period: live.Period,
		Clock:  live.Clock,
	}

	if snap.Clock == "" && status == models.StatusLive {
		snap.Clock = n.fallbackClock
	}
	if raw.Datetime != "" {
		if t, err := time.Parse(time.RFC3339, raw.Datetime); err == nil {
			snap.StartsAt = t
		}
	}

	snap.HomeTeam = n.normalizeTeam(home, raw.homeScore())
	snap.AwayTeam = n.normalizeTeam(away, raw.awayScore())

	return snap, nil
}

func (n *Normalizer) normalizeTeam(raw *rawTeam, gameLevelScore int) models.TeamSnapshot {
	team := models.TeamSnapshot{
		ID:           asID(raw.ID),
		Name:         raw.displayName(),
		Abbreviation: raw.Abbreviation,
		Score:        gameLevelScore,
	}
	if team.Score == 0 {
		team.Score = asInt(raw.Score)
	}

	if stats := raw.stats(); stats != nil {
		team.TeamStats = models.TeamStats{
			FieldGoalPct:  asFloat(coalesce(stats.FieldGoalPct, stats.FieldGoalPctCamel)),
			ThreePointPct: asFloat(coalesce(stats.ThreePointPct, stats.ThreePointPctCamel)),
			FreeThrowPct:  asFloat(coalesce(stats.FreeThrowPct, stats.FreeThrowPctCamel)),
			Rebounds:      asInt(stats.Rebounds),
			Assists:       asInt(stats.Assists),
			Turnovers:     asInt(stats.Turnovers),
		}
	}

	team.Players = make([]models.PlayerStat, 0, len(raw.Players))
	for i := range raw.Players {
		team.Players = append(team.Players, normalizePlayer(&raw.Players[i]))
	}
	team.Reindex()

	return team
}

func normalizePlayer(raw *rawPlayer) models.PlayerStat {
	return models.PlayerStat{
		ID:        asID(coalesce(raw.ID, raw.PlayerID)),
		Name:      raw.displayName(),
		Position:  raw.Position,
		Minutes:   asMinutes(coalesce(raw.MinutesPlayed, raw.MinutesPlayedCamel)),
		Points:    asInt(raw.Points),
		Rebounds:  asInt(raw.Rebounds),
		Assists:   asInt(raw.Assists),
		Steals:    asInt(raw.Steals),
		Blocks:    asInt(raw.Blocks),
		PlusMinus: asInt(coalesce(raw.PlusMinus, raw.PlusMinusCamel)),
	}
}
