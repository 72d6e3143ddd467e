package snapshot

import "github.com/mpcost/hoopzone/go/internal/models"

// Diff computes the partial update that turns prev into next. Players
// present only in next are ignored: the view only tracks players known at
// mount time, so a delta for an unmounted player would be dropped anyway.
// Both snapshots must describe the same game.
func Diff(prev, next *models.GameSnapshot) *models.GameDelta {
	delta := &models.GameDelta{GameID: prev.GameID}

	if next.Status != prev.Status {
		status := next.Status
		delta.Status = &status
	}
	if next.Clock != prev.Clock {
		clock := next.Clock
		delta.Clock = &clock
	}
	if next.Period != prev.Period {
		period := next.Period
		delta.Period = &period
	}
	if next.HomeTeam.Score != prev.HomeTeam.Score {
		score := next.HomeTeam.Score
		delta.HomeScore = &score
	}
	if next.AwayTeam.Score != prev.AwayTeam.Score {
		score := next.AwayTeam.Score
		delta.AwayScore = &score
	}

	delta.Players = append(delta.Players, diffRoster(&prev.HomeTeam, &next.HomeTeam)...)
	delta.Players = append(delta.Players, diffRoster(&prev.AwayTeam, &next.AwayTeam)...)

	return delta
}

func diffRoster(prev, next *models.TeamSnapshot) []models.PlayerDelta {
	var deltas []models.PlayerDelta
	for i := range prev.Players {
		old := &prev.Players[i]
		cur := next.PlayerByID(old.ID)
		if cur == nil {
			continue
		}
		if pd, changed := diffPlayer(old, cur); changed {
			deltas = append(deltas, pd)
		}
	}
	return deltas
}

func diffPlayer(old, cur *models.PlayerStat) (models.PlayerDelta, bool) {
	pd := models.PlayerDelta{PlayerID: old.ID}
	changed := false

	if cur.Minutes != old.Minutes {
		v := cur.Minutes
		pd.Minutes = &v
		changed = true
	}
	if cur.Points != old.Points {
		v := cur.Points
		pd.Points = &v
		changed = true
	}
	if cur.Rebounds != old.Rebounds {
		v := cur.Rebounds
		pd.Rebounds = &v
		changed = true
	}
	if cur.Assists != old.Assists {
		v := cur.Assists
		pd.Assists = &v
		changed = true
	}
	if cur.Steals != old.Steals {
		v := cur.Steals
		pd.Steals = &v
		changed = true
	}
	if cur.Blocks != old.Blocks {
		v := cur.Blocks
		pd.Blocks = &v
		changed = true
	}
	if cur.PlusMinus != old.PlusMinus {
		v := cur.PlusMinus
		pd.PlusMinus = &v
		changed = true
	}

	return pd, changed
}
