package snapshot

import (
	"testing"

	"github.com/mpcost/hoopzone/go/internal/models"
)

func twoPlayerGame() *models.GameSnapshot {
	snap := &models.GameSnapshot{
		GameID: "g1",
		Status: models.StatusLive,
		Clock:  "8:00",
		Period: "Q2",
		HomeTeam: models.TeamSnapshot{
			ID: "h", Score: 50,
			Players: []models.PlayerStat{
				{ID: "p1", Name: "One", Points: 10, Rebounds: 3},
				{ID: "p2", Name: "Two", Points: 4},
			},
		},
		AwayTeam: models.TeamSnapshot{
			ID: "a", Score: 48,
			Players: []models.PlayerStat{
				{ID: "p3", Name: "Three", Points: 12, PlusMinus: 3},
			},
		},
	}
	snap.HomeTeam.Reindex()
	snap.AwayTeam.Reindex()
	return snap
}

func TestDiff_NoChanges(t *testing.T) {
	prev := twoPlayerGame()
	next := twoPlayerGame()

	delta := Diff(prev, next)
	if !delta.Empty() {
		t.Errorf("Diff of identical snapshots should be empty, got %+v", delta)
	}
}

func TestDiff_ChangedFieldsOnly(t *testing.T) {
	prev := twoPlayerGame()
	next := twoPlayerGame()
	next.Clock = "7:12"
	next.HomeTeam.Score = 52
	next.HomeTeam.Players[0].Points = 12
	next.AwayTeam.Players[0].PlusMinus = -2
	next.HomeTeam.Reindex()
	next.AwayTeam.Reindex()

	delta := Diff(prev, next)

	if delta.Clock == nil || *delta.Clock != "7:12" {
		t.Errorf("Clock delta = %v, want 7:12", delta.Clock)
	}
	if delta.Period != nil {
		t.Errorf("Period should be unchanged, got %v", *delta.Period)
	}
	if delta.HomeScore == nil || *delta.HomeScore != 52 {
		t.Errorf("HomeScore delta = %v, want 52", delta.HomeScore)
	}
	if delta.AwayScore != nil {
		t.Errorf("AwayScore should be unchanged")
	}

	if len(delta.Players) != 2 {
		t.Fatalf("player deltas = %d, want 2", len(delta.Players))
	}

	byID := make(map[string]models.PlayerDelta)
	for _, pd := range delta.Players {
		byID[pd.PlayerID] = pd
	}

	p1 := byID["p1"]
	if p1.Points == nil || *p1.Points != 12 {
		t.Errorf("p1 points delta = %v, want 12", p1.Points)
	}
	if p1.Rebounds != nil {
		t.Error("p1 rebounds should be unchanged")
	}

	p3 := byID["p3"]
	if p3.PlusMinus == nil || *p3.PlusMinus != -2 {
		t.Errorf("p3 plus_minus delta = %v, want -2", p3.PlusMinus)
	}
}

func TestDiff_IgnoresNewPlayers(t *testing.T) {
	prev := twoPlayerGame()
	next := twoPlayerGame()
	next.HomeTeam.Players = append(next.HomeTeam.Players, models.PlayerStat{ID: "p9", Points: 2})
	next.HomeTeam.Reindex()

	delta := Diff(prev, next)
	for _, pd := range delta.Players {
		if pd.PlayerID == "p9" {
			t.Error("diff should not emit deltas for players absent at mount")
		}
	}
}
