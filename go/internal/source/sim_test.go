package source

import (
	"context"
	"testing"

	"github.com/mpcost/hoopzone/go/internal/models"
)

func seedSnapshot() *models.GameSnapshot {
	snap := &models.GameSnapshot{
		GameID: "sim-1",
		Status: models.StatusScheduled,
		HomeTeam: models.TeamSnapshot{
			ID: "14", Name: "Los Angeles Lakers", Abbreviation: "LAL",
			Players: []models.PlayerStat{
				{ID: "p1", Name: "Starter", Minutes: 1},
				{ID: "p2", Name: "Bench"},
			},
		},
		AwayTeam: models.TeamSnapshot{
			ID: "2", Name: "Boston Celtics", Abbreviation: "BOS",
			Players: []models.PlayerStat{
				{ID: "p3", Name: "Other Starter", Minutes: 1},
			},
		},
	}
	snap.HomeTeam.Reindex()
	snap.AwayTeam.Reindex()
	return snap
}

func TestSimSource_SeedStartsLive(t *testing.T) {
	sim := NewSimSource(1)
	sim.Seed(seedSnapshot())

	snap, err := sim.FetchSnapshot(context.Background(), "sim-1")
	if err != nil {
		t.Fatalf("FetchSnapshot() error = %v", err)
	}
	if snap.Status != models.StatusLive {
		t.Errorf("status = %q, want live", snap.Status)
	}
	if snap.Period != "Q1" || snap.Clock != "12:00" {
		t.Errorf("start of game = %s %s, want Q1 12:00", snap.Period, snap.Clock)
	}
}

func TestSimSource_ScoresNeverRegress(t *testing.T) {
	sim := NewSimSource(7)
	sim.Seed(seedSnapshot())
	ctx := context.Background()

	prevHome, prevAway := 0, 0
	for i := 0; i < 50; i++ {
		if _, err := sim.FetchDelta(ctx, "sim-1"); err != nil {
			t.Fatalf("FetchDelta() error = %v", err)
		}
		snap, err := sim.FetchSnapshot(ctx, "sim-1")
		if err != nil {
			t.Fatalf("FetchSnapshot() error = %v", err)
		}
		if snap.HomeTeam.Score < prevHome || snap.AwayTeam.Score < prevAway {
			t.Fatalf("score regressed at tick %d: %d/%d after %d/%d",
				i, snap.HomeTeam.Score, snap.AwayTeam.Score, prevHome, prevAway)
		}
		prevHome, prevAway = snap.HomeTeam.Score, snap.AwayTeam.Score
	}
}

func TestSimSource_ReachesFinal(t *testing.T) {
	sim := NewSimSource(3)
	sim.Seed(seedSnapshot())
	ctx := context.Background()

	// Four 12-minute periods at 35 simulated seconds per tick is well
	// under 200 ticks.
	for i := 0; i < 200; i++ {
		if _, err := sim.FetchDelta(ctx, "sim-1"); err != nil {
			t.Fatalf("FetchDelta() error = %v", err)
		}
	}

	snap, err := sim.FetchSnapshot(ctx, "sim-1")
	if err != nil {
		t.Fatalf("FetchSnapshot() error = %v", err)
	}
	if snap.Status != models.StatusFinal {
		t.Fatalf("status after regulation = %q, want final", snap.Status)
	}

	// A finished game stays quiet.
	delta, err := sim.FetchDelta(ctx, "sim-1")
	if err != nil {
		t.Fatalf("FetchDelta() after final error = %v", err)
	}
	if delta != nil {
		t.Errorf("final game produced delta %+v", delta)
	}
}

func TestSimSource_UnknownGame(t *testing.T) {
	sim := NewSimSource(1)
	if _, err := sim.FetchSnapshot(context.Background(), "nope"); err == nil {
		t.Error("FetchSnapshot for unseeded game should fail")
	}
	if _, err := sim.FetchDelta(context.Background(), "nope"); err == nil {
		t.Error("FetchDelta for unseeded game should fail")
	}
}

func TestSimSource_SeedDoesNotAliasCaller(t *testing.T) {
	sim := NewSimSource(1)
	seed := seedSnapshot()
	sim.Seed(seed)

	seed.HomeTeam.Players[0].Points = 99

	snap, err := sim.FetchSnapshot(context.Background(), "sim-1")
	if err != nil {
		t.Fatalf("FetchSnapshot() error = %v", err)
	}
	if got := snap.HomeTeam.PlayerByID("p1").Points; got == 99 {
		t.Error("caller mutation leaked into simulation state")
	}
}
