package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mpcost/hoopzone/go/internal/models"
	"github.com/mpcost/hoopzone/go/internal/snapshot"
)

const fixtureGame = `{
	"id": 401,
	"status": "Final",
	"home_team": {"id": 14, "full_name": "Los Angeles Lakers", "abbreviation": "LAL", "score": 112, "players": []},
	"visitor_team": {"id": 2, "full_name": "Boston Celtics", "abbreviation": "BOS", "score": 109, "players": []}
}`

func writeFixture(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture %s: %v", name, err)
	}
}

func TestFileSource_FetchSnapshot(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "401.json", fixtureGame)
	src := NewFileSource(dir, snapshot.NewNormalizer())

	snap, err := src.FetchSnapshot(context.Background(), "401")
	if err != nil {
		t.Fatalf("FetchSnapshot() error = %v", err)
	}
	if snap.GameID != "401" {
		t.Errorf("GameID = %q, want 401", snap.GameID)
	}
	if snap.Status != models.StatusFinal {
		t.Errorf("Status = %q, want final", snap.Status)
	}
	if snap.HomeTeam.Score != 112 || snap.AwayTeam.Score != 109 {
		t.Errorf("score = %d-%d, want 112-109", snap.HomeTeam.Score, snap.AwayTeam.Score)
	}
}

func TestFileSource_MissingFile(t *testing.T) {
	src := NewFileSource(t.TempDir(), snapshot.NewNormalizer())
	if _, err := src.FetchSnapshot(context.Background(), "nope"); err == nil {
		t.Error("missing file should fail")
	}
}

func TestFileSource_ListGamesSkipsMalformed(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "games.json", `[`+fixtureGame+`, {"id": 999}]`)
	src := NewFileSource(dir, snapshot.NewNormalizer())

	games, err := src.ListGames(context.Background(), time.Now())
	if err != nil {
		t.Fatalf("ListGames() error = %v", err)
	}
	if len(games) != 1 {
		t.Fatalf("games = %d, want the malformed entry skipped", len(games))
	}
	if games[0].GameID != "401" {
		t.Errorf("GameID = %q, want 401", games[0].GameID)
	}
}

func TestFileSource_DeltaIsAlwaysEmpty(t *testing.T) {
	src := NewFileSource(t.TempDir(), snapshot.NewNormalizer())
	delta, err := src.FetchDelta(context.Background(), "401")
	if err != nil {
		t.Fatalf("FetchDelta() error = %v", err)
	}
	if delta != nil {
		t.Errorf("static source produced delta %+v", delta)
	}
}
