package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mpcost/hoopzone/go/clients"
	"github.com/mpcost/hoopzone/go/clients/ballapi_client"
	"github.com/mpcost/hoopzone/go/internal/snapshot"
)

const liveGamePayload = `{
	"id": 401,
	"status": "Q2 5:31",
	"home_team": {"id": 14, "full_name": "Los Angeles Lakers", "abbreviation": "LAL", "score": 55, "players": []},
	"visitor_team": {"id": 2, "full_name": "Boston Celtics", "abbreviation": "BOS", "score": 49, "players": []}
}`

const boxScorePayload = `{
	"id": 401,
	"status": "Final",
	"home_team": {"id": 14, "full_name": "Los Angeles Lakers", "abbreviation": "LAL", "score": 112,
		"players": [{"id": "p1", "name": "Guard One", "minutes_played": "34:12", "points": 30}]},
	"visitor_team": {"id": 2, "full_name": "Boston Celtics", "abbreviation": "BOS", "score": 109,
		"players": [{"id": "p2", "name": "Wing Two", "minutes_played": "31:40", "points": 25}]}
}`

func newTestRestSource(t *testing.T, handler http.Handler) *RestSource {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client := &ballapi_client.BallApiClient{BaseClient: clients.NewBaseClient(srv.URL)}
	return NewRestSource(client, snapshot.NewNormalizer())
}

// Single resources arrive inside the same data envelope the list
// endpoints use. FetchSnapshot must see through it.
func TestRestSource_FetchSnapshotUnwrapsEnvelope(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/games/401", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": ` + liveGamePayload + `}`))
	})
	src := newTestRestSource(t, mux)

	snap, err := src.FetchSnapshot(context.Background(), "401")
	if err != nil {
		t.Fatalf("FetchSnapshot() error = %v", err)
	}
	if snap.GameID != "401" {
		t.Errorf("GameID = %q, want 401", snap.GameID)
	}
	if snap.HomeTeam.Score != 55 || snap.AwayTeam.Score != 49 {
		t.Errorf("score = %d-%d, want 55-49", snap.HomeTeam.Score, snap.AwayTeam.Score)
	}
	if snap.Period != "Q2" || snap.Clock != "5:31" {
		t.Errorf("period/clock = %q %q, want Q2 5:31", snap.Period, snap.Clock)
	}
}

// A game served by the scoreboard listing must also resolve through the
// single-game endpoint.
func TestRestSource_ListingAndSingleGameAgree(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/games", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": [` + liveGamePayload + `]}`))
	})
	mux.HandleFunc("/games/401", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": ` + liveGamePayload + `}`))
	})
	src := newTestRestSource(t, mux)

	listed, err := src.ListGames(context.Background(), time.Now())
	if err != nil {
		t.Fatalf("ListGames() error = %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("listed %d games, want 1", len(listed))
	}

	single, err := src.FetchSnapshot(context.Background(), listed[0].GameID)
	if err != nil {
		t.Fatalf("FetchSnapshot(%q) error = %v", listed[0].GameID, err)
	}
	if single.GameID != listed[0].GameID {
		t.Errorf("GameID = %q, want %q", single.GameID, listed[0].GameID)
	}
	if single.HomeTeam.Score != listed[0].HomeTeam.Score {
		t.Errorf("home score = %d, want %d", single.HomeTeam.Score, listed[0].HomeTeam.Score)
	}
}

// Bare payloads without the envelope still normalize, for mirrors and
// fixtures that serve the game directly.
func TestRestSource_FetchSnapshotAcceptsBarePayload(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/games/401", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(liveGamePayload))
	})
	src := newTestRestSource(t, mux)

	snap, err := src.FetchSnapshot(context.Background(), "401")
	if err != nil {
		t.Fatalf("FetchSnapshot() error = %v", err)
	}
	if snap.GameID != "401" {
		t.Errorf("GameID = %q, want 401", snap.GameID)
	}
}

func TestRestSource_FetchBoxScoreCarriesPlayerLines(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/box_scores", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": [` + boxScorePayload + `]}`))
	})
	src := newTestRestSource(t, mux)

	snap, err := src.FetchBoxScore(context.Background(), "401")
	if err != nil {
		t.Fatalf("FetchBoxScore() error = %v", err)
	}
	if len(snap.HomeTeam.Players) != 1 || len(snap.AwayTeam.Players) != 1 {
		t.Fatalf("player lines = %d/%d, want 1/1",
			len(snap.HomeTeam.Players), len(snap.AwayTeam.Players))
	}
	if got := snap.HomeTeam.Players[0].Points; got != 30 {
		t.Errorf("home player points = %d, want 30", got)
	}
}

func TestRestSource_FetchBoxScoreEmptyData(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/box_scores", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": []}`))
	})
	src := newTestRestSource(t, mux)

	if _, err := src.FetchBoxScore(context.Background(), "401"); err == nil {
		t.Error("empty box score data should fail")
	}
}
