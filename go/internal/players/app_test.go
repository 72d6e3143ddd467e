package players

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/mpcost/hoopzone/go/clients"
	"github.com/mpcost/hoopzone/go/clients/ballapi_client"
	"github.com/mpcost/hoopzone/go/internal/media"
	"github.com/mpcost/hoopzone/go/internal/models"
)

type fakeDirectory struct {
	players    map[string]models.PlayerInfo
	lines      []models.PlayerGameLine
	linesErr   error
	linesCalls int
}

func (f *fakeDirectory) GetPlayers(ctx context.Context, search string, cursor int) (*ballapi_client.PlayersResponse, error) {
	resp := &ballapi_client.PlayersResponse{}
	for _, p := range f.players {
		resp.Data = append(resp.Data, p)
	}
	return resp, nil
}

func (f *fakeDirectory) GetPlayer(ctx context.Context, playerID string) (*models.PlayerInfo, error) {
	p, ok := f.players[playerID]
	if !ok {
		return nil, &clients.StatusError{StatusCode: 404, Body: "Not Found"}
	}
	return &p, nil
}

func (f *fakeDirectory) GetPlayerGameLines(ctx context.Context, playerID string, limit int) ([]models.PlayerGameLine, error) {
	f.linesCalls++
	if f.linesErr != nil {
		return nil, f.linesErr
	}
	return f.lines, nil
}

type fakeStatsCache struct {
	lines    map[string][]models.PlayerGameLine
	cachedAt map[string]time.Time
}

func newFakeStatsCache() *fakeStatsCache {
	return &fakeStatsCache{
		lines:    make(map[string][]models.PlayerGameLine),
		cachedAt: make(map[string]time.Time),
	}
}

func (f *fakeStatsCache) GetLines(ctx context.Context, playerID string) ([]models.PlayerGameLine, time.Time, error) {
	lines, ok := f.lines[playerID]
	if !ok {
		return nil, time.Time{}, ErrCacheMiss
	}
	return lines, f.cachedAt[playerID], nil
}

func (f *fakeStatsCache) PutLines(ctx context.Context, playerID string, lines []models.PlayerGameLine) error {
	f.lines[playerID] = lines
	f.cachedAt[playerID] = time.Now()
	return nil
}

func tatum() models.PlayerInfo {
	return models.PlayerInfo{
		ID: "p1", FirstName: "Jayson", LastName: "Tatum", Position: "F",
		TeamID: "2", TeamName: "Boston Celtics", TeamAbbr: "BOS",
	}
}

func line(points, rebounds int) models.PlayerGameLine {
	return models.PlayerGameLine{GameID: "g1", Minutes: 36, Points: points, Rebounds: rebounds, Assists: 4}
}

func TestGetProfile_BioAndHeadshot(t *testing.T) {
	dir := &fakeDirectory{players: map[string]models.PlayerInfo{"p1": tatum()}}
	app := NewApp(dir, nil)

	profile, err := app.GetProfile(context.Background(), "p1")
	if err != nil {
		t.Fatalf("GetProfile() error = %v", err)
	}
	if profile.Player.FullName() != "Jayson Tatum" {
		t.Errorf("full name = %q", profile.Player.FullName())
	}
	if profile.HeadshotURL != media.PlayerHeadshotURL("p1") {
		t.Errorf("headshot = %q", profile.HeadshotURL)
	}
	if profile.Fallback != "JT" {
		t.Errorf("fallback = %q, want JT", profile.Fallback)
	}
}

func TestGetProfile_UnknownPlayer(t *testing.T) {
	dir := &fakeDirectory{players: map[string]models.PlayerInfo{}}
	app := NewApp(dir, nil)

	if _, err := app.GetProfile(context.Background(), "nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestGetProfile_Averages(t *testing.T) {
	dir := &fakeDirectory{
		players: map[string]models.PlayerInfo{"p1": tatum()},
		lines:   []models.PlayerGameLine{line(30, 8), line(20, 6)},
	}
	app := NewApp(dir, nil)

	profile, err := app.GetProfile(context.Background(), "p1")
	if err != nil {
		t.Fatalf("GetProfile() error = %v", err)
	}
	if len(profile.LastGames) != 2 {
		t.Fatalf("last games = %d, want 2", len(profile.LastGames))
	}
	if profile.Averages.Games != 2 || profile.Averages.Points != 25 || profile.Averages.Rebounds != 7 {
		t.Errorf("averages = %+v, want 2 games, 25 pts, 7 reb", profile.Averages)
	}
}

func TestGetProfile_ServesFreshCacheWithoutRefetch(t *testing.T) {
	dir := &fakeDirectory{
		players: map[string]models.PlayerInfo{"p1": tatum()},
		lines:   []models.PlayerGameLine{line(30, 8)},
	}
	cache := newFakeStatsCache()
	app := NewApp(dir, cache)

	if _, err := app.GetProfile(context.Background(), "p1"); err != nil {
		t.Fatalf("first GetProfile() error = %v", err)
	}
	if dir.linesCalls != 1 {
		t.Fatalf("lines calls after miss = %d, want 1", dir.linesCalls)
	}

	if _, err := app.GetProfile(context.Background(), "p1"); err != nil {
		t.Fatalf("second GetProfile() error = %v", err)
	}
	if dir.linesCalls != 1 {
		t.Errorf("lines calls with warm cache = %d, want 1", dir.linesCalls)
	}
}

func TestGetProfile_ExpiredCacheRefetches(t *testing.T) {
	dir := &fakeDirectory{
		players: map[string]models.PlayerInfo{"p1": tatum()},
		lines:   []models.PlayerGameLine{line(30, 8)},
	}
	cache := newFakeStatsCache()
	cache.lines["p1"] = []models.PlayerGameLine{line(10, 2)}
	cache.cachedAt["p1"] = time.Now().Add(-24 * time.Hour)

	app := NewApp(dir, cache).WithClock(clockwork.NewRealClock())

	profile, err := app.GetProfile(context.Background(), "p1")
	if err != nil {
		t.Fatalf("GetProfile() error = %v", err)
	}
	if dir.linesCalls != 1 {
		t.Errorf("lines calls = %d, want a refetch", dir.linesCalls)
	}
	if profile.LastGames[0].Points != 30 {
		t.Errorf("points = %d, want the refetched line", profile.LastGames[0].Points)
	}
}

func TestGetProfile_FetchErrorServesStaleCache(t *testing.T) {
	dir := &fakeDirectory{
		players:  map[string]models.PlayerInfo{"p1": tatum()},
		linesErr: errors.New("api down"),
	}
	cache := newFakeStatsCache()
	cache.lines["p1"] = []models.PlayerGameLine{line(10, 2)}
	cache.cachedAt["p1"] = time.Now().Add(-24 * time.Hour)

	app := NewApp(dir, cache)

	profile, err := app.GetProfile(context.Background(), "p1")
	if err != nil {
		t.Fatalf("GetProfile() error = %v", err)
	}
	if len(profile.LastGames) != 1 || profile.LastGames[0].Points != 10 {
		t.Errorf("last games = %+v, want the stale cached line", profile.LastGames)
	}
}

func TestSearch_PassesThroughPage(t *testing.T) {
	dir := &fakeDirectory{players: map[string]models.PlayerInfo{"p1": tatum()}}
	app := NewApp(dir, nil)

	page, err := app.Search(context.Background(), "tatum", 0)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(page.Players) != 1 || page.Players[0].ID != "p1" {
		t.Errorf("players = %+v, want [p1]", page.Players)
	}
}
