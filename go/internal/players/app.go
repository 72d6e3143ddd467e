package players

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/mpcost/hoopzone/go/clients"
	"github.com/mpcost/hoopzone/go/clients/ballapi_client"
	"github.com/mpcost/hoopzone/go/internal/media"
	"github.com/mpcost/hoopzone/go/internal/models"
)

const (
	// Profiles show the player's last five games, per the dashboard.
	recentGames = 5

	// Cached game lines are refetched after this long. Stat lines only
	// move on game nights, so hours of staleness is acceptable.
	statsCacheTTL = 6 * time.Hour
)

// ErrNotFound is returned when no player exists for an id.
var ErrNotFound = errors.New("player not found")

// Directory is the slice of the ball API client the app needs.
type Directory interface {
	GetPlayers(ctx context.Context, search string, cursor int) (*ballapi_client.PlayersResponse, error)
	GetPlayer(ctx context.Context, playerID string) (*models.PlayerInfo, error)
	GetPlayerGameLines(ctx context.Context, playerID string, limit int) ([]models.PlayerGameLine, error)
}

// StatsCache stores recent game lines per player. The Postgres
// Repository satisfies this.
type StatsCache interface {
	GetLines(ctx context.Context, playerID string) ([]models.PlayerGameLine, time.Time, error)
	PutLines(ctx context.Context, playerID string, lines []models.PlayerGameLine) error
}

// DirectoryPage is one page of player search results.
type DirectoryPage struct {
	Players    []models.PlayerInfo `json:"players"`
	NextCursor int                 `json:"next_cursor,omitempty"`
}

// GameAverages summarizes a profile's recent game lines.
type GameAverages struct {
	Games    int     `json:"games"`
	Minutes  float64 `json:"minutes"`
	Points   float64 `json:"points"`
	Rebounds float64 `json:"rebounds"`
	Assists  float64 `json:"assists"`
}

// Profile is the full player page: bio, headshot, recent games, and
// averages over them.
type Profile struct {
	Player      models.PlayerInfo       `json:"player"`
	HeadshotURL string                  `json:"headshot_url"`
	Fallback    string                  `json:"fallback"`
	LastGames   []models.PlayerGameLine `json:"last_games"`
	Averages    GameAverages            `json:"averages"`
}

// App handles player directory business logic.
type App struct {
	dir   Directory
	cache StatsCache
	clock clockwork.Clock
}

// NewApp creates the player directory app. cache may be nil; profiles
// then hit the stats API on every request.
func NewApp(dir Directory, cache StatsCache) *App {
	return &App{dir: dir, cache: cache, clock: clockwork.NewRealClock()}
}

func (a *App) WithClock(clock clockwork.Clock) *App {
	a.clock = clock
	return a
}

// Search returns one page of directory matches for a name fragment.
func (a *App) Search(ctx context.Context, search string, cursor int) (*DirectoryPage, error) {
	resp, err := a.dir.GetPlayers(ctx, search, cursor)
	if err != nil {
		return nil, fmt.Errorf("failed to search players: %w", err)
	}
	return &DirectoryPage{Players: resp.Data, NextCursor: resp.Meta.NextCursor}, nil
}

// GetProfile returns the player's bio plus their recent game lines,
// served from the stats cache while it is fresh.
func (a *App) GetProfile(ctx context.Context, playerID string) (*Profile, error) {
	if playerID == "" {
		return nil, errors.New("player id is required")
	}

	player, err := a.dir.GetPlayer(ctx, playerID)
	if err != nil {
		var statusErr *clients.StatusError
		if errors.As(err, &statusErr) && statusErr.StatusCode == 404 {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get player %s: %w", playerID, err)
	}
	if player.ID == "" {
		return nil, ErrNotFound
	}

	lines := a.recentLines(ctx, playerID)

	return &Profile{
		Player:      *player,
		HeadshotURL: media.PlayerHeadshotURL(player.ID),
		Fallback:    media.Initials(player.FullName()),
		LastGames:   lines,
		Averages:    averages(lines),
	}, nil
}

// recentLines serves cached game lines while fresh, refetching on miss
// or expiry. A failed refetch falls back to whatever the cache still
// holds; a profile with stale games beats one with none.
func (a *App) recentLines(ctx context.Context, playerID string) []models.PlayerGameLine {
	var cached []models.PlayerGameLine
	if a.cache != nil {
		lines, cachedAt, err := a.cache.GetLines(ctx, playerID)
		if err == nil {
			if a.clock.Now().Sub(cachedAt) < statsCacheTTL {
				return lines
			}
			cached = lines
		} else if !errors.Is(err, ErrCacheMiss) {
			log.Warn().Err(err).Str("player_id", playerID).Msg("stats cache read failed")
		}
	}

	lines, err := a.dir.GetPlayerGameLines(ctx, playerID, recentGames)
	if err != nil {
		log.Warn().Err(err).Str("player_id", playerID).Msg("game lines fetch failed, serving cached")
		return cached
	}

	if a.cache != nil {
		if err := a.cache.PutLines(ctx, playerID, lines); err != nil {
			log.Warn().Err(err).Str("player_id", playerID).Msg("stats cache write failed")
		}
	}
	return lines
}

func averages(lines []models.PlayerGameLine) GameAverages {
	avg := GameAverages{Games: len(lines)}
	if len(lines) == 0 {
		return avg
	}
	for _, line := range lines {
		avg.Minutes += line.Minutes
		avg.Points += float64(line.Points)
		avg.Rebounds += float64(line.Rebounds)
		avg.Assists += float64(line.Assists)
	}
	n := float64(len(lines))
	avg.Minutes /= n
	avg.Points /= n
	avg.Rebounds /= n
	avg.Assists /= n
	return avg
}
