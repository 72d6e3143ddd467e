package source

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/mpcost/hoopzone/go/clients/ballapi_client"
	"github.com/mpcost/hoopzone/go/internal/models"
	"github.com/mpcost/hoopzone/go/internal/snapshot"
)

// RestSource feeds snapshots and deltas from the ball API. Deltas are
// computed client-side: the upstream only serves full game payloads, so
// FetchDelta diffs each fetch against the last snapshot it saw.
type RestSource struct {
	client     *ballapi_client.BallApiClient
	normalizer *snapshot.Normalizer

	mu   sync.Mutex
	last map[string]*models.GameSnapshot
}

func NewRestSource(client *ballapi_client.BallApiClient, normalizer *snapshot.Normalizer) *RestSource {
	return &RestSource{
		client:     client,
		normalizer: normalizer,
		last:       make(map[string]*models.GameSnapshot),
	}
}

func (s *RestSource) FetchSnapshot(ctx context.Context, gameID string) (*models.GameSnapshot, error) {
	payload, err := s.client.GetGame(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("fetch game %s: %w", gameID, err)
	}

	snap, err := s.normalizer.Normalize(payload)
	if err != nil {
		return nil, fmt.Errorf("normalize game %s: %w", gameID, err)
	}

	s.mu.Lock()
	s.last[gameID] = snap
	s.mu.Unlock()

	return snap, nil
}

// FetchDelta refetches the game and returns only what changed since the
// previous fetch. The first fetch for a game yields no delta: the caller
// is expected to have mounted from FetchSnapshot already.
func (s *RestSource) FetchDelta(ctx context.Context, gameID string) (*models.GameDelta, error) {
	s.mu.Lock()
	prev := s.last[gameID]
	s.mu.Unlock()

	next, err := s.FetchSnapshot(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if prev == nil {
		log.Debug().Str("game_id", gameID).Msg("no baseline snapshot, skipping delta")
		return nil, nil
	}

	return snapshot.Diff(prev, next), nil
}

// FetchBoxScore fetches the full per-player box score. Unlike the games
// endpoints, this payload carries every player line for both teams.
func (s *RestSource) FetchBoxScore(ctx context.Context, gameID string) (*models.GameSnapshot, error) {
	payload, err := s.client.GetBoxScore(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("fetch box score %s: %w", gameID, err)
	}

	snap, err := s.normalizer.Normalize(payload)
	if err != nil {
		return nil, fmt.Errorf("normalize box score %s: %w", gameID, err)
	}
	return snap, nil
}

func (s *RestSource) ListGames(ctx context.Context, date time.Time) ([]*models.GameSnapshot, error) {
	payloads, err := s.client.GetGamesForDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("list games for %s: %w", date.Format("2006-01-02"), err)
	}

	snaps := make([]*models.GameSnapshot, 0, len(payloads))
	for _, payload := range payloads {
		snap, err := s.normalizer.Normalize(payload)
		if err != nil {
			// One broken game in the scoreboard should not hide the rest.
			log.Warn().Err(err).Msg("skipping malformed game payload")
			continue
		}
		snaps = append(snaps, snap)
	}
	return snaps, nil
}
