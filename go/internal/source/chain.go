package source

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/mpcost/hoopzone/go/internal/models"
)

// ErrAllSourcesFailed is returned when every source in a chain failed.
var ErrAllSourcesFailed = errors.New("all sources failed")

// Chain tries sources in order until one succeeds. Failures are logged
// and the next source is consulted, so a dead API degrades the view to
// bundled data rather than an empty screen. The first source is the
// primary; later ones only see traffic when everything before them fails.
type Chain struct {
	sources []SnapshotSource
}

func NewChain(sources ...SnapshotSource) *Chain {
	return &Chain{sources: sources}
}

func (c *Chain) FetchSnapshot(ctx context.Context, gameID string) (*models.GameSnapshot, error) {
	var lastErr error
	for i, src := range c.sources {
		snap, err := src.FetchSnapshot(ctx, gameID)
		if err == nil {
			return snap, nil
		}
		lastErr = err
		log.Warn().
			Err(err).
			Int("source", i).
			Str("game_id", gameID).
			Msg("snapshot source failed, trying next")
	}
	return nil, fmt.Errorf("%w: %v", ErrAllSourcesFailed, lastErr)
}

// FetchBoxScore consults the sources that can serve full box scores, in
// chain order, with the same failover policy as FetchSnapshot.
func (c *Chain) FetchBoxScore(ctx context.Context, gameID string) (*models.GameSnapshot, error) {
	var lastErr error
	for i, src := range c.sources {
		fetcher, ok := src.(BoxScoreFetcher)
		if !ok {
			continue
		}
		snap, err := fetcher.FetchBoxScore(ctx, gameID)
		if err == nil {
			return snap, nil
		}
		lastErr = err
		log.Warn().
			Err(err).
			Int("source", i).
			Str("game_id", gameID).
			Msg("box score source failed, trying next")
	}
	if lastErr == nil {
		return nil, fmt.Errorf("%w: no source can fetch box scores", ErrAllSourcesFailed)
	}
	return nil, fmt.Errorf("%w: %v", ErrAllSourcesFailed, lastErr)
}

// ListGames consults the sources that can enumerate games, in chain
// order, with the same failover policy as FetchSnapshot.
func (c *Chain) ListGames(ctx context.Context, date time.Time) ([]*models.GameSnapshot, error) {
	var lastErr error
	for i, src := range c.sources {
		lister, ok := src.(Lister)
		if !ok {
			continue
		}
		snaps, err := lister.ListGames(ctx, date)
		if err == nil {
			return snaps, nil
		}
		lastErr = err
		log.Warn().
			Err(err).
			Int("source", i).
			Msg("game list source failed, trying next")
	}
	if lastErr == nil {
		return nil, fmt.Errorf("%w: no source can list games", ErrAllSourcesFailed)
	}
	return nil, fmt.Errorf("%w: %v", ErrAllSourcesFailed, lastErr)
}
