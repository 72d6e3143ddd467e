package players

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/mpcost/hoopzone/go/internal/models"
)

// ErrCacheMiss is returned when a player has no cached game lines.
var ErrCacheMiss = errors.New("player stats not cached")

// Repository caches recent game lines per player in Postgres. Profile
// views hit this before the stats API; entries go stale on a TTL the app
// layer enforces.
type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

const upsertLinesSQL = `
INSERT INTO player_stats_cache (player_id, lines, cached_at)
VALUES ($1, $2, NOW())
ON CONFLICT (player_id)
DO UPDATE SET lines = $2, cached_at = NOW()`

func (r *Repository) PutLines(ctx context.Context, playerID string, lines []models.PlayerGameLine) error {
	data, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("marshal game lines: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, upsertLinesSQL, playerID, data); err != nil {
		return fmt.Errorf("failed to cache game lines: %w", err)
	}
	return nil
}

const getLinesSQL = `SELECT lines, cached_at FROM player_stats_cache WHERE player_id = $1`

func (r *Repository) GetLines(ctx context.Context, playerID string) ([]models.PlayerGameLine, time.Time, error) {
	var (
		data     []byte
		cachedAt time.Time
	)
	err := r.db.QueryRowContext(ctx, getLinesSQL, playerID).Scan(&data, &cachedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, time.Time{}, ErrCacheMiss
	}
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("failed to get cached game lines: %w", err)
	}

	var lines []models.PlayerGameLine
	if err := json.Unmarshal(data, &lines); err != nil {
		return nil, time.Time{}, fmt.Errorf("unmarshal game lines: %w", err)
	}
	return lines, cachedAt, nil
}
