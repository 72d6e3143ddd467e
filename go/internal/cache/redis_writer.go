package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mpcost/hoopzone/go/internal/models"
)

const (
	TodaysGamesTTL   = 24 * time.Hour
	LiveSnapshotTTL  = 2 * time.Hour
	FinalSnapshotTTL = 6 * time.Hour
)

// RedisWriter caches normalized snapshots so the HTTP API and late
// dashboard joins can mount without hitting the upstream feed.
type RedisWriter struct {
	client *redis.Client
}

func NewRedisWriter(client *redis.Client) *RedisWriter {
	return &RedisWriter{client: client}
}

// WriteTodaysGames replaces the cached list of today's game ids.
func (w *RedisWriter) WriteTodaysGames(ctx context.Context, date time.Time, gameIDs []string) error {
	key := todaysGamesKey(date)

	values := make([]interface{}, len(gameIDs))
	for i, id := range gameIDs {
		values[i] = id
	}

	pipe := w.client.Pipeline()
	pipe.Del(ctx, key)
	if len(values) > 0 {
		pipe.RPush(ctx, key, values...)
	}
	pipe.Expire(ctx, key, TodaysGamesTTL)

	_, err := pipe.Exec(ctx)
	return err
}

func (w *RedisWriter) ReadTodaysGames(ctx context.Context, date time.Time) ([]string, error) {
	return w.client.LRange(ctx, todaysGamesKey(date), 0, -1).Result()
}

// WriteGameSnapshot stores a full snapshot under the game's key. Live
// games expire quickly; finals linger for post-game traffic.
func (w *RedisWriter) WriteGameSnapshot(ctx context.Context, snap *models.GameSnapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshaling snapshot: %w", err)
	}
	return w.client.Set(ctx, snapshotKey(snap.GameID), data, ttlForStatus(snap.Status)).Err()
}

// ReadGameSnapshot retrieves a cached snapshot. Returns redis.Nil via the
// driver when the game is not cached.
func (w *RedisWriter) ReadGameSnapshot(ctx context.Context, gameID string) (*models.GameSnapshot, error) {
	data, err := w.client.Get(ctx, snapshotKey(gameID)).Result()
	if err != nil {
		return nil, err
	}

	var snap models.GameSnapshot
	if err := json.Unmarshal([]byte(data), &snap); err != nil {
		return nil, fmt.Errorf("unmarshaling snapshot: %w", err)
	}
	snap.HomeTeam.Reindex()
	snap.AwayTeam.Reindex()
	return &snap, nil
}

// WriteGameStatus stores the status alone for cheap polling checks.
func (w *RedisWriter) WriteGameStatus(ctx context.Context, gameID string, status models.GameStatus) error {
	return w.client.Set(ctx, statusKey(gameID), string(status), ttlForStatus(status)).Err()
}

func (w *RedisWriter) ReadGameStatus(ctx context.Context, gameID string) (models.GameStatus, error) {
	val, err := w.client.Get(ctx, statusKey(gameID)).Result()
	if err != nil {
		return "", err
	}
	return models.GameStatus(val), nil
}

func ttlForStatus(status models.GameStatus) time.Duration {
	if status == models.StatusFinal {
		return FinalSnapshotTTL
	}
	return LiveSnapshotTTL
}

func todaysGamesKey(date time.Time) string {
	return fmt.Sprintf("games:today:%s", date.Format("2006-01-02"))
}

func snapshotKey(gameID string) string {
	return fmt.Sprintf("game:%s:snapshot", gameID)
}

func statusKey(gameID string) string {
	return fmt.Sprintf("game:%s:status", gameID)
}
