package boxscore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mpcost/hoopzone/go/internal/models"
	"github.com/mpcost/hoopzone/go/internal/sqlutil"
)

// ErrNotFound is returned when a game has no archived box score.
var ErrNotFound = errors.New("box score not found")

// Repository persists final box scores and the log of games already
// archived. The log is what makes the refresher idempotent: a game id
// present there is never fetched again.
type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

const insertBoxScoreSQL = `
INSERT INTO box_scores (game_id, snapshot, starts_at, archived_at)
VALUES ($1, $2, $3, NOW())
ON CONFLICT (game_id) DO NOTHING`

const insertUpdateLogSQL = `
INSERT INTO game_update_log (game_id, logged_at)
VALUES ($1, NOW())
ON CONFLICT (game_id) DO NOTHING`

// Archive stores a final snapshot and logs the game id in one
// transaction.
func (r *Repository) Archive(ctx context.Context, snap *models.GameSnapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal box score: %w", err)
	}

	return sqlutil.Run(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, insertBoxScoreSQL, snap.GameID, data, sqlutil.ToSqlTime(snap.StartsAt)); err != nil {
			return fmt.Errorf("insert box score: %w", err)
		}
		if _, err := tx.ExecContext(ctx, insertUpdateLogSQL, snap.GameID); err != nil {
			return fmt.Errorf("insert update log: %w", err)
		}
		return nil
	})
}

const isLoggedSQL = `SELECT EXISTS (SELECT 1 FROM game_update_log WHERE game_id = $1)`

// IsLogged reports whether a game has already been archived.
func (r *Repository) IsLogged(ctx context.Context, gameID string) (bool, error) {
	var logged bool
	if err := r.db.QueryRowContext(ctx, isLoggedSQL, gameID).Scan(&logged); err != nil {
		return false, fmt.Errorf("check update log: %w", err)
	}
	return logged, nil
}

const getBoxScoreSQL = `SELECT snapshot, starts_at FROM box_scores WHERE game_id = $1`

func (r *Repository) GetBoxScore(ctx context.Context, gameID string) (*models.GameSnapshot, error) {
	var (
		data     []byte
		startsAt sql.NullTime
	)
	err := r.db.QueryRowContext(ctx, getBoxScoreSQL, gameID).Scan(&data, &startsAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get box score: %w", err)
	}

	var snap models.GameSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("unmarshal box score: %w", err)
	}
	if snap.StartsAt.IsZero() {
		snap.StartsAt = sqlutil.FromSqlTime(startsAt)
	}
	snap.HomeTeam.Reindex()
	snap.AwayTeam.Reindex()
	return &snap, nil
}
