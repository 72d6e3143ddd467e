package prefs

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mpcost/hoopzone/go/internal/models"
)

// ErrNotFound is returned when a user has no saved preference.
var ErrNotFound = errors.New("team preference not found")

// Repository implements preference data access on Postgres.
type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

const upsertPreferenceSQL = `
INSERT INTO team_preferences (user_id, team_id, team_name, abbreviation, updated_at)
VALUES ($1, $2, $3, $4, NOW())
ON CONFLICT (user_id)
DO UPDATE SET team_id = $2, team_name = $3, abbreviation = $4, updated_at = NOW()
RETURNING user_id, team_id, team_name, abbreviation, updated_at`

func (r *Repository) UpsertPreference(ctx context.Context, pref models.TeamPreference) (*models.TeamPreference, error) {
	row := r.db.QueryRowContext(ctx, upsertPreferenceSQL,
		pref.UserID, pref.TeamID, pref.TeamName, pref.Abbreviation)

	var saved models.TeamPreference
	if err := row.Scan(&saved.UserID, &saved.TeamID, &saved.TeamName, &saved.Abbreviation, &saved.UpdatedAt); err != nil {
		return nil, fmt.Errorf("failed to upsert preference: %w", err)
	}
	return &saved, nil
}

const getPreferenceSQL = `
SELECT user_id, team_id, team_name, abbreviation, updated_at
FROM team_preferences
WHERE user_id = $1`

func (r *Repository) GetPreference(ctx context.Context, userID string) (*models.TeamPreference, error) {
	row := r.db.QueryRowContext(ctx, getPreferenceSQL, userID)

	var pref models.TeamPreference
	err := row.Scan(&pref.UserID, &pref.TeamID, &pref.TeamName, &pref.Abbreviation, &pref.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get preference: %w", err)
	}
	return &pref, nil
}

const deletePreferenceSQL = `DELETE FROM team_preferences WHERE user_id = $1`

func (r *Repository) DeletePreference(ctx context.Context, userID string) error {
	result, err := r.db.ExecContext(ctx, deletePreferenceSQL, userID)
	if err != nil {
		return fmt.Errorf("failed to delete preference: %w", err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}
