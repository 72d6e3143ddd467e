package prefs

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/mpcost/hoopzone/go/internal/models"
)

// PrefsRepository defines what the app layer needs from the repository.
type PrefsRepository interface {
	UpsertPreference(ctx context.Context, pref models.TeamPreference) (*models.TeamPreference, error)
	GetPreference(ctx context.Context, userID string) (*models.TeamPreference, error)
	DeletePreference(ctx context.Context, userID string) error
}

// App handles team preference business logic.
type App struct {
	repo PrefsRepository
}

func NewApp(repo PrefsRepository) *App {
	return &App{repo: repo}
}

// SetMyTeam saves or replaces the user's followed team.
func (a *App) SetMyTeam(ctx context.Context, pref models.TeamPreference) (*models.TeamPreference, error) {
	if pref.UserID == "" {
		return nil, fmt.Errorf("validation failed: user id is required")
	}
	if pref.TeamID == "" {
		return nil, fmt.Errorf("validation failed: team id is required")
	}

	saved, err := a.repo.UpsertPreference(ctx, pref)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("user_id", saved.UserID).
		Str("team", saved.TeamName).
		Msg("team preference saved")
	return saved, nil
}

// GetMyTeam returns the user's followed team, or ErrNotFound.
func (a *App) GetMyTeam(ctx context.Context, userID string) (*models.TeamPreference, error) {
	if userID == "" {
		return nil, fmt.Errorf("validation failed: user id is required")
	}
	return a.repo.GetPreference(ctx, userID)
}

// ClearMyTeam removes the user's followed team.
func (a *App) ClearMyTeam(ctx context.Context, userID string) error {
	if userID == "" {
		return fmt.Errorf("validation failed: user id is required")
	}
	if err := a.repo.DeletePreference(ctx, userID); err != nil {
		return err
	}

	log.Info().Str("user_id", userID).Msg("team preference cleared")
	return nil
}
