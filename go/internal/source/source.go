package source

import (
	"context"
	"time"

	"github.com/mpcost/hoopzone/go/internal/models"
)

// SnapshotSource produces the full state of a game, used to mount or
// re-mount a view.
type SnapshotSource interface {
	FetchSnapshot(ctx context.Context, gameID string) (*models.GameSnapshot, error)
}

// BoxScoreFetcher produces the full per-player box score of a game.
// Scoreboard listings carry scores only; the archive needs this.
type BoxScoreFetcher interface {
	FetchBoxScore(ctx context.Context, gameID string) (*models.GameSnapshot, error)
}

// Lister enumerates the games a feed should track for a date.
type Lister interface {
	ListGames(ctx context.Context, date time.Time) ([]*models.GameSnapshot, error)
}
