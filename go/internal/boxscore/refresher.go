package boxscore

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/mpcost/hoopzone/go/internal/models"
	"github.com/mpcost/hoopzone/go/internal/source"
)

const DefaultRefreshInterval = time.Hour

// Archiver is the slice of Repository the refresher needs.
type Archiver interface {
	Archive(ctx context.Context, snap *models.GameSnapshot) error
	IsLogged(ctx context.Context, gameID string) (bool, error)
}

// Refresher periodically sweeps the day's games and archives the box
// score of every final that has not been logged yet. Games already in
// the update log are skipped, so reruns and restarts never refetch.
// Scoreboard listings only name the finals; the full player lines come
// from the box score fetcher before anything is archived.
type Refresher struct {
	archiver Archiver
	lister   source.Lister
	fetcher  source.BoxScoreFetcher
	clock    clockwork.Clock
	interval time.Duration
}

func NewRefresher(archiver Archiver, lister source.Lister, fetcher source.BoxScoreFetcher) *Refresher {
	return &Refresher{
		archiver: archiver,
		lister:   lister,
		fetcher:  fetcher,
		clock:    clockwork.NewRealClock(),
		interval: DefaultRefreshInterval,
	}
}

func (r *Refresher) WithClock(clock clockwork.Clock) *Refresher {
	r.clock = clock
	return r
}

func (r *Refresher) WithInterval(interval time.Duration) *Refresher {
	r.interval = interval
	return r
}

// Run sweeps once immediately and then on every interval until ctx is
// cancelled.
func (r *Refresher) Run(ctx context.Context) {
	log.Info().Dur("interval", r.interval).Msg("box score refresher started")

	r.Sweep(ctx)

	ticker := r.clock.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("box score refresher stopped")
			return
		case <-ticker.Chan():
			r.Sweep(ctx)
		}
	}
}

// Sweep archives every unlogged final game for today and yesterday.
// Yesterday is included because late games finish after midnight.
func (r *Refresher) Sweep(ctx context.Context) {
	now := r.clock.Now()
	archived := 0
	for _, date := range []time.Time{now, now.AddDate(0, 0, -1)} {
		archived += r.sweepDate(ctx, date)
	}
	if archived > 0 {
		log.Info().Int("archived", archived).Msg("box score sweep complete")
	}
}

func (r *Refresher) sweepDate(ctx context.Context, date time.Time) int {
	snaps, err := r.lister.ListGames(ctx, date)
	if err != nil {
		log.Error().Err(err).Str("date", date.Format("2006-01-02")).Msg("box score sweep failed")
		return 0
	}

	archived := 0
	for _, snap := range snaps {
		if snap.Status != models.StatusFinal {
			continue
		}

		logged, err := r.archiver.IsLogged(ctx, snap.GameID)
		if err != nil {
			log.Error().Err(err).Str("game_id", snap.GameID).Msg("update log check failed")
			continue
		}
		if logged {
			continue
		}

		// The listing snapshot has no player lines. Fetch the real box
		// score; a failed fetch leaves the game unlogged for the next
		// sweep.
		full, err := r.fetcher.FetchBoxScore(ctx, snap.GameID)
		if err != nil {
			log.Error().Err(err).Str("game_id", snap.GameID).Msg("box score fetch failed")
			continue
		}

		if err := r.archiver.Archive(ctx, full); err != nil {
			log.Error().Err(err).Str("game_id", snap.GameID).Msg("box score archive failed")
			continue
		}
		archived++
		log.Info().Str("game_id", snap.GameID).Msg("box score archived")
	}
	return archived
}
