package livefeed

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/mpcost/hoopzone/go/internal/cache"
	"github.com/mpcost/hoopzone/go/internal/liveview"
	"github.com/mpcost/hoopzone/go/internal/models"
	"github.com/mpcost/hoopzone/go/internal/source"
)

const (
	DefaultDiscoveryInterval = 5 * time.Minute
	DefaultPollInterval      = 15 * time.Second
)

// Feed is the production assembly of the live view pipeline. It
// discovers the day's games, runs one controller and poller per live
// game with a NATS sink, and keeps the snapshot cache warm for the HTTP
// API and late subscribers.
type Feed struct {
	lister            source.Lister
	deltas            liveview.DeltaSource
	pub               EventPublisher
	cache             *cache.RedisWriter
	clock             clockwork.Clock
	discoveryInterval time.Duration
	pollInterval      time.Duration

	mu      sync.Mutex
	tracked map[string]*trackedGame
}

type trackedGame struct {
	ctrl   *liveview.Controller
	poller *liveview.Poller
}

func NewFeed(lister source.Lister, deltas liveview.DeltaSource, pub EventPublisher) *Feed {
	return &Feed{
		lister:            lister,
		deltas:            deltas,
		pub:               pub,
		clock:             clockwork.NewRealClock(),
		discoveryInterval: DefaultDiscoveryInterval,
		pollInterval:      DefaultPollInterval,
		tracked:           make(map[string]*trackedGame),
	}
}

// WithCache enables snapshot caching. The feed runs fine without it; the
// HTTP API just falls back to the upstream on every request.
func (f *Feed) WithCache(writer *cache.RedisWriter) *Feed {
	f.cache = writer
	return f
}

func (f *Feed) WithClock(clock clockwork.Clock) *Feed {
	f.clock = clock
	return f
}

func (f *Feed) WithIntervals(discovery, poll time.Duration) *Feed {
	f.discoveryInterval = discovery
	f.pollInterval = poll
	return f
}

// Run discovers and tracks games until ctx is cancelled. Blocking; call
// in its own goroutine when composing a larger process.
func (f *Feed) Run(ctx context.Context) {
	log.Info().
		Dur("discovery_interval", f.discoveryInterval).
		Dur("poll_interval", f.pollInterval).
		Msg("live feed started")

	f.refresh(ctx)

	ticker := f.clock.NewTicker(f.discoveryInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			f.shutdown()
			return
		case <-ticker.Chan():
			f.refresh(ctx)
		}
	}
}

// TrackedGames returns the ids of games currently being polled. Safe to
// call from any goroutine while Run mutates the tracking set.
func (f *Feed) TrackedGames() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	ids := make([]string, 0, len(f.tracked))
	for id := range f.tracked {
		ids = append(ids, id)
	}
	return ids
}

func (f *Feed) refresh(ctx context.Context) {
	snaps, err := f.lister.ListGames(ctx, f.clock.Now())
	if err != nil {
		log.Error().Err(err).Msg("game discovery failed")
		return
	}

	f.cacheScoreboard(ctx, snaps)

	for _, snap := range snaps {
		if f.isTracked(snap.GameID) {
			continue
		}
		if !snap.IsLive() {
			continue
		}
		f.startGame(ctx, snap)
	}

	// Pollers stop themselves when a game goes final; reap them here.
	for id, g := range f.reapStopped() {
		f.cacheStatus(ctx, id, g.ctrl.Status())
		log.Info().Str("game_id", id).Msg("stopped tracking game")
	}
}

func (f *Feed) isTracked(gameID string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.tracked[gameID]
	return ok
}

func (f *Feed) reapStopped() map[string]*trackedGame {
	f.mu.Lock()
	defer f.mu.Unlock()
	stopped := make(map[string]*trackedGame)
	for id, g := range f.tracked {
		if g.poller.Running() {
			continue
		}
		delete(f.tracked, id)
		stopped[id] = g
	}
	return stopped
}

func (f *Feed) startGame(ctx context.Context, snap *models.GameSnapshot) {
	sink := NewNatsSink(f.pub, snap.GameID)
	ctrl := liveview.NewController(sink)

	gen, err := ctrl.Mount(snap)
	if err != nil {
		log.Error().Err(err).Str("game_id", snap.GameID).Msg("mount failed")
		return
	}

	poller := liveview.NewPoller(ctrl, f.deltas, f.pollInterval).WithClock(f.clock)
	poller.Start(ctx, snap.GameID, gen)

	f.mu.Lock()
	f.tracked[snap.GameID] = &trackedGame{ctrl: ctrl, poller: poller}
	f.mu.Unlock()
	log.Info().
		Str("game_id", snap.GameID).
		Str("matchup", snap.AwayTeam.Abbreviation+" @ "+snap.HomeTeam.Abbreviation).
		Msg("tracking live game")
}

func (f *Feed) cacheScoreboard(ctx context.Context, snaps []*models.GameSnapshot) {
	if f.cache == nil {
		return
	}

	ids := make([]string, 0, len(snaps))
	for _, snap := range snaps {
		ids = append(ids, snap.GameID)
		if err := f.cache.WriteGameSnapshot(ctx, snap); err != nil {
			log.Warn().Err(err).Str("game_id", snap.GameID).Msg("snapshot cache write failed")
		}
	}
	if err := f.cache.WriteTodaysGames(ctx, f.clock.Now(), ids); err != nil {
		log.Warn().Err(err).Msg("todays games cache write failed")
	}
}

func (f *Feed) cacheStatus(ctx context.Context, gameID string, status models.GameStatus) {
	if f.cache == nil {
		return
	}
	if err := f.cache.WriteGameStatus(ctx, gameID, status); err != nil {
		log.Warn().Err(err).Str("game_id", gameID).Msg("status cache write failed")
	}
}

func (f *Feed) shutdown() {
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, g := range f.tracked {
		g.poller.Stop()
		delete(f.tracked, id)
	}
	log.Info().Msg("live feed stopped")
}
