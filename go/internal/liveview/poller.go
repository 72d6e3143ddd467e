package liveview

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/mpcost/hoopzone/go/internal/models"
)

// DeltaSource produces partial updates for a game. Production sources
// wrap the REST feed or a local simulator; tests stub it.
type DeltaSource interface {
	FetchDelta(ctx context.Context, gameID string) (*models.GameDelta, error)
}

// Poller drives the refresh cycle of one mounted live view. It has two
// states, idle and polling, and moves between them on Start, Stop, and
// the game going final. A failed fetch never perturbs the schedule: the
// error is logged and the next tick fires on time.
type Poller struct {
	ctrl     *Controller
	source   DeltaSource
	interval time.Duration
	clock    clockwork.Clock

	mu      sync.Mutex
	cancel  context.CancelFunc
	stopped chan struct{}
}

func NewPoller(ctrl *Controller, source DeltaSource, interval time.Duration) *Poller {
	return &Poller{
		ctrl:     ctrl,
		source:   source,
		interval: interval,
		clock:    clockwork.NewRealClock(),
	}
}

// WithClock replaces the poller's clock. Tests pass a fake clock.
func (p *Poller) WithClock(clock clockwork.Clock) *Poller {
	p.clock = clock
	return p
}

// Start moves the poller from idle to polling for the given game and
// mount generation. Starting an already-polling poller is a no-op; at
// most one timer is ever active.
func (p *Poller) Start(ctx context.Context, gameID string, generation uint64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cancel != nil {
		log.Debug().Str("game_id", gameID).Msg("poller already running, ignoring start")
		return
	}

	runCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.stopped = make(chan struct{})

	log.Info().
		Str("game_id", gameID).
		Dur("interval", p.interval).
		Msg("polling started")

	go p.run(runCtx, gameID, generation)
}

// Stop moves the poller back to idle and waits for the polling goroutine
// to exit. In-flight fetches are not interrupted beyond context
// cancellation; their results are discarded by the generation check in
// the controller.
func (p *Poller) Stop() {
	p.mu.Lock()
	cancel, stopped := p.cancel, p.stopped
	p.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-stopped
}

// Running reports whether the poller is in the polling state.
func (p *Poller) Running() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cancel != nil
}

func (p *Poller) run(ctx context.Context, gameID string, generation uint64) {
	defer func() {
		p.mu.Lock()
		p.cancel = nil
		close(p.stopped)
		p.mu.Unlock()
	}()

	ticker := p.clock.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info().Str("game_id", gameID).Msg("polling stopped")
			return
		case <-ticker.Chan():
			if status := p.tick(ctx, gameID, generation); status == models.StatusFinal {
				log.Info().Str("game_id", gameID).Msg("game final, polling stopped")
				return
			}
		}
	}
}

func (p *Poller) tick(ctx context.Context, gameID string, generation uint64) models.GameStatus {
	delta, err := p.source.FetchDelta(ctx, gameID)
	if err != nil {
		// Next tick proceeds on schedule regardless.
		log.Error().Err(err).Str("game_id", gameID).Msg("refresh fetch failed")
		return p.ctrl.Status()
	}
	if delta == nil || delta.Empty() {
		return p.ctrl.Status()
	}
	return p.ctrl.Apply(generation, delta)
}
