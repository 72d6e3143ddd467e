package livefeed

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/mpcost/hoopzone/go/internal/models"
)

type fakeLister struct {
	snaps []*models.GameSnapshot
	err   error
}

func (f *fakeLister) ListGames(ctx context.Context, date time.Time) ([]*models.GameSnapshot, error) {
	return f.snaps, f.err
}

type silentDeltas struct{}

func (silentDeltas) FetchDelta(ctx context.Context, gameID string) (*models.GameDelta, error) {
	return nil, nil
}

func feedSnapshot(id string, status models.GameStatus) *models.GameSnapshot {
	snap := &models.GameSnapshot{
		GameID: id,
		Status: status,
		HomeTeam: models.TeamSnapshot{
			ID: "14", Name: "Los Angeles Lakers", Abbreviation: "LAL",
			Players: []models.PlayerStat{{ID: id + "-p1", Name: "One", Minutes: 10}},
		},
		AwayTeam: models.TeamSnapshot{ID: "2", Name: "Boston Celtics", Abbreviation: "BOS"},
	}
	snap.HomeTeam.Reindex()
	snap.AwayTeam.Reindex()
	return snap
}

func TestFeed_TracksOnlyLiveGames(t *testing.T) {
	lister := &fakeLister{snaps: []*models.GameSnapshot{
		feedSnapshot("live-1", models.StatusLive),
		feedSnapshot("sched-1", models.StatusScheduled),
		feedSnapshot("final-1", models.StatusFinal),
	}}
	pub := &recordingPublisher{}
	feed := NewFeed(lister, silentDeltas{}, pub).WithClock(clockwork.NewFakeClock())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	feed.refresh(ctx)
	defer feed.shutdown()

	tracked := feed.TrackedGames()
	if len(tracked) != 1 || tracked[0] != "live-1" {
		t.Fatalf("tracked = %v, want [live-1]", tracked)
	}

	// The mount rendered through the NATS sink.
	if len(pub.events) == 0 {
		t.Fatal("mount published no events")
	}
	if pub.events[0].Type != EventViewReset || pub.events[0].GameID != "live-1" {
		t.Errorf("first event = %s for %s, want view.reset for live-1", pub.events[0].Type, pub.events[0].GameID)
	}
}

func TestFeed_RefreshIsIdempotentForTrackedGames(t *testing.T) {
	lister := &fakeLister{snaps: []*models.GameSnapshot{feedSnapshot("live-1", models.StatusLive)}}
	pub := &recordingPublisher{}
	feed := NewFeed(lister, silentDeltas{}, pub).WithClock(clockwork.NewFakeClock())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	feed.refresh(ctx)
	defer feed.shutdown()

	mountEvents := len(pub.events)
	feed.refresh(ctx)

	if len(pub.events) != mountEvents {
		t.Errorf("second refresh re-mounted a tracked game: %d new events", len(pub.events)-mountEvents)
	}
	if got := len(feed.TrackedGames()); got != 1 {
		t.Errorf("tracked games = %d, want 1", got)
	}
}

func TestFeed_DiscoveryErrorKeepsTracking(t *testing.T) {
	lister := &fakeLister{snaps: []*models.GameSnapshot{feedSnapshot("live-1", models.StatusLive)}}
	feed := NewFeed(lister, silentDeltas{}, &recordingPublisher{}).WithClock(clockwork.NewFakeClock())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	feed.refresh(ctx)
	defer feed.shutdown()

	lister.err = context.DeadlineExceeded
	feed.refresh(ctx)

	if got := len(feed.TrackedGames()); got != 1 {
		t.Errorf("tracked games after failed discovery = %d, want 1", got)
	}
}

func TestFeed_TrackedGamesIsSafeDuringRun(t *testing.T) {
	lister := &fakeLister{snaps: []*models.GameSnapshot{feedSnapshot("live-1", models.StatusLive)}}
	fc := clockwork.NewFakeClock()
	feed := NewFeed(lister, silentDeltas{}, &recordingPublisher{}).WithClock(fc)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		feed.Run(ctx)
		close(done)
	}()

	// Hammer the read path while Run discovers and reaps on its own
	// goroutine. The race detector fails this without the tracking lock.
	readerDone := make(chan struct{})
	go func() {
		defer close(readerDone)
		for i := 0; i < 100; i++ {
			feed.TrackedGames()
			time.Sleep(time.Millisecond)
		}
	}()

	for i := 0; i < 5; i++ {
		fc.Advance(DefaultDiscoveryInterval)
		time.Sleep(5 * time.Millisecond)
	}

	<-readerDone
	cancel()
	<-done
}

func TestFeed_ShutdownStopsPollers(t *testing.T) {
	lister := &fakeLister{snaps: []*models.GameSnapshot{feedSnapshot("live-1", models.StatusLive)}}
	feed := NewFeed(lister, silentDeltas{}, &recordingPublisher{}).WithClock(clockwork.NewFakeClock())

	ctx, cancel := context.WithCancel(context.Background())
	feed.refresh(ctx)

	cancel()
	feed.shutdown()

	if got := len(feed.TrackedGames()); got != 0 {
		t.Errorf("tracked games after shutdown = %d, want 0", got)
	}
}
