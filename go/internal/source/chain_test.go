package source

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mpcost/hoopzone/go/internal/models"
)

type fakeSource struct {
	snap  *models.GameSnapshot
	games []*models.GameSnapshot
	err   error
	calls int
}

func (f *fakeSource) FetchSnapshot(ctx context.Context, gameID string) (*models.GameSnapshot, error) {
	f.calls++
	return f.snap, f.err
}

func (f *fakeSource) ListGames(ctx context.Context, date time.Time) ([]*models.GameSnapshot, error) {
	f.calls++
	return f.games, f.err
}

func (f *fakeSource) FetchBoxScore(ctx context.Context, gameID string) (*models.GameSnapshot, error) {
	f.calls++
	return f.snap, f.err
}

// snapshotOnly has no ListGames or FetchBoxScore; the chain must skip it
// for those operations.
type snapshotOnly struct{}

func (snapshotOnly) FetchSnapshot(ctx context.Context, gameID string) (*models.GameSnapshot, error) {
	return nil, errors.New("not listable")
}

func TestChain_PrimaryWins(t *testing.T) {
	primary := &fakeSource{snap: &models.GameSnapshot{GameID: "g1"}}
	backup := &fakeSource{snap: &models.GameSnapshot{GameID: "wrong"}}
	chain := NewChain(primary, backup)

	snap, err := chain.FetchSnapshot(context.Background(), "g1")
	if err != nil {
		t.Fatalf("FetchSnapshot() error = %v", err)
	}
	if snap.GameID != "g1" {
		t.Errorf("snapshot from wrong source: %q", snap.GameID)
	}
	if backup.calls != 0 {
		t.Errorf("backup consulted %d times while primary healthy", backup.calls)
	}
}

func TestChain_FailsOver(t *testing.T) {
	primary := &fakeSource{err: errors.New("connection refused")}
	backup := &fakeSource{snap: &models.GameSnapshot{GameID: "g1"}}
	chain := NewChain(primary, backup)

	snap, err := chain.FetchSnapshot(context.Background(), "g1")
	if err != nil {
		t.Fatalf("FetchSnapshot() error = %v", err)
	}
	if snap.GameID != "g1" {
		t.Errorf("snapshot GameID = %q, want g1", snap.GameID)
	}
	if primary.calls != 1 {
		t.Errorf("primary calls = %d, want 1", primary.calls)
	}
}

func TestChain_AllFail(t *testing.T) {
	chain := NewChain(
		&fakeSource{err: errors.New("down")},
		&fakeSource{err: errors.New("also down")},
	)

	_, err := chain.FetchSnapshot(context.Background(), "g1")
	if !errors.Is(err, ErrAllSourcesFailed) {
		t.Errorf("error = %v, want ErrAllSourcesFailed", err)
	}
}

func TestChain_ListSkipsNonListers(t *testing.T) {
	backup := &fakeSource{games: []*models.GameSnapshot{{GameID: "g1"}}}
	chain := NewChain(&snapshotOnly{}, backup)

	games, err := chain.ListGames(context.Background(), time.Now())
	if err != nil {
		t.Fatalf("ListGames() error = %v", err)
	}
	if len(games) != 1 || games[0].GameID != "g1" {
		t.Errorf("games = %+v, want the backup's list", games)
	}
}

func TestChain_BoxScoreFailsOverAndSkipsNonFetchers(t *testing.T) {
	primary := &fakeSource{err: errors.New("down")}
	backup := &fakeSource{snap: &models.GameSnapshot{GameID: "g1"}}
	chain := NewChain(&snapshotOnly{}, primary, backup)

	snap, err := chain.FetchBoxScore(context.Background(), "g1")
	if err != nil {
		t.Fatalf("FetchBoxScore() error = %v", err)
	}
	if snap.GameID != "g1" {
		t.Errorf("box score GameID = %q, want g1", snap.GameID)
	}
	if primary.calls != 1 {
		t.Errorf("primary calls = %d, want 1", primary.calls)
	}
}

func TestChain_NoListers(t *testing.T) {
	chain := NewChain(&snapshotOnly{})
	if _, err := chain.ListGames(context.Background(), time.Now()); !errors.Is(err, ErrAllSourcesFailed) {
		t.Errorf("error = %v, want ErrAllSourcesFailed", err)
	}
}
