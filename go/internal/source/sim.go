package source

import (
	"context"
	"fmt"
	"math/rand"
	"sync"

	"github.com/mpcost/hoopzone/go/internal/models"
	"github.com/mpcost/hoopzone/go/internal/snapshot"
)

const (
	periodSeconds    = 12 * 60
	simTickSeconds   = 35
	finalPeriodCount = 4
)

// SimSource fabricates a plausible live game without touching the
// network. Each FetchDelta advances the game clock, occasionally scores,
// and bumps the stats of the players who were on the floor at seed time.
// Scores and counting stats only ever go up, and the game reaches final
// after regulation runs out.
type SimSource struct {
	mu    sync.Mutex
	rng   *rand.Rand
	games map[string]*simGame
}

type simGame struct {
	snap      *models.GameSnapshot
	remaining int
	period    int
}

func NewSimSource(seed int64) *SimSource {
	return &SimSource{
		rng:   rand.New(rand.NewSource(seed)),
		games: make(map[string]*simGame),
	}
}

// Seed registers a game at its starting state. The snapshot is cloned;
// later mutation by the caller does not leak into the simulation.
func (s *SimSource) Seed(snap *models.GameSnapshot) {
	clone := cloneSnapshot(snap)
	clone.Status = models.StatusLive
	clone.Period = "Q1"
	clone.Clock = formatClock(periodSeconds)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.games[snap.GameID] = &simGame{
		snap:      clone,
		remaining: periodSeconds,
		period:    1,
	}
}

func (s *SimSource) FetchSnapshot(ctx context.Context, gameID string) (*models.GameSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.games[gameID]
	if !ok {
		return nil, fmt.Errorf("unknown simulated game %s", gameID)
	}
	return cloneSnapshot(g.snap), nil
}

func (s *SimSource) FetchDelta(ctx context.Context, gameID string) (*models.GameDelta, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.games[gameID]
	if !ok {
		return nil, fmt.Errorf("unknown simulated game %s", gameID)
	}
	if g.snap.Status == models.StatusFinal {
		return nil, nil
	}

	prev := cloneSnapshot(g.snap)
	s.advance(g)
	return snapshot.Diff(prev, g.snap), nil
}

func (s *SimSource) advance(g *simGame) {
	g.remaining -= simTickSeconds
	if g.remaining <= 0 {
		g.period++
		if g.period > finalPeriodCount {
			g.snap.Status = models.StatusFinal
			g.snap.Clock = "0:00"
			g.snap.Period = fmt.Sprintf("Q%d", finalPeriodCount)
			return
		}
		g.remaining = periodSeconds
		g.snap.Period = fmt.Sprintf("Q%d", g.period)
	}
	g.snap.Clock = formatClock(g.remaining)

	s.scorePossession(&g.snap.HomeTeam)
	s.scorePossession(&g.snap.AwayTeam)
}

// scorePossession gives the team a chance to score this tick and spreads
// the points and ancillary stats over its active players.
func (s *SimSource) scorePossession(team *models.TeamSnapshot) {
	if s.rng.Intn(3) == 0 {
		return
	}

	points := 2
	if s.rng.Intn(3) == 0 {
		points = 3
	}
	team.Score += points

	if scorer := s.pickActive(team); scorer != nil {
		scorer.Points += points
		scorer.Minutes += float64(simTickSeconds) / 60
		scorer.PlusMinus += s.rng.Intn(3) - 1
		switch s.rng.Intn(4) {
		case 0:
			scorer.Rebounds++
		case 1:
			scorer.Assists++
		}
	}
}

func (s *SimSource) pickActive(team *models.TeamSnapshot) *models.PlayerStat {
	var active []*models.PlayerStat
	for i := range team.Players {
		if team.Players[i].Played() {
			active = append(active, &team.Players[i])
		}
	}
	if len(active) == 0 {
		if len(team.Players) == 0 {
			return nil
		}
		return &team.Players[s.rng.Intn(len(team.Players))]
	}
	return active[s.rng.Intn(len(active))]
}

func formatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

func cloneSnapshot(snap *models.GameSnapshot) *models.GameSnapshot {
	clone := *snap
	clone.HomeTeam = cloneTeam(&snap.HomeTeam)
	clone.AwayTeam = cloneTeam(&snap.AwayTeam)
	return &clone
}

func cloneTeam(team *models.TeamSnapshot) models.TeamSnapshot {
	clone := *team
	clone.Players = make([]models.PlayerStat, len(team.Players))
	copy(clone.Players, team.Players)
	clone.Reindex()
	return clone
}
