package liveview

import (
	"errors"
	"sort"
	"strconv"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/mpcost/hoopzone/go/internal/media"
	"github.com/mpcost/hoopzone/go/internal/models"
)

// ErrNoSnapshot is returned when Mount is called with nothing to render
var ErrNoSnapshot = errors.New("no snapshot to mount")

// Controller owns one mounted game view: the current GameSnapshot, the
// index from player id to row handle, and the mount generation. It is the
// only writer of all three; delta application outside the controller
// would break the index-matches-view invariant.
//
// One controller per mounted view. There is no package-level state, so
// multiple views and tests coexist freely.
type Controller struct {
	mu         sync.Mutex
	sink       ViewSink
	game       *models.GameSnapshot
	index      map[string]RowHandle
	generation uint64
}

func NewController(sink ViewSink) *Controller {
	return &Controller{
		sink:  sink,
		index: make(map[string]RowHandle),
	}
}

// Mount performs the one full render of a snapshot: static identity,
// scoreboard, team aggregates, and one row per player across both
// rosters, recording each row in the index. Safe to call again for a new
// game: the sink and index are cleared first and the mount generation is
// bumped so deltas fetched for the old mount are discarded on arrival.
//
// Returns the new mount generation; pass it to Apply with every delta
// derived from this mount.
func (c *Controller) Mount(snap *models.GameSnapshot) (uint64, error) {
	if snap == nil {
		return 0, ErrNoSnapshot
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.sink.Reset()
	c.index = make(map[string]RowHandle)
	c.game = snap
	c.generation++

	c.renderIdentity(snap)
	c.renderScoreboard(snap)
	c.renderTeamStats(snap)

	c.mountRoster(&snap.HomeTeam, snap.Status, SectionHomePlayed, SectionHomeBench)
	c.mountRoster(&snap.AwayTeam, snap.Status, SectionAwayPlayed, SectionAwayBench)

	log.Info().
		Str("game_id", snap.GameID).
		Str("status", string(snap.Status)).
		Int("rows", len(c.index)).
		Uint64("generation", c.generation).
		Msg("view mounted")

	return c.generation, nil
}

// Generation returns the current mount generation.
func (c *Controller) Generation() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generation
}

// Status returns the status of the mounted game, or scheduled when
// nothing is mounted.
func (c *Controller) Status() models.GameStatus {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.game == nil {
		return models.StatusScheduled
	}
	return c.game.Status
}

// HasRow reports whether a player id is tracked by the current mount.
func (c *Controller) HasRow(playerID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.index[playerID]
	return ok
}

// Apply patches the mounted view with a partial update. Only the fields
// the delta carries are touched, each through its own sink operation;
// rows are never re-rendered whole. A delta from a stale mount generation
// is discarded outright. Player ids not present in the index are
// ignored: the view tracks only players known at mount time, and
// fabricating a row here would bypass the display partition chosen then.
//
// Returns the game status after application, which is how pollers learn
// the game went final.
func (c *Controller) Apply(generation uint64, delta *models.GameDelta) models.GameStatus {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.game == nil {
		return models.StatusScheduled
	}
	if generation != c.generation {
		log.Debug().
			Str("game_id", delta.GameID).
			Uint64("delta_generation", generation).
			Uint64("mount_generation", c.generation).
			Msg("discarding delta from stale mount")
		return c.game.Status
	}

	c.applyScoreboard(delta)
	for i := range delta.Players {
		c.applyPlayer(&delta.Players[i])
	}

	return c.game.Status
}

func (c *Controller) renderIdentity(snap *models.GameSnapshot) {
	home, away := &snap.HomeTeam, &snap.AwayTeam

	c.sink.SetLabel(LabelHomeName, home.Name)
	c.sink.SetLabel(LabelAwayName, away.Name)
	c.sink.SetLabel(LabelHomeAbbr, home.Abbreviation)
	c.sink.SetLabel(LabelAwayAbbr, away.Abbreviation)
	c.sink.SetImage(LabelHomeLogo, media.TeamLogoURL(home.ID), logoFallback(home))
	c.sink.SetImage(LabelAwayLogo, media.TeamLogoURL(away.ID), logoFallback(away))
}

func (c *Controller) renderScoreboard(snap *models.GameSnapshot) {
	c.sink.SetLabel(LabelHomeScore, strconv.Itoa(snap.HomeTeam.Score))
	c.sink.SetLabel(LabelAwayScore, strconv.Itoa(snap.AwayTeam.Score))
	c.sink.SetLabel(LabelClock, snap.Clock)
	c.sink.SetLabel(LabelPeriod, snap.Period)
	c.sink.SetLabel(LabelStatus, string(snap.Status))
}

func (c *Controller) renderTeamStats(snap *models.GameSnapshot) {
	hs, as := snap.HomeTeam.TeamStats, snap.AwayTeam.TeamStats

	c.sink.SetLabel(LabelHomeFGPct, FormatPct(hs.FieldGoalPct))
	c.sink.SetLabel(LabelHome3PPct, FormatPct(hs.ThreePointPct))
	c.sink.SetLabel(LabelHomeFTPct, FormatPct(hs.FreeThrowPct))
	c.sink.SetLabel(LabelHomeReb, strconv.Itoa(hs.Rebounds))
	c.sink.SetLabel(LabelHomeAst, strconv.Itoa(hs.Assists))
	c.sink.SetLabel(LabelAwayFGPct, FormatPct(as.FieldGoalPct))
	c.sink.SetLabel(LabelAway3PPct, FormatPct(as.ThreePointPct))
	c.sink.SetLabel(LabelAwayFTPct, FormatPct(as.FreeThrowPct))
	c.sink.SetLabel(LabelAwayReb, strconv.Itoa(as.Rebounds))
	c.sink.SetLabel(LabelAwayAst, strconv.Itoa(as.Assists))
}

// mountRoster partitions a roster into played and bench rows and creates
// one row per player. Completed games sort the played partition by points
// descending; live games preserve roster order so rows do not jump around
// mid-game.
func (c *Controller) mountRoster(team *models.TeamSnapshot, status models.GameStatus, played, bench Section) {
	var playedRows, benchRows []*models.PlayerStat
	for i := range team.Players {
		p := &team.Players[i]
		if p.Played() {
			playedRows = append(playedRows, p)
		} else {
			benchRows = append(benchRows, p)
		}
	}

	if status == models.StatusFinal {
		sort.SliceStable(playedRows, func(i, j int) bool {
			return playedRows[i].Points > playedRows[j].Points
		})
	}

	for _, p := range playedRows {
		c.createRow(played, p)
	}
	for _, p := range benchRows {
		c.createRow(bench, p)
	}
}

func (c *Controller) createRow(section Section, p *models.PlayerStat) {
	h := c.sink.CreateRow(section, *p)
	c.sink.SetRowNegative(h, p.PlusMinus < 0)
	c.index[p.ID] = h
}

func (c *Controller) applyScoreboard(delta *models.GameDelta) {
	game := c.game

	if delta.Status != nil && *delta.Status != game.Status {
		game.Status = *delta.Status
		c.sink.SetLabel(LabelStatus, string(game.Status))
	}
	if delta.Clock != nil && *delta.Clock != game.Clock {
		game.Clock = *delta.Clock
		c.sink.SetLabel(LabelClock, game.Clock)
	}
	if delta.Period != nil && *delta.Period != game.Period {
		game.Period = *delta.Period
		c.sink.SetLabel(LabelPeriod, game.Period)
	}

	// Scores are cumulative; a feed glitch reporting a lower score is
	// dropped rather than rendered.
	if delta.HomeScore != nil && *delta.HomeScore > game.HomeTeam.Score {
		game.HomeTeam.Score = *delta.HomeScore
		c.sink.SetLabel(LabelHomeScore, strconv.Itoa(game.HomeTeam.Score))
	}
	if delta.AwayScore != nil && *delta.AwayScore > game.AwayTeam.Score {
		game.AwayTeam.Score = *delta.AwayScore
		c.sink.SetLabel(LabelAwayScore, strconv.Itoa(game.AwayTeam.Score))
	}
}

func (c *Controller) applyPlayer(pd *models.PlayerDelta) {
	row, ok := c.index[pd.PlayerID]
	if !ok {
		// Player was not part of the mounted snapshot.
		return
	}
	player := c.game.PlayerByID(pd.PlayerID)
	if player == nil {
		return
	}

	if pd.Minutes != nil {
		player.Minutes = *pd.Minutes
		c.sink.SetRowField(row, FieldMinutes, FormatMinutes(player.Minutes))
	}
	if pd.Points != nil {
		player.Points = *pd.Points
		c.sink.SetRowField(row, FieldPoints, strconv.Itoa(player.Points))
	}
	if pd.Rebounds != nil {
		player.Rebounds = *pd.Rebounds
		c.sink.SetRowField(row, FieldRebounds, strconv.Itoa(player.Rebounds))
	}
	if pd.Assists != nil {
		player.Assists = *pd.Assists
		c.sink.SetRowField(row, FieldAssists, strconv.Itoa(player.Assists))
	}
	if pd.Steals != nil {
		player.Steals = *pd.Steals
		c.sink.SetRowField(row, FieldSteals, strconv.Itoa(player.Steals))
	}
	if pd.Blocks != nil {
		player.Blocks = *pd.Blocks
		c.sink.SetRowField(row, FieldBlocks, strconv.Itoa(player.Blocks))
	}
	if pd.PlusMinus != nil {
		player.PlusMinus = *pd.PlusMinus
		c.sink.SetRowField(row, FieldPlusMinus, FormatPlusMinus(player.PlusMinus))
		c.sink.SetRowNegative(row, player.PlusMinus < 0)
	}
}

func logoFallback(team *models.TeamSnapshot) string {
	if team.Abbreviation != "" {
		return team.Abbreviation
	}
	return media.Initials(team.Name)
}
