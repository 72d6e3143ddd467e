package standings

import (
	"context"
	"fmt"
	"sort"

	"github.com/rs/zerolog/log"

	"github.com/mpcost/hoopzone/go/clients/ballapi_client"
	"github.com/mpcost/hoopzone/go/internal/models"
)

// Playoff seeding cutoffs per conference.
const (
	playoffSeeds = 6
	playInSeeds  = 10
)

// Zone classifies where a ranked team sits relative to the postseason
// cutoffs.
type Zone string

const (
	ZonePlayoff Zone = "playoff"
	ZonePlayIn  Zone = "play_in"
	ZoneLottery Zone = "lottery"
)

// RankedRow is a standings row with its computed conference position.
type RankedRow struct {
	models.StandingRow
	Rank        int     `json:"rank"`
	WinPct      float64 `json:"win_pct"`
	GamesBehind float64 `json:"games_behind"`
	Zone        Zone    `json:"zone"`
}

// Table is one conference's ranked standings.
type Table struct {
	Conference models.Conference `json:"conference"`
	Rows       []RankedRow       `json:"rows"`
}

// Provider fetches raw standings. The ball API client satisfies this.
type Provider interface {
	GetStandings(ctx context.Context) (*ballapi_client.StandingsResponse, error)
}

// App handles standings business logic.
type App struct {
	provider Provider
}

func NewApp(provider Provider) *App {
	return &App{provider: provider}
}

// GetTables returns both conference tables, ranked and annotated.
func (a *App) GetTables(ctx context.Context) (east, west *Table, err error) {
	resp, err := a.provider.GetStandings(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get standings: %w", err)
	}

	east = buildTable(models.ConferenceEast, resp.East)
	west = buildTable(models.ConferenceWest, resp.West)

	log.Debug().
		Int("east_rows", len(east.Rows)).
		Int("west_rows", len(west.Rows)).
		Msg("standings tables built")

	return east, west, nil
}

// GetConference returns one conference's table.
func (a *App) GetConference(ctx context.Context, conf models.Conference) (*Table, error) {
	east, west, err := a.GetTables(ctx)
	if err != nil {
		return nil, err
	}
	if conf == models.ConferenceWest {
		return west, nil
	}
	return east, nil
}

// buildTable sorts and ranks one conference. Order is wins descending
// with losses ascending as the tiebreak, then name for stability.
func buildTable(conf models.Conference, rows []models.StandingRow) *Table {
	ranked := make([]RankedRow, len(rows))
	for i, row := range rows {
		ranked[i] = RankedRow{StandingRow: row}
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Wins != ranked[j].Wins {
			return ranked[i].Wins > ranked[j].Wins
		}
		if ranked[i].Losses != ranked[j].Losses {
			return ranked[i].Losses < ranked[j].Losses
		}
		return ranked[i].Name < ranked[j].Name
	})

	for i := range ranked {
		ranked[i].Rank = i + 1
		ranked[i].WinPct = ranked[i].StandingRow.WinPct()
		ranked[i].Zone = zoneForRank(i + 1)
		if i > 0 {
			ranked[i].GamesBehind = gamesBehind(&ranked[0].StandingRow, &ranked[i].StandingRow)
		}
	}

	return &Table{Conference: conf, Rows: ranked}
}

func zoneForRank(rank int) Zone {
	switch {
	case rank <= playoffSeeds:
		return ZonePlayoff
	case rank <= playInSeeds:
		return ZonePlayIn
	default:
		return ZoneLottery
	}
}

func gamesBehind(leader, row *models.StandingRow) float64 {
	return (float64(leader.Wins-row.Wins) + float64(row.Losses-leader.Losses)) / 2
}
