package snapshot

import (
	"strconv"
	"strings"
)

// Raw payload mirror types. Upstream feeds come in two observed field
// conventions, snake_case ("home_team") and camelCase ("homeTeam"), with
// numerics that may arrive as JSON numbers or strings. Both spellings are
// declared side by side and coalesced during normalization.

type rawGame struct {
	ID     interface{} `json:"id"`
	GameID interface{} `json:"game_id"`

	Status   string `json:"status"`
	Time     string `json:"time"`
	Datetime string `json:"datetime"`

	HomeTeam      *rawTeam `json:"home_team"`
	HomeTeamCamel *rawTeam `json:"homeTeam"`

	VisitorTeam      *rawTeam `json:"visitor_team"`
	VisitorTeamCamel *rawTeam `json:"visitorTeam"`

	HomeTeamScore      interface{} `json:"home_team_score"`
	HomeTeamScoreCamel interface{} `json:"homeTeamScore"`

	VisitorTeamScore      interface{} `json:"visitor_team_score"`
	VisitorTeamScoreCamel interface{} `json:"visitorTeamScore"`
}

func (g *rawGame) home() *rawTeam {
	if g.HomeTeam != nil {
		return g.HomeTeam
	}
	return g.HomeTeamCamel
}

func (g *rawGame) away() *rawTeam {
	if g.VisitorTeam != nil {
		return g.VisitorTeam
	}
	return g.VisitorTeamCamel
}

func (g *rawGame) homeScore() int {
	return asInt(coalesce(g.HomeTeamScore, g.HomeTeamScoreCamel))
}

func (g *rawGame) awayScore() int {
	return asInt(coalesce(g.VisitorTeamScore, g.VisitorTeamScoreCamel))
}

type rawTeam struct {
	ID           interface{} `json:"id"`
	Name         string      `json:"name"`
	FullName     string      `json:"full_name"`
	FullNameCaml string      `json:"fullName"`
	Abbreviation string      `json:"abbreviation"`
	Score        interface{} `json:"score"`

	Players []rawPlayer `json:"players"`

	TeamStats      *rawTeamStats `json:"team_stats"`
	TeamStatsCamel *rawTeamStats `json:"teamStats"`
}

func (t *rawTeam) displayName() string {
	switch {
	case t.FullName != "":
		return t.FullName
	case t.FullNameCaml != "":
		return t.FullNameCaml
	default:
		return t.Name
	}
}

func (t *rawTeam) stats() *rawTeamStats {
	if t.TeamStats != nil {
		return t.TeamStats
	}
	return t.TeamStatsCamel
}

type rawTeamStats struct {
	FieldGoalPct       interface{} `json:"field_goal_pct"`
	FieldGoalPctCamel  interface{} `json:"fieldGoalPct"`
	ThreePointPct      interface{} `json:"three_point_pct"`
	ThreePointPctCamel interface{} `json:"threePointPct"`
	FreeThrowPct       interface{} `json:"free_throw_pct"`
	FreeThrowPctCamel  interface{} `json:"freeThrowPct"`
	Rebounds           interface{} `json:"rebounds"`
	Assists            interface{} `json:"assists"`
	Turnovers          interface{} `json:"turnovers"`
}

type rawPlayer struct {
	ID        interface{} `json:"id"`
	PlayerID  interface{} `json:"player_id"`
	Name      string      `json:"name"`
	FirstName string      `json:"first_name"`
	LastName  string      `json:"last_name"`
	Position  string      `json:"position"`

	MinutesPlayed      interface{} `json:"minutes_played"`
	MinutesPlayedCamel interface{} `json:"minutesPlayed"`
	Points             interface{} `json:"points"`
	Rebounds           interface{} `json:"rebounds"`
	Assists            interface{} `json:"assists"`
	Steals             interface{} `json:"steals"`
	Blocks             interface{} `json:"blocks"`
	PlusMinus          interface{} `json:"plus_minus"`
	PlusMinusCamel     interface{} `json:"plusMinus"`
}

func (p *rawPlayer) displayName() string {
	if p.Name != "" {
		return p.Name
	}
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// coalesce returns the first non-nil value.
func coalesce(values ...interface{}) interface{} {
	for _, v := range values {
		if v != nil {
			return v
		}
	}
	return nil
}

// asInt coerces a loosely-typed JSON value to an int.
func asInt(v interface{}) int {
	switch val := v.(type) {
	case float64:
		return int(val)
	case int:
		return val
	case string:
		i, _ := strconv.Atoi(strings.TrimSpace(val))
		return i
	default:
		return 0
	}
}

// asFloat coerces a loosely-typed JSON value to a float64.
func asFloat(v interface{}) float64 {
	switch val := v.(type) {
	case float64:
		return val
	case int:
		return float64(val)
	case string:
		f, _ := strconv.ParseFloat(strings.TrimSpace(val), 64)
		return f
	default:
		return 0
	}
}

// asID coerces a loosely-typed JSON value to an identifier string.
func asID(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatInt(int64(val), 10)
	case int:
		return strconv.Itoa(val)
	default:
		return ""
	}
}

// asMinutes parses minutes that arrive either as a number or in the
// "MM:SS" box-score format.
func asMinutes(v interface{}) float64 {
	s, ok := v.(string)
	if !ok {
		return asFloat(v)
	}
	s = strings.TrimSpace(s)
	if !strings.Contains(s, ":") {
		return asFloat(s)
	}
	parts := strings.SplitN(s, ":", 2)
	mins, _ := strconv.Atoi(parts[0])
	secs, _ := strconv.Atoi(parts[1])
	return float64(mins) + float64(secs)/60.0
}
