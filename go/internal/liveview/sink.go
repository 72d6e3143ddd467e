package liveview

import "github.com/mpcost/hoopzone/go/internal/models"

// RowHandle identifies one rendered player row. Handles are issued by the
// sink at row creation and are opaque to the controller.
type RowHandle int

// Section is the part of the view a player row is created under.
type Section string

const (
	SectionHomePlayed Section = "home_played"
	SectionHomeBench  Section = "home_bench"
	SectionAwayPlayed Section = "away_played"
	SectionAwayBench  Section = "away_bench"
)

// StatField names one stat cell inside a player row.
type StatField string

const (
	FieldMinutes   StatField = "min"
	FieldPoints    StatField = "pts"
	FieldRebounds  StatField = "reb"
	FieldAssists   StatField = "ast"
	FieldSteals    StatField = "stl"
	FieldBlocks    StatField = "blk"
	FieldPlusMinus StatField = "plus_minus"
)

// Label names a fixed, non-row element of the view.
type Label string

const (
	LabelHomeName  Label = "home_name"
	LabelAwayName  Label = "away_name"
	LabelHomeAbbr  Label = "home_abbr"
	LabelAwayAbbr  Label = "away_abbr"
	LabelHomeLogo  Label = "home_logo"
	LabelAwayLogo  Label = "away_logo"
	LabelHomeScore Label = "home_score"
	LabelAwayScore Label = "away_score"
	LabelClock     Label = "clock"
	LabelPeriod    Label = "period"
	LabelStatus    Label = "status"

	LabelHomeFGPct Label = "home_fg_pct"
	LabelHome3PPct Label = "home_3p_pct"
	LabelHomeFTPct Label = "home_ft_pct"
	LabelHomeReb   Label = "home_reb"
	LabelHomeAst   Label = "home_ast"
	LabelAwayFGPct Label = "away_fg_pct"
	LabelAway3PPct Label = "away_3p_pct"
	LabelAwayFTPct Label = "away_ft_pct"
	LabelAwayReb   Label = "away_reb"
	LabelAwayAst   Label = "away_ast"
)

// ViewSink is the render target the controller writes into. Production
// sinks forward these operations to real dashboards (the NATS sink in
// livefeed); tests use a recording double. The contract is narrow on
// purpose: rows are created once per mount and thereafter touched only
// one cell at a time, never re-rendered whole, so transient UI state on a
// row survives an update.
type ViewSink interface {
	// Reset discards all rows and labels from a previous mount.
	Reset()

	// SetLabel writes a fixed view element.
	SetLabel(label Label, value string)

	// SetImage points an image element at url, with a text placeholder to
	// substitute if the asset fails to load.
	SetImage(label Label, url, fallback string)

	// CreateRow renders a full player row under the given section and
	// returns its handle.
	CreateRow(section Section, player models.PlayerStat) RowHandle

	// SetRowField updates a single stat cell of an existing row.
	SetRowField(row RowHandle, field StatField, value string)

	// SetRowNegative toggles the row's negative plus/minus indicator.
	SetRowNegative(row RowHandle, negative bool)
}
