package livefeed

import (
	"time"

	"github.com/google/uuid"

	"github.com/mpcost/hoopzone/go/internal/liveview"
	"github.com/mpcost/hoopzone/go/internal/models"
)

// EventType identifies one kind of view patch on the wire.
type EventType string

const (
	EventViewReset   EventType = "view.reset"
	EventSetLabel    EventType = "label.set"
	EventSetImage    EventType = "image.set"
	EventCreateRow   EventType = "row.create"
	EventSetRowField EventType = "row.field"
	EventSetRowNeg   EventType = "row.negative"
)

// Event is one view patch published to the game's subject. Subscribers
// replay events in Seq order to reconstruct the exact mount and update
// sequence the feed rendered. Seq restarts at 1 on every view.reset, so
// a late joiner knows to drop state when it sees a reset.
type Event struct {
	EventID   uuid.UUID `json:"event_id"`
	GameID    string    `json:"game_id"`
	Type      EventType `json:"type"`
	Seq       uint64    `json:"seq"`
	Timestamp time.Time `json:"timestamp"`

	Label    liveview.Label     `json:"label,omitempty"`
	Value    string             `json:"value,omitempty"`
	URL      string             `json:"url,omitempty"`
	Fallback string             `json:"fallback,omitempty"`
	Section  liveview.Section   `json:"section,omitempty"`
	Row      liveview.RowHandle `json:"row,omitempty"`
	Field    liveview.StatField `json:"field,omitempty"`
	Negative bool               `json:"negative,omitempty"`

	Player *models.PlayerStat `json:"player,omitempty"`
}
