package livefeed

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/mpcost/hoopzone/go/internal/liveview"
	"github.com/mpcost/hoopzone/go/internal/media"
	"github.com/mpcost/hoopzone/go/internal/models"
)

// EventPublisher is the slice of Publisher the sink needs. Tests swap in
// a recorder.
type EventPublisher interface {
	Publish(ctx context.Context, event Event) error
}

const publishTimeout = 5 * time.Second

// NatsSink renders a game's view as a stream of patch events instead of
// pixels. Row handles are allocated locally and carried on the wire, so
// every subscriber addresses rows exactly as the feed's controller does.
//
// Not safe for concurrent use on its own; the owning controller already
// serializes sink calls.
type NatsSink struct {
	pub     EventPublisher
	gameID  string
	seq     uint64
	nextRow liveview.RowHandle
}

func NewNatsSink(pub EventPublisher, gameID string) *NatsSink {
	return &NatsSink{pub: pub, gameID: gameID}
}

func (s *NatsSink) Reset() {
	s.seq = 0
	s.nextRow = 0
	s.emit(Event{Type: EventViewReset})
}

func (s *NatsSink) SetLabel(label liveview.Label, value string) {
	s.emit(Event{Type: EventSetLabel, Label: label, Value: value})
}

func (s *NatsSink) SetImage(label liveview.Label, url, fallback string) {
	s.emit(Event{Type: EventSetImage, Label: label, URL: url, Fallback: fallback})
}

func (s *NatsSink) CreateRow(section liveview.Section, player models.PlayerStat) liveview.RowHandle {
	s.nextRow++
	row := s.nextRow
	s.emit(Event{
		Type:     EventCreateRow,
		Section:  section,
		Row:      row,
		Player:   &player,
		URL:      media.PlayerHeadshotURL(player.ID),
		Fallback: media.Initials(player.Name),
	})
	return row
}

func (s *NatsSink) SetRowField(row liveview.RowHandle, field liveview.StatField, value string) {
	s.emit(Event{Type: EventSetRowField, Row: row, Field: field, Value: value})
}

func (s *NatsSink) SetRowNegative(row liveview.RowHandle, negative bool) {
	s.emit(Event{Type: EventSetRowNeg, Row: row, Negative: negative})
}

// emit stamps and publishes the event. A failed publish drops that one
// patch; subscribers resync on the next mount rather than the feed
// blocking the render path on broker errors.
func (s *NatsSink) emit(event Event) {
	s.seq++
	event.EventID = uuid.New()
	event.GameID = s.gameID
	event.Seq = s.seq
	event.Timestamp = time.Now().UTC()

	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	if err := s.pub.Publish(ctx, event); err != nil {
		log.Error().
			Err(err).
			Str("game_id", s.gameID).
			Str("type", string(event.Type)).
			Msg("failed to publish view patch")
	}
}
