package snapshot

import (
	"regexp"
	"strings"

	"github.com/mpcost/hoopzone/go/internal/models"
)

var (
	periodClockRe = regexp.MustCompile(`(?i)\b(Q\d|OT\d?)\b\s+(\d{1,2}:\d{2})`)
	periodRe      = regexp.MustCompile(`(?i)\b(Q\d|OT\d?)\b`)
	clockRe       = regexp.MustCompile(`\b\d{1,2}:\d{2}\b`)
)

// LiveStatus is the period/clock pair parsed out of free-form status text.
type LiveStatus struct {
	Period string
	Clock  string
}

// ParseLiveStatus extracts a period label and game clock from the
// combined status and time text a feed provides. Feeds report live games
// as "Q4 2:31", "3rd 7:02 Q3", "Halftime", or just "OT"; the pieces may
// be split across the two fields.
func ParseLiveStatus(statusText, timeText string) LiveStatus {
	combined := strings.TrimSpace(statusText + " " + timeText)

	if m := periodClockRe.FindStringSubmatch(combined); m != nil {
		return LiveStatus{Period: strings.ToUpper(m[1]), Clock: m[2]}
	}

	if strings.Contains(strings.ToLower(combined), "half") {
		return LiveStatus{Period: "Halftime"}
	}

	ls := LiveStatus{}
	if m := periodRe.FindString(combined); m != "" {
		ls.Period = strings.ToUpper(m)
	} else if statusText != "" {
		ls.Period = statusText
	}
	ls.Clock = clockRe.FindString(combined)
	return ls
}

// ParseStatus classifies free-form status text into a GameStatus.
// Empty text defaults to live: status is only resolved at initial load,
// and the load path is only reached for games a live view is mounted on.
func ParseStatus(statusText, timeText string) models.GameStatus {
	s := strings.ToLower(strings.TrimSpace(statusText))
	switch {
	case s == "":
		return models.StatusLive
	case s == "final" || strings.HasPrefix(s, "final"):
		return models.StatusFinal
	case isLiveMarker(s + " " + strings.ToLower(timeText)):
		return models.StatusLive
	case s == "live" || s == "in progress":
		return models.StatusLive
	default:
		return models.StatusScheduled
	}
}

func isLiveMarker(s string) bool {
	for _, marker := range []string{"q1", "q2", "q3", "q4", "1st", "2nd", "3rd", "4th", "ot", "half"} {
		if strings.Contains(s, marker) {
			return true
		}
	}
	return false
}
