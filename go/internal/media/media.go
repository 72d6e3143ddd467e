package media

import (
	"fmt"
	"strings"

	"github.com/mpcost/hoopzone/go/clients/ballapi_client"
)

// TeamLogoURL returns the CDN address for a team's primary logo.
func TeamLogoURL(teamID string) string {
	return fmt.Sprintf(ballapi_client.TeamLogoURLTemplate, teamID)
}

// PlayerHeadshotURL returns the CDN address for a player headshot.
func PlayerHeadshotURL(playerID string) string {
	return fmt.Sprintf(ballapi_client.PlayerHeadshotURLTemplate, playerID)
}

// Initials derives the text placeholder shown when an image fails to
// load: first letter of up to three name parts, upper-cased. Views must
// never show a broken-image state.
func Initials(name string) string {
	parts := strings.Fields(name)
	if len(parts) == 0 {
		return "?"
	}
	if len(parts) > 3 {
		parts = parts[:3]
	}
	var b strings.Builder
	for _, part := range parts {
		r := []rune(part)
		b.WriteRune(r[0])
	}
	return strings.ToUpper(b.String())
}
