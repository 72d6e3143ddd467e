package ballapi_client

const (
	// Base URL
	BaseURL = "https://api.balldontlie.io/v1"

	// API Endpoints
	GamesEndpoint     = "/games"
	BoxScoresEndpoint = "/box_scores"
	StandingsEndpoint = "/standings"
	TeamsEndpoint     = "/teams"
	PlayersEndpoint   = "/players"
	StatsEndpoint     = "/stats"

	// CDN URL templates, keyed by numeric NBA ids. The dashboard falls
	// back to text initials when one of these fails to load.
	TeamLogoURLTemplate       = "https://cdn.nba.com/logos/nba/%s/primary/L/logo.svg"
	PlayerHeadshotURLTemplate = "https://cdn.nba.com/headshots/nba/latest/1040x760/%s.png"

	// Headers
	AuthorizationHeader = "Authorization"
)
