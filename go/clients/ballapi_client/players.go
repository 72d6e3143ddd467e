package ballapi_client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/mpcost/hoopzone/go/internal/models"
)

const directoryPageSize = 25

type PlayersResponse struct {
	Data []models.PlayerInfo `json:"data"`
	Meta struct {
		NextCursor int `json:"next_cursor"`
	} `json:"meta"`
}

// GetPlayers searches the league player directory. A zero cursor starts
// from the first page; the response meta carries the cursor for the next.
func (c *BallApiClient) GetPlayers(ctx context.Context, search string, cursor int) (*PlayersResponse, error) {
	endpoint := fmt.Sprintf("%s?per_page=%d", PlayersEndpoint, directoryPageSize)
	if search != "" {
		endpoint += "&search=" + url.QueryEscape(search)
	}
	if cursor > 0 {
		endpoint += fmt.Sprintf("&cursor=%d", cursor)
	}

	body, err := c.Get(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to get players: %w", err)
	}

	var response PlayersResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w, raw response: %s", err, string(body))
	}
	return &response, nil
}

type playerResponse struct {
	Data models.PlayerInfo `json:"data"`
}

func (c *BallApiClient) GetPlayer(ctx context.Context, playerID string) (*models.PlayerInfo, error) {
	body, err := c.Get(ctx, fmt.Sprintf("%s/%s", PlayersEndpoint, playerID))
	if err != nil {
		return nil, fmt.Errorf("failed to get player %s: %w", playerID, err)
	}

	var response playerResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w, raw response: %s", err, string(body))
	}
	return &response.Data, nil
}

type playerStatsResponse struct {
	Data []models.PlayerGameLine `json:"data"`
}

// GetPlayerGameLines returns the player's most recent game lines, newest
// first.
func (c *BallApiClient) GetPlayerGameLines(ctx context.Context, playerID string, limit int) ([]models.PlayerGameLine, error) {
	endpoint := fmt.Sprintf("%s?player_ids[]=%s&per_page=%d", StatsEndpoint, playerID, limit)
	body, err := c.Get(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to get stats for player %s: %w", playerID, err)
	}

	var response playerStatsResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w, raw response: %s", err, string(body))
	}
	return response.Data, nil
}
