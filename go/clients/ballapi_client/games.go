package ballapi_client

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// GamesResponse wraps the games list endpoint. Individual games stay raw:
// the upstream payload shape varies between snake_case and camelCase
// conventions, so decoding is left to the snapshot normalizer.
type GamesResponse struct {
	Data []json.RawMessage      `json:"data"`
	Meta map[string]interface{} `json:"meta,omitempty"`
}

func (c *BallApiClient) GetGamesForDate(ctx context.Context, date time.Time) ([]json.RawMessage, error) {
	endpoint := fmt.Sprintf("%s?dates[]=%s", GamesEndpoint, date.Format("2006-01-02"))
	body, err := c.Get(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to get games: %w", err)
	}

	var response GamesResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w, raw response: %s", err, string(body))
	}

	return response.Data, nil
}

// GameResponse wraps the single-game endpoint. Single resources carry
// the same data envelope as lists.
type GameResponse struct {
	Data json.RawMessage `json:"data"`
}

func (c *BallApiClient) GetGame(ctx context.Context, gameID string) (json.RawMessage, error) {
	body, err := c.Get(ctx, fmt.Sprintf("%s/%s", GamesEndpoint, gameID))
	if err != nil {
		return nil, fmt.Errorf("failed to get game %s: %w", gameID, err)
	}

	var response GameResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w, raw response: %s", err, string(body))
	}
	if len(response.Data) == 0 || string(response.Data) == "null" {
		// Some fixtures and mirrors serve the game bare.
		return body, nil
	}
	return response.Data, nil
}

// GetBoxScore returns the full per-player box score payload for one game.
// The games endpoints carry scores only; player lines live here.
func (c *BallApiClient) GetBoxScore(ctx context.Context, gameID string) (json.RawMessage, error) {
	body, err := c.Get(ctx, fmt.Sprintf("%s?game_ids[]=%s", BoxScoresEndpoint, gameID))
	if err != nil {
		return nil, fmt.Errorf("failed to get box score %s: %w", gameID, err)
	}

	var response GamesResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w, raw response: %s", err, string(body))
	}
	if len(response.Data) == 0 {
		return nil, fmt.Errorf("no box score for game %s", gameID)
	}
	return response.Data[0], nil
}
