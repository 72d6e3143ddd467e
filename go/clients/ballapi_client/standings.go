package ballapi_client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mpcost/hoopzone/go/internal/models"
)

type StandingsResponse struct {
	East []models.StandingRow `json:"east"`
	West []models.StandingRow `json:"west"`
}

func (c *BallApiClient) GetStandings(ctx context.Context) (*StandingsResponse, error) {
	body, err := c.Get(ctx, StandingsEndpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to get standings: %w", err)
	}

	var response StandingsResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w, raw response: %s", err, string(body))
	}

	if response.East == nil && response.West == nil {
		return nil, fmt.Errorf("standings response missing both conferences")
	}

	return &response, nil
}
