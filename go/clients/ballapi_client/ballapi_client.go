package ballapi_client

import (
	"github.com/mpcost/hoopzone/go/clients"
)

type BallApiClient struct {
	*clients.BaseClient
}

func NewBallApiClient(apiKey string) *BallApiClient {
	client := &BallApiClient{
		BaseClient: clients.NewBaseClient(BaseURL),
	}

	client.SetHeader(AuthorizationHeader, apiKey)

	return client
}
