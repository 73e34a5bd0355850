package oracle

import (
	"context"
	"fmt"
	"net/http"

	baseclient "github.com/thirdfi/fund-orchestrator/internal/clients/base"
	"github.com/thirdfi/fund-orchestrator/internal/config"
	"github.com/thirdfi/fund-orchestrator/internal/types"
)

type OracleClient struct {
	config     *config.OracleConfig
	httpClient *http.Client
}

func NewOracleClient(config *config.OracleConfig) *OracleClient {
	httpClient := &http.Client{}
	return &OracleClient{
		config,
		httpClient,
	}
}

// Necessary for the BaseClient interface
func (c *OracleClient) GetBaseURL() string {
	return fmt.Sprintf("%s:%s", c.config.Host, c.config.Port)
}

func (c *OracleClient) GetDefaultRequestTimeout() int {
	return c.config.Timeout
}

func (c *OracleClient) GetHttpClient() *http.Client {
	return c.httpClient
}

// AssetPriceResponse reports a token price in micro USD per whole unit.
type AssetPriceResponse struct {
	ChainId     uint64 `json:"chain_id"`
	Token       string `json:"token"`
	PriceMicros uint64 `json:"price_micros"`
	UpdatedTs   int64  `json:"updated_ts"`
}

func (c *OracleClient) GetAssetPrice(
	ctx context.Context, chainId uint64, token string,
) (*AssetPriceResponse, *types.Error) {
	path := fmt.Sprintf("/v1/price/%d/%s", chainId, token)

	opts := &baseclient.BaseClientOptions{
		Path:    path,
		Headers: map[string]string{"Accept": "application/json"},
	}

	// empty struct for the GET request body
	type emptyBody struct{}
	return baseclient.SendRequest[emptyBody, AssetPriceResponse](ctx, c, http.MethodGet, opts, nil)
}
