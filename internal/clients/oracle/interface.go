package oracle

import (
	"context"
	"net/http"

	"github.com/thirdfi/fund-orchestrator/internal/types"
)

type OracleClientInterface interface {
	GetBaseURL() string
	GetDefaultRequestTimeout() int
	GetHttpClient() *http.Client
	GetAssetPrice(ctx context.Context, chainId uint64, token string) (*AssetPriceResponse, *types.Error)
}
