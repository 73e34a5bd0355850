package staking

import (
	"context"
	"net/http"

	"github.com/thirdfi/fund-orchestrator/internal/types"
)

type StakingClientInterface interface {
	GetBaseURL() string
	GetDefaultRequestTimeout() int
	GetHttpClient() *http.Client
	GetExchangeRate(ctx context.Context, chainId uint64, asset string) (*ExchangeRateResponse, *types.Error)
	GetReleased(ctx context.Context, chainId uint64, asset string) (*ReleasedResponse, *types.Error)
	Stake(ctx context.Context, chainId uint64, asset string, amountUsd uint64) (*StakeResponse, *types.Error)
	Unstake(ctx context.Context, chainId uint64, asset string, shares uint64) (*UnstakeResponse, *types.Error)
	EmergencyUnstake(ctx context.Context, chainId uint64, asset string, shares uint64) (*UnstakeResponse, *types.Error)
}
