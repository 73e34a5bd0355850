package staking

import (
	"context"
	"fmt"
	"net/http"

	baseclient "github.com/thirdfi/fund-orchestrator/internal/clients/base"
	"github.com/thirdfi/fund-orchestrator/internal/config"
	"github.com/thirdfi/fund-orchestrator/internal/types"
)

// StakingClient talks to the external staking provider that actually holds
// the staked positions. The orchestrator only mirrors its accounting.
type StakingClient struct {
	config     *config.StakingConfig
	httpClient *http.Client
}

func NewStakingClient(config *config.StakingConfig) *StakingClient {
	httpClient := &http.Client{}
	return &StakingClient{
		config,
		httpClient,
	}
}

// Necessary for the BaseClient interface
func (c *StakingClient) GetBaseURL() string {
	return fmt.Sprintf("%s:%s", c.config.Host, c.config.Port)
}

func (c *StakingClient) GetDefaultRequestTimeout() int {
	return c.config.Timeout
}

func (c *StakingClient) GetHttpClient() *http.Client {
	return c.httpClient
}

// ExchangeRateResponse reports the micro USD value of one staking share.
type ExchangeRateResponse struct {
	ChainId     uint64 `json:"chain_id"`
	Asset       string `json:"asset"`
	UsdPerShare uint64 `json:"usd_per_share"`
	TotalShares uint64 `json:"total_shares"`
	UpdatedTs   int64  `json:"updated_ts"`
}

// ReleasedResponse reports how much unbonding value the provider has
// actually released for the pool so far. Tickets whose unbonding delay has
// passed are still not claimable beyond this amount.
type ReleasedResponse struct {
	ChainId     uint64 `json:"chain_id"`
	Asset       string `json:"asset"`
	ReleasedUsd uint64 `json:"released_usd"`
	UpdatedTs   int64  `json:"updated_ts"`
}

type StakeResponse struct {
	SharesMinted uint64 `json:"shares_minted"`
}

type UnstakeResponse struct {
	ExpectedUnderlying uint64 `json:"expected_underlying"`
	ReadyAtTs          int64  `json:"ready_at_ts"`
}

type stakeRequest struct {
	ChainId   uint64 `json:"chain_id"`
	Asset     string `json:"asset"`
	AmountUsd uint64 `json:"amount_usd"`
}

type unstakeRequest struct {
	ChainId   uint64 `json:"chain_id"`
	Asset     string `json:"asset"`
	Shares    uint64 `json:"shares"`
	Emergency bool   `json:"emergency"`
}

func (c *StakingClient) GetExchangeRate(
	ctx context.Context, chainId uint64, asset string,
) (*ExchangeRateResponse, *types.Error) {
	path := fmt.Sprintf("/v1/exchange-rate/%d/%s", chainId, asset)

	opts := &baseclient.BaseClientOptions{
		Path:    path,
		Headers: map[string]string{"Accept": "application/json"},
	}

	type emptyBody struct{}
	return baseclient.SendRequest[emptyBody, ExchangeRateResponse](ctx, c, http.MethodGet, opts, nil)
}

func (c *StakingClient) GetReleased(
	ctx context.Context, chainId uint64, asset string,
) (*ReleasedResponse, *types.Error) {
	path := fmt.Sprintf("/v1/released/%d/%s", chainId, asset)

	opts := &baseclient.BaseClientOptions{
		Path:    path,
		Headers: map[string]string{"Accept": "application/json"},
	}

	type emptyBody struct{}
	return baseclient.SendRequest[emptyBody, ReleasedResponse](ctx, c, http.MethodGet, opts, nil)
}

func (c *StakingClient) Stake(
	ctx context.Context, chainId uint64, asset string, amountUsd uint64,
) (*StakeResponse, *types.Error) {
	opts := &baseclient.BaseClientOptions{
		Path:    "/v1/stake",
		Headers: map[string]string{"Content-Type": "application/json"},
	}
	input := &stakeRequest{ChainId: chainId, Asset: asset, AmountUsd: amountUsd}
	return baseclient.SendRequest[stakeRequest, StakeResponse](ctx, c, http.MethodPost, opts, input)
}

func (c *StakingClient) Unstake(
	ctx context.Context, chainId uint64, asset string, shares uint64,
) (*UnstakeResponse, *types.Error) {
	return c.unstake(ctx, chainId, asset, shares, false)
}

// EmergencyUnstake skips the provider's batching and exits the position
// immediately. The provider still applies the unbonding period.
func (c *StakingClient) EmergencyUnstake(
	ctx context.Context, chainId uint64, asset string, shares uint64,
) (*UnstakeResponse, *types.Error) {
	return c.unstake(ctx, chainId, asset, shares, true)
}

func (c *StakingClient) unstake(
	ctx context.Context, chainId uint64, asset string, shares uint64, emergency bool,
) (*UnstakeResponse, *types.Error) {
	opts := &baseclient.BaseClientOptions{
		Path:    "/v1/unstake",
		Headers: map[string]string{"Content-Type": "application/json"},
	}
	input := &unstakeRequest{ChainId: chainId, Asset: asset, Shares: shares, Emergency: emergency}
	return baseclient.SendRequest[unstakeRequest, UnstakeResponse](ctx, c, http.MethodPost, opts, input)
}
