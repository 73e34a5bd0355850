package services

import (
	"context"
	"net/http"
	"time"

	"github.com/thirdfi/fund-orchestrator/internal/clients/oracle"
	"github.com/thirdfi/fund-orchestrator/internal/db"
	"github.com/thirdfi/fund-orchestrator/internal/db/model"
	"github.com/thirdfi/fund-orchestrator/internal/types"
)

// PoolUnbondedView is one pool's slice of an owner's staking claims.
type PoolUnbondedView struct {
	ChainId uint64 `json:"chain_id"`
	Asset   string `json:"asset"`
	types.UnbondedView
}

// GetAllUnbonded decomposes the owner's staking claims across every pool
// into what is still waiting on the unbonding delay, what is ready to claim,
// and the longest remaining delay. Pure view, mutates nothing.
func (s *Services) GetAllUnbonded(ctx context.Context, owner string) (*types.UnbondedView, *types.Error) {
	pools, err := s.GetPoolsUnbonded(ctx, owner)
	if err != nil {
		return nil, err
	}

	total := &types.UnbondedView{}
	for i := range pools {
		total.WaitingInUSD += pools[i].WaitingInUSD
		total.UnbondedInUSD += pools[i].UnbondedInUSD
		if pools[i].WaitForTs > total.WaitForTs {
			total.WaitForTs = pools[i].WaitForTs
		}
	}
	return total, nil
}

// GetPoolsUnbonded is GetAllUnbonded broken down per staking pool.
func (s *Services) GetPoolsUnbonded(ctx context.Context, owner string) ([]PoolUnbondedView, *types.Error) {
	tickets, err := s.DbClient.FindTicketsByOwner(ctx, owner)
	if err != nil {
		return nil, types.NewInternalServiceError(err)
	}
	requests, err := s.DbClient.FindWithdrawRequestsByOwner(ctx, owner)
	if err != nil {
		return nil, types.NewInternalServiceError(err)
	}

	type poolKey struct {
		chainId uint64
		asset   string
	}
	now := time.Now().Unix()
	views := make(map[poolKey]*types.UnbondedView)
	var order []poolKey

	viewFor := func(chainId uint64, asset string) *types.UnbondedView {
		key := poolKey{chainId, asset}
		if view, ok := views[key]; ok {
			return view
		}
		view := &types.UnbondedView{}
		views[key] = view
		order = append(order, key)
		return view
	}

	// Requests are booked but not yet ticketed, so the remaining delay is
	// unknown; they only count as waiting value.
	for i := range requests {
		viewFor(requests[i].ChainId, requests[i].Asset).WaitingInUSD += requests[i].AmountUsd
	}

	for i := range tickets {
		ticket := &tickets[i]
		view := viewFor(ticket.ChainId, ticket.Asset)

		switch ticket.State {
		case types.TicketUnbonded, types.TicketUnbondedEmergency:
			view.UnbondedInUSD += ticket.ExpectedUnderlying
		case types.TicketPending, types.TicketEmergency:
			view.WaitingInUSD += ticket.ExpectedUnderlying
			if remaining := ticket.ReadyAtTs - now; remaining > 0 && remaining > view.WaitForTs {
				view.WaitForTs = remaining
			}
		case types.TicketClaimed:
			// Already paid out, nothing left to show.
		}
	}

	result := make([]PoolUnbondedView, 0, len(order))
	for _, key := range order {
		result = append(result, PoolUnbondedView{
			ChainId:      key.chainId,
			Asset:        key.asset,
			UnbondedView: *views[key],
		})
	}
	return result, nil
}

// GetAssetPrice proxies the price oracle for a token on a ledger.
func (s *Services) GetAssetPrice(
	ctx context.Context, chainId uint64, token string,
) (*oracle.AssetPriceResponse, *types.Error) {
	price, err := s.Clients.Oracle.GetAssetPrice(ctx, chainId, token)
	if err != nil {
		return nil, err
	}
	if price.PriceMicros == 0 {
		return nil, types.NewErrorWithMsg(
			http.StatusNotFound, types.NotFound, "no price for asset",
		)
	}
	return price, nil
}

// GetVault returns the vault's current accounting document.
func (s *Services) GetVault(ctx context.Context, chainId uint64) (*model.VaultDocument, *types.Error) {
	vault, err := s.DbClient.FindVault(ctx, chainId)
	if err != nil {
		if db.IsNotFoundError(err) {
			return nil, types.NewErrorWithMsg(http.StatusNotFound, types.NotFound, "vault not found")
		}
		return nil, types.NewInternalServiceError(err)
	}
	return vault, nil
}
