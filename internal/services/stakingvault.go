package services

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/thirdfi/fund-orchestrator/internal/db"
	"github.com/thirdfi/fund-orchestrator/internal/db/model"
	"github.com/thirdfi/fund-orchestrator/internal/types"
	"github.com/thirdfi/fund-orchestrator/internal/utils"
)

// Invest converts the pool's buffered deposits into staked shares at the
// external exchange rate. The invest interval throttles how often the pool
// talks to the staking provider; a tick inside the interval is a no-op.
func (s *Services) Invest(ctx context.Context, chainId uint64, asset string) *types.Error {
	poolCfg := s.cfg.Staking.PoolConfig(chainId, asset)
	if poolCfg == nil {
		return types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "staking pool not configured")
	}

	pool, err := s.DbClient.FindStakingPool(ctx, chainId, asset)
	if err != nil {
		if db.IsNotFoundError(err) {
			return nil
		}
		return types.NewInternalServiceError(err)
	}

	if pool.EmergencyUnbonding {
		return types.NewErrorWithMsg(http.StatusForbidden, types.Paused, "pool is emergency unbonding")
	}

	now := time.Now()
	if now.Unix()-pool.LastInvestTs < int64(poolCfg.InvestInterval.Seconds()) {
		return nil
	}

	if pool.BufferedDeposits == 0 {
		return nil
	}
	if pool.BufferedDeposits < poolCfg.MinInvestAmount {
		return types.NewErrorWithMsg(http.StatusBadRequest, types.TooSmall, "buffered deposits below minimum invest amount")
	}

	rate, rateErr := s.Clients.Staking.GetExchangeRate(ctx, chainId, asset)
	if rateErr != nil {
		return rateErr
	}
	expectedShares := types.MulDiv(pool.BufferedDeposits, types.OneUsd, rate.UsdPerShare)

	stakeResp, stakeErr := s.Clients.Staking.Stake(ctx, chainId, asset, pool.BufferedDeposits)
	if stakeErr != nil {
		return stakeErr
	}

	if !types.WithinTolerance(expectedShares, stakeResp.SharesMinted, s.cfg.Server.MaxSlippageBps) {
		log.Ctx(ctx).Error().Uint64("chainId", chainId).Str("asset", asset).
			Uint64("expectedShares", expectedShares).Uint64("mintedShares", stakeResp.SharesMinted).
			Msg("stake slippage outside tolerance")
		return types.NewErrorWithMsg(http.StatusBadGateway, types.InternalServiceError, "stake slippage outside tolerance")
	}

	if err := s.DbClient.InvestStakingPool(
		ctx, chainId, asset, pool.BufferedDeposits, stakeResp.SharesMinted, now.Unix(),
	); err != nil {
		log.Ctx(ctx).Error().Err(err).Uint64("chainId", chainId).Str("asset", asset).
			Msg("error while recording invest")
		return types.NewInternalServiceError(err)
	}

	log.Ctx(ctx).Info().Uint64("chainId", chainId).Str("asset", asset).
		Uint64("investedUsd", pool.BufferedDeposits).Uint64("sharesMinted", stakeResp.SharesMinted).
		Msg("buffered deposits invested")
	return nil
}

// Redeem batches the accumulated withdraw requests into unbonding tickets.
// Each request becomes its own ticket so owners keep individual claim
// capabilities, but the batch shares one unstake call and one ready
// timestamp. Tickets are appended at the queue tail in request order.
func (s *Services) Redeem(ctx context.Context, chainId uint64, asset string) *types.Error {
	poolCfg := s.cfg.Staking.PoolConfig(chainId, asset)
	if poolCfg == nil {
		return types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "staking pool not configured")
	}

	pool, err := s.DbClient.FindStakingPool(ctx, chainId, asset)
	if err != nil {
		if db.IsNotFoundError(err) {
			return nil
		}
		return types.NewInternalServiceError(err)
	}

	if pool.EmergencyUnbonding {
		return types.NewErrorWithMsg(http.StatusForbidden, types.Paused, "pool is emergency unbonding")
	}

	now := time.Now()
	if now.Unix()-pool.LastRedeemTs < int64(poolCfg.RedeemInterval.Seconds()) {
		return nil
	}

	requests, err := s.DbClient.FindWithdrawRequests(ctx, chainId, asset)
	if err != nil {
		return types.NewInternalServiceError(err)
	}
	if len(requests) == 0 {
		return nil
	}

	var totalUsd uint64
	for i := range requests {
		totalUsd += requests[i].AmountUsd
	}
	if totalUsd < poolCfg.MinRedeemAmount {
		return types.NewErrorWithMsg(http.StatusBadRequest, types.TooSmall, "requested withdrawals below minimum redeem amount")
	}

	rate, rateErr := s.Clients.Staking.GetExchangeRate(ctx, chainId, asset)
	if rateErr != nil {
		return rateErr
	}
	sharesToRedeem := utils.Min(types.MulDiv(totalUsd, types.OneUsd, rate.UsdPerShare), pool.StakedShares)
	if sharesToRedeem == 0 {
		return nil
	}

	unstakeResp, unstakeErr := s.Clients.Staking.Unstake(ctx, chainId, asset, sharesToRedeem)
	if unstakeErr != nil {
		return unstakeErr
	}

	if !types.WithinTolerance(totalUsd, unstakeResp.ExpectedUnderlying, s.cfg.Server.MaxSlippageBps) {
		log.Ctx(ctx).Error().Uint64("chainId", chainId).Str("asset", asset).
			Uint64("requestedUsd", totalUsd).Uint64("expectedUnderlying", unstakeResp.ExpectedUnderlying).
			Msg("unstake slippage outside tolerance")
		return types.NewErrorWithMsg(http.StatusBadGateway, types.InternalServiceError, "unstake slippage outside tolerance")
	}

	readyAtTs := unstakeResp.ReadyAtTs
	if readyAtTs == 0 {
		readyAtTs = now.Add(poolCfg.UnbondingPeriod).Unix()
	}

	tickets := make([]model.UnbondingTicketDocument, 0, len(requests))
	sharesLeft := sharesToRedeem
	for i := range requests {
		shares := types.MulDiv(requests[i].AmountUsd, sharesToRedeem, totalUsd)
		if i == len(requests)-1 {
			shares = sharesLeft
		}
		sharesLeft -= shares

		tickets = append(tickets, model.UnbondingTicketDocument{
			ChainId:              chainId,
			Asset:                asset,
			Seq:                  pool.LastSeq + uint64(i) + 1,
			Owner:                requests[i].Owner,
			ClaimId:              uuid.NewString(),
			StakedSharesRedeemed: shares,
			ExpectedUnderlying:   requests[i].AmountUsd,
			ReadyAtTs:            readyAtTs,
			State:                types.TicketPending,
		})
	}

	if err := s.DbClient.SaveRedeemBatch(
		ctx, chainId, asset, tickets, sharesToRedeem, totalUsd, now.Unix(),
	); err != nil {
		log.Ctx(ctx).Error().Err(err).Uint64("chainId", chainId).Str("asset", asset).
			Msg("error while recording redeem batch")
		return types.NewInternalServiceError(err)
	}

	log.Ctx(ctx).Info().Uint64("chainId", chainId).Str("asset", asset).
		Uint64("redeemedUsd", totalUsd).Int("tickets", len(tickets)).Int64("readyAtTs", readyAtTs).
		Msg("withdraw requests batched into unbonding tickets")
	return nil
}

// ClaimUnbonded matures tickets whose unbonding delay elapsed and whose value
// the external system reports released, and advances the FIFO head over the
// already claimed prefix. The external system settles in request order, so
// maturation stops at the first ticket that is not ready or not covered yet.
// Nothing ready is a no-op. Pending tickets mature into the unbonded state;
// emergency tickets keep their origin so each payout path only ever touches
// its own balance.
func (s *Services) ClaimUnbonded(ctx context.Context, chainId uint64, asset string) *types.Error {
	pool, err := s.DbClient.FindStakingPool(ctx, chainId, asset)
	if err != nil {
		if db.IsNotFoundError(err) {
			return nil
		}
		return types.NewInternalServiceError(err)
	}
	if pool.LastSeq < pool.FirstSeq {
		return nil
	}

	tickets, err := s.DbClient.FindTicketsInRange(ctx, chainId, asset, pool.FirstSeq, pool.LastSeq)
	if err != nil {
		return types.NewInternalServiceError(err)
	}

	now := time.Now().Unix()
	newFirstSeq := pool.FirstSeq
	advancing := true
	releasedKnown := false
	var releasedLeft uint64
	for i := range tickets {
		ticket := &tickets[i]

		if advancing && utils.Contains(utils.OutdatedStatesForClaim, ticket.State) && ticket.Seq == newFirstSeq {
			newFirstSeq++
			continue
		}
		advancing = false

		if ticket.State != types.TicketPending && ticket.State != types.TicketEmergency {
			continue
		}
		if ticket.ReadyAtTs > now {
			break
		}

		// The provider is polled once, at the first time-ready ticket.
		if !releasedKnown {
			released, relErr := s.Clients.Staking.GetReleased(ctx, chainId, asset)
			if relErr != nil {
				return relErr
			}
			releasedLeft = released.ReleasedUsd
			releasedKnown = true
		}
		if ticket.ExpectedUnderlying > releasedLeft {
			// Delay elapsed but the provider has not released the value yet.
			break
		}
		releasedLeft -= ticket.ExpectedUnderlying

		eligible := utils.QualifiedStatesToUnbonded()
		matured := types.TicketUnbonded
		if ticket.State == types.TicketEmergency {
			eligible = utils.QualifiedStatesToUnbondedEmergency()
			matured = types.TicketUnbondedEmergency
		}
		if err := s.DbClient.TransitionTicketState(
			ctx, chainId, asset, ticket.Seq, eligible, matured,
		); err != nil {
			if db.IsNotFoundError(err) {
				// Another worker got there first.
				continue
			}
			return types.NewInternalServiceError(err)
		}

		// Pending tickets return their value to the liquid pool, where the
		// matching pending claim is later paid from. Emergency value was
		// already moved to the emergency unbonding balance at pause time.
		if ticket.State == types.TicketPending {
			if err := s.DbClient.IncVaultPool(ctx, chainId, ticket.ExpectedUnderlying); err != nil {
				return types.NewInternalServiceError(err)
			}
		}

		log.Ctx(ctx).Info().Uint64("chainId", chainId).Str("asset", asset).Uint64("seq", ticket.Seq).
			Uint64("unbondedUsd", ticket.ExpectedUnderlying).Str("state", matured.ToString()).
			Msg("unbonding ticket matured")
	}

	if newFirstSeq != pool.FirstSeq {
		if err := s.DbClient.AdvanceTicketHead(ctx, chainId, asset, pool.FirstSeq, newFirstSeq); err != nil {
			if !db.IsNotFoundError(err) {
				return types.NewInternalServiceError(err)
			}
		}
	}
	return nil
}

// EmergencyRedeem force-exits the pool's entire staked position and flips
// every outstanding ticket to the emergency state. It returns the USD value
// of the staked position at the current exchange rate so the caller can move
// it into the vault's emergency unbonding balance.
func (s *Services) EmergencyRedeem(ctx context.Context, chainId uint64, asset string) (uint64, *types.Error) {
	pool, err := s.DbClient.FindStakingPool(ctx, chainId, asset)
	if err != nil {
		if db.IsNotFoundError(err) {
			return 0, nil
		}
		return 0, types.NewInternalServiceError(err)
	}
	if pool.EmergencyUnbonding {
		return 0, nil
	}

	var stakedUsd uint64
	if pool.StakedShares > 0 {
		rate, rateErr := s.Clients.Staking.GetExchangeRate(ctx, chainId, asset)
		if rateErr != nil {
			return 0, rateErr
		}
		stakedUsd = types.MulDiv(pool.StakedShares, rate.UsdPerShare, types.OneUsd)

		if _, unstakeErr := s.Clients.Staking.EmergencyUnstake(ctx, chainId, asset, pool.StakedShares); unstakeErr != nil {
			return 0, unstakeErr
		}
	}

	if err := s.DbClient.MarkPoolEmergency(ctx, chainId, asset); err != nil {
		log.Ctx(ctx).Error().Err(err).Uint64("chainId", chainId).Str("asset", asset).
			Msg("error while marking pool emergency")
		return 0, types.NewInternalServiceError(err)
	}

	log.Ctx(ctx).Warn().Uint64("chainId", chainId).Str("asset", asset).
		Uint64("stakedUsd", stakedUsd).Uint64("sharesRedeemed", pool.StakedShares).
		Msg("staking pool force-exited")
	return stakedUsd, nil
}
