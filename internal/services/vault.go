package services

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/thirdfi/fund-orchestrator/internal/db"
	"github.com/thirdfi/fund-orchestrator/internal/db/model"
	"github.com/thirdfi/fund-orchestrator/internal/types"
)

// WithdrawOutcome reports how a withdraw settled: ReleasedUsd left the pool
// immediately, PendingUsd is booked as a claim until staking unbonds.
type WithdrawOutcome struct {
	ReleasedUsd uint64 `json:"released_usd"`
	PendingUsd  uint64 `json:"pending_usd"`
}

// outstandingTicketStates are the ticket states that still block a reinvest
// after an emergency withdraw.
var outstandingTicketStates = []types.TicketState{
	types.TicketEmergency, types.TicketUnbondedEmergency, types.TicketUnbonded,
}

// DepositByAdmin credits a vault against the next operation nonce and
// buffers each token into its staking pool when one is configured.
// Tokens without a staking pool stay liquid in the vault.
func (s *Services) DepositByAdmin(
	ctx context.Context, chainId uint64, owner string, tokens []string, amounts []uint64, nonce uint64,
) *types.Error {
	if len(tokens) == 0 || len(tokens) != len(amounts) {
		return types.NewErrorWithMsg(
			http.StatusBadRequest, types.ValidationError,
			"tokens and amounts must be non-empty and of equal length",
		)
	}

	var total uint64
	buffered := make([]model.BufferedDeposit, 0, len(tokens))
	for i, amount := range amounts {
		if amount == 0 {
			return types.NewErrorWithMsg(http.StatusBadRequest, types.ValidationError, "amount cannot be 0")
		}
		sum, ok := types.SafeAdd(total, amount)
		if !ok {
			return types.NewErrorWithMsg(http.StatusBadRequest, types.ValidationError, "amounts overflow")
		}
		total = sum
		if s.cfg.Staking.PoolConfig(chainId, tokens[i]) != nil {
			buffered = append(buffered, model.BufferedDeposit{Asset: tokens[i], AmountUsd: amount})
		}
	}

	// The vault credit and the staking pool buffers land in one transaction.
	if err := s.DbClient.DepositToVault(ctx, chainId, nonce, total, buffered); err != nil {
		if db.IsStaleNonceError(err) {
			return types.NewErrorWithMsg(http.StatusForbidden, types.StaleNonce, "Nonce is behind")
		}
		if db.IsPausedError(err) {
			return types.NewErrorWithMsg(http.StatusForbidden, types.Paused, "vault is paused")
		}
		log.Ctx(ctx).Error().Err(err).Uint64("chainId", chainId).Msg("error while depositing to vault")
		return types.NewInternalServiceError(err)
	}

	log.Ctx(ctx).Info().Uint64("chainId", chainId).Uint64("nonce", nonce).Uint64("amountUsd", total).
		Str("owner", owner).Msg("vault deposit accepted")
	return nil
}

// WithdrawPercByAdmin releases percBp of the current pool. The liquid part
// leaves the pool immediately; the part locked in staking becomes a pending
// claim plus withdraw requests against the staking pools. Partial settlement
// is a first-class outcome, not an error.
func (s *Services) WithdrawPercByAdmin(
	ctx context.Context, chainId uint64, owner string, percBp, nonce uint64,
) (*WithdrawOutcome, *types.Error) {
	if percBp == 0 || percBp > types.PercDenominator {
		return nil, types.NewErrorWithMsg(
			http.StatusBadRequest, types.ValidationError,
			"percentage must be between 1 and 10000 basis points",
		)
	}

	vault, err := s.DbClient.FindVault(ctx, chainId)
	if err != nil {
		if db.IsNotFoundError(err) {
			return nil, types.NewErrorWithMsg(http.StatusNotFound, types.NotFound, "vault not found")
		}
		return nil, types.NewInternalServiceError(err)
	}

	releaseTotal := types.PercOf(vault.PoolUsd, percBp)
	if releaseTotal == 0 {
		return nil, types.NewErrorWithMsg(http.StatusBadRequest, types.TooSmall, "withdrawal rounds to zero")
	}

	stakedUsd, valErr := s.stakedValueUsd(ctx, chainId)
	if valErr != nil {
		return nil, valErr
	}

	liquid := vault.PoolUsd
	if stakedUsd < liquid {
		liquid -= stakedUsd
	} else {
		liquid = 0
	}

	released := releaseTotal
	if released > liquid {
		released = liquid
	}
	pending := releaseTotal - released

	if err := s.DbClient.WithdrawFromVault(ctx, chainId, nonce, released, pending); err != nil {
		if db.IsStaleNonceError(err) {
			return nil, types.NewErrorWithMsg(http.StatusForbidden, types.StaleNonce, "Nonce is behind")
		}
		log.Ctx(ctx).Error().Err(err).Uint64("chainId", chainId).Msg("error while withdrawing from vault")
		return nil, types.NewInternalServiceError(err)
	}

	if pending > 0 {
		if err := s.bookWithdrawRequests(ctx, chainId, owner, pending); err != nil {
			return nil, err
		}
	}

	log.Ctx(ctx).Info().Uint64("chainId", chainId).Uint64("nonce", nonce).
		Uint64("releasedUsd", released).Uint64("pendingUsd", pending).
		Msg("vault withdraw settled")
	return &WithdrawOutcome{ReleasedUsd: released, PendingUsd: pending}, nil
}

// bookWithdrawRequests spreads a pending withdrawal over the chain's staking
// pools, draining each pool's staked value in configuration order.
func (s *Services) bookWithdrawRequests(
	ctx context.Context, chainId uint64, owner string, pendingUsd uint64,
) *types.Error {
	remaining := pendingUsd
	now := time.Now().Unix()

	for i := range s.cfg.Staking.Pools {
		poolCfg := &s.cfg.Staking.Pools[i]
		if poolCfg.ChainId != chainId || remaining == 0 {
			continue
		}

		poolValue, err := s.poolStakedValueUsd(ctx, chainId, poolCfg.Asset)
		if err != nil {
			return err
		}
		if poolValue == 0 {
			continue
		}

		amount := remaining
		if amount > poolValue {
			amount = poolValue
		}

		req := &model.WithdrawRequestDocument{
			ChainId:     chainId,
			Asset:       poolCfg.Asset,
			Owner:       owner,
			AmountUsd:   amount,
			RequestedTs: now,
		}
		if dbErr := s.DbClient.AddWithdrawRequest(ctx, req); dbErr != nil {
			log.Ctx(ctx).Error().Err(dbErr).Uint64("chainId", chainId).Str("asset", poolCfg.Asset).
				Msg("error while booking withdraw request")
			return types.NewInternalServiceError(dbErr)
		}
		remaining -= amount
	}

	if remaining > 0 {
		// The staking pools cannot cover the pending amount at current
		// rates; the residual claim still matures when value unbonds.
		log.Ctx(ctx).Warn().Uint64("chainId", chainId).Uint64("unbookedUsd", remaining).
			Msg("pending withdrawal exceeds staked value")
	}
	return nil
}

// EmergencyWithdraw force-exits every staking position of the chain and
// pauses the vault. The staked remainder becomes a tracked emergency
// unbonding balance claimable once the external system releases it.
func (s *Services) EmergencyWithdraw(ctx context.Context, chainId uint64) *types.Error {
	var stakedUsd uint64
	for i := range s.cfg.Staking.Pools {
		poolCfg := &s.cfg.Staking.Pools[i]
		if poolCfg.ChainId != chainId {
			continue
		}
		poolUsd, err := s.EmergencyRedeem(ctx, chainId, poolCfg.Asset)
		if err != nil {
			return err
		}
		stakedUsd += poolUsd
	}

	if err := s.DbClient.PauseVaultForEmergency(ctx, chainId, stakedUsd); err != nil {
		if db.IsPausedError(err) {
			return types.NewErrorWithMsg(http.StatusForbidden, types.Paused, "vault is already paused")
		}
		log.Ctx(ctx).Error().Err(err).Uint64("chainId", chainId).Msg("error while pausing vault")
		return types.NewInternalServiceError(err)
	}

	log.Ctx(ctx).Warn().Uint64("chainId", chainId).Uint64("stakedUsd", stakedUsd).
		Msg("emergency withdraw executed, vault paused")
	return nil
}

// Reinvest re-establishes the strategy composition and unpauses the vault.
// Blocked until every emergency ticket is claimed and the emergency balance
// has drained.
func (s *Services) Reinvest(
	ctx context.Context, chainId uint64, tokens []string, percBps []uint64,
) *types.Error {
	composition, valErr := buildComposition(tokens, percBps)
	if valErr != nil {
		return valErr
	}

	for i := range s.cfg.Staking.Pools {
		poolCfg := &s.cfg.Staking.Pools[i]
		if poolCfg.ChainId != chainId {
			continue
		}
		count, err := s.DbClient.CountTicketsInStates(
			ctx, chainId, poolCfg.Asset, outstandingTicketStates,
		)
		if err != nil {
			return types.NewInternalServiceError(err)
		}
		if count > 0 {
			return types.NewErrorWithMsg(
				http.StatusForbidden, types.EmergencyUnbondingNotFinished,
				"emergency unbonding not finished",
			)
		}
	}

	if err := s.DbClient.ReinvestVault(ctx, chainId, composition); err != nil {
		if db.IsNotFoundError(err) {
			return types.NewErrorWithMsg(
				http.StatusForbidden, types.EmergencyUnbondingNotFinished,
				"vault not paused or emergency unbonding not finished",
			)
		}
		return types.NewInternalServiceError(err)
	}

	for i := range s.cfg.Staking.Pools {
		poolCfg := &s.cfg.Staking.Pools[i]
		if poolCfg.ChainId != chainId {
			continue
		}
		if err := s.DbClient.ClearPoolEmergency(ctx, chainId, poolCfg.Asset); err != nil {
			return types.NewInternalServiceError(err)
		}
	}

	log.Ctx(ctx).Info().Uint64("chainId", chainId).Msg("vault reinvested and unpaused")
	return nil
}

// Rebalance installs a new per-ledger composition without touching the
// paused state. Allocation inside a chain is an accounting move.
func (s *Services) Rebalance(
	ctx context.Context, chainId uint64, tokens []string, percBps []uint64,
) *types.Error {
	composition, valErr := buildComposition(tokens, percBps)
	if valErr != nil {
		return valErr
	}

	if err := s.DbClient.SetVaultComposition(ctx, chainId, composition); err != nil {
		if db.IsNotFoundError(err) {
			return types.NewErrorWithMsg(http.StatusNotFound, types.NotFound, "vault not found")
		}
		return types.NewInternalServiceError(err)
	}
	return nil
}

// ClaimByAdmin settles a matured pending claim out of the pool.
func (s *Services) ClaimByAdmin(ctx context.Context, chainId, amountUsd uint64) *types.Error {
	if amountUsd == 0 {
		return types.NewErrorWithMsg(http.StatusBadRequest, types.ValidationError, "amount cannot be 0")
	}
	if err := s.DbClient.PayPendingClaim(ctx, chainId, amountUsd); err != nil {
		if db.IsNotFoundError(err) {
			return types.NewErrorWithMsg(
				http.StatusBadRequest, types.BadRequest,
				"pending claim exceeds tracked balance",
			)
		}
		return types.NewInternalServiceError(err)
	}
	return nil
}

// ReleaseEmergency returns matured emergency value to the liquid pool when
// the fund keeps running instead of paying every owner out.
func (s *Services) ReleaseEmergency(ctx context.Context, chainId, amountUsd uint64) *types.Error {
	if amountUsd == 0 {
		return types.NewErrorWithMsg(http.StatusBadRequest, types.ValidationError, "amount cannot be 0")
	}
	if err := s.DbClient.ReleaseEmergencyFunds(ctx, chainId, amountUsd); err != nil {
		if db.IsNotFoundError(err) {
			return types.NewErrorWithMsg(
				http.StatusBadRequest, types.BadRequest,
				"emergency unbonding balance too low",
			)
		}
		return types.NewInternalServiceError(err)
	}
	return nil
}

// GetPoolAtNonce returns the poolAtNonce audit record of an accepted vault
// nonce.
func (s *Services) GetPoolAtNonce(ctx context.Context, chainId, nonce uint64) (*model.VaultNonceDocument, *types.Error) {
	doc, err := s.DbClient.FindVaultNonce(ctx, chainId, nonce)
	if err != nil {
		if db.IsNotFoundError(err) {
			return nil, types.NewErrorWithMsg(http.StatusNotFound, types.NotFound, "vault nonce not found")
		}
		return nil, types.NewInternalServiceError(err)
	}
	return doc, nil
}

// stakedValueUsd values every staking position of the chain at the current
// external exchange rates.
func (s *Services) stakedValueUsd(ctx context.Context, chainId uint64) (uint64, *types.Error) {
	var total uint64
	for i := range s.cfg.Staking.Pools {
		poolCfg := &s.cfg.Staking.Pools[i]
		if poolCfg.ChainId != chainId {
			continue
		}
		poolUsd, err := s.poolStakedValueUsd(ctx, chainId, poolCfg.Asset)
		if err != nil {
			return 0, err
		}
		total += poolUsd
	}
	return total, nil
}

func (s *Services) poolStakedValueUsd(ctx context.Context, chainId uint64, asset string) (uint64, *types.Error) {
	pool, err := s.DbClient.FindStakingPool(ctx, chainId, asset)
	if err != nil {
		if db.IsNotFoundError(err) {
			return 0, nil
		}
		return 0, types.NewInternalServiceError(err)
	}
	if pool.StakedShares == 0 {
		return 0, nil
	}

	rate, rateErr := s.Clients.Staking.GetExchangeRate(ctx, chainId, asset)
	if rateErr != nil {
		return 0, rateErr
	}
	return types.MulDiv(pool.StakedShares, rate.UsdPerShare, types.OneUsd), nil
}

func buildComposition(tokens []string, percBps []uint64) ([]model.CompositionEntry, *types.Error) {
	if len(tokens) == 0 || len(tokens) != len(percBps) {
		return nil, types.NewErrorWithMsg(
			http.StatusBadRequest, types.ValidationError,
			"tokens and percentages must be non-empty and of equal length",
		)
	}
	var sum uint64
	entries := make([]model.CompositionEntry, 0, len(tokens))
	for i, token := range tokens {
		sum += percBps[i]
		entries = append(entries, model.CompositionEntry{Token: token, PercBp: percBps[i]})
	}
	if sum != types.PercDenominator {
		return nil, types.NewErrorWithMsg(
			http.StatusBadRequest, types.ValidationError,
			"percentages must sum to 10000 basis points",
		)
	}
	return entries, nil
}
