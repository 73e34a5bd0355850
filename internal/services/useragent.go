package services

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/thirdfi/fund-orchestrator/internal/adapters"
	"github.com/thirdfi/fund-orchestrator/internal/auth"
	"github.com/thirdfi/fund-orchestrator/internal/db"
	"github.com/thirdfi/fund-orchestrator/internal/db/model"
	"github.com/thirdfi/fund-orchestrator/internal/observability/metrics"
	"github.com/thirdfi/fund-orchestrator/internal/types"
	"github.com/thirdfi/fund-orchestrator/internal/utils"
)

// AgentRequest is the authorization envelope every user agent phase call
// carries. The signatures are made over the digest of the method name, the
// caller, the nonce and the operation's arguments, in that order.
type AgentRequest struct {
	Caller     string   `json:"caller"`
	Nonce      uint64   `json:"nonce"`
	Signatures []string `json:"signatures"`
}

// TransferOutcome reports one relayed leg of a transfer or gather phase.
type TransferOutcome struct {
	ToChainId  uint64 `json:"to_chain_id"`
	TransferId string `json:"transfer_id"`
	FeeUsd     uint64 `json:"fee_usd"`
}

// authorize verifies the request's signatures over the digest and then
// advances the caller's agent nonce. An invalid signature never advances the
// nonce; a business failure after this point does, which keeps the external
// call order strict under relayer retries.
func (s *Services) authorize(ctx context.Context, req *AgentRequest, digest *auth.Digest) *types.Error {
	authenticator, authErr := s.authenticatorFor(ctx, req.Caller)
	if authErr != nil {
		return authErr
	}

	if err := authenticator.Verify(digest.Sum(), req.Signatures); err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("caller", req.Caller).Msg("agent request signature rejected")
		return types.NewErrorWithMsg(http.StatusForbidden, types.InvalidSignature, "invalid signature")
	}

	if err := s.DbClient.AdvanceAgentNonce(ctx, req.Caller, req.Nonce); err != nil {
		if db.IsStaleNonceError(err) {
			return types.NewErrorWithMsg(http.StatusForbidden, types.StaleNonce, "Nonce is behind")
		}
		return types.NewInternalServiceError(err)
	}
	return nil
}

// authenticatorFor loads the caller's authenticator. Registered accounts are
// k-of-n threshold wallets; everyone else is a plain account whose id is its
// own hex encoded compressed public key.
func (s *Services) authenticatorFor(ctx context.Context, caller string) (auth.Authenticator, *types.Error) {
	account, err := s.DbClient.FindAccountByOwner(ctx, caller)
	if err != nil {
		if !db.IsNotFoundError(err) {
			return nil, types.NewInternalServiceError(err)
		}
		signer, signerErr := auth.NewSingleSigner(caller)
		if signerErr != nil {
			return nil, types.NewErrorWithMsg(
				http.StatusForbidden, types.InvalidSignature,
				"caller is not a valid public key and has no registered account",
			)
		}
		return signer, nil
	}

	wallet, walletErr := auth.NewThresholdWallet(uint32(account.Threshold), account.PubKeysHex)
	if walletErr != nil {
		log.Ctx(ctx).Error().Err(walletErr).Str("caller", caller).Msg("registered account is not constructible")
		return nil, types.NewInternalServiceError(walletErr)
	}
	return wallet, nil
}

// InitDeposit opens the caller's deposit cycle.
func (s *Services) InitDeposit(
	ctx context.Context, req *AgentRequest, poolSnapshot, amountUsd uint64,
) (*model.OperationDocument, *types.Error) {
	digest := auth.NewDigest("init_deposit", req.Caller, req.Nonce).
		AddUint64(poolSnapshot).
		AddUint64(amountUsd)
	if err := s.authorize(ctx, req, digest); err != nil {
		return nil, err
	}
	return s.InitDepositByAdmin(ctx, req.Caller, poolSnapshot, amountUsd)
}

// Transfer fans the caller's value out to the destination ledgers, one relay
// per entry. The caller must supply at least the aggregate of every
// adapter's fee quote; the quotes are re-taken here so a stale simulation
// cannot underpay.
func (s *Services) Transfer(
	ctx context.Context, req *AgentRequest, fromChainId uint64, token string,
	amounts, toChainIds []uint64, adapterTypes []string, suppliedFeeUsd uint64,
) ([]TransferOutcome, *types.Error) {
	digest := auth.NewDigest("transfer", req.Caller, req.Nonce).
		AddUint64(fromChainId).
		AddString(token).
		AddUint64Slice(amounts).
		AddUint64Slice(toChainIds).
		AddStringSlice(adapterTypes).
		AddUint64(suppliedFeeUsd)
	if err := s.authorize(ctx, req, digest); err != nil {
		return nil, err
	}

	parsedTypes, valErr := parseRelayLegs(amounts, toChainIds, adapterTypes)
	if valErr != nil {
		return nil, valErr
	}

	totalFee, feeErr := s.aggregateFees(ctx, token, amounts, toChainIds, parsedTypes)
	if feeErr != nil {
		return nil, feeErr
	}
	if suppliedFeeUsd < totalFee {
		return nil, types.NewErrorWithMsg(
			http.StatusBadRequest, types.InsufficientFee,
			"supplied fee does not cover the aggregate relay fee",
		)
	}

	outcomes := make([]TransferOutcome, 0, len(amounts))
	for i := range amounts {
		result, err := s.Adapters.Transfer(ctx, AgentCallerName, parsedTypes[i], &adapters.TransferRequest{
			Owner:       req.Caller,
			Token:       token,
			AmountUsd:   amounts[i],
			FromChainId: fromChainId,
			ToChainId:   toChainIds[i],
		})
		if err != nil {
			return nil, err
		}
		metrics.RecordRelayFee(parsedTypes[i].ToString(), result.FeeUsd)
		outcomes = append(outcomes, TransferOutcome{
			ToChainId:  toChainIds[i],
			TransferId: result.TransferId,
			FeeUsd:     result.FeeUsd,
		})
	}
	return outcomes, nil
}

// Deposit credits the destination vaults once the transferred funds have
// arrived. The vault nonce is the open operation's global id, so a replay of
// this phase is rejected by the vault's nonce discipline, not re-executed.
func (s *Services) Deposit(
	ctx context.Context, req *AgentRequest, operationId uint64,
	toChainIds []uint64, tokens []string, amounts []uint64,
) *types.Error {
	digest := auth.NewDigest("deposit", req.Caller, req.Nonce).
		AddUint64(operationId).
		AddUint64Slice(toChainIds).
		AddStringSlice(tokens).
		AddUint64Slice(amounts)
	if err := s.authorize(ctx, req, digest); err != nil {
		return err
	}

	if len(toChainIds) == 0 || len(toChainIds) != len(tokens) || len(toChainIds) != len(amounts) {
		return types.NewErrorWithMsg(
			http.StatusBadRequest, types.ValidationError,
			"chain ids, tokens and amounts must be non-empty and of equal length",
		)
	}

	if _, opErr := s.findOwnedOperation(ctx, req.Caller, operationId, types.OperationDeposit); opErr != nil {
		return opErr
	}

	for _, chainId := range dedupeChainIds(toChainIds) {
		var chainTokens []string
		var chainAmounts []uint64
		for i := range toChainIds {
			if toChainIds[i] != chainId {
				continue
			}
			chainTokens = append(chainTokens, tokens[i])
			chainAmounts = append(chainAmounts, amounts[i])
		}
		if err := s.DepositByAdmin(ctx, chainId, req.Caller, chainTokens, chainAmounts, operationId); err != nil {
			return err
		}
	}
	return nil
}

// Mint closes the caller's deposit cycle.
func (s *Services) Mint(ctx context.Context, req *AgentRequest, operationId uint64) (uint64, *types.Error) {
	digest := auth.NewDigest("mint", req.Caller, req.Nonce).AddUint64(operationId)
	if err := s.authorize(ctx, req, digest); err != nil {
		return 0, err
	}
	return s.MintByAdmin(ctx, req.Caller, operationId)
}

// Burn opens the caller's withdraw cycle and burns the shares up front.
func (s *Services) Burn(
	ctx context.Context, req *AgentRequest, poolSnapshot, shareAmount uint64,
) (*model.OperationDocument, *types.Error) {
	digest := auth.NewDigest("burn", req.Caller, req.Nonce).
		AddUint64(poolSnapshot).
		AddUint64(shareAmount)
	if err := s.authorize(ctx, req, digest); err != nil {
		return nil, err
	}
	return s.BurnByAdmin(ctx, req.Caller, poolSnapshot, shareAmount)
}

// Withdraw releases percBp of each named vault's pool against the open
// withdraw operation. Partial settlement per vault is reported, not failed.
func (s *Services) Withdraw(
	ctx context.Context, req *AgentRequest, operationId, percBp uint64, chainIds []uint64,
) (map[uint64]*WithdrawOutcome, *types.Error) {
	digest := auth.NewDigest("withdraw", req.Caller, req.Nonce).
		AddUint64(operationId).
		AddUint64(percBp).
		AddUint64Slice(chainIds)
	if err := s.authorize(ctx, req, digest); err != nil {
		return nil, err
	}

	if len(chainIds) == 0 {
		return nil, types.NewErrorWithMsg(http.StatusBadRequest, types.ValidationError, "chain ids cannot be empty")
	}

	if _, opErr := s.findOwnedOperation(ctx, req.Caller, operationId, types.OperationWithdraw); opErr != nil {
		return nil, opErr
	}

	outcomes := make(map[uint64]*WithdrawOutcome, len(chainIds))
	for _, chainId := range chainIds {
		outcome, err := s.WithdrawPercByAdmin(ctx, chainId, req.Caller, percBp, operationId)
		if err != nil {
			return nil, err
		}
		outcomes[chainId] = outcome
	}
	return outcomes, nil
}

// Gather relays released value from the source ledgers back to the caller's
// home ledger, with the same fee discipline as Transfer.
func (s *Services) Gather(
	ctx context.Context, req *AgentRequest, toChainId uint64, token string,
	amounts, fromChainIds []uint64, adapterTypes []string, suppliedFeeUsd uint64,
) ([]TransferOutcome, *types.Error) {
	digest := auth.NewDigest("gather", req.Caller, req.Nonce).
		AddUint64(toChainId).
		AddString(token).
		AddUint64Slice(amounts).
		AddUint64Slice(fromChainIds).
		AddStringSlice(adapterTypes).
		AddUint64(suppliedFeeUsd)
	if err := s.authorize(ctx, req, digest); err != nil {
		return nil, err
	}

	parsedTypes, valErr := parseRelayLegs(amounts, fromChainIds, adapterTypes)
	if valErr != nil {
		return nil, valErr
	}

	var totalFee uint64
	for i := range amounts {
		fee, err := s.Adapters.QuoteFee(ctx, parsedTypes[i], token, amounts[i], toChainId)
		if err != nil {
			return nil, err
		}
		sum, ok := types.SafeAdd(totalFee, fee)
		if !ok {
			return nil, types.NewErrorWithMsg(http.StatusBadRequest, types.ValidationError, "fees overflow")
		}
		totalFee = sum
	}
	if suppliedFeeUsd < totalFee {
		return nil, types.NewErrorWithMsg(
			http.StatusBadRequest, types.InsufficientFee,
			"supplied fee does not cover the aggregate relay fee",
		)
	}

	outcomes := make([]TransferOutcome, 0, len(amounts))
	for i := range amounts {
		result, err := s.Adapters.Transfer(ctx, AgentCallerName, parsedTypes[i], &adapters.TransferRequest{
			Owner:       req.Caller,
			Token:       token,
			AmountUsd:   amounts[i],
			FromChainId: fromChainIds[i],
			ToChainId:   toChainId,
		})
		if err != nil {
			return nil, err
		}
		metrics.RecordRelayFee(parsedTypes[i].ToString(), result.FeeUsd)
		outcomes = append(outcomes, TransferOutcome{
			ToChainId:  toChainId,
			TransferId: result.TransferId,
			FeeUsd:     result.FeeUsd,
		})
	}
	return outcomes, nil
}

// ExitWithdrawal closes the caller's withdraw cycle.
func (s *Services) ExitWithdrawal(ctx context.Context, req *AgentRequest, operationId uint64) *types.Error {
	digest := auth.NewDigest("exit_withdrawal", req.Caller, req.Nonce).AddUint64(operationId)
	if err := s.authorize(ctx, req, digest); err != nil {
		return err
	}
	return s.ExitWithdrawalByAdmin(ctx, req.Caller, operationId)
}

// Claim consumes a matured unbonding ticket and pays it out of the vault's
// pending claim balance.
func (s *Services) Claim(
	ctx context.Context, req *AgentRequest, claimId string,
) (*model.UnbondingTicketDocument, *types.Error) {
	digest := auth.NewDigest("claim", req.Caller, req.Nonce).AddString(claimId)
	if err := s.authorize(ctx, req, digest); err != nil {
		return nil, err
	}

	// Only tickets that matured from the pending path are claimable here;
	// emergency tickets go through TakeOut and its balance.
	ticket, claimErr := s.claimTicket(ctx, req.Caller, claimId, utils.QualifiedStatesToClaimed())
	if claimErr != nil {
		return nil, claimErr
	}

	if err := s.DbClient.PayPendingClaim(ctx, ticket.ChainId, ticket.ExpectedUnderlying); err != nil {
		if db.IsNotFoundError(err) {
			return nil, types.NewErrorWithMsg(
				http.StatusBadRequest, types.BadRequest,
				"pending claim exceeds tracked balance",
			)
		}
		return nil, types.NewInternalServiceError(err)
	}

	log.Ctx(ctx).Info().Str("owner", req.Caller).Str("claimId", claimId).
		Uint64("amountUsd", ticket.ExpectedUnderlying).Msg("unbonding ticket claimed")
	return ticket, nil
}

// TakeOut consumes a matured emergency ticket and pays it out of the vault's
// emergency unbonding balance. The value leaves the fund.
func (s *Services) TakeOut(
	ctx context.Context, req *AgentRequest, claimId string,
) (*model.UnbondingTicketDocument, *types.Error) {
	digest := auth.NewDigest("take_out", req.Caller, req.Nonce).AddString(claimId)
	if err := s.authorize(ctx, req, digest); err != nil {
		return nil, err
	}

	ticket, claimErr := s.claimTicket(ctx, req.Caller, claimId, utils.QualifiedStatesToTakenOut())
	if claimErr != nil {
		return nil, claimErr
	}

	if err := s.DbClient.PayEmergencyClaim(ctx, ticket.ChainId, ticket.ExpectedUnderlying); err != nil {
		if db.IsNotFoundError(err) {
			return nil, types.NewErrorWithMsg(
				http.StatusBadRequest, types.BadRequest,
				"emergency unbonding balance too low",
			)
		}
		return nil, types.NewInternalServiceError(err)
	}

	log.Ctx(ctx).Info().Str("owner", req.Caller).Str("claimId", claimId).
		Uint64("amountUsd", ticket.ExpectedUnderlying).Msg("emergency ticket taken out")
	return ticket, nil
}

// SimulateTransfer is the read-only fee quote for a prospective transfer. No
// nonce, no signature, no writes.
func (s *Services) SimulateTransfer(
	ctx context.Context, token string, amounts, toChainIds []uint64, adapterTypes []string,
) (uint64, *types.Error) {
	parsedTypes, valErr := parseRelayLegs(amounts, toChainIds, adapterTypes)
	if valErr != nil {
		return 0, valErr
	}
	return s.aggregateFees(ctx, token, amounts, toChainIds, parsedTypes)
}

// RegisterAccount installs a k-of-n threshold wallet for an owner. The
// parameters are validated by constructing the wallet before anything is
// stored.
func (s *Services) RegisterAccount(
	ctx context.Context, owner string, threshold int, pubKeysHex []string,
) *types.Error {
	if owner == "" {
		return types.NewErrorWithMsg(http.StatusBadRequest, types.ValidationError, "owner cannot be empty")
	}
	if threshold <= 0 {
		return types.NewErrorWithMsg(http.StatusBadRequest, types.ValidationError, "threshold must be at least 1")
	}
	if _, err := auth.NewThresholdWallet(uint32(threshold), pubKeysHex); err != nil {
		return types.NewError(http.StatusBadRequest, types.ValidationError, err)
	}

	doc := &model.AccountDocument{Owner: owner, Threshold: threshold, PubKeysHex: pubKeysHex}
	if err := s.DbClient.SaveAccount(ctx, doc); err != nil {
		return types.NewInternalServiceError(err)
	}
	return nil
}

// GetAgentNonce returns the caller's last accepted nonce; the next valid
// request carries this value plus one.
func (s *Services) GetAgentNonce(ctx context.Context, owner string) (uint64, *types.Error) {
	nonce, err := s.DbClient.GetAgentNonce(ctx, owner)
	if err != nil {
		return 0, types.NewInternalServiceError(err)
	}
	return nonce, nil
}

func (s *Services) claimTicket(
	ctx context.Context, owner, claimId string, eligibleStates []types.TicketState,
) (*model.UnbondingTicketDocument, *types.Error) {
	ticket, err := s.DbClient.ClaimTicket(ctx, claimId, owner, eligibleStates)
	if err != nil {
		if db.IsNotFoundError(err) {
			return nil, types.NewErrorWithMsg(
				http.StatusBadRequest, types.BadRequest,
				"no claimable ticket for this claim id and owner",
			)
		}
		return nil, types.NewInternalServiceError(err)
	}
	return ticket, nil
}

func (s *Services) aggregateFees(
	ctx context.Context, token string, amounts, toChainIds []uint64, adapterTypes []types.AdapterType,
) (uint64, *types.Error) {
	var total uint64
	for i := range amounts {
		fee, err := s.Adapters.QuoteFee(ctx, adapterTypes[i], token, amounts[i], toChainIds[i])
		if err != nil {
			return 0, err
		}
		sum, ok := types.SafeAdd(total, fee)
		if !ok {
			return 0, types.NewErrorWithMsg(http.StatusBadRequest, types.ValidationError, "fees overflow")
		}
		total = sum
	}
	return total, nil
}

func parseRelayLegs(amounts, chainIds []uint64, adapterTypes []string) ([]types.AdapterType, *types.Error) {
	if len(amounts) == 0 || len(amounts) != len(chainIds) || len(amounts) != len(adapterTypes) {
		return nil, types.NewErrorWithMsg(
			http.StatusBadRequest, types.ValidationError,
			"amounts, chain ids and adapter types must be non-empty and of equal length",
		)
	}
	parsed := make([]types.AdapterType, 0, len(adapterTypes))
	for i, raw := range adapterTypes {
		adapterType, err := types.AdapterTypeFromString(raw)
		if err != nil {
			return nil, types.NewError(http.StatusBadRequest, types.ValidationError, err)
		}
		if amounts[i] == 0 {
			return nil, types.NewErrorWithMsg(http.StatusBadRequest, types.ValidationError, "amount cannot be 0")
		}
		parsed = append(parsed, adapterType)
	}
	return parsed, nil
}

func dedupeChainIds(chainIds []uint64) []uint64 {
	seen := make(map[uint64]bool, len(chainIds))
	deduped := make([]uint64, 0, len(chainIds))
	for _, id := range chainIds {
		if seen[id] {
			continue
		}
		seen[id] = true
		deduped = append(deduped, id)
	}
	return deduped
}
