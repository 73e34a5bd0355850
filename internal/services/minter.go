package services

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/thirdfi/fund-orchestrator/internal/db"
	"github.com/thirdfi/fund-orchestrator/internal/db/model"
	"github.com/thirdfi/fund-orchestrator/internal/types"
)

// InitDepositByAdmin opens a new deposit cycle for the owner. The pool
// snapshot is captured before any cross-ledger fan-out so shares are priced
// against the pre-deposit pool value. Exactly one unfinished operation per
// owner may exist at any time.
func (s *Services) InitDepositByAdmin(
	ctx context.Context, owner string, poolSnapshot, usdAmount uint64,
) (*model.OperationDocument, *types.Error) {
	if usdAmount == 0 {
		return nil, types.NewErrorWithMsg(http.StatusBadRequest, types.ValidationError, "amount cannot be 0")
	}
	return s.openOperation(ctx, owner, types.OperationDeposit, poolSnapshot, usdAmount)
}

// MintByAdmin closes an open deposit operation by minting shares priced at
// the operation's pool snapshot. The first mint of an empty fund is 1:1.
func (s *Services) MintByAdmin(
	ctx context.Context, owner string, operationId uint64,
) (uint64, *types.Error) {
	op, opErr := s.findOwnedOperation(ctx, owner, operationId, types.OperationDeposit)
	if opErr != nil {
		return 0, opErr
	}

	totalShares, err := s.DbClient.GetTotalShareSupply(ctx)
	if err != nil {
		return 0, types.NewInternalServiceError(err)
	}

	shares := op.Amount
	if totalShares > 0 && op.PoolSnapshot > 0 {
		shares = types.MulDiv(op.Amount, totalShares, op.PoolSnapshot)
	}
	if shares == 0 {
		return 0, types.NewErrorWithMsg(http.StatusBadRequest, types.TooSmall, "deposit mints zero shares")
	}

	// Finishing the operation and minting its shares is one transaction; a
	// finished deposit can never be left without shares.
	if err := s.DbClient.FinishOperationMintingShares(ctx, operationId, owner, shares); err != nil {
		if db.IsNotFoundError(err) {
			return 0, types.NewErrorWithMsg(http.StatusForbidden, types.AlreadyFinished, "operation already finished")
		}
		log.Ctx(ctx).Error().Err(err).Str("owner", owner).Uint64("operationId", operationId).
			Msg("error while minting shares")
		return 0, types.NewInternalServiceError(err)
	}

	log.Ctx(ctx).Info().Str("owner", owner).Uint64("operationId", operationId).
		Uint64("shares", shares).Msg("deposit operation finished, shares minted")
	return shares, nil
}

// BurnByAdmin opens a withdraw cycle and burns the owner's shares up front.
// The value those shares represent is released by the vaults during the
// withdraw and gather phases; ExitWithdrawalByAdmin closes the cycle.
func (s *Services) BurnByAdmin(
	ctx context.Context, owner string, poolSnapshot, shareAmount uint64,
) (*model.OperationDocument, *types.Error) {
	if shareAmount == 0 {
		return nil, types.NewErrorWithMsg(http.StatusBadRequest, types.ValidationError, "share amount cannot be 0")
	}

	balance, err := s.DbClient.GetShareBalance(ctx, owner)
	if err != nil {
		return nil, types.NewInternalServiceError(err)
	}
	if shareAmount > balance {
		return nil, types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "share amount exceeds balance")
	}

	op, opErr := s.prepareOperation(ctx, owner, types.OperationWithdraw, poolSnapshot, shareAmount)
	if opErr != nil {
		return nil, opErr
	}

	// Opening the operation and burning the shares is one transaction; a
	// failed burn leaves no opened withdraw behind.
	if err := s.DbClient.InsertOperationBurningShares(ctx, op); err != nil {
		if db.IsDuplicateKeyError(err) {
			return nil, types.NewErrorWithMsg(
				http.StatusForbidden, types.PreviousOperationUnfinished,
				"previous operation not finished",
			)
		}
		if db.IsNotFoundError(err) {
			return nil, types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "share balance too low")
		}
		log.Ctx(ctx).Error().Err(err).Str("owner", owner).Msg("error while burning shares")
		return nil, types.NewInternalServiceError(err)
	}

	log.Ctx(ctx).Info().Str("owner", owner).Uint64("operationId", op.Id).
		Uint64("sharesBurned", shareAmount).Msg("withdraw operation opened, shares burned")
	return op, nil
}

// ExitWithdrawalByAdmin closes an open withdraw operation once the released
// value has been gathered on the owner's home ledger.
func (s *Services) ExitWithdrawalByAdmin(
	ctx context.Context, owner string, operationId uint64,
) *types.Error {
	if _, opErr := s.findOwnedOperation(ctx, owner, operationId, types.OperationWithdraw); opErr != nil {
		return opErr
	}

	if err := s.DbClient.MarkOperationFinished(ctx, operationId); err != nil {
		if db.IsNotFoundError(err) {
			return types.NewErrorWithMsg(http.StatusForbidden, types.AlreadyFinished, "operation already finished")
		}
		return types.NewInternalServiceError(err)
	}

	log.Ctx(ctx).Info().Str("owner", owner).Uint64("operationId", operationId).
		Msg("withdraw operation finished")
	return nil
}

// GetWithdrawPerc converts a share amount into the basis points of the
// current pool the vaults should release for it.
func (s *Services) GetWithdrawPerc(
	ctx context.Context, owner string, shareAmount uint64,
) (uint64, *types.Error) {
	if shareAmount == 0 {
		return 0, types.NewErrorWithMsg(http.StatusBadRequest, types.ValidationError, "share amount cannot be 0")
	}

	balance, err := s.DbClient.GetShareBalance(ctx, owner)
	if err != nil {
		return 0, types.NewInternalServiceError(err)
	}
	if shareAmount > balance {
		return 0, types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "share amount exceeds balance")
	}

	totalShares, err := s.DbClient.GetTotalShareSupply(ctx)
	if err != nil {
		return 0, types.NewInternalServiceError(err)
	}
	if totalShares == 0 {
		return 0, types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "no shares outstanding")
	}

	return types.MulDiv(shareAmount, types.PercDenominator, totalShares), nil
}

// GetOperationById returns one operation from the append-only log.
func (s *Services) GetOperationById(ctx context.Context, id uint64) (*model.OperationDocument, *types.Error) {
	op, err := s.DbClient.FindOperationById(ctx, id)
	if err != nil {
		if db.IsNotFoundError(err) {
			return nil, types.NewErrorWithMsg(http.StatusNotFound, types.NotFound, "operation not found")
		}
		return nil, types.NewInternalServiceError(err)
	}
	return op, nil
}

// GetLastOperationByOwner returns the owner's most recent operation.
func (s *Services) GetLastOperationByOwner(ctx context.Context, owner string) (*model.OperationDocument, *types.Error) {
	op, err := s.DbClient.FindLastOperationByOwner(ctx, owner)
	if err != nil {
		if db.IsNotFoundError(err) {
			return nil, types.NewErrorWithMsg(http.StatusNotFound, types.NotFound, "no operations found for owner")
		}
		return nil, types.NewInternalServiceError(err)
	}
	return op, nil
}

// AddToken appends a (chainId, token) entry to the target composition and
// installs the supplied percentages across the whole table.
func (s *Services) AddToken(
	ctx context.Context, chainId uint64, token string, targetPercBps []uint64,
) *types.Error {
	entries, compErr := s.compositionEntries(ctx)
	if compErr != nil {
		return compErr
	}

	for i := range entries {
		if entries[i].ChainId == chainId && entries[i].Token == token {
			return types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "token already in composition")
		}
	}
	entries = append(entries, model.TargetCompositionEntry{ChainId: chainId, Token: token})

	return s.saveCompositionWithPercs(ctx, entries, targetPercBps)
}

// RemoveToken drops a (chainId, token) entry and installs the supplied
// percentages across the remaining table.
func (s *Services) RemoveToken(
	ctx context.Context, chainId uint64, token string, targetPercBps []uint64,
) *types.Error {
	entries, compErr := s.compositionEntries(ctx)
	if compErr != nil {
		return compErr
	}

	kept := entries[:0]
	found := false
	for i := range entries {
		if entries[i].ChainId == chainId && entries[i].Token == token {
			found = true
			continue
		}
		kept = append(kept, entries[i])
	}
	if !found {
		return types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "token not in composition")
	}

	if len(kept) == 0 && len(targetPercBps) == 0 {
		if err := s.DbClient.SaveComposition(ctx, []model.TargetCompositionEntry{}); err != nil {
			return types.NewInternalServiceError(err)
		}
		return nil
	}
	return s.saveCompositionWithPercs(ctx, kept, targetPercBps)
}

// SetTokenCompositionTargetPerc replaces the percentages of the current
// composition table without changing its entries.
func (s *Services) SetTokenCompositionTargetPerc(ctx context.Context, targetPercBps []uint64) *types.Error {
	entries, compErr := s.compositionEntries(ctx)
	if compErr != nil {
		return compErr
	}
	if len(entries) == 0 {
		return types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "composition is empty")
	}
	return s.saveCompositionWithPercs(ctx, entries, targetPercBps)
}

// GetCompositionPerc returns the current target allocation table.
func (s *Services) GetCompositionPerc(ctx context.Context) ([]model.TargetCompositionEntry, *types.Error) {
	return s.compositionEntries(ctx)
}

// prepareOperation builds the next operation document for the owner: one
// unfinished operation at a time, user nonces strictly increasing, a fresh
// global id. The caller decides how the document is persisted.
func (s *Services) prepareOperation(
	ctx context.Context, owner string, opType types.OperationType, poolSnapshot, amount uint64,
) (*model.OperationDocument, *types.Error) {
	userNonce := uint64(1)
	last, err := s.DbClient.FindLastOperationByOwner(ctx, owner)
	if err != nil && !db.IsNotFoundError(err) {
		return nil, types.NewInternalServiceError(err)
	}
	if last != nil {
		if !last.Finished {
			return nil, types.NewErrorWithMsg(
				http.StatusForbidden, types.PreviousOperationUnfinished,
				"previous operation not finished",
			)
		}
		userNonce = last.UserNonce + 1
	}

	id, err := s.DbClient.NextOperationId(ctx)
	if err != nil {
		return nil, types.NewInternalServiceError(err)
	}

	return &model.OperationDocument{
		Id:           id,
		Owner:        owner,
		UserNonce:    userNonce,
		OpType:       opType,
		PoolSnapshot: poolSnapshot,
		Amount:       amount,
	}, nil
}

func (s *Services) openOperation(
	ctx context.Context, owner string, opType types.OperationType, poolSnapshot, amount uint64,
) (*model.OperationDocument, *types.Error) {
	op, prepErr := s.prepareOperation(ctx, owner, opType, poolSnapshot, amount)
	if prepErr != nil {
		return nil, prepErr
	}

	if err := s.DbClient.InsertOperation(ctx, op); err != nil {
		if db.IsDuplicateKeyError(err) {
			// Two inits raced for the same user nonce slot.
			return nil, types.NewErrorWithMsg(
				http.StatusForbidden, types.PreviousOperationUnfinished,
				"previous operation not finished",
			)
		}
		log.Ctx(ctx).Error().Err(err).Str("owner", owner).Msg("error while inserting operation")
		return nil, types.NewInternalServiceError(err)
	}

	log.Ctx(ctx).Info().Str("owner", owner).Uint64("operationId", op.Id).Uint64("userNonce", op.UserNonce).
		Str("opType", opType.ToString()).Msg("operation opened")
	return op, nil
}

func (s *Services) findOwnedOperation(
	ctx context.Context, owner string, operationId uint64, opType types.OperationType,
) (*model.OperationDocument, *types.Error) {
	op, err := s.DbClient.FindOperationById(ctx, operationId)
	if err != nil {
		if db.IsNotFoundError(err) {
			return nil, types.NewErrorWithMsg(http.StatusNotFound, types.NotFound, "operation not found")
		}
		return nil, types.NewInternalServiceError(err)
	}
	if op.Owner != owner {
		return nil, types.NewErrorWithMsg(http.StatusForbidden, types.NotOwnerOrAdmin, "operation belongs to another owner")
	}
	if op.OpType != opType {
		return nil, types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "operation type mismatch")
	}
	if op.Finished {
		return nil, types.NewErrorWithMsg(http.StatusForbidden, types.AlreadyFinished, "operation already finished")
	}
	return op, nil
}

func (s *Services) compositionEntries(ctx context.Context) ([]model.TargetCompositionEntry, *types.Error) {
	doc, err := s.DbClient.GetComposition(ctx)
	if err != nil {
		if db.IsNotFoundError(err) {
			return []model.TargetCompositionEntry{}, nil
		}
		return nil, types.NewInternalServiceError(err)
	}
	return doc.Entries, nil
}

func (s *Services) saveCompositionWithPercs(
	ctx context.Context, entries []model.TargetCompositionEntry, targetPercBps []uint64,
) *types.Error {
	if len(targetPercBps) != len(entries) {
		return types.NewErrorWithMsg(
			http.StatusBadRequest, types.ValidationError,
			"percentage count does not match composition entries",
		)
	}
	var sum uint64
	for i := range entries {
		entries[i].TargetPercBp = targetPercBps[i]
		sum += targetPercBps[i]
	}
	if sum != types.PercDenominator {
		return types.NewErrorWithMsg(
			http.StatusBadRequest, types.ValidationError,
			"percentages must sum to 10000 basis points",
		)
	}
	if err := s.DbClient.SaveComposition(ctx, entries); err != nil {
		return types.NewInternalServiceError(err)
	}
	return nil
}
