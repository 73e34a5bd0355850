package services

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/thirdfi/fund-orchestrator/internal/db"
	"github.com/thirdfi/fund-orchestrator/internal/db/model"
	queueclient "github.com/thirdfi/fund-orchestrator/internal/queue/client"
	"github.com/thirdfi/fund-orchestrator/internal/types"
)

// ProcessRelayDelivery credits the destination vault once a bridge reports a
// transfer delivered. Deliveries are at-least-once: a transfer already
// marked delivered, or a vault nonce already consumed, means this event was
// processed before and the message can be acked.
func (s *Services) ProcessRelayDelivery(ctx context.Context, event *queueclient.RelayDeliveryEvent) *types.Error {
	if err := s.DbClient.MarkRelayTransferDelivered(ctx, event.TransferId); err != nil {
		if db.IsNotFoundError(err) {
			log.Ctx(ctx).Debug().Str("transferId", event.TransferId).
				Msg("relay delivery already processed, skipping")
			return nil
		}
		return types.NewInternalServiceError(err)
	}

	var buffered []model.BufferedDeposit
	if poolCfg := s.cfg.Staking.PoolConfig(event.ToChainId, event.Token); poolCfg != nil {
		buffered = append(buffered, model.BufferedDeposit{Asset: event.Token, AmountUsd: event.AmountUsd})
	}

	// The vault credit and the staking pool buffer land in one transaction.
	if err := s.DbClient.DepositToVault(ctx, event.ToChainId, event.MinterNonce, event.AmountUsd, buffered); err != nil {
		if db.IsStaleNonceError(err) {
			log.Ctx(ctx).Debug().Str("transferId", event.TransferId).Uint64("nonce", event.MinterNonce).
				Msg("vault nonce already consumed, delivery treated as duplicate")
			return nil
		}
		if db.IsPausedError(err) {
			// The vault paused between send and delivery. The credit cannot
			// land until reinvest, so the message stays queued.
			return types.NewErrorWithMsg(http.StatusServiceUnavailable, types.Paused, "destination vault is paused")
		}
		log.Ctx(ctx).Error().Err(err).Str("transferId", event.TransferId).
			Msg("error while crediting delivered transfer")
		return types.NewInternalServiceError(err)
	}

	log.Ctx(ctx).Info().Str("transferId", event.TransferId).Uint64("toChainId", event.ToChainId).
		Uint64("amountUsd", event.AmountUsd).Msg("relay delivery credited")
	return nil
}
