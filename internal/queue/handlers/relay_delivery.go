package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	queueClient "github.com/thirdfi/fund-orchestrator/internal/queue/client"
	"github.com/thirdfi/fund-orchestrator/internal/types"
)

// RelayDeliveryHandler processes a bridge's delivery confirmation. Designed
// to be idempotent: duplicated deliveries are detected by the transfer state
// and the vault nonce, and acked without re-crediting.
func (h *QueueHandler) RelayDeliveryHandler(ctx context.Context, messageBody string) *types.Error {
	var deliveryEvent queueClient.RelayDeliveryEvent
	err := json.Unmarshal([]byte(messageBody), &deliveryEvent)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("Failed to unmarshal the message body into RelayDeliveryEvent")
		return types.NewError(http.StatusBadRequest, types.BadRequest, err)
	}

	if deliveryEvent.TransferId == "" || deliveryEvent.AmountUsd == 0 {
		log.Ctx(ctx).Error().Str("transferId", deliveryEvent.TransferId).
			Msg("relay delivery event is missing required fields")
		return types.NewErrorWithMsg(http.StatusBadRequest, types.ValidationError, "invalid relay delivery event")
	}

	return h.Services.ProcessRelayDelivery(ctx, &deliveryEvent)
}
