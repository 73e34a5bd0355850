package adapters

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/thirdfi/fund-orchestrator/internal/config"
	"github.com/thirdfi/fund-orchestrator/internal/db"
	"github.com/thirdfi/fund-orchestrator/internal/db/model"
	queueclient "github.com/thirdfi/fund-orchestrator/internal/queue/client"
	"github.com/thirdfi/fund-orchestrator/internal/types"
)

// MessageBusAdapter relays value by publishing an instruction for the
// relayer network onto the transfer queue. The fee is a flat per-transfer
// cost covering the relayer's re-emission on the destination ledger.
type MessageBusAdapter struct {
	cfg         *config.MessageBusAdapterConfig
	dbClient    db.DBClient
	queueClient queueclient.QueueClient
}

func NewMessageBusAdapter(
	cfg *config.MessageBusAdapterConfig, dbClient db.DBClient, queueClient queueclient.QueueClient,
) *MessageBusAdapter {
	return &MessageBusAdapter{
		cfg:         cfg,
		dbClient:    dbClient,
		queueClient: queueClient,
	}
}

func (a *MessageBusAdapter) Type() types.AdapterType {
	return types.MessageBusAdapter
}

func (a *MessageBusAdapter) QuoteFee(
	ctx context.Context, token string, amountUsd, toChainId uint64,
) (uint64, *types.Error) {
	return a.cfg.FlatFee, nil
}

func (a *MessageBusAdapter) Transfer(
	ctx context.Context, req *TransferRequest,
) (*TransferResult, *types.Error) {
	peer, err := a.dbClient.FindAdapterPeer(ctx, a.Type().ToString(), req.ToChainId)
	if err != nil {
		if db.IsNotFoundError(err) {
			return nil, types.NewErrorWithMsg(
				http.StatusBadRequest, types.InvalidPeer,
				"no peer registered for destination chain",
			)
		}
		return nil, types.NewInternalServiceError(err)
	}

	transferId := uuid.NewString()
	doc := &model.RelayTransferDocument{
		TransferId:  transferId,
		Owner:       req.Owner,
		FromChainId: req.FromChainId,
		ToChainId:   req.ToChainId,
		Token:       req.Token,
		AmountUsd:   req.AmountUsd,
		AdapterType: a.Type().ToString(),
		FeeUsd:      a.cfg.FlatFee,
		State:       model.RelayTransferSent,
	}
	if err := a.dbClient.SaveRelayTransfer(ctx, doc); err != nil {
		return nil, types.NewInternalServiceError(err)
	}

	event := queueclient.RelayTransferEvent{
		EventType:   queueclient.RelayTransferEventType,
		TransferId:  transferId,
		Owner:       req.Owner,
		FromChainId: req.FromChainId,
		ToChainId:   req.ToChainId,
		Peer:        peer.Peer,
		Token:       req.Token,
		AmountUsd:   req.AmountUsd,
		FeeUsd:      a.cfg.FlatFee,
	}
	body, jsonErr := json.Marshal(event)
	if jsonErr != nil {
		return nil, types.NewInternalServiceError(jsonErr)
	}
	if err := a.queueClient.SendMessage(ctx, string(body)); err != nil {
		// The audit record stays in SENT; the relayer never sees the
		// instruction, so the caller retries with a fresh transfer.
		log.Ctx(ctx).Error().Err(err).Str("transferId", transferId).
			Msg("failed to publish relay instruction")
		return nil, types.NewErrorWithMsg(
			http.StatusServiceUnavailable, types.Bridgetransient,
			"failed to publish relay instruction",
		)
	}

	return &TransferResult{TransferId: transferId, FeeUsd: a.cfg.FlatFee}, nil
}

func (a *MessageBusAdapter) SetPeers(ctx context.Context, chainIds []uint64, peers []string) *types.Error {
	if len(chainIds) != len(peers) {
		return types.NewErrorWithMsg(
			http.StatusBadRequest, types.ValidationError,
			"chainIds and peers must have the same length",
		)
	}
	if err := a.dbClient.SaveAdapterPeers(ctx, a.Type().ToString(), chainIds, peers); err != nil {
		return types.NewInternalServiceError(err)
	}
	return nil
}
