package adapters

import (
	"context"
	"fmt"
	"net/http"

	baseclient "github.com/thirdfi/fund-orchestrator/internal/clients/base"
	"github.com/thirdfi/fund-orchestrator/internal/config"
	"github.com/thirdfi/fund-orchestrator/internal/db"
	"github.com/thirdfi/fund-orchestrator/internal/db/model"
	"github.com/thirdfi/fund-orchestrator/internal/types"
)

// LockMintAdapter relays value through an external lock/mint bridge API.
// The bridge locks the asset on the source ledger and mints a wrapped
// representation on the destination; fee quoting is the bridge's.
type LockMintAdapter struct {
	cfg        *config.LockMintAdapterConfig
	dbClient   db.DBClient
	httpClient *http.Client
}

func NewLockMintAdapter(cfg *config.LockMintAdapterConfig, dbClient db.DBClient) *LockMintAdapter {
	return &LockMintAdapter{
		cfg:        cfg,
		dbClient:   dbClient,
		httpClient: &http.Client{},
	}
}

func (a *LockMintAdapter) Type() types.AdapterType {
	return types.LockMintAdapter
}

// Necessary for the BaseClient interface
func (a *LockMintAdapter) GetBaseURL() string {
	return fmt.Sprintf("%s:%s", a.cfg.Host, a.cfg.Port)
}

func (a *LockMintAdapter) GetDefaultRequestTimeout() int {
	return a.cfg.Timeout
}

func (a *LockMintAdapter) GetHttpClient() *http.Client {
	return a.httpClient
}

type bridgeQuoteResponse struct {
	FeeUsd uint64 `json:"fee_usd"`
}

type bridgeRelayRequest struct {
	Peer        string `json:"peer"`
	Owner       string `json:"owner"`
	Token       string `json:"token"`
	AmountUsd   uint64 `json:"amount_usd"`
	FromChainId uint64 `json:"from_chain_id"`
	ToChainId   uint64 `json:"to_chain_id"`
}

type bridgeRelayResponse struct {
	TransferId string `json:"transfer_id"`
	FeeUsd     uint64 `json:"fee_usd"`
}

func (a *LockMintAdapter) QuoteFee(
	ctx context.Context, token string, amountUsd, toChainId uint64,
) (uint64, *types.Error) {
	opts := &baseclient.BaseClientOptions{
		Path:    fmt.Sprintf("/v1/quote?token=%s&amount=%d&to_chain=%d", token, amountUsd, toChainId),
		Headers: map[string]string{"Accept": "application/json"},
	}
	type emptyBody struct{}
	quote, err := baseclient.SendRequest[emptyBody, bridgeQuoteResponse](ctx, a, http.MethodGet, opts, nil)
	if err != nil {
		return 0, asBridgeError(err)
	}
	return quote.FeeUsd, nil
}

func (a *LockMintAdapter) Transfer(
	ctx context.Context, req *TransferRequest,
) (*TransferResult, *types.Error) {
	peer, dbErr := a.dbClient.FindAdapterPeer(ctx, a.Type().ToString(), req.ToChainId)
	if dbErr != nil {
		if db.IsNotFoundError(dbErr) {
			return nil, types.NewErrorWithMsg(
				http.StatusBadRequest, types.InvalidPeer,
				"no peer registered for destination chain",
			)
		}
		return nil, types.NewInternalServiceError(dbErr)
	}

	opts := &baseclient.BaseClientOptions{
		Path:    "/v1/relay",
		Headers: map[string]string{"Content-Type": "application/json"},
	}
	input := &bridgeRelayRequest{
		Peer:        peer.Peer,
		Owner:       req.Owner,
		Token:       req.Token,
		AmountUsd:   req.AmountUsd,
		FromChainId: req.FromChainId,
		ToChainId:   req.ToChainId,
	}
	relay, err := baseclient.SendRequest[bridgeRelayRequest, bridgeRelayResponse](ctx, a, http.MethodPost, opts, input)
	if err != nil {
		return nil, asBridgeError(err)
	}

	doc := &model.RelayTransferDocument{
		TransferId:  relay.TransferId,
		Owner:       req.Owner,
		FromChainId: req.FromChainId,
		ToChainId:   req.ToChainId,
		Token:       req.Token,
		AmountUsd:   req.AmountUsd,
		AdapterType: a.Type().ToString(),
		FeeUsd:      relay.FeeUsd,
		State:       model.RelayTransferSent,
	}
	if err := a.dbClient.SaveRelayTransfer(ctx, doc); err != nil {
		// A duplicated key means the bridge already accepted this transfer
		// on an earlier retry; the audit record exists and the relay is in
		// flight.
		if !db.IsDuplicateKeyError(err) {
			return nil, types.NewInternalServiceError(err)
		}
	}

	return &TransferResult{TransferId: relay.TransferId, FeeUsd: relay.FeeUsd}, nil
}

func (a *LockMintAdapter) SetPeers(ctx context.Context, chainIds []uint64, peers []string) *types.Error {
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

// asBridgeError rewrites 5xx and timeout failures from the bridge API into
// retryable bridge-transient errors. 4xx responses pass through unchanged.
func asBridgeError(err *types.Error) *types.Error {
	if err.StatusCode >= http.StatusInternalServerError || err.StatusCode == http.StatusRequestTimeout {
		return types.NewError(http.StatusServiceUnavailable, types.Bridgetransient, err.Err)
	}
	return err
}
