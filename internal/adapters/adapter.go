package adapters

import (
	"context"
	"fmt"
	"net/http"

	"github.com/thirdfi/fund-orchestrator/internal/config"
	"github.com/thirdfi/fund-orchestrator/internal/types"
)

// TransferRequest is one cross-ledger value move requested by an internal
// component on behalf of an owner.
type TransferRequest struct {
	Owner       string
	Token       string
	AmountUsd   uint64
	FromChainId uint64
	ToChainId   uint64
}

type TransferResult struct {
	TransferId string
	FeeUsd     uint64
}

// Adapter is the common contract of one bridge technology. Implementations
// are interchangeable; callers select one per transfer by its type.
type Adapter interface {
	Type() types.AdapterType
	QuoteFee(ctx context.Context, token string, amountUsd, toChainId uint64) (uint64, *types.Error)
	Transfer(ctx context.Context, req *TransferRequest) (*TransferResult, *types.Error)
	SetPeers(ctx context.Context, chainIds []uint64, peers []string) *types.Error
}

// Registry dispatches on adapter type and enforces the caller allow-list.
// Only named internal components may move value through an adapter.
type Registry struct {
	adapters map[types.AdapterType]Adapter
	allowed  map[string]bool
}

func NewRegistry(cfg *config.AdaptersConfig, adapters ...Adapter) *Registry {
	allowed := make(map[string]bool)
	for _, client := range cfg.AllowedClients {
		allowed[client] = true
	}
	registered := make(map[types.AdapterType]Adapter)
	for _, a := range adapters {
		registered[a.Type()] = a
	}
	return &Registry{adapters: registered, allowed: allowed}
}

func (r *Registry) Get(adapterType types.AdapterType) (Adapter, *types.Error) {
	adapter, ok := r.adapters[adapterType]
	if !ok {
		return nil, types.NewErrorWithMsg(
			http.StatusBadRequest, types.BadRequest,
			fmt.Sprintf("no adapter registered for type %s", adapterType),
		)
	}
	return adapter, nil
}

// Transfer relays through the adapter of the given type, refusing callers
// outside the allow-list.
func (r *Registry) Transfer(
	ctx context.Context, caller string, adapterType types.AdapterType, req *TransferRequest,
) (*TransferResult, *types.Error) {
	if !r.allowed[caller] {
		return nil, types.NewErrorWithMsg(
			http.StatusForbidden, types.Forbidden,
			fmt.Sprintf("caller %s may not use adapters", caller),
		)
	}
	adapter, err := r.Get(adapterType)
	if err != nil {
		return nil, err
	}
	return adapter.Transfer(ctx, req)
}

// QuoteFee is unrestricted; fee simulation has no side effects.
func (r *Registry) QuoteFee(
	ctx context.Context, adapterType types.AdapterType, token string, amountUsd, toChainId uint64,
) (uint64, *types.Error) {
	adapter, err := r.Get(adapterType)
	if err != nil {
		return 0, err
	}
	return adapter.QuoteFee(ctx, token, amountUsd, toChainId)
}
