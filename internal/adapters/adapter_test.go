package adapters_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/thirdfi/fund-orchestrator/internal/adapters"
	"github.com/thirdfi/fund-orchestrator/internal/config"
	"github.com/thirdfi/fund-orchestrator/internal/db"
	dbmocks "github.com/thirdfi/fund-orchestrator/internal/db/mocks"
	"github.com/thirdfi/fund-orchestrator/internal/db/model"
	queuemocks "github.com/thirdfi/fund-orchestrator/internal/queue/client/mocks"
	"github.com/thirdfi/fund-orchestrator/internal/types"
)

func newTestRegistry(t *testing.T, dbClient *dbmocks.DBClient, queueClient *queuemocks.QueueClient) *adapters.Registry {
	t.Helper()
	cfg := &config.AdaptersConfig{
		AllowedClients: []string{"user_agent"},
		MessageBus: config.MessageBusAdapterConfig{
			TransferQueueName: "relay_transfer_queue",
			FlatFee:           10,
		},
	}
	return adapters.NewRegistry(cfg, adapters.NewMessageBusAdapter(&cfg.MessageBus, dbClient, queueClient))
}

func TestRegistryRefusesUnknownCaller(t *testing.T) {
	registry := newTestRegistry(t, dbmocks.NewDBClient(t), queuemocks.NewQueueClient(t))

	_, err := registry.Transfer(context.Background(), "random_component", types.MessageBusAdapter, &adapters.TransferRequest{
		Owner: "owner", Token: "usdt", AmountUsd: 100, FromChainId: 1, ToChainId: 2,
	})
	require.NotNil(t, err)
	require.Equal(t, types.Forbidden, err.ErrorCode)
}

func TestRegistryRefusesUnregisteredAdapterType(t *testing.T) {
	registry := newTestRegistry(t, dbmocks.NewDBClient(t), queuemocks.NewQueueClient(t))

	_, err := registry.Get(types.LockMintAdapter)
	require.NotNil(t, err)
	require.Equal(t, types.BadRequest, err.ErrorCode)
}

func TestMessageBusTransferPublishesInstruction(t *testing.T) {
	mockDB := dbmocks.NewDBClient(t)
	mockQueue := queuemocks.NewQueueClient(t)

	mockDB.On("FindAdapterPeer", mock.Anything, "message_bus", uint64(2)).
		Return(&model.AdapterPeerDocument{AdapterType: "message_bus", ChainId: 2, Peer: "peer-2"}, nil)
	mockDB.On("SaveRelayTransfer", mock.Anything, mock.MatchedBy(func(doc *model.RelayTransferDocument) bool {
		return doc.ToChainId == 2 && doc.AmountUsd == 100 && doc.State == model.RelayTransferSent
	})).Return(nil)
	mockQueue.On("SendMessage", mock.Anything, mock.AnythingOfType("string")).Return(nil)

	registry := newTestRegistry(t, mockDB, mockQueue)
	result, err := registry.Transfer(context.Background(), "user_agent", types.MessageBusAdapter, &adapters.TransferRequest{
		Owner: "owner", Token: "usdt", AmountUsd: 100, FromChainId: 1, ToChainId: 2,
	})
	require.Nil(t, err)
	require.NotEmpty(t, result.TransferId)
	require.Equal(t, uint64(10), result.FeeUsd)
}

func TestMessageBusTransferWithoutPeerRejected(t *testing.T) {
	mockDB := dbmocks.NewDBClient(t)

	mockDB.On("FindAdapterPeer", mock.Anything, "message_bus", uint64(2)).
		Return(nil, &db.NotFoundError{Message: "no peer"})

	registry := newTestRegistry(t, mockDB, queuemocks.NewQueueClient(t))
	_, err := registry.Transfer(context.Background(), "user_agent", types.MessageBusAdapter, &adapters.TransferRequest{
		Owner: "owner", Token: "usdt", AmountUsd: 100, FromChainId: 1, ToChainId: 2,
	})
	require.NotNil(t, err)
	require.Equal(t, types.InvalidPeer, err.ErrorCode)
}

func TestMessageBusSetPeersLengthMismatch(t *testing.T) {
	registry := newTestRegistry(t, dbmocks.NewDBClient(t), queuemocks.NewQueueClient(t))

	adapter, err := registry.Get(types.MessageBusAdapter)
	require.Nil(t, err)

	setErr := adapter.SetPeers(context.Background(), []uint64{1, 2}, []string{"peer-1"})
	require.NotNil(t, setErr)
	require.Equal(t, types.ValidationError, setErr.ErrorCode)
}

func TestMessageBusQuoteFeeIsFlat(t *testing.T) {
	registry := newTestRegistry(t, dbmocks.NewDBClient(t), queuemocks.NewQueueClient(t))

	fee, err := registry.QuoteFee(context.Background(), types.MessageBusAdapter, "usdt", 1_000_000, 2)
	require.Nil(t, err)
	require.Equal(t, uint64(10), fee)
}
