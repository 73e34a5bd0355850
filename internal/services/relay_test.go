package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/thirdfi/fund-orchestrator/internal/db"
	"github.com/thirdfi/fund-orchestrator/internal/db/mocks"
	"github.com/thirdfi/fund-orchestrator/internal/db/model"
	queueclient "github.com/thirdfi/fund-orchestrator/internal/queue/client"
	"github.com/thirdfi/fund-orchestrator/internal/types"
)

func deliveryEvent() *queueclient.RelayDeliveryEvent {
	return &queueclient.RelayDeliveryEvent{
		EventType:   queueclient.RelayDeliveryEventType,
		TransferId:  "transfer-1",
		Owner:       testOwner,
		ToChainId:   testChainId,
		Token:       testAsset,
		AmountUsd:   1500,
		MinterNonce: 42,
	}
}

func TestRelayDeliveryCreditsVaultAndStakingBuffer(t *testing.T) {
	mockDB := mocks.NewDBClient(t)
	mockDB.On("MarkRelayTransferDelivered", mock.Anything, "transfer-1").Return(nil)
	// The token is a configured staking pool asset, so the delivery lands in
	// the pool's deposit buffer inside the same vault credit.
	mockDB.On("DepositToVault", mock.Anything, testChainId, uint64(42), uint64(1500),
		[]model.BufferedDeposit{{Asset: testAsset, AmountUsd: 1500}}).Return(nil)

	s := newTestServices(t, mockDB)
	require.Nil(t, s.ProcessRelayDelivery(context.Background(), deliveryEvent()))
}

func TestRelayDeliveryNonStakedTokenSkipsBuffer(t *testing.T) {
	mockDB := mocks.NewDBClient(t)
	mockDB.On("MarkRelayTransferDelivered", mock.Anything, "transfer-1").Return(nil)
	mockDB.On("DepositToVault", mock.Anything, testChainId, uint64(42), uint64(1500),
		[]model.BufferedDeposit(nil)).Return(nil)

	event := deliveryEvent()
	event.Token = "usdt"

	s := newTestServices(t, mockDB)
	require.Nil(t, s.ProcessRelayDelivery(context.Background(), event))
}

func TestRelayDeliveryAlreadyMarkedIsDuplicate(t *testing.T) {
	mockDB := mocks.NewDBClient(t)
	mockDB.On("MarkRelayTransferDelivered", mock.Anything, "transfer-1").
		Return(&db.NotFoundError{Message: "not in sent state"})

	s := newTestServices(t, mockDB)
	require.Nil(t, s.ProcessRelayDelivery(context.Background(), deliveryEvent()))
	mockDB.AssertNotCalled(t, "DepositToVault",
		mock.Anything, testChainId, uint64(42), uint64(1500), mock.Anything)
}

func TestRelayDeliveryConsumedNonceIsDuplicate(t *testing.T) {
	mockDB := mocks.NewDBClient(t)
	mockDB.On("MarkRelayTransferDelivered", mock.Anything, "transfer-1").Return(nil)
	mockDB.On("DepositToVault", mock.Anything, testChainId, uint64(42), uint64(1500), mock.Anything).
		Return(&db.StaleNonceError{Message: "nonce consumed"})

	s := newTestServices(t, mockDB)
	require.Nil(t, s.ProcessRelayDelivery(context.Background(), deliveryEvent()))
}

func TestRelayDeliveryToPausedVaultStaysQueued(t *testing.T) {
	mockDB := mocks.NewDBClient(t)
	mockDB.On("MarkRelayTransferDelivered", mock.Anything, "transfer-1").Return(nil)
	mockDB.On("DepositToVault", mock.Anything, testChainId, uint64(42), uint64(1500), mock.Anything).
		Return(&db.PausedError{Message: "vault paused"})

	s := newTestServices(t, mockDB)
	err := s.ProcessRelayDelivery(context.Background(), deliveryEvent())
	require.NotNil(t, err)
	require.Equal(t, types.Paused, err.ErrorCode)
	require.GreaterOrEqual(t, err.StatusCode, 500)
}
