package services

import (
	"context"
	"encoding/hex"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/thirdfi/fund-orchestrator/internal/adapters"
	"github.com/thirdfi/fund-orchestrator/internal/auth"
	"github.com/thirdfi/fund-orchestrator/internal/config"
	"github.com/thirdfi/fund-orchestrator/internal/db"
	dbmocks "github.com/thirdfi/fund-orchestrator/internal/db/mocks"
	"github.com/thirdfi/fund-orchestrator/internal/db/model"
	queuemocks "github.com/thirdfi/fund-orchestrator/internal/queue/client/mocks"
	"github.com/thirdfi/fund-orchestrator/internal/types"
	"github.com/thirdfi/fund-orchestrator/internal/utils"
)

type agentTestKey struct {
	privKey *btcec.PrivateKey
	caller  string
}

func newAgentKey(t *testing.T) agentTestKey {
	t.Helper()
	privKey, err := btcec.NewPrivateKey()
	require.NoError(t, err)
	return agentTestKey{
		privKey: privKey,
		caller:  hex.EncodeToString(privKey.PubKey().SerializeCompressed()),
	}
}

func (k agentTestKey) sign(digest *auth.Digest) []string {
	sig := ecdsa.Sign(k.privKey, digest.Sum())
	return []string{hex.EncodeToString(sig.Serialize())}
}

func (k agentTestKey) request(nonce uint64, digest *auth.Digest) *AgentRequest {
	return &AgentRequest{Caller: k.caller, Nonce: nonce, Signatures: k.sign(digest)}
}

func expectSingleSignerAuth(mockDB *dbmocks.DBClient, caller string, nonce uint64) {
	mockDB.On("FindAccountByOwner", mock.Anything, caller).
		Return(nil, &db.NotFoundError{Message: "no account"})
	mockDB.On("AdvanceAgentNonce", mock.Anything, caller, nonce).Return(nil)
}

func newAgentTestServices(t *testing.T, dbClient *dbmocks.DBClient, queueClient *queuemocks.QueueClient) *Services {
	t.Helper()
	cfg := testConfig()
	cfg.Adapters.MessageBus = config.MessageBusAdapterConfig{
		TransferQueueName: "relay_transfer_queue",
		FlatFee:           10,
	}
	registry := adapters.NewRegistry(
		&cfg.Adapters,
		adapters.NewMessageBusAdapter(&cfg.Adapters.MessageBus, dbClient, queueClient),
	)
	return &Services{
		DbClient: dbClient,
		cfg:      cfg,
		Adapters: registry,
	}
}

func TestAgentInitDepositWithValidSignature(t *testing.T) {
	key := newAgentKey(t)
	mockDB := dbmocks.NewDBClient(t)

	expectSingleSignerAuth(mockDB, key.caller, 1)
	mockDB.On("FindLastOperationByOwner", mock.Anything, key.caller).
		Return(nil, &db.NotFoundError{Message: "no operations"})
	mockDB.On("NextOperationId", mock.Anything).Return(uint64(1), nil)
	mockDB.On("InsertOperation", mock.Anything, mock.Anything).Return(nil)

	digest := auth.NewDigest("init_deposit", key.caller, 1).AddUint64(5000).AddUint64(1000)
	s := newTestServices(t, mockDB)
	op, err := s.InitDeposit(context.Background(), key.request(1, digest), 5000, 1000)
	require.Nil(t, err)
	require.Equal(t, key.caller, op.Owner)
}

func TestAgentRejectsInvalidSignatureWithoutNonceAdvance(t *testing.T) {
	key := newAgentKey(t)
	otherKey := newAgentKey(t)
	mockDB := dbmocks.NewDBClient(t)

	mockDB.On("FindAccountByOwner", mock.Anything, key.caller).
		Return(nil, &db.NotFoundError{Message: "no account"})

	digest := auth.NewDigest("init_deposit", key.caller, 1).AddUint64(5000).AddUint64(1000)
	req := &AgentRequest{Caller: key.caller, Nonce: 1, Signatures: otherKey.sign(digest)}

	s := newTestServices(t, mockDB)
	_, err := s.InitDeposit(context.Background(), req, 5000, 1000)
	require.NotNil(t, err)
	require.Equal(t, types.InvalidSignature, err.ErrorCode)
	mockDB.AssertNotCalled(t, "AdvanceAgentNonce", mock.Anything, key.caller, uint64(1))
}

func TestAgentRejectsSignatureOverDifferentArgs(t *testing.T) {
	// Signed for 1000 USD, submitted for 2000 USD.
	key := newAgentKey(t)
	mockDB := dbmocks.NewDBClient(t)

	mockDB.On("FindAccountByOwner", mock.Anything, key.caller).
		Return(nil, &db.NotFoundError{Message: "no account"})

	signedDigest := auth.NewDigest("init_deposit", key.caller, 1).AddUint64(5000).AddUint64(1000)
	req := &AgentRequest{Caller: key.caller, Nonce: 1, Signatures: key.sign(signedDigest)}

	s := newTestServices(t, mockDB)
	_, err := s.InitDeposit(context.Background(), req, 5000, 2000)
	require.NotNil(t, err)
	require.Equal(t, types.InvalidSignature, err.ErrorCode)
}

func TestAgentRejectsStaleNonce(t *testing.T) {
	key := newAgentKey(t)
	mockDB := dbmocks.NewDBClient(t)

	mockDB.On("FindAccountByOwner", mock.Anything, key.caller).
		Return(nil, &db.NotFoundError{Message: "no account"})
	mockDB.On("AdvanceAgentNonce", mock.Anything, key.caller, uint64(1)).
		Return(&db.StaleNonceError{Message: "nonce is behind"})

	digest := auth.NewDigest("init_deposit", key.caller, 1).AddUint64(5000).AddUint64(1000)
	s := newTestServices(t, mockDB)
	_, err := s.InitDeposit(context.Background(), key.request(1, digest), 5000, 1000)
	require.NotNil(t, err)
	require.Equal(t, types.StaleNonce, err.ErrorCode)
}

func TestAgentThresholdWalletBelowThresholdRejected(t *testing.T) {
	// 2-of-2 wallet, only one signature supplied.
	keyA := newAgentKey(t)
	keyB := newAgentKey(t)
	mockDB := dbmocks.NewDBClient(t)

	mockDB.On("FindAccountByOwner", mock.Anything, "treasury").Return(&model.AccountDocument{
		Owner:      "treasury",
		Threshold:  2,
		PubKeysHex: []string{keyA.caller, keyB.caller},
	}, nil)

	digest := auth.NewDigest("init_deposit", "treasury", 1).AddUint64(5000).AddUint64(1000)
	req := &AgentRequest{Caller: "treasury", Nonce: 1, Signatures: keyA.sign(digest)}

	s := newTestServices(t, mockDB)
	_, err := s.InitDeposit(context.Background(), req, 5000, 1000)
	require.NotNil(t, err)
	require.Equal(t, types.InvalidSignature, err.ErrorCode)
}

func TestAgentTransferRejectsInsufficientFee(t *testing.T) {
	key := newAgentKey(t)
	mockDB := dbmocks.NewDBClient(t)
	mockQueue := queuemocks.NewQueueClient(t)

	expectSingleSignerAuth(mockDB, key.caller, 2)

	amounts := []uint64{100, 200}
	toChainIds := []uint64{2, 3}
	adapterTypes := []string{"message_bus", "message_bus"}
	// Two message bus legs cost a flat 10 each; 15 does not cover them.
	digest := auth.NewDigest("transfer", key.caller, 2).
		AddUint64(1).
		AddString("usdt").
		AddUint64Slice(amounts).
		AddUint64Slice(toChainIds).
		AddStringSlice(adapterTypes).
		AddUint64(15)

	s := newAgentTestServices(t, mockDB, mockQueue)
	_, err := s.Transfer(context.Background(), key.request(2, digest), 1, "usdt", amounts, toChainIds, adapterTypes, 15)
	require.NotNil(t, err)
	require.Equal(t, types.InsufficientFee, err.ErrorCode)
}

func TestAgentTransferRelaysEveryLeg(t *testing.T) {
	key := newAgentKey(t)
	mockDB := dbmocks.NewDBClient(t)
	mockQueue := queuemocks.NewQueueClient(t)

	expectSingleSignerAuth(mockDB, key.caller, 2)
	mockDB.On("FindAdapterPeer", mock.Anything, "message_bus", uint64(2)).
		Return(&model.AdapterPeerDocument{AdapterType: "message_bus", ChainId: 2, Peer: "peer-2"}, nil)
	mockDB.On("FindAdapterPeer", mock.Anything, "message_bus", uint64(3)).
		Return(&model.AdapterPeerDocument{AdapterType: "message_bus", ChainId: 3, Peer: "peer-3"}, nil)
	mockDB.On("SaveRelayTransfer", mock.Anything, mock.Anything).Return(nil).Times(2)
	mockQueue.On("SendMessage", mock.Anything, mock.AnythingOfType("string")).Return(nil).Times(2)

	amounts := []uint64{100, 200}
	toChainIds := []uint64{2, 3}
	adapterTypes := []string{"message_bus", "message_bus"}
	digest := auth.NewDigest("transfer", key.caller, 2).
		AddUint64(1).
		AddString("usdt").
		AddUint64Slice(amounts).
		AddUint64Slice(toChainIds).
		AddStringSlice(adapterTypes).
		AddUint64(20)

	s := newAgentTestServices(t, mockDB, mockQueue)
	outcomes, err := s.Transfer(context.Background(), key.request(2, digest), 1, "usdt", amounts, toChainIds, adapterTypes, 20)
	require.Nil(t, err)
	require.Len(t, outcomes, 2)
	require.Equal(t, uint64(2), outcomes[0].ToChainId)
	require.Equal(t, uint64(3), outcomes[1].ToChainId)
	require.NotEmpty(t, outcomes[0].TransferId)
	require.NotEqual(t, outcomes[0].TransferId, outcomes[1].TransferId)
}

func TestAgentClaimPaysFromPendingClaims(t *testing.T) {
	key := newAgentKey(t)
	mockDB := dbmocks.NewDBClient(t)

	expectSingleSignerAuth(mockDB, key.caller, 3)
	mockDB.On("ClaimTicket", mock.Anything, "claim-1", key.caller, utils.QualifiedStatesToClaimed()).
		Return(&model.UnbondingTicketDocument{
			ChainId:            2,
			ClaimId:            "claim-1",
			Owner:              key.caller,
			ExpectedUnderlying: 700,
			State:              types.TicketClaimed,
		}, nil)
	mockDB.On("PayPendingClaim", mock.Anything, uint64(2), uint64(700)).Return(nil)

	digest := auth.NewDigest("claim", key.caller, 3).AddString("claim-1")
	s := newTestServices(t, mockDB)
	ticket, err := s.Claim(context.Background(), key.request(3, digest), "claim-1")
	require.Nil(t, err)
	require.Equal(t, uint64(700), ticket.ExpectedUnderlying)
}

func TestAgentClaimOfForeignTicketRejected(t *testing.T) {
	key := newAgentKey(t)
	mockDB := dbmocks.NewDBClient(t)

	expectSingleSignerAuth(mockDB, key.caller, 3)
	mockDB.On("ClaimTicket", mock.Anything, "claim-1", key.caller, utils.QualifiedStatesToClaimed()).
		Return(nil, &db.NotFoundError{Message: "no matching ticket"})

	digest := auth.NewDigest("claim", key.caller, 3).AddString("claim-1")
	s := newTestServices(t, mockDB)
	_, err := s.Claim(context.Background(), key.request(3, digest), "claim-1")
	require.NotNil(t, err)
	require.Equal(t, types.BadRequest, err.ErrorCode)
}

func TestAgentClaimOfEmergencyTicketRejected(t *testing.T) {
	// A matured emergency ticket is only eligible for take-out. Presenting it
	// to claim finds no ticket in an eligible state and the pending claim
	// balance is never touched.
	key := newAgentKey(t)
	mockDB := dbmocks.NewDBClient(t)

	expectSingleSignerAuth(mockDB, key.caller, 3)
	mockDB.On("ClaimTicket", mock.Anything, "claim-7", key.caller, utils.QualifiedStatesToClaimed()).
		Return(nil, &db.NotFoundError{Message: "no matching ticket"})

	digest := auth.NewDigest("claim", key.caller, 3).AddString("claim-7")
	s := newTestServices(t, mockDB)
	_, err := s.Claim(context.Background(), key.request(3, digest), "claim-7")
	require.NotNil(t, err)
	require.Equal(t, types.BadRequest, err.ErrorCode)
	mockDB.AssertNotCalled(t, "PayPendingClaim", mock.Anything, mock.Anything, mock.Anything)
}

func TestAgentTakeOutPaysFromEmergencyBalance(t *testing.T) {
	key := newAgentKey(t)
	mockDB := dbmocks.NewDBClient(t)

	expectSingleSignerAuth(mockDB, key.caller, 4)
	mockDB.On("ClaimTicket", mock.Anything, "claim-9", key.caller, utils.QualifiedStatesToTakenOut()).
		Return(&model.UnbondingTicketDocument{
			ChainId:            2,
			ClaimId:            "claim-9",
			Owner:              key.caller,
			ExpectedUnderlying: 900,
			State:              types.TicketClaimed,
		}, nil)
	mockDB.On("PayEmergencyClaim", mock.Anything, uint64(2), uint64(900)).Return(nil)

	digest := auth.NewDigest("take_out", key.caller, 4).AddString("claim-9")
	s := newTestServices(t, mockDB)
	ticket, err := s.TakeOut(context.Background(), key.request(4, digest), "claim-9")
	require.Nil(t, err)
	require.Equal(t, uint64(900), ticket.ExpectedUnderlying)
}

func TestAgentTakeOutOfPendingOriginTicketRejected(t *testing.T) {
	// A ticket that matured through the pending path is only eligible for
	// claim; take-out finds no ticket in an eligible state and the emergency
	// balance is never touched.
	key := newAgentKey(t)
	mockDB := dbmocks.NewDBClient(t)

	expectSingleSignerAuth(mockDB, key.caller, 4)
	mockDB.On("ClaimTicket", mock.Anything, "claim-9", key.caller, utils.QualifiedStatesToTakenOut()).
		Return(nil, &db.NotFoundError{Message: "no matching ticket"})

	digest := auth.NewDigest("take_out", key.caller, 4).AddString("claim-9")
	s := newTestServices(t, mockDB)
	_, err := s.TakeOut(context.Background(), key.request(4, digest), "claim-9")
	require.NotNil(t, err)
	require.Equal(t, types.BadRequest, err.ErrorCode)
	mockDB.AssertNotCalled(t, "PayEmergencyClaim", mock.Anything, mock.Anything, mock.Anything)
}

func TestSimulateTransferQuotesWithoutAuth(t *testing.T) {
	mockDB := dbmocks.NewDBClient(t)
	mockQueue := queuemocks.NewQueueClient(t)

	s := newAgentTestServices(t, mockDB, mockQueue)
	total, err := s.SimulateTransfer(
		context.Background(), "usdt", []uint64{100, 200}, []uint64{2, 3}, []string{"message_bus", "message_bus"},
	)
	require.Nil(t, err)
	require.Equal(t, uint64(20), total)
}

func TestRegisterAccountValidatesKeys(t *testing.T) {
	mockDB := dbmocks.NewDBClient(t)

	s := newTestServices(t, mockDB)
	err := s.RegisterAccount(context.Background(), "treasury", 2, []string{"not-a-key", "also-not"})
	require.NotNil(t, err)
	require.Equal(t, types.ValidationError, err.ErrorCode)
}

func TestRegisterAccountSavesThresholdWallet(t *testing.T) {
	keyA := newAgentKey(t)
	keyB := newAgentKey(t)
	mockDB := dbmocks.NewDBClient(t)

	mockDB.On("SaveAccount", mock.Anything, mock.MatchedBy(func(doc *model.AccountDocument) bool {
		return doc.Owner == "treasury" && doc.Threshold == 2 && len(doc.PubKeysHex) == 2
	})).Return(nil)

	s := newTestServices(t, mockDB)
	err := s.RegisterAccount(context.Background(), "treasury", 2, []string{keyA.caller, keyB.caller})
	require.Nil(t, err)
}
