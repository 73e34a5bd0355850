package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/thirdfi/fund-orchestrator/internal/clients"
	"github.com/thirdfi/fund-orchestrator/internal/clients/staking"
	stakingmocks "github.com/thirdfi/fund-orchestrator/internal/clients/staking/mocks"
	"github.com/thirdfi/fund-orchestrator/internal/db"
	dbmocks "github.com/thirdfi/fund-orchestrator/internal/db/mocks"
	"github.com/thirdfi/fund-orchestrator/internal/db/model"
	"github.com/thirdfi/fund-orchestrator/internal/types"
	"github.com/thirdfi/fund-orchestrator/internal/utils"
)

func newStakingTestServices(
	t *testing.T, dbClient *dbmocks.DBClient, stakingClient *stakingmocks.StakingClientInterface,
) *Services {
	t.Helper()
	return &Services{
		DbClient: dbClient,
		cfg:      testConfig(),
		Clients:  &clients.Clients{Staking: stakingClient},
	}
}

func TestInvestStakesBufferedDeposits(t *testing.T) {
	mockDB := dbmocks.NewDBClient(t)
	mockStaking := stakingmocks.NewStakingClientInterface(t)

	mockDB.On("FindStakingPool", mock.Anything, testChainId, testAsset).Return(&model.StakingPoolDocument{
		ChainId:          testChainId,
		Asset:            testAsset,
		BufferedDeposits: 2_000_000,
		LastInvestTs:     0,
	}, nil)
	// One share is worth 2 USD, so 2 USD of deposits mints 1 share.
	mockStaking.On("GetExchangeRate", mock.Anything, testChainId, testAsset).
		Return(&staking.ExchangeRateResponse{UsdPerShare: 2 * types.OneUsd}, nil)
	mockStaking.On("Stake", mock.Anything, testChainId, testAsset, uint64(2_000_000)).
		Return(&staking.StakeResponse{SharesMinted: 1_000_000}, nil)
	mockDB.On("InvestStakingPool", mock.Anything, testChainId, testAsset,
		uint64(2_000_000), uint64(1_000_000), mock.AnythingOfType("int64")).Return(nil)

	s := newStakingTestServices(t, mockDB, mockStaking)
	require.Nil(t, s.Invest(context.Background(), testChainId, testAsset))
}

func TestInvestIsNoOpInsideInterval(t *testing.T) {
	mockDB := dbmocks.NewDBClient(t)

	mockDB.On("FindStakingPool", mock.Anything, testChainId, testAsset).Return(&model.StakingPoolDocument{
		ChainId:          testChainId,
		Asset:            testAsset,
		BufferedDeposits: 2_000_000,
		LastInvestTs:     time.Now().Unix(),
	}, nil)

	s := newStakingTestServices(t, mockDB, stakingmocks.NewStakingClientInterface(t))
	require.Nil(t, s.Invest(context.Background(), testChainId, testAsset))
}

func TestInvestRejectsAmountBelowMinimum(t *testing.T) {
	mockDB := dbmocks.NewDBClient(t)

	mockDB.On("FindStakingPool", mock.Anything, testChainId, testAsset).Return(&model.StakingPoolDocument{
		ChainId:          testChainId,
		Asset:            testAsset,
		BufferedDeposits: 50, // below MinInvestAmount of 100
	}, nil)

	s := newStakingTestServices(t, mockDB, stakingmocks.NewStakingClientInterface(t))
	err := s.Invest(context.Background(), testChainId, testAsset)
	require.NotNil(t, err)
	require.Equal(t, types.TooSmall, err.ErrorCode)
}

func TestInvestRejectsDuringEmergencyUnbonding(t *testing.T) {
	mockDB := dbmocks.NewDBClient(t)

	mockDB.On("FindStakingPool", mock.Anything, testChainId, testAsset).Return(&model.StakingPoolDocument{
		ChainId:            testChainId,
		Asset:              testAsset,
		BufferedDeposits:   2_000_000,
		EmergencyUnbonding: true,
	}, nil)

	s := newStakingTestServices(t, mockDB, stakingmocks.NewStakingClientInterface(t))
	err := s.Invest(context.Background(), testChainId, testAsset)
	require.NotNil(t, err)
	require.Equal(t, types.Paused, err.ErrorCode)
}

func TestInvestRejectsSlippageOutsideTolerance(t *testing.T) {
	mockDB := dbmocks.NewDBClient(t)
	mockStaking := stakingmocks.NewStakingClientInterface(t)

	mockDB.On("FindStakingPool", mock.Anything, testChainId, testAsset).Return(&model.StakingPoolDocument{
		ChainId:          testChainId,
		Asset:            testAsset,
		BufferedDeposits: 1_000_000,
	}, nil)
	mockStaking.On("GetExchangeRate", mock.Anything, testChainId, testAsset).
		Return(&staking.ExchangeRateResponse{UsdPerShare: types.OneUsd}, nil)
	// Expected 1_000_000 shares; 50 bps of tolerance allows 995_000, the
	// provider minted less.
	mockStaking.On("Stake", mock.Anything, testChainId, testAsset, uint64(1_000_000)).
		Return(&staking.StakeResponse{SharesMinted: 990_000}, nil)

	s := newStakingTestServices(t, mockDB, mockStaking)
	err := s.Invest(context.Background(), testChainId, testAsset)
	require.NotNil(t, err)
	require.Equal(t, 502, err.StatusCode)
}

func TestRedeemBatchesRequestsIntoTickets(t *testing.T) {
	mockDB := dbmocks.NewDBClient(t)
	mockStaking := stakingmocks.NewStakingClientInterface(t)

	mockDB.On("FindStakingPool", mock.Anything, testChainId, testAsset).Return(&model.StakingPoolDocument{
		ChainId:      testChainId,
		Asset:        testAsset,
		StakedShares: 10_000_000,
		LastSeq:      4,
	}, nil)
	mockDB.On("FindWithdrawRequests", mock.Anything, testChainId, testAsset).Return([]model.WithdrawRequestDocument{
		{Owner: "alice", AmountUsd: 600},
		{Owner: "bob", AmountUsd: 400},
	}, nil)
	mockStaking.On("GetExchangeRate", mock.Anything, testChainId, testAsset).
		Return(&staking.ExchangeRateResponse{UsdPerShare: types.OneUsd}, nil)
	mockStaking.On("Unstake", mock.Anything, testChainId, testAsset, uint64(1000)).
		Return(&staking.UnstakeResponse{ExpectedUnderlying: 1000, ReadyAtTs: 12345}, nil)
	mockDB.On("SaveRedeemBatch", mock.Anything, testChainId, testAsset,
		mock.MatchedBy(func(tickets []model.UnbondingTicketDocument) bool {
			if len(tickets) != 2 {
				return false
			}
			// Tickets are appended at the queue tail, one per request, and
			// the share split sums to the redeemed total.
			return tickets[0].Seq == 5 && tickets[1].Seq == 6 &&
				tickets[0].Owner == "alice" && tickets[1].Owner == "bob" &&
				tickets[0].ExpectedUnderlying == 600 && tickets[1].ExpectedUnderlying == 400 &&
				tickets[0].StakedSharesRedeemed+tickets[1].StakedSharesRedeemed == 1000 &&
				tickets[0].ReadyAtTs == 12345 && tickets[1].ReadyAtTs == 12345 &&
				tickets[0].State == types.TicketPending &&
				tickets[0].ClaimId != "" && tickets[0].ClaimId != tickets[1].ClaimId
		}),
		uint64(1000), uint64(1000), mock.AnythingOfType("int64")).Return(nil)

	s := newStakingTestServices(t, mockDB, mockStaking)
	require.Nil(t, s.Redeem(context.Background(), testChainId, testAsset))
}

func TestRedeemWithNoRequestsIsNoOp(t *testing.T) {
	mockDB := dbmocks.NewDBClient(t)

	mockDB.On("FindStakingPool", mock.Anything, testChainId, testAsset).Return(&model.StakingPoolDocument{
		ChainId: testChainId,
		Asset:   testAsset,
	}, nil)
	mockDB.On("FindWithdrawRequests", mock.Anything, testChainId, testAsset).
		Return([]model.WithdrawRequestDocument{}, nil)

	s := newStakingTestServices(t, mockDB, stakingmocks.NewStakingClientInterface(t))
	require.Nil(t, s.Redeem(context.Background(), testChainId, testAsset))
}

func TestClaimUnbondedMaturesReadyTicketsInOrder(t *testing.T) {
	mockDB := dbmocks.NewDBClient(t)
	mockStaking := stakingmocks.NewStakingClientInterface(t)

	past := time.Now().Unix() - 10
	future := time.Now().Unix() + 1000

	mockDB.On("FindStakingPool", mock.Anything, testChainId, testAsset).Return(&model.StakingPoolDocument{
		ChainId:  testChainId,
		Asset:    testAsset,
		FirstSeq: 1,
		LastSeq:  3,
	}, nil)
	mockDB.On("FindTicketsInRange", mock.Anything, testChainId, testAsset, uint64(1), uint64(3)).
		Return([]model.UnbondingTicketDocument{
			{Seq: 1, State: types.TicketPending, ReadyAtTs: past, ExpectedUnderlying: 100},
			{Seq: 2, State: types.TicketPending, ReadyAtTs: past, ExpectedUnderlying: 200},
			{Seq: 3, State: types.TicketPending, ReadyAtTs: future, ExpectedUnderlying: 300},
		}, nil)
	mockStaking.On("GetReleased", mock.Anything, testChainId, testAsset).
		Return(&staking.ReleasedResponse{ReleasedUsd: 1_000}, nil)
	mockDB.On("TransitionTicketState", mock.Anything, testChainId, testAsset, uint64(1),
		utils.QualifiedStatesToUnbonded(), types.TicketUnbonded).Return(nil)
	mockDB.On("TransitionTicketState", mock.Anything, testChainId, testAsset, uint64(2),
		utils.QualifiedStatesToUnbonded(), types.TicketUnbonded).Return(nil)
	mockDB.On("IncVaultPool", mock.Anything, testChainId, uint64(100)).Return(nil)
	mockDB.On("IncVaultPool", mock.Anything, testChainId, uint64(200)).Return(nil)

	s := newStakingTestServices(t, mockDB, mockStaking)
	require.Nil(t, s.ClaimUnbonded(context.Background(), testChainId, testAsset))

	// Seq 3 is not ready; it must not be transitioned.
	mockDB.AssertNotCalled(t, "TransitionTicketState", mock.Anything, testChainId, testAsset, uint64(3),
		utils.QualifiedStatesToUnbonded(), types.TicketUnbonded)
}

func TestClaimUnbondedStopsAtUnreleasedValue(t *testing.T) {
	mockDB := dbmocks.NewDBClient(t)
	mockStaking := stakingmocks.NewStakingClientInterface(t)

	past := time.Now().Unix() - 10

	mockDB.On("FindStakingPool", mock.Anything, testChainId, testAsset).Return(&model.StakingPoolDocument{
		ChainId:  testChainId,
		Asset:    testAsset,
		FirstSeq: 1,
		LastSeq:  2,
	}, nil)
	mockDB.On("FindTicketsInRange", mock.Anything, testChainId, testAsset, uint64(1), uint64(2)).
		Return([]model.UnbondingTicketDocument{
			{Seq: 1, State: types.TicketPending, ReadyAtTs: past, ExpectedUnderlying: 100},
			{Seq: 2, State: types.TicketPending, ReadyAtTs: past, ExpectedUnderlying: 200},
		}, nil)
	// The provider only released the first ticket's value so far; the second
	// stays pending even though its delay has elapsed.
	mockStaking.On("GetReleased", mock.Anything, testChainId, testAsset).
		Return(&staking.ReleasedResponse{ReleasedUsd: 150}, nil)
	mockDB.On("TransitionTicketState", mock.Anything, testChainId, testAsset, uint64(1),
		utils.QualifiedStatesToUnbonded(), types.TicketUnbonded).Return(nil)
	mockDB.On("IncVaultPool", mock.Anything, testChainId, uint64(100)).Return(nil)

	s := newStakingTestServices(t, mockDB, mockStaking)
	require.Nil(t, s.ClaimUnbonded(context.Background(), testChainId, testAsset))

	mockDB.AssertNotCalled(t, "TransitionTicketState", mock.Anything, testChainId, testAsset, uint64(2),
		utils.QualifiedStatesToUnbonded(), types.TicketUnbonded)
}

func TestClaimUnbondedAdvancesHeadOverClaimedPrefix(t *testing.T) {
	mockDB := dbmocks.NewDBClient(t)

	future := time.Now().Unix() + 1000

	mockDB.On("FindStakingPool", mock.Anything, testChainId, testAsset).Return(&model.StakingPoolDocument{
		ChainId:  testChainId,
		Asset:    testAsset,
		FirstSeq: 1,
		LastSeq:  3,
	}, nil)
	mockDB.On("FindTicketsInRange", mock.Anything, testChainId, testAsset, uint64(1), uint64(3)).
		Return([]model.UnbondingTicketDocument{
			{Seq: 1, State: types.TicketClaimed},
			{Seq: 2, State: types.TicketClaimed},
			{Seq: 3, State: types.TicketPending, ReadyAtTs: future},
		}, nil)
	mockDB.On("AdvanceTicketHead", mock.Anything, testChainId, testAsset, uint64(1), uint64(3)).Return(nil)

	s := newStakingTestServices(t, mockDB, stakingmocks.NewStakingClientInterface(t))
	require.Nil(t, s.ClaimUnbonded(context.Background(), testChainId, testAsset))
}

func TestClaimUnbondedEmergencyTicketKeepsItsOrigin(t *testing.T) {
	mockDB := dbmocks.NewDBClient(t)
	mockStaking := stakingmocks.NewStakingClientInterface(t)

	past := time.Now().Unix() - 10

	mockDB.On("FindStakingPool", mock.Anything, testChainId, testAsset).Return(&model.StakingPoolDocument{
		ChainId:  testChainId,
		Asset:    testAsset,
		FirstSeq: 1,
		LastSeq:  1,
	}, nil)
	mockDB.On("FindTicketsInRange", mock.Anything, testChainId, testAsset, uint64(1), uint64(1)).
		Return([]model.UnbondingTicketDocument{
			{Seq: 1, State: types.TicketEmergency, ReadyAtTs: past, ExpectedUnderlying: 500},
		}, nil)
	mockStaking.On("GetReleased", mock.Anything, testChainId, testAsset).
		Return(&staking.ReleasedResponse{ReleasedUsd: 500}, nil)
	// An emergency ticket matures into its own state so it can only be taken
	// out of the emergency balance, and it never credits the liquid pool.
	mockDB.On("TransitionTicketState", mock.Anything, testChainId, testAsset, uint64(1),
		utils.QualifiedStatesToUnbondedEmergency(), types.TicketUnbondedEmergency).Return(nil)

	s := newStakingTestServices(t, mockDB, mockStaking)
	require.Nil(t, s.ClaimUnbonded(context.Background(), testChainId, testAsset))

	mockDB.AssertNotCalled(t, "IncVaultPool", mock.Anything, testChainId, uint64(500))
}

func TestEmergencyRedeemForceExitsPosition(t *testing.T) {
	mockDB := dbmocks.NewDBClient(t)
	mockStaking := stakingmocks.NewStakingClientInterface(t)

	mockDB.On("FindStakingPool", mock.Anything, testChainId, testAsset).Return(&model.StakingPoolDocument{
		ChainId:      testChainId,
		Asset:        testAsset,
		StakedShares: 3_000_000,
	}, nil)
	mockStaking.On("GetExchangeRate", mock.Anything, testChainId, testAsset).
		Return(&staking.ExchangeRateResponse{UsdPerShare: 2 * types.OneUsd}, nil)
	mockStaking.On("EmergencyUnstake", mock.Anything, testChainId, testAsset, uint64(3_000_000)).
		Return(&staking.UnstakeResponse{ExpectedUnderlying: 6_000_000}, nil)
	mockDB.On("MarkPoolEmergency", mock.Anything, testChainId, testAsset).Return(nil)

	s := newStakingTestServices(t, mockDB, mockStaking)
	stakedUsd, err := s.EmergencyRedeem(context.Background(), testChainId, testAsset)
	require.Nil(t, err)
	require.Equal(t, uint64(6_000_000), stakedUsd)
}

func TestEmergencyRedeemIsIdempotent(t *testing.T) {
	mockDB := dbmocks.NewDBClient(t)

	mockDB.On("FindStakingPool", mock.Anything, testChainId, testAsset).Return(&model.StakingPoolDocument{
		ChainId:            testChainId,
		Asset:              testAsset,
		StakedShares:       3_000_000,
		EmergencyUnbonding: true,
	}, nil)

	s := newStakingTestServices(t, mockDB, stakingmocks.NewStakingClientInterface(t))
	stakedUsd, err := s.EmergencyRedeem(context.Background(), testChainId, testAsset)
	require.Nil(t, err)
	require.Zero(t, stakedUsd)
}

func TestMissingPoolIsNoOp(t *testing.T) {
	mockDB := dbmocks.NewDBClient(t)
	mockDB.On("FindStakingPool", mock.Anything, testChainId, testAsset).
		Return(nil, &db.NotFoundError{Message: "pool not found"})

	s := newStakingTestServices(t, mockDB, stakingmocks.NewStakingClientInterface(t))
	require.Nil(t, s.Invest(context.Background(), testChainId, testAsset))
}
