package services

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/thirdfi/fund-orchestrator/internal/clients"
	"github.com/thirdfi/fund-orchestrator/internal/clients/staking"
	stakingmocks "github.com/thirdfi/fund-orchestrator/internal/clients/staking/mocks"
	"github.com/thirdfi/fund-orchestrator/internal/db"
	dbmocks "github.com/thirdfi/fund-orchestrator/internal/db/mocks"
	"github.com/thirdfi/fund-orchestrator/internal/db/model"
	"github.com/thirdfi/fund-orchestrator/internal/types"
)

func TestDepositByAdminBuffersStakedTokens(t *testing.T) {
	mockDB := dbmocks.NewDBClient(t)
	// Only the configured staking asset is buffered; the other token stays
	// liquid in the vault. Credit and buffer travel in the same call.
	mockDB.On("DepositToVault", mock.Anything, testChainId, uint64(7), uint64(900),
		[]model.BufferedDeposit{{Asset: testAsset, AmountUsd: 600}}).Return(nil)

	s := newTestServices(t, mockDB)
	err := s.DepositByAdmin(context.Background(), testChainId, testOwner,
		[]string{testAsset, "usdt"}, []uint64{600, 300}, 7)
	require.Nil(t, err)
}

func TestDepositByAdminRejectsOverflowingAmounts(t *testing.T) {
	s := newTestServices(t, dbmocks.NewDBClient(t))
	err := s.DepositByAdmin(context.Background(), testChainId, testOwner,
		[]string{testAsset, "usdt"}, []uint64{math.MaxUint64, 2}, 7)
	require.NotNil(t, err)
	require.Equal(t, types.ValidationError, err.ErrorCode)
}

func TestDepositByAdminRejectsStaleNonce(t *testing.T) {
	mockDB := dbmocks.NewDBClient(t)
	mockDB.On("DepositToVault", mock.Anything, testChainId, uint64(7), uint64(100), mock.Anything).
		Return(&db.StaleNonceError{Message: "nonce is behind"})

	s := newTestServices(t, mockDB)
	err := s.DepositByAdmin(context.Background(), testChainId, testOwner, []string{"usdt"}, []uint64{100}, 7)
	require.NotNil(t, err)
	require.Equal(t, types.StaleNonce, err.ErrorCode)
}

func TestDepositByAdminRejectsPausedVault(t *testing.T) {
	mockDB := dbmocks.NewDBClient(t)
	mockDB.On("DepositToVault", mock.Anything, testChainId, uint64(7), uint64(100), mock.Anything).
		Return(&db.PausedError{Message: "vault paused"})

	s := newTestServices(t, mockDB)
	err := s.DepositByAdmin(context.Background(), testChainId, testOwner, []string{"usdt"}, []uint64{100}, 7)
	require.NotNil(t, err)
	require.Equal(t, types.Paused, err.ErrorCode)
}

func TestWithdrawFullyLiquidReleasesEverything(t *testing.T) {
	mockDB := dbmocks.NewDBClient(t)

	mockDB.On("FindVault", mock.Anything, testChainId).
		Return(&model.VaultDocument{ChainId: testChainId, PoolUsd: 10_000}, nil)
	// Nothing staked on this chain.
	mockDB.On("FindStakingPool", mock.Anything, testChainId, testAsset).
		Return(nil, &db.NotFoundError{Message: "pool not found"})
	mockDB.On("WithdrawFromVault", mock.Anything, testChainId, uint64(9), uint64(2500), uint64(0)).Return(nil)

	s := newTestServices(t, mockDB)
	outcome, err := s.WithdrawPercByAdmin(context.Background(), testChainId, testOwner, 2500, 9)
	require.Nil(t, err)
	require.Equal(t, uint64(2500), outcome.ReleasedUsd)
	require.Zero(t, outcome.PendingUsd)
}

func TestWithdrawPartialSettlementBooksPendingClaim(t *testing.T) {
	mockDB := dbmocks.NewDBClient(t)
	mockStaking := stakingmocks.NewStakingClientInterface(t)

	// Pool worth 10_000 with 8_000 locked in staking leaves 2_000 liquid.
	// A 50% withdrawal of 5_000 releases 2_000 and books 3_000 pending.
	mockDB.On("FindVault", mock.Anything, testChainId).
		Return(&model.VaultDocument{ChainId: testChainId, PoolUsd: 10_000}, nil)
	mockDB.On("FindStakingPool", mock.Anything, testChainId, testAsset).
		Return(&model.StakingPoolDocument{
			ChainId:      testChainId,
			Asset:        testAsset,
			StakedShares: 8_000 * types.OneUsd,
		}, nil)
	mockStaking.On("GetExchangeRate", mock.Anything, testChainId, testAsset).
		Return(&staking.ExchangeRateResponse{UsdPerShare: 1}, nil)
	mockDB.On("WithdrawFromVault", mock.Anything, testChainId, uint64(9), uint64(2000), uint64(3000)).Return(nil)
	mockDB.On("AddWithdrawRequest", mock.Anything, mock.MatchedBy(func(req *model.WithdrawRequestDocument) bool {
		return req.ChainId == testChainId && req.Asset == testAsset &&
			req.Owner == testOwner && req.AmountUsd == 3000
	})).Return(nil)

	s := &Services{
		DbClient: mockDB,
		cfg:      testConfig(),
		Clients:  &clients.Clients{Staking: mockStaking},
	}
	outcome, err := s.WithdrawPercByAdmin(context.Background(), testChainId, testOwner, 5000, 9)
	require.Nil(t, err)
	require.Equal(t, uint64(2000), outcome.ReleasedUsd)
	require.Equal(t, uint64(3000), outcome.PendingUsd)
}

func TestWithdrawRejectsPercAboveWhole(t *testing.T) {
	s := newTestServices(t, dbmocks.NewDBClient(t))
	_, err := s.WithdrawPercByAdmin(context.Background(), testChainId, testOwner, 10_001, 9)
	require.NotNil(t, err)
	require.Equal(t, types.ValidationError, err.ErrorCode)
}

func TestEmergencyWithdrawExitsPoolsAndPausesVault(t *testing.T) {
	mockDB := dbmocks.NewDBClient(t)
	mockStaking := stakingmocks.NewStakingClientInterface(t)

	mockDB.On("FindStakingPool", mock.Anything, testChainId, testAsset).Return(&model.StakingPoolDocument{
		ChainId:      testChainId,
		Asset:        testAsset,
		StakedShares: 4_000_000,
	}, nil)
	mockStaking.On("GetExchangeRate", mock.Anything, testChainId, testAsset).
		Return(&staking.ExchangeRateResponse{UsdPerShare: types.OneUsd}, nil)
	mockStaking.On("EmergencyUnstake", mock.Anything, testChainId, testAsset, uint64(4_000_000)).
		Return(&staking.UnstakeResponse{}, nil)
	mockDB.On("MarkPoolEmergency", mock.Anything, testChainId, testAsset).Return(nil)
	mockDB.On("PauseVaultForEmergency", mock.Anything, testChainId, uint64(4_000_000)).Return(nil)

	s := &Services{
		DbClient: mockDB,
		cfg:      testConfig(),
		Clients:  &clients.Clients{Staking: mockStaking},
	}
	require.Nil(t, s.EmergencyWithdraw(context.Background(), testChainId))
}

func TestReinvestBlockedWhileTicketsOutstanding(t *testing.T) {
	mockDB := dbmocks.NewDBClient(t)
	mockDB.On("CountTicketsInStates", mock.Anything, testChainId, testAsset,
		outstandingTicketStates).Return(int64(2), nil)

	s := newTestServices(t, mockDB)
	err := s.Reinvest(context.Background(), testChainId, []string{testAsset}, []uint64{10_000})
	require.NotNil(t, err)
	require.Equal(t, types.EmergencyUnbondingNotFinished, err.ErrorCode)
}

func TestReinvestUnpausesVaultAndClearsPools(t *testing.T) {
	mockDB := dbmocks.NewDBClient(t)
	mockDB.On("CountTicketsInStates", mock.Anything, testChainId, testAsset,
		outstandingTicketStates).Return(int64(0), nil)
	mockDB.On("ReinvestVault", mock.Anything, testChainId,
		[]model.CompositionEntry{{Token: testAsset, PercBp: 10_000}}).Return(nil)
	mockDB.On("ClearPoolEmergency", mock.Anything, testChainId, testAsset).Return(nil)

	s := newTestServices(t, mockDB)
	require.Nil(t, s.Reinvest(context.Background(), testChainId, []string{testAsset}, []uint64{10_000}))
}

func TestReleaseEmergencyBalanceGuard(t *testing.T) {
	mockDB := dbmocks.NewDBClient(t)
	mockDB.On("ReleaseEmergencyFunds", mock.Anything, testChainId, uint64(500)).
		Return(&db.NotFoundError{Message: "balance too low"})

	s := newTestServices(t, mockDB)
	err := s.ReleaseEmergency(context.Background(), testChainId, 500)
	require.NotNil(t, err)
	require.Equal(t, types.BadRequest, err.ErrorCode)
}
