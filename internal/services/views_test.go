package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/thirdfi/fund-orchestrator/internal/clients"
	"github.com/thirdfi/fund-orchestrator/internal/clients/oracle"
	oraclemocks "github.com/thirdfi/fund-orchestrator/internal/clients/oracle/mocks"
	"github.com/thirdfi/fund-orchestrator/internal/db/mocks"
	"github.com/thirdfi/fund-orchestrator/internal/db/model"
	"github.com/thirdfi/fund-orchestrator/internal/types"
)

func TestGetPoolsUnbondedDecomposesClaims(t *testing.T) {
	mockDB := mocks.NewDBClient(t)

	future := time.Now().Add(time.Hour).Unix()
	mockDB.On("FindTicketsByOwner", mock.Anything, testOwner).Return([]model.UnbondingTicketDocument{
		{ChainId: 1, Asset: "stusd", State: types.TicketUnbonded, ExpectedUnderlying: 300},
		{ChainId: 1, Asset: "stusd", State: types.TicketPending, ExpectedUnderlying: 200, ReadyAtTs: future},
		{ChainId: 1, Asset: "stusd", State: types.TicketClaimed, ExpectedUnderlying: 999},
		{ChainId: 2, Asset: "steth", State: types.TicketEmergency, ExpectedUnderlying: 400, ReadyAtTs: future},
		{ChainId: 2, Asset: "steth", State: types.TicketUnbondedEmergency, ExpectedUnderlying: 150},
	}, nil)
	mockDB.On("FindWithdrawRequestsByOwner", mock.Anything, testOwner).Return([]model.WithdrawRequestDocument{
		{ChainId: 1, Asset: "stusd", Owner: testOwner, AmountUsd: 100},
	}, nil)

	s := newTestServices(t, mockDB)
	pools, err := s.GetPoolsUnbonded(context.Background(), testOwner)
	require.Nil(t, err)
	require.Len(t, pools, 2)

	require.Equal(t, uint64(1), pools[0].ChainId)
	require.Equal(t, "stusd", pools[0].Asset)
	// 100 requested plus 200 pending waits; 300 is claimable; the claimed
	// ticket no longer shows.
	require.Equal(t, uint64(300), pools[0].WaitingInUSD)
	require.Equal(t, uint64(300), pools[0].UnbondedInUSD)
	require.Greater(t, pools[0].WaitForTs, int64(0))

	require.Equal(t, uint64(2), pools[1].ChainId)
	require.Equal(t, uint64(400), pools[1].WaitingInUSD)
	// Matured emergency value is claimable like any other unbonded value.
	require.Equal(t, uint64(150), pools[1].UnbondedInUSD)
}

func TestGetAllUnbondedSumsPools(t *testing.T) {
	mockDB := mocks.NewDBClient(t)

	future := time.Now().Add(2 * time.Hour).Unix()
	mockDB.On("FindTicketsByOwner", mock.Anything, testOwner).Return([]model.UnbondingTicketDocument{
		{ChainId: 1, Asset: "stusd", State: types.TicketUnbonded, ExpectedUnderlying: 300},
		{ChainId: 2, Asset: "steth", State: types.TicketPending, ExpectedUnderlying: 500, ReadyAtTs: future},
	}, nil)
	mockDB.On("FindWithdrawRequestsByOwner", mock.Anything, testOwner).
		Return([]model.WithdrawRequestDocument{}, nil)

	s := newTestServices(t, mockDB)
	view, err := s.GetAllUnbonded(context.Background(), testOwner)
	require.Nil(t, err)
	require.Equal(t, uint64(500), view.WaitingInUSD)
	require.Equal(t, uint64(300), view.UnbondedInUSD)
	require.Greater(t, view.WaitForTs, int64(0))
}

func TestGetAssetPriceProxiesOracle(t *testing.T) {
	mockOracle := oraclemocks.NewOracleClientInterface(t)
	mockOracle.On("GetAssetPrice", mock.Anything, testChainId, testAsset).
		Return(&oracle.AssetPriceResponse{
			ChainId: testChainId, Token: testAsset, PriceMicros: 1_020_000,
		}, nil)

	s := &Services{
		DbClient: mocks.NewDBClient(t),
		cfg:      testConfig(),
		Clients:  &clients.Clients{Oracle: mockOracle},
	}
	price, err := s.GetAssetPrice(context.Background(), testChainId, testAsset)
	require.Nil(t, err)
	require.Equal(t, uint64(1_020_000), price.PriceMicros)
}

func TestGetAssetPriceWithZeroQuoteIsNotFound(t *testing.T) {
	mockOracle := oraclemocks.NewOracleClientInterface(t)
	mockOracle.On("GetAssetPrice", mock.Anything, testChainId, testAsset).
		Return(&oracle.AssetPriceResponse{ChainId: testChainId, Token: testAsset}, nil)

	s := &Services{
		DbClient: mocks.NewDBClient(t),
		cfg:      testConfig(),
		Clients:  &clients.Clients{Oracle: mockOracle},
	}
	_, err := s.GetAssetPrice(context.Background(), testChainId, testAsset)
	require.NotNil(t, err)
	require.Equal(t, types.NotFound, err.ErrorCode)
}

func TestGetAllUnbondedWithNothingOutstanding(t *testing.T) {
	mockDB := mocks.NewDBClient(t)
	mockDB.On("FindTicketsByOwner", mock.Anything, testOwner).
		Return([]model.UnbondingTicketDocument{}, nil)
	mockDB.On("FindWithdrawRequestsByOwner", mock.Anything, testOwner).
		Return([]model.WithdrawRequestDocument{}, nil)

	s := newTestServices(t, mockDB)
	view, err := s.GetAllUnbonded(context.Background(), testOwner)
	require.Nil(t, err)
	require.Zero(t, view.WaitingInUSD)
	require.Zero(t, view.UnbondedInUSD)
	require.Zero(t, view.WaitForTs)
}
