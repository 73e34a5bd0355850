package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/thirdfi/fund-orchestrator/internal/db"
	"github.com/thirdfi/fund-orchestrator/internal/db/mocks"
	"github.com/thirdfi/fund-orchestrator/internal/db/model"
	"github.com/thirdfi/fund-orchestrator/internal/types"
)

const testOwner = "owner-1"

func newTestServices(t *testing.T, dbClient *mocks.DBClient) *Services {
	t.Helper()
	return &Services{
		DbClient: dbClient,
		cfg:      testConfig(),
	}
}

func TestInitDepositOpensOperation(t *testing.T) {
	mockDB := mocks.NewDBClient(t)
	mockDB.On("FindLastOperationByOwner", mock.Anything, testOwner).
		Return(nil, &db.NotFoundError{Message: "no operations"})
	mockDB.On("NextOperationId", mock.Anything).Return(uint64(42), nil)
	mockDB.On("InsertOperation", mock.Anything, mock.MatchedBy(func(op *model.OperationDocument) bool {
		return op.Id == 42 && op.Owner == testOwner && op.UserNonce == 1 &&
			op.OpType == types.OperationDeposit && op.PoolSnapshot == 500 && op.Amount == 1000
	})).Return(nil)

	s := newTestServices(t, mockDB)
	op, err := s.InitDepositByAdmin(context.Background(), testOwner, 500, 1000)
	require.Nil(t, err)
	require.Equal(t, uint64(42), op.Id)
	require.Equal(t, uint64(1), op.UserNonce)
}

func TestInitDepositRejectsZeroAmount(t *testing.T) {
	s := newTestServices(t, mocks.NewDBClient(t))
	_, err := s.InitDepositByAdmin(context.Background(), testOwner, 500, 0)
	require.NotNil(t, err)
	require.Equal(t, types.ValidationError, err.ErrorCode)
}

func TestInitDepositRejectsUnfinishedPrevious(t *testing.T) {
	mockDB := mocks.NewDBClient(t)
	mockDB.On("FindLastOperationByOwner", mock.Anything, testOwner).
		Return(&model.OperationDocument{Id: 7, Owner: testOwner, UserNonce: 3, Finished: false}, nil)

	s := newTestServices(t, mockDB)
	_, err := s.InitDepositByAdmin(context.Background(), testOwner, 500, 1000)
	require.NotNil(t, err)
	require.Equal(t, types.PreviousOperationUnfinished, err.ErrorCode)
}

func TestInitDepositRacedNonceSlot(t *testing.T) {
	mockDB := mocks.NewDBClient(t)
	mockDB.On("FindLastOperationByOwner", mock.Anything, testOwner).
		Return(&model.OperationDocument{Id: 7, Owner: testOwner, UserNonce: 3, Finished: true}, nil)
	mockDB.On("NextOperationId", mock.Anything).Return(uint64(43), nil)
	mockDB.On("InsertOperation", mock.Anything, mock.Anything).
		Return(&db.DuplicateKeyError{Message: "duplicate user nonce"})

	s := newTestServices(t, mockDB)
	_, err := s.InitDepositByAdmin(context.Background(), testOwner, 500, 1000)
	require.NotNil(t, err)
	require.Equal(t, types.PreviousOperationUnfinished, err.ErrorCode)
}

func TestMintBootstrapIsOneToOne(t *testing.T) {
	mockDB := mocks.NewDBClient(t)
	mockDB.On("FindOperationById", mock.Anything, uint64(10)).Return(&model.OperationDocument{
		Id: 10, Owner: testOwner, OpType: types.OperationDeposit, PoolSnapshot: 0, Amount: 1_000_000,
	}, nil)
	mockDB.On("GetTotalShareSupply", mock.Anything).Return(uint64(0), nil)
	mockDB.On("FinishOperationMintingShares", mock.Anything, uint64(10), testOwner, uint64(1_000_000)).Return(nil)

	s := newTestServices(t, mockDB)
	shares, err := s.MintByAdmin(context.Background(), testOwner, 10)
	require.Nil(t, err)
	require.Equal(t, uint64(1_000_000), shares)
}

func TestMintPricesAgainstPoolSnapshot(t *testing.T) {
	// 500 deposited into a pool worth 2000 with 1000 shares outstanding
	// mints 250 shares.
	mockDB := mocks.NewDBClient(t)
	mockDB.On("FindOperationById", mock.Anything, uint64(11)).Return(&model.OperationDocument{
		Id: 11, Owner: testOwner, OpType: types.OperationDeposit, PoolSnapshot: 2000, Amount: 500,
	}, nil)
	mockDB.On("GetTotalShareSupply", mock.Anything).Return(uint64(1000), nil)
	mockDB.On("FinishOperationMintingShares", mock.Anything, uint64(11), testOwner, uint64(250)).Return(nil)

	s := newTestServices(t, mockDB)
	shares, err := s.MintByAdmin(context.Background(), testOwner, 11)
	require.Nil(t, err)
	require.Equal(t, uint64(250), shares)
}

func TestMintTwiceFailsOnFinishedOperation(t *testing.T) {
	mockDB := mocks.NewDBClient(t)
	mockDB.On("FindOperationById", mock.Anything, uint64(12)).Return(&model.OperationDocument{
		Id: 12, Owner: testOwner, OpType: types.OperationDeposit, Amount: 100, Finished: true,
	}, nil)

	s := newTestServices(t, mockDB)
	_, err := s.MintByAdmin(context.Background(), testOwner, 12)
	require.NotNil(t, err)
	require.Equal(t, types.AlreadyFinished, err.ErrorCode)
}

func TestMintByWrongOwnerIsRejected(t *testing.T) {
	mockDB := mocks.NewDBClient(t)
	mockDB.On("FindOperationById", mock.Anything, uint64(13)).Return(&model.OperationDocument{
		Id: 13, Owner: "someone-else", OpType: types.OperationDeposit, Amount: 100,
	}, nil)

	s := newTestServices(t, mockDB)
	_, err := s.MintByAdmin(context.Background(), testOwner, 13)
	require.NotNil(t, err)
	require.Equal(t, types.NotOwnerOrAdmin, err.ErrorCode)
}

func TestMintRacedFinishIsAlreadyFinished(t *testing.T) {
	// Another mint finished the operation between the read and the guarded
	// update.
	mockDB := mocks.NewDBClient(t)
	mockDB.On("FindOperationById", mock.Anything, uint64(14)).Return(&model.OperationDocument{
		Id: 14, Owner: testOwner, OpType: types.OperationDeposit, Amount: 100,
	}, nil)
	mockDB.On("GetTotalShareSupply", mock.Anything).Return(uint64(0), nil)
	mockDB.On("FinishOperationMintingShares", mock.Anything, uint64(14), testOwner, uint64(100)).
		Return(&db.NotFoundError{Message: "already finished"})

	s := newTestServices(t, mockDB)
	_, err := s.MintByAdmin(context.Background(), testOwner, 14)
	require.NotNil(t, err)
	require.Equal(t, types.AlreadyFinished, err.ErrorCode)
}

func TestBurnRejectsAmountOverBalance(t *testing.T) {
	mockDB := mocks.NewDBClient(t)
	mockDB.On("GetShareBalance", mock.Anything, testOwner).Return(uint64(50), nil)

	s := newTestServices(t, mockDB)
	_, err := s.BurnByAdmin(context.Background(), testOwner, 1000, 100)
	require.NotNil(t, err)
	require.Equal(t, types.BadRequest, err.ErrorCode)
}

func TestBurnOpensWithdrawAndBurnsShares(t *testing.T) {
	mockDB := mocks.NewDBClient(t)
	mockDB.On("GetShareBalance", mock.Anything, testOwner).Return(uint64(500), nil)
	mockDB.On("FindLastOperationByOwner", mock.Anything, testOwner).
		Return(&model.OperationDocument{Id: 5, Owner: testOwner, UserNonce: 2, Finished: true}, nil)
	mockDB.On("NextOperationId", mock.Anything).Return(uint64(6), nil)
	mockDB.On("InsertOperationBurningShares", mock.Anything, mock.MatchedBy(func(op *model.OperationDocument) bool {
		return op.OpType == types.OperationWithdraw && op.UserNonce == 3 &&
			op.Owner == testOwner && op.Amount == 200
	})).Return(nil)

	s := newTestServices(t, mockDB)
	op, err := s.BurnByAdmin(context.Background(), testOwner, 1000, 200)
	require.Nil(t, err)
	require.Equal(t, uint64(6), op.Id)
}

func TestBurnRacedBalanceRollsBackOperation(t *testing.T) {
	// The balance moved between the pre-check and the transactional burn; the
	// operation insert is rolled back with it and the caller gets a 400.
	mockDB := mocks.NewDBClient(t)
	mockDB.On("GetShareBalance", mock.Anything, testOwner).Return(uint64(500), nil)
	mockDB.On("FindLastOperationByOwner", mock.Anything, testOwner).
		Return(&model.OperationDocument{Id: 5, Owner: testOwner, UserNonce: 2, Finished: true}, nil)
	mockDB.On("NextOperationId", mock.Anything).Return(uint64(6), nil)
	mockDB.On("InsertOperationBurningShares", mock.Anything, mock.Anything).
		Return(&db.NotFoundError{Message: "share balance too low"})

	s := newTestServices(t, mockDB)
	_, err := s.BurnByAdmin(context.Background(), testOwner, 1000, 200)
	require.NotNil(t, err)
	require.Equal(t, types.BadRequest, err.ErrorCode)
}

func TestGetWithdrawPerc(t *testing.T) {
	mockDB := mocks.NewDBClient(t)
	mockDB.On("GetShareBalance", mock.Anything, testOwner).Return(uint64(500), nil)
	mockDB.On("GetTotalShareSupply", mock.Anything).Return(uint64(1000), nil)

	s := newTestServices(t, mockDB)
	percBp, err := s.GetWithdrawPerc(context.Background(), testOwner, 250)
	require.Nil(t, err)
	require.Equal(t, uint64(2500), percBp)
}

func TestAddTokenRejectsDuplicate(t *testing.T) {
	mockDB := mocks.NewDBClient(t)
	mockDB.On("GetComposition", mock.Anything).Return(&model.CompositionDocument{
		Entries: []model.TargetCompositionEntry{{ChainId: 1, Token: "usdt", TargetPercBp: 10000}},
	}, nil)

	s := newTestServices(t, mockDB)
	err := s.AddToken(context.Background(), 1, "usdt", []uint64{5000, 5000})
	require.NotNil(t, err)
	require.Equal(t, types.BadRequest, err.ErrorCode)
}

func TestAddTokenInstallsNewPercentages(t *testing.T) {
	mockDB := mocks.NewDBClient(t)
	mockDB.On("GetComposition", mock.Anything).Return(&model.CompositionDocument{
		Entries: []model.TargetCompositionEntry{{ChainId: 1, Token: "usdt", TargetPercBp: 10000}},
	}, nil)
	mockDB.On("SaveComposition", mock.Anything, mock.MatchedBy(func(entries []model.TargetCompositionEntry) bool {
		return len(entries) == 2 &&
			entries[0].TargetPercBp == 6000 && entries[1].TargetPercBp == 4000 &&
			entries[1].ChainId == 2 && entries[1].Token == "usdc"
	})).Return(nil)

	s := newTestServices(t, mockDB)
	err := s.AddToken(context.Background(), 2, "usdc", []uint64{6000, 4000})
	require.Nil(t, err)
}

func TestCompositionPercentagesMustSumToWhole(t *testing.T) {
	mockDB := mocks.NewDBClient(t)
	mockDB.On("GetComposition", mock.Anything).Return(&model.CompositionDocument{
		Entries: []model.TargetCompositionEntry{{ChainId: 1, Token: "usdt", TargetPercBp: 10000}},
	}, nil)

	s := newTestServices(t, mockDB)
	err := s.SetTokenCompositionTargetPerc(context.Background(), []uint64{9999})
	require.NotNil(t, err)
	require.Equal(t, types.ValidationError, err.ErrorCode)
}

func TestRemoveLastTokenLeavesEmptyComposition(t *testing.T) {
	mockDB := mocks.NewDBClient(t)
	mockDB.On("GetComposition", mock.Anything).Return(&model.CompositionDocument{
		Entries: []model.TargetCompositionEntry{{ChainId: 1, Token: "usdt", TargetPercBp: 10000}},
	}, nil)
	mockDB.On("SaveComposition", mock.Anything, []model.TargetCompositionEntry{}).Return(nil)

	s := newTestServices(t, mockDB)
	err := s.RemoveToken(context.Background(), 1, "usdt", nil)
	require.Nil(t, err)
}
