package db_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/thirdfi/fund-orchestrator/internal/db"
	"github.com/thirdfi/fund-orchestrator/internal/db/mocks"
	"github.com/thirdfi/fund-orchestrator/internal/utils"
)

func writeConflictError() *mongo.CommandError {
	return &mongo.CommandError{
		Code:    112,
		Message: "write conflict",
		Name:    "WriteConflict",
	}
}

func TestTxWithRetriesBacksOffExponentially(t *testing.T) {
	mockClient := mocks.NewDBTransactionClient(t)
	mockSession := mocks.NewDBSession(t)

	mockClient.On("StartSession").Return(mockSession, nil).Times(3)
	mockSession.On("WithTransaction", mock.Anything, mock.Anything).
		Return(nil, writeConflictError()).Twice()
	mockSession.On("WithTransaction", mock.Anything, mock.Anything).
		Return("success", nil).Once()
	mockSession.On("EndSession", mock.Anything).Return().Times(3)

	sleepDurations := []time.Duration{}
	utils.SetSleepFunc(func(d time.Duration) {
		sleepDurations = append(sleepDurations, d)
	})
	defer utils.ResetSleepFunc()

	txnFunc := func(sessCtx mongo.SessionContext) (interface{}, error) {
		return "success", nil
	}

	result, err := db.TxWithRetries(context.Background(), mockClient, txnFunc)

	require.NoError(t, err)
	require.Equal(t, "success", result)
	require.Equal(t, []time.Duration{
		100 * time.Millisecond,
		200 * time.Millisecond,
	}, sleepDurations)
}

func TestTxWithRetriesGivesUpAfterMaxAttempts(t *testing.T) {
	mockClient := mocks.NewDBTransactionClient(t)
	mockSession := mocks.NewDBSession(t)

	mockClient.On("StartSession").Return(mockSession, nil).Times(4)
	mockSession.On("WithTransaction", mock.Anything, mock.Anything).
		Return(nil, writeConflictError()).Times(4)
	mockSession.On("EndSession", mock.Anything).Return().Times(4)

	sleepDurations := []time.Duration{}
	utils.SetSleepFunc(func(d time.Duration) {
		sleepDurations = append(sleepDurations, d)
	})
	defer utils.ResetSleepFunc()

	txnFunc := func(sessCtx mongo.SessionContext) (interface{}, error) {
		return nil, writeConflictError()
	}

	result, err := db.TxWithRetries(context.Background(), mockClient, txnFunc)

	require.Error(t, err)
	require.Nil(t, result)
	require.Len(t, sleepDurations, 3)
}

func TestTxWithRetriesDoesNotRetryNonTransientErrors(t *testing.T) {
	mockClient := mocks.NewDBTransactionClient(t)
	mockSession := mocks.NewDBSession(t)

	duplicateErr := &db.DuplicateKeyError{Key: "1", Message: "duplicate"}
	mockClient.On("StartSession").Return(mockSession, nil).Once()
	mockSession.On("WithTransaction", mock.Anything, mock.Anything).
		Return(nil, duplicateErr).Once()
	mockSession.On("EndSession", mock.Anything).Return().Once()

	sleepDurations := []time.Duration{}
	utils.SetSleepFunc(func(d time.Duration) {
		sleepDurations = append(sleepDurations, d)
	})
	defer utils.ResetSleepFunc()

	txnFunc := func(sessCtx mongo.SessionContext) (interface{}, error) {
		return nil, duplicateErr
	}

	result, err := db.TxWithRetries(context.Background(), mockClient, txnFunc)

	require.ErrorIs(t, err, duplicateErr)
	require.Nil(t, result)
	require.Empty(t, sleepDurations)
}
