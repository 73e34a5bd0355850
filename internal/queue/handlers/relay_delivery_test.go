package handlers_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	queuehandlers "github.com/thirdfi/fund-orchestrator/internal/queue/handlers"
	"github.com/thirdfi/fund-orchestrator/internal/services"
	"github.com/thirdfi/fund-orchestrator/internal/types"
)

func TestRelayDeliveryHandlerRejectsMalformedBody(t *testing.T) {
	handler := queuehandlers.NewQueueHandler(&services.Services{})

	err := handler.RelayDeliveryHandler(context.Background(), "not json")
	require.NotNil(t, err)
	require.Equal(t, types.BadRequest, err.ErrorCode)
	require.Less(t, err.StatusCode, 500)
}

func TestRelayDeliveryHandlerRejectsMissingTransferId(t *testing.T) {
	handler := queuehandlers.NewQueueHandler(&services.Services{})

	err := handler.RelayDeliveryHandler(context.Background(), `{"event_type":2,"amount_usd":100}`)
	require.NotNil(t, err)
	require.Equal(t, types.ValidationError, err.ErrorCode)
}

func TestRelayDeliveryHandlerRejectsZeroAmount(t *testing.T) {
	handler := queuehandlers.NewQueueHandler(&services.Services{})

	err := handler.RelayDeliveryHandler(context.Background(), `{"event_type":2,"transfer_id":"t-1","amount_usd":0}`)
	require.NotNil(t, err)
	require.Equal(t, types.ValidationError, err.ErrorCode)
}
