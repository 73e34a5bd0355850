package queue

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/thirdfi/fund-orchestrator/internal/config"
	"github.com/thirdfi/fund-orchestrator/internal/queue/client"
	"github.com/thirdfi/fund-orchestrator/internal/queue/handlers"
	"github.com/thirdfi/fund-orchestrator/internal/services"
	"github.com/thirdfi/fund-orchestrator/internal/types"
)

type MessageHandler func(ctx context.Context, messageBody string) *types.Error

type UnprocessableMessageHandler func(ctx context.Context, messageBody, receipt string) *types.Error

type Queues struct {
	RelayDeliveryQueueClient client.QueueClient
	Handlers                 *handlers.QueueHandler
	processingTimeout        time.Duration
}

func New(cfg *config.QueueConfig, service *services.Services) *Queues {
	relayDeliveryQueueClient, err := client.NewQueueClient(cfg, client.RelayDeliveryQueueName)
	if err != nil {
		log.Fatal().Err(err).Msg("error while creating RelayDeliveryQueueClient")
	}
	handlers := handlers.NewQueueHandler(service)
	return &Queues{
		RelayDeliveryQueueClient: relayDeliveryQueueClient,
		Handlers:                 handlers,
		processingTimeout:        time.Duration(cfg.QueueProcessingTimeout) * time.Second,
	}
}

// Start all message processing
func (q *Queues) StartReceivingMessages() {
	// start processing delivery confirmations from the bridges
	startQueueMessageProcessing(
		q.RelayDeliveryQueueClient, q.Handlers.RelayDeliveryHandler,
		q.Handlers.Services.SaveUnprocessableMessages, log.Logger, q.processingTimeout,
	)
	// ...add more queues here
}

// Turn off all message processing
func (q *Queues) StopReceivingMessages() {
	if err := q.RelayDeliveryQueueClient.Stop(); err != nil {
		log.Error().Err(err).Str("queueName", q.RelayDeliveryQueueClient.GetQueueName()).
			Msg("error while stopping queue client")
	}
}

// IsConnectionHealthy pings every queue the service consumes.
func (q *Queues) IsConnectionHealthy() error {
	ctx, cancel := context.WithTimeout(context.Background(), q.processingTimeout)
	defer cancel()
	return q.RelayDeliveryQueueClient.Ping(ctx)
}

func startQueueMessageProcessing(
	queueClient client.QueueClient, handler MessageHandler, unprocessableHandler UnprocessableMessageHandler,
	logger zerolog.Logger, timeout time.Duration,
) {
	messagesChan, err := queueClient.ReceiveMessages()
	if err != nil {
		logger.Fatal().Err(err).Str("queueName", queueClient.GetQueueName()).Msg("error setting up message channel from queue")
	}

	go func() {
		for message := range messagesChan {
			// For each message, create a new context with a deadline or timeout
			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			err := handler(ctx, message.Body)
			if err != nil {
				if err.StatusCode >= http.StatusInternalServerError {
					// Transient failure, leave the message for redelivery
					logger.Error().Err(err.Err).Str("queueName", queueClient.GetQueueName()).
						Msg("error while processing message from queue")
					cancel()
					continue
				}

				// The message itself is bad and a retry cannot fix it. Park
				// it for manual replay and take it off the queue.
				logger.Error().Err(err.Err).Str("queueName", queueClient.GetQueueName()).
					Msg("unprocessable message, saving for manual inspection")
				if saveErr := unprocessableHandler(ctx, message.Body, message.Receipt); saveErr != nil {
					cancel()
					continue
				}
			}

			delErr := queueClient.DeleteMessage(message.Receipt)
			if delErr != nil {
				logger.Error().Err(delErr).Str("queueName", queueClient.GetQueueName()).Msg("error while deleting message from queue")
			}
			cancel()
		}
	}()
}
