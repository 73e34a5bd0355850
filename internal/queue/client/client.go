package client

import (
	"context"

	"github.com/thirdfi/fund-orchestrator/internal/config"
)

type QueueMessage struct {
	Body    string
	Receipt string
}

// A common interface for queue clients regardless if it's a SQS, RabbitMQ, etc.
type QueueClient interface {
	SendMessage(ctx context.Context, messageBody string) error
	ReceiveMessages() (<-chan QueueMessage, error)
	DeleteMessage(receipt string) error
	GetQueueName() string
	Ping(ctx context.Context) error
	Stop() error
}

func NewQueueClient(cfg *config.QueueConfig, queueName string) (QueueClient, error) {
	switch cfg.Backend {
	case config.QueueBackendSqs:
		return NewSqsClient(cfg, queueName)
	default:
		return NewRabbitMqClient(cfg, queueName)
	}
}
