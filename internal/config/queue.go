package config

import (
	"fmt"
)

const (
	QueueBackendRabbitMq = "rabbitmq"
	QueueBackendSqs      = "sqs"
)

type QueueConfig struct {
	Backend                string `mapstructure:"backend"`
	Url                    string `mapstructure:"url"`
	QueueUser              string `mapstructure:"user"`
	QueuePassword          string `mapstructure:"password"`
	Region                 string `mapstructure:"region"`
	RelayDeliveryQueueUrl  string `mapstructure:"relay-delivery-queue-url"`
	QueueProcessingTimeout int    `mapstructure:"processing-timeout"`
}

func (cfg *QueueConfig) Validate() error {
	switch cfg.Backend {
	case QueueBackendRabbitMq:
		if cfg.Url == "" {
			return fmt.Errorf("missing queue url")
		}
		if cfg.QueueUser == "" || cfg.QueuePassword == "" {
			return fmt.Errorf("missing queue credentials")
		}
	case QueueBackendSqs:
		if cfg.Region == "" {
			return fmt.Errorf("missing queue region")
		}
		if cfg.RelayDeliveryQueueUrl == "" {
			return fmt.Errorf("missing relay delivery queue URL")
		}
	default:
		return fmt.Errorf("unsupported queue backend: %s", cfg.Backend)
	}

	if cfg.QueueProcessingTimeout <= 0 {
		return fmt.Errorf("queue processing timeout must be a positive integer")
	}
	return nil
}
