package client

import (
	"context"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/sqs"
	"github.com/thirdfi/fund-orchestrator/internal/config"
)

const sqsWaitTimeSeconds = 20

type SqsClient struct {
	client    *sqs.SQS
	queueName string
	queueURL  string
	stopCh    chan struct{}
	stopOnce  sync.Once
}

func NewSqsClient(cfg *config.QueueConfig, queueName string) (*SqsClient, error) {
	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(cfg.Region),
	})
	if err != nil {
		return nil, err
	}
	client := sqs.New(sess)

	queueURL := cfg.RelayDeliveryQueueUrl
	if queueName != RelayDeliveryQueueName {
		output, err := client.GetQueueUrl(&sqs.GetQueueUrlInput{
			QueueName: aws.String(queueName),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to resolve queue url for %s: %w", queueName, err)
		}
		queueURL = *output.QueueUrl
	}

	return &SqsClient{
		client:    client,
		queueName: queueName,
		queueURL:  queueURL,
		stopCh:    make(chan struct{}),
	}, nil
}

func (c *SqsClient) SendMessage(ctx context.Context, messageBody string) error {
	_, err := c.client.SendMessageWithContext(ctx, &sqs.SendMessageInput{
		QueueUrl:    &c.queueURL,
		MessageBody: aws.String(messageBody),
	})
	return err
}

// ReceiveMessages long-polls the queue and forwards messages onto a channel
// until Stop is called.
func (c *SqsClient) ReceiveMessages() (<-chan QueueMessage, error) {
	out := make(chan QueueMessage)
	go func() {
		defer close(out)
		for {
			select {
			case <-c.stopCh:
				return
			default:
			}

			output, err := c.client.ReceiveMessage(&sqs.ReceiveMessageInput{
				QueueUrl:        &c.queueURL,
				WaitTimeSeconds: aws.Int64(sqsWaitTimeSeconds),
			})
			if err != nil {
				continue
			}
			for _, message := range output.Messages {
				out <- QueueMessage{
					Body:    *message.Body,
					Receipt: *message.ReceiptHandle,
				}
			}
		}
	}()
	return out, nil
}

func (c *SqsClient) DeleteMessage(receipt string) error {
	_, err := c.client.DeleteMessage(&sqs.DeleteMessageInput{
		QueueUrl:      &c.queueURL,
		ReceiptHandle: &receipt,
	})
	return err
}

func (c *SqsClient) GetQueueName() string {
	return c.queueName
}

func (c *SqsClient) Ping(ctx context.Context) error {
	_, err := c.client.GetQueueAttributesWithContext(ctx, &sqs.GetQueueAttributesInput{
		QueueUrl:       &c.queueURL,
		AttributeNames: []*string{aws.String(sqs.QueueAttributeNameApproximateNumberOfMessages)},
	})
	return err
}

func (c *SqsClient) Stop() error {
	c.stopOnce.Do(func() {
		close(c.stopCh)
	})
	return nil
}
