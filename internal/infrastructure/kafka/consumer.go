package kafka

import (
	"context"
	"fmt"

	"github.com/andreyxaxa/Image-Transformer/pkg/kafka/consumer"
	"github.com/segmentio/kafka-go"
)

// RequestConsumer reads request messages with manual commits.
type RequestConsumer struct {
	*consumer.Consumer
}

func NewRequestConsumer(consumer *consumer.Consumer) *RequestConsumer {
	return &RequestConsumer{consumer}
}

func (rc *RequestConsumer) ReadRequest(ctx context.Context) (kafka.Message, error) {
	msg, err := rc.Reader.FetchMessage(ctx)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("RequestConsumer - ReadRequest - rc.Reader.FetchMessage: %w", err)
	}

	return msg, nil
}

func (rc *RequestConsumer) CommitRequest(ctx context.Context, msg kafka.Message) error {
	err := rc.Reader.CommitMessages(ctx, msg)
	if err != nil {
		return fmt.Errorf("RequestConsumer - CommitRequest - rc.Reader.CommitMessages: %w", err)
	}

	return nil
}

func (rc *RequestConsumer) Close() error {
	err := rc.Consumer.Close()
	if err != nil {
		return fmt.Errorf("RequestConsumer - Close: %w", err)
	}

	return nil
}
