package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/andreyxaxa/Image-Transformer/internal/entity"
	"github.com/andreyxaxa/Image-Transformer/pkg/kafka/producer"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

const (
	HeaderEventID   = "event_id"
	HeaderEventType = "event_type"
)

type EventProducer struct {
	*producer.Producer
	topic string
}

func NewEventProducer(producer *producer.Producer, topic string) *EventProducer {
	return &EventProducer{
		producer,
		topic,
	}
}

func (ep *EventProducer) SendEvents(ctx context.Context, events ...*entity.Event) error {
	msgsToSend, err := BuildMessages(ep.topic, events...)
	if err != nil {
		return fmt.Errorf("EventProducer - SendEvents - BuildMessages: %w", err)
	}

	if len(msgsToSend) == 0 {
		return nil
	}

	err = ep.Writer.WriteMessages(ctx, msgsToSend...)
	if err != nil {
		return fmt.Errorf("EventProducer - SendEvents - ep.Writer.WriteMessages: %w", err)
	}

	return nil
}

// BuildMessages keys every message by its input path so that all outcomes for one
// image land on the same partition.
func BuildMessages(topic string, events ...*entity.Event) ([]kafka.Message, error) {
	msgs := make([]kafka.Message, 0, len(events))

	for _, event := range events {
		value, err := json.Marshal(event)
		if err != nil {
			return nil, fmt.Errorf("BuildMessages - json.Marshal: %w", err)
		}

		msgs = append(msgs, kafka.Message{
			Topic: topic,
			Key:   []byte(event.Input),
			Value: value,
			Headers: []kafka.Header{
				{Key: HeaderEventID, Value: []byte(uuid.NewString())},
				{Key: HeaderEventType, Value: []byte(event.Type)},
			},
		})
	}

	return msgs, nil
}

func (ep *EventProducer) Close() error {
	err := ep.Producer.Close()
	if err != nil {
		return fmt.Errorf("EventProducer - Close: %w", err)
	}

	return nil
}
