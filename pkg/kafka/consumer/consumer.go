package consumer

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/segmentio/kafka-go"
)

const (
	_defaultConnAttempts = 10
	_defaultConnTimeout  = time.Second
	_defaultMinBytes     = 1
	_defaultMaxBytes     = 1e6
)

type Consumer struct {
	connAttempts int
	connTimeout  time.Duration
	maxBytes     int

	brokers []string
	groupID string
	topic   string

	logf func(format string, args ...any)

	Reader *kafka.Reader
}

func New(ctx context.Context, brokers []string, groupID, topic string, opts ...Option) (*Consumer, error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("Kafka Consumer - New: no brokers")
	}

	c := &Consumer{
		connAttempts: _defaultConnAttempts,
		connTimeout:  _defaultConnTimeout,
		maxBytes:     _defaultMaxBytes,
		brokers:      brokers,
		groupID:      groupID,
		topic:        topic,
		logf:         log.Printf,
	}

	for _, opt := range opts {
		opt(c)
	}

	var err error
	for attempts := c.connAttempts; attempts > 0; attempts-- {
		err = c.ping(ctx)
		if err == nil {
			break
		}

		c.logf("Kafka consumer is trying to connect, attempts left: %d", attempts-1)

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("Kafka Consumer - New: %w", ctx.Err())
		case <-time.After(c.connTimeout):
		}
	}

	if err != nil {
		return nil, fmt.Errorf("Kafka Consumer - New - connAttempts == 0: %w", err)
	}

	c.Reader = kafka.NewReader(kafka.ReaderConfig{
		Brokers:  c.brokers,
		GroupID:  c.groupID,
		Topic:    c.topic,
		MinBytes: _defaultMinBytes,
		MaxBytes: c.maxBytes,
	})

	return c, nil
}

func (c *Consumer) ping(ctx context.Context) error {
	conn, err := kafka.DialContext(ctx, "tcp", c.brokers[0])
	if err != nil {
		return fmt.Errorf("Kafka Consumer - kafka.DialContext: %w", err)
	}
	defer conn.Close()

	_, err = conn.Brokers()
	if err != nil {
		return fmt.Errorf("Kafka Consumer - conn.Brokers: %w", err)
	}

	return nil
}

func (c *Consumer) Close() error {
	if c.Reader != nil {
		return c.Reader.Close()
	}
	return nil
}
