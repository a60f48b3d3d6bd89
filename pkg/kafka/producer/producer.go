package producer

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
	_defaultBatchTimeout = 10 * time.Millisecond
)

type Producer struct {
	connAttempts int
	connTimeout  time.Duration
	batchTimeout time.Duration

	brokers []string

	logf func(format string, args ...any)

	Writer *kafka.Writer
}

func New(ctx context.Context, brokers []string, opts ...Option) (*Producer, error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("Kafka Producer - New: no brokers")
	}

	p := &Producer{
		connAttempts: _defaultConnAttempts,
		connTimeout:  _defaultConnTimeout,
		batchTimeout: _defaultBatchTimeout,
		brokers:      brokers,
		logf:         log.Printf,
	}

	for _, opt := range opts {
		opt(p)
	}

	var err error
	for attempts := p.connAttempts; attempts > 0; attempts-- {
		err = p.ping(ctx)
		if err == nil {
			break
		}

		p.logf("Kafka producer is trying to connect, attempts left: %d", attempts-1)

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("Kafka Producer - New: %w", ctx.Err())
		case <-time.After(p.connTimeout):
		}
	}

	if err != nil {
		return nil, fmt.Errorf("Kafka Producer - New - connAttempts == 0: %w", err)
	}

	p.Writer = &kafka.Writer{
		Addr:         kafka.TCP(p.brokers...),
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		BatchTimeout: p.batchTimeout,
	}

	return p, nil
}

func (p *Producer) ping(ctx context.Context) error {
	conn, err := kafka.DialContext(ctx, "tcp", p.brokers[0])
	if err != nil {
		return fmt.Errorf("Kafka Producer - kafka.DialContext: %w", err)
	}
	defer conn.Close()

	_, err = conn.Brokers()
	if err != nil {
		return fmt.Errorf("Kafka Producer - conn.Brokers: %w", err)
	}

	return nil
}

func (p *Producer) Close() error {
	if p.Writer != nil {
		return p.Writer.Close()
	}

	return nil
}
