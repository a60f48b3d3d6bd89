package redisclient

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	_defaultConnAttempts = 10
	_defaultConnTimeout  = time.Second
)

type RedisClient struct {
	connAttempts int
	connTimeout  time.Duration

	addr     string
	password string
	db       int

	logf func(format string, args ...any)

	Client *redis.Client
}

func New(ctx context.Context, addr string, opts ...Option) (*RedisClient, error) {
	if addr == "" {
		return nil, fmt.Errorf("RedisClient - New: empty address")
	}

	rc := &RedisClient{
		connAttempts: _defaultConnAttempts,
		connTimeout:  _defaultConnTimeout,
		addr:         addr,
		logf:         log.Printf,
	}

	for _, opt := range opts {
		opt(rc)
	}

	rc.Client = redis.NewClient(&redis.Options{
		Addr:     rc.addr,
		Password: rc.password,
		DB:       rc.db,
	})

	var err error
	for attempts := rc.connAttempts; attempts > 0; attempts-- {
		err = rc.Client.Ping(ctx).Err()
		if err == nil {
			break
		}

		rc.logf("Redis is trying to connect, attempts left: %d", attempts-1)

		select {
		case <-ctx.Done():
			rc.Client.Close()
			return nil, fmt.Errorf("RedisClient - New: %w", ctx.Err())
		case <-time.After(rc.connTimeout):
		}
	}

	if err != nil {
		rc.Client.Close()
		return nil, fmt.Errorf("RedisClient - New - connAttempts == 0: %w", err)
	}

	return rc, nil
}

func (rc *RedisClient) Close() error {
	if rc.Client != nil {
		return rc.Client.Close()
	}

	return nil
}
