package persistent

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/andreyxaxa/Image-Transformer/internal/entity"
	"github.com/andreyxaxa/Image-Transformer/pkg/redisclient"
	"github.com/andreyxaxa/Image-Transformer/pkg/types/errs"
	"github.com/redis/go-redis/v9"
)

const (
	_defaultResultTTL    = 15 * time.Minute
	_defaultResultPrefix = "image-transformer:result:"
)

// ResultRedisRepo keeps the events of one request in a Redis list that expires ttl
// after its last append.
type ResultRedisRepo struct {
	*redisclient.RedisClient
	ttl    time.Duration
	prefix string
}

func NewResultRedisRepo(rc *redisclient.RedisClient, ttl time.Duration, prefix string) *ResultRedisRepo {
	if ttl <= 0 {
		ttl = _defaultResultTTL
	}
	if prefix == "" {
		prefix = _defaultResultPrefix
	}

	return &ResultRedisRepo{
		RedisClient: rc,
		ttl:         ttl,
		prefix:      prefix,
	}
}

func (r *ResultRedisRepo) key(requestID string) string {
	return r.prefix + requestID
}

func (r *ResultRedisRepo) Append(ctx context.Context, events ...*entity.Event) error {
	_, err := r.Client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, e := range events {
			if e.RequestID == "" {
				continue
			}

			value, err := json.Marshal(e)
			if err != nil {
				return fmt.Errorf("json.Marshal: %w", err)
			}

			pipe.RPush(ctx, r.key(e.RequestID), value)
			pipe.Expire(ctx, r.key(e.RequestID), r.ttl)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("ResultRedisRepo - Append - r.Client.TxPipelined: %w: %w", errs.ErrIO, err)
	}

	return nil
}

func (r *ResultRedisRepo) Results(ctx context.Context, requestID string) ([]*entity.Event, error) {
	raw, err := r.Client.LRange(ctx, r.key(requestID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("ResultRedisRepo - Results - r.Client.LRange: %w: %w", errs.ErrIO, err)
	}

	events := make([]*entity.Event, 0, len(raw))
	for _, item := range raw {
		var e entity.Event

		err = json.Unmarshal([]byte(item), &e)
		if err != nil {
			return nil, fmt.Errorf("ResultRedisRepo - Results - json.Unmarshal: %w", err)
		}

		events = append(events, &e)
	}

	return events, nil
}
