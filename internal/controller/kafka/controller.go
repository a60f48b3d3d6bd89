package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/andreyxaxa/Image-Transformer/internal/controller"
	"github.com/andreyxaxa/Image-Transformer/internal/dto"
	"github.com/andreyxaxa/Image-Transformer/pkg/logger"
	"github.com/andreyxaxa/Image-Transformer/pkg/types/errs"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

const (
	_defaultCommitTimeout = 2 * time.Second
	_defaultSubmitTimeout = 10 * time.Second
	_readRetryDelay       = time.Second
	_submitRetryDelay     = 100 * time.Millisecond
)

type RequestReader interface {
	ReadRequest(ctx context.Context) (kafka.Message, error)
	CommitRequest(ctx context.Context, msg kafka.Message) error
	Close() error
}

// KafkaController reads request messages in partition order and hands each one to
// the listener for its operation. A message is committed once the listener accepted
// it, or once it was found undecodable. A message the listener rejects (busy, closing)
// is retried until accepted or until Shutdown; the next one is not read meanwhile.
type KafkaController struct {
	conv   controller.ConversionSubmitter
	rs     controller.ResizeSubmitter
	rr     RequestReader
	logger logger.Interface

	commitTimeout time.Duration
	submitTimeout time.Duration

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	started atomic.Bool
}

func New(
	conv controller.ConversionSubmitter,
	rs controller.ResizeSubmitter,
	rr RequestReader,
	l logger.Interface,
	commitTimeout time.Duration,
	submitTimeout time.Duration,
) *KafkaController {
	if commitTimeout <= 0 {
		commitTimeout = _defaultCommitTimeout
	}
	if submitTimeout <= 0 {
		submitTimeout = _defaultSubmitTimeout
	}

	return &KafkaController{
		conv:          conv,
		rs:            rs,
		rr:            rr,
		logger:        l,
		commitTimeout: commitTimeout,
		submitTimeout: submitTimeout,
	}
}

func (c *KafkaController) Start(ctx context.Context) error {
	if !c.started.CompareAndSwap(false, true) {
		return fmt.Errorf("KafkaController - Start - controller already started")
	}

	c.ctx, c.cancel = context.WithCancel(ctx)

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()

		for {
			// 1. read the next request
			msg, err := c.rr.ReadRequest(c.ctx)
			if err != nil {
				if c.ctx.Err() != nil {
					return
				}
				c.logger.Error(err, "KafkaController - Start - c.rr.ReadRequest")

				select {
				case <-c.ctx.Done():
					return
				case <-time.After(_readRetryDelay):
				}
				continue
			}

			// 2. hand it to the listener; never fetch past a message it has not accepted
			err = c.dispatch(msg)
			for err != nil && !skippable(err) {
				c.logger.Error(err, "KafkaController - Start - c.dispatch")

				select {
				case <-c.ctx.Done():
					return
				case <-time.After(_submitRetryDelay):
				}

				err = c.dispatch(msg)
			}
			if err != nil {
				c.logger.Warn("KafkaController - skipping message at offset %d: %v", msg.Offset, err)
			}

			// 3. commit
			commitCtx, commitCancel := context.WithTimeout(context.WithoutCancel(c.ctx), c.commitTimeout)
			err = c.rr.CommitRequest(commitCtx, msg)
			commitCancel()
			if err != nil {
				c.logger.Error(err, "KafkaController - Start - c.rr.CommitRequest")
			}
		}
	}()

	return nil
}

func (c *KafkaController) dispatch(msg kafka.Message) error {
	ctx, cancel := context.WithTimeout(c.ctx, c.submitTimeout)
	defer cancel()

	return Dispatch(ctx, msg.Value, c.conv, c.rs)
}

// skippable reports whether a message can never be accepted and is committed without processing.
func skippable(err error) bool {
	return errors.Is(err, errs.ErrInvalidPayload) || errors.Is(err, errs.ErrUnknownOperation)
}

// Dispatch decodes one request document and submits it to the matching listener.
func Dispatch(ctx context.Context, value []byte, conv controller.ConversionSubmitter, rs controller.ResizeSubmitter) error {
	var env dto.Envelope

	err := json.Unmarshal(value, &env)
	if err != nil {
		return fmt.Errorf("Dispatch - json.Unmarshal: %w: %w", errs.ErrInvalidPayload, err)
	}

	switch env.Operation {
	case dto.OperationConvert:
		req, err := dto.Unmarshal[dto.ConvertRequest](value)
		if err != nil {
			return fmt.Errorf("Dispatch: %w", err)
		}

		err = conv.Submit(ctx, req.ToEntity(uuid.New()))
		if err != nil {
			return fmt.Errorf("Dispatch - conv.Submit: %w", err)
		}
	case dto.OperationResize:
		req, err := dto.Unmarshal[dto.ResizeRequest](value)
		if err != nil {
			return fmt.Errorf("Dispatch: %w", err)
		}

		err = rs.Submit(ctx, req.ToEntity(uuid.New()))
		if err != nil {
			return fmt.Errorf("Dispatch - rs.Submit: %w", err)
		}
	default:
		return fmt.Errorf("Dispatch: %w: %q", errs.ErrUnknownOperation, env.Operation)
	}

	return nil
}

func (c *KafkaController) Shutdown(ctx context.Context) error {
	if !c.started.Load() {
		return nil
	}

	if c.cancel != nil {
		c.cancel()
	}

	done := make(chan struct{})

	go func() {
		c.wg.Wait()
		c.rr.Close()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("KafkaController - Shutdown: %w", ctx.Err())
	}
}
