package listener

import (
	"context"
	"fmt"
	"time"

	"github.com/andreyxaxa/Image-Transformer/internal/entity"
	"github.com/andreyxaxa/Image-Transformer/internal/infrastructure"
	"github.com/andreyxaxa/Image-Transformer/internal/usecase"
	"github.com/andreyxaxa/Image-Transformer/pkg/logger"
	"github.com/google/uuid"
)

// ConversionListener converts every path of every request, in order, and emits exactly
// one completion or failure event per path.
type ConversionListener struct {
	conv   usecase.ConversionUseCase
	es     infrastructure.EventsSender
	logger logger.Interface

	sendTimeout time.Duration

	inbox *inbox[entity.ConversionRequest]
}

func NewConversionListener(
	conv usecase.ConversionUseCase,
	es infrastructure.EventsSender,
	l logger.Interface,
	queueSize int,
	sendTimeout time.Duration,
) *ConversionListener {
	if sendTimeout <= 0 {
		sendTimeout = _defaultSendTimeout
	}

	return &ConversionListener{
		conv:        conv,
		es:          es,
		logger:      l,
		sendTimeout: sendTimeout,
		inbox:       newInbox[entity.ConversionRequest](queueSize),
	}
}

func (cl *ConversionListener) Submit(ctx context.Context, req entity.ConversionRequest) error {
	err := cl.inbox.submit(ctx, req)
	if err != nil {
		return fmt.Errorf("ConversionListener - Submit: %w", err)
	}

	return nil
}

// Start launches the loop. Cancelling ctx does not stop it; Shutdown does.
func (cl *ConversionListener) Start(ctx context.Context) error {
	return cl.inbox.run(ctx, "ConversionListener", cl.handle)
}

func (cl *ConversionListener) handle(ctx context.Context, req entity.ConversionRequest) {
	cl.logger.Debug("ConversionListener - request %s: %d paths, quality %g", req.ID, len(req.Paths), req.Quality)

	for _, path := range req.Paths {
		cl.emit(ctx, req.ID, cl.process(ctx, path, req.Quality))
	}
}

func (cl *ConversionListener) process(ctx context.Context, path string, quality float64) (event *entity.Event) {
	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("panic: %v", r)
			cl.logger.Error(err, "ConversionListener - process - panic")
			event = entity.ConversionFailed(path, err)
		}
	}()

	out, err := cl.conv.Convert(ctx, path, quality)
	if err != nil {
		cl.logger.Warn("ConversionListener - process - cl.conv.Convert: %v", err)

		return entity.ConversionFailed(path, err)
	}

	return entity.ConversionCompleted(path, out)
}

func (cl *ConversionListener) emit(ctx context.Context, id uuid.UUID, event *entity.Event) {
	event.RequestID = id.String()

	ctx, cancel := context.WithTimeout(ctx, cl.sendTimeout)
	defer cancel()

	err := cl.es.SendEvents(ctx, event)
	if err != nil {
		cl.logger.Error(err, "ConversionListener - emit - cl.es.SendEvents")
	}
}

// Shutdown closes the inbound queue and waits for queued requests to finish.
func (cl *ConversionListener) Shutdown(ctx context.Context) error {
	err := cl.inbox.shutdown(ctx)
	if err != nil {
		return fmt.Errorf("ConversionListener - Shutdown: %w", err)
	}

	return nil
}
