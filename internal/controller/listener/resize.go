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

// ResizeListener resizes every path of every request in order. A path that fails is
// logged and skipped; a resize_failed event is sent only when emitFailures is set.
type ResizeListener struct {
	rs     usecase.ResizeUseCase
	es     infrastructure.EventsSender
	logger logger.Interface

	sendTimeout  time.Duration
	emitFailures bool

	inbox *inbox[entity.ResizeRequest]
}

func NewResizeListener(
	rs usecase.ResizeUseCase,
	es infrastructure.EventsSender,
	l logger.Interface,
	queueSize int,
	sendTimeout time.Duration,
	emitFailures bool,
) *ResizeListener {
	if sendTimeout <= 0 {
		sendTimeout = _defaultSendTimeout
	}

	return &ResizeListener{
		rs:           rs,
		es:           es,
		logger:       l,
		sendTimeout:  sendTimeout,
		emitFailures: emitFailures,
		inbox:        newInbox[entity.ResizeRequest](queueSize),
	}
}

func (rl *ResizeListener) Submit(ctx context.Context, req entity.ResizeRequest) error {
	err := rl.inbox.submit(ctx, req)
	if err != nil {
		return fmt.Errorf("ResizeListener - Submit: %w", err)
	}

	return nil
}

// Start launches the loop. Cancelling ctx does not stop it; Shutdown does.
func (rl *ResizeListener) Start(ctx context.Context) error {
	return rl.inbox.run(ctx, "ResizeListener", rl.handle)
}

func (rl *ResizeListener) handle(ctx context.Context, req entity.ResizeRequest) {
	rl.logger.Debug("ResizeListener - request %s: %d paths, factors %gx%g",
		req.ID, len(req.Paths), req.WidthFactor, req.HeightFactor)

	for _, path := range req.Paths {
		err := rl.process(ctx, path, req.WidthFactor, req.HeightFactor)
		if err != nil {
			rl.logger.Error(err, "ResizeListener - handle - rl.process")

			if rl.emitFailures {
				rl.emit(ctx, req.ID, entity.ResizeFailed(path, err))
			}
			continue
		}

		rl.emit(ctx, req.ID, entity.ResizeCompleted(path))
	}
}

func (rl *ResizeListener) process(ctx context.Context, path string, widthFactor, heightFactor float64) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	return rl.rs.Resize(ctx, path, widthFactor, heightFactor)
}

func (rl *ResizeListener) emit(ctx context.Context, id uuid.UUID, event *entity.Event) {
	event.RequestID = id.String()

	ctx, cancel := context.WithTimeout(ctx, rl.sendTimeout)
	defer cancel()

	err := rl.es.SendEvents(ctx, event)
	if err != nil {
		rl.logger.Error(err, "ResizeListener - emit - rl.es.SendEvents")
	}
}

// Shutdown closes the inbound queue and waits for queued requests to finish.
func (rl *ResizeListener) Shutdown(ctx context.Context) error {
	err := rl.inbox.shutdown(ctx)
	if err != nil {
		return fmt.Errorf("ResizeListener - Shutdown: %w", err)
	}

	return nil
}
