package logsink

import (
	"context"

	"github.com/andreyxaxa/Image-Transformer/internal/entity"
	"github.com/andreyxaxa/Image-Transformer/pkg/logger"
)

// EventLogger is the outcome sink used when Kafka is disabled.
type EventLogger struct {
	logger logger.Interface
}

func New(l logger.Interface) *EventLogger {
	return &EventLogger{logger: l}
}

func (s *EventLogger) SendEvents(_ context.Context, events ...*entity.Event) error {
	for _, e := range events {
		switch e.Type {
		case entity.ConversionFailedEvent, entity.ResizeFailedEvent:
			s.logger.Warn("event %s: input=%s error=%s", e.Type, e.Input, e.Error)
		default:
			s.logger.Info("event %s: input=%s output_bytes=%d", e.Type, e.Input, len(e.Output))
		}
	}

	return nil
}

func (s *EventLogger) Close() error {
	return nil
}
