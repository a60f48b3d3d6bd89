package fanout

import (
	"context"
	"errors"
	"fmt"

	"github.com/andreyxaxa/Image-Transformer/internal/entity"
	"github.com/andreyxaxa/Image-Transformer/internal/infrastructure"
)

// Sender delivers every event to each of its senders. A failing sender does not
// keep the event from the others.
type Sender struct {
	senders []infrastructure.EventsSender
}

func New(senders ...infrastructure.EventsSender) *Sender {
	return &Sender{senders: senders}
}

func (s *Sender) SendEvents(ctx context.Context, events ...*entity.Event) error {
	var errList []error

	for _, sender := range s.senders {
		err := sender.SendEvents(ctx, events...)
		if err != nil {
			errList = append(errList, err)
		}
	}

	if len(errList) > 0 {
		return fmt.Errorf("fanout - Sender - SendEvents: %w", errors.Join(errList...))
	}

	return nil
}

func (s *Sender) Close() error {
	var errList []error

	for _, sender := range s.senders {
		err := sender.Close()
		if err != nil {
			errList = append(errList, err)
		}
	}

	return errors.Join(errList...)
}
