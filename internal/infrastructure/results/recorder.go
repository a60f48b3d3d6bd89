package results

import (
	"context"
	"fmt"

	"github.com/andreyxaxa/Image-Transformer/internal/entity"
	"github.com/andreyxaxa/Image-Transformer/internal/repo"
)

// Recorder stores outcome events so the HTTP bridge can serve them by request id.
type Recorder struct {
	store repo.ResultStore
}

func NewRecorder(store repo.ResultStore) *Recorder {
	return &Recorder{store: store}
}

func (r *Recorder) SendEvents(ctx context.Context, events ...*entity.Event) error {
	err := r.store.Append(ctx, events...)
	if err != nil {
		return fmt.Errorf("Recorder - SendEvents - r.store.Append: %w", err)
	}

	return nil
}

// Close leaves the store open; its owner closes it.
func (r *Recorder) Close() error {
	return nil
}
