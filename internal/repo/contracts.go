package repo

import (
	"context"

	"github.com/andreyxaxa/Image-Transformer/internal/entity"
)

type (
	// ImageStore reads and overwrites encoded images addressed by caller-supplied paths.
	ImageStore interface {
		Read(ctx context.Context, path string) ([]byte, error)
		Write(ctx context.Context, path string, data []byte) error
	}

	// ResultStore keeps outcome events per request id for a limited time, so that a
	// caller without a Kafka consumer can collect them.
	ResultStore interface {
		Append(ctx context.Context, events ...*entity.Event) error
		Results(ctx context.Context, requestID string) ([]*entity.Event, error)
	}
)
