package infrastructure

import (
	"context"
	"image"

	"github.com/andreyxaxa/Image-Transformer/internal/entity"
	"github.com/andreyxaxa/Image-Transformer/internal/infrastructure/processor"
)

type (
	ImageCodec interface {
		Open(ctx context.Context, path string) (*entity.DecodedImage, error)
		Encode(img image.Image, target entity.Format, opts processor.EncodeOptions) ([]byte, error)
		Resize(img image.Image, width, height int) image.Image
		Save(ctx context.Context, path string, data []byte) error
	}

	// EventsSender delivers outcome events back to the caller.
	EventsSender interface {
		SendEvents(ctx context.Context, events ...*entity.Event) error
		Close() error
	}
)
