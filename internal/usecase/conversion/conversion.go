package conversion

import (
	"context"
	"fmt"

	"github.com/andreyxaxa/Image-Transformer/internal/entity"
	"github.com/andreyxaxa/Image-Transformer/internal/infrastructure"
	"github.com/andreyxaxa/Image-Transformer/internal/infrastructure/processor"
)

// ConversionUseCase turns any supported raster into lossy WEBP bytes. Nothing is written to disk.
type ConversionUseCase struct {
	codec infrastructure.ImageCodec
}

func New(codec infrastructure.ImageCodec) *ConversionUseCase {
	return &ConversionUseCase{codec: codec}
}

func (uc *ConversionUseCase) Convert(ctx context.Context, path string, quality float64) ([]byte, error) {
	img, err := uc.codec.Open(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("ConversionUseCase - Convert - uc.codec.Open: %w", err)
	}

	out, err := uc.codec.Encode(img.Image, entity.WEBP, processor.EncodeOptions{
		Quality: quality,
	})
	if err != nil {
		return nil, fmt.Errorf("ConversionUseCase - Convert - uc.codec.Encode: %w", err)
	}

	return out, nil
}
