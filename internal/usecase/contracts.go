package usecase

import (
	"context"
)

type (
	ConversionUseCase interface {
		Convert(ctx context.Context, path string, quality float64) ([]byte, error)
	}

	ResizeUseCase interface {
		Resize(ctx context.Context, path string, widthFactor, heightFactor float64) error
	}
)
