package controller

import (
	"context"

	"github.com/andreyxaxa/Image-Transformer/internal/entity"
)

type (
	ConversionSubmitter interface {
		Submit(ctx context.Context, req entity.ConversionRequest) error
	}

	ResizeSubmitter interface {
		Submit(ctx context.Context, req entity.ResizeRequest) error
	}

	// ResultReader returns the outcome events recorded so far for a request.
	ResultReader interface {
		Results(ctx context.Context, requestID string) ([]*entity.Event, error)
	}
)
