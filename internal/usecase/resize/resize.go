package resize

import (
	"context"
	"fmt"
	"math"

	"github.com/andreyxaxa/Image-Transformer/internal/entity"
	"github.com/andreyxaxa/Image-Transformer/internal/infrastructure"
	"github.com/andreyxaxa/Image-Transformer/internal/infrastructure/processor"
	"github.com/andreyxaxa/Image-Transformer/pkg/types/errs"
)

// MaxDimension bounds either side of the output raster.
const MaxDimension = 1 << 15

// ResizeUseCase scales an image in place, keeping the format it was detected as.
type ResizeUseCase struct {
	codec       infrastructure.ImageCodec
	jpegQuality int
}

func New(codec infrastructure.ImageCodec, jpegQuality int) *ResizeUseCase {
	if jpegQuality <= 0 {
		jpegQuality = processor.DefaultJPEGQuality
	}

	return &ResizeUseCase{
		codec:       codec,
		jpegQuality: jpegQuality,
	}
}

func (uc *ResizeUseCase) Resize(ctx context.Context, path string, widthFactor, heightFactor float64) error {
	// 1. open, detect, decode
	img, err := uc.codec.Open(ctx, path)
	if err != nil {
		return fmt.Errorf("ResizeUseCase - Resize - uc.codec.Open: %w", err)
	}

	// 2. target size
	width, height, err := TargetSize(img.Width(), img.Height(), widthFactor, heightFactor)
	if err != nil {
		return fmt.Errorf("ResizeUseCase - Resize - TargetSize: %w", err)
	}

	// 3. resample
	resized := uc.codec.Resize(img.Image, width, height)

	// 4. re-encode in the source format
	var opts processor.EncodeOptions

	switch img.Format {
	case entity.JPEG:
		opts.Quality = float64(uc.jpegQuality)
	case entity.WEBP:
		opts.Lossless = true
	}

	out, err := uc.codec.Encode(resized, img.Format, opts)
	if err != nil {
		return fmt.Errorf("ResizeUseCase - Resize - uc.codec.Encode: %w", err)
	}

	// 5. overwrite the source
	err = uc.codec.Save(ctx, path, out)
	if err != nil {
		return fmt.Errorf("ResizeUseCase - Resize - uc.codec.Save: %w", err)
	}

	return nil
}

// TargetSize truncates toward zero: 0.5 * 101 gives 50, not 51.
func TargetSize(width, height int, widthFactor, heightFactor float64) (int, int, error) {
	fw := float64(width) * widthFactor
	fh := float64(height) * heightFactor

	if !validFactor(widthFactor) || !validFactor(heightFactor) || fw >= MaxDimension+1 || fh >= MaxDimension+1 {
		return 0, 0, fmt.Errorf("%w: %dx%d scaled by %gx%g",
			errs.ErrInvalidDimensions, width, height, widthFactor, heightFactor)
	}

	w, h := int(fw), int(fh)
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("%w: %dx%d scaled by %gx%g gives %dx%d",
			errs.ErrInvalidDimensions, width, height, widthFactor, heightFactor, w, h)
	}

	return w, h, nil
}

func validFactor(f float64) bool {
	return f > 0 && !math.IsInf(f, 0)
}
