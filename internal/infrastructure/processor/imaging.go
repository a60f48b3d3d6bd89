package processor

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"

	"github.com/andreyxaxa/Image-Transformer/internal/entity"
	"github.com/andreyxaxa/Image-Transformer/internal/repo"
	"github.com/andreyxaxa/Image-Transformer/pkg/types/errs"
	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/gabriel-vasile/mimetype"
	xwebp "golang.org/x/image/webp"
)

const DefaultJPEGQuality = 80

type EncodeOptions struct {
	// Quality is 0-100. Used by JPEG and by lossy WEBP.
	Quality  float64
	Lossless bool
}

// Codec opens images through an ImageStore, detects their format from content and
// re-encodes rasters into PNG, JPEG or WEBP.
type Codec struct {
	store repo.ImageStore
}

func New(store repo.ImageStore) *Codec {
	return &Codec{store: store}
}

func (c *Codec) Open(ctx context.Context, path string) (*entity.DecodedImage, error) {
	data, err := c.store.Read(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("Codec - Open - c.store.Read: %w", err)
	}

	img, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("Codec - Open: %w", err)
	}

	return img, nil
}

// DetectFormat looks only at the magic bytes, never at a file name.
func DetectFormat(data []byte) entity.Format {
	mtype := mimetype.Detect(data)

	switch {
	case mtype.Is("image/png"):
		return entity.PNG
	case mtype.Is("image/jpeg"):
		return entity.JPEG
	case mtype.Is("image/webp"):
		return entity.WEBP
	default:
		return entity.Unknown
	}
}

func Decode(data []byte) (*entity.DecodedImage, error) {
	format := DetectFormat(data)

	var (
		img image.Image
		err error
	)

	r := bytes.NewReader(data)

	switch format {
	case entity.PNG:
		img, err = png.Decode(r)
	case entity.JPEG:
		img, err = jpeg.Decode(r)
	case entity.WEBP:
		img, err = xwebp.Decode(r)
	default:
		return nil, fmt.Errorf("Decode: %w: detected %s", errs.ErrUnsupportedFormat, mimetype.Detect(data).String())
	}

	if err != nil {
		return nil, fmt.Errorf("Decode - %s: %w: %w", format, errs.ErrDecode, err)
	}

	return &entity.DecodedImage{
		Format: format,
		Image:  img,
	}, nil
}

func (c *Codec) Encode(img image.Image, target entity.Format, opts EncodeOptions) ([]byte, error) {
	var buf bytes.Buffer
	var err error

	switch target {
	case entity.PNG:
		err = imaging.Encode(&buf, img, imaging.PNG)
	case entity.JPEG:
		err = imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(clampQuality(opts.Quality)))
	case entity.WEBP:
		err = webp.Encode(&buf, img, &webp.Options{
			Lossless: opts.Lossless,
			Quality:  float32(opts.Quality),
		})
	default:
		return nil, fmt.Errorf("Codec - Encode: %w: %s", errs.ErrUnsupportedTarget, target)
	}

	if err != nil {
		return nil, fmt.Errorf("Codec - Encode - %s: %w: %w", target, errs.ErrEncode, err)
	}

	return buf.Bytes(), nil
}

// Resize scales to exactly width x height with a 3-lobe Lanczos filter.
func (c *Codec) Resize(img image.Image, width, height int) image.Image {
	return imaging.Resize(img, width, height, imaging.Lanczos)
}

func (c *Codec) Save(ctx context.Context, path string, data []byte) error {
	err := c.store.Write(ctx, path, data)
	if err != nil {
		return fmt.Errorf("Codec - Save - c.store.Write: %w", err)
	}

	return nil
}

func clampQuality(q float64) int {
	switch {
	case q < 1:
		return 1
	case q > 100:
		return 100
	default:
		return int(q)
	}
}
