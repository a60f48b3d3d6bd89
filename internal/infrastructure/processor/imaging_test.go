package processor_test

import (
	"bytes"
	"context"
	"image"
	"image/jpeg"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/andreyxaxa/Image-Transformer/internal/entity"
	"github.com/andreyxaxa/Image-Transformer/internal/infrastructure/processor"
	"github.com/andreyxaxa/Image-Transformer/internal/repo/persistent"
	"github.com/andreyxaxa/Image-Transformer/internal/testutil"
	"github.com/andreyxaxa/Image-Transformer/pkg/types/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	xwebp "golang.org/x/image/webp"
)

func newCodec() *processor.Codec {
	return processor.New(persistent.NewFileRepo())
}

func TestDetectFormat(t *testing.T) {
	src := testutil.Gradient(8, 4)

	tests := []struct {
		name string
		data []byte
		want entity.Format
	}{
		{name: "png", data: testutil.PNG(t, src), want: entity.PNG},
		{name: "jpeg", data: testutil.JPEG(t, src), want: entity.JPEG},
		{name: "webp", data: testutil.WEBP(t, src), want: entity.WEBP},
		{name: "gif magic", data: []byte("GIF89a\x01\x00\x01\x00"), want: entity.Unknown},
		{name: "text", data: []byte("definitely not an image"), want: entity.Unknown},
		{name: "empty", data: nil, want: entity.Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, processor.DetectFormat(tt.data))
		})
	}
}

func TestCodec_Open(t *testing.T) {
	dir := t.TempDir()
	src := testutil.Gradient(20, 10)
	codec := newCodec()
	ctx := context.Background()

	t.Run("detects by content, not extension", func(t *testing.T) {
		path := testutil.WriteFile(t, dir, "really-a-jpeg.png", testutil.JPEG(t, src))

		img, err := codec.Open(ctx, path)
		require.NoError(t, err)
		assert.Equal(t, entity.JPEG, img.Format)
		assert.Equal(t, 20, img.Width())
		assert.Equal(t, 10, img.Height())
	})

	t.Run("webp", func(t *testing.T) {
		path := testutil.WriteFile(t, dir, "img.webp", testutil.WEBP(t, src))

		img, err := codec.Open(ctx, path)
		require.NoError(t, err)
		assert.Equal(t, entity.WEBP, img.Format)
		assert.Equal(t, 20, img.Width())
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := codec.Open(ctx, filepath.Join(dir, "nope.png"))
		require.ErrorIs(t, err, errs.ErrIO)
	})

	t.Run("unsupported format", func(t *testing.T) {
		path := testutil.WriteFile(t, dir, "anim.gif", []byte("GIF89a\x01\x00\x01\x00\x00\x00\x00;"))

		_, err := codec.Open(ctx, path)
		require.ErrorIs(t, err, errs.ErrUnsupportedFormat)
	})

	t.Run("corrupt png", func(t *testing.T) {
		data := testutil.PNG(t, src)
		path := testutil.WriteFile(t, dir, "broken.png", data[:len(data)/2])

		_, err := codec.Open(ctx, path)
		require.ErrorIs(t, err, errs.ErrDecode)
	})
}

func TestCodec_Encode(t *testing.T) {
	codec := newCodec()
	src := testutil.Gradient(16, 9)

	t.Run("png is lossless", func(t *testing.T) {
		out, err := codec.Encode(src, entity.PNG, processor.EncodeOptions{})
		require.NoError(t, err)

		decoded, err := png.Decode(bytes.NewReader(out))
		require.NoError(t, err)
		assertSamePixels(t, src, decoded)
	})

	t.Run("jpeg", func(t *testing.T) {
		out, err := codec.Encode(src, entity.JPEG, processor.EncodeOptions{Quality: processor.DefaultJPEGQuality})
		require.NoError(t, err)

		cfg, err := jpeg.DecodeConfig(bytes.NewReader(out))
		require.NoError(t, err)
		assert.Equal(t, 16, cfg.Width)
		assert.Equal(t, 9, cfg.Height)
	})

	t.Run("webp lossy", func(t *testing.T) {
		out, err := codec.Encode(src, entity.WEBP, processor.EncodeOptions{Quality: 50})
		require.NoError(t, err)
		assert.Equal(t, entity.WEBP, processor.DetectFormat(out))

		cfg, err := xwebp.DecodeConfig(bytes.NewReader(out))
		require.NoError(t, err)
		assert.Equal(t, 16, cfg.Width)
		assert.Equal(t, 9, cfg.Height)
	})

	t.Run("webp lossless", func(t *testing.T) {
		out, err := codec.Encode(src, entity.WEBP, processor.EncodeOptions{Lossless: true})
		require.NoError(t, err)

		decoded, err := xwebp.Decode(bytes.NewReader(out))
		require.NoError(t, err)
		assertSamePixels(t, src, decoded)
	})

	t.Run("unsupported target", func(t *testing.T) {
		_, err := codec.Encode(src, entity.Unknown, processor.EncodeOptions{})
		require.ErrorIs(t, err, errs.ErrUnsupportedTarget)
	})
}

func TestCodec_Resize(t *testing.T) {
	out := newCodec().Resize(testutil.Gradient(200, 100), 100, 50)

	assert.Equal(t, image.Rect(0, 0, 100, 50), out.Bounds())
}

func assertSamePixels(t *testing.T, want, got image.Image) {
	t.Helper()

	require.Equal(t, want.Bounds().Size(), got.Bounds().Size())

	wb, gb := want.Bounds(), got.Bounds()
	for y := 0; y < wb.Dy(); y++ {
		for x := 0; x < wb.Dx(); x++ {
			wr, wg, wbl, wa := want.At(wb.Min.X+x, wb.Min.Y+y).RGBA()
			gr, gg, gbl, ga := got.At(gb.Min.X+x, gb.Min.Y+y).RGBA()
			if wr != gr || wg != gg || wbl != gbl || wa != ga {
				t.Fatalf("pixel (%d,%d) differs", x, y)
			}
		}
	}
}
