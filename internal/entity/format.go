package entity

import "image"

type Format string

const (
	PNG     Format = "png"
	JPEG    Format = "jpeg"
	WEBP    Format = "webp"
	Unknown Format = "unknown"
)

// DecodedImage is a raster together with the format its bytes were detected as.
type DecodedImage struct {
	Format Format
	Image  image.Image
}

func (d *DecodedImage) Width() int {
	return d.Image.Bounds().Dx()
}

func (d *DecodedImage) Height() int {
	return d.Image.Bounds().Dy()
}
