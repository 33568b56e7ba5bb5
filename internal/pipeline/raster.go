package pipeline

import (
	"image"

	"github.com/AnyUserName/oilpaint/internal/oilpaint"
	"github.com/disintegration/imaging"
)

// toFilterImage flattens any decoded image into the filter's row-major
// RGBA8 buffer with straight (non-premultiplied) alpha.
func toFilterImage(img image.Image) *oilpaint.Image {
	nrgba := imaging.Clone(img) // origin (0,0), stride 4*w
	b := nrgba.Bounds()
	return &oilpaint.Image{Width: b.Dx(), Height: b.Dy(), Pix: nrgba.Pix}
}

// toNRGBA wraps a filter buffer without copying.
func toNRGBA(img *oilpaint.Image) *image.NRGBA {
	return &image.NRGBA{
		Pix:    img.Pix,
		Stride: img.Width * oilpaint.BytesPerPixel,
		Rect:   image.Rect(0, 0, img.Width, img.Height),
	}
}
