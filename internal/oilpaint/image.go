// Package oilpaint implements the oil-paint stylization filter.
//
// Every output pixel takes the average colour of the most frequent
// luminance bucket among its neighbours:
//   - Quantize assigns each pixel a bucket in [0, levels] and caches its colour
//   - Aggregate histograms each pixel's square neighbourhood and averages
//     the winning bucket
//
// The filter is pure: no I/O, no package state, deterministic output for
// identical input regardless of worker count.
package oilpaint

import (
	"github.com/pkg/errors"
)

// BytesPerPixel is the stride of one RGBA8 sample.
const BytesPerPixel = 4

var (
	// ErrInputShape reports a pixel buffer whose length is not width*height*4.
	ErrInputShape = errors.New("pixel buffer does not match image dimensions")

	// ErrNegativeParameter reports a negative levels, radius or workers value.
	ErrNegativeParameter = errors.New("parameter must be non-negative")
)

// Image is a row-major RGBA8 pixel buffer.
type Image struct {
	Width  int
	Height int
	Pix    []byte // len = Width*Height*4
}

// NewImage wraps pix without copying it.
func NewImage(width, height int, pix []byte) (*Image, error) {
	img := &Image{Width: width, Height: height, Pix: pix}
	if err := img.validate(); err != nil {
		return nil, err
	}
	return img, nil
}

func (img *Image) validate() error {
	if img == nil {
		return errors.Wrap(ErrInputShape, "nil image")
	}
	if img.Width <= 0 || img.Height <= 0 {
		return errors.Wrapf(ErrInputShape, "invalid dimensions %dx%d", img.Width, img.Height)
	}
	if want := img.Width * img.Height * BytesPerPixel; len(img.Pix) != want {
		return errors.Wrapf(ErrInputShape, "%dx%d needs %d bytes, got %d",
			img.Width, img.Height, want, len(img.Pix))
	}
	return nil
}

// RGB is an opaque colour triple.
type RGB struct {
	R, G, B uint8
}

// Params controls one filter invocation. Passed by value.
type Params struct {
	// Levels is the quantization count; buckets range over [0, Levels].
	Levels int
	// Radius is the neighbourhood half-width.
	Radius int
	// Boundary selects which neighbours may be sampled.
	Boundary BoundaryPolicy
	// Workers is the number of row workers; 0 or 1 runs serially.
	Workers int
}

// Validate rejects negative parameters instead of coercing them.
func (p Params) Validate() error {
	if p.Levels < 0 {
		return errors.Wrapf(ErrNegativeParameter, "levels=%d", p.Levels)
	}
	if p.Radius < 0 {
		return errors.Wrapf(ErrNegativeParameter, "radius=%d", p.Radius)
	}
	if p.Workers < 0 {
		return errors.Wrapf(ErrNegativeParameter, "workers=%d", p.Workers)
	}
	if !p.Boundary.valid() {
		return errors.Errorf("unknown boundary policy %d", p.Boundary)
	}
	return nil
}
