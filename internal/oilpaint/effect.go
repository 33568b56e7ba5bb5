package oilpaint

import (
	"context"

	"github.com/pkg/errors"
)

// Apply runs the full filter: validate, quantize, aggregate. img is not
// modified; the result always holds a freshly allocated buffer.
func Apply(ctx context.Context, img *Image, p Params) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	t, err := Quantize(img, p.Levels)
	if err != nil {
		return nil, errors.Wrap(err, "quantize")
	}
	return Aggregate(ctx, t, p.Radius, p.Boundary, p.Workers)
}

// ApplyEffect is the synchronous buffer-in, buffer-out entry point with the
// default boundary policy. The returned buffer has the same length as pix
// and every alpha byte set to 255.
func ApplyEffect(pix []byte, width, height, levels, radius int) ([]byte, error) {
	img, err := NewImage(width, height, pix)
	if err != nil {
		return nil, err
	}
	res, err := Apply(context.Background(), img, Params{Levels: levels, Radius: radius})
	if err != nil {
		return nil, err
	}
	return res.Image.Pix, nil
}
