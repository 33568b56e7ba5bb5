package oilpaint

import (
	"math"

	"github.com/pkg/errors"
)

// Tables is the quantizer output: a bucket and the original colour per
// pixel, both indexed y*Width+x. Read-only once Quantize returns.
type Tables struct {
	Width   int
	Height  int
	Levels  int
	Buckets []int
	Colors  []RGB
}

// Quantize computes every pixel's luminance bucket
// round((r+g+b)/3 * levels / 255), rounding half away from zero.
func Quantize(img *Image, levels int) (*Tables, error) {
	if err := img.validate(); err != nil {
		return nil, err
	}
	if levels < 0 {
		return nil, errors.Wrapf(ErrNegativeParameter, "levels=%d", levels)
	}

	n := img.Width * img.Height
	t := &Tables{
		Width:   img.Width,
		Height:  img.Height,
		Levels:  levels,
		Buckets: make([]int, n),
		Colors:  make([]RGB, n),
	}

	scale := float64(levels)
	for i := 0; i < n; i++ {
		o := i * BytesPerPixel
		r, g, b := img.Pix[o], img.Pix[o+1], img.Pix[o+2]
		t.Buckets[i] = bucketOf(r, g, b, scale)
		t.Colors[i] = RGB{R: r, G: g, B: b}
	}
	return t, nil
}

func bucketOf(r, g, b uint8, levels float64) int {
	avg := float64(int(r)+int(g)+int(b)) / 3
	return int(math.Round(avg * levels / 255))
}
