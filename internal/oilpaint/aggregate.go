package oilpaint

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"
)

// Result is the output of one filter invocation.
type Result struct {
	Image *Image
	// FallbackPixels counts pixels with no admissible neighbour; those
	// keep their original colour.
	FallbackPixels int
}

// ─── histogram ───────────────────────────────────────────────
// Dense arrays sized levels+1, reused across the pixels of one worker.
// order records buckets by first contribution so ties resolve to the
// bucket seen earliest in scan order.

type histogram struct {
	count []int
	sum   [][3]int
	order []int
}

func newHistogram(levels int) *histogram {
	return &histogram{
		count: make([]int, levels+1),
		sum:   make([][3]int, levels+1),
		order: make([]int, 0, 32),
	}
}

func (h *histogram) add(bucket int, c RGB) {
	if h.count[bucket] == 0 {
		h.order = append(h.order, bucket)
	}
	h.count[bucket]++
	s := &h.sum[bucket]
	s[0] += int(c.R)
	s[1] += int(c.G)
	s[2] += int(c.B)
}

// winner returns the bucket with the highest count, earliest first
// contribution on ties. ok is false for an empty histogram.
func (h *histogram) winner() (bucket int, ok bool) {
	best, bestCount := -1, 0
	for _, b := range h.order {
		if h.count[b] > bestCount {
			best, bestCount = b, h.count[b]
		}
	}
	return best, best >= 0
}

// mean truncates each channel toward zero.
func (h *histogram) mean(bucket int) RGB {
	n := h.count[bucket]
	s := h.sum[bucket]
	return RGB{R: uint8(s[0] / n), G: uint8(s[1] / n), B: uint8(s[2] / n)}
}

func (h *histogram) reset() {
	for _, b := range h.order {
		h.count[b] = 0
		h.sum[b] = [3]int{}
	}
	h.order = h.order[:0]
}

// ─── aggregation ─────────────────────────────────────────────

// Aggregate scans every pixel's (2*radius+1)² neighbourhood in row-major
// order (dy outer, dx inner), picks the winning bucket among admissible
// neighbours and writes its average colour with alpha 255.
//
// Rows are shared out to workers; each row is written by exactly one
// worker. ctx is checked between rows.
func Aggregate(ctx context.Context, t *Tables, radius int, policy BoundaryPolicy, workers int) (*Result, error) {
	if err := t.validate(); err != nil {
		return nil, err
	}
	if radius < 0 {
		return nil, errors.Wrapf(ErrNegativeParameter, "radius=%d", radius)
	}
	if workers < 0 {
		return nil, errors.Wrapf(ErrNegativeParameter, "workers=%d", workers)
	}
	if !policy.valid() {
		return nil, errors.Errorf("unknown boundary policy %d", policy)
	}
	if workers == 0 {
		workers = 1
	}
	if workers > t.Height {
		workers = t.Height
	}

	out := &Image{
		Width:  t.Width,
		Height: t.Height,
		Pix:    make([]byte, t.Width*t.Height*BytesPerPixel),
	}

	rows := make(chan int)
	var fallback atomic.Int64
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			h := newHistogram(t.Levels)
			for y := range rows {
				fallback.Add(int64(aggregateRow(t, out, h, y, radius, policy)))
			}
		}()
	}

	var cancelErr error
feed:
	for y := 0; y < t.Height; y++ {
		if cancelErr = ctx.Err(); cancelErr != nil {
			break
		}
		select {
		case rows <- y:
		case <-ctx.Done():
			cancelErr = ctx.Err()
			break feed
		}
	}
	close(rows)
	wg.Wait()

	if cancelErr != nil {
		return nil, errors.Wrap(cancelErr, "aggregate cancelled")
	}
	return &Result{Image: out, FallbackPixels: int(fallback.Load())}, nil
}

// aggregateRow fills output row y and returns how many of its pixels fell
// back to their own colour.
func aggregateRow(t *Tables, out *Image, h *histogram, y, radius int, policy BoundaryPolicy) int {
	xlo, xhi := policy.span(t.Width)
	ylo, yhi := policy.span(t.Height)

	dyStart, dyEnd := max(-radius, ylo-y), min(radius, yhi-1-y)
	fallbacks := 0

	for x := 0; x < t.Width; x++ {
		dxStart, dxEnd := max(-radius, xlo-x), min(radius, xhi-1-x)

		for dy := dyStart; dy <= dyEnd; dy++ {
			row := (y + dy) * t.Width
			for dx := dxStart; dx <= dxEnd; dx++ {
				i := row + x + dx
				h.add(t.Buckets[i], t.Colors[i])
			}
		}

		var c RGB
		if b, ok := h.winner(); ok {
			c = h.mean(b)
		} else {
			c = t.Colors[y*t.Width+x]
			fallbacks++
		}
		h.reset()

		o := (y*t.Width + x) * BytesPerPixel
		out.Pix[o] = c.R
		out.Pix[o+1] = c.G
		out.Pix[o+2] = c.B
		out.Pix[o+3] = 255
	}
	return fallbacks
}

func (t *Tables) validate() error {
	if t == nil {
		return errors.Wrap(ErrInputShape, "nil tables")
	}
	if t.Width <= 0 || t.Height <= 0 {
		return errors.Wrapf(ErrInputShape, "invalid dimensions %dx%d", t.Width, t.Height)
	}
	n := t.Width * t.Height
	if len(t.Buckets) != n || len(t.Colors) != n {
		return errors.Wrapf(ErrInputShape, "tables hold %d buckets and %d colours for %d pixels",
			len(t.Buckets), len(t.Colors), n)
	}
	if t.Levels < 0 {
		return errors.Wrapf(ErrNegativeParameter, "levels=%d", t.Levels)
	}
	for i, b := range t.Buckets {
		if b < 0 || b > t.Levels {
			return errors.Errorf("bucket %d at pixel %d outside [0, %d]", b, i, t.Levels)
		}
	}
	return nil
}
