package pipeline

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/AnyUserName/oilpaint/internal/encoder"
	"github.com/AnyUserName/oilpaint/internal/hasher"
	"github.com/AnyUserName/oilpaint/internal/manifest"
	"github.com/AnyUserName/oilpaint/internal/oilpaint"
	"github.com/AnyUserName/oilpaint/internal/profile"
	"github.com/disintegration/imaging"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Painted is a filtered image ready for encoding.
type Painted struct {
	Image          *image.NRGBA
	Params         oilpaint.Params
	FallbackPixels int
	Resized        bool // input was downscaled to the profile's MaxWidth
}

// Decode opens and decodes an image file in any registered format.
func Decode(path string) (image.Image, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, "", fmt.Errorf("decode %s: %w", path, err)
	}
	return img, format, nil
}

// Paint downscales img per the profile and runs the filter with the given
// number of row workers.
func Paint(ctx context.Context, img image.Image, prof profile.Profile, workers int) (*Painted, error) {
	params, err := prof.Params(workers)
	if err != nil {
		return nil, err
	}

	b := img.Bounds()
	w, h := prof.TargetSize(b.Dx(), b.Dy())
	resized := w != b.Dx() || h != b.Dy()
	if resized {
		img = imaging.Resize(img, w, h, imaging.Lanczos)
	}

	res, err := oilpaint.Apply(ctx, toFilterImage(img), params)
	if err != nil {
		return nil, err
	}
	return &Painted{
		Image:          toNRGBA(res.Image),
		Params:         params,
		FallbackPixels: res.FallbackPixels,
		Resized:        resized,
	}, nil
}

// processResult holds the result of processing a single source image.
type processResult struct {
	key   string
	asset manifest.Asset
	err   error
}

// processImage handles a single source image: decode, paint, encode, write.
func processImage(ctx context.Context, src Source, cfg Config, enc encoder.Encoder) processResult {
	result := processResult{key: src.Key}
	start := time.Now()

	img, _, err := Decode(src.AbsPath)
	if err != nil {
		result.err = err
		return result
	}
	bounds := img.Bounds()

	painted, err := Paint(ctx, img, cfg.Profile, cfg.FilterWorkers)
	if err != nil {
		result.err = fmt.Errorf("paint %s: %w", src.RelPath, err)
		return result
	}

	data, err := enc.Encode(painted.Image, cfg.Profile.Quality)
	if err != nil {
		result.err = fmt.Errorf("encode %s as %s: %w", src.RelPath, enc.Format(), err)
		return result
	}

	// Content hash for filename.
	contentHash := hasher.ContentHash(data, 16)

	// Build filename: key.oil.<levels>-<radius>.hash.ext
	keyDir := filepath.Dir(src.Key)
	fileName := fmt.Sprintf("%s.oil.%d-%d.%s.%s",
		filepath.Base(src.Key), painted.Params.Levels, painted.Params.Radius,
		contentHash[:8], enc.Extension())
	relPath := filepath.ToSlash(filepath.Join(keyDir, fileName))

	outPath := filepath.Join(cfg.OutputDir, relPath)
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		result.err = fmt.Errorf("create dir for %s: %w", relPath, err)
		return result
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		result.err = fmt.Errorf("write %s: %w", relPath, err)
		return result
	}

	pb := painted.Image.Bounds()
	result.asset = manifest.Asset{
		Original: manifest.OriginalInfo{
			Width:  bounds.Dx(),
			Height: bounds.Dy(),
			Format: src.Format,
			Size:   src.Size,
		},
		Params: manifest.Params{
			Levels:   painted.Params.Levels,
			Radius:   painted.Params.Radius,
			Boundary: painted.Params.Boundary.String(),
		},
		Output: manifest.Output{
			Format: enc.Format(),
			Width:  pb.Dx(),
			Height: pb.Dy(),
			Size:   int64(len(data)),
			Hash:   contentHash,
			Path:   relPath,
		},
		FallbackPixels: painted.FallbackPixels,
		ElapsedMS:      time.Since(start).Milliseconds(),
	}
	return result
}
