package pipeline

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"sync"

	"github.com/AnyUserName/oilpaint/internal/encoder"
	"github.com/AnyUserName/oilpaint/internal/manifest"
	"github.com/AnyUserName/oilpaint/internal/profile"
)

// Config holds all parameters for a batch run.
type Config struct {
	InputDir      string
	OutputDir     string
	Profile       profile.Profile
	Workers       int // images processed concurrently
	FilterWorkers int // row workers inside each image; 0 = derived
	Verbose       bool
}

// Pipeline orchestrates batch painting.
type Pipeline struct {
	cfg      Config
	registry *encoder.Registry
}

// New creates a configured pipeline.
func New(cfg Config) *Pipeline {
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	return &Pipeline{
		cfg:      cfg,
		registry: encoder.NewRegistry(),
	}
}

func (p *Pipeline) logf(format string, args ...any) {
	if p.cfg.Verbose {
		fmt.Fprintf(os.Stderr, "[oilpaint] "+format+"\n", args...)
	}
}

// Run paints every image under InputDir and returns the manifest.
// Cancelling ctx stops scheduling new images and interrupts in-flight
// filters between rows.
func (p *Pipeline) Run(ctx context.Context) (*manifest.Manifest, error) {
	enc, err := p.registry.Resolve(p.cfg.Profile.Format)
	if err != nil {
		return nil, err
	}
	p.logf("%s, writing %s", p.registry, enc.Format())

	// Step 1: Scan for images, never re-reading earlier outputs.
	sources, err := ScanImages(p.cfg.InputDir, p.cfg.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}
	if len(sources) == 0 {
		return nil, fmt.Errorf("no images found in %s", p.cfg.InputDir)
	}
	p.logf("found %d images", len(sources))

	// Idle cores go to row workers when there are fewer images than workers.
	cfg := p.cfg
	if cfg.FilterWorkers <= 0 {
		cfg.FilterWorkers = max(1, runtime.NumCPU()/min(cfg.Workers, len(sources)))
	}

	// Step 2: Process images in parallel.
	results := make([]processResult, len(sources))
	var wg sync.WaitGroup
	sem := make(chan struct{}, cfg.Workers)

	for i, src := range sources {
		wg.Add(1)
		go func(idx int, s Source) {
			defer wg.Done()
			sem <- struct{}{}        // acquire
			defer func() { <-sem }() // release

			if err := ctx.Err(); err != nil {
				results[idx] = processResult{key: s.Key, err: err}
				return
			}

			p.logf("processing: %s", s.Key)
			results[idx] = processImage(ctx, s, cfg, enc)
			if results[idx].err == nil {
				p.logf("done: %s (%d fallback pixels)", s.Key, results[idx].asset.FallbackPixels)
			}
		}(i, src)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("run interrupted: %w", err)
	}

	// Step 3: Collect results into manifest.
	m := manifest.New(cfg.Profile.Name)

	var errs []error
	for _, r := range results {
		if r.err != nil {
			errs = append(errs, r.err)
			continue
		}
		m.Assets[r.key] = r.asset
	}

	// Report errors but don't fail the entire run for partial failures.
	if len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintf(os.Stderr, "[oilpaint] error: %v\n", e)
		}
		if len(errs) == len(sources) {
			return nil, fmt.Errorf("all %d images failed to process", len(errs))
		}
		fmt.Fprintf(os.Stderr, "[oilpaint] warning: %d of %d images had errors\n",
			len(errs), len(sources))
	}

	m.BuildInfo = &manifest.BuildInfo{
		Workers:       cfg.Workers,
		FilterWorkers: cfg.FilterWorkers,
	}
	m.Stats.Failed = len(errs)
	m.ComputeStats()
	return m, nil
}
