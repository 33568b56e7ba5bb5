package cmd

import (
	"fmt"
	"strings"

	"github.com/AnyUserName/oilpaint/internal/profile"
	"github.com/spf13/cobra"
)

// filterFlags are the profile overrides shared by paint and batch.
type filterFlags struct {
	profile  string
	levels   int
	radius   int
	boundary string
	maxWidth int
	format   string
	quality  int
}

func (f *filterFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVarP(&f.profile, "profile", "p", profile.DefaultName,
		"parameter preset ("+strings.Join(profile.Names(), ", ")+")")
	fl.IntVarP(&f.levels, "levels", "l", -1, "quantization levels (-1 = profile default)")
	fl.IntVarP(&f.radius, "radius", "r", -1, "neighbourhood radius (-1 = profile default)")
	fl.StringVar(&f.boundary, "boundary", "", "neighbour boundary policy: exclude-edges or inclusive")
	fl.IntVar(&f.maxWidth, "max-width", -1, "downscale wider inputs before painting (0 = never, -1 = profile default)")
	fl.StringVarP(&f.format, "format", "f", "", "output format: png or jpeg (default from profile)")
	fl.IntVarP(&f.quality, "quality", "q", 0, "jpeg quality 1-100 (0 = profile default)")
}

// resolve applies explicitly set flags on top of the named profile.
// Negative levels or radius are rejected rather than clamped.
func (f *filterFlags) resolve(cmd *cobra.Command) (profile.Profile, error) {
	prof, ok := profile.Lookup(f.profile)
	if !ok {
		return profile.Profile{}, fmt.Errorf("unknown profile %q (available: %s)",
			f.profile, strings.Join(profile.Names(), ", "))
	}

	fl := cmd.Flags()
	if fl.Changed("levels") {
		prof.Levels = f.levels
	}
	if fl.Changed("radius") {
		prof.Radius = f.radius
	}
	if fl.Changed("boundary") {
		prof.Boundary = f.boundary
	}
	if fl.Changed("max-width") {
		if f.maxWidth < 0 {
			return profile.Profile{}, fmt.Errorf("--max-width must be >= 0, got %d", f.maxWidth)
		}
		prof.MaxWidth = f.maxWidth
	}
	if f.format != "" {
		prof.Format = f.format
	}
	if f.quality > 0 {
		prof.Quality = f.quality
	}

	// Surface bad values before any image is decoded.
	if _, err := prof.Params(0); err != nil {
		return profile.Profile{}, err
	}
	return prof, nil
}
