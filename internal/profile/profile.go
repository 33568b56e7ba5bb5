package profile

import (
	"fmt"
	"sort"

	"github.com/AnyUserName/oilpaint/internal/oilpaint"
)

// DefaultName is used when no profile is requested.
const DefaultName = "classic"

// Profile is a named set of filter and output parameters.
type Profile struct {
	Name     string
	Levels   int    // quantization levels
	Radius   int    // neighbourhood half-width
	Boundary string // boundary policy name, "" = exclude-edges
	MaxWidth int    // downscale wider inputs first; 0 = never
	Format   string // output format: png or jpeg
	Quality  int    // jpeg quality 1-100
}

// Built-in profiles.
var profiles = map[string]Profile{
	"subtle": {
		Name:    "subtle",
		Levels:  20,
		Radius:  2,
		Format:  "png",
		Quality: 90,
	},
	"classic": {
		Name:    "classic",
		Levels:  25,
		Radius:  4,
		Format:  "png",
		Quality: 90,
	},
	"heavy": {
		Name:     "heavy",
		Levels:   12,
		Radius:   7,
		MaxWidth: 1920, // cost grows with radius²
		Format:   "png",
		Quality:  88,
	},
	"poster": {
		Name:    "poster",
		Levels:  6,
		Radius:  3,
		Format:  "png",
		Quality: 85,
	},
}

// Get returns a profile by name. Falls back to classic if unknown.
func Get(name string) Profile {
	if p, ok := profiles[name]; ok {
		return p
	}
	p := profiles[DefaultName]
	p.Name = name // preserve requested name
	return p
}

// Lookup is Get without the fallback.
func Lookup(name string) (Profile, bool) {
	p, ok := profiles[name]
	return p, ok
}

// Names lists the built-in profiles alphabetically.
func Names() []string {
	names := make([]string, 0, len(profiles))
	for n := range profiles {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Params converts the profile into filter parameters.
func (p Profile) Params(workers int) (oilpaint.Params, error) {
	boundary, err := oilpaint.ParseBoundaryPolicy(p.Boundary)
	if err != nil {
		return oilpaint.Params{}, err
	}
	params := oilpaint.Params{
		Levels:   p.Levels,
		Radius:   p.Radius,
		Boundary: boundary,
		Workers:  workers,
	}
	if err := params.Validate(); err != nil {
		return oilpaint.Params{}, fmt.Errorf("profile %s: %w", p.Name, err)
	}
	return params, nil
}

// TargetSize returns the dimensions the filter should run at: the input
// size, or a proportional downscale when wider than MaxWidth.
func (p Profile) TargetSize(width, height int) (int, int) {
	if p.MaxWidth <= 0 || width <= p.MaxWidth {
		return width, height
	}
	h := int(float64(height) * float64(p.MaxWidth) / float64(width))
	if h < 1 {
		h = 1
	}
	return p.MaxWidth, h
}
