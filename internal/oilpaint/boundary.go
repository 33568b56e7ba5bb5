package oilpaint

import (
	"strings"

	"github.com/pkg/errors"
)

// BoundaryPolicy decides whether a neighbour coordinate may be sampled.
type BoundaryPolicy int

const (
	// BoundaryExcludeEdges samples a neighbour only when 0 < n < dim on
	// both axes, so row 0 and column 0 are never read as neighbour
	// sources. This is the historical behaviour and the default.
	BoundaryExcludeEdges BoundaryPolicy = iota

	// BoundaryInclusive samples every in-bounds neighbour (0 <= n < dim).
	BoundaryInclusive
)

var boundaryNames = map[BoundaryPolicy]string{
	BoundaryExcludeEdges: "exclude-edges",
	BoundaryInclusive:    "inclusive",
}

func (b BoundaryPolicy) String() string {
	if s, ok := boundaryNames[b]; ok {
		return s
	}
	return "unknown"
}

func (b BoundaryPolicy) valid() bool {
	_, ok := boundaryNames[b]
	return ok
}

// ParseBoundaryPolicy maps a policy name ("exclude-edges", "inclusive")
// to its value. The empty string selects the default.
func ParseBoundaryPolicy(s string) (BoundaryPolicy, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return BoundaryExcludeEdges, nil
	}
	for b, name := range boundaryNames {
		if name == s {
			return b, nil
		}
	}
	return 0, errors.Errorf("unknown boundary policy %q (want exclude-edges or inclusive)", s)
}

// span returns the half-open range of neighbour coordinates the policy
// admits on an axis of length dim.
func (b BoundaryPolicy) span(dim int) (lo, hi int) {
	if b == BoundaryInclusive {
		return 0, dim
	}
	return 1, dim
}
