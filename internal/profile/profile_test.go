package profile

import (
	"testing"

	"github.com/AnyUserName/oilpaint/internal/oilpaint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_Fallback(t *testing.T) {
	p := Get("does-not-exist")
	assert.Equal(t, "does-not-exist", p.Name)
	assert.Equal(t, 25, p.Levels)
	assert.Equal(t, 4, p.Radius)

	_, ok := Lookup("does-not-exist")
	assert.False(t, ok)
}

func TestNames_Sorted(t *testing.T) {
	assert.Equal(t, []string{"classic", "heavy", "poster", "subtle"}, Names())
}

func TestParams(t *testing.T) {
	for _, name := range Names() {
		params, err := Get(name).Params(3)
		require.NoError(t, err, name)
		assert.Equal(t, oilpaint.BoundaryExcludeEdges, params.Boundary)
		assert.Equal(t, 3, params.Workers)
	}

	p := Get("classic")
	p.Boundary = "inclusive"
	params, err := p.Params(0)
	require.NoError(t, err)
	assert.Equal(t, oilpaint.BoundaryInclusive, params.Boundary)

	p.Radius = -1
	_, err = p.Params(0)
	assert.ErrorIs(t, err, oilpaint.ErrNegativeParameter)

	p.Radius = 1
	p.Boundary = "wrap"
	_, err = p.Params(0)
	assert.Error(t, err)
}

func TestTargetSize(t *testing.T) {
	tests := []struct {
		maxW, w, h   int
		wantW, wantH int
	}{
		{0, 4000, 3000, 4000, 3000},
		{1920, 1000, 800, 1000, 800},
		{1920, 3840, 2160, 1920, 1080},
		{100, 5000, 10, 100, 1},
	}
	for _, tc := range tests {
		p := Profile{MaxWidth: tc.maxW}
		w, h := p.TargetSize(tc.w, tc.h)
		assert.Equal(t, tc.wantW, w)
		assert.Equal(t, tc.wantH, h)
	}
}
