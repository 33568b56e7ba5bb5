package cmd

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/AnyUserName/oilpaint/internal/manifest"
	"github.com/AnyUserName/oilpaint/internal/pipeline"
	"github.com/AnyUserName/oilpaint/internal/profile"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlagCmd(t *testing.T, args ...string) (*cobra.Command, *filterFlags) {
	t.Helper()
	var f filterFlags
	c := &cobra.Command{Use: "test"}
	f.register(c)
	require.NoError(t, c.Flags().Parse(args))
	return c, &f
}

func TestFilterFlags_Defaults(t *testing.T) {
	c, f := newFlagCmd(t)
	prof, err := f.resolve(c)
	require.NoError(t, err)
	assert.Equal(t, profile.Get(profile.DefaultName), prof)
}

func TestFilterFlags_Overrides(t *testing.T) {
	c, f := newFlagCmd(t, "-p", "heavy", "--levels", "0", "-r", "2", "--boundary", "inclusive",
		"--max-width", "0", "-f", "jpeg", "-q", "70")
	prof, err := f.resolve(c)
	require.NoError(t, err)
	assert.Equal(t, "heavy", prof.Name)
	assert.Equal(t, 0, prof.Levels)
	assert.Equal(t, 2, prof.Radius)
	assert.Equal(t, "inclusive", prof.Boundary)
	assert.Equal(t, 0, prof.MaxWidth)
	assert.Equal(t, "jpeg", prof.Format)
	assert.Equal(t, 70, prof.Quality)
}

func TestFilterFlags_Rejects(t *testing.T) {
	tests := [][]string{
		{"--levels", "-5"},
		{"--radius", "-1"},
		{"--boundary", "wrap"},
		{"--max-width", "-2"},
		{"--profile", "nope"},
	}
	for _, args := range tests {
		c, f := newFlagCmd(t, args...)
		_, err := f.resolve(c)
		assert.Error(t, err, "%v", args)
	}
}

func buildFixture(t *testing.T) (*manifest.Manifest, string) {
	t.Helper()
	in, out := t.TempDir(), t.TempDir()

	img := image.NewNRGBA(image.Rect(0, 0, 9, 7))
	for y := 0; y < 7; y++ {
		for x := 0; x < 9; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 28), G: uint8(y * 36), B: 80, A: 255})
		}
	}
	f, err := os.Create(filepath.Join(in, "swatch.png"))
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())

	m, err := pipeline.New(pipeline.Config{
		InputDir:  in,
		OutputDir: out,
		Profile:   profile.Get("subtle"),
		Workers:   1,
	}).Run(context.Background())
	require.NoError(t, err)
	require.NoError(t, manifest.WriteJSON(m, filepath.Join(out, manifest.FileName)))
	return m, out
}

func TestValidateManifest(t *testing.T) {
	m, out := buildFixture(t)
	assert.Empty(t, validateManifest(m, out))
	require.NoError(t, runValidate(nil, []string{filepath.Join(out, manifest.FileName)}))

	// Same size, different content.
	path := filepath.Join(out, m.Assets["swatch"].Output.Path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	data[len(data)-1] ^= 0xff
	require.NoError(t, os.WriteFile(path, data, 0o644))

	errs := validateManifest(m, out)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "hash mismatch")
}

func TestValidateManifest_Inconsistent(t *testing.T) {
	m, out := buildFixture(t)
	a := m.Assets["swatch"]
	a.Params.Boundary = "wrap"
	a.FallbackPixels = -1
	m.Assets["swatch"] = a
	m.Assets["ghost"] = manifest.Asset{
		Original: manifest.OriginalInfo{Width: 1, Height: 1},
		Output:   manifest.Output{Format: "png", Width: 1, Height: 1, Path: a.Output.Path, Hash: "00"},
	}

	errs := validateManifest(m, out)
	joined := ""
	for _, e := range errs {
		joined += e + "\n"
	}
	assert.Contains(t, joined, "unknown boundary policy")
	assert.Contains(t, joined, "fallback_pixels -1")
	assert.Contains(t, joined, "also used by")
	assert.Contains(t, joined, "stats.total_assets mismatch")
}

func TestRunStats(t *testing.T) {
	_, out := buildFixture(t)
	assert.NoError(t, runStats(nil, []string{out}))
	assert.Error(t, runStats(nil, []string{filepath.Join(out, "missing")}))
}
