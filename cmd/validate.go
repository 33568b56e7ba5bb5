package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/AnyUserName/oilpaint/internal/hasher"
	"github.com/AnyUserName/oilpaint/internal/manifest"
	"github.com/AnyUserName/oilpaint/internal/oilpaint"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <manifest_path>",
	Short: "Validate an oilpaint manifest and check referenced files",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, args []string) error {
	m, path, err := manifest.Load(args[0])
	if err != nil {
		return err
	}

	errs := validateManifest(m, filepath.Dir(path))
	if len(errs) == 0 {
		fmt.Println("  ✓ Manifest is valid")
		fmt.Printf("  ✓ %d assets — all files present and hashes match\n", m.Stats.TotalAssets)
		return nil
	}

	fmt.Printf("  ✗ Manifest has %d error(s):\n", len(errs))
	for _, e := range errs {
		fmt.Printf("    • %s\n", e)
	}
	return fmt.Errorf("validation failed with %d errors", len(errs))
}

func validateManifest(m *manifest.Manifest, baseDir string) []string {
	var errs []string

	if m.Version != manifest.SupportedManifestVersion {
		errs = append(errs, fmt.Sprintf("unsupported manifest version: %d", m.Version))
	}

	keys := make([]string, 0, len(m.Assets))
	for key := range m.Assets {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	seenPaths := map[string]string{}
	var totalPixels int64
	for _, key := range keys {
		a := m.Assets[key]
		totalPixels += int64(a.Output.Width) * int64(a.Output.Height)

		if a.Original.Width <= 0 || a.Original.Height <= 0 {
			errs = append(errs, fmt.Sprintf("asset %q: invalid original dimensions %dx%d",
				key, a.Original.Width, a.Original.Height))
		}
		if a.Params.Levels < 0 || a.Params.Radius < 0 {
			errs = append(errs, fmt.Sprintf("asset %q: negative params levels=%d radius=%d",
				key, a.Params.Levels, a.Params.Radius))
		}
		if _, err := oilpaint.ParseBoundaryPolicy(a.Params.Boundary); err != nil {
			errs = append(errs, fmt.Sprintf("asset %q: %v", key, err))
		}

		o := a.Output
		if o.Width <= 0 || o.Height <= 0 {
			errs = append(errs, fmt.Sprintf("asset %q: invalid output dimensions %dx%d", key, o.Width, o.Height))
		} else if a.FallbackPixels < 0 || a.FallbackPixels > o.Width*o.Height {
			errs = append(errs, fmt.Sprintf("asset %q: fallback_pixels %d outside [0, %d]",
				key, a.FallbackPixels, o.Width*o.Height))
		}
		if o.Format == "" {
			errs = append(errs, fmt.Sprintf("asset %q: empty output format", key))
		}
		if o.Path == "" {
			errs = append(errs, fmt.Sprintf("asset %q: missing output path", key))
			continue
		}
		if other, dup := seenPaths[o.Path]; dup {
			errs = append(errs, fmt.Sprintf("asset %q: output path %q also used by %q", key, o.Path, other))
		}
		seenPaths[o.Path] = key

		if msg := checkOutputFile(filepath.Join(baseDir, o.Path), o); msg != "" {
			errs = append(errs, fmt.Sprintf("asset %q: %s", key, msg))
		}
	}

	// Verify stats consistency.
	if m.Stats.TotalAssets != len(m.Assets) {
		errs = append(errs, fmt.Sprintf("stats.total_assets mismatch: %d != %d", m.Stats.TotalAssets, len(m.Assets)))
	}
	if m.Stats.TotalPixels != totalPixels {
		errs = append(errs, fmt.Sprintf("stats.total_pixels mismatch: %d != %d", m.Stats.TotalPixels, totalPixels))
	}

	return errs
}

// checkOutputFile compares a file on disk with its manifest entry and
// returns a description of the first mismatch, or "".
func checkOutputFile(path string, o manifest.Output) string {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Sprintf("file not found: %s", o.Path)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Sprintf("stat %s: %v", o.Path, err)
	}
	if o.Size > 0 && info.Size() != o.Size {
		return fmt.Sprintf("size mismatch: manifest=%d, disk=%d", o.Size, info.Size())
	}
	if o.Hash == "" {
		return "missing hash"
	}
	got, err := hasher.ContentHashReader(f, len(o.Hash))
	if err != nil {
		return fmt.Sprintf("hash %s: %v", o.Path, err)
	}
	if got != o.Hash {
		return fmt.Sprintf("hash mismatch: manifest=%s, disk=%s", o.Hash, got)
	}
	return ""
}
