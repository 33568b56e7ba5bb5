package cmd

import (
	"fmt"
	"sort"

	"github.com/AnyUserName/oilpaint/internal/manifest"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats <out_dir_or_manifest>",
	Short: "Display statistics for a painted output directory",
	Args:  cobra.ExactArgs(1),
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(_ *cobra.Command, args []string) error {
	m, _, err := manifest.Load(args[0])
	if err != nil {
		return err
	}
	printStats(m)
	return nil
}

func printStats(m *manifest.Manifest) {
	fmt.Println()
	fmt.Printf("  Manifest version: %d\n", m.Version)
	fmt.Printf("  Generated:        %s\n", m.GeneratedAt)
	fmt.Printf("  Profile:          %s\n", m.Profile)
	if m.BuildInfo != nil {
		fmt.Printf("  Workers:          %d images × %d rows\n", m.BuildInfo.Workers, m.BuildInfo.FilterWorkers)
	}
	fmt.Println()

	s := m.Stats
	fmt.Printf("  Total assets:     %d\n", s.TotalAssets)
	if s.Failed > 0 {
		fmt.Printf("  Failed sources:   %d\n", s.Failed)
	}
	fmt.Printf("  Input size:       %s\n", formatBytes(s.TotalInputBytes))
	fmt.Printf("  Output size:      %s\n", formatBytes(s.TotalOutputBytes))
	if s.TotalPixels > 0 {
		fmt.Printf("  Pixels:           %.1f MP\n", float64(s.TotalPixels)/1e6)
		fmt.Printf("  Fallback pixels:  %d (%.3f%%)\n",
			s.FallbackPixels, float64(s.FallbackPixels)/float64(s.TotalPixels)*100)
	}
	fmt.Println()

	// Per-format breakdown.
	formatStats := map[string]struct {
		count int
		bytes int64
	}{}
	for _, a := range m.Assets {
		fs := formatStats[a.Output.Format]
		fs.count++
		fs.bytes += a.Output.Size
		formatStats[a.Output.Format] = fs
	}
	fmt.Println("  Format breakdown:")
	for _, f := range []string{"png", "jpeg"} {
		if fs, ok := formatStats[f]; ok {
			fmt.Printf("    %-6s  %4d files  %s\n", f, fs.count, formatBytes(fs.bytes))
		}
	}
	fmt.Println()

	// Per-parameter breakdown.
	paramStats := map[manifest.Params]int{}
	for _, a := range m.Assets {
		paramStats[a.Params]++
	}
	params := make([]manifest.Params, 0, len(paramStats))
	for p := range paramStats {
		params = append(params, p)
	}
	sort.Slice(params, func(i, j int) bool {
		if params[i].Levels != params[j].Levels {
			return params[i].Levels < params[j].Levels
		}
		if params[i].Radius != params[j].Radius {
			return params[i].Radius < params[j].Radius
		}
		return params[i].Boundary < params[j].Boundary
	})
	fmt.Println("  Parameter breakdown:")
	for _, p := range params {
		fmt.Printf("    levels=%-3d radius=%-3d %-14s %4d assets\n", p.Levels, p.Radius, p.Boundary, paramStats[p])
	}

	// Warnings.
	var warnings []string
	for key, a := range m.Assets {
		if a.Output.Path == "" {
			warnings = append(warnings, fmt.Sprintf("asset %q has no output", key))
		}
		if a.FallbackPixels == a.Output.Width*a.Output.Height && a.FallbackPixels > 0 {
			warnings = append(warnings, fmt.Sprintf("asset %q is unchanged (every pixel fell back)", key))
		}
	}
	sort.Strings(warnings)
	if len(warnings) > 0 {
		fmt.Println()
		fmt.Printf("  Warnings (%d):\n", len(warnings))
		for _, w := range warnings {
			fmt.Printf("    ⚠ %s\n", w)
		}
	}
	fmt.Println()
}
