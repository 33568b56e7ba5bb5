package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/AnyUserName/oilpaint/internal/manifest"
	"github.com/AnyUserName/oilpaint/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	batchOutDir  string
	batchWorkers int
	batchFlags   filterFlags
)

var batchCmd = &cobra.Command{
	Use:   "batch <input_dir>",
	Short: "Paint every image in a directory and write a manifest",
	Long: `Scans input directory for images (png, jpg, jpeg, gif, bmp, tiff, webp),
paints each one with the selected profile, and writes the results plus
` + manifest.FileName + ` to the output directory.

Output filenames are content-addressed: <key>.oil.<levels>-<radius>.<hash>.ext`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().StringVarP(&batchOutDir, "out", "o", "./oilpaint_out", "output directory")
	batchCmd.Flags().IntVarP(&batchWorkers, "workers", "w", 0, "images painted in parallel (0 = NumCPU)")
	batchFlags.register(batchCmd)
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	inputDir := args[0]
	start := time.Now()

	// Resolve absolute paths.
	absInput, err := filepath.Abs(inputDir)
	if err != nil {
		return fmt.Errorf("resolve input path: %w", err)
	}
	absOutput, err := filepath.Abs(batchOutDir)
	if err != nil {
		return fmt.Errorf("resolve output path: %w", err)
	}

	prof, err := batchFlags.resolve(cmd)
	if err != nil {
		return err
	}
	if batchWorkers < 0 {
		return fmt.Errorf("--workers must be >= 0, got %d", batchWorkers)
	}

	logVerbose("input:   %s", absInput)
	logVerbose("output:  %s", absOutput)
	logVerbose("profile: %s (levels=%d, radius=%d, format=%s)", prof.Name, prof.Levels, prof.Radius, prof.Format)

	if err := os.MkdirAll(absOutput, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	p := pipeline.New(pipeline.Config{
		InputDir:  absInput,
		OutputDir: absOutput,
		Profile:   prof,
		Workers:   batchWorkers,
		Verbose:   verbose,
	})

	m, err := p.Run(cmd.Context())
	if err != nil {
		return fmt.Errorf("pipeline: %w", err)
	}

	manifestPath := filepath.Join(absOutput, manifest.FileName)
	if err := manifest.WriteJSON(m, manifestPath); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}

	printBatchReport(m, time.Since(start))
	return nil
}

func printBatchReport(m *manifest.Manifest, elapsed time.Duration) {
	fmt.Println()
	fmt.Println("╔══════════════════════════════════════════════════╗")
	fmt.Println("║              oilpaint batch complete             ║")
	fmt.Println("╚══════════════════════════════════════════════════╝")
	fmt.Println()

	s := m.Stats
	fmt.Printf("  Assets:      %d\n", s.TotalAssets)
	if s.Failed > 0 {
		fmt.Printf("  Failed:      %d\n", s.Failed)
	}
	fmt.Printf("  Pixels:      %.1f MP\n", float64(s.TotalPixels)/1e6)
	fmt.Printf("  Input size:  %s\n", formatBytes(s.TotalInputBytes))
	fmt.Printf("  Output size: %s\n", formatBytes(s.TotalOutputBytes))
	if s.FallbackPixels > 0 {
		fmt.Printf("  Fallback:    %d pixels (no neighbours)\n", s.FallbackPixels)
	}
	fmt.Printf("  Time:        %s\n", elapsed.Round(time.Millisecond))
	if m.BuildInfo != nil {
		fmt.Printf("  Workers:     %d images × %d rows\n", m.BuildInfo.Workers, m.BuildInfo.FilterWorkers)
	}
	fmt.Println()

	// Top 10 slowest assets.
	if len(m.Assets) > 0 {
		type assetTime struct {
			key     string
			elapsed int64
			pixels  int
		}
		var items []assetTime
		for key, a := range m.Assets {
			items = append(items, assetTime{key, a.ElapsedMS, a.Output.Width * a.Output.Height})
		}
		sort.Slice(items, func(i, j int) bool {
			if items[i].elapsed != items[j].elapsed {
				return items[i].elapsed > items[j].elapsed
			}
			return items[i].key < items[j].key
		})
		n := min(len(items), 10)
		fmt.Printf("  Top %d slowest:\n", n)
		for _, it := range items[:n] {
			fmt.Printf("    %-40s %8dms  (%.2f MP)\n",
				truncKey(it.key, 40), it.elapsed, float64(it.pixels)/1e6)
		}
		fmt.Println()
	}

	data, _ := json.Marshal(m)
	fmt.Printf("  Manifest:    %s (%s)\n", manifest.FileName, formatBytes(int64(len(data))))
	fmt.Println()
}

func formatBytes(b int64) string {
	switch {
	case b >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(b)/(1<<20))
	case b >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(b)/(1<<10))
	default:
		return fmt.Sprintf("%d B", b)
	}
}

func truncKey(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return "..." + s[len(s)-max+3:]
}
