package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/AnyUserName/oilpaint/internal/encoder"
	"github.com/AnyUserName/oilpaint/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	paintOut     string
	paintWorkers int
	paintFlags   filterFlags
)

var paintCmd = &cobra.Command{
	Use:   "paint <input_image>",
	Short: "Apply the oil-paint effect to a single image",
	Long: `Decodes one image (png, jpeg, gif, bmp, tiff, webp), applies the
oil-paint filter and writes the result.

The output format follows the --out extension when it names png or jpeg,
otherwise the profile's format. Default output: <input>.painted.<ext>`,
	Args: cobra.ExactArgs(1),
	RunE: runPaint,
}

func init() {
	paintCmd.Flags().StringVarP(&paintOut, "out", "o", "", "output file")
	paintCmd.Flags().IntVarP(&paintWorkers, "workers", "w", 0, "row workers (0 = NumCPU)")
	paintFlags.register(paintCmd)
	rootCmd.AddCommand(paintCmd)
}

func runPaint(cmd *cobra.Command, args []string) error {
	input := args[0]
	start := time.Now()

	prof, err := paintFlags.resolve(cmd)
	if err != nil {
		return err
	}
	if paintWorkers < 0 {
		return fmt.Errorf("--workers must be >= 0, got %d", paintWorkers)
	}
	workers := paintWorkers
	if workers == 0 {
		workers = runtime.NumCPU()
	}

	registry := encoder.NewRegistry()
	enc, err := registry.ForPath(paintOut, prof.Format)
	if err != nil {
		return err
	}
	out := paintOut
	if out == "" {
		out = strings.TrimSuffix(input, filepath.Ext(input)) + ".painted." + enc.Extension()
	}

	img, format, err := pipeline.Decode(input)
	if err != nil {
		return err
	}
	b := img.Bounds()
	logVerbose("input:   %s (%s, %dx%d)", input, format, b.Dx(), b.Dy())
	logVerbose("profile: %s (levels=%d, radius=%d, workers=%d)", prof.Name, prof.Levels, prof.Radius, workers)

	painted, err := pipeline.Paint(cmd.Context(), img, prof, workers)
	if err != nil {
		return fmt.Errorf("paint: %w", err)
	}
	if painted.Resized {
		pb := painted.Image.Bounds()
		logVerbose("downscaled to %dx%d (max-width %d)", pb.Dx(), pb.Dy(), prof.MaxWidth)
	}

	data, err := enc.Encode(painted.Image, prof.Quality)
	if err != nil {
		return fmt.Errorf("encode %s: %w", enc.Format(), err)
	}
	if dir := filepath.Dir(out); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}

	pb := painted.Image.Bounds()
	fmt.Printf("  %s → %s\n", input, out)
	fmt.Printf("  Size:      %dx%d, %s\n", pb.Dx(), pb.Dy(), formatBytes(int64(len(data))))
	fmt.Printf("  Params:    levels=%d radius=%d boundary=%s\n",
		painted.Params.Levels, painted.Params.Radius, painted.Params.Boundary)
	if painted.FallbackPixels > 0 {
		fmt.Printf("  Fallback:  %d pixels kept their colour (no neighbours)\n", painted.FallbackPixels)
	}
	fmt.Printf("  Time:      %s\n", time.Since(start).Round(time.Millisecond))
	return nil
}
