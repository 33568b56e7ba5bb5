package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"

	"github.com/spf13/cobra"
)

var (
	version = "0.1.0"
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "oilpaint",
	Short: "Oil-paint stylization for images",
	Long: `oilpaint — repaints images so every pixel takes the average colour of
the most common luminance band around it, flattening detail into
brush-like patches.

Paint a single file, or a whole directory with a JSON manifest of the
outputs.`,
	Version:      version,
	SilenceUsage:  true,
}

// Execute runs the root command; Ctrl-C cancels in-flight work.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"oilpaint %s (%s/%s, %s)\n",
		version, runtime.GOOS, runtime.GOARCH, runtime.Version(),
	))
}

// logVerbose prints a message only when --verbose is set.
func logVerbose(format string, args ...any) {
	if verbose {
		fmt.Fprintf(os.Stderr, "[oilpaint] "+format+"\n", args...)
	}
}
