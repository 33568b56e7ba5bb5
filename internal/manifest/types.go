package manifest

// FileName is the report written next to the painted outputs.
const FileName = "oilpaint.manifest.json"

// Manifest is the top-level output of a batch run.
type Manifest struct {
	Version     int              `json:"version"`
	GeneratedAt string           `json:"generated_at"`
	Profile     string           `json:"profile"`
	BasePath    string           `json:"base_path"`
	BuildInfo   *BuildInfo       `json:"build_info,omitempty"`
	Assets      map[string]Asset `json:"assets"`
	Stats       Stats            `json:"stats"`
}

// BuildInfo captures run-time parameters for diagnostics.
type BuildInfo struct {
	Workers       int `json:"workers"`
	FilterWorkers int `json:"filter_workers"` // row workers per image
}

// Asset describes one source image and its painted output.
type Asset struct {
	Original       OriginalInfo `json:"original"`
	Params         Params       `json:"params"`
	Output         Output       `json:"output"`
	FallbackPixels int          `json:"fallback_pixels"` // pixels with an empty neighbourhood
	ElapsedMS      int64        `json:"elapsed_ms"`
}

// OriginalInfo holds metadata about the source image.
type OriginalInfo struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Format string `json:"format"`
	Size   int64  `json:"size"`
}

// Params records the filter parameters the output was made with.
type Params struct {
	Levels   int    `json:"levels"`
	Radius   int    `json:"radius"`
	Boundary string `json:"boundary"`
}

// Output is the painted file.
type Output struct {
	Format string `json:"format"` // "png", "jpeg"
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Size   int64  `json:"size"` // bytes on disk
	Hash   string `json:"hash"` // first 16 hex chars of xxhash64
	Path   string `json:"path"` // relative to base_path
}

// Stats aggregates run metrics.
type Stats struct {
	TotalInputBytes  int64 `json:"total_input_bytes"`
	TotalOutputBytes int64 `json:"total_output_bytes"`
	TotalAssets      int   `json:"total_assets"`
	TotalPixels      int64 `json:"total_pixels"`
	FallbackPixels   int64 `json:"fallback_pixels"`
	Failed           int   `json:"failed,omitempty"` // sources that could not be processed
}

// SupportedManifestVersion is the current schema version.
const SupportedManifestVersion = 1
