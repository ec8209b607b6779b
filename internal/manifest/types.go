package manifest

// FileName is the manifest written into a batch output directory.
const FileName = "bmpops.manifest.json"

// Manifest is the report of one batch run.
type Manifest struct {
	Version     int              `json:"version"`
	GeneratedAt string           `json:"generated_at"`
	Plan        string           `json:"plan"`
	Operations  []string         `json:"operations"`
	InputDir    string           `json:"input_dir"`
	BasePath    string           `json:"base_path"`
	Assets      map[string]Asset `json:"assets"`
	Failures    []Failure        `json:"failures,omitempty"`
	Stats       Stats            `json:"stats"`
}

// Asset describes one source bitmap and everything derived from it.
type Asset struct {
	Source    SourceInfo `json:"source"`
	ThumbHash string     `json:"thumbhash"` // base64-encoded thumbhash bytes
	Outputs   []Output   `json:"outputs"`
}

// SourceInfo holds metadata about the source bitmap.
type SourceInfo struct {
	Path           string `json:"path"` // relative to input_dir
	Width          int    `json:"width"`
	Height         int    `json:"height"`
	HeaderFileSize uint32 `json:"header_file_size"` // raw header field, carried to outputs
	Size           int64  `json:"size"`             // bytes on disk
}

// Output is one file written by an operation.
type Output struct {
	Op   string `json:"op"`
	Path string `json:"path"` // relative to base_path
	Size int64  `json:"size"`
	Hash string `json:"hash"` // xxhash64, 16 hex chars
}

// Failure records an operation that did not produce an output.
type Failure struct {
	Key   string `json:"key"`
	Op    string `json:"op,omitempty"`
	Error string `json:"error"`
}

// Stats aggregates batch metrics.
type Stats struct {
	TotalInputBytes  int64 `json:"total_input_bytes"`
	TotalOutputBytes int64 `json:"total_output_bytes"`
	TotalAssets      int   `json:"total_assets"`
	TotalOutputs     int   `json:"total_outputs"`
	Failed           int   `json:"failed,omitempty"`
}

// SupportedManifestVersion is the current schema version.
const SupportedManifestVersion = 1
