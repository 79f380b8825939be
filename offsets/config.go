// Package offsets computes, for a directory of SVG icons, the centering
// offset and axis scale of each icon, and writes them as a JSON table.
//
// Each icon is first rewritten as a normalized SVG (flattened paths,
// uniform placeholder fill), which is then read back to compute the
// bounding box of its paths.
//
// The keys of the table are the icon codes in Unicode NFC form (see IconCode),
// while the normalized icons keep the file names of the source icons.
// On file systems storing decomposed (NFD) names, a key may thus differ
// byte for byte from the stem of its normalized icon: compare them
// after NFC normalization.
package offsets

import (
	"log"
	"runtime"

	"github.com/benoitkugler/iconoffsets/svgicon"
)

// maxWorkers sets the maximum number of concurrently running workers.
const maxWorkers = 20

// Config holds the parameters of a run.
// The zero value is not usable, see DefaultConfig.
type Config struct {
	InputDir   string // source icons
	IconDir    string // normalized icons, with the same file names
	OutputFile string // JSON offset table

	Scale     float64    // applied to the bounding boxes
	Fill      string     // placeholder fill of the normalized icons
	Overrides []Override // applied in order

	// Workers is the number of icons processed concurrently.
	// Values out of [1, 20] are replaced by the number of CPUs.
	Workers   int
	ErrorMode svgicon.ErrorMode
	Logger    *log.Logger // nil means log.Default()

	// PreviewDir, if not empty, receives a PNG rendering
	// of each normalized icon, PreviewSize pixels wide.
	PreviewDir  string
	PreviewSize int
}

// DefaultConfig returns the conventional layout:
// icons_old/ to icons/ and data/icon_offsets.json.
func DefaultConfig() Config {
	return Config{
		InputDir:    "icons_old",
		IconDir:     "icons",
		OutputFile:  "data/icon_offsets.json",
		Scale:       0.06,
		Fill:        "pink",
		Overrides:   DefaultOverrides(),
		Workers:     1,
		ErrorMode:   svgicon.WarnErrorMode,
		PreviewSize: 256,
	}
}

func (cfg Config) logger() *log.Logger {
	if cfg.Logger == nil {
		return log.Default()
	}
	return cfg.Logger
}

func (cfg Config) workers() int {
	if cfg.Workers <= 0 || cfg.Workers > maxWorkers {
		return runtime.NumCPU()
	}
	return cfg.Workers
}
