// Command iconoffsets normalizes the icons of icons_old/ into icons/
// and writes their centering offsets to data/icon_offsets.json.
//
// The per-icon corrections are read from data/icon_overrides.json
// when it exists, otherwise the built-in table is used.
// Paths are relative to the working directory; there are no flags.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strings"
	"time"

	"github.com/benoitkugler/iconoffsets/offsets"
)

// overridesFile optionally replaces the built-in override table.
const overridesFile = "data/icon_overrides.json"

func loadOverrides() ([]offsets.Override, error) {
	f, err := os.Open(overridesFile)
	if errors.Is(err, fs.ErrNotExist) {
		return offsets.DefaultOverrides(), nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return offsets.LoadOverrides(f)
}

func main() {
	log.SetFlags(0)
	now := time.Now()

	cfg := offsets.DefaultConfig()
	overrides, err := loadOverrides()
	if err != nil {
		log.Fatalf("%s %s", decorateText("Loading overrides failed:", errorMessage), err)
	}
	cfg.Overrides = overrides

	fmt.Fprintf(os.Stderr, "%s %s\n",
		decorateText("iconoffsets", statusMessage),
		decorateText(fmt.Sprintf("is processing %s...", cfg.InputDir), defaultMessage))

	table, err := offsets.Run(cfg)
	if err != nil {
		log.Fatalf("%s\n\t%s", decorateText("Computing icon offsets failed:", errorMessage), err)
	}

	fmt.Fprintln(os.Stderr, strings.Join(table.Codes(), " "))
	fmt.Fprintf(os.Stderr, "%d icons written to %s (%s)\n", len(table),
		decorateText(cfg.OutputFile, successMessage), formatTime(time.Since(now)))
}
