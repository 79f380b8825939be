package offsets

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/benoitkugler/iconoffsets/svgraster"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// ErrDuplicateCode is returned when two input files map to the same icon code.
var ErrDuplicateCode = errors.New("duplicate icon code")

// Record stores the centering offset and the axis scales of one icon.
type Record struct {
	OX float64 `json:"ox"`
	OY float64 `json:"oy"`
	SX float64 `json:"sx"`
	SY float64 `json:"sy"`
}

// Table maps icon codes to their record.
type Table map[string]Record

// Codes returns the sorted icon codes.
func (t Table) Codes() []string {
	codes := maps.Keys(t)
	slices.Sort(codes)
	return codes
}

type iconFile struct {
	name string // file name, in the input and icon directories
	code string
}

// result holds the outcome of the processing of one icon.
type result struct {
	index  int
	record Record
	err    error
}

// listIcons returns the SVG files of `dir`, sorted by name,
// and checks that their codes are distinct.
func listIcons(dir string) ([]iconFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var files []iconFile
	byCode := map[string]string{}
	for _, entry := range entries { // ReadDir sorts by name
		if !entry.Type().IsRegular() || !strings.EqualFold(filepath.Ext(entry.Name()), ".svg") {
			continue
		}
		file := iconFile{name: entry.Name(), code: IconCode(entry.Name())}
		if other, has := byCode[file.code]; has {
			return nil, fmt.Errorf("%w %q: %s and %s", ErrDuplicateCode, file.code, other, file.name)
		}
		byCode[file.code] = file.name
		files = append(files, file)
	}
	return files, nil
}

// processIcon normalizes one icon and returns its record,
// with the overrides applied.
func (cfg Config) processIcon(file iconFile) (Record, error) {
	src := filepath.Join(cfg.InputDir, file.name)
	dst := filepath.Join(cfg.IconDir, file.name)
	box, icon, err := NormalizeIcon(src, dst, cfg.Fill, cfg.ErrorMode)
	if err != nil {
		return Record{}, err
	}
	cfg.logger().Printf("%s: %g x %g", file.code, box.Width(), box.Height())

	if cfg.PreviewDir != "" {
		img := svgraster.RasterIcon(icon, cfg.PreviewSize)
		if err = svgraster.SavePNG(filepath.Join(cfg.PreviewDir, file.code+".png"), img); err != nil {
			return Record{}, fmt.Errorf("preview of %s: %w", file.name, err)
		}
	}

	ox, oy := CenterOffset(box, cfg.Scale)
	rec := Record{OX: ox, OY: oy, SX: cfg.Scale, SY: -cfg.Scale}
	return ApplyOverrides(cfg.Overrides, file.code, rec), nil
}

// Build processes every SVG file of the input directory, writing the
// normalized icons, and returns the offset table.
// If any icon fails, no table is returned: the error is the first
// failure, in file name order.
func Build(cfg Config) (Table, error) {
	if !(cfg.Scale > 0) {
		return nil, fmt.Errorf("invalid scale %g", cfg.Scale)
	}
	files, err := listIcons(cfg.InputDir)
	if err != nil {
		return nil, err
	}
	if cfg.PreviewDir != "" {
		if err = os.MkdirAll(cfg.PreviewDir, os.ModePerm); err != nil {
			return nil, err
		}
	}

	jobs := make(chan int)
	ch := make(chan result)
	var wg sync.WaitGroup
	workers := cfg.workers()
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for index := range jobs {
				rec, err := cfg.processIcon(files[index])
				ch <- result{index: index, record: rec, err: err}
			}
		}()
	}
	go func() {
		defer close(jobs)
		for index := range files {
			jobs <- index
		}
	}()
	// Close the channel after the values are consumed.
	go func() {
		defer close(ch)
		wg.Wait()
	}()

	results := make([]result, len(files))
	for res := range ch {
		results[res.index] = res
	}

	var (
		firstErr error
		nbFailed int
	)
	table := make(Table, len(files))
	for i, res := range results {
		if res.err != nil {
			if firstErr == nil {
				firstErr = res.err
			}
			nbFailed++
			continue
		}
		table[files[i].code] = res.record
	}
	if firstErr != nil {
		return nil, fmt.Errorf("%d of %d icons failed, first error: %w", nbFailed, len(files), firstErr)
	}
	return table, nil
}

// WriteTable encodes the table as a JSON object to `file`, creating
// its directory if needed. The file is replaced atomically, so that
// it is never left partially written.
func WriteTable(table Table, file string) error {
	data, err := json.Marshal(table) // keys are sorted
	if err != nil {
		return err
	}
	dir := filepath.Dir(file)
	if err = os.MkdirAll(dir, os.ModePerm); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(file)+"-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name()) // no-op after the rename

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), file)
}

// Run builds the table and writes it to cfg.OutputFile.
// Nothing is written if an icon fails.
func Run(cfg Config) (Table, error) {
	table, err := Build(cfg)
	if err != nil {
		return nil, err
	}
	if err = WriteTable(table, cfg.OutputFile); err != nil {
		return nil, fmt.Errorf("writing offset table: %w", err)
	}
	return table, nil
}
