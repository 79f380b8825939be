package offsets

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/benoitkugler/iconoffsets/svgicon"
	"golang.org/x/text/unicode/norm"
)

// IconCode returns the code of the icon stored in `filename`:
// its base name without extension, in Unicode NFC form.
// The code is the key of the icon in the offset table; it is not
// used to name the normalized icon, which keeps `filename`.
func IconCode(filename string) string {
	base := filepath.Base(filename)
	return norm.NFC.String(strings.TrimSuffix(base, filepath.Ext(base)))
}

// NormalizeIcon reads the icon `src`, writes its normalized version to `dst`
// (overwriting it), then reads `dst` back and returns the bounding box of its paths
// and the parsed icon.
// The normalized icon contains one path for each drawn path of `src`,
// with transforms applied, filled with `fill` and no other styling.
// An icon without paths is an error (svgicon.ErrNoPaths).
func NormalizeIcon(src, dst, fill string, mode svgicon.ErrorMode) (svgicon.Box, *svgicon.SvgIcon, error) {
	icon, err := svgicon.ReadIcon(src, mode)
	if err != nil {
		return svgicon.Box{}, nil, fmt.Errorf("reading %s: %w", src, err)
	}
	paths := icon.Paths()
	if len(paths) == 0 {
		return svgicon.Box{}, nil, fmt.Errorf("reading %s: %w", src, svgicon.ErrNoPaths)
	}

	var buf bytes.Buffer
	if err = svgicon.Encode(&buf, paths, fill); err != nil {
		return svgicon.Box{}, nil, fmt.Errorf("encoding %s: %w", src, err)
	}
	if err = os.MkdirAll(filepath.Dir(dst), os.ModePerm); err != nil {
		return svgicon.Box{}, nil, err
	}
	if err = os.WriteFile(dst, buf.Bytes(), 0o644); err != nil {
		return svgicon.Box{}, nil, err
	}

	normalized, err := svgicon.ReadIcon(dst, svgicon.StrictErrorMode)
	if err != nil {
		return svgicon.Box{}, nil, fmt.Errorf("reading back %s: %w", dst, err)
	}
	box, err := svgicon.AggregateBounds(normalized.Paths())
	if err != nil {
		return svgicon.Box{}, nil, fmt.Errorf("reading back %s: %w", dst, err)
	}
	return box, normalized, nil
}

// CenterOffset scales `box` by `scale` and returns half its size, negated.
func CenterOffset(box svgicon.Box, scale float64) (ox, oy float64) {
	scaled := box.Scale(scale)
	return -0.5 * scaled.Width(), -0.5 * scaled.Height()
}
