package svgicon

import (
	"errors"
	"image/color"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func parseIcon(t *testing.T, iconPath string, mode ErrorMode) *SvgIcon {
	t.Helper()
	icon, errSvg := ReadIcon(iconPath, mode)
	if errSvg != nil {
		t.Fatal(errSvg)
	}
	return icon
}

func iconBounds(t *testing.T, icon *SvgIcon) Box {
	t.Helper()
	box, err := AggregateBounds(icon.Paths())
	if err != nil {
		t.Fatal(err)
	}
	return box
}

func TestTestIcons(t *testing.T) {
	for _, p := range []string{
		"square", "shapes", "transforms", "defs", "arcs", "unsupported", "empty",
	} {
		parseIcon(t, "testdata/"+p+".svg", WarnErrorMode)
	}
}

func TestIconBounds(t *testing.T) {
	for _, test := range []struct {
		file      string
		nbPaths   int
		want      Box
		tolerance float64
	}{
		{"square", 1, Box{0, 10, 0, 10}, 0},
		{"transforms", 2, Box{9, 20, 5, 11}, 1e-12},
		{"defs", 2, Box{10, 32, 5, 12}, 0},
		{"arcs", 1, Box{10, 30, 10, 20}, 1e-9},
		{"unsupported", 1, Box{1, 3, 1, 4}, 0},
		{"shapes", 7, Box{0, 90, 20, 95}, 1e-9},
	} {
		icon := parseIcon(t, "testdata/"+test.file+".svg", IgnoreErrorMode)
		if got := len(icon.Paths()); got != test.nbPaths {
			t.Errorf("%s: expected %d paths, got %d", test.file, test.nbPaths, got)
		}
		got := iconBounds(t, icon)
		if diff := cmp.Diff(test.want, got, cmpopts.EquateApprox(0, test.tolerance)); diff != "" {
			t.Errorf("%s: unexpected bounds (-want +got):\n%s", test.file, diff)
		}
	}
}

func TestNoPaths(t *testing.T) {
	icon := parseIcon(t, "testdata/empty.svg", StrictErrorMode)
	if len(icon.SVGPaths) != 1 {
		t.Fatalf("expected the lone move to be parsed, got %d paths", len(icon.SVGPaths))
	}
	if paths := icon.Paths(); len(paths) != 0 {
		t.Fatalf("expected no drawable path, got %v", paths)
	}
	if _, err := AggregateBounds(icon.Paths()); err != ErrNoPaths {
		t.Fatalf("expected ErrNoPaths, got %v", err)
	}
}

func TestErrorMode(t *testing.T) {
	if _, err := ReadIcon("testdata/unsupported.svg", StrictErrorMode); err == nil {
		t.Fatal("expected error on unsupported element")
	}
	if _, err := ReadIcon("testdata/unsupported.svg", IgnoreErrorMode); err != nil {
		t.Fatal(err)
	}
}

func TestStyles(t *testing.T) {
	icon := parseIcon(t, "testdata/shapes.svg", StrictErrorMode)
	ellipse, polygon, path := icon.SVGPaths[2].Style, icon.SVGPaths[5].Style, icon.SVGPaths[6].Style
	if ellipse.Fill != (color.RGBA{0, 0, 255, 255}) || ellipse.FillOpacity != 0.5 {
		t.Errorf("unexpected ellipse style %v", ellipse)
	}
	if polygon.UseNonZeroWinding {
		t.Error("expected even-odd rule for the polygon")
	}
	if path.Fill != nil {
		t.Errorf("expected no fill, got %v", path.Fill)
	}
}

func TestInvalidIcons(t *testing.T) {
	for _, src := range []string{
		"",
		`<svg><path d="M 0 0 L 1"/></svg>`,
		`<svg><path d="M 0 0 X 1 2"/></svg>`,
		`<svg><rect width="abc" height="2"/></svg>`,
		`<svg><g transform="translate(1 2 3)"><rect width="1" height="2"/></g></svg>`,
		`<svg><polygon points="0 0 1"/></svg>`,
		`<svg><path d="M 0 0 L 1 1"`,
	} {
		if _, err := ReadIconStream(strings.NewReader(src), IgnoreErrorMode); err == nil {
			t.Errorf("expected error for %q", src)
		}
	}
}

func TestUseCycle(t *testing.T) {
	src := `<svg><defs><g id="a"><use href="#a"/><rect width="1" height="1"/></g></defs><use href="#a"/></svg>`
	if _, err := ReadIconStream(strings.NewReader(src), IgnoreErrorMode); err == nil {
		t.Fatal("expected error for recursive use")
	}
}

func TestUnits(t *testing.T) {
	src := `<svg viewBox="0 0 200 100"><rect x="1in" y="10%" width="50%" height="3pt"/></svg>`
	icon, err := ReadIconStream(strings.NewReader(src), StrictErrorMode)
	if err != nil {
		t.Fatal(err)
	}
	got := iconBounds(t, icon)
	want := Box{96, 196, 10, 14}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("unexpected bounds (-want +got):\n%s", diff)
	}
}

func TestViewBoxErrors(t *testing.T) {
	_, err := ReadIconStream(strings.NewReader(`<svg viewBox="0 0 1e 10"></svg>`), IgnoreErrorMode)
	if !errors.Is(err, strconv.ErrSyntax) {
		t.Errorf("expected syntax error for malformed number, got %v", err)
	}
	_, err = ReadIconStream(strings.NewReader(`<svg viewBox="0 0 10"></svg>`), IgnoreErrorMode)
	if err != errParamMismatch {
		t.Errorf("expected param mismatch for 3 numbers, got %v", err)
	}
}
