package svgicon

import (
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func compile(t *testing.T, d string) Path {
	t.Helper()
	var c pathCursor
	if err := c.compilePath(d); err != nil {
		t.Fatalf("compiling %q: %s", d, err)
	}
	return c.path
}

func TestGetPoints(t *testing.T) {
	for _, test := range []struct {
		in   string
		want []float64
	}{
		{"1 2,3", []float64{1, 2, 3}},
		{"1-2-3", []float64{1, -2, -3}},
		{"0.5.5.5", []float64{0.5, 0.5, 0.5}},
		{"-.5+.25", []float64{-0.5, 0.25}},
		{"1e-07 2.5E+3", []float64{1e-07, 2500}},
		{"1e2-3", []float64{100, -3}},
		{"  \t\n", nil},
	} {
		var c pathCursor
		if err := c.getPoints(test.in); err != nil {
			t.Fatalf("%q: %s", test.in, err)
		}
		if diff := cmp.Diff(test.want, c.points, cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("%q: (-want +got):\n%s", test.in, diff)
		}
	}

	var c pathCursor
	for _, bad := range []string{"1;2", "e5", "1ee5", "2x"} {
		if err := c.getPoints(bad); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}

func TestCompilePath(t *testing.T) {
	for _, test := range []struct {
		d    string
		want Path
	}{
		{
			"M1,2 L3,4 Z",
			Path{MoveTo{1, 2}, LineTo{3, 4}, Close{}},
		},
		{
			"m1 2 3 4 l1 1",
			Path{MoveTo{1, 2}, LineTo{4, 6}, LineTo{5, 7}},
		},
		{
			"M0 0 H5 v5 h-5 V0",
			Path{MoveTo{0, 0}, LineTo{5, 0}, LineTo{5, 5}, LineTo{0, 5}, LineTo{0, 0}},
		},
		{
			"M0 0 C1 1 2 1 3 0 S5 -1 6 0",
			Path{MoveTo{0, 0}, CubicTo{{1, 1}, {2, 1}, {3, 0}}, CubicTo{{4, -1}, {5, -1}, {6, 0}}},
		},
		{
			"M0 0 s1 1 2 0",
			Path{MoveTo{0, 0}, CubicTo{{0, 0}, {1, 1}, {2, 0}}},
		},
		{
			"M0 0 Q1 1 2 0 T4 0",
			Path{MoveTo{0, 0}, QuadTo{{1, 1}, {2, 0}}, QuadTo{{3, -1}, {4, 0}}},
		},
		{
			"M0 0 L1 0 Z l0 1",
			Path{MoveTo{0, 0}, LineTo{1, 0}, Close{}, MoveTo{0, 0}, LineTo{0, 1}},
		},
		{
			"M0 0 A0 5 0 0 1 3 4 A5 5 0 0 1 3 4",
			Path{MoveTo{0, 0}, LineTo{3, 4}},
		},
		{
			"M1.5e1-2e-1",
			Path{MoveTo{15, -0.2}},
		},
	} {
		if diff := cmp.Diff(test.want, compile(t, test.d)); diff != "" {
			t.Errorf("%q: (-want +got):\n%s", test.d, diff)
		}
	}
}

func TestGetArcPoints(t *testing.T) {
	for _, test := range []struct {
		in   string
		want []float64
	}{
		{"5 5 0 0 1 10 0", []float64{5, 5, 0, 0, 1, 10, 0}},
		{"5 5 0 0110 0", []float64{5, 5, 0, 0, 1, 10, 0}},
		{"5 5 0 01 10 0", []float64{5, 5, 0, 0, 1, 10, 0}},
		{"5,5,30,1,0,.5-2", []float64{5, 5, 30, 1, 0, 0.5, -2}},
		{"1 1 0 11.5.5 1 1 0 00-1e1 2", []float64{1, 1, 0, 1, 1, 0.5, 0.5, 1, 1, 0, 0, 0, -10, 2}},
	} {
		var c pathCursor
		if err := c.getArcPoints(test.in); err != nil {
			t.Fatalf("%q: %s", test.in, err)
		}
		if diff := cmp.Diff(test.want, c.points); diff != "" {
			t.Errorf("%q: (-want +got):\n%s", test.in, diff)
		}
	}

	var c pathCursor
	for _, bad := range []string{"5 5 0 2 1 10 0", "5 5 0 0 -1 10 0", "5 5 x", "5 5 0 0 1 10 e"} {
		if err := c.getArcPoints(bad); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}

func TestCompactArcFlags(t *testing.T) {
	want := compile(t, "M0 0 a5 5 0 0 1 10 0z")
	for _, d := range []string{
		"M0 0 a5 5 0 0110 0z",
		"M0 0a5 5 0 01 10 0z",
		"M0,0a5,5,0,0,1,10,0z",
	} {
		if diff := cmp.Diff(want, compile(t, d)); diff != "" {
			t.Errorf("%q: (-want +got):\n%s", d, diff)
		}
	}

	icon, err := ReadIconStream(strings.NewReader(`<svg><path d="M0 0 a5 5 0 0110 0z"/></svg>`), StrictErrorMode)
	if err != nil {
		t.Fatal(err)
	}
	got := iconBounds(t, icon)
	if diff := cmp.Diff(Box{0, 10, -5, 0}, got, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("unexpected bounds (-want +got):\n%s", diff)
	}
}

func TestCompilePathErrors(t *testing.T) {
	for _, d := range []string{
		"M1",
		"M1 2 L3",
		"M1 2 Z 3",
		"M0 0 C1 1 2 2",
		"M0 0 A1 1 0 0 1 2",
		"M0 0 K1 1",
		"M0 0 L1;1",
		"M0 0 A1 1 0 2 1 2 2",
		"M0 0 a1 1 0 0 1 2",
	} {
		var c pathCursor
		if err := c.compilePath(d); err == nil {
			t.Errorf("expected error for %q", d)
		}
	}
}

func TestArcEndPoint(t *testing.T) {
	p := compile(t, "M10 20 a10 10 0 1 0 20 0")
	last, ok := p[len(p)-1].(ArcTo)
	if !ok {
		t.Fatalf("expected an arc, got %v", p)
	}
	if last.End != (Point{30, 20}) {
		t.Errorf("arc should end exactly at its end point, got %v", last.End)
	}
	box, err := p.Bounds()
	if err != nil {
		t.Fatal(err)
	}
	// sweep 0 from the left point goes through the bottom of the circle
	if diff := cmp.Diff(Box{10, 30, 20, 30}, box, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("unexpected arc bounds (-want +got):\n%s", diff)
	}
}

func TestArcBounds(t *testing.T) {
	for _, test := range []struct {
		d    string
		want Box
	}{
		// quarter of circle, no inner extremum
		{"M10 0 A10 10 0 0 1 0 10", Box{0, 10, 0, 10}},
		// three quarters
		{"M10 0 A10 10 0 1 1 0 -10", Box{-10, 10, -10, 10}},
		// rotated ellipse, with axes 2 and 1 at 90 degrees
		{"M0 2 A2 1 90 0 1 0 -2", Box{-1, 0, -2, 2}},
	} {
		box, err := compile(t, test.d).Bounds()
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(test.want, box, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
			t.Errorf("%q: (-want +got):\n%s", test.d, diff)
		}
	}

	// affine maps keep arcs exact
	p := compile(t, "M10 0 A10 10 0 1 1 0 -10")
	box, err := p.Transform(Identity.Translate(1, 2).Scale(2, 0.5)).Bounds()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(Box{-19, 21, -3, 7}, box, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("unexpected transformed bounds (-want +got):\n%s", diff)
	}
}

func TestArcCubics(t *testing.T) {
	p := compile(t, "M0 0 a5 5 0 0110 0")
	op := p[1].(ArcTo)
	cubics := op.cubics()
	if len(cubics) != 9 {
		t.Fatalf("expected 9 segments, got %d", len(cubics))
	}
	if end := cubics[len(cubics)-1][2]; end != op.End {
		t.Errorf("expected exact end point, got %v", end)
	}
	for _, cu := range cubics {
		if r := math.Hypot(cu[2].X-5, cu[2].Y); math.Abs(r-5) > 1e-12 {
			t.Errorf("point %v is not on the circle", cu[2])
		}
	}
}

func TestToSVGPath(t *testing.T) {
	p := Path{MoveTo{0, -0.5}, LineTo{1e-7, 3}, QuadTo{{1, 2}, {3, 4}}, CubicTo{{0.1, 0.2}, {1.0 / 3, 5}, {6, 7}}, Close{}}
	const want = "M0,-0.5 L1e-07,3 Q1,2 3,4 C0.1,0.2 0.3333333333333333,5 6,7 Z"
	if got := p.ToSVGPath(); got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
	if diff := cmp.Diff(p, compile(t, want)); diff != "" {
		t.Errorf("path should read back exactly (-want +got):\n%s", diff)
	}
}

func TestArcToSVGPath(t *testing.T) {
	for _, d := range []string{
		"M0 0 a5 5 0 0110 0z",
		"M10 20 a10 10 0 1 0 20 0",
		"M0 2 A2 1 90 0 1 0 -2",
		"M0 0 A8 4 30 1 0 10 5",
	} {
		p := compile(t, d)
		out := p.ToSVGPath()
		arc := p[1].(ArcTo)
		if n := strings.Count(out, "A"); n != int(math.Ceil(math.Abs(arc.Delta)/(math.Pi/2))) {
			t.Errorf("%q: unexpected number of quarter arcs in %s", d, out)
		}
		want, err := p.Bounds()
		if err != nil {
			t.Fatal(err)
		}
		got, err := compile(t, out).Bounds()
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
			t.Errorf("%q -> %s: (-want +got):\n%s", d, out, diff)
		}
	}
}
