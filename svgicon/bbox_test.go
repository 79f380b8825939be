package svgicon

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestSegmentBounds(t *testing.T) {
	for _, test := range []struct {
		path Path
		want Box
	}{
		{Path{MoveTo{0, 0}, LineTo{-1, 2}}, Box{-1, 0, 0, 2}},
		{Path{MoveTo{0, 0}, QuadTo{{1, 2}, {2, 0}}}, Box{0, 2, 0, 1}},
		{Path{MoveTo{0, 0}, CubicTo{{0, 1}, {1, 1}, {1, 0}}}, Box{0, 1, 0, 0.75}},
		{Path{MoveTo{0, 0}, CubicTo{{1, 1}, {2, 2}, {3, 3}}}, Box{0, 3, 0, 3}},
		// the closing segment counts
		{Path{MoveTo{0, 0}, LineTo{1, 0}, MoveTo{5, 5}, LineTo{5, 6}, Close{}}, Box{0, 5, 0, 6}},
		// a trailing move is not drawn
		{Path{MoveTo{0, 0}, LineTo{1, 1}, MoveTo{10, 10}}, Box{0, 1, 0, 1}},
	} {
		got, err := test.path.Bounds()
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(test.want, got, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
			t.Errorf("%s: (-want +got):\n%s", test.path, diff)
		}
	}
}

func TestEmptyPathBounds(t *testing.T) {
	for _, p := range []Path{nil, {MoveTo{1, 1}}, {MoveTo{1, 1}, Close{}}} {
		if _, err := p.Bounds(); err != ErrEmptyPath {
			t.Errorf("%s: expected ErrEmptyPath, got %v", p, err)
		}
	}
}

func randomPath(rd *rand.Rand) Path {
	pt := func() Point { return Point{rd.Float64()*200 - 100, rd.Float64()*200 - 100} }
	p := Path{MoveTo(pt())}
	for i := 0; i < 1+rd.Intn(5); i++ {
		switch rd.Intn(3) {
		case 0:
			p = append(p, LineTo(pt()))
		case 1:
			p = append(p, QuadTo{pt(), pt()})
		case 2:
			p = append(p, CubicTo{pt(), pt(), pt()})
		}
	}
	return p
}

func TestAggregateBounds(t *testing.T) {
	rd := rand.New(rand.NewSource(1))
	paths := make([]Path, 8)
	for i := range paths {
		paths[i] = randomPath(rd)
	}

	ref, err := AggregateBounds(paths)
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range paths {
		b, _ := p.Bounds()
		if b.XMin < ref.XMin || b.XMax > ref.XMax || b.YMin < ref.YMin || b.YMax > ref.YMax {
			t.Fatalf("%v is not contained in %v", b, ref)
		}
	}

	for range [10]int{} {
		rd.Shuffle(len(paths), func(i, j int) { paths[i], paths[j] = paths[j], paths[i] })
		got, err := AggregateBounds(paths)
		if err != nil {
			t.Fatal(err)
		}
		if got != ref {
			t.Fatalf("bounds depend on path order: %v != %v", got, ref)
		}
	}

	if _, err := AggregateBounds(nil); err != ErrNoPaths {
		t.Fatalf("expected ErrNoPaths, got %v", err)
	}
	if _, err := AggregateBounds([]Path{paths[0], {MoveTo{}}}); err != ErrEmptyPath {
		t.Fatalf("expected ErrEmptyPath, got %v", err)
	}
}

func TestBoxScale(t *testing.T) {
	b := Box{-10, 30, 5, 25}.Scale(0.5)
	if b != (Box{-5, 15, 2.5, 12.5}) || b.Width() != 20 || b.Height() != 10 {
		t.Fatalf("unexpected box %v", b)
	}
}
