package svgicon

import (
	"math"
)

// compute the bounding box of paths, from the
// critical points of each segment.

// Box is an axis aligned bounding box.
type Box struct {
	XMin, XMax, YMin, YMax float64
}

// Width returns XMax - XMin
func (b Box) Width() float64 { return b.XMax - b.XMin }

// Height returns YMax - YMin
func (b Box) Height() float64 { return b.YMax - b.YMin }

// Union returns the smallest box containing `b` and `other`.
func (b Box) Union(other Box) Box {
	return Box{
		XMin: math.Min(b.XMin, other.XMin),
		XMax: math.Max(b.XMax, other.XMax),
		YMin: math.Min(b.YMin, other.YMin),
		YMax: math.Max(b.YMax, other.YMax),
	}
}

// Scale multiplies every coordinate by `k`, which must be positive.
func (b Box) Scale(k float64) Box {
	return Box{XMin: b.XMin * k, XMax: b.XMax * k, YMin: b.YMin * k, YMax: b.YMax * k}
}

type bezier interface {
	// compute the t zeroing the derivative
	criticalPoints() (tX, tY []float64)
	// compute the point a time t
	evaluateCurve(t float64) (x, y float64)
}

type line [2]Point

func (l line) criticalPoints() (tX, tY []float64) {
	return nil, nil
}

func (l line) evaluateCurve(t float64) (x, y float64) {
	return bezierLine(l[0].X, l[1].X, t), bezierLine(l[0].Y, l[1].Y, t)
}

func bezierLine(p0, p1, t float64) float64 {
	return (p1-p0)*t + p0
}

type quadBezier [3]Point

// quadratic polinomial
// x = At^2 + Bt + C
// where
// A = p0 + p2 - 2p1
// B = 2(p1 - p0)
// C = p0
func bezierQuad(p0, p1, p2, t float64) float64 {
	return (p0+p2-2*p1)*t*t + 2*(p1-p0)*t + p0
}

// derivative as at + b where a,b :
func quadraticDerivative(p0, p1, p2 float64) (a, b float64) {
	return 2 * (p2 - p1 - (p1 - p0)), 2 * (p1 - p0)
}

// handle the case where a = 0
func linearRoots(a, b float64) []float64 {
	if a == 0 {
		return nil
	}
	return []float64{-b / a}
}

func (cu quadBezier) criticalPoints() (tX, tY []float64) {
	aX, bX := quadraticDerivative(cu[0].X, cu[1].X, cu[2].X)
	aY, bY := quadraticDerivative(cu[0].Y, cu[1].Y, cu[2].Y)
	return linearRoots(aX, bX), linearRoots(aY, bY)
}

func (cu quadBezier) evaluateCurve(t float64) (x, y float64) {
	return bezierQuad(cu[0].X, cu[1].X, cu[2].X, t), bezierQuad(cu[0].Y, cu[1].Y, cu[2].Y, t)
}

type cubicBezier [4]Point

func (cu cubicBezier) criticalPoints() (tX, tY []float64) {
	aX, bX, cX := cubicDerivative(cu[0].X, cu[1].X, cu[2].X, cu[3].X)
	aY, bY, cY := cubicDerivative(cu[0].Y, cu[1].Y, cu[2].Y, cu[3].Y)
	return quadraticRoots(aX, bX, cX), quadraticRoots(aY, bY, cY)
}

func (cu cubicBezier) evaluateCurve(t float64) (x, y float64) {
	return bezierSpline(cu[0].X, cu[1].X, cu[2].X, cu[3].X, t),
		bezierSpline(cu[0].Y, cu[1].Y, cu[2].Y, cu[3].Y, t)
}

// cubic polinomial
// x = At^3 + Bt^2 + Ct + D
// where A,B,C,D:
// A = p3 -3 * p2 + 3 * p1 - p0
// B = 3 * p2 - 6 * p1 +3 * p0
// C = 3 * p1 - 3 * p0
// D = p0
func bezierSpline(p0, p1, p2, p3, t float64) float64 {
	return (p3-3*p2+3*p1-p0)*t*t*t +
		(3*p2-6*p1+3*p0)*t*t +
		(3*p1-3*p0)*t +
		(p0)
}

// Derivative of the cubic polinomial:
// X' = (3*p3-9*p2+9*p1-3*p0)t^2 + (6*p2-12*p1+6*p0)t + (3*p1-3*p0)
// taken as aX^2 + bX + c  a,b and c are:
func cubicDerivative(p0, p1, p2, p3 float64) (a, b, c float64) {
	return 3*p3 - 9*p2 + 9*p1 - 3*p0, 6*p2 - 12*p1 + 6*p0, 3*p1 - 3*p0
}

func quadraticRoots(a, b, c float64) []float64 {
	if a == 0 {
		//bX + c = 0 : this is a simple line
		return linearRoots(b, c)
	}
	d := b*b - 4*a*c // determinant
	if d < 0 {
		return nil
	}
	if d == 0 {
		return []float64{-b / (2 * a)}
	}
	sq := math.Sqrt(d)
	return []float64{(-b + sq) / (2 * a), (-b - sq) / (2 * a)}
}

// arc starts at `from`, which is only used for t = 0,
// so that the box contains the exact end points.
type arc struct {
	ArcTo
	from Point
}

// the extrema of u cos(eta) + v sin(eta) are at
// eta = atan2(v, u) + k pi
func (a arc) criticalPoints() (tX, tY []float64) {
	return a.parameterRoots(a.U.X, a.V.X), a.parameterRoots(a.U.Y, a.V.Y)
}

// parameterRoots returns the critical angles inside the arc,
// as t = (eta - Start) / Delta
func (a arc) parameterRoots(u, v float64) []float64 {
	if a.Delta == 0 || (u == 0 && v == 0) {
		return nil
	}
	base := math.Atan2(v, u)
	lo, hi := a.Start, a.Start+a.Delta
	if lo > hi {
		lo, hi = hi, lo
	}
	var out []float64
	for k := math.Ceil((lo - base) / math.Pi); base+k*math.Pi <= hi; k++ {
		out = append(out, (base+k*math.Pi-a.Start)/a.Delta)
	}
	return out
}

func (a arc) evaluateCurve(t float64) (x, y float64) {
	switch t {
	case 0:
		return a.from.X, a.from.Y
	case 1:
		return a.End.X, a.End.Y
	}
	p := a.pointAt(a.Start + t*a.Delta)
	return p.X, p.Y
}

func computeBoundingBox(curve bezier) Box {
	resX, resY := curve.criticalPoints()

	box := Box{
		XMin: math.Inf(1), YMin: math.Inf(1),
		XMax: math.Inf(-1), YMax: math.Inf(-1),
	}
	// add begin and end point
	for _, t := range append(append(resX, 0, 1), resY...) {
		// filter invalid value
		if !(0 <= t && t <= 1) {
			continue
		}
		x, y := curve.evaluateCurve(t)
		box.XMin = math.Min(x, box.XMin)
		box.YMin = math.Min(y, box.YMin)
		box.XMax = math.Max(x, box.XMax)
		box.YMax = math.Max(y, box.YMax)
	}
	return box
}

// Bounds returns the bounding box of the segments of the path.
// Isolated move commands do not contribute to the box.
// ErrEmptyPath is returned if the path has no segment.
func (p Path) Bounds() (Box, error) {
	var (
		box      Box
		seeded   bool
		a, first Point // current point, start of the sub-path
	)
	curveBound := func(b bezier) {
		cb := computeBoundingBox(b)
		if !seeded {
			box, seeded = cb, true
		} else {
			box = box.Union(cb)
		}
	}
	for _, op := range p {
		switch op := op.(type) {
		case MoveTo:
			a, first = Point(op), Point(op)
		case LineTo:
			curveBound(line{a, Point(op)})
			a = Point(op)
		case QuadTo:
			curveBound(quadBezier{a, op[0], op[1]})
			a = op[1]
		case CubicTo:
			curveBound(cubicBezier{a, op[0], op[1], op[2]})
			a = op[2]
		case ArcTo:
			curveBound(arc{op, a})
			a = op.End
		case Close:
			if a != first {
				curveBound(line{a, first})
			}
			a = first
		}
	}
	if !seeded {
		return Box{}, ErrEmptyPath
	}
	return box, nil
}

// AggregateBounds folds the bounding boxes of `paths`,
// seeded by the box of the first one.
func AggregateBounds(paths []Path) (Box, error) {
	if len(paths) == 0 {
		return Box{}, ErrNoPaths
	}
	box, err := paths[0].Bounds()
	if err != nil {
		return Box{}, err
	}
	for _, p := range paths[1:] {
		pb, err := p.Bounds()
		if err != nil {
			return Box{}, err
		}
		box = box.Union(pb)
	}
	return box, nil
}
