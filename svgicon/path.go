package svgicon

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/math/fixed"
)

// This file defines the basic path structure.
// Coordinates are kept as float64 so that bounding boxes
// and the normalized output are exact; they are only converted
// to fixed point when sent to a Drawer.

// Point is a position in user space.
type Point struct{ X, Y float64 }

func (p Point) toFixed() fixed.Point26_6 {
	return fixed.Point26_6{X: fToFixed(p.X), Y: fToFixed(p.Y)}
}

func fToFixed(f float64) fixed.Int26_6 {
	return fixed.Int26_6(f * 64)
}

// Operation groups the different SVG commands
type Operation interface {
	// add itself on the driver `d`, after aplying the transform `M`
	drawTo(d Drawer, M Matrix2D)
}

type MoveTo Point

type LineTo Point

type QuadTo [2]Point

type CubicTo [3]Point

type Close struct{}

// ArcTo is an elliptical arc, given by
//
//	P(eta) = Center + U cos(eta) + V sin(eta)
//
// for eta going from Start to Start + Delta.
// U and V are conjugate semi-diameters, so that affine maps
// send arcs to arcs. End is the exact end point.
type ArcTo struct {
	Center, U, V Point
	Start, Delta float64
	End          Point
}

// starts a new path at the given point.
func (op MoveTo) drawTo(d Drawer, M Matrix2D) {
	d.Stop(false) // implicit close if currently in path.
	d.Start(M.transformPoint(Point(op)).toFixed())
}

func (op LineTo) drawTo(d Drawer, M Matrix2D) {
	d.Line(M.transformPoint(Point(op)).toFixed())
}

func (op QuadTo) drawTo(d Drawer, M Matrix2D) {
	d.QuadBezier(M.transformPoint(op[0]).toFixed(), M.transformPoint(op[1]).toFixed())
}

func (op CubicTo) drawTo(d Drawer, M Matrix2D) {
	d.CubeBezier(M.transformPoint(op[0]).toFixed(), M.transformPoint(op[1]).toFixed(),
		M.transformPoint(op[2]).toFixed())
}

func (op Close) drawTo(d Drawer, _ Matrix2D) {
	d.Stop(true)
}

// arcs are drawn as cubic Béziers
func (op ArcTo) drawTo(d Drawer, M Matrix2D) {
	for _, cu := range op.transform(M).cubics() {
		d.CubeBezier(cu[0].toFixed(), cu[1].toFixed(), cu[2].toFixed())
	}
}

func (op ArcTo) pointAt(eta float64) Point {
	sin, cos := math.Sincos(eta)
	return Point{
		op.Center.X + op.U.X*cos + op.V.X*sin,
		op.Center.Y + op.U.Y*cos + op.V.Y*sin,
	}
}

func (op ArcTo) tangentAt(eta float64) Point {
	sin, cos := math.Sincos(eta)
	return Point{-op.U.X*sin + op.V.X*cos, -op.U.Y*sin + op.V.Y*cos}
}

func (op ArcTo) transform(m Matrix2D) ArcTo {
	op.Center = m.transformPoint(op.Center)
	op.U, op.V = m.transformVector(op.U), m.transformVector(op.V)
	op.End = m.transformPoint(op.End)
	return op
}

// cubics approximates the arc using the method of
// L. Maisonobe, "Drawing an elliptical arc using polylines, quadratic
// or cubic Bezier curves", 2003
// https://www.spaceroots.org/documents/elllipse/elliptical-arc.pdf
func (op ArcTo) cubics() []CubicTo {
	segs := int(math.Abs(op.Delta)/maxDx) + 1
	dEta := op.Delta / float64(segs) // span of each segment
	tde := math.Tan(dEta / 2)
	alpha := math.Sin(dEta) * (math.Sqrt(4+3*tde*tde) - 1) / 3

	out := make([]CubicTo, segs)
	l, ld := op.pointAt(op.Start), op.tangentAt(op.Start)
	for i := 1; i <= segs; i++ {
		eta := op.Start + dEta*float64(i)
		p := op.End // no roundoff error on the last point
		if i < segs {
			p = op.pointAt(eta)
		}
		d := op.tangentAt(eta)
		out[i-1] = CubicTo{
			{l.X + alpha*ld.X, l.Y + alpha*ld.Y},
			{p.X - alpha*d.X, p.Y - alpha*d.Y},
			p,
		}
		l, ld = p, d
	}
	return out
}

// axes returns the radii of the ellipse and the rotation (in radians)
// of its first axis, from the singular value decomposition of [U V].
func (op ArcTo) axes() (rx, ry, rotation float64) {
	e, f := (op.U.X+op.V.Y)/2, (op.U.X-op.V.Y)/2
	g, h := (op.U.Y+op.V.X)/2, (op.U.Y-op.V.X)/2
	q, r := math.Hypot(e, h), math.Hypot(f, g)
	a1, a2 := math.Atan2(g, f), math.Atan2(h, e)
	return q + r, math.Abs(q - r), (a2 + a1) / 2
}

// toSVG writes the arc as SVG arc commands, each spanning at most
// a quarter of the ellipse, so that full ellipses are supported.
func (op ArcTo) toSVG() string {
	n := int(math.Ceil(math.Abs(op.Delta) / (math.Pi / 2)))
	if n < 1 {
		n = 1
	}
	rx, ry, rotation := op.axes()
	sweep := "0"
	if det := op.U.X*op.V.Y - op.U.Y*op.V.X; det*op.Delta > 0 {
		sweep = "1"
	}
	head := "A" + formatCoord(rx) + "," + formatCoord(ry) + " " +
		formatCoord(rotation*180/math.Pi) + " 0 " + sweep + " "
	chunks := make([]string, n)
	for i := 1; i <= n; i++ {
		end := op.End
		if i < n {
			end = op.pointAt(op.Start + op.Delta*float64(i)/float64(n))
		}
		chunks[i-1] = head + formatCoord(end.X) + "," + formatCoord(end.Y)
	}
	return strings.Join(chunks, " ")
}

// Path describes a sequence of basic SVG operations, which should not be nil
// Higher-level shapes may be reduced to a path.
type Path []Operation

func formatCoord(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func formatPoints(cmd byte, pts ...Point) string {
	var b strings.Builder
	b.WriteByte(cmd)
	for i, p := range pts {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(formatCoord(p.X))
		b.WriteByte(',')
		b.WriteString(formatCoord(p.Y))
	}
	return b.String()
}

// ToSVGPath returns a string representation of the path, using
// absolute commands only. Coordinates are written with the shortest
// representation reading back to the same float64.
// Arcs are split in quarter arcs, which read back to the same
// geometry, up to rounding errors.
func (p Path) ToSVGPath() string {
	chunks := make([]string, len(p))
	for i, op := range p {
		switch op := op.(type) {
		case MoveTo:
			chunks[i] = formatPoints('M', Point(op))
		case LineTo:
			chunks[i] = formatPoints('L', Point(op))
		case QuadTo:
			chunks[i] = formatPoints('Q', op[0], op[1])
		case CubicTo:
			chunks[i] = formatPoints('C', op[0], op[1], op[2])
		case ArcTo:
			chunks[i] = op.toSVG()
		case Close:
			chunks[i] = "Z"
		}
	}
	return strings.Join(chunks, " ")
}

// String returns a readable representation of a Path.
func (p Path) String() string {
	return p.ToSVGPath()
}

// Transform returns a new path, with every point mapped by `m`.
// Affine maps send Bézier curves to Bézier curves
// and arcs to arcs, so the result is exact.
func (p Path) Transform(m Matrix2D) Path {
	out := make(Path, len(p))
	for i, op := range p {
		switch op := op.(type) {
		case MoveTo:
			out[i] = MoveTo(m.transformPoint(Point(op)))
		case LineTo:
			out[i] = LineTo(m.transformPoint(Point(op)))
		case QuadTo:
			out[i] = QuadTo{m.transformPoint(op[0]), m.transformPoint(op[1])}
		case CubicTo:
			out[i] = CubicTo{m.transformPoint(op[0]), m.transformPoint(op[1]), m.transformPoint(op[2])}
		case ArcTo:
			out[i] = op.transform(m)
		case Close:
			out[i] = op
		}
	}
	return out
}

// hasSegments returns true if the path draws at least one segment.
func (p Path) hasSegments() bool {
	for _, op := range p {
		switch op.(type) {
		case LineTo, QuadTo, CubicTo, ArcTo:
			return true
		}
	}
	return false
}

// Clear zeros the path slice
func (p *Path) Clear() {
	*p = (*p)[:0]
}

// Start starts a new curve at the given point.
func (p *Path) Start(a Point) {
	*p = append(*p, MoveTo(a))
}

// Line adds a linear segment to the current curve.
func (p *Path) Line(b Point) {
	*p = append(*p, LineTo(b))
}

// QuadBezier adds a quadratic segment to the current curve.
func (p *Path) QuadBezier(b, c Point) {
	*p = append(*p, QuadTo{b, c})
}

// CubeBezier adds a cubic segment to the current curve.
func (p *Path) CubeBezier(b, c, d Point) {
	*p = append(*p, CubicTo{b, c, d})
}

// Stop joins the ends of the path
func (p *Path) Stop(closeLoop bool) {
	if closeLoop {
		*p = append(*p, Close{})
	}
}
