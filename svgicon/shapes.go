package svgicon

import (
	"math"
)

// This file implements the transformation from
// high level shapes to their path equivalent

// maxDx is the maximum radians a cubic splice is allowed to span
// in ellipse parametric when approximating an off-axis ellipse.
const maxDx float64 = math.Pi / 8

// addRect adds a closed rectangle.
func (p *Path) addRect(minX, minY, maxX, maxY float64) {
	p.Start(Point{minX, minY})
	p.Line(Point{maxX, minY})
	p.Line(Point{maxX, maxY})
	p.Line(Point{minX, maxY})
	p.Stop(true)
}

// addRoundRect adds a rectangle with rounded corners of radius
// rx in the x axis and ry in the y axis. A missing radius
// takes the value of the other one.
func (p *Path) addRoundRect(minX, minY, maxX, maxY, rx, ry float64) {
	if rx <= 0 && ry <= 0 {
		p.addRect(minX, minY, maxX, maxY)
		return
	}
	if rx <= 0 {
		rx = ry
	} else if ry <= 0 {
		ry = rx
	}
	if w := maxX - minX; w < rx*2 {
		rx = w / 2
	}
	if h := maxY - minY; h < ry*2 {
		ry = h / 2
	}

	corner := func(cx, cy, endX, endY float64) {
		lx, ly := p.currentPoint()
		p.addArc([]float64{rx, ry, 0, 0, 1, endX, endY}, cx, cy, lx, ly)
	}
	p.Start(Point{minX + rx, minY})
	p.Line(Point{maxX - rx, minY})
	corner(maxX-rx, minY+ry, maxX, minY+ry)
	p.Line(Point{maxX, maxY - ry})
	corner(maxX-rx, maxY-ry, maxX-rx, maxY)
	p.Line(Point{minX + rx, maxY})
	corner(minX+rx, maxY-ry, minX, maxY-ry)
	p.Line(Point{minX, minY + ry})
	corner(minX+rx, minY+ry, minX+rx, minY)
	p.Stop(true)
}

// currentPoint returns the end point of the last operation
func (p Path) currentPoint() (float64, float64) {
	if len(p) == 0 {
		return 0, 0
	}
	switch op := p[len(p)-1].(type) {
	case MoveTo:
		return op.X, op.Y
	case LineTo:
		return op.X, op.Y
	case QuadTo:
		return op[1].X, op[1].Y
	case CubicTo:
		return op[2].X, op[2].Y
	case ArcTo:
		return op.End.X, op.End.Y
	}
	return 0, 0
}

// ellipseAt adds a full ellipse centered at (cx, cy) to the path.
func (c *pathCursor) ellipseAt(cx, cy, rx, ry float64) {
	c.placeX, c.placeY = cx+rx, cy
	c.path.Start(Point{c.placeX, c.placeY})
	points := []float64{rx, ry, 0, 1, 0, c.placeX, c.placeY}
	c.path.addArc(points, cx, cy, c.placeX, c.placeY)
	c.path.Stop(true)
}

// addArc adds an elliptical arc to the path.
// points holds rx, ry, rotation (degrees), large-arc flag, sweep flag and the end point.
// (cx, cy) is the center and (px, py) the current point.
func (p *Path) addArc(points []float64, cx, cy, px, py float64) (lx, ly float64) {
	rotX := points[2] * math.Pi / 180 // Convert degress to radians
	largeArc := points[3] != 0
	sweep := points[4] != 0
	startAngle := math.Atan2(py-cy, px-cx) - rotX
	endAngle := math.Atan2(points[6]-cy, points[5]-cx) - rotX
	deltaTheta := endAngle - startAngle
	arcBig := math.Abs(deltaTheta) > math.Pi

	etaStart := math.Atan2(math.Sin(startAngle)/points[1], math.Cos(startAngle)/points[0])
	etaEnd := math.Atan2(math.Sin(endAngle)/points[1], math.Cos(endAngle)/points[0])
	deltaEta := etaEnd - etaStart
	if arcBig != largeArc {
		if deltaEta < 0 {
			deltaEta += math.Pi * 2
		} else {
			deltaEta -= math.Pi * 2
		}
	}
	// This check might be needed if the center point of the elipse is
	// at the midpoint of the start and end lines.
	if deltaEta < 0 && sweep {
		deltaEta += math.Pi * 2
	} else if deltaEta >= 0 && !sweep {
		deltaEta -= math.Pi * 2
	}

	sinTheta, cosTheta := math.Sincos(rotX)
	a, b := points[0], points[1]
	*p = append(*p, ArcTo{
		Center: Point{cx, cy},
		U:      Point{a * cosTheta, a * sinTheta},
		V:      Point{-b * sinTheta, b * cosTheta},
		Start:  etaStart,
		Delta:  deltaEta,
		End:    Point{points[5], points[6]},
	})
	return points[5], points[6]
}

// findEllipseCenter locates the center of the Ellipse if it exists. If it does not exist,
// the radius values will be increased minimally for a solution to be possible
// while preserving the ra to rb ratio.  ra and rb arguments are pointers that can be
// checked after the call to see if the values changed. This method uses coordinate transformations
// to reduce the problem to finding the center of a circle that includes the origin
// and an arbitrary point. The center of the circle is then transformed
// back to the original coordinates and returned.
func findEllipseCenter(ra, rb *float64, rotX, startX, startY, endX, endY float64, sweep, smallArc bool) (cx, cy float64) {
	cos, sin := math.Cos(rotX), math.Sin(rotX)

	// Move origin to start point
	nx, ny := endX-startX, endY-startY

	// Rotate ellipse x-axis to coordinate x-axis
	nx, ny = nx*cos+ny*sin, -nx*sin+ny*cos
	// Scale X dimension so that ra = rb
	nx *= *rb / *ra // Now the ellipse is a circle radius rb; therefore foci and center coincide

	midX, midY := nx/2, ny/2
	midlenSq := midX*midX + midY*midY

	var hr float64
	if *rb**rb < midlenSq {
		// Requested ellipse does not exist; scale ra, rb to fit. Length of
		// span is greater than max width of ellipse, must scale *ra, *rb
		nrb := math.Sqrt(midlenSq)
		if *ra == *rb {
			*ra = nrb // prevents roundoff
		} else {
			*ra = *ra * nrb / *rb
		}
		*rb = nrb
	} else {
		hr = math.Sqrt(*rb**rb-midlenSq) / math.Sqrt(midlenSq)
	}
	// Notice that if hr is zero, both answers are the same.
	if (sweep && smallArc) || (!sweep && !smallArc) {
		cx = midX + midY*hr
		cy = midY - midX*hr
	} else {
		cx = midX - midY*hr
		cy = midY + midX*hr
	}

	// reverse scale
	cx *= *ra / *rb
	//Reverse rotate and translate back to original coordinates
	return cx*cos - cy*sin + startX, cx*sin + cy*cos + startY
}
