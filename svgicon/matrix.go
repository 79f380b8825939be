package svgicon

import "math"

// Matrix2D represents an SVG style affine matrix:
//
//	| A C E |
//	| B D F |
//	| 0 0 1 |
type Matrix2D struct {
	A, B, C, D, E, F float64
}

// Identity is the identity matrix
var Identity = Matrix2D{1, 0, 0, 1, 0, 0}

// Transform multiplies the input vector by matrix m and outputs the results vector
// components.
func (m Matrix2D) Transform(x1, y1 float64) (x2, y2 float64) {
	x2 = x1*m.A + y1*m.C + m.E
	y2 = x1*m.B + y1*m.D + m.F
	return
}

func (m Matrix2D) transformPoint(p Point) Point {
	x, y := m.Transform(p.X, p.Y)
	return Point{x, y}
}

// transformVector applies the linear part of m
func (m Matrix2D) transformVector(p Point) Point {
	return Point{p.X*m.A + p.Y*m.C, p.X*m.B + p.Y*m.D}
}

// Mult returns a*b
func (a Matrix2D) Mult(b Matrix2D) Matrix2D {
	return Matrix2D{
		A: a.A*b.A + a.C*b.B,
		B: a.B*b.A + a.D*b.B,
		C: a.A*b.C + a.C*b.D,
		D: a.B*b.C + a.D*b.D,
		E: a.A*b.E + a.C*b.F + a.E,
		F: a.B*b.E + a.D*b.F + a.F,
	}
}

// Scale matrix in x and y dimensions
func (a Matrix2D) Scale(x, y float64) Matrix2D {
	return a.Mult(Matrix2D{A: x, D: y})
}

// Translate translates the matrix by x and y
func (a Matrix2D) Translate(x, y float64) Matrix2D {
	return a.Mult(Matrix2D{A: 1, D: 1, E: x, F: y})
}

// Rotate rotates the matrix by theta (radians)
func (a Matrix2D) Rotate(theta float64) Matrix2D {
	sin, cos := math.Sincos(theta)
	return a.Mult(Matrix2D{A: cos, B: sin, C: -sin, D: cos})
}

// SkewX skews the matrix along the x axis by theta (radians)
func (a Matrix2D) SkewX(theta float64) Matrix2D {
	return a.Mult(Matrix2D{A: 1, C: math.Tan(theta), D: 1})
}

// SkewY skews the matrix along the y axis by theta (radians)
func (a Matrix2D) SkewY(theta float64) Matrix2D {
	return a.Mult(Matrix2D{A: 1, B: math.Tan(theta), D: 1})
}
