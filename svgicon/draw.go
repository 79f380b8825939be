package svgicon

import (
	"image/color"

	"golang.org/x/image/math/fixed"
)

// Given a parsed SVG document, implements how to
// draw it on screen.
// This requires a driver implementing the actual draw operations,
// such as a rasterizer to output .png images.

// Drawer knows how to do the actual draw operations
// but doesn't need any SVG kwowledge
// In particular, tranformations matrix are already applied to the points
// before sending them to the Drawer.
type Drawer interface {
	// Clear must reset the internal state (used before starting a new path painting)
	Clear()

	// Start starts a new path at the given point.
	Start(a fixed.Point26_6)

	// Line Adds a line for the current point to `b`
	Line(b fixed.Point26_6)

	// QuadBezier adds a quadratic bezier curve to the path
	QuadBezier(b, c fixed.Point26_6)

	// CubeBezier adds a cubic bezier curve to the path
	CubeBezier(b, c, d fixed.Point26_6)

	// Closes the path to the start point if `closeLoop` is true
	Stop(closeLoop bool)

	// SetColor set the color for the current path
	SetColor(color color.Color, opacity float64)

	// Draw fills the accumulated path using the current settings
	Draw()
}

// Filler is a Drawer filling the paths
// with a choice of winding rule.
type Filler interface {
	Drawer

	// Decide to use or not the NonZeroWinding rule for the current path
	SetWinding(useNonZeroWinding bool)
}

// SetTarget sets the Transform matrix to draw within the bounds of the rectangle arguments
func (s *SvgIcon) SetTarget(x, y, w, h float64) {
	scaleW := w / s.ViewBox.W
	scaleH := h / s.ViewBox.H
	s.Transform = Identity.Translate(x, y).Scale(scaleW, scaleH).Translate(-s.ViewBox.X, -s.ViewBox.Y)
}

// Draw the compiled SVG icon into the filler `f`.
// Paths without fill are skipped, since strokes are not supported.
func (s *SvgIcon) Draw(f Filler, opacity float64) {
	for _, svgp := range s.SVGPaths {
		if svgp.Style.Fill == nil { // nil color disable filling
			continue
		}
		svgp.drawTransformed(f, opacity, s.Transform)
	}
}

// drawTransformed draws the compiled SvgPath into the filler while applying transform t.
func (svgp SvgPath) drawTransformed(f Filler, opacity float64, t Matrix2D) {
	m := t.Mult(svgp.Style.transform)

	f.Clear()
	f.SetWinding(svgp.Style.UseNonZeroWinding)
	for _, op := range svgp.Path {
		op.drawTo(f, m)
	}
	f.Stop(false)

	f.SetColor(svgp.Style.Fill, svgp.Style.FillOpacity*opacity)
	f.Draw()
	f.SetWinding(true) // default is true
}
