// Implements a raster backend to render SVG icons,
// by wrapping rasterx.
package svgraster

import (
	"bufio"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"

	"github.com/benoitkugler/iconoffsets/svgicon"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

var _ svgicon.Filler = (*Renderer)(nil) // assert interface conformance

// Renderer fills paths on an image, through a rasterx scanner.
type Renderer struct {
	filler *rasterx.Filler
}

// NewRenderer returns a renderer with default values.
// In addition to rasterizing lines like a Scanner,
// it can also rasterize quadratic and cubic bezier curves.
func NewRenderer(width, height int, scanner rasterx.Scanner) *Renderer {
	return &Renderer{filler: rasterx.NewFiller(width, height, scanner)}
}

// targetSize returns the size of the image for `icon` rendered `width` pixels wide,
// preserving the aspect ratio of its viewBox.
func targetSize(icon *svgicon.SvgIcon, width int) (int, int) {
	vb := icon.ViewBox
	if vb.W <= 0 || vb.H <= 0 {
		return width, width
	}
	h := int(math.Round(float64(width) * vb.H / vb.W))
	if h < 1 {
		h = 1
	}
	return width, h
}

// RasterIcon renders the icon `width` pixels wide, on a transparent background.
// Note that the Transform of the icon is modified.
func RasterIcon(icon *svgicon.SvgIcon, width int) *image.RGBA {
	w, h := targetSize(icon, width)
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	icon.SetTarget(0, 0, float64(w), float64(h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	renderer := NewRenderer(w, h, scanner)
	icon.Draw(renderer, 1.0)
	return img
}

// RasterSVGIconToImage uses a ScannerGV instance to renderer the
// icon into an image and returns it
func RasterSVGIconToImage(icon io.Reader, width int) (*image.RGBA, error) {
	parsedIcon, err := svgicon.ReadIconStream(icon, svgicon.IgnoreErrorMode)
	if err != nil {
		return nil, err
	}
	return RasterIcon(parsedIcon, width), nil
}

// SavePNG encodes `img` into the file `filePath`, which is overwritten.
func SavePNG(filePath string, img image.Image) error {
	f, err := os.Create(filePath)
	if err != nil {
		return err
	}
	buf := bufio.NewWriter(f)
	if err = png.Encode(buf, img); err != nil {
		f.Close()
		return err
	}
	if err = buf.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (rd *Renderer) Clear() {
	rd.filler.Clear()
}

func (rd *Renderer) SetWinding(useNonZeroWinding bool) {
	rd.filler.SetWinding(useNonZeroWinding)
}

func (rd *Renderer) SetColor(c color.Color, opacity float64) {
	rd.filler.SetColor(rasterx.ApplyOpacity(c, opacity))
}

func (rd *Renderer) Start(a fixed.Point26_6) {
	rd.filler.Start(a)
}

func (rd *Renderer) Line(b fixed.Point26_6) {
	rd.filler.Line(b)
}

func (rd *Renderer) QuadBezier(b fixed.Point26_6, c fixed.Point26_6) {
	rd.filler.QuadBezier(b, c)
}

func (rd *Renderer) CubeBezier(b fixed.Point26_6, c fixed.Point26_6, d fixed.Point26_6) {
	rd.filler.CubeBezier(b, c, d)
}

func (rd *Renderer) Stop(closeLoop bool) {
	rd.filler.Stop(closeLoop)
}

func (rd *Renderer) Draw() {
	rd.filler.Draw()
}
