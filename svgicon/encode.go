package svgicon

import (
	"encoding/xml"
	"fmt"
	"io"
)

// PaddingRatio is the margin added around the paths
// in the viewBox of encoded icons, relative to their size.
const PaddingRatio = 0.1

type xmlPath struct {
	D      string `xml:"d,attr"`
	Fill   string `xml:"fill,attr"`
	Stroke string `xml:"stroke,attr"`
}

type xmlSVG struct {
	XMLName xml.Name  `xml:"svg"`
	Xmlns   string    `xml:"xmlns,attr"`
	Version string    `xml:"version,attr"`
	Width   string    `xml:"width,attr"`
	Height  string    `xml:"height,attr"`
	ViewBox string    `xml:"viewBox,attr"`
	Paths   []xmlPath `xml:"path"`
}

// paddedViewBox returns the bounds of the paths, extended by
// PaddingRatio on each side. A flat dimension is taken as 1.
func paddedViewBox(box Box) Bounds {
	w, h := box.Width(), box.Height()
	if w == 0 {
		w = 1
	}
	if h == 0 {
		h = 1
	}
	return Bounds{
		X: box.XMin - PaddingRatio*w,
		Y: box.YMin - PaddingRatio*h,
		W: w + 2*PaddingRatio*w,
		H: h + 2*PaddingRatio*h,
	}
}

// Encode writes a minimal SVG document containing `paths`, each
// filled with `fill` and without stroke, and no other styling.
// Coordinates are written with full precision, so that
// reading back the document yields the same paths.
// ErrNoPaths is returned if `paths` is empty.
func Encode(w io.Writer, paths []Path, fill string) error {
	box, err := AggregateBounds(paths)
	if err != nil {
		return err
	}
	vb := paddedViewBox(box)

	doc := xmlSVG{
		Xmlns:   "http://www.w3.org/2000/svg",
		Version: "1.1",
		Width:   formatCoord(vb.W),
		Height:  formatCoord(vb.H),
		ViewBox: fmt.Sprintf("%s %s %s %s", formatCoord(vb.X), formatCoord(vb.Y), formatCoord(vb.W), formatCoord(vb.H)),
		Paths:   make([]xmlPath, len(paths)),
	}
	for i, p := range paths {
		doc.Paths[i] = xmlPath{D: p.ToSVGPath(), Fill: fill, Stroke: "none"}
	}

	if _, err = io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err = enc.Encode(doc); err != nil {
		return err
	}
	_, err = io.WriteString(w, "\n")
	return err
}
