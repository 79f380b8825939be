// Provides parsing of SVG icons into flat lists of paths,
// with their bounding boxes, and the encoding of normalized icons.
// Parsed icons may also be drawn through a Filler,
// see for example svgraster.
package svgicon

import (
	"encoding/xml"
	"errors"
	"image/color"
	"io"
	"os"

	"golang.org/x/net/html/charset"
)

// PathStyle holds the state of the SVG style.
// Only what is needed to fill the normalized icons is kept.
type PathStyle struct {
	FillOpacity       float64
	Fill              color.Color // nil disables filling
	UseNonZeroWinding bool

	transform Matrix2D // current transform
}

// SvgPath binds a style to a path
type SvgPath struct {
	Path  Path
	Style PathStyle
}

// Flattened returns the path with the style transform applied.
func (svgp SvgPath) Flattened() Path {
	return svgp.Path.Transform(svgp.Style.transform)
}

// Bounds defines a bounding box, such as a viewport
type Bounds struct{ X, Y, W, H float64 }

// SvgIcon holds data from parsed SVGs.
// See the `Draw` methods to use it.
type SvgIcon struct {
	ViewBox   Bounds
	SVGPaths  []SvgPath
	Transform Matrix2D

	Width, Height string // top level width and height attributes

	defs map[string][]definition
}

// Paths returns the paths of the icon drawing at least one segment,
// with their transforms applied.
func (s *SvgIcon) Paths() []Path {
	var out []Path
	for _, svgp := range s.SVGPaths {
		if !svgp.Path.hasSegments() {
			continue
		}
		out = append(out, svgp.Flattened())
	}
	return out
}

// ReadIconStream parses the SVG document read from `stream`.
// Only the geometry and the fill of the drawn elements are kept.
// `errMode` decides what happens with unsupported elements and colors,
// while malformed geometry is always an error.
func ReadIconStream(stream io.Reader, errMode ErrorMode) (*SvgIcon, error) {
	icon := &SvgIcon{defs: make(map[string][]definition), Transform: Identity}
	cursor := &iconCursor{styleStack: []PathStyle{DefaultStyle}, icon: icon}
	cursor.errorMode = errMode
	decoder := xml.NewDecoder(stream)
	decoder.CharsetReader = charset.NewReaderLabel
	seenTag := false
	for {
		t, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				if !seenTag {
					return nil, errors.New("invalid svg xml icon")
				}
				break
			}
			return icon, err
		}
		// Inspect the type of the XML token
		switch se := t.(type) {
		case xml.StartElement:
			seenTag = true
			if cursor.skipDepth > 0 { // inside a non rendered element
				cursor.skipDepth++
				continue
			}
			if ignoredElements[se.Name.Local] {
				cursor.skipDepth = 1
				continue
			}
			// Reads all recognized style attributes from the start element
			// and places it on top of the styleStack
			err = cursor.pushStyle(se.Attr)
			if err != nil {
				return icon, err
			}
			err = cursor.readStartElement(se)
			if err != nil {
				return icon, err
			}
		case xml.EndElement:
			if cursor.skipDepth > 0 {
				cursor.skipDepth--
				continue
			}
			// pop style
			cursor.styleStack = cursor.styleStack[:len(cursor.styleStack)-1]
			switch se.Name.Local {
			case "g":
				if cursor.inDefs {
					cursor.currentDef = append(cursor.currentDef, definition{
						Tag: "endg",
					})
				}
			case "defs":
				cursor.flushDef()
				cursor.inDefs = false
			}
		}
	}
	return icon, nil
}

// ReadIcon is a convenience wrapper around ReadIconStream
// reading the file `iconFile`.
func ReadIcon(iconFile string, errMode ErrorMode) (*SvgIcon, error) {
	fin, errf := os.Open(iconFile)
	if errf != nil {
		return nil, errf
	}
	defer fin.Close()
	return ReadIconStream(fin, errMode)
}
