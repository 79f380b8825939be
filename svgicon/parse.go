package svgicon

import (
	"encoding/xml"
	"math"
	"strings"
)

type (
	// iconCursor is used while parsing SVG files
	iconCursor struct {
		pathCursor
		icon       *SvgIcon
		styleStack []PathStyle
		inDefs     bool
		currentDef []definition
		skipDepth  int // > 0 inside a non rendered element
		useDepth   int
	}

	// definition is used to store what's given in a def tag
	definition struct {
		ID, Tag string
		Attrs   []xml.Attr
	}
)

// DefaultStyle sets the default PathStyle to fill black, winding rule,
// full opacity and no transform.
var DefaultStyle = PathStyle{
	FillOpacity:       1.0,
	Fill:              defaultFill,
	UseNonZeroWinding: true,
	transform:         Identity,
}

var defaultFill, _ = parseSVGColor("black")

// ignoredElements are skipped with all their content:
// they carry no drawn geometry.
var ignoredElements = map[string]bool{
	"title":          true,
	"desc":           true,
	"metadata":       true,
	"style":          true,
	"script":         true,
	"linearGradient": true,
	"radialGradient": true,
	"filter":         true,
	"clipPath":       true,
	"mask":           true,
	"marker":         true,
	"pattern":        true,
	"symbol":         true,
	"text":           true,
}

func (c *iconCursor) readTransformAttr(m1 Matrix2D, k string) (Matrix2D, error) {
	ln := len(c.points)
	switch k {
	case "rotate":
		if ln == 1 {
			m1 = m1.Rotate(c.points[0] * math.Pi / 180)
		} else if ln == 3 {
			m1 = m1.Translate(c.points[1], c.points[2]).
				Rotate(c.points[0]*math.Pi/180).
				Translate(-c.points[1], -c.points[2])
		} else {
			return m1, errParamMismatch
		}
	case "translate":
		if ln == 1 {
			m1 = m1.Translate(c.points[0], 0)
		} else if ln == 2 {
			m1 = m1.Translate(c.points[0], c.points[1])
		} else {
			return m1, errParamMismatch
		}
	case "skewx":
		if ln == 1 {
			m1 = m1.SkewX(c.points[0] * math.Pi / 180)
		} else {
			return m1, errParamMismatch
		}
	case "skewy":
		if ln == 1 {
			m1 = m1.SkewY(c.points[0] * math.Pi / 180)
		} else {
			return m1, errParamMismatch
		}
	case "scale":
		if ln == 1 {
			m1 = m1.Scale(c.points[0], c.points[0])
		} else if ln == 2 {
			m1 = m1.Scale(c.points[0], c.points[1])
		} else {
			return m1, errParamMismatch
		}
	case "matrix":
		if ln == 6 {
			m1 = m1.Mult(Matrix2D{
				A: c.points[0],
				B: c.points[1],
				C: c.points[2],
				D: c.points[3],
				E: c.points[4],
				F: c.points[5]})
		} else {
			return m1, errParamMismatch
		}
	default:
		return m1, errParamMismatch
	}
	return m1, nil
}

// parseTransform composes the transforms listed in `v`
// with the current one.
func (c *iconCursor) parseTransform(v string) (Matrix2D, error) {
	ts := strings.Split(v, ")")
	m1 := c.styleStack[len(c.styleStack)-1].transform
	for _, t := range ts {
		t = strings.TrimSpace(t)
		t = strings.TrimPrefix(t, ",")
		if len(t) == 0 {
			continue
		}
		d := strings.Split(t, "(")
		if len(d) != 2 || len(d[1]) < 1 {
			return m1, errParamMismatch // badly formed transformation
		}
		err := c.getPoints(d[1])
		if err != nil {
			return m1, err
		}
		m1, err = c.readTransformAttr(m1, strings.ToLower(strings.TrimSpace(d[0])))
		if err != nil {
			return m1, err
		}
	}
	return m1, nil
}

func (c *iconCursor) readStyleAttr(curStyle *PathStyle, k, v string) error {
	switch k {
	case "fill":
		if strings.HasPrefix(v, "url(") { // gradients and patterns are not resolved
			curStyle.Fill = defaultFill
			break
		}
		col, err := parseSVGColor(v)
		if err != nil {
			return c.handleError(err.Error())
		}
		curStyle.Fill = col
	case "fill-rule":
		curStyle.UseNonZeroWinding = v != "evenodd"
	case "opacity", "fill-opacity":
		op, err := parseBasicFloat(v)
		if err != nil {
			return err
		}
		curStyle.FillOpacity *= op
	case "transform":
		m, err := c.parseTransform(v)
		if err != nil {
			return err
		}
		curStyle.transform = m
	}
	return nil
}

// pushStyle parses the style element, and push it on the style stack. Only fill color, opacity
// and transform are supported. Note that this parses both the contents of a style attribute plus
// direct fill and opacity attributes.
func (c *iconCursor) pushStyle(attrs []xml.Attr) error {
	// Make a copy of the top style
	curStyle := c.styleStack[len(c.styleStack)-1]
	for _, attr := range attrs {
		name := strings.ToLower(attr.Name.Local)
		if name != "style" {
			if err := c.readStyleAttr(&curStyle, name, strings.TrimSpace(attr.Value)); err != nil {
				return err
			}
			continue
		}
		for _, pair := range strings.Split(attr.Value, ";") {
			kv := strings.SplitN(pair, ":", 2)
			if len(kv) != 2 {
				continue
			}
			k := strings.ToLower(strings.TrimSpace(kv[0]))
			if err := c.readStyleAttr(&curStyle, k, strings.TrimSpace(kv[1])); err != nil {
				return err
			}
		}
	}
	c.styleStack = append(c.styleStack, curStyle) // Push style onto stack
	return nil
}

// appendPath stores the path built by the cursor, if any,
// with the current style.
func (c *iconCursor) appendPath() {
	if len(c.path) == 0 {
		return
	}
	pathCopy := append(Path{}, c.path...)
	c.icon.SVGPaths = append(c.icon.SVGPaths,
		SvgPath{Path: pathCopy, Style: c.styleStack[len(c.styleStack)-1]})
	c.path = c.path[:0]
}

// flushDef stores the pending definition under its ID.
func (c *iconCursor) flushDef() {
	if len(c.currentDef) == 0 {
		return
	}
	c.icon.defs[c.currentDef[0].ID] = c.currentDef
	c.currentDef = nil
}

func (c *iconCursor) readStartElement(se xml.StartElement) (err error) {
	if c.inDefs {
		ID := ""
		for _, attr := range se.Attr {
			if attr.Name.Local == "id" {
				ID = attr.Value
			}
		}
		if ID != "" {
			c.flushDef()
		}
		c.currentDef = append(c.currentDef, definition{
			ID:    ID,
			Tag:   se.Name.Local,
			Attrs: se.Attr,
		})
		return nil
	}
	df, ok := drawFuncs[se.Name.Local]
	if !ok {
		return c.handleError("Cannot process svg element " + se.Name.Local)
	}
	if err = df(c, se.Attr); err != nil {
		return err
	}
	c.appendPath()
	return nil
}
