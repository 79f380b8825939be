package svgicon

import (
	"encoding/xml"
	"errors"
	"fmt"
	"strings"
)

// maxUseDepth bounds the nesting of use elements
const maxUseDepth = 16

func init() {
	// avoids cyclical static declaration
	// called on package initialization
	drawFuncs["use"] = useF
}

type svgFunc func(c *iconCursor, attrs []xml.Attr) error

var drawFuncs = map[string]svgFunc{
	"svg":      svgF,
	"g":        gF,
	"a":        gF,
	"switch":   gF,
	"line":     lineF,
	"rect":     rectF,
	"circle":   circleF,
	"ellipse":  circleF, //circleF handles ellipse also
	"polyline": polylineF,
	"polygon":  polygonF,
	"path":     pathF,
	"defs":     defsF,
}

func svgF(c *iconCursor, attrs []xml.Attr) error {
	c.icon.ViewBox = Bounds{}
	var width, height float64
	var err error
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "viewBox":
			if err = c.getPoints(attr.Value); err != nil {
				return err
			}
			if len(c.points) != 4 {
				return errParamMismatch
			}
			c.icon.ViewBox.X = c.points[0]
			c.icon.ViewBox.Y = c.points[1]
			c.icon.ViewBox.W = c.points[2]
			c.icon.ViewBox.H = c.points[3]
		case "width":
			c.icon.Width = attr.Value
			if !strings.HasSuffix(attr.Value, "%") {
				width, err = parseBasicFloat(attr.Value)
			}
		case "height":
			c.icon.Height = attr.Value
			if !strings.HasSuffix(attr.Value, "%") {
				height, err = parseBasicFloat(attr.Value)
			}
		}
		if err != nil {
			return err
		}
	}
	if c.icon.ViewBox.W == 0 {
		c.icon.ViewBox.W = width
	}
	if c.icon.ViewBox.H == 0 {
		c.icon.ViewBox.H = height
	}
	return nil
}

func gF(*iconCursor, []xml.Attr) error { return nil } // g does nothing but push the style

func rectF(c *iconCursor, attrs []xml.Attr) error {
	var x, y, w, h, rx, ry float64
	var err error
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "x":
			x, err = c.parseUnit(attr.Value, widthPercentage)
		case "y":
			y, err = c.parseUnit(attr.Value, heightPercentage)
		case "width":
			w, err = c.parseUnit(attr.Value, widthPercentage)
		case "height":
			h, err = c.parseUnit(attr.Value, heightPercentage)
		case "rx":
			rx, err = c.parseUnit(attr.Value, widthPercentage)
		case "ry":
			ry, err = c.parseUnit(attr.Value, heightPercentage)
		}
		if err != nil {
			return err
		}
	}
	if w <= 0 || h <= 0 { // not drawn, but not an error
		return nil
	}
	c.path.addRoundRect(x, y, x+w, y+h, rx, ry)
	return nil
}

func circleF(c *iconCursor, attrs []xml.Attr) error {
	var cx, cy, rx, ry float64
	var err error
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "cx":
			cx, err = c.parseUnit(attr.Value, widthPercentage)
		case "cy":
			cy, err = c.parseUnit(attr.Value, heightPercentage)
		case "r":
			rx, err = c.parseUnit(attr.Value, diagPercentage)
			ry = rx
		case "rx":
			rx, err = c.parseUnit(attr.Value, widthPercentage)
		case "ry":
			ry, err = c.parseUnit(attr.Value, heightPercentage)
		}
		if err != nil {
			return err
		}
	}
	if rx <= 0 || ry <= 0 { // not drawn, but not an error
		return nil
	}
	c.ellipseAt(cx, cy, rx, ry)
	return nil
}

func lineF(c *iconCursor, attrs []xml.Attr) error {
	var x1, x2, y1, y2 float64
	var err error
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "x1":
			x1, err = c.parseUnit(attr.Value, widthPercentage)
		case "x2":
			x2, err = c.parseUnit(attr.Value, widthPercentage)
		case "y1":
			y1, err = c.parseUnit(attr.Value, heightPercentage)
		case "y2":
			y2, err = c.parseUnit(attr.Value, heightPercentage)
		}
		if err != nil {
			return err
		}
	}
	c.path.Start(Point{x1, y1})
	c.path.Line(Point{x2, y2})
	return nil
}

func polylineF(c *iconCursor, attrs []xml.Attr) error {
	c.points = c.points[:0]
	for _, attr := range attrs {
		if attr.Name.Local != "points" {
			continue
		}
		if err := c.getPoints(attr.Value); err != nil {
			return err
		}
		if len(c.points)%2 != 0 {
			return errors.New("polygon has odd number of points")
		}
	}
	if len(c.points) >= 4 {
		c.path.Start(Point{c.points[0], c.points[1]})
		for i := 2; i < len(c.points)-1; i += 2 {
			c.path.Line(Point{c.points[i], c.points[i+1]})
		}
	}
	return nil
}

func polygonF(c *iconCursor, attrs []xml.Attr) error {
	err := polylineF(c, attrs)
	if len(c.points) >= 4 {
		c.path.Stop(true)
	}
	return err
}

func pathF(c *iconCursor, attrs []xml.Attr) error {
	for _, attr := range attrs {
		if attr.Name.Local != "d" {
			continue
		}
		if err := c.compilePath(attr.Value); err != nil {
			return fmt.Errorf("invalid path data: %w", err)
		}
	}
	return nil
}

func defsF(c *iconCursor, attrs []xml.Attr) error {
	c.inDefs = true
	return nil
}

// useF draws the elements stored under the referenced id,
// translated by the x and y attributes.
func useF(c *iconCursor, attrs []xml.Attr) error {
	var (
		href string
		x, y float64
		err  error
	)
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "href":
			href = attr.Value
		case "x":
			x, err = c.parseUnit(attr.Value, widthPercentage)
		case "y":
			y, err = c.parseUnit(attr.Value, heightPercentage)
		}
		if err != nil {
			return err
		}
	}
	if !strings.HasPrefix(href, "#") {
		return c.handleError("only use tags with an ID reference are supported")
	}
	defs, ok := c.icon.defs[href[1:]]
	if !ok {
		return c.handleError("href ID " + href + " in use statement was not found in saved defs")
	}
	if c.useDepth >= maxUseDepth {
		return errors.New("too many nested use elements")
	}
	c.useDepth++
	defer func() { c.useDepth-- }()

	top := &c.styleStack[len(c.styleStack)-1]
	top.transform = top.transform.Translate(x, y)
	stackSize := len(c.styleStack)
	for _, def := range defs {
		if def.Tag == "endg" {
			// pop style
			if len(c.styleStack) > stackSize {
				c.styleStack = c.styleStack[:len(c.styleStack)-1]
			}
			continue
		}
		if err = c.pushStyle(def.Attrs); err != nil {
			return err
		}
		df, ok := drawFuncs[def.Tag]
		if !ok {
			if err := c.handleError("Cannot process svg element " + def.Tag); err != nil {
				return err
			}
		} else if err := df(c, def.Attrs); err != nil {
			return err
		}
		c.appendPath()
		if def.Tag != "g" {
			// pop style
			c.styleStack = c.styleStack[:len(c.styleStack)-1]
		}
	}
	c.styleStack = c.styleStack[:stackSize] // unclosed groups
	return nil
}
