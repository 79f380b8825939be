package svgicon

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// parseSVGColor parses an SVG color value.
// A nil color is returned for "none".
func parseSVGColor(colorStr string) (color.Color, error) {
	v := strings.ToLower(strings.TrimSpace(colorStr))
	switch {
	case v == "none":
		return nil, nil
	case v == "currentcolor":
		return color.NRGBA{A: 0xff}, nil
	case strings.HasPrefix(v, "#"):
		return parseHexColor(v[1:])
	case strings.HasPrefix(v, "rgb(") && strings.HasSuffix(v, ")"):
		return parseRGBColor(v[4 : len(v)-1])
	}
	if cn, ok := colornames.Map[v]; ok {
		return cn, nil
	}
	return nil, fmt.Errorf("unsupported color %q", colorStr)
}

func parseHexColor(v string) (color.Color, error) {
	if len(v) == 3 {
		v = string([]byte{v[0], v[0], v[1], v[1], v[2], v[2]})
	}
	if len(v) != 6 {
		return nil, fmt.Errorf("invalid hex color #%s", v)
	}
	n, err := strconv.ParseUint(v, 16, 32)
	if err != nil {
		return nil, err
	}
	return color.NRGBA{R: uint8(n >> 16), G: uint8(n >> 8), B: uint8(n), A: 0xff}, nil
}

func parseRGBColor(v string) (color.Color, error) {
	vals := splitOnCommaOrSpace(v)
	if len(vals) != 3 {
		return nil, errors.New("rgb color requires 3 components")
	}
	var cvals [3]uint8
	for i, s := range vals {
		var (
			f   float64
			err error
		)
		if strings.HasSuffix(s, "%") {
			f, err = strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
			f = f * 255 / 100
		} else {
			f, err = strconv.ParseFloat(s, 64)
		}
		if err != nil {
			return nil, err
		}
		if f < 0 {
			f = 0
		} else if f > 255 {
			f = 255
		}
		cvals[i] = uint8(f + 0.5)
	}
	return color.NRGBA{R: cvals[0], G: cvals[1], B: cvals[2], A: 0xff}, nil
}

// splitOnCommaOrSpace returns a list of strings after splitting the input on comma and space delimiters
func splitOnCommaOrSpace(s string) []string {
	return strings.FieldsFunc(s,
		func(r rune) bool {
			return r == ',' || r == ' '
		})
}
