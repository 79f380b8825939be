package svgicon

import (
	"math"
	"strconv"
	"strings"
)

type percentageReference uint8

const (
	widthPercentage percentageReference = iota
	heightPercentage
	diagPercentage
)

// absolute units, in user units (px)
var unitFactors = map[string]float64{
	"px": 1,
	"pt": 4. / 3,
	"pc": 16,
	"mm": 96 / 25.4,
	"cm": 96 / 2.54,
	"in": 96,
}

// parseBasicFloat parses a number, allowing a "px" suffix
func parseBasicFloat(v string) (float64, error) {
	v = strings.TrimSuffix(strings.TrimSpace(v), "px")
	return strconv.ParseFloat(v, 64)
}

// parseUnit parses a length, which may use an absolute unit
// or be a percentage of the viewBox dimension given by `ref`.
func (c *iconCursor) parseUnit(v string, ref percentageReference) (float64, error) {
	v = strings.TrimSpace(v)
	if strings.HasSuffix(v, "%") {
		f, err := strconv.ParseFloat(strings.TrimSuffix(v, "%"), 64)
		if err != nil {
			return 0, err
		}
		vb := c.icon.ViewBox
		switch ref {
		case widthPercentage:
			return f / 100 * vb.W, nil
		case heightPercentage:
			return f / 100 * vb.H, nil
		default:
			return f / 100 * math.Sqrt(vb.W*vb.W+vb.H*vb.H) / math.Sqrt2, nil
		}
	}
	if len(v) > 2 {
		if factor, ok := unitFactors[v[len(v)-2:]]; ok {
			f, err := strconv.ParseFloat(v[:len(v)-2], 64)
			return f * factor, err
		}
	}
	return strconv.ParseFloat(v, 64)
}
