package svgicon

import (
	"math"
	"strconv"
	"strings"
)

// pathCursor parses SVG path data (the `d` attribute) and
// the number lists found in other attributes.
type pathCursor struct {
	path                   Path
	placeX, placeY         float64 // current point
	cntlPtX, cntlPtY       float64 // last control point, reflected by S and T
	pathStartX, pathStartY float64 // first point of the current sub-path
	points                 []float64
	lastKey                byte
	errorMode              ErrorMode
	inPath                 bool
}

func (c *pathCursor) init() {
	c.placeX, c.placeY = 0, 0
	c.cntlPtX, c.cntlPtY = 0, 0
	c.pathStartX, c.pathStartY = 0, 0
	c.points = c.points[:0]
	c.lastKey = ' '
	c.inPath = false
}

func (c *pathCursor) readFloat(numStr string) error {
	f, err := strconv.ParseFloat(numStr, 64)
	if err != nil {
		return err
	}
	c.points = append(c.points, f)
	return nil
}

// getPoints reads a set of floating point values from the SVG format number string,
// and places them in the points slice. Numbers may be separated by
// spaces or commas, or simply follow each other ("1-2", "0.5.5").
func (c *pathCursor) getPoints(dataPoints string) error {
	c.points = c.points[:0]
	start := -1
	var seenDot, seenExp bool
	for i := 0; i < len(dataPoints); i++ {
		switch r := dataPoints[i]; {
		case '0' <= r && r <= '9':
			if start == -1 {
				start, seenDot, seenExp = i, false, false
			}
		case r == '.':
			if start != -1 && (seenDot || seenExp) {
				if err := c.readFloat(dataPoints[start:i]); err != nil {
					return err
				}
				start = -1
			}
			if start == -1 {
				start, seenExp = i, false
			}
			seenDot = true
		case r == 'e' || r == 'E':
			if start == -1 || seenExp {
				return errParamMismatch
			}
			seenExp = true
		case r == '-' || r == '+':
			if start != -1 && (dataPoints[i-1] == 'e' || dataPoints[i-1] == 'E') {
				continue // exponent sign
			}
			if start != -1 {
				if err := c.readFloat(dataPoints[start:i]); err != nil {
					return err
				}
			}
			start, seenDot, seenExp = i, false, false
		case isSeparator(r):
			if start != -1 {
				if err := c.readFloat(dataPoints[start:i]); err != nil {
					return err
				}
				start = -1
			}
		default:
			return errParamMismatch
		}
	}
	if start != -1 {
		return c.readFloat(dataPoints[start:])
	}
	return nil
}

func isSeparator(r byte) bool {
	return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\f'
}

func isDigit(r byte) bool { return '0' <= r && r <= '9' }

// scanNumber returns the end of the number starting at data[start:],
// or start if there is none.
func scanNumber(data string, start int) int {
	i := start
	if i < len(data) && (data[i] == '+' || data[i] == '-') {
		i++
	}
	digits := 0
	for ; i < len(data) && isDigit(data[i]); i++ {
		digits++
	}
	if i < len(data) && data[i] == '.' {
		i++
		for ; i < len(data) && isDigit(data[i]); i++ {
			digits++
		}
	}
	if digits == 0 {
		return start
	}
	if i < len(data) && (data[i] == 'e' || data[i] == 'E') {
		j := i + 1
		if j < len(data) && (data[j] == '+' || data[j] == '-') {
			j++
		}
		if j < len(data) && isDigit(data[j]) {
			for i = j; i < len(data) && isDigit(data[i]); i++ {
			}
		}
	}
	return i
}

// getArcPoints is the same as getPoints for the arguments of an arc command,
// where the flags are single characters which need no separator,
// as in "a5 5 0 0110 0".
func (c *pathCursor) getArcPoints(dataPoints string) error {
	c.points = c.points[:0]
	i := 0
	for {
		for i < len(dataPoints) && isSeparator(dataPoints[i]) {
			i++
		}
		if i == len(dataPoints) {
			return nil
		}
		if k := len(c.points) % 7; k == 3 || k == 4 { // large arc and sweep flags
			switch dataPoints[i] {
			case '0':
				c.points = append(c.points, 0)
			case '1':
				c.points = append(c.points, 1)
			default:
				return errParamMismatch
			}
			i++
			continue
		}
		end := scanNumber(dataPoints, i)
		if end == i {
			return errParamMismatch
		}
		if err := c.readFloat(dataPoints[i:end]); err != nil {
			return err
		}
		i = end
	}
}

func isCommandLetter(r byte) bool {
	if r == 'e' || r == 'E' {
		return false
	}
	return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}

// compilePath translates the svgPath description string into a path.
// The resulting path is appended to c.path.
func (c *pathCursor) compilePath(svgPath string) error {
	c.init()
	lastIndex := -1
	for i := 0; i < len(svgPath); i++ {
		if !isCommandLetter(svgPath[i]) {
			continue
		}
		if lastIndex != -1 {
			if err := c.addSeg(svgPath[lastIndex:i]); err != nil {
				return err
			}
		}
		lastIndex = i
	}
	if lastIndex != -1 {
		if err := c.addSeg(svgPath[lastIndex:]); err != nil {
			return err
		}
	}
	return nil
}

// abs returns the absolute position of (x, y),
// which is relative to the current point if rel is true.
func (c *pathCursor) abs(rel bool, x, y float64) (float64, float64) {
	if rel {
		return x + c.placeX, y + c.placeY
	}
	return x, y
}

// ensureStart opens a sub-path at the current point, which
// happens for drawing commands following a Z.
func (c *pathCursor) ensureStart() {
	if c.inPath {
		return
	}
	c.path.Start(Point{c.placeX, c.placeY})
	c.pathStartX, c.pathStartY = c.placeX, c.placeY
	c.inPath = true
}

// reflectControl returns the first control point of a smooth curve:
// the reflection of the previous control point when the previous
// command was of the same kind, the current point otherwise.
func (c *pathCursor) reflectControl(previous string) (float64, float64) {
	if strings.IndexByte(previous, c.lastKey) >= 0 {
		return 2*c.placeX - c.cntlPtX, 2*c.placeY - c.cntlPtY
	}
	return c.placeX, c.placeY
}

func (c *pathCursor) lineTo(x, y float64) {
	c.path.Line(Point{x, y})
	c.placeX, c.placeY = x, y
}

// addSeg decodes an SVG segment string into equivalent path commands.
func (c *pathCursor) addSeg(segString string) error {
	k := segString[0]
	getPoints := c.getPoints
	if k == 'a' || k == 'A' {
		getPoints = c.getArcPoints
	}
	if err := getPoints(segString[1:]); err != nil {
		return err
	}
	l := len(c.points)
	rel := 'a' <= k && k <= 'z'
	switch k {
	case 'z', 'Z':
		if l != 0 {
			return errParamMismatch
		}
		if c.inPath {
			c.path.Stop(true)
			c.placeX, c.placeY = c.pathStartX, c.pathStartY
			c.inPath = false
		}
	case 'm', 'M':
		if l == 0 || l%2 != 0 {
			return errParamMismatch
		}
		for i := 0; i < l; i += 2 {
			x, y := c.abs(rel, c.points[i], c.points[i+1])
			if i == 0 {
				// subsequent pairs are implicit line-to commands
				c.path.Start(Point{x, y})
				c.pathStartX, c.pathStartY = x, y
				c.inPath = true
				c.placeX, c.placeY = x, y
				continue
			}
			c.lineTo(x, y)
		}
	case 'l', 'L':
		if l == 0 || l%2 != 0 {
			return errParamMismatch
		}
		c.ensureStart()
		for i := 0; i < l; i += 2 {
			c.lineTo(c.abs(rel, c.points[i], c.points[i+1]))
		}
	case 'h', 'H':
		if l == 0 {
			return errParamMismatch
		}
		c.ensureStart()
		for _, x := range c.points {
			if rel {
				x += c.placeX
			}
			c.lineTo(x, c.placeY)
		}
	case 'v', 'V':
		if l == 0 {
			return errParamMismatch
		}
		c.ensureStart()
		for _, y := range c.points {
			if rel {
				y += c.placeY
			}
			c.lineTo(c.placeX, y)
		}
	case 'q', 'Q':
		if l == 0 || l%4 != 0 {
			return errParamMismatch
		}
		c.ensureStart()
		for i := 0; i < l; i += 4 {
			cx, cy := c.abs(rel, c.points[i], c.points[i+1])
			x, y := c.abs(rel, c.points[i+2], c.points[i+3])
			c.path.QuadBezier(Point{cx, cy}, Point{x, y})
			c.cntlPtX, c.cntlPtY = cx, cy
			c.placeX, c.placeY = x, y
		}
	case 't', 'T':
		if l == 0 || l%2 != 0 {
			return errParamMismatch
		}
		c.ensureStart()
		for i := 0; i < l; i += 2 {
			cx, cy := c.reflectControl("qQtT")
			x, y := c.abs(rel, c.points[i], c.points[i+1])
			c.path.QuadBezier(Point{cx, cy}, Point{x, y})
			c.cntlPtX, c.cntlPtY = cx, cy
			c.placeX, c.placeY = x, y
			c.lastKey = k
		}
	case 'c', 'C':
		if l == 0 || l%6 != 0 {
			return errParamMismatch
		}
		c.ensureStart()
		for i := 0; i < l; i += 6 {
			x1, y1 := c.abs(rel, c.points[i], c.points[i+1])
			x2, y2 := c.abs(rel, c.points[i+2], c.points[i+3])
			x, y := c.abs(rel, c.points[i+4], c.points[i+5])
			c.path.CubeBezier(Point{x1, y1}, Point{x2, y2}, Point{x, y})
			c.cntlPtX, c.cntlPtY = x2, y2
			c.placeX, c.placeY = x, y
		}
	case 's', 'S':
		if l == 0 || l%4 != 0 {
			return errParamMismatch
		}
		c.ensureStart()
		for i := 0; i < l; i += 4 {
			x1, y1 := c.reflectControl("cCsS")
			x2, y2 := c.abs(rel, c.points[i], c.points[i+1])
			x, y := c.abs(rel, c.points[i+2], c.points[i+3])
			c.path.CubeBezier(Point{x1, y1}, Point{x2, y2}, Point{x, y})
			c.cntlPtX, c.cntlPtY = x2, y2
			c.placeX, c.placeY = x, y
			c.lastKey = k
		}
	case 'a', 'A':
		if l == 0 || l%7 != 0 {
			return errParamMismatch
		}
		c.ensureStart()
		for i := 0; i < l; i += 7 {
			ra, rb := math.Abs(c.points[i]), math.Abs(c.points[i+1])
			x, y := c.abs(rel, c.points[i+5], c.points[i+6])
			if x == c.placeX && y == c.placeY {
				continue // identical end points: the arc is omitted
			}
			if ra == 0 || rb == 0 {
				c.lineTo(x, y)
				continue
			}
			rotX := c.points[i+2] * math.Pi / 180
			largeArc, sweep := c.points[i+3] != 0, c.points[i+4] != 0
			cx, cy := findEllipseCenter(&ra, &rb, rotX, c.placeX, c.placeY, x, y, !sweep, !largeArc)
			arc := []float64{ra, rb, c.points[i+2], c.points[i+3], c.points[i+4], x, y}
			c.placeX, c.placeY = c.path.addArc(arc, cx, cy, c.placeX, c.placeY)
		}
	default:
		return errCommandUnknown
	}
	c.lastKey = k
	return nil
}
