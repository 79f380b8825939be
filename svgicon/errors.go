package svgicon

import (
	"errors"
	"log"
)

// ErrorMode is the for setting how the parser reacts to unparsed elements
type ErrorMode uint8

const (
	// IgnoreErrorMode skips unsupported elements silently
	IgnoreErrorMode ErrorMode = iota
	// WarnErrorMode logs a warning for each unsupported element
	WarnErrorMode
	// StrictErrorMode makes the parser fail on unsupported elements
	StrictErrorMode
)

var (
	errParamMismatch  = errors.New("param mismatch")
	errCommandUnknown = errors.New("unknown command")

	// ErrNoPaths is returned when an icon has no drawable path.
	ErrNoPaths = errors.New("svg contains no path")
	// ErrEmptyPath is returned when computing the bounds of a path without segments.
	ErrEmptyPath = errors.New("path has no segment")
)

// handleError reports a non geometric problem, according to the error mode.
func (c *pathCursor) handleError(errStr string) error {
	switch c.errorMode {
	case StrictErrorMode:
		return errors.New(errStr)
	case WarnErrorMode:
		log.Println(errStr)
	}
	return nil
}
