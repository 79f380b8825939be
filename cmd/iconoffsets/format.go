package main

import (
	"fmt"
	"math"
	"os"
	"time"

	"golang.org/x/term"
)

// messageType is a placeholder for the various message types.
type messageType int

const (
	defaultMessage messageType = iota
	successMessage
	errorMessage
	statusMessage
)

const (
	defaultColor = "\x1b[0m"
	statusColor  = "\x1b[36m"
	successColor = "\x1b[32m"
	errorColor   = "\x1b[31m"
)

// useColors is true when the messages are written to a terminal.
var useColors = term.IsTerminal(int(os.Stderr.Fd()))

// decorateText shows the message types in different colors.
func decorateText(s string, msgType messageType) string {
	if !useColors {
		return s
	}
	switch msgType {
	case defaultMessage:
		s = defaultColor + s
	case statusMessage:
		s = statusColor + s
	case successMessage:
		s = successColor + s
	case errorMessage:
		s = errorColor + s
	default:
		return s
	}
	return s + defaultColor
}

// formatTime formats time.Duration output to a human readable value.
func formatTime(d time.Duration) string {
	if d.Seconds() < 60.0 {
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
	remainingSeconds := math.Mod(d.Seconds(), 60)
	return fmt.Sprintf("%dm %.2fs", int64(d.Minutes()), remainingSeconds)
}
