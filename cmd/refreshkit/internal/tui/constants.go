package tui

import "time"

const (
	// pointsPerLine converts surface points to terminal lines. Rows are one
	// line tall.
	pointsPerLine = 20.0
	// dragStep is how far one key press moves the finger.
	dragStep = 20.0

	// chromeLines are the title, status and help lines around the list.
	chromeLines      = 4
	minViewportLines = 6
	pullBarWidth     = 16

	settleDelay  = 120 * time.Millisecond
	hideDuration = 400 * time.Millisecond
)
