package gesture

import (
	"math"
	"time"
)

const (
	// LongPressDelay is how long a press must be held before releasing it
	// commits a drag-and-drop instead of an edge pull.
	LongPressDelay = 500 * time.Millisecond
	// slideRevealPx is the horizontal travel that turns a drag into a
	// delete gesture; travel back past the same distance cancels it.
	slideRevealPx = 20
	// tapSlopPx is the horizontal travel allowed before a press stops
	// counting as a tap.
	tapSlopPx = 10
)

// SlideAction classifies the horizontal component of a drag.
type SlideAction int

const (
	SlideNone SlideAction = iota
	SlideDelete
	SlideCancel
)

// ClassifySlide maps a horizontal translation onto the delete gesture.
// Pulls own the pointer, so a slide during one never reveals the delete.
func ClassifySlide(translationX float64, pulling bool) SlideAction {
	switch {
	case translationX > slideRevealPx && !pulling:
		return SlideDelete
	case translationX < -slideRevealPx:
		return SlideCancel
	default:
		return SlideNone
	}
}

// IsLongPress reports whether a press held this long enters drag mode.
func IsLongPress(held time.Duration) bool {
	return held >= LongPressDelay
}

// WithinTapSlop reports whether a press travelled little enough between
// press and release to still count as a tap.
func WithinTapSlop(pressX, releaseX float64) bool {
	return math.Abs(pressX-releaseX) < tapSlopPx
}
