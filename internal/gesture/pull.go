package gesture

import "math"

// pullThresholdPx is the minimum vertical travel before a drag counts as a
// pull rather than a stray press.
const pullThresholdPx = 5

// QuantizePull converts a vertical pull translation into a whole 5-minute
// edge movement. clickedTop flips the sign so that pulling the top edge up
// (negative translation) extends the block. ok is false between steps; the
// caller applies an edge change only when a new step is reached.
func QuantizePull(translationY float64, clickedTop bool) (minutes int, ok bool) {
	if math.Abs(translationY) < pullThresholdPx {
		return 0, false
	}

	minutes = int(math.Floor(translationY))
	if clickedTop {
		minutes = -minutes
	}
	if minutes == 0 || minutes%5 != 0 {
		return 0, false
	}
	return minutes, true
}
