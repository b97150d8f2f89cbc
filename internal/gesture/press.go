package gesture

import "time"

const (
	// DefaultDoublePressWindow is how close two presses must land to count
	// as a double press.
	DefaultDoublePressWindow = 400 * time.Millisecond
	// headerHeightPx is the date header above the timeline; presses there
	// never create blocks.
	headerHeightPx = 105
)

// PressDetector recognizes double presses on the timeline.
type PressDetector struct {
	window time.Duration
	now    func() time.Time

	last  time.Time
	armed bool
}

// NewPressDetector builds a detector with the given double-press window.
// now is injectable for tests; nil means time.Now.
func NewPressDetector(window time.Duration, now func() time.Time) *PressDetector {
	if window <= 0 {
		window = DefaultDoublePressWindow
	}
	if now == nil {
		now = time.Now
	}
	return &PressDetector{window: window, now: now}
}

// Press registers a press at pageY (pixels from the top of the screen) and
// reports whether it completed a double press below the header. A completed
// double press disarms the detector, so a third press starts over.
func (d *PressDetector) Press(pageY float64) bool {
	t := d.now()
	withinWindow := d.armed && t.Sub(d.last) < d.window
	d.last = t
	d.armed = true

	if withinWindow && pageY > headerHeightPx {
		d.armed = false
		return true
	}
	return false
}
