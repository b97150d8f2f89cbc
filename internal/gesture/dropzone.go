// Package gesture translates raw pointer input into engine operations:
// double presses into creates, vertical pulls into resizes, drag releases
// into drops, and horizontal slides into deletes. All coordinates are
// pixels; vertical drag coordinates are relative to the top of the dragged
// block, negative above it.
package gesture

import (
	"fmt"
	"math"

	"github.com/nvaldez/daygrid/internal/engine"
	"github.com/nvaldez/daygrid/internal/layout"
	"github.com/nvaldez/daygrid/internal/timeblock"
)

const (
	// topZoneMarginPx extends the zone above the first block past the top
	// of the timeline.
	topZoneMarginPx = 60
	// tailZonePx is the height of the open zone below the last block.
	tailZonePx = 100
	// tailOverflowProportion compensates for drag translations running off
	// the bottom of the screen in the tail zone.
	tailOverflowProportion = 0.2
)

// Zone is one vertical window a dragged block can be released into, bounded
// by (half of) the blocks on either side. UpperEnd and LowerEnd mark where
// the bounding blocks themselves begin; a release between MinY/MaxY but
// beyond one of them landed on top of a block rather than in the gap.
// UpperEnd is -Inf for the zone above the first block and LowerEnd +Inf for
// the zone below the last.
type Zone struct {
	Target   int // index of the block whose boundary this zone drops at
	MinY     float64
	MaxY     float64
	UpperEnd float64
	LowerEnd float64
}

// Dropzones builds the release windows for dragging the block with the given
// id, one per other block on the day, in timeline order. The second return
// is the dragged block's index. Returns ErrNotFound when the id is not in
// the layout.
func Dropzones(records []layout.Record, thisID int64) ([]Zone, int, error) {
	thisIdx := -1
	for i, r := range records {
		if r.ID == thisID {
			thisIdx = i
			break
		}
	}
	if thisIdx < 0 {
		return nil, 0, fmt.Errorf("%w: id %d not in layout", timeblock.ErrNotFound, thisID)
	}
	thisOff := float64(records[thisIdx].OffsetPx)

	var zones []Zone
	passedThis := false
	for i, r := range records {
		if r.ID == thisID {
			passedThis = true
			continue
		}

		switch {
		case i == 0:
			lowerEnd := float64(r.OffsetPx) - thisOff
			zones = append(zones, Zone{
				Target:   0,
				MinY:     -thisOff - topZoneMarginPx,
				MaxY:     lowerEnd + 0.5*float64(r.HeightPx),
				UpperEnd: math.Inf(-1),
				LowerEnd: lowerEnd,
			})

		case i == len(records)-1:
			upperEnd := float64(r.OffsetPx+r.HeightPx) - thisOff
			zones = append(zones, Zone{
				Target:   i,
				MinY:     upperEnd - 0.5*float64(r.HeightPx),
				MaxY:     upperEnd + tailZonePx,
				UpperEnd: upperEnd,
				LowerEnd: math.Inf(1),
			})

		case !passedThis:
			upper, lower := records[i-1], records[i]
			upperEnd := float64(upper.OffsetPx+upper.HeightPx) - thisOff
			lowerEnd := float64(lower.OffsetPx) - thisOff
			zones = append(zones, Zone{
				Target:   i,
				MinY:     upperEnd - 0.5*float64(upper.HeightPx),
				MaxY:     lowerEnd + 0.5*float64(lower.HeightPx),
				UpperEnd: upperEnd,
				LowerEnd: lowerEnd,
			})

		default:
			upper, lower := records[i], records[i+1]
			upperEnd := float64(upper.OffsetPx+upper.HeightPx) - thisOff
			lowerEnd := float64(lower.OffsetPx) - thisOff
			zones = append(zones, Zone{
				Target:   i,
				MinY:     upperEnd - 0.5*float64(upper.HeightPx),
				MaxY:     lowerEnd + 0.5*float64(lower.HeightPx),
				UpperEnd: upperEnd,
				LowerEnd: lowerEnd,
			})
		}
	}

	return zones, thisIdx, nil
}

// ResolveDrop matches a drag release against the zones. translationY is the
// drag distance (negative upward) and pressY the offset of the initiating
// press within the dragged block; their sum locates the release. Returns the
// resolved drop, whether the drag went up, and whether any zone matched.
func ResolveDrop(zones []Zone, translationY, pressY float64) (engine.Drop, bool, bool) {
	y := translationY + pressY
	draggedUp := translationY < 0

	for i, z := range zones {
		if y <= z.MinY || y >= z.MaxY {
			continue
		}

		onUpper := y < z.UpperEnd
		onLower := y > z.LowerEnd

		var p float64
		switch {
		case onUpper || onLower:
			p = 0
		case draggedUp:
			if z.Target == 0 {
				p = (z.LowerEnd - y) / (z.LowerEnd - z.MinY)
			} else {
				p = (z.LowerEnd - y) / (z.LowerEnd - z.UpperEnd)
			}
		default:
			if i == len(zones)-1 {
				p = (y-z.UpperEnd)/(z.MaxY-z.UpperEnd) + tailOverflowProportion
			} else {
				p = (y - z.UpperEnd) / (z.LowerEnd - z.UpperEnd)
			}
		}

		return engine.Drop{Zone: z.Target, OnUpper: onUpper, OnLower: onLower, Proportion: p}, draggedUp, true
	}

	return engine.Drop{}, draggedUp, false
}
