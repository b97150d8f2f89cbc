package engine

import (
	"github.com/nvaldez/daygrid/internal/timeblock"
)

// lastEnd is the latest time a pulled or shifted block may end at.
const lastEnd = "11:55 PM"

// PullLimits bounds a resize gesture on the block at index i. MaxTopMinutes
// is how far the start edge may move earlier; MaxBottomMinutes is how far
// the end edge may move later. Both are non-negative.
//
// The first block's start edge stops at its own starting hour rather than at
// midnight, so a pull never scrolls the ruler; the last block's end edge
// stops at 11:55 PM. Interior edges stop at the neighboring block.
func PullLimits(blocks []*timeblock.Timeblock, i int) (maxTopMinutes, maxBottomMinutes int) {
	tb := blocks[i]

	switch {
	case len(blocks) == 1:
		return timeblock.MinuteOfHour(tb.Start), timeblock.MinuteDifference(tb.End, lastEnd)
	case i == 0:
		return timeblock.MinuteOfHour(tb.Start), timeblock.MinuteDifference(tb.End, blocks[i+1].Start)
	case i == len(blocks)-1:
		return timeblock.MinuteDifference(blocks[i-1].End, tb.Start), timeblock.MinuteDifference(tb.End, lastEnd)
	default:
		return timeblock.MinuteDifference(blocks[i-1].End, tb.Start), timeblock.MinuteDifference(tb.End, blocks[i+1].Start)
	}
}

// Edge selects which side of a block a resize moves.
type Edge int

const (
	EdgeTop Edge = iota
	EdgeBottom
)

// Resize moves one edge of the block with the given id by delta minutes,
// positive meaning later. The edge is clamped to the neighboring block (or
// the day bound) from PullLimits and the block never shrinks below the
// minimum duration, so an oversized pull snaps to the nearest legal edge
// instead of failing.
func Resize(s DayState, id int64, edge Edge, delta int) (DayState, error) {
	i := timeblock.IndexOf(s.Blocks, id)
	if i < 0 {
		return s, timeblock.ErrNotFound
	}

	maxTop, maxBottom := PullLimits(s.Blocks, i)
	blocks := timeblock.CloneAll(s.Blocks)
	tb := blocks[i]

	start := timeblock.MustParseClock(tb.Start)
	end := timeblock.MustParseClock(tb.End)

	switch edge {
	case EdgeTop:
		newStart := start + delta
		if newStart < start-maxTop {
			newStart = start - maxTop
		}
		if newStart > end-timeblock.MinDuration {
			newStart = end - timeblock.MinDuration
		}
		tb.Start = timeblock.FormatClock(newStart)
	case EdgeBottom:
		newEnd := end + delta
		if newEnd > end+maxBottom {
			newEnd = end + maxBottom
		}
		if newEnd < start+timeblock.MinDuration {
			newEnd = start + timeblock.MinDuration
		}
		tb.End = timeblock.FormatClock(newEnd)
	}
	tb.Recompute()

	return Reduce(s, SetBlocks{Blocks: blocks}), nil
}
