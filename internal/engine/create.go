package engine

import (
	"math"

	"github.com/nvaldez/daygrid/internal/layout"
	"github.com/nvaldez/daygrid/internal/timeblock"
)

// Default interval for the first block of an empty day.
const (
	defaultStart = "9:00 AM"
	defaultEnd   = "9:30 AM"
)

// snapPx is how close (in pixels) a press must land to an existing block
// before the new block snaps flush against it instead of centering on the
// press.
const snapPx = 20

// junction is the inter-block boundary nearest a press: the top (above) or
// bottom (!above) edge of the block at index.
type junction struct {
	index int
	above bool
}

// closestJunction scans the layout top to bottom, tracking the nearest block
// edge to y. The scan stops as soon as the distance to a block's top edge
// starts growing, since offsets are monotonically increasing.
func closestJunction(records []layout.Record, y float64) junction {
	minDist := math.MaxFloat64
	var j junction
	for i, r := range records {
		dTop := math.Abs(float64(r.OffsetPx) - y)
		dBot := math.Abs(float64(r.OffsetPx+r.HeightPx) - y)

		if dTop > minDist {
			break
		}
		if dTop > dBot {
			j = junction{index: i, above: false}
			minDist = dBot
		} else {
			j = junction{index: i, above: true}
			break
		}
	}
	return j
}

// Create places a new empty-titled timeblock at the press position y (pixels
// from the top of the timeline). On an empty day the press position is
// ignored and a default half-hour block is created. Otherwise the block is
// fitted to the nearest junction: centered on the press when there is room,
// snapped flush against a neighbor when there is not, and squeezed in with a
// shift cascade when the gap is smaller than the minimum duration. Returns
// ErrDayBoundary when making room would push a block out of the day.
func Create(s DayState, y float64) (DayState, error) {
	id := s.LastID + 1

	if len(s.Blocks) == 0 {
		tb := newBlock(id, defaultStart, defaultEnd)
		next := Reduce(s, SetBlocksAndOrder{Blocks: []*timeblock.Timeblock{tb}, Order: []int64{id}})
		return Reduce(next, SetLastID{ID: id}), nil
	}

	// presses on the header above the timeline clamp to the top
	if y < 0 {
		y = 0
	}

	records := layout.Compute(s.Blocks)
	j := closestJunction(records, y)

	var tb *timeblock.Timeblock
	var shiftAmt int
	switch {
	case j.index == 0 && j.above:
		tb, shiftAmt = placeAboveFirst(s.Blocks, records, y, id)
	case j.index == len(records)-1 && !j.above:
		tb, shiftAmt = placeBelowLast(s.Blocks, records, y, id)
	default:
		tb, shiftAmt = placeInGap(s.Blocks, records, j, y, id)
	}

	insertIdx := j.index
	if !j.above {
		insertIdx++
	}

	blocks := timeblock.CloneAll(s.Blocks)
	switch {
	case shiftAmt > 0:
		if err := shiftDown(blocks, insertIdx, shiftAmt); err != nil {
			// no room below: push the blocks above the junction up
			// instead and re-anchor the new block on its lower neighbor
			if insertIdx < 1 {
				return s, err
			}
			blocks = timeblock.CloneAll(s.Blocks)
			if err := shiftUp(blocks, insertIdx-1, -shiftAmt); err != nil {
				return s, err
			}
			tb.End = blocks[insertIdx].Start
			tb.Start = timeblock.AddMinutes(tb.End, -tb.Minutes)
			tb.Recompute()
		}
	case shiftAmt < 0:
		end := j.index
		if j.above {
			end--
		}
		if err := shiftUp(blocks, end, shiftAmt); err != nil {
			return s, err
		}
	}

	blocks = timeblock.InsertAt(blocks, insertIdx, tb)
	order := timeblock.InsertIDAt(append([]int64(nil), s.Order...), insertIdx, id)

	next := Reduce(s, SetBlocksAndOrder{Blocks: blocks, Order: order})
	return Reduce(next, SetLastID{ID: id}), nil
}

// placeAboveFirst fits the new block above the day's earliest block.
func placeAboveFirst(blocks []*timeblock.Timeblock, records []layout.Record, y float64, id int64) (*timeblock.Timeblock, int) {
	first := blocks[0]
	firstOff := float64(records[0].OffsetPx)
	firstMins := timeblock.MinuteOfHour(first.Start)

	if timeblock.MustParseClock(first.Start) < 60 { // first block starts within the midnight hour
		switch {
		case firstMins <= 5:
			// squeeze a minimum block against midnight, shifting for room
			return newBlock(id, "12:00 AM", "12:05 AM"), 5 - firstMins
		case firstMins <= 30:
			return newBlock(id, "12:00 AM", first.Start), 0
		case y <= snapPx:
			return newBlock(id, "12:00 AM", "12:30 AM"), 0
		case firstOff-y <= snapPx:
			return newBlock(id, timeblock.AddMinutes(first.Start, -30), first.Start), 0
		default:
			mins := roundUpTo5(int(math.Ceil(firstOff - y + 15)))
			start := timeblock.AddMinutes(first.Start, -mins)
			return newBlock(id, start, timeblock.AddMinutes(start, 30)), 0
		}
	}

	// snap flush under the first block when the press is close to it or the
	// space on screen is too small to center in
	if firstMins <= 15 || y+snapPx >= firstOff {
		end := first.Start
		if m := firstMins % 5; m != 0 {
			end = timeblock.AddMinutes(end, -m)
		}
		return newBlock(id, timeblock.AddMinutes(end, -30), end), 0
	}

	mins := roundUpTo5(int(math.Ceil(firstOff - y + 15)))
	start := timeblock.AddMinutes(first.Start, -mins)
	return newBlock(id, start, timeblock.AddMinutes(start, 30)), 0
}

// placeBelowLast fits the new block after the day's latest block.
func placeBelowLast(blocks []*timeblock.Timeblock, records []layout.Record, y float64, id int64) (*timeblock.Timeblock, int) {
	last := blocks[len(blocks)-1]
	r := records[len(records)-1]
	bottom := float64(r.OffsetPx + r.HeightPx)
	endMins := timeblock.MinuteOfHour(last.End)

	if timeblock.MustParseClock(last.End) >= 23*60 { // last block ends within the 11 PM hour
		to1159 := 59 - endMins
		switch {
		case to1159 <= 5:
			// squeeze a minimum block against the end of the day,
			// shifting the last block up for room
			return newBlock(id, "11:50 PM", "11:55 PM"), -(endMins - 50)
		case to1159 <= 34:
			return newBlock(id, last.End, lastEnd), 0
		case y-bottom <= snapPx:
			return newBlock(id, last.End, timeblock.AddMinutes(last.End, 30)), 0
		case y > bottom+float64(to1159)-snapPx:
			return newBlock(id, "11:25 PM", lastEnd), 0
		default:
			mins := roundUpTo5(int(math.Floor(y - bottom - 15)))
			start := timeblock.AddMinutes(last.End, mins)
			return newBlock(id, start, timeblock.AddMinutes(start, 30)), 0
		}
	}

	if y-bottom < snapPx {
		return newBlock(id, last.End, timeblock.AddMinutes(last.End, 30)), 0
	}

	mins := roundUpTo5(int(math.Floor(y - bottom - 15)))
	start := timeblock.AddMinutes(last.End, mins)
	// a centered placement that lands too deep in the final hour clamps to
	// the last half hour of the day
	if timeblock.MustParseClock(start) >= 23*60 && timeblock.MinuteOfHour(start) > 25 {
		return newBlock(id, "11:25 PM", lastEnd), 0
	}
	return newBlock(id, start, timeblock.AddMinutes(start, 30)), 0
}

// placeInGap fits the new block between two existing blocks.
func placeInGap(blocks []*timeblock.Timeblock, records []layout.Record, j junction, y float64, id int64) (*timeblock.Timeblock, int) {
	upperIdx := j.index
	if j.above {
		upperIdx--
	}
	upper, lower := blocks[upperIdx], blocks[upperIdx+1]

	gap := timeblock.MinuteDifference(upper.End, lower.Start)
	uMod := timeblock.MinuteOfHour(upper.End) % 5
	lMod := timeblock.MinuteOfHour(lower.Start) % 5

	switch {
	case gap >= timeblock.MinDuration && gap <= 30:
		// fill the gap exactly, rounding the edges in to the grid
		if uMod == 0 && lMod == 0 {
			return newBlock(id, upper.End, lower.Start), 0
		}
		start := upper.End
		if uMod != 0 {
			start = timeblock.AddMinutes(start, 5-uMod)
		}
		end := lower.Start
		if lMod != 0 {
			end = timeblock.AddMinutes(end, -lMod)
		}
		if timeblock.MinuteDifference(start, end) < timeblock.MinDuration {
			return newBlock(id, start, timeblock.AddMinutes(start, timeblock.MinDuration)), timeblock.MinDuration
		}
		return newBlock(id, start, end), 0

	case gap < timeblock.MinDuration:
		// gap too small even for a minimum block: take it over and shift
		// the lower blocks down for the difference
		return newBlock(id, upper.End, timeblock.AddMinutes(upper.End, timeblock.MinDuration)), timeblock.MinDuration - gap

	default: // gap > 30: center on the press when there is room
		ru, rl := records[upperIdx], records[upperIdx+1]
		bottomUpper := float64(ru.OffsetPx + ru.HeightPx)
		topLower := float64(rl.OffsetPx)

		switch {
		case topLower-y < snapPx:
			return newBlock(id, timeblock.AddMinutes(lower.Start, -30), lower.Start), 0
		case y-bottomUpper < snapPx:
			return newBlock(id, upper.End, timeblock.AddMinutes(upper.End, 30)), 0
		default:
			mins := roundUpTo5(int(math.Floor(y - bottomUpper - 15)))
			start := timeblock.AddMinutes(upper.End, mins)
			return newBlock(id, start, timeblock.AddMinutes(start, 30)), 0
		}
	}
}

// newBlock builds an untitled, uncategorized block from already-validated
// times.
func newBlock(id int64, start, end string) *timeblock.Timeblock {
	tb := &timeblock.Timeblock{ID: id, Start: start, End: end}
	tb.Recompute()
	return tb
}

// roundUpTo5 rounds n up to the next multiple of 5.
func roundUpTo5(n int) int {
	if m := n % 5; m > 0 {
		return n + 5 - m
	}
	return n
}
