package engine

import (
	"fmt"

	"github.com/nvaldez/daygrid/internal/timeblock"
)

// shiftBlock moves one block by amt minutes, keeping derived fields fresh.
func shiftBlock(tb *timeblock.Timeblock, amt int) {
	tb.Start = timeblock.AddMinutes(tb.Start, amt)
	tb.End = timeblock.AddMinutes(tb.End, amt)
	tb.Recompute()
}

// shiftDown pushes blocks later by amt (positive) minutes, starting at index
// start and cascading downward only while each shifted block still overlaps
// its successor. Returns ErrDayBoundary if the cascade would push the last
// block past 11:55 PM; blocks is mutated in place only on success, so the
// caller passes a clone.
func shiftDown(blocks []*timeblock.Timeblock, start, amt int) error {
	for i := start; ; i++ {
		if i == len(blocks)-1 {
			if timeblock.MustParseClock(blocks[i].End)+amt > timeblock.LastValidEnd {
				return fmt.Errorf("%w: shifting %s-%s past %s", timeblock.ErrDayBoundary, blocks[i].Start, blocks[i].End, lastEnd)
			}
			shiftBlock(blocks[i], amt)
			return nil
		}

		shiftBlock(blocks[i], amt)
		if timeblock.MinuteDifference(blocks[i].End, blocks[i+1].Start) >= 0 {
			return nil
		}
	}
}

// shiftUp pushes blocks earlier by amt (negative) minutes, starting at index
// end and cascading upward only while each shifted block still overlaps its
// predecessor. Returns ErrDayBoundary if the cascade would push the first
// block before midnight.
func shiftUp(blocks []*timeblock.Timeblock, end, amt int) error {
	for i := end; ; i-- {
		if i == 0 {
			if timeblock.MustParseClock(blocks[0].Start)+amt < 0 {
				return fmt.Errorf("%w: shifting %s-%s before midnight", timeblock.ErrDayBoundary, blocks[0].Start, blocks[0].End)
			}
			shiftBlock(blocks[0], amt)
			return nil
		}

		shiftBlock(blocks[i], amt)
		if timeblock.MinuteDifference(blocks[i-1].End, blocks[i].Start) >= 0 {
			return nil
		}
	}
}

// shiftClosed moves every block in [start, end) by amt minutes with no
// cascade and no bound checks; callers use it for the interior ranges opened
// up by a drag and drop, which stay inside the day by construction.
func shiftClosed(blocks []*timeblock.Timeblock, start, end, amt int) {
	for i := start; i < end; i++ {
		shiftBlock(blocks[i], amt)
	}
}
