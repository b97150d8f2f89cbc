package engine

import (
	"fmt"
	"math"

	"github.com/nvaldez/daygrid/internal/timeblock"
)

// tailZoneMinutes is the size in minutes of the open dropzone below the last
// block: the zone is 100px tall and maps to 50 minutes.
const tailZoneMinutes = 50

// Drop describes where a drag gesture released, as resolved by the gesture
// translator: the target zone (index of the block whose boundary the drop
// lands at), whether the release point was on top of the zone's bounding
// blocks, and how far into the zone it landed (0 to 1, measured in the drag
// direction).
type Drop struct {
	Zone       int
	OnUpper    bool
	OnLower    bool
	Proportion float64
}

// shiftSpec is a fixed-range shift of [start, end) by amt minutes, used to
// open up room for a block dropped into a gap smaller than itself.
type shiftSpec struct {
	start, end, amt int
}

// Move relocates the block with the given id to the dropzone. The block
// keeps its duration; its new times come from the drop position, centered on
// the release point when the gap has room, flush against a bounding block
// when it does not. A drop into a too-small gap shifts the blocks between the
// old and new position to make room. Returns ErrDayBoundary when the drop
// would place the block outside the day.
func Move(s DayState, id int64, draggedUp bool, drop Drop) (DayState, error) {
	droppedIdx := timeblock.IndexOf(s.Blocks, id)
	if droppedIdx < 0 {
		return s, timeblock.ErrNotFound
	}

	startRaw, endRaw, shift := dropTimes(s.Blocks, droppedIdx, draggedUp, drop)

	if drop.Zone == len(s.Blocks)-1 && endRaw > timeblock.LastValidEnd {
		return s, fmt.Errorf("%w: drop would end at %s", timeblock.ErrDayBoundary, timeblock.FormatClock(endRaw))
	}
	if drop.Zone == 0 && startRaw < 0 {
		return s, fmt.Errorf("%w: drop would start before midnight", timeblock.ErrDayBoundary)
	}

	blocks := timeblock.CloneAll(s.Blocks)
	moved := blocks[droppedIdx]
	moved.Start = timeblock.FormatClock(startRaw)
	moved.End = timeblock.FormatClock(endRaw)
	moved.Recompute()

	if shift != nil {
		shiftClosed(blocks, shift.start, shift.end, shift.amt)
	}

	blocks = timeblock.RemoveID(blocks, id)
	blocks = timeblock.InsertAt(blocks, drop.Zone, moved)
	order := timeblock.RemoveFirstID(append([]int64(nil), s.Order...), id)
	order = timeblock.InsertIDAt(order, drop.Zone, id)

	return Reduce(s, SetBlocksAndOrder{Blocks: blocks, Order: order}), nil
}

// dropTimes computes the moved block's new interval in raw minutes from
// midnight, deliberately unclamped so Move can reject out-of-day results,
// plus any range shift needed to make room.
func dropTimes(blocks []*timeblock.Timeblock, droppedIdx int, draggedUp bool, drop Drop) (startRaw, endRaw int, shift *shiftSpec) {
	m := blocks[droppedIdx].Minutes

	if draggedUp {
		if drop.Zone == 0 {
			// zone above the earliest block; its size is the first
			// block's offset from its starting hour
			first := blocks[0]
			firstMins := timeblock.MinuteOfHour(first.Start)

			notEnoughRoom := (m+1)/2+4 >= int(math.Ceil(float64(firstMins)*drop.Proportion))
			if notEnoughRoom || drop.OnLower {
				endRaw = timeblock.MustParseClock(first.Start)
			} else {
				endMins := int(math.Floor(drop.Proportion*float64(firstMins) + float64(m)/2))
				endMins -= endMins % 5
				endRaw = timeblock.MustParseClock(timeblock.StartingHour(first.Start)) + endMins
			}
			return endRaw - m, endRaw, nil
		}

		space := timeblock.MinuteDifference(blocks[drop.Zone-1].End, blocks[drop.Zone].Start)
		extra := space - m
		covered := int(math.Ceil(float64(space) * drop.Proportion))

		switch {
		// the +4 keeps the later rounding down to a 5 from causing overlap
		case extra <= 0 || drop.OnUpper || covered+(m+1)/2+4 > space:
			startRaw = timeblock.MustParseClock(blocks[drop.Zone-1].End)
			endRaw = startRaw + m
			if extra < 0 {
				shift = &shiftSpec{start: drop.Zone, end: droppedIdx, amt: roundUpTo5(-extra)}
			}
		case drop.OnLower || covered-(m+1)/2 < 0:
			endRaw = timeblock.MustParseClock(blocks[drop.Zone].Start)
			startRaw = endRaw - m
		default:
			mins := covered + (m+1)/2
			mins -= mins % 5
			startRaw = timeblock.MustParseClock(blocks[drop.Zone].Start) - mins
			endRaw = startRaw + m
		}
		return startRaw, endRaw, shift
	}

	if drop.Zone == len(blocks)-1 {
		// open zone below the latest block
		last := blocks[drop.Zone]
		covered := drop.Proportion * tailZoneMinutes

		if drop.OnUpper || int(math.Floor(covered-float64(m)/2))-4 < 0 {
			startRaw = timeblock.MustParseClock(last.End)
		} else {
			mins := int(math.Ceil(covered - float64(m)/2))
			mins -= mins % 5
			startRaw = timeblock.MustParseClock(last.End) + mins
		}
		return startRaw, startRaw + m, nil
	}

	space := timeblock.MinuteDifference(blocks[drop.Zone].End, blocks[drop.Zone+1].Start)
	extra := space - m
	covered := int(math.Ceil(float64(space) * drop.Proportion))

	switch {
	case extra <= 0 || drop.OnLower || covered+(m+1)/2+4 > space:
		endRaw = timeblock.MustParseClock(blocks[drop.Zone+1].Start)
		startRaw = endRaw - m
		if extra < 0 {
			shift = &shiftSpec{start: droppedIdx + 1, end: drop.Zone + 1, amt: -roundUpTo5(-extra)}
		}
	case drop.OnUpper || covered-(m+1)/2 < 0:
		startRaw = timeblock.MustParseClock(blocks[drop.Zone].End)
		endRaw = startRaw + m
	default:
		mins := covered - (m+1)/2
		mins -= mins % 5
		startRaw = timeblock.MustParseClock(blocks[drop.Zone].End) + mins
		endRaw = startRaw + m
	}
	return startRaw, endRaw, shift
}
