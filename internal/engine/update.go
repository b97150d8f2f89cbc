package engine

import (
	"github.com/nvaldez/daygrid/internal/timeblock"
)

// Update applies an edit-form submission to the block with the given id:
// task name, category, and times. Times are validated against the rest of
// the day before anything changes. When the new times could alter the day's
// chronology (an earlier start or a later end), the block is re-sorted into
// place and its id relocated in the order index; a pure rename leaves both
// untouched.
func Update(s DayState, id int64, taskName, category, start, end string) (DayState, error) {
	i := timeblock.IndexOf(s.Blocks, id)
	if i < 0 {
		return s, timeblock.ErrNotFound
	}
	old := s.Blocks[i]

	timesChanged := start != old.Start || end != old.End
	if timesChanged {
		if _, err := timeblock.ParseClock(start); err != nil {
			return s, err
		}
		if _, err := timeblock.ParseClock(end); err != nil {
			return s, err
		}
		if err := timeblock.ValidateTimes(s.Blocks, start, end, id); err != nil {
			return s, err
		}
	}

	blocks := timeblock.CloneAll(s.Blocks)
	tb := blocks[i]
	tb.TaskName = taskName
	tb.Category = category
	tb.Start = start
	tb.End = end
	tb.Recompute()

	if !timesChanged {
		return Reduce(s, SetBlocks{Blocks: blocks}), nil
	}

	// an earlier start or a later end is the only way this edit can move the
	// block relative to its neighbors
	possibleNewOrder := timeblock.MinuteDifference(old.Start, start) < 0 ||
		timeblock.MinuteDifference(old.End, end) > 0
	if !possibleNewOrder {
		return Reduce(s, SetBlocks{Blocks: blocks}), nil
	}

	blocks = sortIntoPlace(blocks, id)
	order := reorderID(s.Order, blocks, id, start)
	return Reduce(s, SetBlocksAndOrder{Blocks: blocks, Order: order}), nil
}

// Insert adds a fully specified block at explicit times, used by the CLI
// where there is no press position to infer times from. The interval is
// validated against the day before anything changes.
func Insert(s DayState, taskName, category, start, end string) (DayState, error) {
	if _, err := timeblock.ParseClock(start); err != nil {
		return s, err
	}
	if _, err := timeblock.ParseClock(end); err != nil {
		return s, err
	}
	if err := timeblock.ValidateTimes(s.Blocks, start, end, 0); err != nil {
		return s, err
	}

	id := s.LastID + 1
	tb, err := timeblock.New(id, taskName, category, start, end)
	if err != nil {
		return s, err
	}

	at := len(s.Blocks)
	for j, other := range s.Blocks {
		if timeblock.MinuteDifference(start, other.Start) > 0 {
			at = j
			break
		}
	}

	blocks := timeblock.InsertAt(timeblock.CloneAll(s.Blocks), at, tb)
	order := timeblock.InsertIDAt(append([]int64(nil), s.Order...), at, id)
	next := Reduce(s, SetBlocksAndOrder{Blocks: blocks, Order: order})
	return Reduce(next, SetLastID{ID: id}), nil
}

// Delete removes the block with the given id from the day. Neighboring
// blocks stay where they are; the vacated time becomes a gap.
func Delete(s DayState, id int64) (DayState, error) {
	if timeblock.IndexOf(s.Blocks, id) < 0 {
		return s, timeblock.ErrNotFound
	}

	blocks := timeblock.RemoveID(timeblock.CloneAll(s.Blocks), id)
	order := timeblock.RemoveFirstID(append([]int64(nil), s.Order...), id)
	return Reduce(s, SetBlocksAndOrder{Blocks: blocks, Order: order}), nil
}

// sortIntoPlace relocates the block with the given id to its chronological
// position. The rest of the slice keeps its order.
func sortIntoPlace(blocks []*timeblock.Timeblock, id int64) []*timeblock.Timeblock {
	i := timeblock.IndexOf(blocks, id)
	tb := blocks[i]
	rest := timeblock.RemoveID(blocks, id)

	at := len(rest)
	for j, other := range rest {
		if timeblock.MinuteDifference(tb.Start, other.Start) > 0 {
			at = j
			break
		}
	}
	return timeblock.InsertAt(rest, at, tb)
}

// reorderID relocates id within the order index to the first position whose
// block starts after newStart, or the end when none does.
func reorderID(order []int64, blocks []*timeblock.Timeblock, id int64, newStart string) []int64 {
	rest := timeblock.RemoveFirstID(order, id)

	at := len(rest)
	for j, other := range rest {
		i := timeblock.IndexOf(blocks, other)
		if i < 0 {
			continue
		}
		if timeblock.MinuteDifference(newStart, blocks[i].Start) > 0 {
			at = j
			break
		}
	}
	return timeblock.InsertIDAt(rest, at, id)
}
