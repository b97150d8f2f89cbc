// Package layout converts a day's ordered timeblock list into the pixel
// geometry the day view renders: one record per block plus the hour ruler.
package layout

import (
	"github.com/nvaldez/daygrid/internal/timeblock"
)

// MinHeightPx is the floor applied to short blocks so they stay tappable.
// One pixel corresponds to one minute above this floor.
const MinHeightPx = 30

// Record is the derived, per-render geometry of one timeblock. Records are
// computed fresh from the committed list and never persisted.
type Record struct {
	ID       int64
	OffsetPx int // distance from the top of the timeline
	HeightPx int
}

// Compute lays out blocks (ordered by start time) top to bottom. The first
// record's offset is the start's minute within its hour; each following
// record sits below the previous one plus the gap minutes between them.
func Compute(blocks []*timeblock.Timeblock) []Record {
	if len(blocks) == 0 {
		return nil
	}

	records := make([]Record, 0, len(blocks))

	first := blocks[0]
	offset := timeblock.MinuteOfHour(first.Start)
	height := blockHeight(first)
	records = append(records, Record{ID: first.ID, OffsetPx: offset, HeightPx: height})
	offset += height

	for i := 1; i < len(blocks); i++ {
		offset += timeblock.MinuteDifference(blocks[i-1].End, blocks[i].Start)
		height = blockHeight(blocks[i])
		records = append(records, Record{ID: blocks[i].ID, OffsetPx: offset, HeightPx: height})
		offset += height
	}

	return records
}

// GapTuple pairs a block index with the vertical space, in minutes, between
// it and the previous block (minute-of-hour for the first block).
type GapTuple struct {
	Index      int
	GapMinutes int
}

// GapTuples returns the per-block spacing the renderer stacks blocks with.
func GapTuples(blocks []*timeblock.Timeblock) []GapTuple {
	if len(blocks) == 0 {
		return nil
	}

	tuples := make([]GapTuple, 0, len(blocks))
	tuples = append(tuples, GapTuple{Index: 0, GapMinutes: timeblock.MinuteOfHour(blocks[0].Start)})

	for i := 1; i < len(blocks); i++ {
		tuples = append(tuples, GapTuple{
			Index:      i,
			GapMinutes: timeblock.MinuteDifference(blocks[i-1].End, blocks[i].Start),
		})
	}

	return tuples
}

func blockHeight(tb *timeblock.Timeblock) int {
	if tb.Minutes > MinHeightPx {
		return tb.Minutes
	}
	return MinHeightPx
}
