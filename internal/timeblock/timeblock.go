// Package timeblock defines the core domain types for daygrid.
package timeblock

import (
	"errors"
	"fmt"
)

// Domain errors.
var (
	ErrEndBeforeStart = errors.New("end time must be after start time")
	ErrOverlap        = errors.New("times overlap an existing timeblock")
	ErrDayBoundary    = errors.New("timeblock would spill into another day")
	ErrNotFound       = errors.New("timeblock not found")
)

// Timeblock is a scheduled interval on a single day's timeline.
// Start and End are 12-hour clock strings at 5-minute granularity; Minutes
// and Overlap are derived and kept in sync by Recompute.
type Timeblock struct {
	ID       int64
	TaskName string
	Category string // category name; empty means uncategorized
	Start    string // "H:MM AM|PM"
	End      string // "H:MM AM|PM"
	Minutes  int
	Overlap  *float64 // set only when Minutes < 30
}

// New creates a Timeblock with derived fields populated.
// Returns ErrEndBeforeStart when the interval has non-positive duration.
func New(id int64, taskName, category, start, end string) (*Timeblock, error) {
	if _, err := ParseClock(start); err != nil {
		return nil, fmt.Errorf("start time: %w", err)
	}
	if _, err := ParseClock(end); err != nil {
		return nil, fmt.Errorf("end time: %w", err)
	}

	tb := &Timeblock{
		ID:       id,
		TaskName: taskName,
		Category: category,
		Start:    start,
		End:      end,
	}
	tb.Recompute()
	if tb.Minutes <= 0 {
		return nil, ErrEndBeforeStart
	}
	return tb, nil
}

// Recompute refreshes Minutes and Overlap from Start and End.
func (tb *Timeblock) Recompute() {
	tb.Minutes = MinuteDifference(tb.Start, tb.End)
	tb.Overlap = OverlapFraction(tb.Start, tb.Minutes)
}

// Clone returns a copy of the timeblock.
func (tb *Timeblock) Clone() *Timeblock {
	c := *tb
	if tb.Overlap != nil {
		v := *tb.Overlap
		c.Overlap = &v
	}
	return &c
}

// CloneAll returns a deep copy of a timeblock slice.
func CloneAll(blocks []*Timeblock) []*Timeblock {
	out := make([]*Timeblock, len(blocks))
	for i, tb := range blocks {
		out[i] = tb.Clone()
	}
	return out
}

// ValidateTimes checks a proposed start/end for one timeblock (identified by
// id so its own interval is skipped) against the rest of the day. It rejects
// non-positive durations and any overlap with another block; touching edges
// are allowed. Used by the edit form before a change reaches the engine.
func ValidateTimes(blocks []*Timeblock, start, end string, id int64) error {
	newMinutes := MinuteDifference(start, end)
	if newMinutes <= 0 {
		return ErrEndBeforeStart
	}

	for _, tb := range blocks {
		if tb.ID == id {
			continue
		}

		diff := MinuteDifference(start, tb.Start)
		switch {
		case diff < 0:
			// tb starts before the proposal; overlap iff tb runs past it
			if -diff < tb.Minutes {
				return fmt.Errorf("%w: %s-%s", ErrOverlap, tb.Start, tb.End)
			}
		case diff > 0:
			// tb starts after the proposal; overlap iff the proposal runs past tb
			if diff < newMinutes {
				return fmt.Errorf("%w: %s-%s", ErrOverlap, tb.Start, tb.End)
			}
		default:
			return fmt.Errorf("%w: %s-%s", ErrOverlap, tb.Start, tb.End)
		}
	}

	return nil
}

// Category is a global label with a display color, referenced from
// timeblocks by name. Deleting a category does not clear timeblocks that
// reference it; they keep the dangling name.
type Category struct {
	ID    int64
	Name  string
	Color string // hex, e.g. "#00E6FF"
}

// TaskName is a free-text autocomplete entry for the edit form.
type TaskName struct {
	ID   int64
	Name string
}
