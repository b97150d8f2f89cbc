// Package engine implements the timeblock mutation engine: every edit to a
// day's schedule flows through a pure (DayState, Action) reducer so the TUI
// can re-render from a single source of truth and persistence can diff
// against the previous state.
package engine

import (
	"github.com/nvaldez/daygrid/internal/timeblock"
)

// DayState is the complete in-memory state for one day's timeline.
// Blocks is kept in chronological order; Order is the user-managed ordering
// index holding the same ids, which may diverge from chronology only through
// an explicit edit (see Update).
type DayState struct {
	DayKey string // MMM_DD_YYYY, see dateutil.DayKey
	Blocks []*timeblock.Timeblock
	Order  []int64
	LastID int64
}

// Clone deep-copies the state so reducers never alias a previous state's
// slices.
func (s DayState) Clone() DayState {
	c := s
	c.Blocks = timeblock.CloneAll(s.Blocks)
	c.Order = append([]int64(nil), s.Order...)
	return c
}

// Action is a state transition applied by Reduce.
type Action interface {
	apply(DayState) DayState
}

// SetDay replaces the whole state, used when loading a day from the store or
// navigating to a different date.
type SetDay struct {
	DayKey string
	Blocks []*timeblock.Timeblock
	Order  []int64
	LastID int64
}

func (a SetDay) apply(DayState) DayState {
	return DayState{DayKey: a.DayKey, Blocks: a.Blocks, Order: a.Order, LastID: a.LastID}
}

// SetBlocks replaces the block list, leaving the order index untouched.
// Used by edits that cannot change ordering (rename, resize).
type SetBlocks struct {
	Blocks []*timeblock.Timeblock
}

func (a SetBlocks) apply(s DayState) DayState {
	s.Blocks = a.Blocks
	return s
}

// SetBlocksAndOrder replaces the block list and the order index together.
// Every structural edit (create, move, delete, reordering update) commits
// through this action.
type SetBlocksAndOrder struct {
	Blocks []*timeblock.Timeblock
	Order  []int64
}

func (a SetBlocksAndOrder) apply(s DayState) DayState {
	s.Blocks = a.Blocks
	s.Order = a.Order
	return s
}

// SetLastID bumps the persistent id counter.
type SetLastID struct {
	ID int64
}

func (a SetLastID) apply(s DayState) DayState {
	s.LastID = a.ID
	return s
}

// Reduce applies a single action and returns the resulting state. The input
// state is not mutated.
func Reduce(s DayState, a Action) DayState {
	return a.apply(s)
}
