package engine

import (
	"context"
	"fmt"

	"github.com/nvaldez/daygrid/internal/timeblock"
)

// LoadDay reads a day's state from the store. A day with no saved data
// comes back empty with the shared id counter carried over.
func LoadDay(ctx context.Context, s timeblock.DayStore, dayKey string) (DayState, error) {
	blocks, err := s.Timeblocks(ctx, dayKey)
	if err != nil {
		return DayState{}, fmt.Errorf("loading timeblocks: %w", err)
	}
	order, err := s.Order(ctx, dayKey)
	if err != nil {
		return DayState{}, fmt.Errorf("loading order: %w", err)
	}
	lastID, err := s.LastID(ctx)
	if err != nil {
		return DayState{}, fmt.Errorf("loading id counter: %w", err)
	}
	return DayState{
		DayKey: dayKey,
		Blocks: blocks,
		Order:  order,
		LastID: lastID,
	}, nil
}

// SaveDay writes a day's state back to the store. The block list, order
// index, and id counter are written together so a reload reproduces the
// state exactly.
func SaveDay(ctx context.Context, s timeblock.DayStore, state DayState) error {
	if err := s.SetTimeblocks(ctx, state.DayKey, state.Blocks); err != nil {
		return fmt.Errorf("saving timeblocks: %w", err)
	}
	if err := s.SetOrder(ctx, state.DayKey, state.Order); err != nil {
		return fmt.Errorf("saving order: %w", err)
	}
	if err := s.SetLastID(ctx, state.LastID); err != nil {
		return fmt.Errorf("saving id counter: %w", err)
	}
	return nil
}
