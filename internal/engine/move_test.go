package engine

import (
	"errors"
	"testing"

	"github.com/nvaldez/daygrid/internal/timeblock"
)

func TestMove_ShiftsNeighborsWhenGapTooSmall(t *testing.T) {
	// 40-minute block dragged into a 30-minute gap: it lands flush under
	// the upper block and the far neighbor shifts down by the shortfall
	s := day(t,
		[2]string{"9:00 AM", "9:30 AM"},
		[2]string{"10:00 AM", "10:30 AM"},
		[2]string{"11:00 AM", "11:40 AM"},
	)

	got, err := Move(s, 3, true, Drop{Zone: 1, Proportion: 0.5})
	if err != nil {
		t.Fatalf("Move: %v", err)
	}
	assertTimes(t, got.Blocks,
		[2]string{"9:00 AM", "9:30 AM"},
		[2]string{"9:30 AM", "10:10 AM"},
		[2]string{"10:10 AM", "10:40 AM"},
	)
	assertOrder(t, got.Order, []int64{1, 3, 2})
}

func TestMove_DownIntoOpenTail(t *testing.T) {
	// dragging below the last block with the release at the bottom of the
	// tail zone places the block past it, centered and rounded to the grid
	s := day(t,
		[2]string{"9:00 AM", "9:30 AM"},
		[2]string{"10:00 AM", "10:30 AM"},
	)

	got, err := Move(s, 1, false, Drop{Zone: 1, Proportion: 1})
	if err != nil {
		t.Fatalf("Move: %v", err)
	}
	assertTimes(t, got.Blocks,
		[2]string{"10:00 AM", "10:30 AM"},
		[2]string{"11:05 AM", "11:35 AM"},
	)
	assertOrder(t, got.Order, []int64{2, 1})
}

func TestMove_DownFlushAgainstLast(t *testing.T) {
	// a release right on the last block snaps the moved block flush under it
	s := day(t,
		[2]string{"9:00 AM", "9:30 AM"},
		[2]string{"10:00 AM", "10:30 AM"},
	)

	got, err := Move(s, 1, false, Drop{Zone: 1, OnUpper: true, Proportion: 0.1})
	if err != nil {
		t.Fatalf("Move: %v", err)
	}
	assertTimes(t, got.Blocks,
		[2]string{"10:00 AM", "10:30 AM"},
		[2]string{"10:30 AM", "11:00 AM"},
	)
}

func TestMove_UpFlushAboveFirst(t *testing.T) {
	// the zone above the first block is too small to center in, so the
	// moved block ends exactly where the first block starts
	s := day(t,
		[2]string{"9:00 AM", "9:30 AM"},
		[2]string{"10:00 AM", "10:30 AM"},
	)

	got, err := Move(s, 2, true, Drop{Zone: 0, Proportion: 0.5})
	if err != nil {
		t.Fatalf("Move: %v", err)
	}
	assertTimes(t, got.Blocks,
		[2]string{"8:30 AM", "9:00 AM"},
		[2]string{"9:00 AM", "9:30 AM"},
	)
	assertOrder(t, got.Order, []int64{2, 1})
}

func TestMove_UpCenteredAboveFirst(t *testing.T) {
	// first block starts 50 minutes into its hour, leaving room to center
	// the moved block on the release point
	s := day(t,
		[2]string{"9:50 AM", "10:30 AM"},
		[2]string{"11:00 AM", "11:10 AM"},
	)

	got, err := Move(s, 2, true, Drop{Zone: 0, Proportion: 0.5})
	if err != nil {
		t.Fatalf("Move: %v", err)
	}
	// floor(0.5*50 + 5) = 30 -> end 9:30 AM within the first block's hour
	assertTimes(t, got.Blocks,
		[2]string{"9:20 AM", "9:30 AM"},
		[2]string{"9:50 AM", "10:30 AM"},
	)
	assertOrder(t, got.Order, []int64{2, 1})
}

func TestMove_RejectsSpillPastEndOfDay(t *testing.T) {
	s := day(t,
		[2]string{"9:00 AM", "9:30 AM"},
		[2]string{"11:00 PM", "11:30 PM"},
	)

	_, err := Move(s, 1, false, Drop{Zone: 1, Proportion: 1})
	if !errors.Is(err, timeblock.ErrDayBoundary) {
		t.Fatalf("err = %v, want ErrDayBoundary", err)
	}
	assertTimes(t, s.Blocks,
		[2]string{"9:00 AM", "9:30 AM"},
		[2]string{"11:00 PM", "11:30 PM"},
	)
}

func TestMove_RejectsSpillBeforeMidnight(t *testing.T) {
	s := day(t,
		[2]string{"12:15 AM", "1:00 AM"},
		[2]string{"2:00 AM", "2:30 AM"},
	)

	_, err := Move(s, 2, true, Drop{Zone: 0, Proportion: 0.5})
	if !errors.Is(err, timeblock.ErrDayBoundary) {
		t.Fatalf("err = %v, want ErrDayBoundary", err)
	}
}

func TestMove_UnknownID(t *testing.T) {
	s := day(t, [2]string{"9:00 AM", "9:30 AM"})
	if _, err := Move(s, 42, true, Drop{}); !errors.Is(err, timeblock.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}
