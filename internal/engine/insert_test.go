package engine

import (
	"errors"
	"testing"

	"github.com/nvaldez/daygrid/internal/timeblock"
)

func TestInsert_ChronologicalPosition(t *testing.T) {
	s := day(t, [2]string{"9:00 AM", "10:00 AM"}, [2]string{"2:00 PM", "3:00 PM"})

	next, err := Insert(s, "Lunch", "", "12:00 PM", "12:45 PM")
	if err != nil {
		t.Fatal(err)
	}

	assertTimes(t, next.Blocks,
		[2]string{"9:00 AM", "10:00 AM"},
		[2]string{"12:00 PM", "12:45 PM"},
		[2]string{"2:00 PM", "3:00 PM"},
	)
	assertOrder(t, next.Order, []int64{1, 3, 2})
	if next.LastID != 3 {
		t.Errorf("LastID = %d, want 3", next.LastID)
	}
	if next.Blocks[1].TaskName != "Lunch" {
		t.Errorf("TaskName = %q, want Lunch", next.Blocks[1].TaskName)
	}
}

func TestInsert_EmptyDay(t *testing.T) {
	s := DayState{DayKey: "Aug_30_2026"}

	next, err := Insert(s, "Deep work", "Work", "9:00 AM", "11:00 AM")
	if err != nil {
		t.Fatal(err)
	}
	assertTimes(t, next.Blocks, [2]string{"9:00 AM", "11:00 AM"})
	assertOrder(t, next.Order, []int64{1})
}

func TestInsert_RejectsOverlap(t *testing.T) {
	s := day(t, [2]string{"9:00 AM", "10:00 AM"})

	_, err := Insert(s, "", "", "9:30 AM", "10:30 AM")
	if !errors.Is(err, timeblock.ErrOverlap) {
		t.Fatalf("err = %v, want ErrOverlap", err)
	}
}

func TestInsert_RejectsMalformedTimes(t *testing.T) {
	s := day(t)

	_, err := Insert(s, "", "", "25:00", "26:00")
	if !errors.Is(err, timeblock.ErrMalformedClock) {
		t.Fatalf("err = %v, want ErrMalformedClock", err)
	}
}

func TestInsert_TouchingEdgesAllowed(t *testing.T) {
	s := day(t, [2]string{"9:00 AM", "10:00 AM"})

	next, err := Insert(s, "", "", "10:00 AM", "10:30 AM")
	if err != nil {
		t.Fatal(err)
	}
	assertTimes(t, next.Blocks,
		[2]string{"9:00 AM", "10:00 AM"},
		[2]string{"10:00 AM", "10:30 AM"},
	)
}
