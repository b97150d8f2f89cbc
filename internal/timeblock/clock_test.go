package timeblock

import (
	"errors"
	"testing"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"12:00 AM", 0},
		{"12:05 AM", 5},
		{"1:00 AM", 60},
		{"11:59 AM", 719},
		{"12:00 PM", 720},
		{"12:30 PM", 750},
		{"1:00 PM", 780},
		{"4:50 PM", 1010},
		{"11:55 PM", 1435},
		{"11:59 PM", 1439},
		{"09:00 AM", 540}, // leading zero allowed
	}
	for _, tt := range tests {
		got, err := ParseClock(tt.in)
		if err != nil {
			t.Fatalf("ParseClock(%q) error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseClock(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestParseClock_Malformed(t *testing.T) {
	for _, in := range []string{
		"", "9:00", "9:00 XM", "25:00 AM", "0:00 AM", "13:00 PM",
		"9:60 AM", "9:5 AM", "nine AM", "9:00AM", "9.00 AM",
	} {
		if _, err := ParseClock(in); !errors.Is(err, ErrMalformedClock) {
			t.Errorf("ParseClock(%q) = %v, want ErrMalformedClock", in, err)
		}
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "12:00 AM"},
		{5, "12:05 AM"},
		{60, "1:00 AM"},
		{719, "11:59 AM"},
		{720, "12:00 PM"},
		{1010, "4:50 PM"},
		{1435, "11:55 PM"},
		{1440, "12:00 AM"},  // wraps
		{-30, "11:30 PM"},   // wraps backwards
		{1470, "12:30 AM"},  // wraps forwards
	}
	for _, tt := range tests {
		if got := FormatClock(tt.in); got != tt.want {
			t.Errorf("FormatClock(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestAddMinutes_RoundTrip(t *testing.T) {
	// ParseClock(AddMinutes(t, d)) == ParseClock(t) + d while inside the day
	tests := []struct {
		t     string
		delta int
	}{
		{"9:00 AM", 30},
		{"9:00 AM", -30},
		{"12:00 AM", 5},
		{"11:00 PM", 55},
		{"6:15 PM", 125},
	}
	for _, tt := range tests {
		got := MustParseClock(AddMinutes(tt.t, tt.delta))
		want := MustParseClock(tt.t) + tt.delta
		if got != want {
			t.Errorf("AddMinutes(%q, %d) parsed = %d, want %d", tt.t, tt.delta, got, want)
		}
	}
}

func TestMinuteDifference(t *testing.T) {
	tests := []struct {
		t1, t2 string
		want   int
	}{
		{"9:00 AM", "9:30 AM", 30},
		{"12:00 AM", "12:00 PM", 720},
		{"5:00 PM", "6:30 PM", 90},
		{"6:30 PM", "5:00 PM", -90}, // no wraparound correction
		{"11:50 PM", "11:55 PM", 5},
	}
	for _, tt := range tests {
		if got := MinuteDifference(tt.t1, tt.t2); got != tt.want {
			t.Errorf("MinuteDifference(%q, %q) = %d, want %d", tt.t1, tt.t2, got, tt.want)
		}
	}
}

func TestStartingHourAndLabel(t *testing.T) {
	tests := []struct {
		in        string
		wantHour  string
		wantLabel string
	}{
		{"4:50 PM", "4:00 PM", "4 PM"},
		{"12:05 AM", "12:00 AM", "12 AM"},
		{"11:59 PM", "11:00 PM", "11 PM"},
	}
	for _, tt := range tests {
		if got := StartingHour(tt.in); got != tt.wantHour {
			t.Errorf("StartingHour(%q) = %q, want %q", tt.in, got, tt.wantHour)
		}
		if got := HourLabel(tt.in); got != tt.wantLabel {
			t.Errorf("HourLabel(%q) = %q, want %q", tt.in, got, tt.wantLabel)
		}
	}
}

func TestOverlapFraction(t *testing.T) {
	if got := OverlapFraction("9:00 AM", 30); got != nil {
		t.Errorf("OverlapFraction(30 min) = %v, want nil", *got)
	}
	if got := OverlapFraction("9:00 AM", 60); got != nil {
		t.Errorf("OverlapFraction(60 min) = %v, want nil", *got)
	}

	// fully inside its starting hour
	if got := OverlapFraction("6:50 PM", 10); got == nil || *got != 0 {
		t.Errorf("OverlapFraction(6:50 PM, 10) = %v, want 0", got)
	}

	// 7:50-8:00 block of 10 minutes starting at :55 spills 5 of 10 minutes
	got := OverlapFraction("7:55 PM", 10)
	if got == nil || *got != 0.5 {
		t.Errorf("OverlapFraction(7:55 PM, 10) = %v, want 0.5", got)
	}
}

func TestValidateTimes(t *testing.T) {
	day := mustBlocks(t, [][2]string{
		{"5:00 PM", "6:30 PM"},
		{"7:00 PM", "7:35 PM"},
	})

	tests := []struct {
		name       string
		start, end string
		id         int64
		wantErr    error
	}{
		{"fits in gap", "6:30 PM", "7:00 PM", 99, nil},
		{"touching edges ok", "7:35 PM", "8:00 PM", 99, nil},
		{"zero duration", "6:30 PM", "6:30 PM", 99, ErrEndBeforeStart},
		{"end before start", "7:00 PM", "6:00 PM", 99, ErrEndBeforeStart},
		{"overlaps first", "5:30 PM", "6:00 PM", 99, ErrOverlap},
		{"spans second", "6:45 PM", "7:10 PM", 99, ErrOverlap},
		{"same start as second", "7:00 PM", "7:20 PM", 99, ErrOverlap},
		{"editing self ignores self", "5:00 PM", "6:00 PM", 1, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTimes(day, tt.start, tt.end, tt.id)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateTimes(%q, %q) = %v, want %v", tt.start, tt.end, err, tt.wantErr)
			}
		})
	}
}

func TestListHelpers(t *testing.T) {
	day := mustBlocks(t, [][2]string{
		{"9:00 AM", "9:30 AM"},
		{"10:00 AM", "10:30 AM"},
		{"11:00 AM", "11:30 AM"},
	})

	extra, err := New(99, "", "", "9:45 AM", "9:50 AM")
	if err != nil {
		t.Fatal(err)
	}

	got := InsertAt(CloneAll(day), 1, extra)
	if len(got) != 4 || got[1].ID != 99 || got[2].ID != 2 {
		t.Fatalf("InsertAt middle: got ids %v", idsOf(got))
	}

	got = RemoveID(day, 2)
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 3 {
		t.Fatalf("RemoveID: got ids %v", idsOf(got))
	}

	if i := IndexOf(day, 3); i != 2 {
		t.Errorf("IndexOf(3) = %d, want 2", i)
	}
	if i := IndexOf(day, 42); i != -1 {
		t.Errorf("IndexOf(42) = %d, want -1", i)
	}

	ids := []int64{1, 2, 3}
	ids = RemoveFirstID(ids, 2)
	ids = InsertIDAt(ids, 0, 7)
	if len(ids) != 3 || ids[0] != 7 || ids[1] != 1 || ids[2] != 3 {
		t.Errorf("id helpers: got %v", ids)
	}
}

// mustBlocks builds sequentially-numbered blocks from time pairs.
func mustBlocks(t *testing.T, times [][2]string) []*Timeblock {
	t.Helper()
	blocks := make([]*Timeblock, 0, len(times))
	for i, pair := range times {
		tb, err := New(int64(i+1), "", "", pair[0], pair[1])
		if err != nil {
			t.Fatalf("block %d: %v", i, err)
		}
		blocks = append(blocks, tb)
	}
	return blocks
}

func idsOf(blocks []*Timeblock) []int64 {
	ids := make([]int64, len(blocks))
	for i, tb := range blocks {
		ids[i] = tb.ID
	}
	return ids
}
