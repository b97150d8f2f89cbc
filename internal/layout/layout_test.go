package layout

import (
	"testing"

	"github.com/nvaldez/daygrid/internal/timeblock"
)

func mustBlocks(t *testing.T, times [][2]string) []*timeblock.Timeblock {
	t.Helper()
	blocks := make([]*timeblock.Timeblock, 0, len(times))
	for i, pair := range times {
		tb, err := timeblock.New(int64(i+1), "", "", pair[0], pair[1])
		if err != nil {
			t.Fatalf("block %d: %v", i, err)
		}
		blocks = append(blocks, tb)
	}
	return blocks
}

func TestCompute_Empty(t *testing.T) {
	if got := Compute(nil); got != nil {
		t.Errorf("Compute(nil) = %v, want nil", got)
	}
}

func TestCompute_SingleBlock(t *testing.T) {
	blocks := mustBlocks(t, [][2]string{{"9:15 AM", "10:15 AM"}})
	got := Compute(blocks)
	if len(got) != 1 {
		t.Fatalf("got %d records, want 1", len(got))
	}
	if got[0].OffsetPx != 15 {
		t.Errorf("OffsetPx = %d, want 15 (minute of hour)", got[0].OffsetPx)
	}
	if got[0].HeightPx != 60 {
		t.Errorf("HeightPx = %d, want 60", got[0].HeightPx)
	}
}

func TestCompute_ShortBlockFlooredTo30(t *testing.T) {
	blocks := mustBlocks(t, [][2]string{{"9:00 AM", "9:10 AM"}})
	got := Compute(blocks)
	if got[0].HeightPx != 30 {
		t.Errorf("HeightPx = %d, want floor of 30", got[0].HeightPx)
	}
}

func TestCompute_StacksWithGaps(t *testing.T) {
	blocks := mustBlocks(t, [][2]string{
		{"5:00 PM", "6:30 PM"}, // offset 0, height 90
		{"7:00 PM", "7:35 PM"}, // 30 min gap -> offset 120, height 35
		{"7:35 PM", "7:45 PM"}, // touching -> offset 155, height 30 (floored)
	})
	got := Compute(blocks)

	wantOffsets := []int{0, 120, 155}
	wantHeights := []int{90, 35, 30}
	for i := range got {
		if got[i].OffsetPx != wantOffsets[i] {
			t.Errorf("record %d OffsetPx = %d, want %d", i, got[i].OffsetPx, wantOffsets[i])
		}
		if got[i].HeightPx != wantHeights[i] {
			t.Errorf("record %d HeightPx = %d, want %d", i, got[i].HeightPx, wantHeights[i])
		}
	}
}

func TestCompute_OffsetsStrictlyIncreasing(t *testing.T) {
	blocks := mustBlocks(t, [][2]string{
		{"8:00 AM", "8:05 AM"},
		{"8:05 AM", "9:00 AM"},
		{"9:30 AM", "11:00 AM"},
		{"1:00 PM", "1:10 PM"},
		{"11:00 PM", "11:55 PM"},
	})
	got := Compute(blocks)
	for i := 1; i < len(got); i++ {
		if got[i].OffsetPx <= got[i-1].OffsetPx {
			t.Errorf("offsets not increasing at %d: %d <= %d", i, got[i].OffsetPx, got[i-1].OffsetPx)
		}
	}
}

func TestGapTuples(t *testing.T) {
	blocks := mustBlocks(t, [][2]string{
		{"5:10 PM", "6:00 PM"},
		{"6:30 PM", "7:00 PM"},
	})
	got := GapTuples(blocks)
	if len(got) != 2 {
		t.Fatalf("got %d tuples, want 2", len(got))
	}
	if got[0].GapMinutes != 10 {
		t.Errorf("first gap = %d, want 10", got[0].GapMinutes)
	}
	if got[1].GapMinutes != 30 {
		t.Errorf("second gap = %d, want 30", got[1].GapMinutes)
	}
}
