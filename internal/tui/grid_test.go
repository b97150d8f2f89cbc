package tui

import (
	"testing"

	"github.com/nvaldez/daygrid/internal/engine"
	"github.com/nvaldez/daygrid/internal/layout"
	"github.com/nvaldez/daygrid/internal/timeblock"
	"github.com/nvaldez/daygrid/internal/tui/theme"
)

func testBlock(t *testing.T, id int64, name, start, end string) *timeblock.Timeblock {
	t.Helper()
	tb, err := timeblock.New(id, name, "", start, end)
	if err != nil {
		t.Fatalf("New(%q, %q): %v", start, end, err)
	}
	return tb
}

// testModel builds a model sized 80x30 at the default zoom with the given
// blocks already loaded.
func testModel(t *testing.T, blocks ...*timeblock.Timeblock) Model {
	t.Helper()
	th, err := theme.Load("mocha")
	if err != nil {
		t.Fatalf("theme.Load: %v", err)
	}

	order := make([]int64, len(blocks))
	var lastID int64
	for i, tb := range blocks {
		order[i] = tb.ID
		if tb.ID > lastID {
			lastID = tb.ID
		}
	}

	return Model{
		theme:        th,
		styles:       NewStyles(th),
		state:        engine.DayState{DayKey: "Aug_30_2026", Blocks: blocks, Order: order, LastID: lastID},
		selected:     -1,
		width:        80,
		height:       30,
		zoom:         1,
		footerHeight: 2,
	}
}

func TestContentRows(t *testing.T) {
	m := testModel(t)

	if got := m.contentRows(); got != 26 {
		t.Errorf("contentRows() = %d, want 26", got)
	}

	m.height = 3
	if got := m.contentRows(); got != 0 {
		t.Errorf("contentRows() at height 3 = %d, want 0", got)
	}
}

func TestViewHeightPx(t *testing.T) {
	empty := testModel(t)
	if got := empty.viewHeightPx(); got != emptyDayHeightPx {
		t.Errorf("empty day viewHeightPx() = %d, want %d", got, emptyDayHeightPx)
	}

	// One hour-long block starting on the hour: 60px tall plus the tail.
	one := testModel(t, testBlock(t, 1, "Deep work", "9:00 AM", "10:00 AM"))
	if got := one.viewHeightPx(); got != 160 {
		t.Errorf("viewHeightPx() = %d, want 160", got)
	}

	// Two short blocks inflate to 30px each with a 30 minute gap between.
	two := testModel(t,
		testBlock(t, 1, "Standup", "9:00 AM", "9:10 AM"),
		testBlock(t, 2, "Email", "9:40 AM", "10:00 AM"),
	)
	if got := two.viewHeightPx(); got != 190 {
		t.Errorf("viewHeightPx() = %d, want 190", got)
	}
}

func TestPixelAtRow(t *testing.T) {
	m := testModel(t, testBlock(t, 1, "Deep work", "9:00 AM", "10:00 AM"))

	tests := []struct {
		name      string
		scrollRow int
		row       int
		want      int
	}{
		{"header row", 0, 1, -1},
		{"first timeline row", 0, headerRows, 0},
		{"second timeline row", 0, headerRows + 1, 15},
		{"scrolled", 2, headerRows, 30},
		{"below content area", 0, headerRows + 26, -1},
		{"past the view height", 0, headerRows + 12, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m.scrollRow = tt.scrollRow
			if got := m.pixelAtRow(tt.row); got != tt.want {
				t.Errorf("pixelAtRow(%d) = %d, want %d", tt.row, got, tt.want)
			}
		})
	}
}

func TestRowForPixel(t *testing.T) {
	m := testModel(t, testBlock(t, 1, "Deep work", "9:00 AM", "10:00 AM"))

	if got := m.rowForPixel(0); got != headerRows {
		t.Errorf("rowForPixel(0) = %d, want %d", got, headerRows)
	}
	if got := m.rowForPixel(45); got != headerRows+3 {
		t.Errorf("rowForPixel(45) = %d, want %d", got, headerRows+3)
	}

	m.scrollRow = 2
	if got := m.rowForPixel(45); got != headerRows+1 {
		t.Errorf("rowForPixel(45) scrolled = %d, want %d", got, headerRows+1)
	}
}

func TestClampScroll(t *testing.T) {
	m := testModel(t) // empty day: 480px / 15 = 32 rows, 26 visible

	m.scrollRow = 100
	m.clampScroll()
	if m.scrollRow != 6 {
		t.Errorf("scrollRow = %d, want 6", m.scrollRow)
	}

	m.scrollRow = -3
	m.clampScroll()
	if m.scrollRow != 0 {
		t.Errorf("scrollRow = %d, want 0", m.scrollRow)
	}
}

func TestScrollTo(t *testing.T) {
	m := testModel(t)

	// Target below the visible window scrolls down just enough.
	m.scrollTo(400, 460)
	if m.scrollRow != 5 {
		t.Errorf("scrollRow after scrolling down = %d, want 5", m.scrollRow)
	}

	// Target above the window scrolls back up to its first row.
	m.scrollTo(30, 60)
	if m.scrollRow != 2 {
		t.Errorf("scrollRow after scrolling up = %d, want 2", m.scrollRow)
	}

	// Already visible: no change.
	m.scrollTo(45, 75)
	if m.scrollRow != 2 {
		t.Errorf("scrollRow = %d, want 2 (unchanged)", m.scrollRow)
	}
}

func TestBlockIndexAtPixel(t *testing.T) {
	records := []layout.Record{
		{ID: 1, OffsetPx: 0, HeightPx: 60},
		{ID: 2, OffsetPx: 90, HeightPx: 30},
	}

	tests := []struct {
		px   int
		want int
	}{
		{0, 0},
		{59, 0},
		{60, -1},
		{89, -1},
		{90, 1},
		{119, 1},
		{120, -1},
	}
	for _, tt := range tests {
		if got := blockIndexAtPixel(records, tt.px); got != tt.want {
			t.Errorf("blockIndexAtPixel(%d) = %d, want %d", tt.px, got, tt.want)
		}
	}
}

func TestTickTops(t *testing.T) {
	ticks := []layout.Tick{
		{Label: "9 AM", MarginBottomPx: 36},
		{Label: "10 AM", MarginBottomPx: 36},
		{Label: "11 AM", MarginBottomPx: 46},
		{Label: "12 PM", MarginBottomPx: 36},
	}

	got := tickTops(ticks)
	want := []int{0, 60, 120, 190}
	if len(got) != len(want) {
		t.Fatalf("tickTops returned %d tops, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("tickTops[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}
