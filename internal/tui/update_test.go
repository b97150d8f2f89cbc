package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nvaldez/daygrid/internal/engine"
	"github.com/nvaldez/daygrid/internal/timeblock"
	"github.com/nvaldez/daygrid/internal/tui/commands"
)

func TestUpdateDayLoaded(t *testing.T) {
	m := testModel(t)
	m.loading = true

	loaded := engine.DayState{
		DayKey: "Aug_30_2026",
		Blocks: []*timeblock.Timeblock{testBlock(t, 1, "Deep work", "9:00 AM", "10:00 AM")},
		Order:  []int64{1},
		LastID: 1,
	}

	next, _ := m.Update(commands.DayLoadedMsg{State: loaded})
	got := next.(Model)

	if got.loading {
		t.Error("loading still true after DayLoadedMsg")
	}
	if len(got.state.Blocks) != 1 || got.state.Blocks[0].TaskName != "Deep work" {
		t.Errorf("state not replaced: %+v", got.state.Blocks)
	}
}

func TestUpdateDayLoadedClampsSelection(t *testing.T) {
	m := testModel(t,
		testBlock(t, 1, "One", "9:00 AM", "10:00 AM"),
		testBlock(t, 2, "Two", "10:00 AM", "11:00 AM"),
	)
	m.selected = 1

	next, _ := m.Update(commands.DayLoadedMsg{State: engine.DayState{DayKey: "Aug_30_2026"}})
	got := next.(Model)

	if got.selected != -1 {
		t.Errorf("selected = %d, want -1 for an empty day", got.selected)
	}
}

func TestUpdateWindowSize(t *testing.T) {
	m := testModel(t)
	m.scrollRow = 6

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 50})
	got := next.(Model)

	if got.width != 100 || got.height != 50 {
		t.Errorf("size = %dx%d, want 100x50", got.width, got.height)
	}
	if got.scrollRow != 0 {
		t.Errorf("scrollRow = %d, want 0 after growing the window", got.scrollRow)
	}
}

func TestUpdateErrMsgSetsStatus(t *testing.T) {
	m := testModel(t)

	next, cmd := m.Update(commands.ErrMsg{Err: errors.New("disk full")})
	got := next.(Model)

	if !got.statusErr {
		t.Error("statusErr = false, want true")
	}
	if !strings.Contains(got.statusMsg, "disk full") {
		t.Errorf("statusMsg = %q, want it to mention the error", got.statusMsg)
	}
	if cmd == nil {
		t.Error("expected a cleanup command for the status message")
	}
}

func TestUpdateCatalog(t *testing.T) {
	m := testModel(t)

	msg := commands.CatalogMsg{
		Categories: []*timeblock.Category{{ID: 1, Name: "Work", Color: "#89b4fa"}},
		TaskNames:  []*timeblock.TaskName{{ID: 1, Name: "Deep work"}},
	}
	next, _ := m.Update(msg)
	got := next.(Model)

	if len(got.categories) != 1 || got.categories[0].Name != "Work" {
		t.Errorf("categories = %+v", got.categories)
	}
	if len(got.taskNames) != 1 {
		t.Errorf("taskNames = %+v", got.taskNames)
	}
}

func TestMutationError(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{timeblock.ErrDayBoundary, "No room: the day ends at 11:55 PM"},
		{timeblock.ErrOverlap, "Times overlap another block"},
		{timeblock.ErrMalformedClock, "Times must look like 9:05 AM"},
		{timeblock.ErrEndBeforeStart, "End must come after start"},
		{timeblock.ErrNotFound, "Block no longer exists"},
		{errors.New("boom"), "Error: boom"},
	}
	for _, tt := range tests {
		if got := mutationError(tt.err); got != tt.want {
			t.Errorf("mutationError(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}

func TestApplyMutationFailureKeepsState(t *testing.T) {
	m := testModel(t, testBlock(t, 1, "One", "9:00 AM", "10:00 AM"))

	got, _ := m.applyMutation(engine.DayState{}, timeblock.ErrOverlap, "resize")

	if len(got.state.Blocks) != 1 {
		t.Errorf("state replaced on failure: %+v", got.state.Blocks)
	}
	if !got.statusErr || got.statusMsg != "Times overlap another block" {
		t.Errorf("status = (%q, err=%v)", got.statusMsg, got.statusErr)
	}
}

func TestClampSelection(t *testing.T) {
	tests := []struct {
		name     string
		blocks   int
		selected int
		want     int
	}{
		{"empty resets to none", 0, 3, -1},
		{"past end clamps to last", 2, 5, 1},
		{"in range untouched", 2, 0, 0},
		{"none stays none", 2, -1, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var blocks []*timeblock.Timeblock
			starts := []string{"9:00 AM", "10:00 AM"}
			ends := []string{"10:00 AM", "11:00 AM"}
			for i := 0; i < tt.blocks; i++ {
				blocks = append(blocks, testBlock(t, int64(i+1), "Task", starts[i], ends[i]))
			}
			m := testModel(t, blocks...)
			m.selected = tt.selected
			m.clampSelection()
			if m.selected != tt.want {
				t.Errorf("selected = %d, want %d", m.selected, tt.want)
			}
		})
	}
}
