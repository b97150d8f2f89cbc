package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/nvaldez/daygrid/internal/timeblock"
)

func TestDaySummary(t *testing.T) {
	date := time.Date(2026, time.August, 30, 0, 0, 0, 0, time.UTC)
	work, err := timeblock.New(1, "Deep work", "Work", "9:00 AM", "10:30 AM")
	if err != nil {
		t.Fatal(err)
	}
	lunch, err := timeblock.New(2, "", "", "12:00 PM", "12:45 PM")
	if err != nil {
		t.Fatal(err)
	}

	got := daySummary(date, []*timeblock.Timeblock{work, lunch})

	for _, want := range []string{
		"Sunday, Aug 30 2026",
		"9:00 AM – 10:30 AM  Deep work (Work)",
		"12:00 PM – 12:45 PM  (untitled)",
		"Total planned: 2h 15m",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("summary missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "(untitled) (") {
		t.Errorf("uncategorized block should not carry a category suffix:\n%s", got)
	}
}

func TestDaySummaryEmptyDay(t *testing.T) {
	date := time.Date(2026, time.August, 30, 0, 0, 0, 0, time.UTC)

	got := daySummary(date, nil)

	if !strings.Contains(got, "No blocks planned.") {
		t.Errorf("summary = %q", got)
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, "0m"},
		{45, "45m"},
		{60, "1h"},
		{135, "2h 15m"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.minutes); got != tt.want {
			t.Errorf("formatDuration(%d) = %q, want %q", tt.minutes, got, tt.want)
		}
	}
}
