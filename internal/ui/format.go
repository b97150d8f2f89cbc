package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/nvaldez/daygrid/internal/timeblock"
)

// Stats aggregates a day's blocks by category.
type Stats struct {
	TotalMinutes int
	TotalBlocks  int
	ByCategory   map[string]int // minutes per category, "" for uncategorized
}

// Accumulate adds one block to the stats.
func (s *Stats) Accumulate(tb *timeblock.Timeblock) {
	if s.ByCategory == nil {
		s.ByCategory = make(map[string]int)
	}
	s.TotalMinutes += tb.Minutes
	s.TotalBlocks++
	s.ByCategory[tb.Category] += tb.Minutes
}

// SortedCategories returns the category names by descending minutes;
// the uncategorized bucket sorts last.
func (s Stats) SortedCategories() []string {
	names := make([]string, 0, len(s.ByCategory))
	for name := range s.ByCategory {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if names[i] == "" {
			return false
		}
		if names[j] == "" {
			return true
		}
		return s.ByCategory[names[i]] > s.ByCategory[names[j]]
	})
	return names
}

// PrintBlockRow prints a single block row.
func PrintBlockRow(tb *timeblock.Timeblock, maxNameWidth int) {
	name := tb.TaskName
	if name == "" {
		name = "(untitled)"
	}
	name = truncate(name, maxNameWidth)

	line := fmt.Sprintf("  #%-3d %s – %s  %-*s  %s",
		tb.ID, padClock(tb.Start), padClock(tb.End),
		maxNameWidth, formatName(name),
		formatMuted(FormatDuration(tb.Minutes)))
	if tb.Category != "" {
		line += "  " + formatCategory("["+tb.Category+"]")
	}
	fmt.Println(line)
}

// PrintStats prints the per-category breakdown with a share bar.
func PrintStats(stats Stats, barWidth int) {
	if stats.TotalMinutes == 0 {
		return
	}

	fmt.Printf("%s | %d blocks\n",
		formatStats("Planned: "+FormatDuration(stats.TotalMinutes)),
		stats.TotalBlocks)

	for _, name := range stats.SortedCategories() {
		mins := stats.ByCategory[name]
		label := name
		if label == "" {
			label = "(uncategorized)"
		}
		fmt.Printf("  %-16s %s %s\n",
			truncate(label, 16),
			ShareBar(mins, stats.TotalMinutes, barWidth),
			formatMuted(FormatDuration(mins)))
	}
}

// ShareBar renders an ASCII bar for a category's share of the day.
func ShareBar(minutes, totalMinutes, width int) string {
	if totalMinutes == 0 {
		return "[" + strings.Repeat("░", width) + "]"
	}
	filled := (minutes * width) / totalMinutes
	if filled == 0 && minutes > 0 {
		filled = 1
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	pct := (minutes * 100) / totalMinutes
	return fmt.Sprintf("[%s] %s", formatStats(bar), formatStats(fmt.Sprintf("%d%%", pct)))
}

// FormatDuration formats minutes as a human-readable duration.
func FormatDuration(minutes int) string {
	if minutes == 0 {
		return "0m"
	}
	hours := minutes / 60
	mins := minutes % 60
	if hours == 0 {
		return fmt.Sprintf("%dm", mins)
	}
	if mins == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh%dm", hours, mins)
}

// padClock right-aligns a clock string to the widest form ("12:00 PM").
func padClock(s string) string {
	if len(s) >= 8 {
		return s
	}
	return strings.Repeat(" ", 8-len(s)) + s
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}

// maxNameWidth picks the widest name column that still fits the terminal,
// bounded to a sensible range.
func maxNameWidth(blocks []*timeblock.Timeblock) int {
	widest := 10
	for _, tb := range blocks {
		if n := len(tb.TaskName); n > widest {
			widest = n
		}
	}
	// Overhead: "  #NNN  HH:MM AM – HH:MM AM  " plus duration and category.
	available := termWidth() - 45
	if available < 10 {
		available = 10
	}
	if widest > available {
		return available
	}
	return widest
}
