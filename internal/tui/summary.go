package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/nvaldez/daygrid/internal/dateutil"
	"github.com/nvaldez/daygrid/internal/timeblock"
)

// daySummary formats a day's blocks as plain text for the clipboard.
func daySummary(date time.Time, blocks []*timeblock.Timeblock) string {
	var b strings.Builder
	b.WriteString(dateutil.DisplayDate(date))
	b.WriteString("\n")

	if len(blocks) == 0 {
		b.WriteString("\nNo blocks planned.\n")
		return b.String()
	}

	total := 0
	b.WriteString("\n")
	for _, tb := range blocks {
		name := tb.TaskName
		if name == "" {
			name = "(untitled)"
		}
		line := fmt.Sprintf("%s – %s  %s", tb.Start, tb.End, name)
		if tb.Category != "" {
			line += fmt.Sprintf(" (%s)", tb.Category)
		}
		b.WriteString(line)
		b.WriteString("\n")
		total += tb.Minutes
	}
	b.WriteString(fmt.Sprintf("\nTotal planned: %s\n", formatDuration(total)))
	return b.String()
}
