package layout

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nvaldez/daygrid/internal/timeblock"
)

// BaseTickMarginPx is the default spacing below each hour tick.
const BaseTickMarginPx = 36

// Tick is one hour label on the ruler next to the timeline. MarginBottomPx
// grows past the base when a sub-30-minute block starts in that hour, so the
// ruler spacing stays to scale with the inflated block heights.
type Tick struct {
	Label          string // e.g. "4 PM"
	MarginBottomPx float64
	Seq            int // stable render key, 1-based
}

// HourLabels collects the distinct starting/ending hour labels present in
// blocks (ordered by start time) and fills in every hour between consecutive
// labels, yielding one label per hour from the first to the last.
func HourLabels(blocks []*timeblock.Timeblock) []string {
	if len(blocks) == 0 {
		return nil
	}

	var labels []string
	seen := make(map[string]bool)
	add := func(label string) {
		if !seen[label] {
			seen[label] = true
			labels = append(labels, label)
		}
	}
	for _, tb := range blocks {
		add(timeblock.HourLabel(tb.Start))
		add(timeblock.HourLabel(tb.End))
	}

	return fillIntermediateHours(labels)
}

// Ticks builds the ruler from the hour labels and the blocks themselves.
// Each sub-30-minute block contributes its missing height (30 - minutes) to
// its starting hour's tick, split with the next tick by the block's overlap
// fraction.
func Ticks(blocks []*timeblock.Timeblock) []Tick {
	if len(blocks) == 0 {
		return nil
	}

	labels := HourLabels(blocks)
	ticks := make([]Tick, len(labels))
	for i, label := range labels {
		ticks[i] = Tick{Label: label, MarginBottomPx: BaseTickMarginPx, Seq: i + 1}
	}

	for _, tb := range blocks {
		if tb.Minutes >= 30 || tb.Overlap == nil {
			continue
		}

		extra := float64(30 - tb.Minutes)
		startLabel := timeblock.HourLabel(tb.Start)
		for i := range ticks {
			if ticks[i].Label != startLabel {
				continue
			}
			ticks[i].MarginBottomPx += extra * (1 - *tb.Overlap)
			if *tb.Overlap > 0 && i+1 < len(ticks) {
				ticks[i+1].MarginBottomPx += extra * *tb.Overlap
			}
			break
		}
	}

	return ticks
}

// fillIntermediateHours inserts the hours strictly between each consecutive
// pair of labels ("12 PM", "2 PM", "4 PM" -> 12, 1, 2, 3, 4 PM), walking
// forward around the 12-hour clock.
func fillIntermediateHours(labels []string) []string {
	if len(labels) < 2 {
		return labels
	}

	out := []string{labels[0]}
	for i := 1; i < len(labels); i++ {
		from := hourIndex(out[len(out)-1])
		to := hourIndex(labels[i])

		for h := (from + 1) % 24; h != to; h = (h + 1) % 24 {
			out = append(out, hourLabelFor(h))
		}
		out = append(out, labels[i])
	}

	return out
}

// hourIndex converts a label like "4 PM" to a 0-23 hour.
func hourIndex(label string) int {
	space := strings.IndexByte(label, ' ')
	h, _ := strconv.Atoi(label[:space])
	if label[space+1:] == "AM" {
		if h == 12 {
			return 0
		}
		return h
	}
	if h == 12 {
		return 12
	}
	return h + 12
}

// hourLabelFor converts a 0-23 hour to a label like "4 PM".
func hourLabelFor(h int) string {
	meridiem := "AM"
	switch {
	case h == 0:
		h = 12
	case h == 12:
		meridiem = "PM"
	case h > 12:
		h -= 12
		meridiem = "PM"
	}
	return fmt.Sprintf("%d %s", h, meridiem)
}
