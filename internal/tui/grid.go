package tui

import (
	"github.com/nvaldez/daygrid/internal/layout"
)

// Chrome around the timeline area.
const (
	headerRows = 2 // date line plus a spacer

	// tickLabelHeightPx is the vertical space an hour label occupies on the
	// ruler; with the base tick margin this yields 60px per hour.
	tickLabelHeightPx = 24

	// tailPx is the open space rendered below the last block so there is
	// somewhere to press and drag to.
	tailPx = 100

	// emptyDayHeightPx sizes the canvas when the day has no blocks yet.
	emptyDayHeightPx = 480
)

// contentRows returns the number of terminal rows showing the timeline.
func (m Model) contentRows() int {
	rows := m.height - headerRows - m.footerHeight
	if rows < 0 {
		return 0
	}
	return rows
}

// viewHeightPx returns the rendered height of the timeline in pixels. The
// view starts at the first block's starting hour, so the height tracks the
// laid-out records rather than the full day.
func (m Model) viewHeightPx() int {
	records := layout.Compute(m.state.Blocks)
	if len(records) == 0 {
		return emptyDayHeightPx
	}
	last := records[len(records)-1]
	return last.OffsetPx + last.HeightPx + tailPx
}

// timelineRows returns the total rows the rendered view occupies at the
// current zoom.
func (m Model) timelineRows() int {
	mpr := m.minutesPerRow()
	return (m.viewHeightPx() + mpr - 1) / mpr
}

// maxScroll returns the highest valid scrollRow.
func (m Model) maxScroll() int {
	max := m.timelineRows() - m.contentRows()
	if max < 0 {
		return 0
	}
	return max
}

// clampScroll pins scrollRow into the valid range.
func (m *Model) clampScroll() {
	if m.scrollRow > m.maxScroll() {
		m.scrollRow = m.maxScroll()
	}
	if m.scrollRow < 0 {
		m.scrollRow = 0
	}
}

// pixelAtRow maps a terminal row to the view pixel at its top edge.
// Returns -1 for rows outside the timeline area.
func (m Model) pixelAtRow(screenRow int) int {
	if screenRow < headerRows || screenRow >= headerRows+m.contentRows() {
		return -1
	}
	px := (m.scrollRow + screenRow - headerRows) * m.minutesPerRow()
	if px >= m.viewHeightPx() {
		return -1
	}
	return px
}

// rowForPixel maps a view pixel to the terminal row containing it.
// The row may fall outside the visible area.
func (m Model) rowForPixel(px int) int {
	return px/m.minutesPerRow() - m.scrollRow + headerRows
}

// scrollTo adjusts scrollRow so the pixel range [startPx, endPx) is visible.
func (m *Model) scrollTo(startPx, endPx int) {
	mpr := m.minutesPerRow()
	firstRow := startPx / mpr
	lastRow := (endPx - 1) / mpr

	if firstRow < m.scrollRow {
		m.scrollRow = firstRow
	}
	if visible := m.contentRows(); visible > 0 && lastRow >= m.scrollRow+visible {
		m.scrollRow = lastRow - visible + 1
	}
	m.clampScroll()
}

// blockIndexAtPixel returns the index of the record covering the given view
// pixel, or -1 when the pixel falls in a gap.
func blockIndexAtPixel(records []layout.Record, px int) int {
	for i, r := range records {
		if px >= r.OffsetPx && px < r.OffsetPx+r.HeightPx {
			return i
		}
	}
	return -1
}

// tickTops returns the view pixel of each ruler tick's top edge.
func tickTops(ticks []layout.Tick) []int {
	tops := make([]int, len(ticks))
	top := 0.0
	for i, tick := range ticks {
		tops[i] = int(top)
		top += tickLabelHeightPx + tick.MarginBottomPx
	}
	return tops
}
