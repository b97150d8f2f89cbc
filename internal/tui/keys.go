package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nvaldez/daygrid/internal/dateutil"
	"github.com/nvaldez/daygrid/internal/engine"
	"github.com/nvaldez/daygrid/internal/layout"
	"github.com/nvaldez/daygrid/internal/tui/commands"
)

// handleKeyMsg dispatches key presses by mode.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.mode == ModeModal {
		return m.handleModalKeys(msg)
	}
	return m.handleNormalKeys(msg)
}

func (m Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "j", "down":
		m.selectNext()
		return m, nil

	case "k", "up":
		m.selectPrev()
		return m, nil

	case "h", "left":
		return m.gotoDay(dateutil.ShiftDays(m.date, -1))

	case "l", "right":
		return m.gotoDay(dateutil.ShiftDays(m.date, 1))

	case "t":
		return m.gotoDay(dateutil.TruncateToDay(m.nowFunc()))

	case "n":
		next, err := engine.Create(m.state, m.createTargetY())
		model, cmd := m.applyMutation(next, err, "create")
		if err == nil {
			model.selectNewest(next)
		}
		return model, cmd

	case "e", "enter":
		if tb := m.selectedBlock(); tb != nil {
			return m.openEditModal(tb), nil
		}
		return m, nil

	case "d", "x":
		if tb := m.selectedBlock(); tb != nil {
			return m.openConfirmDelete(tb), nil
		}
		return m, nil

	case "J", "shift+down":
		return m.moveSelected(false)

	case "K", "shift+up":
		return m.moveSelected(true)

	case "+", "=":
		return m.resizeSelected(engine.EdgeBottom, 5)

	case "-", "_":
		return m.resizeSelected(engine.EdgeBottom, -5)

	case "[":
		return m.resizeSelected(engine.EdgeTop, -5)

	case "]":
		return m.resizeSelected(engine.EdgeTop, 5)

	case "z":
		m.zoom = (m.zoom + 1) % len(zoomLevels)
		m.clampScroll()
		return m.withStatus(zoomLabel(m.minutesPerRow()), false)

	case "pgdown", "ctrl+d":
		m.scrollRow += m.contentRows() / 2
		m.clampScroll()
		return m, nil

	case "pgup", "ctrl+u":
		m.scrollRow -= m.contentRows() / 2
		m.clampScroll()
		return m, nil

	case "g", "home":
		m.scrollRow = 0
		return m, nil

	case "G", "end":
		m.scrollRow = m.maxScroll()
		return m, nil

	case "y":
		text := daySummary(m.date, m.state.Blocks)
		return m, commands.CopyText(text, "Day copied to clipboard")

	case "r":
		m.loading = true
		return m, commands.LoadDay(m.store, m.DayKey())
	}

	return m, nil
}

// gotoDay switches the view to another date and loads it.
func (m Model) gotoDay(date time.Time) (tea.Model, tea.Cmd) {
	m.date = date
	m.state = engine.DayState{DayKey: m.DayKey()}
	m.selected = -1
	m.scrollRow = 0
	m.loading = true
	return m, commands.LoadDay(m.store, m.DayKey())
}

// selectNext moves the selection to the next block down.
func (m *Model) selectNext() {
	if len(m.state.Blocks) == 0 {
		return
	}
	if m.selected < len(m.state.Blocks)-1 {
		m.selected++
	}
	m.scrollSelectionIntoView()
}

// selectPrev moves the selection to the previous block up.
func (m *Model) selectPrev() {
	if len(m.state.Blocks) == 0 {
		return
	}
	if m.selected < 0 {
		m.selected = 0
	} else if m.selected > 0 {
		m.selected--
	}
	m.scrollSelectionIntoView()
}

func (m *Model) scrollSelectionIntoView() {
	records := layout.Compute(m.state.Blocks)
	if m.selected < 0 || m.selected >= len(records) {
		return
	}
	r := records[m.selected]
	m.scrollTo(r.OffsetPx, r.OffsetPx+r.HeightPx)
}

// selectNewest selects the block carrying the state's newest id.
func (m *Model) selectNewest(next engine.DayState) {
	for i, tb := range next.Blocks {
		if tb.ID == next.LastID {
			m.selected = i
			break
		}
	}
	m.scrollSelectionIntoView()
}

// createTargetY picks the press point for a keyboard-driven create: just
// below the selected block, or the middle of the visible area.
func (m Model) createTargetY() float64 {
	records := layout.Compute(m.state.Blocks)
	if m.selected >= 0 && m.selected < len(records) {
		r := records[m.selected]
		return float64(r.OffsetPx + r.HeightPx + 10)
	}
	middle := (m.scrollRow + m.contentRows()/2) * m.minutesPerRow()
	if middle < 0 {
		middle = 0
	}
	return float64(middle)
}

// moveSelected swaps the selected block past its neighbor in the given
// direction, flush against the far side of the gap it lands in.
func (m Model) moveSelected(up bool) (tea.Model, tea.Cmd) {
	tb := m.selectedBlock()
	if tb == nil {
		return m, nil
	}

	if up {
		if m.selected == 0 {
			return m, nil
		}
		drop := engine.Drop{Zone: m.selected - 1, OnLower: true}
		next, err := engine.Move(m.state, tb.ID, true, drop)
		model, cmd := m.applyMutation(next, err, "move")
		if err == nil {
			model.selected--
			model.scrollSelectionIntoView()
		}
		return model, cmd
	}

	if m.selected >= len(m.state.Blocks)-1 {
		return m, nil
	}
	drop := engine.Drop{Zone: m.selected + 1, OnUpper: true}
	next, err := engine.Move(m.state, tb.ID, false, drop)
	model, cmd := m.applyMutation(next, err, "move")
	if err == nil {
		model.selected++
		model.scrollSelectionIntoView()
	}
	return model, cmd
}

// resizeSelected pulls one edge of the selected block by delta minutes.
func (m Model) resizeSelected(edge engine.Edge, delta int) (tea.Model, tea.Cmd) {
	tb := m.selectedBlock()
	if tb == nil {
		return m, nil
	}
	next, err := engine.Resize(m.state, tb.ID, edge, delta)
	return m.applyMutation(next, err, "resize")
}

func zoomLabel(minutesPerRow int) string {
	switch minutesPerRow {
	case 10:
		return "Zoom: 10 minutes per row"
	case 15:
		return "Zoom: 15 minutes per row"
	default:
		return "Zoom: 30 minutes per row"
	}
}
