package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nvaldez/daygrid/internal/engine"
	"github.com/nvaldez/daygrid/internal/gesture"
	"github.com/nvaldez/daygrid/internal/layout"
	"github.com/nvaldez/daygrid/internal/timeblock"
)

// pressPageOffsetPx shifts view pixels into the page coordinates the press
// detector expects, placing the whole timeline below its header band.
const pressPageOffsetPx = 120

// colWidthPx converts terminal columns into the pixel space the slide
// thresholds are defined in.
const colWidthPx = 10

// handleMouseMsg turns pointer input into engine operations: wheel scrolls,
// a double press creates, a press-drag on a block edge resizes, and a longer
// press-drag relocates the block.
func (m Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.mode == ModeModal {
		return m, nil
	}

	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.scrollRow -= 3
		m.clampScroll()
		return m, nil

	case msg.Button == tea.MouseButtonWheelDown:
		m.scrollRow += 3
		m.clampScroll()
		return m, nil
	}

	px := m.pixelAtRow(msg.Y)
	LogMouse(msg, float64(px))

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		return m.handleLeftPress(px, msg.X)

	case tea.MouseActionMotion:
		if m.drag.active {
			if px >= 0 {
				m.drag.lastPx = px
			}
			m.drag.lastCol = msg.X
		}
		return m, nil

	case tea.MouseActionRelease:
		if !m.drag.active {
			return m, nil
		}
		drag := m.drag
		m.drag = dragSession{}
		if px >= 0 {
			drag.lastPx = px
		}
		return m.finishDrag(drag)
	}

	return m, nil
}

func (m Model) handleLeftPress(px, col int) (tea.Model, tea.Cmd) {
	// Presses outside the timeline feed the detector a header coordinate so
	// they never complete a create.
	if px < 0 {
		m.press.Press(0)
		return m, nil
	}

	if m.press.Press(float64(px + pressPageOffsetPx)) {
		LogGesture("double_press", map[string]any{"y": px})
		next, err := engine.Create(m.state, float64(px))
		model, cmd := m.applyMutation(next, err, "create")
		if err == nil {
			model.selectNewest(next)
		}
		return model, cmd
	}

	records := layout.Compute(m.state.Blocks)
	idx := blockIndexAtPixel(records, px)
	if idx < 0 {
		return m, nil
	}

	m.selected = idx
	r := records[idx]
	edgeBand := m.minutesPerRow()
	m.drag = dragSession{
		active:    true,
		blockID:   r.ID,
		onTop:     px-r.OffsetPx < edgeBand,
		onBottom:  r.OffsetPx+r.HeightPx-px <= edgeBand,
		pressPx:   px,
		lastPx:    px,
		pressCol:  col,
		lastCol:   col,
		pressedAt: m.nowFunc(),
	}
	return m, nil
}

// finishDrag resolves a completed press-drag into a delete, a resize or
// a move. A rightward slide asks to delete, a short press on an edge
// pulls it, and a held press relocates the whole block.
func (m Model) finishDrag(drag dragSession) (tea.Model, tea.Cmd) {
	onEdge := drag.onTop || drag.onBottom
	slideX := float64(drag.lastCol-drag.pressCol) * colWidthPx
	if gesture.ClassifySlide(slideX, onEdge) == gesture.SlideDelete {
		if i := timeblock.IndexOf(m.state.Blocks, drag.blockID); i >= 0 {
			LogGesture("slide_delete", map[string]any{"id": drag.blockID})
			return m.openConfirmDelete(m.state.Blocks[i]), nil
		}
		return m, nil
	}

	translation := float64(drag.lastPx - drag.pressPx)
	if translation == 0 {
		return m, nil
	}

	held := m.nowFunc().Sub(drag.pressedAt)
	if onEdge && !gesture.IsLongPress(held) {
		minutes, ok := gesture.QuantizePull(translation, drag.onTop)
		if !ok {
			return m, nil
		}
		LogGesture("pull", map[string]any{"minutes": minutes, "top": drag.onTop})
		edge := engine.EdgeBottom
		delta := minutes
		if drag.onTop {
			edge = engine.EdgeTop
			delta = -minutes
		}
		next, err := engine.Resize(m.state, drag.blockID, edge, delta)
		return m.applyMutation(next, err, "resize")
	}

	records := layout.Compute(m.state.Blocks)
	idx := blockIndexAtPixel(records, drag.pressPx)
	if idx < 0 {
		return m, nil
	}

	zones, _, err := gesture.Dropzones(records, drag.blockID)
	if err != nil {
		return m.withStatus(mutationError(err), true)
	}

	pressY := float64(drag.pressPx - records[idx].OffsetPx)
	drop, draggedUp, ok := gesture.ResolveDrop(zones, translation, pressY)
	if !ok {
		return m, nil
	}
	LogGesture("drop", map[string]any{
		"zone":       drop.Zone,
		"dragged_up": draggedUp,
		"proportion": drop.Proportion,
	})

	next, err := engine.Move(m.state, drag.blockID, draggedUp, drop)
	model, cmd := m.applyMutation(next, err, "move")
	if err == nil {
		model.selected = drop.Zone
		model.scrollSelectionIntoView()
	}
	return model, cmd
}
