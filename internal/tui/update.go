package tui

import (
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nvaldez/daygrid/internal/engine"
	"github.com/nvaldez/daygrid/internal/timeblock"
	"github.com/nvaldez/daygrid/internal/tui/commands"
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		LogKeyPress(msg)
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.clampScroll()
		return m, nil

	case commands.DayLoadedMsg:
		m.state = msg.State
		m.loading = false
		m.clampSelection()
		m.clampScroll()
		LogDayState(m.state, "loaded")
		return m, nil

	case commands.DaySavedMsg:
		LogDayState(msg.State, "saved")
		return m, nil

	case commands.CatalogMsg:
		m.categories = msg.Categories
		m.taskNames = msg.TaskNames
		return m, nil

	case commands.ErrMsg:
		LogError("command", msg.Err)
		return m.withStatus(fmt.Sprintf("Error: %v", msg.Err), true)

	case commands.StatusMsgCmd:
		m.statusMsg = msg.Msg
		m.statusErr = false
		m.statusTime = time.Now().Add(3 * time.Second)
		return m, tea.Tick(3*time.Second, func(time.Time) tea.Msg {
			return commands.ClearStatusMsg{}
		})

	case commands.ClearStatusMsg:
		if time.Now().After(m.statusTime) {
			m.statusMsg = ""
			m.statusErr = false
		}
		return m, nil
	}

	// Forward anything else (cursor blinks etc) to the focused form input.
	if m.mode == ModeModal && m.modalType == ModalEdit {
		var cmd tea.Cmd
		m, cmd = m.updateFormInputs(msg)
		return m, cmd
	}

	return m, nil
}

// withStatus sets a transient status line and schedules its cleanup.
func (m Model) withStatus(text string, isErr bool) (Model, tea.Cmd) {
	m.statusMsg = text
	m.statusErr = isErr
	m.statusTime = time.Now().Add(3 * time.Second)
	return m, tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return commands.ClearStatusMsg{}
	})
}

// applyMutation commits a successful engine result and persists it, or
// surfaces the failure as a status message.
func (m Model) applyMutation(next engine.DayState, err error, action string) (Model, tea.Cmd) {
	if err != nil {
		LogError(action, err)
		return m.withStatus(mutationError(err), true)
	}
	m.state = next
	m.clampSelection()
	LogDayState(m.state, action)
	return m, commands.SaveDay(m.store, m.state)
}

// mutationError renders engine failures in user terms.
func mutationError(err error) string {
	switch {
	case errors.Is(err, timeblock.ErrDayBoundary):
		return "No room: the day ends at 11:55 PM"
	case errors.Is(err, timeblock.ErrOverlap):
		return "Times overlap another block"
	case errors.Is(err, timeblock.ErrMalformedClock):
		return "Times must look like 9:05 AM"
	case errors.Is(err, timeblock.ErrEndBeforeStart):
		return "End must come after start"
	case errors.Is(err, timeblock.ErrNotFound):
		return "Block no longer exists"
	default:
		return fmt.Sprintf("Error: %v", err)
	}
}

// clampSelection keeps the selection inside the block list.
func (m *Model) clampSelection() {
	if len(m.state.Blocks) == 0 {
		m.selected = -1
		return
	}
	if m.selected >= len(m.state.Blocks) {
		m.selected = len(m.state.Blocks) - 1
	}
	if m.selected < -1 {
		m.selected = -1
	}
}

// selectedBlock returns the selected block, or nil.
func (m Model) selectedBlock() *timeblock.Timeblock {
	if m.selected < 0 || m.selected >= len(m.state.Blocks) {
		return nil
	}
	return m.state.Blocks[m.selected]
}
