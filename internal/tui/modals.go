package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nvaldez/daygrid/internal/engine"
	"github.com/nvaldez/daygrid/internal/timeblock"
	"github.com/nvaldez/daygrid/internal/tui/commands"
)

// Form field indexes, in focus order.
const (
	formFieldName = iota
	formFieldStart
	formFieldEnd
	formFieldCategory
	formFieldCount
)

// openEditModal opens the edit form prefilled from the block.
func (m Model) openEditModal(tb *timeblock.Timeblock) Model {
	LogModeChange(m.mode, ModeModal, "edit")
	m.mode = ModeModal
	m.modalType = ModalEdit
	m.modalBlockID = tb.ID

	m.formName.SetValue(tb.TaskName)
	m.formStart.SetValue(tb.Start)
	m.formEnd.SetValue(tb.End)
	m.formCategory = -1
	for i, c := range m.categories {
		if c.Name == tb.Category {
			m.formCategory = i
			break
		}
	}

	m.formFocus = formFieldName
	m.formName.Focus()
	m.formStart.Blur()
	m.formEnd.Blur()
	return m
}

// openConfirmDelete opens the delete confirmation for the block.
func (m Model) openConfirmDelete(tb *timeblock.Timeblock) Model {
	LogModeChange(m.mode, ModeModal, "confirm_delete")
	m.mode = ModeModal
	m.modalType = ModalConfirmDelete
	m.modalBlockID = tb.ID
	name := tb.TaskName
	if name == "" {
		name = tb.Start + " block"
	}
	m.confirmMessage = "Delete \"" + name + "\"?"
	return m
}

// closeModal returns to the day view.
func (m Model) closeModal() Model {
	LogModeChange(m.mode, ModeNormal, "close_modal")
	m.mode = ModeNormal
	m.modalType = ModalNone
	m.modalBlockID = 0
	m.formName.Blur()
	m.formStart.Blur()
	m.formEnd.Blur()
	return m
}

func (m Model) handleModalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.modalType {
	case ModalEdit:
		return m.handleEditFormKeys(msg)
	case ModalConfirmDelete:
		return m.handleConfirmDeleteKeys(msg)
	}
	return m.closeModal(), nil
}

func (m Model) handleConfirmDeleteKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		id := m.modalBlockID
		m = m.closeModal()
		next, err := engine.Delete(m.state, id)
		return m.applyMutation(next, err, "delete")
	case "n", "esc", "q":
		return m.closeModal(), nil
	}
	return m, nil
}

func (m Model) handleEditFormKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m.closeModal(), nil

	case "enter":
		return m.submitEditForm()

	case "tab", "down":
		return m.focusFormField((m.formFocus + 1) % formFieldCount), nil

	case "shift+tab", "up":
		return m.focusFormField((m.formFocus + formFieldCount - 1) % formFieldCount), nil

	case "right":
		if m.formFocus == formFieldCategory {
			m.cycleCategory(1)
			return m, nil
		}

	case "left":
		if m.formFocus == formFieldCategory {
			m.cycleCategory(-1)
			return m, nil
		}

	case "ctrl+n":
		// Autocomplete the name field from known task names.
		if m.formFocus == formFieldName {
			if hit := m.completeTaskName(m.formName.Value()); hit != "" {
				m.formName.SetValue(hit)
				m.formName.CursorEnd()
			}
			return m, nil
		}

	case "ctrl+x":
		// Delete the highlighted category from the catalog.
		if m.formFocus == formFieldCategory && m.formCategory >= 0 && m.formCategory < len(m.categories) {
			id := m.categories[m.formCategory].ID
			m.formCategory = -1
			return m, commands.DeleteCategory(m.store, id)
		}
	}

	var cmd tea.Cmd
	m, cmd = m.updateFormInputs(msg)
	return m, cmd
}

// focusFormField moves keyboard focus between the form inputs.
func (m Model) focusFormField(field int) Model {
	m.formFocus = field
	m.formName.Blur()
	m.formStart.Blur()
	m.formEnd.Blur()
	switch field {
	case formFieldName:
		m.formName.Focus()
	case formFieldStart:
		m.formStart.Focus()
	case formFieldEnd:
		m.formEnd.Focus()
	}
	return m
}

// cycleCategory steps the category picker, including the "none" slot.
func (m *Model) cycleCategory(dir int) {
	if len(m.categories) == 0 {
		m.formCategory = -1
		return
	}
	// -1 means no category; the cycle is none, cat0, cat1, ...
	n := len(m.categories) + 1
	idx := (m.formCategory + 1 + dir + n) % n
	m.formCategory = idx - 1
}

// completeTaskName returns the first known task name with the given prefix.
func (m Model) completeTaskName(prefix string) string {
	if prefix == "" {
		return ""
	}
	lower := strings.ToLower(prefix)
	for _, tn := range m.taskNames {
		if strings.HasPrefix(strings.ToLower(tn.Name), lower) {
			return tn.Name
		}
	}
	return ""
}

// submitEditForm validates and applies the form to the block being edited.
func (m Model) submitEditForm() (tea.Model, tea.Cmd) {
	name := strings.TrimSpace(m.formName.Value())
	start := strings.TrimSpace(m.formStart.Value())
	end := strings.TrimSpace(m.formEnd.Value())
	category := ""
	if m.formCategory >= 0 && m.formCategory < len(m.categories) {
		category = m.categories[m.formCategory].Name
	}

	id := m.modalBlockID
	m = m.closeModal()

	next, err := engine.Update(m.state, id, name, category, start, end)
	model, cmd := m.applyMutation(next, err, "update")
	if err != nil {
		return model, cmd
	}

	// Keep the edited block selected even if it was reordered.
	for i, tb := range model.state.Blocks {
		if tb.ID == id {
			model.selected = i
			break
		}
	}
	model.scrollSelectionIntoView()

	return model, tea.Batch(cmd, commands.RememberTaskName(model.store, name))
}

// updateFormInputs forwards a message to the focused text input.
func (m Model) updateFormInputs(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.formFocus {
	case formFieldName:
		m.formName, cmd = m.formName.Update(msg)
	case formFieldStart:
		m.formStart, cmd = m.formStart.Update(msg)
	case formFieldEnd:
		m.formEnd, cmd = m.formEnd.Update(msg)
	}
	return m, cmd
}
