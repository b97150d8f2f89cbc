// Package commands provides TUI command constructors and message types.
package commands

import (
	"context"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nvaldez/daygrid/internal/engine"
	"github.com/nvaldez/daygrid/internal/timeblock"
)

// DayLoadedMsg is sent when a day's blocks are loaded.
type DayLoadedMsg struct {
	State engine.DayState
}

// DaySavedMsg is sent after a day's state has been persisted.
type DaySavedMsg struct {
	State engine.DayState
}

// CatalogMsg is sent when the category and task-name lists are loaded.
type CatalogMsg struct {
	Categories []*timeblock.Category
	TaskNames  []*timeblock.TaskName
}

// ErrMsg is sent when an error occurs.
type ErrMsg struct {
	Err error
}

// StatusMsgCmd is sent for temporary status messages.
type StatusMsgCmd struct {
	Msg string
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

// LoadDay loads a day's blocks, order, and the id counter.
func LoadDay(store timeblock.DayStore, dayKey string) tea.Cmd {
	return func() tea.Msg {
		state, err := engine.LoadDay(context.Background(), store, dayKey)
		if err != nil {
			return ErrMsg{Err: err}
		}
		return DayLoadedMsg{State: state}
	}
}

// SaveDay persists a day's state and reports the saved state back.
func SaveDay(store timeblock.DayStore, state engine.DayState) tea.Cmd {
	return func() tea.Msg {
		if err := engine.SaveDay(context.Background(), store, state); err != nil {
			return ErrMsg{Err: err}
		}
		return DaySavedMsg{State: state}
	}
}

// LoadCatalog loads the category and task-name lists for the edit form.
func LoadCatalog(store timeblock.Store) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		categories, err := store.Categories(ctx)
		if err != nil {
			return ErrMsg{Err: err}
		}
		names, err := store.TaskNames(ctx)
		if err != nil {
			return ErrMsg{Err: err}
		}
		return CatalogMsg{Categories: categories, TaskNames: names}
	}
}

// RememberTaskName records a task name for future autocomplete, then
// reloads the catalog. Blank names are skipped.
func RememberTaskName(store timeblock.Store, name string) tea.Cmd {
	return func() tea.Msg {
		if name == "" {
			return nil
		}
		if _, err := store.CreateTaskName(context.Background(), name); err != nil {
			return ErrMsg{Err: err}
		}
		return LoadCatalog(store)()
	}
}

// DeleteCategory removes a category and reloads the catalog. Blocks that
// carry the category name keep it as a plain label.
func DeleteCategory(store timeblock.Store, id int64) tea.Cmd {
	return func() tea.Msg {
		if err := store.DeleteCategory(context.Background(), id); err != nil {
			return ErrMsg{Err: err}
		}
		return LoadCatalog(store)()
	}
}

// CopyText copies text to the system clipboard.
func CopyText(text, confirmation string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return ErrMsg{Err: err}
		}
		return StatusMsgCmd{Msg: confirmation}
	}
}
