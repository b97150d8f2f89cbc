package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/nvaldez/daygrid/internal/dateutil"
	"github.com/nvaldez/daygrid/internal/layout"
	"github.com/nvaldez/daygrid/internal/timeblock"
)

// rulerWidth is the character width of the hour label column.
const rulerWidth = 7

// View renders the day view.
func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return "Loading..."
	}
	if m.width < rulerWidth+10 || m.height < headerRows+m.footerHeight+1 {
		return "Terminal too small"
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	if m.mode == ModeModal && m.modalType != ModalNone {
		b.WriteString(m.renderModal())
	} else {
		b.WriteString(m.renderTimeline())
	}

	b.WriteString(m.renderFooter())
	return b.String()
}

func (m Model) renderHeader() string {
	title := m.styles.TitleStyle.Render(dateutil.DisplayDate(m.date))
	if m.loading {
		return title + m.styles.HelpStyle.Render("  loading...")
	}
	total := 0
	for _, tb := range m.state.Blocks {
		total += tb.Minutes
	}
	info := fmt.Sprintf("  %d blocks · %s planned", len(m.state.Blocks), formatDuration(total))
	return title + m.styles.HelpStyle.Render(info)
}

func (m Model) renderTimeline() string {
	records := layout.Compute(m.state.Blocks)
	ticks := layout.Ticks(m.state.Blocks)
	tops := tickTops(ticks)
	mpr := m.minutesPerRow()
	dayWidth := m.width - rulerWidth - 1

	var rows []string
	for r := headerRows; r < headerRows+m.contentRows(); r++ {
		px := m.pixelAtRow(r)
		if px < 0 {
			rows = append(rows, "")
			continue
		}

		ruler := ""
		for k, top := range tops {
			if top >= px && top < px+mpr {
				ruler = ticks[k].Label
				break
			}
		}

		rows = append(rows, m.renderTimelineRow(records, px, ruler, dayWidth))
	}

	return strings.Join(rows, "\n") + "\n"
}

// renderTimelineRow draws one terminal row: the ruler cell plus either a
// slice of a block or gap space.
func (m Model) renderTimelineRow(records []layout.Record, px int, rulerLabel string, dayWidth int) string {
	mpr := m.minutesPerRow()
	ruler := m.styles.RulerStyle.Render(padLeft(rulerLabel, rulerWidth)) + m.styles.RulerTickStyle.Render("│")

	idx := blockIndexAtPixel(records, px)
	if idx < 0 {
		// Gap row; mark rows that begin an hour with a faint line.
		if rulerLabel != "" {
			return ruler + m.styles.GapStyle.Render(strings.Repeat("┄", dayWidth))
		}
		return ruler
	}

	tb := m.state.Blocks[idx]
	rec := records[idx]
	style := m.styles.BlockStyle(m.categoryColor(tb.Category), idx == m.selected)

	content := ""
	if rec.OffsetPx >= px && rec.OffsetPx < px+mpr {
		// Row containing the block's top edge carries the label.
		content = blockLabel(tb)
	}
	if ansi.StringWidth(content) > dayWidth {
		content = ansi.Truncate(content, dayWidth, "…")
	}

	return ruler + style.Width(dayWidth).Render(content)
}

// categoryColor resolves a category name to its stored color.
func (m Model) categoryColor(name string) string {
	for _, c := range m.categories {
		if c.Name == name {
			return c.Color
		}
	}
	return ""
}

func blockLabel(tb *timeblock.Timeblock) string {
	name := tb.TaskName
	if name == "" {
		name = "(untitled)"
	}
	label := fmt.Sprintf(" %s  %s – %s", name, tb.Start, tb.End)
	if tb.Category != "" {
		label += "  [" + tb.Category + "]"
	}
	return label
}

func (m Model) renderFooter() string {
	status := ""
	if m.statusMsg != "" && time.Now().Before(m.statusTime) {
		if m.statusErr {
			status = m.styles.StatusErrorStyle.Render(m.statusMsg)
		} else {
			status = m.styles.StatusStyle.Render(m.statusMsg)
		}
	}

	help := m.styles.HelpStyle.Render(m.helpLine())
	return status + "\n" + help
}

func (m Model) helpLine() string {
	if m.mode == ModeModal {
		switch m.modalType {
		case ModalEdit:
			return "tab next field · ←/→ category · ctrl+x drop category · ctrl+n complete · enter save · esc cancel"
		case ModalConfirmDelete:
			return "y delete · n cancel"
		}
	}
	return "dbl-click/n new · e edit · d delete · J/K move · +/- [/] resize · h/l day · y copy · z zoom · q quit"
}

func (m Model) renderModal() string {
	var body string
	switch m.modalType {
	case ModalEdit:
		body = m.renderEditForm()
	case ModalConfirmDelete:
		body = m.renderConfirmDelete()
	}

	box := m.styles.ModalStyle.Render(body)
	return lipgloss.Place(m.width, m.contentRows(), lipgloss.Center, lipgloss.Center, box) + "\n"
}

func (m Model) renderEditForm() string {
	label := func(text string, field int) string {
		if m.formFocus == field {
			return m.styles.ModalFocusStyle.Render("> " + text)
		}
		return m.styles.ModalLabelStyle.Render("  " + text)
	}

	category := "(none)"
	if m.formCategory >= 0 && m.formCategory < len(m.categories) {
		category = m.categories[m.formCategory].Name
	}
	categoryValue := m.styles.ModalValueStyle.Render(category)
	if m.formFocus == formFieldCategory {
		categoryValue = m.styles.ModalFocusStyle.Render("< " + category + " >")
	}

	lines := []string{
		m.styles.ModalTitleStyle.Render("Edit block"),
		"",
		label("Task", formFieldName) + "  " + m.formName.View(),
		label("Start", formFieldStart) + " " + m.formStart.View(),
		label("End", formFieldEnd) + "   " + m.formEnd.View(),
		label("Tag", formFieldCategory) + "   " + categoryValue,
		"",
		m.styles.ModalHintStyle.Render("enter save · esc cancel"),
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderConfirmDelete() string {
	lines := []string{
		m.styles.ConfirmStyle.Render(m.confirmMessage),
		"",
		m.styles.ModalHintStyle.Render("y delete · n cancel"),
	}
	return strings.Join(lines, "\n")
}

func formatDuration(minutes int) string {
	h := minutes / 60
	mm := minutes % 60
	switch {
	case h == 0:
		return fmt.Sprintf("%dm", mm)
	case mm == 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dh %dm", h, mm)
	}
}

func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}
