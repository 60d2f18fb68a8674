package tui

import (
	"fmt"
	"strings"
	"time"
)

// helpMarkdown is the long-form guide shown under the key reference.
const helpMarkdown = `
## Moving tasks

- **Mouse:** press on a task, drag it over any column, release to drop.
- **Keyboard:** ` + "`space`" + ` picks up the selected task, ` + "`h/j/k/l`" + ` moves it,
  ` + "`space`" + ` or ` + "`enter`" + ` drops it, ` + "`esc`" + ` puts it back.

While a task is in flight the other cards shift to show where it will land.
The move is saved once, when you drop.
`

// renderModeOverlay renders the modal for the active mode, or "".
func (m Model) renderModeOverlay() string {
	maxWidth := m.width - 8
	if m.help.ShowAll {
		return m.renderHelpOverlay(maxWidth)
	}
	switch m.mode {
	case modeAlert:
		return m.renderAlert()

	case modeConfirmDelete:
		card, _ := m.board.Card(m.pendingDelete)
		yes, no := "[ delete ]", "  cancel  "
		if m.confirmChoice == 1 {
			yes, no = "  delete  ", "[ cancel ]"
		}
		lines := []string{
			colTitle.Render("Delete task"),
			deleteConfirmPrompt,
			hintStyle.Render(truncate(card.Title, 48)),
			"",
			flashDangerStyle.Render(yes) + "  " + no,
			hintStyle.Render("y confirm • n/esc cancel • h/l choose"),
		}
		return modalStyle.Render(strings.Join(lines, "\n"))

	case modeAddCard:
		lines := []string{colTitle.Render("New task")}
		for _, in := range m.formInputs {
			lines = append(lines, in.View())
		}
		lines = append(lines, hintStyle.Render("enter add • tab next field • esc cancel"))
		return modalStyle.Render(strings.Join(lines, "\n"))

	case modeRenameCard:
		lines := []string{
			colTitle.Render("Edit task"),
			m.renameInput.View(),
			hintStyle.Render("enter save • esc cancel"),
		}
		return modalStyle.Render(strings.Join(lines, "\n"))

	case modeActivityLog:
		style := modalStyle
		if maxWidth > 0 {
			style = style.Width(clamp(maxWidth, 44, 96))
		}
		lines := []string{colTitle.Render("Activity Log")}
		if len(m.activityLog) == 0 {
			lines = append(lines, hintStyle.Render("(no activity yet)"))
		} else {
			rendered := 0
			for idx := len(m.activityLog) - 1; idx >= 0; idx-- {
				entry := m.activityLog[idx]
				line := fmt.Sprintf("%s  %s • %s", formatActivityTimestamp(entry.At), entry.Summary, truncate(entry.Target, 42))
				if entry.Actor != "" {
					line += hintStyle.Render("  " + entry.Actor)
				}
				lines = append(lines, line)
				rendered++
				if rendered >= activityLogViewWindow {
					break
				}
			}
		}
		lines = append(lines, hintStyle.Render("esc close"))
		return style.Render(strings.Join(lines, "\n"))
	}
	return ""
}

// renderAlert renders a blocking alert box.
func (m Model) renderAlert() string {
	lines := []string{
		flashDangerStyle.Render(m.alert),
		"",
		hintStyle.Render("enter ok"),
	}
	return alertStyle.Render(strings.Join(lines, "\n"))
}

// renderHelpOverlay renders the expanded key reference.
func (m Model) renderHelpOverlay(maxWidth int) string {
	width := clamp(maxWidth, 56, 100)
	hb := m.help
	hb.ShowAll = true
	hb.SetWidth(width - 4)

	lines := []string{
		colTitle.Render("Taskboard Help"),
		"",
		hb.View(m.keys),
	}
	if guide := m.markdown.render(helpMarkdown, width-4); guide != "" {
		lines = append(lines, guide)
	}
	lines = append(lines, hintStyle.Render("press ? or esc to close"))
	style := modalStyle.BorderForeground(dim)
	if maxWidth > 0 {
		style = style.Width(width)
	}
	return style.Render(strings.Join(lines, "\n"))
}

// formatActivityTimestamp formats an activity timestamp.
func formatActivityTimestamp(at time.Time) string {
	if at.IsZero() {
		return "--:--:--"
	}
	return at.Local().Format("15:04:05")
}
