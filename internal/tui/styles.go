package tui

import (
	"charm.land/lipgloss/v2"
	"github.com/hylla/taskboard/internal/app"
)

var (
	accent = lipgloss.Color("62")
	muted  = lipgloss.Color("241")
	dim    = lipgloss.Color("239")

	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252"))
	hintStyle    = lipgloss.NewStyle().Foreground(muted)
	statusStyle  = lipgloss.NewStyle().Foreground(dim)
	colTitle     = lipgloss.NewStyle().Bold(true).Foreground(accent)
	emptyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	itemSubStyle = lipgloss.NewStyle().Foreground(muted)

	selectedCardStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	inFlightCardStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("252")).
				Background(lipgloss.Color("237")).
				Bold(true).
				Italic(true)

	laneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(dim).
			Padding(0, 1).
			MarginRight(1)
	selectedLaneStyle = laneStyle.BorderForeground(accent)

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 1)
	alertStyle = modalStyle.BorderForeground(lipgloss.Color("203"))

	flashSuccessStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	flashDangerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
)

// renderFlash styles a flash notice by kind.
func renderFlash(flash app.Flash) string {
	if flash.Kind == app.FlashDanger {
		return flashDangerStyle.Render(flash.Message)
	}
	return flashSuccessStyle.Render(flash.Message)
}
