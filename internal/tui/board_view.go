package tui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/hylla/taskboard/internal/domain"
)

// Dashboard layout, in terminal rows from the top of the screen.
const (
	headerRows   = 3 // title, flash, spacer
	laneChrome   = 1 // top border
	laneHeadRows = 2 // column title, spacer
	cardRows     = 2 // title, meta
	cardStride   = cardRows + 1
	footerRows   = 2 // status, help
	cardsTop     = headerRows + laneChrome + laneHeadRows

	minLaneInner = 16
	maxLaneInner = 40
)

// laneInnerWidth returns the content width of one lane.
func (m Model) laneInnerWidth() int {
	lanes := max(1, len(m.board.Lanes))
	chrome := lipgloss.Width(laneStyle.Render(""))
	if m.width <= 0 {
		return minLaneInner
	}
	return clamp(m.width/lanes-chrome, minLaneInner, maxLaneInner)
}

// laneStride returns the rendered width of one lane including its margin.
func (m Model) laneStride() int {
	return m.laneInnerWidth() + lipgloss.Width(laneStyle.Render(""))
}

// visibleCards returns how many cards fit in a lane.
func (m Model) visibleCards() int {
	if m.height <= 0 {
		return 1 << 10
	}
	avail := m.height - headerRows - footerRows - 2*laneChrome - laneHeadRows
	return max(1, avail/cardStride)
}

// laneScroll returns the first visible card row of lane idx.
func (m Model) laneScroll(idx int) int {
	if idx != m.selectedLane {
		return 0
	}
	return max(0, m.selectedRow-m.visibleCards()+1)
}

// cardBoxes returns the on-screen vertical extent of every card in lane idx.
func (m Model) cardBoxes(idx int) []domain.Box {
	if idx < 0 || idx >= len(m.board.Lanes) {
		return nil
	}
	scroll := m.laneScroll(idx)
	cards := m.board.Lanes[idx].Cards
	boxes := make([]domain.Box, len(cards))
	for i := range cards {
		boxes[i] = domain.Box{
			Top:    float64(cardsTop + (i-scroll)*cardStride),
			Height: cardRows,
		}
	}
	return boxes
}

// laneAt maps a screen column to a lane index.
func (m Model) laneAt(x int) (int, bool) {
	if x < 0 || len(m.board.Lanes) == 0 {
		return 0, false
	}
	idx := x / m.laneStride()
	if idx >= len(m.board.Lanes) {
		return 0, false
	}
	return idx, true
}

// cardAt maps a screen cell to the card drawn there.
func (m Model) cardAt(x, y int) (lane, row int, ok bool) {
	lane, ok = m.laneAt(x)
	if !ok {
		return 0, 0, false
	}
	rel := y - cardsTop
	if rel < 0 || rel%cardStride >= cardRows {
		return 0, 0, false
	}
	slot := rel / cardStride
	if slot >= m.visibleCards() {
		return 0, 0, false
	}
	row = slot + m.laneScroll(lane)
	if row >= len(m.board.Lanes[lane].Cards) {
		return 0, 0, false
	}
	return lane, row, true
}

// renderDashboard renders the signed-in board screen.
func (m Model) renderDashboard() string {
	header := titleStyle.Render("Taskboard") + "  " + m.now().Format(m.dateFormat)
	if user := m.session.Username(); user != "" {
		header += statusStyle.Render("  signed in as " + user)
	}
	if m.boardLoaded {
		header += statusStyle.Render("  " + plural(m.board.Total(), "task", "tasks"))
	}
	flashLine := ""
	if flash, ok := m.session.Flash(); ok {
		flashLine = renderFlash(flash) + hintStyle.Render("  (x to dismiss)")
	}

	body := m.renderLanes()

	status := m.status
	if m.drag.Active() {
		if card, ok := m.board.Card(m.drag.CardID()); ok {
			status = "moving: " + card.Title
		}
	}
	hb := m.help
	hb.ShowAll = false
	hb.SetWidth(max(0, m.width-2))
	var helpLine string
	if m.drag.Active() {
		helpLine = hb.View(dragKeyMap{m.keys})
	} else {
		helpLine = hb.View(m.keys)
	}

	content := strings.Join([]string{
		header,
		flashLine,
		"",
		body,
		statusStyle.Render(status),
		helpLine,
	}, "\n")

	if overlay := m.renderModeOverlay(); overlay != "" {
		return overlayOnContent(content, overlay, m.width, m.height)
	}
	return content
}

// renderLanes renders all lanes side by side.
func (m Model) renderLanes() string {
	if len(m.board.Lanes) == 0 {
		return emptyStyle.Render("(no columns)")
	}
	inner := m.laneInnerWidth()
	visible := m.visibleCards()
	counts := m.board.Counts()
	views := make([]string, 0, len(m.board.Lanes))
	for idx, lane := range m.board.Lanes {
		lines := []string{
			colTitle.Render(truncate(fmt.Sprintf("%s (%d)", lane.Column.Name, counts[lane.Column.ID]), inner)),
			"",
		}
		if len(lane.Cards) == 0 {
			lines = append(lines, emptyStyle.Render("(empty)"))
		}
		scroll := m.laneScroll(idx)
		for row := scroll; row < len(lane.Cards) && row < scroll+visible; row++ {
			card := lane.Cards[row]
			if row > scroll {
				lines = append(lines, "")
			}
			lines = append(lines, m.renderCard(card, idx, row, inner)...)
		}
		if m.height > 0 {
			lines = fitRows(lines, laneHeadRows+visible*cardStride-1)
		}
		for i := range lines {
			lines[i] = padRight(lines[i], inner)
		}
		style := laneStyle
		if idx == m.selectedLane {
			style = selectedLaneStyle
		}
		views = append(views, style.Render(strings.Join(lines, "\n")))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, views...)
}

// renderCard renders the two rows of one card.
func (m Model) renderCard(card domain.Card, lane, row, inner int) []string {
	prefix := "  "
	selected := lane == m.selectedLane && row == m.selectedRow
	if selected {
		prefix = "› "
	}
	title := prefix + truncate(card.Title, inner-2)
	meta := "  " + truncate(cardMeta(card), inner-2)
	switch {
	case m.drag.IsInFlight(card.ID):
		title = inFlightCardStyle.Render(padRight(title, inner))
		meta = inFlightCardStyle.Render(padRight(meta, inner))
	case selected:
		title = selectedCardStyle.Render(title)
		meta = itemSubStyle.Render(meta)
	default:
		meta = itemSubStyle.Render(meta)
	}
	return []string{title, meta}
}

// cardMeta formats the day and owner line of a card.
func cardMeta(card domain.Card) string {
	parts := make([]string, 0, 2)
	if card.Day != "" {
		parts = append(parts, card.Day)
	}
	if card.Owner != "" {
		parts = append(parts, card.Owner)
	}
	return strings.Join(parts, " · ")
}

// fitRows pads or cuts lines to exactly n rows.
func fitRows(lines []string, n int) []string {
	if n <= 0 {
		return nil
	}
	if len(lines) > n {
		return lines[:n]
	}
	for len(lines) < n {
		lines = append(lines, "")
	}
	return lines
}

// padRight pads s with spaces to width cells.
func padRight(s string, width int) string {
	if gap := width - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}
