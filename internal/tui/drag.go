package tui

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/hylla/taskboard/internal/app"
)

// dashboardIdle reports whether the board accepts pointer input.
func (m Model) dashboardIdle() bool {
	return m.session.View() == app.ViewDashboard && m.mode == modeNone && !m.help.ShowAll && m.err == nil
}

// handleMouseClick starts a drag on the card under the pointer.
func (m Model) handleMouseClick(msg tea.MouseClickMsg) (tea.Model, tea.Cmd) {
	if !m.dashboardIdle() || msg.Button != tea.MouseLeft {
		return m, nil
	}
	lane, row, ok := m.cardAt(msg.X, msg.Y)
	if !ok {
		if idx, inLane := m.laneAt(msg.X); inLane {
			m.selectLane(idx)
		}
		return m, nil
	}
	m.selectedLane = lane
	m.selectedRow = row
	if !m.mouseDrag || m.drag.Active() {
		return m, nil
	}
	card := m.board.Lanes[lane].Cards[row]
	if err := m.drag.Begin(card.ID, card.ColumnID, row); err != nil {
		m.status = err.Error()
		return m, nil
	}
	m.mouseHeld = true
	return m, nil
}

// handleMouseMotion re-lays out the in-flight card on every pointer move.
func (m Model) handleMouseMotion(msg tea.MouseMotionMsg) (tea.Model, tea.Cmd) {
	if !m.mouseHeld || !m.drag.Active() {
		return m, nil
	}
	lane, ok := m.laneAt(msg.X)
	if !ok {
		return m, nil
	}
	columnID := m.board.Lanes[lane].Column.ID
	if _, err := m.drag.Over(&m.board, columnID, m.cardBoxes(lane), float64(msg.Y)); err != nil {
		m.status = err.Error()
		return m, nil
	}
	m.followDrag()
	return m, nil
}

// handleMouseRelease drops the in-flight card and persists the move once.
func (m Model) handleMouseRelease(msg tea.MouseReleaseMsg) (tea.Model, tea.Cmd) {
	if !m.mouseHeld {
		return m, nil
	}
	m.mouseHeld = false
	return m.dropCard()
}

// handleMouseWheel moves the row cursor.
func (m Model) handleMouseWheel(msg tea.MouseWheelMsg) (tea.Model, tea.Cmd) {
	if !m.dashboardIdle() || m.drag.Active() {
		return m, nil
	}
	switch msg.Button {
	case tea.MouseWheelUp:
		if m.selectedRow > 0 {
			m.selectedRow--
		}
	case tea.MouseWheelDown:
		if m.selectedRow < len(m.currentLaneCards())-1 {
			m.selectedRow++
		}
	}
	return m, nil
}

// beginKeyboardDrag picks up the selected card.
func (m Model) beginKeyboardDrag() (tea.Model, tea.Cmd) {
	card, ok := m.selectedCard()
	if !ok {
		m.status = "no task selected"
		return m, nil
	}
	if err := m.drag.Begin(card.ID, card.ColumnID, m.selectedRow); err != nil {
		m.status = err.Error()
		return m, nil
	}
	m.status = "moving: " + card.Title
	return m, nil
}

// handleDragKey moves, drops, or cancels the in-flight card.
func (m Model) handleDragKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if m.mouseHeld {
		if key.Matches(msg, m.keys.cancelDrag) {
			m.mouseHeld = false
			return m.cancelDrag()
		}
		return m, nil
	}
	columnID, row := m.drag.Target()
	lane := m.board.LaneIndex(columnID)
	switch {
	case key.Matches(msg, m.keys.cancelDrag):
		return m.cancelDrag()
	case key.Matches(msg, m.keys.dropCard):
		return m.dropCard()
	case key.Matches(msg, m.keys.moveUp):
		row--
	case key.Matches(msg, m.keys.moveDown):
		row++
	case key.Matches(msg, m.keys.moveLeft):
		lane--
	case key.Matches(msg, m.keys.moveRight):
		lane++
	default:
		return m, nil
	}
	if lane < 0 || lane >= len(m.board.Lanes) || row < 0 {
		return m, nil
	}
	if err := m.drag.Step(&m.board, m.board.Lanes[lane].Column.ID, row); err != nil {
		m.status = err.Error()
		return m, nil
	}
	m.followDrag()
	return m, nil
}

// followDrag keeps the cursor on the in-flight card.
func (m *Model) followDrag() {
	if li, ci, ok := m.board.Locate(m.drag.CardID()); ok {
		m.selectedLane = li
		m.selectedRow = ci
	}
}

// dropCard ends the drag and commits the new slot when it changed.
func (m Model) dropCard() (tea.Model, tea.Cmd) {
	moved := m.drag.Moved()
	cardID, err := m.drag.End()
	if err != nil {
		return m, nil
	}
	if !moved {
		m.status = "ready"
		if m.staleBoard {
			return m, m.loadData
		}
		return m, nil
	}
	m.status = "saving..."
	m.staleBoard = false
	return m, m.commitMove(cardID)
}

// cancelDrag restores the card to where it was picked up.
func (m Model) cancelDrag() (tea.Model, tea.Cmd) {
	cardID := m.drag.CardID()
	if err := m.drag.Cancel(&m.board); err != nil {
		m.status = err.Error()
	} else {
		m.status = "move canceled"
	}
	m.focusCard(cardID)
	if m.staleBoard {
		m.staleBoard = false
		return m, m.loadData
	}
	return m, nil
}
