package domain

import "strings"

// DragSession tracks the single in-flight card between drag start and drag end.
type DragSession struct {
	cardID       string
	originColumn string
	originRow    int
	lastColumn   string
	lastRow      int
}

// Begin marks cardID as in flight. It fails when another drag is active.
func (d *DragSession) Begin(cardID, columnID string, row int) error {
	cardID = strings.TrimSpace(cardID)
	if cardID == "" {
		return ErrInvalidID
	}
	if d.Active() {
		return ErrDragInProgress
	}
	d.cardID = cardID
	d.originColumn = columnID
	d.originRow = row
	d.lastColumn = columnID
	d.lastRow = row
	return nil
}

// Active reports whether a card is in flight.
func (d *DragSession) Active() bool {
	return d != nil && d.cardID != ""
}

// CardID returns the in-flight card id, or "".
func (d *DragSession) CardID() string {
	if d == nil {
		return ""
	}
	return d.cardID
}

// IsInFlight reports whether cardID is the in-flight card.
func (d *DragSession) IsInFlight(cardID string) bool {
	return d.Active() && d.cardID == cardID
}

// InFlight returns how many cards are in flight, always 0 or 1.
func (d *DragSession) InFlight() int {
	if d.Active() {
		return 1
	}
	return 0
}

// Origin returns where the in-flight card was picked up.
func (d *DragSession) Origin() (columnID string, row int) {
	return d.originColumn, d.originRow
}

// Target returns the slot the in-flight card currently occupies.
func (d *DragSession) Target() (columnID string, row int) {
	return d.lastColumn, d.lastRow
}

// Moved reports whether the card currently sits somewhere other than its origin.
func (d *DragSession) Moved() bool {
	return d.lastColumn != d.originColumn || d.lastRow != d.originRow
}

// Over re-inserts the in-flight card into columnID at the slot chosen by the
// pointer y against the lane's card boxes. It runs on every pointer move.
func (d *DragSession) Over(b *Board, columnID string, boxes []Box, y float64) (int, error) {
	if !d.Active() {
		return 0, ErrNoDrag
	}
	lane, ok := b.Lane(columnID)
	if !ok {
		return 0, ErrInvalidColumnID
	}
	index := lane.DropIndex(boxes, d.cardID, y)
	if err := b.Insert(d.cardID, columnID, index); err != nil {
		return 0, err
	}
	d.lastColumn = lane.Column.ID
	d.lastRow = index
	return index, nil
}

// Step moves the in-flight card to an explicit slot. Keyboard drags use it.
func (d *DragSession) Step(b *Board, columnID string, row int) error {
	if !d.Active() {
		return ErrNoDrag
	}
	if err := b.Insert(d.cardID, columnID, row); err != nil {
		return err
	}
	li, ci, _ := b.Locate(d.cardID)
	d.lastColumn = b.Lanes[li].Column.ID
	d.lastRow = ci
	return nil
}

// End clears the in-flight marker and returns the dropped card id.
func (d *DragSession) End() (string, error) {
	if !d.Active() {
		return "", ErrNoDrag
	}
	cardID := d.cardID
	*d = DragSession{}
	return cardID, nil
}

// Cancel puts the in-flight card back where it was picked up and ends the drag.
func (d *DragSession) Cancel(b *Board) error {
	if !d.Active() {
		return ErrNoDrag
	}
	err := b.Insert(d.cardID, d.originColumn, d.originRow)
	*d = DragSession{}
	return err
}
