package domain

import (
	"slices"
	"strings"
)

// Lane pairs a column with its cards in top-to-bottom order.
type Lane struct {
	Column Column
	Cards  []Card
}

// Board is the list-of-lists model the dashboard renders from.
type Board struct {
	Lanes []Lane
}

// NewBoard groups cards under their columns, both ordered by position.
// Cards whose column is unknown are dropped.
func NewBoard(columns []Column, cards []Card) Board {
	columns = slices.Clone(columns)
	slices.SortStableFunc(columns, func(a, b Column) int {
		return a.Position - b.Position
	})
	lanes := make([]Lane, 0, len(columns))
	index := make(map[string]int, len(columns))
	for _, column := range columns {
		index[column.ID] = len(lanes)
		lanes = append(lanes, Lane{Column: column})
	}
	for _, card := range cards {
		idx, ok := index[card.ColumnID]
		if !ok {
			continue
		}
		lanes[idx].Cards = append(lanes[idx].Cards, card)
	}
	for i := range lanes {
		slices.SortStableFunc(lanes[i].Cards, func(a, b Card) int {
			if a.Position == b.Position {
				return a.CreatedAt.Compare(b.CreatedAt)
			}
			return a.Position - b.Position
		})
	}
	return Board{Lanes: lanes}
}

// Clone returns a deep copy of the board.
func (b Board) Clone() Board {
	lanes := make([]Lane, len(b.Lanes))
	for i, lane := range b.Lanes {
		lanes[i] = Lane{Column: lane.Column, Cards: slices.Clone(lane.Cards)}
	}
	return Board{Lanes: lanes}
}

// LaneIndex returns the index of the lane for columnID, or -1.
func (b Board) LaneIndex(columnID string) int {
	columnID = strings.TrimSpace(columnID)
	for i, lane := range b.Lanes {
		if lane.Column.ID == columnID {
			return i
		}
	}
	return -1
}

// Lane returns the lane for columnID.
func (b Board) Lane(columnID string) (Lane, bool) {
	idx := b.LaneIndex(columnID)
	if idx < 0 {
		return Lane{}, false
	}
	return b.Lanes[idx], true
}

// Locate returns the lane and row of a card.
func (b Board) Locate(cardID string) (lane, row int, ok bool) {
	for li, l := range b.Lanes {
		for ci, card := range l.Cards {
			if card.ID == cardID {
				return li, ci, true
			}
		}
	}
	return -1, -1, false
}

// Card returns the card with cardID.
func (b Board) Card(cardID string) (Card, bool) {
	li, ci, ok := b.Locate(cardID)
	if !ok {
		return Card{}, false
	}
	return b.Lanes[li].Cards[ci], true
}

// Counts returns the number of cards per column id.
func (b Board) Counts() map[string]int {
	out := make(map[string]int, len(b.Lanes))
	for _, lane := range b.Lanes {
		out[lane.Column.ID] = len(lane.Cards)
	}
	return out
}

// Total returns the number of cards on the board.
func (b Board) Total() int {
	total := 0
	for _, lane := range b.Lanes {
		total += len(lane.Cards)
	}
	return total
}

// Append adds a card to the end of its column.
func (b *Board) Append(card Card) error {
	idx := b.LaneIndex(card.ColumnID)
	if idx < 0 {
		return ErrInvalidColumnID
	}
	card.Position = len(b.Lanes[idx].Cards)
	b.Lanes[idx].Cards = append(b.Lanes[idx].Cards, card)
	return nil
}

// Replace swaps in an updated copy of a card that is already on the board.
func (b *Board) Replace(card Card) error {
	li, ci, ok := b.Locate(card.ID)
	if !ok {
		return ErrCardNotOnBoard
	}
	card.ColumnID = b.Lanes[li].Column.ID
	card.Position = ci
	b.Lanes[li].Cards[ci] = card
	return nil
}

// Remove takes a card off the board and renumbers its former lane.
func (b *Board) Remove(cardID string) (Card, bool) {
	li, ci, ok := b.Locate(cardID)
	if !ok {
		return Card{}, false
	}
	card := b.Lanes[li].Cards[ci]
	b.Lanes[li].Cards = slices.Delete(b.Lanes[li].Cards, ci, ci+1)
	b.Lanes[li].renumber()
	return card, true
}

// Insert moves a card into columnID so it ends up at index among that lane's
// other cards. Index is clamped to the lane bounds.
func (b *Board) Insert(cardID, columnID string, index int) error {
	target := b.LaneIndex(columnID)
	if target < 0 {
		return ErrInvalidColumnID
	}
	card, ok := b.Remove(cardID)
	if !ok {
		return ErrCardNotOnBoard
	}
	lane := &b.Lanes[target]
	index = max(0, min(index, len(lane.Cards)))
	card.ColumnID = lane.Column.ID
	lane.Cards = slices.Insert(lane.Cards, index, card)
	lane.renumber()
	return nil
}

func (l *Lane) renumber() {
	for i := range l.Cards {
		l.Cards[i].Position = i
	}
}
