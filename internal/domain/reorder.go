package domain

import "math"

// Box is the rendered vertical extent of a card.
type Box struct {
	Top    float64
	Height float64
}

// Mid returns the vertical midpoint of the box.
func (b Box) Mid() float64 {
	return b.Top + b.Height/2
}

// InsertionIndex returns the slot a dragged card should take among boxes when
// the pointer is at y: immediately before the box whose midpoint lies below y
// and closest to it. When no midpoint lies below y the result is len(boxes).
func InsertionIndex(boxes []Box, y float64) int {
	index := len(boxes)
	closest := math.Inf(-1)
	for i, box := range boxes {
		offset := y - box.Mid()
		if offset < 0 && offset > closest {
			closest = offset
			index = i
		}
	}
	return index
}

// DropIndex applies InsertionIndex to the lane, skipping the in-flight card.
// boxes[i] must describe l.Cards[i]. The result indexes the lane without the
// in-flight card, which is what Board.Insert expects.
func (l Lane) DropIndex(boxes []Box, inFlightID string, y float64) int {
	candidates := make([]Box, 0, len(boxes))
	for i, box := range boxes {
		if i < len(l.Cards) && l.Cards[i].ID == inFlightID {
			continue
		}
		candidates = append(candidates, box)
	}
	return InsertionIndex(candidates, y)
}
