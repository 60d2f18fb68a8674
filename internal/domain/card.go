package domain

import (
	"strings"
	"time"
)

// DefaultOwner is used when a card is created without a signed-in user.
const DefaultOwner = "Guest"

// Card is one task on the board. ID is a session-local handle and never shown.
type Card struct {
	ID        string
	ColumnID  string
	Position  int
	Title     string
	Day       string
	Owner     string
	UpdatedBy string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CardInput holds the values accepted by NewCard.
type CardInput struct {
	ID       string
	ColumnID string
	Position int
	Title    string
	Day      string
	Owner    string
}

// NewCard validates input and returns a card stamped with now.
func NewCard(in CardInput, now time.Time) (Card, error) {
	in.ID = strings.TrimSpace(in.ID)
	in.ColumnID = strings.TrimSpace(in.ColumnID)
	in.Title = strings.TrimSpace(in.Title)
	in.Day = strings.TrimSpace(in.Day)
	in.Owner = strings.TrimSpace(in.Owner)

	if in.ID == "" {
		return Card{}, ErrInvalidID
	}
	if in.ColumnID == "" {
		return Card{}, ErrInvalidColumnID
	}
	if in.Title == "" {
		return Card{}, ErrInvalidTitle
	}
	if in.Position < 0 {
		return Card{}, ErrInvalidPosition
	}
	if in.Owner == "" {
		in.Owner = DefaultOwner
	}

	return Card{
		ID:        in.ID,
		ColumnID:  in.ColumnID,
		Position:  in.Position,
		Title:     in.Title,
		Day:       in.Day,
		Owner:     in.Owner,
		UpdatedBy: in.Owner,
		CreatedAt: now.UTC(),
		UpdatedAt: now.UTC(),
	}, nil
}

// Rename replaces the card title. Blank titles are rejected.
func (c *Card) Rename(title string, now time.Time) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return ErrInvalidTitle
	}
	c.Title = title
	c.UpdatedAt = now.UTC()
	return nil
}

func (c *Card) Move(columnID string, position int, now time.Time) error {
	columnID = strings.TrimSpace(columnID)
	if columnID == "" {
		return ErrInvalidColumnID
	}
	if position < 0 {
		return ErrInvalidPosition
	}
	c.ColumnID = columnID
	c.Position = position
	c.UpdatedAt = now.UTC()
	return nil
}
