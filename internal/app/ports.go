package app

import (
	"context"
	"time"

	"github.com/hylla/taskboard/internal/domain"
)

// Repository represents the session-scoped board store.
type Repository interface {
	CreateColumn(context.Context, domain.Column) error
	ListColumns(context.Context) ([]domain.Column, error)

	CreateCard(context.Context, domain.Card) error
	UpdateCard(context.Context, domain.Card) error
	GetCard(context.Context, string) (domain.Card, error)
	ListCards(context.Context) ([]domain.Card, error)
	DeleteCard(ctx context.Context, id, actor string, at time.Time) error
	// MoveCard stores card at its new column and position and applies the
	// sibling positions in the same transaction.
	MoveCard(ctx context.Context, card domain.Card, positions map[string]int) error

	ListChangeEvents(context.Context, int) ([]domain.ChangeEvent, error)
}
