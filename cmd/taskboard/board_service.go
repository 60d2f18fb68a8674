package main

import (
	"context"

	"github.com/hylla/taskboard/internal/app"
	"github.com/hylla/taskboard/internal/domain"
	"github.com/hylla/taskboard/internal/tui"
)

// loggedBoard records board mutations made from the TUI in the runtime log.
type loggedBoard struct {
	tui.Service
	logger *runtimeLogger
}

// newLoggedBoard wraps svc so card mutations reach logger.
func newLoggedBoard(svc tui.Service, logger *runtimeLogger) *loggedBoard {
	return &loggedBoard{Service: svc, logger: logger}
}

// AddCard logs new cards.
func (b *loggedBoard) AddCard(ctx context.Context, in app.AddCardInput) (domain.Card, error) {
	card, err := b.Service.AddCard(ctx, in)
	if err != nil {
		b.logger.Warn("card add failed", "title", in.Title, "owner", in.Owner, "err", err)
		return card, err
	}
	b.logger.Info("card added", "card_id", card.ID, "column", card.ColumnID, "owner", card.Owner)
	return card, nil
}

// RenameCard logs title edits.
func (b *loggedBoard) RenameCard(ctx context.Context, cardID, title, actor string) (domain.Card, error) {
	card, err := b.Service.RenameCard(ctx, cardID, title, actor)
	if err != nil {
		b.logger.Warn("card rename failed", "card_id", cardID, "actor", actor, "err", err)
		return card, err
	}
	b.logger.Info("card renamed", "card_id", cardID, "actor", actor)
	return card, nil
}

// DeleteCard logs removals.
func (b *loggedBoard) DeleteCard(ctx context.Context, cardID, actor string) error {
	if err := b.Service.DeleteCard(ctx, cardID, actor); err != nil {
		b.logger.Warn("card delete failed", "card_id", cardID, "actor", actor, "err", err)
		return err
	}
	b.logger.Info("card deleted", "card_id", cardID, "actor", actor)
	return nil
}

// MoveCard logs each committed drop.
func (b *loggedBoard) MoveCard(ctx context.Context, in app.MoveCardInput) (domain.Card, error) {
	card, err := b.Service.MoveCard(ctx, in)
	if err != nil {
		b.logger.Error("drop commit failed", "card_id", in.CardID, "column", in.ColumnID, "index", in.Index, "err", err)
		return card, err
	}
	b.logger.Info("drop committed", "card_id", card.ID, "column", card.ColumnID, "position", card.Position, "actor", in.Actor)
	return card, nil
}
