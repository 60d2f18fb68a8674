package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/hylla/taskboard/internal/app"
	"github.com/hylla/taskboard/internal/config"
	"github.com/hylla/taskboard/internal/domain"
)

// stubBoard returns canned results for card mutations.
type stubBoard struct {
	moveErr   error
	deleteErr error
}

func (s *stubBoard) EnsureBoard(context.Context) ([]domain.Column, error) { return nil, nil }

func (s *stubBoard) Board(context.Context) (domain.Board, error) { return domain.Board{}, nil }

func (s *stubBoard) AddCard(_ context.Context, in app.AddCardInput) (domain.Card, error) {
	return domain.Card{ID: "c-new", ColumnID: "todo", Title: in.Title, Owner: in.Owner}, nil
}

func (s *stubBoard) RenameCard(_ context.Context, cardID, title, _ string) (domain.Card, error) {
	return domain.Card{ID: cardID, Title: title}, nil
}

func (s *stubBoard) DeleteCard(context.Context, string, string) error { return s.deleteErr }

func (s *stubBoard) MoveCard(_ context.Context, in app.MoveCardInput) (domain.Card, error) {
	if s.moveErr != nil {
		return domain.Card{}, s.moveErr
	}
	return domain.Card{ID: in.CardID, ColumnID: in.ColumnID, Position: in.Index}, nil
}

func (s *stubBoard) ListChangeEvents(context.Context, int) ([]domain.ChangeEvent, error) {
	return nil, nil
}

func newBufferedLogger(t *testing.T) (*runtimeLogger, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	logger, err := newRuntimeLogger(&out, "taskboard", false, config.Default().Logging, func() time.Time {
		return time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	})
	if err != nil {
		t.Fatalf("newRuntimeLogger() error = %v", err)
	}
	return logger, &out
}

// TestLoggedBoardRecordsDrops verifies committed and failed drops reach the log.
func TestLoggedBoardRecordsDrops(t *testing.T) {
	logger, out := newBufferedLogger(t)
	stub := &stubBoard{}
	board := newLoggedBoard(stub, logger)

	card, err := board.MoveCard(context.Background(), app.MoveCardInput{CardID: "c1", ColumnID: "done", Index: 2, Actor: "ada"})
	if err != nil {
		t.Fatalf("MoveCard() error = %v", err)
	}
	if card.ColumnID != "done" || card.Position != 2 {
		t.Fatalf("unexpected moved card %#v", card)
	}
	got := out.String()
	for _, want := range []string{"drop committed", "card_id=c1", "column=done", "position=2", "actor=ada"} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in log, got %q", want, got)
		}
	}

	out.Reset()
	stub.moveErr = app.ErrNotFound
	if _, err := board.MoveCard(context.Background(), app.MoveCardInput{CardID: "gone", ColumnID: "done", Actor: "ada"}); !errors.Is(err, app.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	got = out.String()
	if !strings.Contains(got, "drop commit failed") || !strings.Contains(got, "card_id=gone") {
		t.Fatalf("expected failed drop in log, got %q", got)
	}
}

// TestLoggedBoardRecordsCardEdits verifies add, rename and delete log lines.
func TestLoggedBoardRecordsCardEdits(t *testing.T) {
	logger, out := newBufferedLogger(t)
	stub := &stubBoard{deleteErr: errors.New("locked")}
	board := newLoggedBoard(stub, logger)
	ctx := context.Background()

	if _, err := board.AddCard(ctx, app.AddCardInput{Title: "Write notes", Owner: "ada"}); err != nil {
		t.Fatalf("AddCard() error = %v", err)
	}
	if _, err := board.RenameCard(ctx, "c-new", "Write more notes", "ada"); err != nil {
		t.Fatalf("RenameCard() error = %v", err)
	}
	if err := board.DeleteCard(ctx, "c-new", "ada"); err == nil {
		t.Fatal("expected delete error to pass through")
	}

	got := out.String()
	for _, want := range []string{"card added", "card_id=c-new", "card renamed", "card delete failed", "locked"} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in log, got %q", want, got)
		}
	}
	if strings.Contains(got, "card deleted") {
		t.Fatalf("expected no success line for failed delete, got %q", got)
	}
}
