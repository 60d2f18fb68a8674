package domain

import (
	"slices"
	"testing"
	"time"
)

func testBoard(t *testing.T) Board {
	t.Helper()
	now := time.Date(2026, 2, 21, 12, 0, 0, 0, time.UTC)
	var columns []Column
	for i, name := range []string{"To Do", "In Progress", "Done"} {
		c, err := NewColumn([]string{"todo", "progress", "done"}[i], name, i, now)
		if err != nil {
			t.Fatalf("NewColumn() error = %v", err)
		}
		columns = append(columns, c)
	}
	// Deliberately out of order to exercise sorting.
	slices.Reverse(columns)
	var cards []Card
	for i, id := range []string{"c", "a", "b"} {
		card, err := NewCard(CardInput{ID: id, ColumnID: "todo", Position: []int{2, 0, 1}[i], Title: id}, now)
		if err != nil {
			t.Fatalf("NewCard() error = %v", err)
		}
		cards = append(cards, card)
	}
	orphan, err := NewCard(CardInput{ID: "z", ColumnID: "missing", Title: "z"}, now)
	if err != nil {
		t.Fatalf("NewCard() error = %v", err)
	}
	return NewBoard(columns, append(cards, orphan))
}

func laneIDs(l Lane) []string {
	out := make([]string, 0, len(l.Cards))
	for _, card := range l.Cards {
		out = append(out, card.ID)
	}
	return out
}

func TestNewBoardOrdersColumnsAndCards(t *testing.T) {
	b := testBoard(t)
	if len(b.Lanes) != 3 || b.Lanes[0].Column.ID != "todo" || b.Lanes[2].Column.ID != "done" {
		t.Fatalf("unexpected lane order %#v", b.Lanes)
	}
	if got := laneIDs(b.Lanes[0]); !slices.Equal(got, []string{"a", "b", "c"}) {
		t.Fatalf("unexpected todo order %v", got)
	}
	if b.Total() != 3 {
		t.Fatalf("expected orphan card to be dropped, total = %d", b.Total())
	}
}

func TestBoardInsertAcrossAndWithinLanes(t *testing.T) {
	b := testBoard(t)
	if err := b.Insert("b", "done", 5); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}
	if got := laneIDs(b.Lanes[0]); !slices.Equal(got, []string{"a", "c"}) {
		t.Fatalf("unexpected todo order %v", got)
	}
	done, _ := b.Lane("done")
	if got := laneIDs(done); !slices.Equal(got, []string{"b"}) {
		t.Fatalf("unexpected done order %v", got)
	}
	if done.Cards[0].ColumnID != "done" || done.Cards[0].Position != 0 {
		t.Fatalf("expected card relocated to done/0, got %#v", done.Cards[0])
	}

	if err := b.Insert("c", "todo", 0); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}
	if got := laneIDs(b.Lanes[0]); !slices.Equal(got, []string{"c", "a"}) {
		t.Fatalf("unexpected todo order %v", got)
	}
	for i, card := range b.Lanes[0].Cards {
		if card.Position != i {
			t.Fatalf("expected renumbered positions, got %#v", b.Lanes[0].Cards)
		}
	}
	if got := b.Counts(); got["todo"] != 2 || got["done"] != 1 || got["progress"] != 0 {
		t.Fatalf("unexpected counts %v", got)
	}
}

func TestBoardInsertErrors(t *testing.T) {
	b := testBoard(t)
	if err := b.Insert("a", "nope", 0); err != ErrInvalidColumnID {
		t.Fatalf("expected ErrInvalidColumnID, got %v", err)
	}
	if err := b.Insert("nope", "todo", 0); err != ErrCardNotOnBoard {
		t.Fatalf("expected ErrCardNotOnBoard, got %v", err)
	}
}

func TestBoardCloneIsIndependent(t *testing.T) {
	b := testBoard(t)
	clone := b.Clone()
	if err := clone.Insert("a", "done", 0); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}
	if got := laneIDs(b.Lanes[0]); !slices.Equal(got, []string{"a", "b", "c"}) {
		t.Fatalf("clone mutation leaked into source: %v", got)
	}
}

func TestBoardAppendReplaceRemove(t *testing.T) {
	b := testBoard(t)
	card, err := NewCard(CardInput{ID: "d", ColumnID: "progress", Title: "d"}, time.Now())
	if err != nil {
		t.Fatalf("NewCard() error = %v", err)
	}
	if err := b.Append(card); err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	card.Title = "renamed"
	if err := b.Replace(card); err != nil {
		t.Fatalf("Replace() error = %v", err)
	}
	if got, _ := b.Card("d"); got.Title != "renamed" {
		t.Fatalf("unexpected replaced card %#v", got)
	}
	if _, ok := b.Remove("d"); !ok {
		t.Fatal("expected Remove() to find card")
	}
	if _, ok := b.Card("d"); ok {
		t.Fatal("expected card to be gone")
	}
	if err := b.Replace(card); err != ErrCardNotOnBoard {
		t.Fatalf("expected ErrCardNotOnBoard, got %v", err)
	}
}
